package models

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// CreateBlockedSlotRequest запрос на создание блокировки
// EmployeeID = nil создаёт блокировку на весь салон
type CreateBlockedSlotRequest struct {
	TenantID   int64
	EmployeeID *int64
	Date       time.Time
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Reason     *string
}

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID         int64   `json:"id"`
	TenantID   int64   `json:"tenantId"`
	EmployeeID *int64  `json:"employeeId,omitempty"`
	Date       string  `json:"date"`      // "YYYY-MM-DD"
	StartTime  string  `json:"startTime"` // "HH:MM"
	EndTime    string  `json:"endTime"`   // "HH:MM"
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:         b.ID,
		TenantID:   b.TenantID,
		EmployeeID: b.EmployeeID,
		Date:       b.Date.Format(domain.DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) *BlockedSlotListResponse {
	result := make([]BlockedSlotResponse, 0, len(slots))
	for _, b := range slots {
		result = append(result, *FromDomainBlockedSlot(b))
	}
	return &BlockedSlotListResponse{BlockedSlots: result}
}
