package create_blocked_slot

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked/models"
)

// CreateBlockedSlotRequest HTTP request model
type CreateBlockedSlotRequest struct {
	EmployeeID *int64  `json:"employeeId,omitempty"` // nil - блокировка всего салона
	Date       string  `json:"date"`                 // "YYYY-MM-DD"
	StartTime  string  `json:"startTime"`            // "HH:MM"
	EndTime    string  `json:"endTime"`              // "HH:MM"
	Reason     *string `json:"reason,omitempty"`
}

// ToServiceRequest создает запрос сервиса из HTTP модели (с парсингом даты)
func (r *CreateBlockedSlotRequest) ToServiceRequest(tenantID int64) (*models.CreateBlockedSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockedSlotRequest{
		TenantID:   tenantID,
		EmployeeID: r.EmployeeID,
		Date:       date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Reason:     r.Reason,
	}, nil
}
