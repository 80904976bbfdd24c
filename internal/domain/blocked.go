package domain

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

// BlockedSlot represents an ad-hoc, non-recurring exclusion period
// EmployeeID = nil означает блокировку для всех сотрудников салона
// Блокировки применяются как есть, без buffer time
type BlockedSlot struct {
	ID         int64
	TenantID   int64
	EmployeeID *int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Reason     *string
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTenantWide returns true if the block applies to every employee
func (b *BlockedSlot) IsTenantWide() bool {
	return b.EmployeeID == nil
}

// AppliesTo returns true if the block applies to the given employee
func (b *BlockedSlot) AppliesTo(employeeID int64) bool {
	return b.EmployeeID == nil || *b.EmployeeID == employeeID
}
