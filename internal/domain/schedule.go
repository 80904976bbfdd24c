package domain

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

// WeeklySchedule represents the recurring working hours of one employee for one
// day of the week, with an optional single break window
// Инвариант: не более одной активной записи на пару (employee_id, day_of_week),
// контролируется на границе репозитория
type WeeklySchedule struct {
	ID         int64
	EmployeeID int64
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	StartTime  types.TimeString
	EndTime    types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	IsActive   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if the schedule defines a break window
func (s *WeeklySchedule) HasBreak() bool {
	return s.BreakStart != nil && s.BreakEnd != nil
}
