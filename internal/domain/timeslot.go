package domain

import "time"

// TimeSlot represents a bookable interval for a specific employee
// Создаётся заново на каждый запрос, никогда не сохраняется
type TimeSlot struct {
	Start        time.Time
	End          time.Time
	EmployeeID   int64
	EmployeeName string
}
