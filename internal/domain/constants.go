package domain

// Default availability parameters
const (
	DefaultStepIntervalMinutes = 30
	DefaultBufferTimeMinutes   = 15
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinBufferTimeMinutes      = 0
	MaxBufferTimeMinutes      = 120
	MinStepIntervalMinutes    = 5
	MaxStepIntervalMinutes    = 120
	MaxBlockReasonLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancelledStatuses список статусов, не занимающих время сотрудника
// В расчёте доступности участвуют только неотменённые записи
var CancelledStatuses = []AppointmentStatus{
	StatusCancelled,
}
