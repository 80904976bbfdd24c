package domain

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked service for an employee
// Движок доступности читает записи, но никогда их не изменяет
type Appointment struct {
	ID              int64
	TenantID        int64
	EmployeeID      int64
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	CustomerName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiedInterval returns the half-open interval [start, start+duration+buffer)
// in minutes since midnight that the appointment occupies for its employee
func (a *Appointment) OccupiedInterval(bufferMinutes int) (start, end int) {
	start = a.StartTime.Minutes()
	end = start + a.DurationMinutes + bufferMinutes
	return start, end
}
