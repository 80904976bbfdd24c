package domain

import "time"

// Service represents a bookable salon service (haircut, coloring, ...)
type Service struct {
	ID              int64
	TenantID        int64
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
