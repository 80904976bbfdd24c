package domain

import "time"

// Employee represents a staff member of a tenant (salon)
type Employee struct {
	ID       int64
	TenantID int64
	Name     string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
