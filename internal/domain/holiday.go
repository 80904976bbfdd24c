package domain

import "time"

// Holiday represents a tenant-wide non-working day
// Наличие записи на дату полностью закрывает запись для всех сотрудников салона
type Holiday struct {
	ID       int64
	TenantID int64
	Date     time.Time
	Name     *string

	CreatedAt time.Time
}
