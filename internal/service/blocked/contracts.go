package blocked

import (
	"context"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	Deactivate(ctx context.Context, id, tenantID int64) error
	ListByTenantAndDate(ctx context.Context, tenantID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetActiveByID(ctx context.Context, employeeID, tenantID int64) (*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
