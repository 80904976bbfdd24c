package staff

import (
	"context"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetActiveByID(ctx context.Context, employeeID, tenantID int64) (*domain.Employee, error)
	ListActiveByTenant(ctx context.Context, tenantID int64) ([]*domain.Employee, error)
}

// ScheduleRepository интерфейс репозитория еженедельных расписаний
type ScheduleRepository interface {
	ListActiveByEmployee(ctx context.Context, employeeID int64) ([]*domain.WeeklySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
