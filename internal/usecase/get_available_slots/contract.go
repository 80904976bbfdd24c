package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	// GetActiveByID получает активного сотрудника в рамках тенанта
	GetActiveByID(ctx context.Context, employeeID, tenantID int64) (*domain.Employee, error)
	// ListActiveByTenant получает всех активных сотрудников тенанта
	ListActiveByTenant(ctx context.Context, tenantID int64) ([]*domain.Employee, error)
}

// ScheduleRepository интерфейс репозитория еженедельных расписаний
type ScheduleRepository interface {
	// GetActiveByEmployeeAndDay возвращает не более одной активной записи расписания
	GetActiveByEmployeeAndDay(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.WeeklySchedule, error)
}

// HolidayRepository интерфейс репозитория праздничных дней
type HolidayRepository interface {
	// Exists проверяет, является ли дата нерабочим днём для тенанта
	Exists(ctx context.Context, tenantID int64, date time.Time) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей клиентов
type AppointmentRepository interface {
	// ListActiveByEmployeeAndDate получает неотменённые записи сотрудника на дату
	ListActiveByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, tenantID int64) ([]*domain.Appointment, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок времени
type BlockedSlotRepository interface {
	// ListByEmployeeAndDate получает активные блокировки сотрудника на дату,
	// включая блокировки уровня тенанта (employee_id IS NULL)
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, tenantID int64) ([]*domain.BlockedSlot, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetActiveByID(ctx context.Context, serviceID, tenantID int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
// Движку нужен только согласованный read-only снимок данных
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
