package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения записей клиентов
// Движок доступности только читает записи, запись/отмена выполняются
// основным приложением платформы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByEmployeeAndDate получает неотменённые записи сотрудника на дату
// Отменённые записи не занимают время и в расчёте доступности не участвуют
func (r *Repository) ListActiveByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, tenantID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"employee_id",
		"service_id",
		"date",
		"start_time",
		"duration_minutes",
		"status",
		"service_name",
		"customer_name",
		"created_at",
		"updated_at",
	).
		From("appointments").
		Where(squirrel.Eq{
			"employee_id": employeeID,
			"tenant_id":   tenantID,
			"date":        date.Format("2006-01-02"),
		}).
		Where(squirrel.NotEq{"status": domain.CancelledStatuses}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployeeAndDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&apt.ID,
			&apt.TenantID,
			&apt.EmployeeID,
			&apt.ServiceID,
			&apt.Date,
			&apt.StartTime,
			&apt.DurationMinutes,
			&apt.Status,
			&apt.ServiceName,
			&apt.CustomerName,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByEmployeeAndDate - scan appointment: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time
		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployeeAndDate - rows iteration: %v", ErrScanRow, err)
	}

	return appointments, nil
}
