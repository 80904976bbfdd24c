package blocked

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

// Repository репозиторий для работы с блокировками времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку времени
// EmployeeID = nil создаёт блокировку для всех сотрудников тенанта
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns(
			"tenant_id",
			"employee_id",
			"date",
			"start_time",
			"end_time",
			"reason",
			"is_active",
		).
		Values(
			slot.TenantID,
			slot.EmployeeID,
			slot.Date.Format("2006-01-02"),
			slot.StartTime,
			slot.EndTime,
			slot.Reason,
			true,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.IsActive = true
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// Deactivate снимает блокировку (мягкое удаление)
func (r *Repository) Deactivate(ctx context.Context, id, tenantID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blocked_slots").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":        id,
			"tenant_id": tenantID,
			"is_active": true,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

// ListByEmployeeAndDate получает активные блокировки для сотрудника на дату
// Включает блокировки уровня тенанта (employee_id IS NULL)
func (r *Repository) ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time, tenantID int64) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBlockedSlot().
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"date":      date.Format("2006-01-02"),
			"is_active": true,
		}).
		Where(squirrel.Or{
			squirrel.Eq{"employee_id": employeeID},
			squirrel.Eq{"employee_id": nil},
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, executor, "ListByEmployeeAndDate", query, args)
}

// ListByTenantAndDate получает все активные блокировки тенанта на дату
func (r *Repository) ListByTenantAndDate(ctx context.Context, tenantID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBlockedSlot().
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"date":      date.Format("2006-01-02"),
			"is_active": true,
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, executor, "ListByTenantAndDate", query, args)
}

func (r *Repository) queryList(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) ([]*domain.BlockedSlot, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	var slots []*domain.BlockedSlot
	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&slot.ID,
			&slot.TenantID,
			&slot.EmployeeID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Reason,
			&slot.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan blocked slot: %v", ErrScanRow, method, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, method, err)
	}

	return slots, nil
}

func selectBlockedSlot() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"tenant_id",
		"employee_id",
		"date",
		"start_time",
		"end_time",
		"reason",
		"is_active",
		"created_at",
		"updated_at",
	).From("blocked_slots")
}
