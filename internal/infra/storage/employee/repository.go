package employee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByID получает активного сотрудника по ID в рамках тенанта
// Сотрудник другого тенанта или неактивный сотрудник считается не найденным
func (r *Repository) GetActiveByID(ctx context.Context, employeeID, tenantID int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEmployee().
		Where(squirrel.Eq{
			"id":        employeeID,
			"tenant_id": tenantID,
			"is_active": true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	var emp domain.Employee
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&emp.ID,
		&emp.TenantID,
		&emp.Name,
		&emp.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan employee: %v", ErrScanRow, err)
	}

	emp.CreatedAt = createdAt.Time
	emp.UpdatedAt = updatedAt.Time

	return &emp, nil
}

// ListActiveByTenant получает всех активных сотрудников тенанта
// Сортировка по ID для детерминированного порядка обхода
func (r *Repository) ListActiveByTenant(ctx context.Context, tenantID int64) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectEmployee().
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"is_active": true,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTenant - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		var emp domain.Employee
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&emp.ID,
			&emp.TenantID,
			&emp.Name,
			&emp.IsActive,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByTenant - scan employee: %v", ErrScanRow, err)
		}

		emp.CreatedAt = createdAt.Time
		emp.UpdatedAt = updatedAt.Time
		employees = append(employees, &emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTenant - rows iteration: %v", ErrScanRow, err)
	}

	return employees, nil
}

func selectEmployee() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"is_active",
		"created_at",
		"updated_at",
	).From("employees")
}
