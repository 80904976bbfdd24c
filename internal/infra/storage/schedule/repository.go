package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

// Repository репозиторий для работы с еженедельными расписаниями сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByEmployeeAndDay получает активное расписание сотрудника на день недели
//
// Инвариант "не более одной активной записи на (employee_id, day_of_week)"
// проверяется здесь явно: при дубликатах возвращается ErrDuplicateSchedule,
// а не первая попавшаяся строка
func (r *Repository) GetActiveByEmployeeAndDay(ctx context.Context, employeeID int64, dayOfWeek int) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSchedule().
		Where(squirrel.Eq{
			"employee_id": employeeID,
			"day_of_week": dayOfWeek,
			"is_active":   true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDay - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedules []*domain.WeeklySchedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDay - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByEmployeeAndDay - rows iteration: %v", ErrScanRow, err)
	}

	switch len(schedules) {
	case 0:
		return nil, ErrScheduleNotFound
	case 1:
		return schedules[0], nil
	default:
		return nil, fmt.Errorf("%w: employee_id=%d, day_of_week=%d, rows=%d",
			ErrDuplicateSchedule, employeeID, dayOfWeek, len(schedules))
	}
}

// ListActiveByEmployee получает все активные записи расписания сотрудника
// Сортировка по дню недели (0=воскресенье .. 6=суббота)
func (r *Repository) ListActiveByEmployee(ctx context.Context, employeeID int64) ([]*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSchedule().
		Where(squirrel.Eq{
			"employee_id": employeeID,
			"is_active":   true,
		}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployee - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var schedules []*domain.WeeklySchedule
	for rows.Next() {
		sched, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByEmployee - scan schedule: %v", ErrScanRow, err)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByEmployee - rows iteration: %v", ErrScanRow, err)
	}

	return schedules, nil
}

func scanSchedule(rows *sql.Rows) (*domain.WeeklySchedule, error) {
	var sched domain.WeeklySchedule
	var breakStart, breakEnd types.TimeString
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(
		&sched.ID,
		&sched.EmployeeID,
		&sched.DayOfWeek,
		&sched.StartTime,
		&sched.EndTime,
		&breakStart,
		&breakEnd,
		&sched.IsActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if !breakStart.IsZero() {
		sched.BreakStart = &breakStart
	}
	if !breakEnd.IsZero() {
		sched.BreakEnd = &breakEnd
	}
	sched.CreatedAt = createdAt.Time
	sched.UpdatedAt = updatedAt.Time

	return &sched, nil
}

func selectSchedule() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"employee_id",
		"day_of_week",
		"start_time",
		"end_time",
		"break_start",
		"break_end",
		"is_active",
		"created_at",
		"updated_at",
	).From("employee_schedules")
}
