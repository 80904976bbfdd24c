package holiday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/Salon-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с праздничными (нерабочими) днями тенанта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория праздников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, является ли дата нерабочим днём для тенанта
// Наличие записи закрывает запись для всех сотрудников на весь день
func (r *Repository) Exists(ctx context.Context, tenantID int64, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("holidays").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"date":      date.Format("2006-01-02"),
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}
