package list_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked/models"
)

type BlockedSlotService interface {
	ListByDate(ctx context.Context, tenantID int64, date time.Time) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
