package delete_blocked_slot

import "context"

type BlockedSlotService interface {
	Deactivate(ctx context.Context, id, tenantID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
