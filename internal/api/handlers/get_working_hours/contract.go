package get_working_hours

import (
	"context"

	"github.com/m04kA/Salon-AvailabilityService/internal/service/staff/models"
)

type StaffService interface {
	GetWorkingHours(ctx context.Context, employeeID, tenantID int64) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
