package list_employees

import (
	"context"

	"github.com/m04kA/Salon-AvailabilityService/internal/service/staff/models"
)

type StaffService interface {
	ListEmployees(ctx context.Context, tenantID int64) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
