package get_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/staff"
)

const (
	msgInvalidTenantID   = "некорректный ID салона"
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgEmployeeNotFound  = "сотрудник не найден"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/employees/{employeeId}/working-hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/employees/{id}/working-hours - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	employeeIDStr := vars["employeeId"]
	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/employees/{id}/working-hours - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), employeeID, tenantID)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrEmployeeNotFound):
			h.logger.Warn("GET /tenants/{id}/employees/{id}/working-hours - Employee not found: tenant_id=%d, employee_id=%d",
				tenantID, employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/employees/{id}/working-hours - Invalid input: tenant_id=%d, employee_id=%d, error=%v",
				tenantID, employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidEmployeeID)

		default:
			h.logger.Error("GET /tenants/{id}/employees/{id}/working-hours - Failed to get working hours: tenant_id=%d, employee_id=%d, error=%v",
				tenantID, employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenants/{id}/employees/{id}/working-hours - Working hours retrieved: tenant_id=%d, employee_id=%d",
		tenantID, employeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
