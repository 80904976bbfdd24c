package list_employees

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/staff"
)

const (
	msgInvalidTenantID = "некорректный ID салона"
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

// Handle GET /api/v1/tenants/{tenantId}/employees
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/employees - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	result, err := h.service.ListEmployees(r.Context(), tenantID)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidInput) {
			h.logger.Warn("GET /tenants/{id}/employees - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}

		h.logger.Error("GET /tenants/{id}/employees - Failed to list employees: tenant_id=%d, error=%v",
			tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/employees - Employees listed successfully: tenant_id=%d, count=%d",
		tenantID, len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}
