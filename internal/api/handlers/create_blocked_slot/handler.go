package create_blocked_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Salon-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked"
)

const (
	msgInvalidTenantID    = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized       = "требуется авторизация"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/blocked-slots
// Защищённый endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tenants/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/blocked-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	var req CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tenants/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /tenants/{id}/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blocked.ErrEmployeeNotFound):
			h.logger.Warn("POST /tenants/{id}/blocked-slots - Employee not found: tenant_id=%d, user_id=%d",
				tenantID, userID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, blocked.ErrInvalidInput):
			h.logger.Warn("POST /tenants/{id}/blocked-slots - Invalid input: tenant_id=%d, user_id=%d, error=%v",
				tenantID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tenants/{id}/blocked-slots - Failed to create blocked slot: tenant_id=%d, user_id=%d, error=%v",
				tenantID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tenants/{id}/blocked-slots - Blocked slot created: id=%d, tenant_id=%d, user_id=%d",
		result.ID, tenantID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
