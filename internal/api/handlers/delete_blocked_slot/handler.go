package delete_blocked_slot

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
	msgInvalidTenantID = "некорректный ID салона"
	msgInvalidSlotID   = "некорректный ID блокировки"
	msgUnauthorized    = "требуется авторизация"
	msgBlockedNotFound = "блокировка не найдена"
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

// Handle DELETE /api/v1/tenants/{tenantId}/blocked-slots/{slotId}
// Защищённый endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tenants/{id}/blocked-slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)

	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/blocked-slots/{id} - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	slotIDStr := vars["slotId"]
	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tenants/{id}/blocked-slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Deactivate(r.Context(), slotID, tenantID); err != nil {
		switch {
		case errors.Is(err, blocked.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /tenants/{id}/blocked-slots/{id} - Blocked slot not found: tenant_id=%d, slot_id=%d",
				tenantID, slotID)
			handlers.RespondNotFound(w, msgBlockedNotFound)

		case errors.Is(err, blocked.ErrInvalidInput):
			h.logger.Warn("DELETE /tenants/{id}/blocked-slots/{id} - Invalid input: tenant_id=%d, slot_id=%d, error=%v",
				tenantID, slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotID)

		default:
			h.logger.Error("DELETE /tenants/{id}/blocked-slots/{id} - Failed to deactivate: tenant_id=%d, slot_id=%d, error=%v",
				tenantID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tenants/{id}/blocked-slots/{id} - Blocked slot deactivated: tenant_id=%d, slot_id=%d, user_id=%d",
		tenantID, slotID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
