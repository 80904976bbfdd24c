package list_blocked_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Salon-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked"
)

const (
	msgInvalidTenantID = "некорректный ID салона"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized    = "требуется авторизация"
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

// Handle GET /api/v1/tenants/{tenantId}/blocked-slots?date=YYYY-MM-DD
// Защищённый endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("GET /tenants/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/blocked-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/blocked-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/blocked-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), tenantID, date)
	if err != nil {
		if errors.Is(err, blocked.ErrInvalidInput) {
			h.logger.Warn("GET /tenants/{id}/blocked-slots - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidTenantID)
			return
		}

		h.logger.Error("GET /tenants/{id}/blocked-slots - Failed to list blocked slots: tenant_id=%d, error=%v",
			tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tenants/{id}/blocked-slots - Blocked slots listed: tenant_id=%d, count=%d",
		tenantID, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
