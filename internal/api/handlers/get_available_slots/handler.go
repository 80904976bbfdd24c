package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/Salon-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTenantID   = "некорректный ID салона"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingServiceID  = "ID услуги обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidQueryParam = "некорректные параметры запроса"
	msgServiceNotFound   = "услуга не найдена"
	msgInvalidInput      = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// employeeId (optional), bufferTime (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tenantIDStr := vars["tenantId"]
	tenantID, err := strconv.ParseInt(tenantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tenants/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(
		tenantID,
		serviceID,
		dateStr,
		r.URL.Query().Get("employeeId"),
		r.URL.Query().Get("bufferTime"),
	)
	if err != nil {
		h.logger.Warn("GET /tenants/{id}/available-slots - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParam)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /tenants/{id}/available-slots - Service not found: tenant_id=%d, service_id=%d",
				tenantID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{id}/available-slots - Invalid input: tenant_id=%d, service_id=%d, error=%v",
				tenantID, serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /tenants/{id}/available-slots - Failed to get slots: tenant_id=%d, service_id=%d, error=%v",
				tenantID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, time.Now())

	h.logger.Info("GET /tenants/{id}/available-slots - Slots retrieved successfully: tenant_id=%d, service_id=%d, slots_count=%d",
		tenantID, serviceID, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
