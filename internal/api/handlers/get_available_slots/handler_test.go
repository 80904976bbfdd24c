package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/Salon-AvailabilityService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/tenants/{tenantId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2030, 6, 17, 0, 0, 0, 0, time.UTC)
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			TenantID:               1,
			ServiceID:              3,
			ServiceName:            "Стрижка",
			ServiceDurationMinutes: 60,
			Date:                   date,
			Slots: []domain.TimeSlot{
				{
					Start:        time.Date(2030, 6, 17, 9, 0, 0, 0, time.UTC),
					End:          time.Date(2030, 6, 17, 10, 0, 0, 0, time.UTC),
					EmployeeID:   7,
					EmployeeName: "Анна",
				},
			},
		},
	}
	router := newRouter(NewHandler(uc, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/1/available-slots?serviceId=3&date=2030-06-17", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, int64(1), resp.TenantID)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
	assert.Equal(t, int64(7), resp.Slots[0].EmployeeID)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.TenantID)
	assert.Equal(t, int64(3), uc.lastReq.ServiceID)
	assert.Nil(t, uc.lastReq.EmployeeID)
	assert.Nil(t, uc.lastReq.BufferTimeMinutes)
}

func TestHandle_OptionalParams(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{Date: time.Date(2030, 6, 17, 0, 0, 0, 0, time.UTC)},
	}
	router := newRouter(NewHandler(uc, noopLogger{}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/tenants/1/available-slots?serviceId=3&date=2030-06-17&employeeId=7&bufferTime=20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	require.NotNil(t, uc.lastReq.EmployeeID)
	assert.Equal(t, int64(7), *uc.lastReq.EmployeeID)
	require.NotNil(t, uc.lastReq.BufferTimeMinutes)
	assert.Equal(t, 20, *uc.lastReq.BufferTimeMinutes)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing service id", "/api/v1/tenants/1/available-slots?date=2030-06-17"},
		{"missing date", "/api/v1/tenants/1/available-slots?serviceId=3"},
		{"bad tenant id", "/api/v1/tenants/abc/available-slots?serviceId=3&date=2030-06-17"},
		{"bad service id", "/api/v1/tenants/1/available-slots?serviceId=abc&date=2030-06-17"},
		{"bad date", "/api/v1/tenants/1/available-slots?serviceId=3&date=17.06.2030"},
		{"bad employee id", "/api/v1/tenants/1/available-slots?serviceId=3&date=2030-06-17&employeeId=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewHandler(&stubUseCase{}, noopLogger{}))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"service not found", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(NewHandler(&stubUseCase{err: tt.err}, noopLogger{}))

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/tenants/1/available-slots?serviceId=3&date=2030-06-17", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestFromUseCaseResponse_ElapsedSlotsFiltered(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	resp := &getAvailableSlots.Response{
		TenantID: 1,
		Date:     date,
		Slots: []domain.TimeSlot{
			{Start: time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC), EmployeeID: 7},
			{Start: time.Date(2025, 6, 16, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 16, 15, 0, 0, 0, time.UTC), EmployeeID: 7},
		},
	}

	t.Run("same day drops elapsed starts", func(t *testing.T) {
		now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

		got := FromUseCaseResponse(resp, now)
		require.Len(t, got.Slots, 1)
		assert.Equal(t, "14:00", got.Slots[0].StartTime)
	})

	t.Run("future date keeps everything", func(t *testing.T) {
		now := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)

		got := FromUseCaseResponse(resp, now)
		assert.Len(t, got.Slots, 2)
	})

	t.Run("server zone does not shift the filter", func(t *testing.T) {
		// Настенные часы сервера 10:00 (UTC+5) - слот 09:00 уже прошёл,
		// хотя как момент времени это 05:00 UTC
		now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))

		got := FromUseCaseResponse(resp, now)
		require.Len(t, got.Slots, 1)
		assert.Equal(t, "14:00", got.Slots[0].StartTime)
	})
}
