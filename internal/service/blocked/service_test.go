package blocked

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	blockedRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/blocked"
	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked/models"
	"github.com/m04kA/Salon-AvailabilityService/pkg/ptr"
)

type stubBlockedRepo struct {
	created       *domain.BlockedSlot
	createErr     error
	deactivateErr error
	list          []*domain.BlockedSlot
	listErr       error
}

func (s *stubBlockedRepo) Create(_ context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	slot.ID = 55
	slot.CreatedAt = time.Now()
	s.created = slot
	return slot, nil
}

func (s *stubBlockedRepo) Deactivate(_ context.Context, _, _ int64) error {
	return s.deactivateErr
}

func (s *stubBlockedRepo) ListByTenantAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.BlockedSlot, error) {
	return s.list, s.listErr
}

type stubEmployeeRepo struct {
	err error
}

func (s *stubEmployeeRepo) GetActiveByID(_ context.Context, employeeID, tenantID int64) (*domain.Employee, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Employee{ID: employeeID, TenantID: tenantID, IsActive: true}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateBlockedSlotRequest {
	return &models.CreateBlockedSlotRequest{
		TenantID:  1,
		Date:      time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "12:00",
		EndTime:   "13:00",
	}
}

func TestCreate(t *testing.T) {
	t.Run("tenant wide block", func(t *testing.T) {
		repo := &stubBlockedRepo{}
		svc := NewService(repo, &stubEmployeeRepo{}, noopLogger{})

		resp, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(55), resp.ID)
		assert.Nil(t, resp.EmployeeID)
		assert.Equal(t, "2025-06-16", resp.Date)
		assert.Equal(t, "12:00", resp.StartTime)
		require.NotNil(t, repo.created)
		assert.True(t, repo.created.IsActive)
	})

	t.Run("employee scoped block checks tenant ownership", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{}, &stubEmployeeRepo{err: employeeRepo.ErrEmployeeNotFound}, noopLogger{})

		req := validCreateRequest()
		req.EmployeeID = ptr.Ptr(int64(7))

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		longReason := strings.Repeat("а", domain.MaxBlockReasonLength+1)

		tests := []struct {
			name   string
			mutate func(*models.CreateBlockedSlotRequest)
		}{
			{"zero tenant", func(r *models.CreateBlockedSlotRequest) { r.TenantID = 0 }},
			{"negative employee", func(r *models.CreateBlockedSlotRequest) { r.EmployeeID = ptr.Ptr(int64(-1)) }},
			{"zero date", func(r *models.CreateBlockedSlotRequest) { r.Date = time.Time{} }},
			{"bad start time", func(r *models.CreateBlockedSlotRequest) { r.StartTime = "noon" }},
			{"bad end time", func(r *models.CreateBlockedSlotRequest) { r.EndTime = "25:00" }},
			{"start equals end", func(r *models.CreateBlockedSlotRequest) { r.EndTime = r.StartTime }},
			{"start after end", func(r *models.CreateBlockedSlotRequest) { r.StartTime = "14:00" }},
			{"reason too long", func(r *models.CreateBlockedSlotRequest) { r.Reason = &longReason }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := NewService(&stubBlockedRepo{}, &stubEmployeeRepo{}, noopLogger{})

				req := validCreateRequest()
				tt.mutate(req)

				_, err := svc.Create(context.Background(), req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{createErr: errors.New("down")}, &stubEmployeeRepo{}, noopLogger{})

		_, err := svc.Create(context.Background(), validCreateRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{}, &stubEmployeeRepo{}, noopLogger{})
		assert.NoError(t, svc.Deactivate(context.Background(), 55, 1))
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{deactivateErr: blockedRepo.ErrBlockedSlotNotFound}, &stubEmployeeRepo{}, noopLogger{})
		assert.ErrorIs(t, svc.Deactivate(context.Background(), 99, 1), ErrBlockedSlotNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{}, &stubEmployeeRepo{}, noopLogger{})
		assert.ErrorIs(t, svc.Deactivate(context.Background(), 0, 1), ErrInvalidInput)
	})
}

func TestListByDate(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{list: []*domain.BlockedSlot{
			{ID: 55, TenantID: 1, Date: date, StartTime: "12:00", EndTime: "13:00", IsActive: true},
		}}, &stubEmployeeRepo{}, noopLogger{})

		resp, err := svc.ListByDate(context.Background(), 1, date)
		require.NoError(t, err)
		require.Len(t, resp.BlockedSlots, 1)
		assert.Equal(t, int64(55), resp.BlockedSlots[0].ID)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := NewService(&stubBlockedRepo{}, &stubEmployeeRepo{}, noopLogger{})

		_, err := svc.ListByDate(context.Background(), 0, date)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.ListByDate(context.Background(), 1, time.Time{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
