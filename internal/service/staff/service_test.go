package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	"github.com/m04kA/Salon-AvailabilityService/pkg/ptr"
	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

type stubEmployeeRepo struct {
	employee *domain.Employee
	list     []*domain.Employee
	getErr   error
	listErr  error
}

func (s *stubEmployeeRepo) GetActiveByID(_ context.Context, _, _ int64) (*domain.Employee, error) {
	return s.employee, s.getErr
}

func (s *stubEmployeeRepo) ListActiveByTenant(_ context.Context, _ int64) ([]*domain.Employee, error) {
	return s.list, s.listErr
}

type stubScheduleRepo struct {
	schedules []*domain.WeeklySchedule
	err       error
}

func (s *stubScheduleRepo) ListActiveByEmployee(_ context.Context, _ int64) ([]*domain.WeeklySchedule, error) {
	return s.schedules, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestListEmployees(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := NewService(&stubEmployeeRepo{
			list: []*domain.Employee{
				{ID: 7, TenantID: 1, Name: "Анна", IsActive: true},
				{ID: 8, TenantID: 1, Name: "Борис", IsActive: true},
			},
		}, &stubScheduleRepo{}, noopLogger{})

		resp, err := svc.ListEmployees(context.Background(), 1)
		require.NoError(t, err)

		require.Len(t, resp.Employees, 2)
		assert.Equal(t, "Анна", resp.Employees[0].Name)
	})

	t.Run("invalid tenant", func(t *testing.T) {
		svc := NewService(&stubEmployeeRepo{}, &stubScheduleRepo{}, noopLogger{})

		_, err := svc.ListEmployees(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := NewService(&stubEmployeeRepo{listErr: errors.New("down")}, &stubScheduleRepo{}, noopLogger{})

		_, err := svc.ListEmployees(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetWorkingHours(t *testing.T) {
	employee := &domain.Employee{ID: 7, TenantID: 1, Name: "Анна", IsActive: true}

	t.Run("seven days with gaps marked as days off", func(t *testing.T) {
		svc := NewService(
			&stubEmployeeRepo{employee: employee},
			&stubScheduleRepo{schedules: []*domain.WeeklySchedule{
				{
					EmployeeID: 7,
					DayOfWeek:  1,
					StartTime:  "09:00",
					EndTime:    "17:00",
					BreakStart: ptr.Ptr(types.TimeString("12:00")),
					BreakEnd:   ptr.Ptr(types.TimeString("13:00")),
					IsActive:   true,
				},
				{EmployeeID: 7, DayOfWeek: 3, StartTime: "10:00", EndTime: "16:00", IsActive: true},
			}},
			noopLogger{},
		)

		resp, err := svc.GetWorkingHours(context.Background(), 7, 1)
		require.NoError(t, err)

		assert.Equal(t, int64(7), resp.EmployeeID)
		assert.Equal(t, "Анна", resp.EmployeeName)
		require.Len(t, resp.Days, 7)

		monday := resp.Days[1]
		assert.True(t, monday.IsWorking)
		require.NotNil(t, monday.StartTime)
		assert.Equal(t, "09:00", *monday.StartTime)
		require.NotNil(t, monday.BreakStart)
		assert.Equal(t, "12:00", *monday.BreakStart)

		wednesday := resp.Days[3]
		assert.True(t, wednesday.IsWorking)
		assert.Nil(t, wednesday.BreakStart)

		sunday := resp.Days[0]
		assert.False(t, sunday.IsWorking)
		assert.Nil(t, sunday.StartTime)
	})

	t.Run("employee not found", func(t *testing.T) {
		svc := NewService(
			&stubEmployeeRepo{getErr: employeeRepo.ErrEmployeeNotFound},
			&stubScheduleRepo{},
			noopLogger{},
		)

		_, err := svc.GetWorkingHours(context.Background(), 99, 1)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("schedule repository failure", func(t *testing.T) {
		svc := NewService(
			&stubEmployeeRepo{employee: employee},
			&stubScheduleRepo{err: errors.New("down")},
			noopLogger{},
		)

		_, err := svc.GetWorkingHours(context.Background(), 7, 1)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
