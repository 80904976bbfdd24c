package staff

import (
	"context"
	"errors"
	"fmt"

	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/staff/models"
)

// Service сервис для работы с персоналом: список сотрудников и рабочие часы
type Service struct {
	employeeRepo EmployeeRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса персонала
func NewService(
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListEmployees получает активных сотрудников тенанта
func (s *Service) ListEmployees(ctx context.Context, tenantID int64) (*models.EmployeeListResponse, error) {
	s.logger.Info("ListEmployees: fetching employees for tenant=%d", tenantID)

	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	employees, err := s.employeeRepo.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("ListEmployees: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEmployees: fetched %d employees for tenant=%d", len(employees), tenantID)
	return models.FromDomainEmployeeList(employees), nil
}

// GetWorkingHours получает расписание сотрудника по всем дням недели
// Используется витриной для отображения рабочих часов, не участвует
// в расчёте доступных слотов
func (s *Service) GetWorkingHours(ctx context.Context, employeeID, tenantID int64) (*models.WorkingHoursResponse, error) {
	s.logger.Info("GetWorkingHours: fetching schedule for employee=%d, tenant=%d", employeeID, tenantID)

	if tenantID <= 0 || employeeID <= 0 {
		return nil, fmt.Errorf("%w: tenantID and employeeID must be positive", ErrInvalidInput)
	}

	employee, err := s.employeeRepo.GetActiveByID(ctx, employeeID, tenantID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetWorkingHours: employee id=%d not found for tenant=%d", employeeID, tenantID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetWorkingHours: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	schedules, err := s.scheduleRepo.ListActiveByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("GetWorkingHours: failed to list schedules for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkingHours: fetched %d schedule rows for employee=%d", len(schedules), employeeID)
	return models.BuildWorkingHours(employee, schedules), nil
}
