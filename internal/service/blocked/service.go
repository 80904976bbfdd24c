package blocked

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	blockedRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/blocked"
	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	"github.com/m04kA/Salon-AvailabilityService/internal/service/blocked/models"
	"github.com/m04kA/Salon-AvailabilityService/pkg/types"
)

// Service сервис для управления блокировками времени
type Service struct {
	blockedRepo  BlockedSlotRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockedRepo BlockedSlotRepository,
	employeeRepo EmployeeRepository,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo:  blockedRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// Create создаёт новую блокировку времени
// Если указан EmployeeID, сотрудник должен принадлежать тенанту
func (s *Service) Create(ctx context.Context, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: creating blocked slot for tenant=%d, date=%s", req.TenantID, req.Date.Format(domain.DateFormat))

	startTime, endTime, err := s.validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetActiveByID(ctx, *req.EmployeeID, req.TenantID); err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				s.logger.Warn("Create: employee id=%d not found for tenant=%d", *req.EmployeeID, req.TenantID)
				return nil, ErrEmployeeNotFound
			}
			s.logger.Error("Create: failed to check employee id=%d: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	slot := &domain.BlockedSlot{
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		StartTime:  startTime,
		EndTime:    endTime,
		Reason:     req.Reason,
		IsActive:   true,
	}

	created, err := s.blockedRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: failed to create blocked slot for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created blocked slot id=%d for tenant=%d", created.ID, created.TenantID)
	return models.FromDomainBlockedSlot(created), nil
}

// Deactivate снимает блокировку (soft delete)
func (s *Service) Deactivate(ctx context.Context, id, tenantID int64) error {
	s.logger.Info("Deactivate: deactivating blocked slot id=%d for tenant=%d", id, tenantID)

	if id <= 0 || tenantID <= 0 {
		return fmt.Errorf("%w: id and tenantID must be positive", ErrInvalidInput)
	}

	if err := s.blockedRepo.Deactivate(ctx, id, tenantID); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Deactivate: blocked slot id=%d not found for tenant=%d", id, tenantID)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Deactivate: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: deactivated blocked slot id=%d", id)
	return nil
}

// ListByDate получает активные блокировки тенанта на дату
func (s *Service) ListByDate(ctx context.Context, tenantID int64, date time.Time) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("ListByDate: fetching blocked slots for tenant=%d, date=%s", tenantID, date.Format(domain.DateFormat))

	if tenantID <= 0 {
		return nil, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slots, err := s.blockedRepo.ListByTenantAndDate(ctx, tenantID, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d blocked slots for tenant=%d", len(slots), tenantID)
	return models.FromDomainBlockedSlotList(slots), nil
}

func (s *Service) validateCreateRequest(req *models.CreateBlockedSlotRequest) (types.TimeString, types.TimeString, error) {
	var zero types.TimeString

	if req.TenantID <= 0 {
		return zero, zero, fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}
	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return zero, zero, fmt.Errorf("%w: employeeId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return zero, zero, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !startTime.IsBefore(endTime) {
		return zero, zero, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockReasonLength {
		return zero, zero, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	return startTime, endTime, nil
}
