package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	employeeRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/employee"
	serviceRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/service"
)

// maxConcurrentResolvers ограничение числа одновременных расчётов по сотрудникам
// Расчёт чистый (без обращений к БД), лимит защищает от тенантов с большим штатом
const maxConcurrentResolvers = 8

// UseCase use case для получения доступных слотов для записи
//
// Движок stateless: результат - чистая функция входных параметров и снимка
// данных, прочитанного для этого запроса. Повторный вызов с теми же входными
// данными без изменений в БД возвращает идентичный список
type UseCase struct {
	employeeRepo    EmployeeRepository
	scheduleRepo    ScheduleRepository
	holidayRepo     HolidayRepository
	appointmentRepo AppointmentRepository
	blockedRepo     BlockedSlotRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	logger          Logger

	stepInterval  int // шаг сетки кандидатов в минутах
	defaultBuffer int // buffer time по умолчанию в минутах
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	holidayRepo HolidayRepository,
	appointmentRepo AppointmentRepository,
	blockedRepo BlockedSlotRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
	stepIntervalMinutes int,
	defaultBufferMinutes int,
) *UseCase {
	if stepIntervalMinutes <= 0 {
		stepIntervalMinutes = domain.DefaultStepIntervalMinutes
	}
	if defaultBufferMinutes < 0 {
		defaultBufferMinutes = domain.DefaultBufferTimeMinutes
	}

	return &UseCase{
		employeeRepo:    employeeRepo,
		scheduleRepo:    scheduleRepo,
		holidayRepo:     holidayRepo,
		appointmentRepo: appointmentRepo,
		blockedRepo:     blockedRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		logger:          logger,
		stepInterval:    stepIntervalMinutes,
		defaultBuffer:   defaultBufferMinutes,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Все чтения выполняются в одной read-only транзакции (Repeatable Read),
// чтобы расписания, праздники, блокировки и записи были согласованным снимком.
// Проверка праздника выполняется один раз на запрос и до любой работы по
// сотрудникам: праздник - жёсткое вето уровня тенанта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%d, service=%d, date=%s, employee=%s",
		req.TenantID, req.ServiceID, req.Date.Format(domain.DateFormat), formatEmployeeID(req.EmployeeID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	bufferTime := uc.defaultBuffer
	if req.BufferTimeMinutes != nil {
		bufferTime = *req.BufferTimeMinutes
	}

	var (
		svc  *domain.Service
		days []*employeeDay
	)

	// 2. Снимаем согласованный снимок данных
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		// 2.1. Получаем услугу (даёт длительность слота)
		svc, err = uc.serviceRepo.GetActiveByID(txCtx, req.ServiceID, req.TenantID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 2.2. Праздник закрывает день целиком - дальше не работаем
		isHoliday, err := uc.holidayRepo.Exists(txCtx, req.TenantID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
		}
		if isHoliday {
			uc.logger.Info("GetAvailableSlots: %s is a holiday for tenant=%d",
				req.Date.Format(domain.DateFormat), req.TenantID)
			return nil
		}

		// 2.3. Определяем набор сотрудников
		employees, err := uc.resolveEmployees(txCtx, req)
		if err != nil {
			return err
		}

		// 2.4. Собираем дневные снимки по каждому сотруднику
		for _, employee := range employees {
			day, err := uc.fetchEmployeeDay(txCtx, employee, req.Date, req.TenantID)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			days = append(days, day)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found for tenant=%d", req.ServiceID, req.TenantID)
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: snapshot failed for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	// 3. Конкурентно вычисляем слоты по снимкам и сортируем итог
	slots := uc.computeSlots(days, req.Date, svc.DurationMinutes, bufferTime)

	uc.logger.Info("GetAvailableSlots: computed %d slots for tenant=%d, service=%d, date=%s",
		len(slots), req.TenantID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		TenantID:               req.TenantID,
		ServiceID:              svc.ID,
		ServiceName:            svc.Name,
		ServiceDurationMinutes: svc.DurationMinutes,
		Date:                   req.Date,
		Slots:                  slots,
	}, nil
}

// resolveEmployees определяет набор сотрудников для расчёта
//
// Отсутствие сотрудника (не найден, неактивен, принадлежит другому тенанту) -
// ожидаемое пустое состояние, а не ошибка: кросс-тенантные ID не должны
// раскрывать чужую доступность
func (uc *UseCase) resolveEmployees(ctx context.Context, req *Request) ([]*domain.Employee, error) {
	if req.EmployeeID != nil {
		employee, err := uc.employeeRepo.GetActiveByID(ctx, *req.EmployeeID, req.TenantID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				uc.logger.Info("GetAvailableSlots: employee id=%d not found for tenant=%d",
					*req.EmployeeID, req.TenantID)
				return nil, nil
			}
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
		return []*domain.Employee{employee}, nil
	}

	employees, err := uc.employeeRepo.ListActiveByTenant(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	return employees, nil
}

// computeSlots вычисляет доступные слоты по снимкам сотрудников
//
// Снимки независимы и неизменяемы, поэтому расчёт разъезжается по одной
// горутине на сотрудника (с лимитом) и сливается перед сортировкой.
// Сортировка: по возрастанию времени начала, при равенстве - по ID сотрудника
// для детерминированного результата
func (uc *UseCase) computeSlots(days []*employeeDay, date time.Time, serviceDuration, bufferTime int) []domain.TimeSlot {
	results := make([][]domain.TimeSlot, len(days))

	var g errgroup.Group
	g.SetLimit(maxConcurrentResolvers)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			results[i] = resolveEmployeeSlots(day, date, serviceDuration, bufferTime, uc.stepInterval)
			return nil
		})
	}
	// Воркеры чистые и ошибок не возвращают
	_ = g.Wait()

	slots := make([]domain.TimeSlot, 0)
	for _, r := range results {
		slots = append(slots, r...)
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start.Equal(slots[j].Start) {
			return slots[i].EmployeeID < slots[j].EmployeeID
		}
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

func formatEmployeeID(id *int64) string {
	if id == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *id)
}
