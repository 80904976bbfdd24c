package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/Salon-AvailabilityService/internal/infra/storage/schedule"
)

// fetchEmployeeDay собирает снимок данных одного сотрудника на дату:
// расписание на день недели, неотменённые записи и применимые блокировки
//
// Отсутствие расписания - штатное состояние (выходной), а не ошибка:
// schedule остаётся nil, записи и блокировки в этом случае не запрашиваются
func (uc *UseCase) fetchEmployeeDay(ctx context.Context, employee *domain.Employee, date time.Time, tenantID int64) (*employeeDay, error) {
	day := &employeeDay{employee: employee}

	dayOfWeek := int(date.Weekday())

	schedule, err := uc.scheduleRepo.GetActiveByEmployeeAndDay(ctx, employee.ID, dayOfWeek)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return day, nil
		}
		return nil, fmt.Errorf("failed to get schedule for employee id=%d: %w", employee.ID, err)
	}
	day.schedule = schedule

	appointments, err := uc.appointmentRepo.ListActiveByEmployeeAndDate(ctx, employee.ID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments for employee id=%d: %w", employee.ID, err)
	}
	day.appointments = appointments

	blocked, err := uc.blockedRepo.ListByEmployeeAndDate(ctx, employee.ID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blocked slots for employee id=%d: %w", employee.ID, err)
	}
	day.blocked = blocked

	return day, nil
}

// resolveEmployeeSlots вычисляет доступные слоты одного сотрудника по его снимку
//
// Чистая функция над request-scoped данными: генерирует сетку кандидатов,
// фильтрует конфликты и мапит выживших в domain.TimeSlot с полной датой.
// БД не трогает, поэтому безопасно выполняется конкурентно для разных сотрудников
func resolveEmployeeSlots(day *employeeDay, date time.Time, serviceDuration, bufferTime, stepInterval int) []domain.TimeSlot {
	if day.schedule == nil {
		return nil
	}

	var breakStart, breakEnd *int
	if day.schedule.HasBreak() {
		bs := day.schedule.BreakStart.Minutes()
		be := day.schedule.BreakEnd.Minutes()
		breakStart, breakEnd = &bs, &be
	}

	candidates := generateCandidateSlots(
		day.schedule.StartTime.Minutes(),
		day.schedule.EndTime.Minutes(),
		breakStart,
		breakEnd,
		serviceDuration,
		stepInterval,
	)

	var slots []domain.TimeSlot
	for _, candidate := range candidates {
		if !isSlotAvailable(candidate, day.appointments, day.blocked, breakStart, breakEnd, bufferTime) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start:        minutesOnDate(date, candidate.start),
			End:          minutesOnDate(date, candidate.end),
			EmployeeID:   day.employee.ID,
			EmployeeName: day.employee.Name,
		})
	}

	return slots
}

// minutesOnDate совмещает минуты с начала суток с датой
func minutesOnDate(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
