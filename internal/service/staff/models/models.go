package models

import "github.com/m04kA/Salon-AvailabilityService/internal/domain"

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	TenantID int64  `json:"tenantId"`
	Name     string `json:"name"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// DaySchedule рабочие часы сотрудника на один день недели
type DaySchedule struct {
	DayOfWeek  int     `json:"dayOfWeek"` // 0 = воскресенье .. 6 = суббота
	IsWorking  bool    `json:"isWorking"`
	StartTime  *string `json:"startTime,omitempty"` // "09:00"
	EndTime    *string `json:"endTime,omitempty"`   // "17:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// WorkingHoursResponse ответ с рабочими часами сотрудника по дням недели
// Всегда содержит 7 дней; выходные помечены isWorking = false
type WorkingHoursResponse struct {
	EmployeeID   int64         `json:"employeeId"`
	EmployeeName string        `json:"employeeName"`
	Days         []DaySchedule `json:"days"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		TenantID: e.TenantID,
		Name:     e.Name,
	}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	result := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, FromDomainEmployee(e))
	}
	return &EmployeeListResponse{Employees: result}
}

// BuildWorkingHours раскладывает записи расписания по 7 дням недели
func BuildWorkingHours(employee *domain.Employee, schedules []*domain.WeeklySchedule) *WorkingHoursResponse {
	days := make([]DaySchedule, 7)
	for dow := 0; dow < 7; dow++ {
		days[dow] = DaySchedule{DayOfWeek: dow}
	}

	for _, sched := range schedules {
		if sched.DayOfWeek < 0 || sched.DayOfWeek > 6 {
			continue
		}

		start := sched.StartTime.String()
		end := sched.EndTime.String()
		day := DaySchedule{
			DayOfWeek: sched.DayOfWeek,
			IsWorking: true,
			StartTime: &start,
			EndTime:   &end,
		}
		if sched.HasBreak() {
			bs := sched.BreakStart.String()
			be := sched.BreakEnd.String()
			day.BreakStart = &bs
			day.BreakEnd = &be
		}
		days[sched.DayOfWeek] = day
	}

	return &WorkingHoursResponse{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Days:         days,
	}
}
