package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/Salon-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TenantID        int64           `json:"tenantId"`
	ServiceID       int64           `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	DurationMinutes int             `json:"durationMinutes"`
	Date            string          `json:"date"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота конкретного сотрудника
type AvailableSlot struct {
	StartTime    string `json:"startTime"` // "HH:MM"
	EndTime      string `json:"endTime"`   // "HH:MM"
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Для сегодняшней даты отбрасывает слоты, начало которых уже прошло
func FromUseCaseResponse(resp *getAvailableSlots.Response, now time.Time) *AvailableSlotsResponse {
	// Слоты построены в локации даты запроса - now переносится в неё по настенным часам,
	// иначе при несовпадении локации сервера фильтр сравнивал бы разные отсчёты
	now = time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, resp.Date.Location())
	sameDay := resp.Date.Year() == now.Year() && resp.Date.YearDay() == now.YearDay()

	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		if sameDay && !slot.Start.After(now) {
			continue
		}
		slots = append(slots, AvailableSlot{
			StartTime:    slot.Start.Format(domain.TimeFormat),
			EndTime:      slot.End.Format(domain.TimeFormat),
			EmployeeID:   slot.EmployeeID,
			EmployeeName: slot.EmployeeName,
		})
	}

	return &AvailableSlotsResponse{
		TenantID:        resp.TenantID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.ServiceDurationMinutes,
		Date:            resp.Date.Format(domain.DateFormat),
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(tenantID, serviceID int64, dateStr, employeeIDStr, bufferTimeStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		TenantID:  tenantID,
		ServiceID: serviceID,
		Date:      date,
	}

	if employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.EmployeeID = &employeeID
	}

	if bufferTimeStr != "" {
		bufferTime, err := strconv.Atoi(bufferTimeStr)
		if err != nil {
			return nil, err
		}
		req.BufferTimeMinutes = &bufferTime
	}

	return req, nil
}
