package get_available_slots

import (
	"time"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID          int64      // ID тенанта (салона)
	ServiceID         int64      // ID услуги
	Date              time.Time  // Дата для получения слотов (без времени)
	EmployeeID        *int64     // Конкретный сотрудник (опционально, nil - все активные)
	BufferTimeMinutes *int       // Перерыв после услуги в минутах (nil - значение по умолчанию)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	TenantID               int64             // ID тенанта
	ServiceID              int64             // ID услуги
	ServiceName            string            // Название услуги
	ServiceDurationMinutes int               // Длительность услуги в минутах
	Date                   time.Time         // Дата, на которую запрашивались слоты
	Slots                  []domain.TimeSlot // Доступные слоты, отсортированные по времени начала
}

// candidateSlot кандидат в слоты - пара минут с начала суток [start, end)
// Длина всегда равна длительности услуги
type candidateSlot struct {
	start int
	end   int
}

// employeeDay снимок данных одного сотрудника на запрошенную дату
// Заполняется последовательно внутри read-only транзакции, после чего
// обрабатывается конкурентно без обращений к БД
type employeeDay struct {
	employee     *domain.Employee
	schedule     *domain.WeeklySchedule // nil - у сотрудника выходной
	appointments []*domain.Appointment
	blocked      []*domain.BlockedSlot
}
