package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у сотрудника нет активного расписания на день недели
	// Выходной день - ожидаемое состояние, вызывающий код трактует его как пустую доступность
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicateSchedule возвращается, когда на пару (employee_id, day_of_week)
	// найдено больше одной активной записи. Нарушение инварианта данных
	ErrDuplicateSchedule = errors.New("schedule.repository: more than one active schedule for employee and day")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
