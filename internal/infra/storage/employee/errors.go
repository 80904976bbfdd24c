package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда активный сотрудник не найден в рамках тенанта
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("employee.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("employee.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("employee.repository: failed to scan row")
)
