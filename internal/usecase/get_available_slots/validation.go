package get_available_slots

import (
	"fmt"

	"github.com/m04kA/Salon-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Формат даты и принадлежность услуги проверяются вызывающим слоем,
// движок рассчитывает на предварительно разобранные значения
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.BufferTimeMinutes != nil {
		if *req.BufferTimeMinutes < domain.MinBufferTimeMinutes || *req.BufferTimeMinutes > domain.MaxBufferTimeMinutes {
			return fmt.Errorf("%w: bufferTime must be in [%d, %d] minutes",
				ErrInvalidInput, domain.MinBufferTimeMinutes, domain.MaxBufferTimeMinutes)
		}
	}

	return nil
}
