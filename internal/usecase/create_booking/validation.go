package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidRequest)
	}

	if req.Instrument == "" {
		return fmt.Errorf("%w: instrument is required", ErrInvalidRequest)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: time slot is required", ErrInvalidRequest)
	}

	return nil
}
