package get_available_slots

import "strings"

// validateRequest проверяет и нормализует запрос
func validateRequest(req *Request) error {
	req.Zip = strings.TrimSpace(req.Zip)
	if req.Zip == "" {
		return ErrMissingZip
	}
	if req.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
