package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// validateRequest проверяет и нормализует запрос до обращения к хранилищу
func validateRequest(req *Request) error {
	req.SharetribeUserID = strings.TrimSpace(req.SharetribeUserID)
	req.Zip = strings.TrimSpace(req.Zip)

	if req.SharetribeUserID == "" || req.Zip == "" || req.ServiceDate.IsZero() ||
		req.StartTime.IsZero() || req.EndTime.IsZero() {
		return ErrMissingRequiredFields
	}

	if req.Mode != domain.AssignmentSpecific {
		req.Mode = domain.AssignmentAuto
	}
	if req.Mode == domain.AssignmentSpecific && req.WasherID == nil {
		return ErrMissingWasherID
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end_time: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}

	if req.VehicleCount == 0 {
		req.VehicleCount = domain.DefaultVehicleCount
	}
	if req.VehicleCount < 0 || req.VehicleCount > domain.MaxVehicleCount {
		return fmt.Errorf("%w: vehicle_count must be between 1 and %d", ErrInvalidInput, domain.MaxVehicleCount)
	}

	if req.SpecialInstructions != nil {
		trimmed := strings.TrimSpace(*req.SpecialInstructions)
		if trimmed == "" {
			req.SpecialInstructions = nil
		} else if utf8.RuneCountInString(trimmed) > domain.MaxSpecialInstructionsLength {
			return fmt.Errorf("%w: special_instructions exceeds %d characters", ErrInvalidInput, domain.MaxSpecialInstructionsLength)
		} else {
			req.SpecialInstructions = &trimmed
		}
	}

	req.ServiceDate = domain.CivilDate(req.ServiceDate)

	return nil
}
