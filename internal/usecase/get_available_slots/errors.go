package get_available_slots

import "errors"

var (
	// ErrMissingZip возвращается, когда не указан ZIP
	ErrMissingZip = errors.New("get_available_slots: zip is required")

	// ErrMissingDate возвращается, когда не указана дата
	ErrMissingDate = errors.New("get_available_slots: date is required")

	// ErrAvailabilityQueryFailed возвращается при ошибке чтения блоков доступности
	ErrAvailabilityQueryFailed = errors.New("get_available_slots: availability query failed")
)
