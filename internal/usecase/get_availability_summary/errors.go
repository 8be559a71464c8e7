package get_availability_summary

import "errors"

var (
	// ErrMissingZip возвращается, когда не указан ZIP
	ErrMissingZip = errors.New("get_availability_summary: zip is required")

	// ErrMissingDate возвращается, когда не указана граница периода
	ErrMissingDate = errors.New("get_availability_summary: startDate and endDate are required")

	// ErrInvalidRange возвращается, когда период перевернут или слишком длинный
	ErrInvalidRange = errors.New("get_availability_summary: invalid date range")

	// ErrAvailabilityQueryFailed возвращается при ошибке чтения блоков доступности
	ErrAvailabilityQueryFailed = errors.New("get_availability_summary: availability query failed")
)
