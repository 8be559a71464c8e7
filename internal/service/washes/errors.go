package washes

import "errors"

var (
	// ErrMissingRequiredFields возвращается, когда не указаны обязательные поля мойки
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus возвращается при неизвестном статусе мойки
	ErrInvalidStatus = errors.New("invalid wash status")

	// ErrWashesQueryFailed возвращается при ошибке чтения моек
	ErrWashesQueryFailed = errors.New("service: washes query failed")

	// ErrCreateWashFailed возвращается при ошибке сохранения мойки
	ErrCreateWashFailed = errors.New("service: failed to create wash")

	// ErrAvailabilityQueryFailed возвращается при ошибке чтения блоков доступности
	ErrAvailabilityQueryFailed = errors.New("service: availability query failed")
)
