package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда блок доступности не найден
	ErrAvailabilityNotFound = errors.New("availability.repository: availability block not found")

	// ErrCapacityFull возвращается, когда в блоке не осталось мест или он закрыт
	ErrCapacityFull = errors.New("availability.repository: availability block is full")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
