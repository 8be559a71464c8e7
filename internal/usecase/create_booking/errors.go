package create_booking

import "errors"

var (
	// ErrMissingRequiredFields возвращается, когда не указаны пользователь, ZIP, дата или время
	ErrMissingRequiredFields = errors.New("create_booking: missing required fields")

	// ErrMissingWasherID возвращается, когда режим specific указан без washer_id
	ErrMissingWasherID = errors.New("create_booking: washer_id is required for specific assignment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNoCredits возвращается, когда у пользователя закончились кредиты подписки
	ErrNoCredits = errors.New("create_booking: no subscription credits remaining")

	// ErrNoCapacity возвращается, когда в окне нет ни одного блока со свободными местами
	ErrNoCapacity = errors.New("create_booking: no washers available for this slot")

	// ErrWasherNotAvailable возвращается, когда выбранный мойщик не свободен в этом окне
	ErrWasherNotAvailable = errors.New("create_booking: selected washer is not available for this slot")

	// ErrCapacityFull возвращается, когда блок заполнился до резервирования
	ErrCapacityFull = errors.New("create_booking: availability block is full")

	// ErrAvailabilityNotFound возвращается, когда блок исчез до резервирования
	ErrAvailabilityNotFound = errors.New("create_booking: availability block not found")

	// ErrAvailabilityLookupFailed возвращается при ошибке поиска блоков
	ErrAvailabilityLookupFailed = errors.New("create_booking: availability lookup failed")

	// ErrReserveFailed возвращается при ошибке резервирования места
	ErrReserveFailed = errors.New("create_booking: failed to reserve availability")

	// ErrCreateWashFailed возвращается при ошибке сохранения мойки
	ErrCreateWashFailed = errors.New("create_booking: failed to create wash")
)
