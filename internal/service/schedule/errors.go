package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInvalidMonth возвращается, когда месяц не в формате YYYY-MM
	ErrInvalidMonth = errors.New("schedule.service: invalid month")

	// ErrDefaultWeekQueryFailed возвращается при ошибке чтения недельного шаблона
	ErrDefaultWeekQueryFailed = errors.New("schedule.service: default week query failed")

	// ErrExceptionsQueryFailed возвращается при ошибке чтения исключений
	ErrExceptionsQueryFailed = errors.New("schedule.service: exceptions query failed")
)
