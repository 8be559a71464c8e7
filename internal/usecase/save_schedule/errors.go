package save_schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_schedule: invalid input data")

	// ErrInvalidMonth возвращается, когда месяц не в формате YYYY-MM
	ErrInvalidMonth = errors.New("save_schedule: invalid month")

	// ErrMinWeeklyHoursFailed возвращается, когда хотя бы одна неделя месяца не набирает минимум часов
	ErrMinWeeklyHoursFailed = errors.New("save_schedule: minimum weekly hours not met")

	// ErrDefaultWeekUpsertFailed возвращается при ошибке сохранения рабочих дней шаблона
	ErrDefaultWeekUpsertFailed = errors.New("save_schedule: default week upsert failed")

	// ErrDefaultWeekDeleteFailed возвращается при ошибке удаления выходных дней шаблона
	ErrDefaultWeekDeleteFailed = errors.New("save_schedule: default week delete failed")

	// ErrExceptionsUpsertFailed возвращается при ошибке сохранения исключений
	ErrExceptionsUpsertFailed = errors.New("save_schedule: exceptions upsert failed")

	// ErrAvailabilityDeleteFailed возвращается при ошибке удаления старых блоков доступности
	ErrAvailabilityDeleteFailed = errors.New("save_schedule: availability delete failed")

	// ErrAvailabilityInsertFailed возвращается при ошибке вставки новых блоков доступности
	ErrAvailabilityInsertFailed = errors.New("save_schedule: availability insert failed")
)

// WeeklyHoursError отказ в сохранении со списком недель, не набравших минимум
type WeeklyHoursError struct {
	MinHours float64
	Failures []domain.WeeklyHoursFailure
}

func (e *WeeklyHoursError) Error() string {
	return fmt.Sprintf("%v: %d week(s) below %.2f hours", ErrMinWeeklyHoursFailed, len(e.Failures), e.MinHours)
}

func (e *WeeklyHoursError) Unwrap() error {
	return ErrMinWeeklyHoursFailed
}
