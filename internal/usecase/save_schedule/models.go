package save_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// Request модель запроса на сохранение расписания мойщика на месяц
type Request struct {
	WasherID    uuid.UUID
	Month       string // YYYY-MM
	DefaultZip  string // ZIP для дней шаблона без своего ZIP
	DefaultWeek []WeekdayInput
	Exceptions  []ExceptionInput
}

// WeekdayInput день недельного шаблона
type WeekdayInput struct {
	Weekday   time.Weekday
	IsWorking bool
	StartTime *types.TimeString // по умолчанию 10:00:00
	EndTime   *types.TimeString // по умолчанию 15:00:00
	Zip       string
}

// ExceptionInput исключение на конкретную дату
type ExceptionInput struct {
	ServiceDate    time.Time
	IsDayOff       bool
	StartTime      *types.TimeString
	EndTime        *types.TimeString
	Zip            *string
	ApprovalStatus domain.ApprovalStatus // по умолчанию approved
}

// Response результат сохранения или предпросмотра
type Response struct {
	WasherID      uuid.UUID
	MonthStart    time.Time
	MonthEnd      time.Time
	Days          []domain.EffectiveDay
	OK            bool
	Failures      []domain.WeeklyHoursFailure
	BlocksCreated int
	Persisted     bool
}

// plan нормализованный и проверенный план месяца
type plan struct {
	washerID    uuid.UUID
	monthStart  time.Time
	monthEnd    time.Time
	defaultZip  string // ZIP дней без своего ZIP, уже с учетом значения из настроек
	workingDays []domain.WeeklyTemplateRow
	offDays     []time.Weekday
	exceptions  []domain.ScheduleException
}
