package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/pkg/types"
)

// ApprovalStatus статус согласования исключения из расписания
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid проверяет, что статус известен
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// WeeklyTemplateRow строка недельного шаблона мойщика, по одной на день недели
type WeeklyTemplateRow struct {
	WasherID  uuid.UUID
	Weekday   time.Weekday
	IsWorking bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Zip       string
	UpdatedAt time.Time
}

// ScheduleException переопределение шаблона на конкретную дату
type ScheduleException struct {
	WasherID       uuid.UUID
	ServiceDate    time.Time
	IsDayOff       bool
	StartTime      *types.TimeString
	EndTime        *types.TimeString
	Zip            *string
	ApprovalStatus ApprovalStatus
	UpdatedAt      time.Time
}

// Applies проверяет, что исключение участвует в расчете расписания.
// Отклоненные исключения игнорируются.
func (e *ScheduleException) Applies() bool {
	return e.ApprovalStatus != ApprovalRejected
}

// EffectiveDay итоговое расписание мойщика на одну дату
type EffectiveDay struct {
	Date      time.Time
	Weekday   time.Weekday
	IsWorking bool
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Zip       string
	Hours     float64
}

// IsBookable проверяет, что по дню можно создать блок доступности
func (d *EffectiveDay) IsBookable() bool {
	return d.IsWorking && d.StartTime != nil && d.EndTime != nil && d.Zip != ""
}

// WeeklyHoursFailure неделя, в которой мойщик не набрал минимум часов
type WeeklyHoursFailure struct {
	WeekStart time.Time
	Hours     float64
}

// CivilDate приводит момент времени к календарной дате в UTC (полночь)
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
