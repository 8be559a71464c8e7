package schedule

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

const (
	weekTable       = "washer_default_week"
	exceptionsTable = "washer_schedule_exceptions"
)

var weekColumns = []string{
	"washer_id",
	"weekday",
	"is_working",
	"start_time",
	"end_time",
	"zip",
	"updated_at",
}

var exceptionColumns = []string{
	"washer_id",
	"service_date",
	"is_day_off",
	"start_time",
	"end_time",
	"zip",
	"approval_status",
	"updated_at",
}

type weekRow struct {
	WasherID  uuid.UUID         `db:"washer_id"`
	Weekday   int               `db:"weekday"`
	IsWorking bool              `db:"is_working"`
	StartTime *types.TimeString `db:"start_time"`
	EndTime   *types.TimeString `db:"end_time"`
	Zip       sql.NullString    `db:"zip"`
	UpdatedAt sql.NullTime      `db:"updated_at"`
}

func (r *weekRow) toDomain() domain.WeeklyTemplateRow {
	return domain.WeeklyTemplateRow{
		WasherID:  r.WasherID,
		Weekday:   time.Weekday(r.Weekday),
		IsWorking: r.IsWorking,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Zip:       r.Zip.String,
		UpdatedAt: r.UpdatedAt.Time,
	}
}

type exceptionRow struct {
	WasherID       uuid.UUID         `db:"washer_id"`
	ServiceDate    time.Time         `db:"service_date"`
	IsDayOff       bool              `db:"is_day_off"`
	StartTime      *types.TimeString `db:"start_time"`
	EndTime        *types.TimeString `db:"end_time"`
	Zip            sql.NullString    `db:"zip"`
	ApprovalStatus string            `db:"approval_status"`
	UpdatedAt      sql.NullTime      `db:"updated_at"`
}

func (r *exceptionRow) toDomain() domain.ScheduleException {
	ex := domain.ScheduleException{
		WasherID:       r.WasherID,
		ServiceDate:    domain.CivilDate(r.ServiceDate),
		IsDayOff:       r.IsDayOff,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		ApprovalStatus: domain.ApprovalStatus(r.ApprovalStatus),
		UpdatedAt:      r.UpdatedAt.Time,
	}
	if r.Zip.Valid {
		zip := r.Zip.String
		ex.Zip = &zip
	}
	return ex
}

// nullableTime передает NULL для отсутствующего времени
func nullableTime(t *types.TimeString) interface{} {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.String()
}

func nullableString(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
