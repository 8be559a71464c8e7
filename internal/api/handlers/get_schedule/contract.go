package get_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/service/schedule"
)

type ScheduleService interface {
	GetMonth(ctx context.Context, washerID uuid.UUID, month string) (*schedule.MonthSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
