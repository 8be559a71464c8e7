package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблона и исключений
type ScheduleRepository interface {
	GetWeekByWasher(ctx context.Context, washerID uuid.UUID) ([]domain.WeeklyTemplateRow, error)
	GetExceptionsByPeriod(ctx context.Context, washerID uuid.UUID, from, to time.Time) ([]domain.ScheduleException, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
