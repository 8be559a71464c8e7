package save_schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблона и исключений
type ScheduleRepository interface {
	UpsertWeekRows(ctx context.Context, rows []domain.WeeklyTemplateRow) error
	DeleteWeekdays(ctx context.Context, washerID uuid.UUID, weekdays []time.Weekday) error
	UpsertExceptions(ctx context.Context, exceptions []domain.ScheduleException) error
}

// AvailabilityRepository интерфейс репозитория блоков доступности
type AvailabilityRepository interface {
	DeleteByWasherAndPeriod(ctx context.Context, washerID uuid.UUID, from, to time.Time) (int64, error)
	CreateBatch(ctx context.Context, blocks []domain.AvailabilityBlock) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики сохранения расписания
type Metrics interface {
	IncScheduleSave(outcome string)
	AddGeneratedBlocks(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
