package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// AvailabilityRepository интерфейс репозитория блоков доступности
type AvailabilityRepository interface {
	GetOpenBySlot(ctx context.Context, zip string, date time.Time, start, end types.TimeString) ([]*domain.AvailabilityBlock, error)
	Reserve(ctx context.Context, id int64) error
}

// WashRepository интерфейс репозитория моек
type WashRepository interface {
	Create(ctx context.Context, wash *domain.Wash) (*domain.Wash, error)
	CountCompletedByWashers(ctx context.Context, zip string, from, to time.Time, washerIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// CreditRepository интерфейс репозитория кредитов подписки
type CreditRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.SubscriptionCredit, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	IncBookingCreated(mode string)
	IncBookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
