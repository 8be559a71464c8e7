package washes

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// WashRepository интерфейс репозитория моек
type WashRepository interface {
	Create(ctx context.Context, wash *domain.Wash) (*domain.Wash, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Wash, error)
	List(ctx context.Context, limit int) ([]*domain.Wash, error)
}

// AvailabilityRepository интерфейс репозитория блоков доступности
type AvailabilityRepository interface {
	List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilityBlock, error)
}

// CreditRepository интерфейс репозитория кредитов подписки
type CreditRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.SubscriptionCredit, error)
}

// WasherDirectory источник профилей мойщиков (кэш поверх репозитория)
type WasherDirectory interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Washer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
