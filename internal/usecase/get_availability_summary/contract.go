package get_availability_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория блоков доступности
type AvailabilityRepository interface {
	GetOpenByZipAndPeriod(ctx context.Context, zip string, from, to time.Time) ([]*domain.AvailabilityBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
