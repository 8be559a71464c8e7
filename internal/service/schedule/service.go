package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/internal/schedule"
)

// MonthSchedule сохраненный шаблон мойщика и его исключения за месяц
type MonthSchedule struct {
	WasherID    uuid.UUID
	Month       string
	MonthStart  time.Time
	MonthEnd    time.Time
	DefaultWeek []domain.WeeklyTemplateRow
	Exceptions  []domain.ScheduleException
}

// Service сервис чтения расписания мойщика для редактирования
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetMonth возвращает шаблон и исключения месяца одним снимком
func (s *Service) GetMonth(ctx context.Context, washerID uuid.UUID, month string) (*MonthSchedule, error) {
	if washerID == uuid.Nil {
		return nil, fmt.Errorf("%w: washerId is required", ErrInvalidInput)
	}

	monthStart, monthEnd, err := schedule.ParseMonth(month)
	if err != nil {
		s.logger.Warn("GetMonth: invalid month=%q for washer=%s", month, washerID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}

	result := &MonthSchedule{
		WasherID:   washerID,
		Month:      monthStart.Format(domain.MonthFormat),
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
	}

	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		week, err := s.scheduleRepo.GetWeekByWasher(txCtx, washerID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDefaultWeekQueryFailed, err)
		}
		result.DefaultWeek = week

		exceptions, err := s.scheduleRepo.GetExceptionsByPeriod(txCtx, washerID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExceptionsQueryFailed, err)
		}
		result.Exceptions = exceptions
		return nil
	})
	if err != nil {
		s.logger.Error("GetMonth: washer=%s month=%s: %v", washerID, month, err)
		return nil, err
	}

	s.logger.Info("GetMonth: washer=%s month=%s, %d template row(s), %d exception(s)",
		washerID, month, len(result.DefaultWeek), len(result.Exceptions))
	return result, nil
}
