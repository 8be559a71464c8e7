package save_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WashService/internal/schedule"
)

const (
	outcomeSaved    = "saved"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// Settings бизнес-параметры сохранения расписания
type Settings struct {
	MaxBookingsPerBlock int
	MinWeeklyHours      float64
	DefaultZip          string
}

// UseCase use case для сохранения месячного расписания мойщика
// и перегенерации его блоков доступности
type UseCase struct {
	scheduleRepo     ScheduleRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	metrics          Metrics
	settings         Settings
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	metrics Metrics,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:     scheduleRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		metrics:          metrics,
		settings:         settings,
		logger:           logger,
	}
}

// Preview рассчитывает итоговое расписание и проверку часов без записи в БД
func (uc *UseCase) Preview(ctx context.Context, req *Request) (*Response, error) {
	p, err := buildPlan(req, uc.settings.DefaultZip)
	if err != nil {
		uc.logger.Warn("PreviewSchedule: validation failed: %v", err)
		return nil, err
	}

	days := schedule.ResolveMonth(p.workingDays, p.exceptions, p.monthStart, p.monthEnd, p.defaultZip)
	result := schedule.ValidateWeeklyHours(days, uc.settings.MinWeeklyHours)

	return &Response{
		WasherID:   p.washerID,
		MonthStart: p.monthStart,
		MonthEnd:   p.monthEnd,
		Days:       days,
		OK:         result.OK,
		Failures:   result.Failures,
	}, nil
}

// Execute сохраняет шаблон и исключения и заменяет блоки доступности месяца.
// Если хотя бы одна неделя не набирает минимум часов, ничего не записывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSchedule: washer=%s, month=%s, weekdays=%d, exceptions=%d",
		req.WasherID, req.Month, len(req.DefaultWeek), len(req.Exceptions))

	// 1. Валидация и нормализация входных данных
	p, err := buildPlan(req, uc.settings.DefaultZip)
	if err != nil {
		uc.logger.Warn("SaveSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Итоговое расписание на каждый день месяца
	days := schedule.ResolveMonth(p.workingDays, p.exceptions, p.monthStart, p.monthEnd, p.defaultZip)

	// 3. Проверка недельного минимума до любой записи
	result := schedule.ValidateWeeklyHours(days, uc.settings.MinWeeklyHours)
	if !result.OK {
		uc.logger.Warn("SaveSchedule: washer=%s month=%s rejected, %d week(s) below %.2f hours",
			p.washerID, req.Month, len(result.Failures), uc.settings.MinWeeklyHours)
		uc.metrics.IncScheduleSave(outcomeRejected)
		return nil, &WeeklyHoursError{MinHours: uc.settings.MinWeeklyHours, Failures: result.Failures}
	}

	// 4. Новые блоки доступности
	blocks := schedule.BuildAvailabilityBlocks(p.washerID, days, uc.settings.MaxBookingsPerBlock)

	// 5. Шаблон, исключения и замена блоков одной транзакцией
	var inserted int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.scheduleRepo.UpsertWeekRows(txCtx, p.workingDays); err != nil {
			return fmt.Errorf("%w: %w", ErrDefaultWeekUpsertFailed, err)
		}

		if err := uc.scheduleRepo.DeleteWeekdays(txCtx, p.washerID, p.offDays); err != nil {
			return fmt.Errorf("%w: %w", ErrDefaultWeekDeleteFailed, err)
		}

		if err := uc.scheduleRepo.UpsertExceptions(txCtx, p.exceptions); err != nil {
			return fmt.Errorf("%w: %w", ErrExceptionsUpsertFailed, err)
		}

		deleted, err := uc.availabilityRepo.DeleteByWasherAndPeriod(txCtx, p.washerID, p.monthStart, p.monthEnd)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAvailabilityDeleteFailed, err)
		}

		inserted, err = uc.availabilityRepo.CreateBatch(txCtx, blocks)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAvailabilityInsertFailed, err)
		}

		uc.logger.Info("SaveSchedule: washer=%s month=%s replaced %d availability block(s) with %d",
			p.washerID, req.Month, deleted, inserted)
		return nil
	})
	if err != nil {
		uc.logger.Error("SaveSchedule: washer=%s month=%s failed: %v", p.washerID, req.Month, err)
		uc.metrics.IncScheduleSave(outcomeFailed)
		return nil, err
	}

	uc.metrics.IncScheduleSave(outcomeSaved)
	uc.metrics.AddGeneratedBlocks(int(inserted))

	return &Response{
		WasherID:      p.washerID,
		MonthStart:    p.monthStart,
		MonthEnd:      p.monthEnd,
		Days:          days,
		OK:            true,
		BlocksCreated: int(inserted),
		Persisted:     true,
	}, nil
}
