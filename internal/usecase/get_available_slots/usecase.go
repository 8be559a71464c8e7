package get_available_slots

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// UseCase use case для получения слотов дня в ZIP
type UseCase struct {
	availabilityRepo AvailabilityRepository
	washers          WasherDirectory
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, washers WasherDirectory, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		washers:          washers,
		logger:           logger,
	}
}

// Execute возвращает окна со свободными местами и список мойщиков в каждом окне
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.CivilDate(req.Date)

	// 2. Открытые блоки ZIP на дату
	blocks, err := uc.availabilityRepo.GetOpenByZipAndDate(ctx, req.Zip, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: zip=%s date=%s: %v", req.Zip, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrAvailabilityQueryFailed, err)
	}

	// 3. Профили мойщиков. Без них слоты все равно отдаются, только без имен.
	ids := washerIDs(blocks)
	washers := map[uuid.UUID]*domain.Washer{}
	if len(ids) > 0 {
		washers, err = uc.washers.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: washer profiles unavailable, returning slots without names: %v", err)
			washers = map[uuid.UUID]*domain.Washer{}
		}
	}

	// 4. Группировка по окнам
	slots := aggregateSlots(blocks, washers)

	uc.logger.Info("GetAvailableSlots: zip=%s date=%s, %d block(s), %d slot(s)",
		req.Zip, date.Format(domain.DateFormat), len(blocks), len(slots))

	return &Response{
		Zip:   req.Zip,
		Date:  date,
		Slots: slots,
	}, nil
}
