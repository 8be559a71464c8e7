package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/availability"
	creditRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-WashService/internal/schedule"
)

// UseCase use case для бронирования мойки с выбором мойщика
type UseCase struct {
	availabilityRepo AvailabilityRepository
	washRepo         WashRepository
	creditRepo       CreditRepository
	txManager        TransactionManager
	metrics          Metrics
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// location задает часовой пояс, в котором дата и время окна переводятся в scheduled_start.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	washRepo WashRepository,
	creditRepo CreditRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		washRepo:         washRepo,
		creditRepo:       creditRepo,
		txManager:        txManager,
		metrics:          metrics,
		location:         location,
		logger:           logger,
	}
}

// Execute выполняет бронирование.
// Резервирование места и создание мойки выполняются в одной сериализуемой транзакции,
// поэтому неудачная вставка мойки откатывает занятое место.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.reject("invalid_request")
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%s, zip=%s, date=%s, window=%s-%s, mode=%s",
		req.SharetribeUserID, req.Zip, req.ServiceDate.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Mode)

	// 2. Проверка кредитов подписки (ошибка чтения не блокирует бронирование)
	if err := uc.checkCredits(ctx, req.SharetribeUserID); err != nil {
		uc.reject("no_credits")
		return nil, err
	}

	// 3. Кандидаты: открытые блоки окна со свободными местами
	blocks, err := uc.availabilityRepo.GetOpenBySlot(ctx, req.Zip, req.ServiceDate, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrAvailabilityLookupFailed, err)
	}

	candidates := make([]*domain.AvailabilityBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.HasCapacity() {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		uc.logger.Warn("CreateBooking: no capacity in zip=%s on %s %s-%s",
			req.Zip, req.ServiceDate.Format(domain.DateFormat), req.StartTime, req.EndTime)
		uc.reject("no_capacity")
		return nil, ErrNoCapacity
	}

	// 4. Выбор мойщика
	var chosen *domain.AvailabilityBlock
	if req.Mode == domain.AssignmentSpecific {
		chosen = pickSpecific(candidates, *req.WasherID)
		if chosen == nil {
			uc.logger.Warn("CreateBooking: washer=%s is not available for this slot", req.WasherID)
			uc.reject("washer_not_available")
			return nil, ErrWasherNotAvailable
		}
	} else {
		chosen = pickFair(candidates, uc.completedThisMonth(ctx, req, candidates))
	}

	assignment := domain.Assignment{
		WasherID:       chosen.WasherID,
		AvailabilityID: chosen.ID,
		Mode:           req.Mode,
	}

	start, err := req.StartTime.OnDate(req.ServiceDate, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	end, err := req.EndTime.OnDate(req.ServiceDate, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time: %v", ErrInvalidInput, err)
	}

	var created *domain.Wash

	// 5. Резервирование и создание мойки в сериализуемой транзакции.
	// Устаревший снимок блоков отсекается условным UPDATE в Reserve.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Атомарно занимаем место в блоке
		if err := uc.availabilityRepo.Reserve(txCtx, chosen.ID); err != nil {
			switch {
			case errors.Is(err, availabilityRepo.ErrCapacityFull):
				return ErrCapacityFull
			case errors.Is(err, availabilityRepo.ErrAvailabilityNotFound):
				return ErrAvailabilityNotFound
			}
			return fmt.Errorf("%w: %w", ErrReserveFailed, err)
		}

		// 5.2. Создаем мойку
		washerID := chosen.WasherID
		wash, err := uc.washRepo.Create(txCtx, &domain.Wash{
			SharetribeUserID:    req.SharetribeUserID,
			WasherID:            &washerID,
			ScheduledStart:      start,
			ScheduledEnd:        &end,
			LocationID:          req.Zip,
			VehicleCount:        req.VehicleCount,
			Status:              domain.WashScheduled,
			SpecialInstructions: req.SpecialInstructions,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCreateWashFailed, err)
		}

		created = wash
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityFull):
			uc.logger.Warn("CreateBooking: availability id=%d filled up before reservation", chosen.ID)
			uc.reject("capacity_full")
		case errors.Is(err, ErrAvailabilityNotFound):
			uc.logger.Warn("CreateBooking: availability id=%d disappeared before reservation", chosen.ID)
			uc.reject("availability_not_found")
		default:
			uc.logger.Error("CreateBooking: transaction failed for availability id=%d: %v", chosen.ID, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(req.Mode))
	uc.logger.Info("CreateBooking: successfully created wash id=%d, washer=%s, availability id=%d, mode=%s",
		created.ID, assignment.WasherID, assignment.AvailabilityID, assignment.Mode)

	return &Response{
		Wash:       created,
		Assignment: assignment,
	}, nil
}

// checkCredits возвращает ErrNoCredits только если запись найдена и кредиты закончились
func (uc *UseCase) checkCredits(ctx context.Context, userID string) error {
	credit, err := uc.creditRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, creditRepo.ErrCreditNotFound) {
			uc.logger.Info("CreateBooking: no subscription credit record for user=%s, continuing", userID)
			return nil
		}
		uc.logger.Warn("CreateBooking: credit lookup failed for user=%s, continuing: %v", userID, err)
		return nil
	}

	if !credit.HasCredits() {
		uc.logger.Warn("CreateBooking: user=%s has no credits remaining", userID)
		return ErrNoCredits
	}

	return nil
}

// completedThisMonth считает завершенные мойки кандидатов в ZIP за UTC месяц даты.
// При ошибке возвращает пустую карту, и выбор идет только по washer_id.
func (uc *UseCase) completedThisMonth(ctx context.Context, req *Request, candidates []*domain.AvailabilityBlock) map[uuid.UUID]int {
	from, to := schedule.MonthBounds(req.ServiceDate)

	counts, err := uc.washRepo.CountCompletedByWashers(ctx, req.Zip, from, to, candidateWasherIDs(candidates))
	if err != nil {
		uc.logger.Warn("CreateBooking: fairness counts unavailable, using washer_id order: %v", err)
		return map[uuid.UUID]int{}
	}

	return counts
}

func (uc *UseCase) reject(reason string) {
	uc.metrics.IncBookingRejected(reason)
}
