package washes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	creditRepo "github.com/m04kA/SMC-WashService/internal/infra/storage/credit"
	"github.com/m04kA/SMC-WashService/internal/service/washes/models"
	"github.com/m04kA/SMC-WashService/pkg/ptr"
)

// Service сервис для кабинета клиента и административных операций с мойками
type Service struct {
	washRepo         WashRepository
	availabilityRepo AvailabilityRepository
	creditRepo       CreditRepository
	washers          WasherDirectory
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger
}

// NewService создает новый экземпляр сервиса моек
func NewService(
	washRepo WashRepository,
	availabilityRepo AvailabilityRepository,
	creditRepo CreditRepository,
	washers WasherDirectory,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		washRepo:         washRepo,
		availabilityRepo: availabilityRepo,
		creditRepo:       creditRepo,
		washers:          washers,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// GetDashboard возвращает предстоящие и прошедшие мойки пользователя и остаток кредитов.
// Ошибка чтения кредитов или профилей мойщиков не ломает кабинет.
func (s *Service) GetDashboard(ctx context.Context, userID string) (*models.DashboardResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	s.logger.Info("GetDashboard: fetching washes for user=%s", userID)

	washes, err := s.washRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetDashboard: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetDashboard - repository error: %w", ErrWashesQueryFailed, err)
	}

	profiles := s.lookupWashers(ctx, "GetDashboard", washerIDsOfWashes(washes))

	now := s.timeProvider.Now()
	resp := &models.DashboardResponse{
		Upcoming: []models.DashboardWash{},
		Past:     []models.DashboardWash{},
	}
	for _, w := range washes {
		var washer *domain.Washer
		if w.WasherID != nil {
			washer = profiles[*w.WasherID]
		}
		item := models.FromDomainDashboardWash(w, washer, s.location)
		if w.IsUpcoming(now) {
			resp.Upcoming = append(resp.Upcoming, item)
		} else {
			resp.Past = append(resp.Past, item)
		}
	}

	credit, err := s.creditRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		resp.Credits = models.FromDomainCredit(credit)
	case errors.Is(err, creditRepo.ErrCreditNotFound):
	default:
		s.logger.Error("GetDashboard: failed to get credits for user=%s: %v", userID, err)
	}

	s.logger.Info("GetDashboard: user=%s has %d upcoming and %d past wash(es)",
		userID, len(resp.Upcoming), len(resp.Past))
	return resp, nil
}

// CreateAdminWash создает мойку вручную, минуя проверку вместимости блоков
func (s *Service) CreateAdminWash(ctx context.Context, req *models.CreateWashRequest) (*models.CreateWashResponse, error) {
	// 1. Валидация входных данных
	wash, err := buildAdminWash(req)
	if err != nil {
		s.logger.Warn("CreateAdminWash: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("CreateAdminWash: user=%s, location=%s, start=%s",
		wash.SharetribeUserID, wash.LocationID, wash.ScheduledStart.UTC().Format(time.RFC3339))

	// 2. Сохраняем мойку
	created, err := s.washRepo.Create(ctx, wash)
	if err != nil {
		s.logger.Error("CreateAdminWash: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateAdminWash - repository error: %w", ErrCreateWashFailed, err)
	}

	s.logger.Info("CreateAdminWash: successfully created wash id=%d", created.ID)
	return &models.CreateWashResponse{Wash: models.FromDomainWash(created)}, nil
}

// ListWashes возвращает последние мойки, новые первыми
func (s *Service) ListWashes(ctx context.Context, limit int) (*models.WashListResponse, error) {
	if limit <= 0 {
		limit = domain.DefaultAdminWashesLimit
	}
	limit = min(limit, domain.MaxAdminWashesLimit)

	washes, err := s.washRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error("ListWashes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWashes - repository error: %w", ErrWashesQueryFailed, err)
	}

	s.logger.Info("ListWashes: fetched %d wash(es), limit=%d", len(washes), limit)
	resp := models.FromDomainWashList(washes)
	return &resp, nil
}

// ListAvailability возвращает открытые блоки с профилем мойщика
func (s *Service) ListAvailability(ctx context.Context, req *models.ListAvailabilityRequest) (*models.AvailabilityListResponse, error) {
	filter := domain.AvailabilityFilter{
		Status: ptr.Ptr(domain.AvailabilityOpen),
	}
	if req.Zip != nil && strings.TrimSpace(*req.Zip) != "" {
		filter.Location = ptr.Ptr(strings.TrimSpace(*req.Zip))
	}
	if req.StartDate != nil {
		filter.StartDate = ptr.Ptr(domain.CivilDate(*req.StartDate))
	}
	if req.EndDate != nil {
		filter.EndDate = ptr.Ptr(domain.CivilDate(*req.EndDate))
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	blocks, err := s.availabilityRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailability - repository error: %w", ErrAvailabilityQueryFailed, err)
	}

	ids := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.WasherID)
	}
	profiles := s.lookupWashers(ctx, "ListAvailability", ids)

	items := make([]models.AvailabilityItem, 0, len(blocks))
	for _, b := range blocks {
		items = append(items, models.FromDomainAvailability(b, profiles[b.WasherID]))
	}

	s.logger.Info("ListAvailability: fetched %d open block(s)", len(items))
	return &models.AvailabilityListResponse{Availability: items}, nil
}

// lookupWashers возвращает профили мойщиков или пустую карту при ошибке
func (s *Service) lookupWashers(ctx context.Context, op string, ids []uuid.UUID) map[uuid.UUID]*domain.Washer {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.Washer{}
	}

	profiles, err := s.washers.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("%s: washer profiles unavailable: %v", op, err)
		return map[uuid.UUID]*domain.Washer{}
	}
	return profiles
}

func washerIDsOfWashes(washes []*domain.Wash) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(washes))
	for _, w := range washes {
		if w.WasherID == nil {
			continue
		}
		if _, ok := seen[*w.WasherID]; ok {
			continue
		}
		seen[*w.WasherID] = struct{}{}
		ids = append(ids, *w.WasherID)
	}
	return ids
}

// buildAdminWash проверяет запрос и подставляет значения по умолчанию
func buildAdminWash(req *models.CreateWashRequest) (*domain.Wash, error) {
	userID := strings.TrimSpace(req.SharetribeUserID)
	locationID := strings.TrimSpace(req.LocationID)
	if userID == "" || locationID == "" || req.ScheduledStart == nil || req.ScheduledStart.IsZero() {
		return nil, fmt.Errorf("%w: sharetribe_user_id, scheduled_start and location_id are required", ErrMissingRequiredFields)
	}

	status := domain.WashScheduled
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		status = domain.WashStatus(strings.TrimSpace(*req.Status))
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
	}

	vehicles := ptr.Deref(req.VehicleCount, domain.DefaultVehicleCount)
	if vehicles < 1 || vehicles > domain.MaxVehicleCount {
		return nil, fmt.Errorf("%w: vehicle_count must be between 1 and %d", ErrInvalidInput, domain.MaxVehicleCount)
	}

	if req.ScheduledEnd != nil && !req.ScheduledEnd.After(*req.ScheduledStart) {
		return nil, fmt.Errorf("%w: scheduled_end must be after scheduled_start", ErrInvalidInput)
	}

	wash := &domain.Wash{
		SharetribeUserID:           userID,
		SubscriptionID:             nonEmpty(req.SubscriptionID),
		WasherID:                   req.WasherID,
		ScheduledStart:             *req.ScheduledStart,
		ScheduledEnd:               req.ScheduledEnd,
		LocationID:                 locationID,
		VehicleCount:               vehicles,
		Status:                     status,
		SpecialInstructions:        nonEmpty(req.SpecialInstructions),
		LateCancellationFeeApplied: false,
	}
	return wash, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return ptr.Ptr(strings.TrimSpace(*s))
}
