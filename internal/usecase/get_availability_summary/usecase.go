package get_availability_summary

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// UseCase use case для сводки открытых блоков по дням
type UseCase struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Execute считает по каждой дате количество блоков со свободными местами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.Zip = strings.TrimSpace(req.Zip)
	if req.Zip == "" {
		return nil, ErrMissingZip
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, ErrMissingDate
	}

	from, to := domain.CivilDate(req.StartDate), domain.CivilDate(req.EndDate)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidRange)
	}
	if days := int(to.Sub(from).Hours() / 24); days > domain.MaxAvailabilitySummaryRangeDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidRange, days, domain.MaxAvailabilitySummaryRangeDays)
	}

	blocks, err := uc.availabilityRepo.GetOpenByZipAndPeriod(ctx, req.Zip, from, to)
	if err != nil {
		uc.logger.Error("GetAvailabilitySummary: zip=%s %s..%s: %v",
			req.Zip, from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %w", ErrAvailabilityQueryFailed, err)
	}

	return &Response{
		Zip:       req.Zip,
		StartDate: from,
		EndDate:   to,
		Days:      summarize(blocks),
	}, nil
}

// summarize считает блоки со свободными местами по датам (не сумму мест)
func summarize(blocks []*domain.AvailabilityBlock) []domain.AvailabilityDaySummary {
	counts := make(map[string]int)
	for _, b := range blocks {
		if !b.HasCapacity() {
			continue
		}
		counts[b.ServiceDate.Format(domain.DateFormat)]++
	}

	days := make([]domain.AvailabilityDaySummary, 0, len(counts))
	for date, n := range counts {
		days = append(days, domain.AvailabilityDaySummary{Date: date, OpenBlocks: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}
