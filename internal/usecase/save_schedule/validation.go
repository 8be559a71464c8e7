package save_schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/internal/schedule"
	"github.com/m04kA/SMC-WashService/pkg/ptr"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// buildPlan валидирует запрос и приводит его к плану месяца:
// ровно 7 дней шаблона и не более одного исключения на дату
func buildPlan(req *Request, fallbackZip string) (*plan, error) {
	if req.WasherID == uuid.Nil {
		return nil, fmt.Errorf("%w: washerId is required", ErrInvalidInput)
	}

	monthStart, monthEnd, err := schedule.ParseMonth(req.Month)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidMonth) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, req.Month)
		}
		return nil, err
	}

	defaultZip := strings.TrimSpace(req.DefaultZip)
	if defaultZip == "" {
		defaultZip = fallbackZip
	}

	working, off, err := normalizeWeek(req.WasherID, req.DefaultWeek, defaultZip)
	if err != nil {
		return nil, err
	}

	exceptions, err := normalizeExceptions(req.WasherID, req.Exceptions)
	if err != nil {
		return nil, err
	}

	return &plan{
		washerID:    req.WasherID,
		monthStart:  monthStart,
		monthEnd:    monthEnd,
		defaultZip:  defaultZip,
		workingDays: working,
		offDays:     off,
		exceptions:  exceptions,
	}, nil
}

// normalizeWeek разворачивает шаблон на все 7 дней недели.
// Дни, не переданные в запросе, считаются выходными.
func normalizeWeek(washerID uuid.UUID, inputs []WeekdayInput, defaultZip string) ([]domain.WeeklyTemplateRow, []time.Weekday, error) {
	byWeekday := make(map[time.Weekday]WeekdayInput, len(inputs))
	for _, in := range inputs {
		if in.Weekday < time.Sunday || in.Weekday > time.Saturday {
			return nil, nil, fmt.Errorf("%w: weekday %d out of range 0..6", ErrInvalidInput, in.Weekday)
		}
		if _, dup := byWeekday[in.Weekday]; dup {
			return nil, nil, fmt.Errorf("%w: weekday %d listed twice", ErrInvalidInput, in.Weekday)
		}
		byWeekday[in.Weekday] = in
	}

	var (
		working []domain.WeeklyTemplateRow
		off     []time.Weekday
	)

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		in, ok := byWeekday[wd]
		if !ok || !in.IsWorking {
			off = append(off, wd)
			continue
		}

		start := ptr.Deref(in.StartTime, domain.DefaultShiftStart)
		end := ptr.Deref(in.EndTime, domain.DefaultShiftEnd)
		if !start.IsBefore(end) {
			return nil, nil, fmt.Errorf("%w: %s end_time %s must be after start_time %s", ErrInvalidInput, wd, end, start)
		}

		zip := strings.TrimSpace(in.Zip)
		if zip == "" {
			zip = defaultZip
		}

		working = append(working, domain.WeeklyTemplateRow{
			WasherID:  washerID,
			Weekday:   wd,
			IsWorking: true,
			StartTime: ptr.Ptr(start),
			EndTime:   ptr.Ptr(end),
			Zip:       zip,
		})
	}

	return working, off, nil
}

// normalizeExceptions проверяет исключения и схлопывает дубликаты дат (побеждает последнее)
func normalizeExceptions(washerID uuid.UUID, inputs []ExceptionInput) ([]domain.ScheduleException, error) {
	byDate := make(map[time.Time]domain.ScheduleException, len(inputs))

	for _, in := range inputs {
		if in.ServiceDate.IsZero() {
			return nil, fmt.Errorf("%w: exception service_date is required", ErrInvalidInput)
		}

		status := in.ApprovalStatus
		if status == "" {
			status = domain.ApprovalApproved
		}
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown approval_status %q", ErrInvalidInput, status)
		}

		ex := domain.ScheduleException{
			WasherID:       washerID,
			ServiceDate:    domain.CivilDate(in.ServiceDate),
			IsDayOff:       in.IsDayOff,
			ApprovalStatus: status,
		}

		if zip := strings.TrimSpace(ptr.Deref(in.Zip, "")); zip != "" {
			ex.Zip = ptr.Ptr(zip)
		}

		if !in.IsDayOff {
			ex.StartTime = in.StartTime
			ex.EndTime = in.EndTime
			if err := validateWindow(ex.StartTime, ex.EndTime); err != nil {
				return nil, fmt.Errorf("%w: exception %s: %v", ErrInvalidInput, ex.ServiceDate.Format(domain.DateFormat), err)
			}
		}

		byDate[ex.ServiceDate] = ex
	}

	result := make([]domain.ScheduleException, 0, len(byDate))
	for _, ex := range byDate {
		result = append(result, ex)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ServiceDate.Before(result[j].ServiceDate) })

	return result, nil
}

func validateWindow(start, end *types.TimeString) error {
	if start == nil || end == nil {
		return nil
	}
	if !start.IsBefore(*end) {
		return fmt.Errorf("end_time %s must be after start_time %s", *end, *start)
	}
	return nil
}
