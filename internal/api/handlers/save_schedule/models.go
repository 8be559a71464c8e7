package save_schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
	saveSchedule "github.com/m04kA/SMC-WashService/internal/usecase/save_schedule"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

var (
	errInvalidTime = errors.New("invalid time")
	errInvalidDate = errors.New("invalid date")
)

// SaveScheduleRequest HTTP request model.
// washerId в теле необязателен, берется из пути.
type SaveScheduleRequest struct {
	WasherID    string             `json:"washerId,omitempty"`
	Month       string             `json:"month"`
	DefaultZip  string             `json:"defaultZip"`
	DefaultWeek []WeekdayRequest   `json:"defaultWeek" validate:"dive"`
	Exceptions  []ExceptionRequest `json:"exceptions" validate:"dive"`
}

type WeekdayRequest struct {
	Weekday   int     `json:"weekday" validate:"min=0,max=6"`
	IsWorking bool    `json:"is_working"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Zip       string  `json:"zip"`
}

type ExceptionRequest struct {
	ServiceDate    string  `json:"service_date"`
	IsDayOff       bool    `json:"is_day_off"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	Zip            *string `json:"zip"`
	ApprovalStatus string  `json:"approval_status"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	WasherID      string            `json:"washerId"`
	MonthStart    string            `json:"monthStart"`
	MonthEnd      string            `json:"monthEnd"`
	OK            bool              `json:"ok"`
	Persisted     bool              `json:"persisted"`
	BlocksCreated int               `json:"blocksCreated"`
	Days          []DayResponse     `json:"days"`
	Failures      []FailureResponse `json:"failures"`
}

type DayResponse struct {
	Date      string  `json:"date"`
	Weekday   int     `json:"weekday"`
	IsWorking bool    `json:"is_working"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Zip       string  `json:"zip"`
	Hours     float64 `json:"hours"`
}

type FailureResponse struct {
	WeekStart string  `json:"weekStart"`
	Hours     float64 `json:"hours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Исключения без service_date отбрасываются.
func (r *SaveScheduleRequest) ToUseCaseRequest(washerID uuid.UUID) (*saveSchedule.Request, error) {
	req := &saveSchedule.Request{
		WasherID:    washerID,
		Month:       strings.TrimSpace(r.Month),
		DefaultZip:  r.DefaultZip,
		DefaultWeek: make([]saveSchedule.WeekdayInput, 0, len(r.DefaultWeek)),
		Exceptions:  make([]saveSchedule.ExceptionInput, 0, len(r.Exceptions)),
	}

	for _, d := range r.DefaultWeek {
		start, err := parseOptionalTime(d.StartTime)
		if err != nil {
			return nil, fmt.Errorf("weekday %d start_time: %w", d.Weekday, err)
		}
		end, err := parseOptionalTime(d.EndTime)
		if err != nil {
			return nil, fmt.Errorf("weekday %d end_time: %w", d.Weekday, err)
		}
		req.DefaultWeek = append(req.DefaultWeek, saveSchedule.WeekdayInput{
			Weekday:   time.Weekday(d.Weekday),
			IsWorking: d.IsWorking,
			StartTime: start,
			EndTime:   end,
			Zip:       d.Zip,
		})
	}

	for _, e := range r.Exceptions {
		if strings.TrimSpace(e.ServiceDate) == "" {
			continue
		}
		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(e.ServiceDate))
		if err != nil {
			return nil, fmt.Errorf("%w: service_date %q", errInvalidDate, e.ServiceDate)
		}
		start, err := parseOptionalTime(e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%s start_time: %w", e.ServiceDate, err)
		}
		end, err := parseOptionalTime(e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%s end_time: %w", e.ServiceDate, err)
		}
		req.Exceptions = append(req.Exceptions, saveSchedule.ExceptionInput{
			ServiceDate:    date,
			IsDayOff:       e.IsDayOff,
			StartTime:      start,
			EndTime:        end,
			Zip:            e.Zip,
			ApprovalStatus: domain.ApprovalStatus(strings.TrimSpace(e.ApprovalStatus)),
		})
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		WasherID:      resp.WasherID.String(),
		MonthStart:    resp.MonthStart.Format(domain.DateFormat),
		MonthEnd:      resp.MonthEnd.Format(domain.DateFormat),
		OK:            resp.OK,
		Persisted:     resp.Persisted,
		BlocksCreated: resp.BlocksCreated,
		Days:          make([]DayResponse, 0, len(resp.Days)),
		Failures:      FromFailures(resp.Failures),
	}

	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Date:      d.Date.Format(domain.DateFormat),
			Weekday:   int(d.Weekday),
			IsWorking: d.IsWorking,
			StartTime: timeOrNil(d.StartTime),
			EndTime:   timeOrNil(d.EndTime),
			Zip:       d.Zip,
			Hours:     d.Hours,
		})
	}

	return out
}

// FromFailures конвертирует недели ниже минимума
func FromFailures(failures []domain.WeeklyHoursFailure) []FailureResponse {
	out := make([]FailureResponse, 0, len(failures))
	for _, f := range failures {
		out = append(out, FailureResponse{
			WeekStart: f.WeekStart.Format(domain.DateFormat),
			Hours:     f.Hours,
		})
	}
	return out
}

func parseOptionalTime(s *string) (*types.TimeString, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := types.NewTimeStringFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidTime, *s)
	}
	return &t, nil
}

func timeOrNil(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
