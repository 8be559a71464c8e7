package get_schedule

import (
	"github.com/m04kA/SMC-WashService/internal/domain"
	"github.com/m04kA/SMC-WashService/internal/service/schedule"
	"github.com/m04kA/SMC-WashService/pkg/types"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	WasherID    string              `json:"washerId"`
	Month       string              `json:"month"`
	DefaultWeek []WeekdayResponse   `json:"defaultWeek"`
	Exceptions  []ExceptionResponse `json:"exceptions"`
}

type WeekdayResponse struct {
	Weekday   int     `json:"weekday"`
	IsWorking bool    `json:"is_working"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Zip       string  `json:"zip"`
}

type ExceptionResponse struct {
	ServiceDate    string  `json:"service_date"`
	IsDayOff       bool    `json:"is_day_off"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	Zip            *string `json:"zip"`
	ApprovalStatus string  `json:"approval_status"`
}

// FromServiceResponse конвертирует расписание месяца в HTTP response
func FromServiceResponse(s *schedule.MonthSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		WasherID:    s.WasherID.String(),
		Month:       s.Month,
		DefaultWeek: make([]WeekdayResponse, 0, len(s.DefaultWeek)),
		Exceptions:  make([]ExceptionResponse, 0, len(s.Exceptions)),
	}

	for _, row := range s.DefaultWeek {
		resp.DefaultWeek = append(resp.DefaultWeek, WeekdayResponse{
			Weekday:   int(row.Weekday),
			IsWorking: row.IsWorking,
			StartTime: timeOrNil(row.StartTime),
			EndTime:   timeOrNil(row.EndTime),
			Zip:       row.Zip,
		})
	}

	for _, e := range s.Exceptions {
		resp.Exceptions = append(resp.Exceptions, ExceptionResponse{
			ServiceDate:    e.ServiceDate.Format(domain.DateFormat),
			IsDayOff:       e.IsDayOff,
			StartTime:      timeOrNil(e.StartTime),
			EndTime:        timeOrNil(e.EndTime),
			Zip:            e.Zip,
			ApprovalStatus: string(e.ApprovalStatus),
		})
	}

	return resp
}

func timeOrNil(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
