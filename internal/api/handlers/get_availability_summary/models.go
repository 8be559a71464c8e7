package get_availability_summary

import (
	"github.com/m04kA/SMC-WashService/internal/domain"
	getAvailabilitySummary "github.com/m04kA/SMC-WashService/internal/usecase/get_availability_summary"
)

// AvailabilitySummaryResponse HTTP response model
type AvailabilitySummaryResponse struct {
	Zip       string       `json:"zip"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Days      []DaySummary `json:"days"`
}

type DaySummary struct {
	Date       string `json:"date"`
	OpenBlocks int    `json:"open_blocks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilitySummary.Response) *AvailabilitySummaryResponse {
	days := make([]DaySummary, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DaySummary{Date: d.Date, OpenBlocks: d.OpenBlocks}
	}

	return &AvailabilitySummaryResponse{
		Zip:       resp.Zip,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      days,
	}
}
