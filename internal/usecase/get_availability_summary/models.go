package get_availability_summary

import (
	"time"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// Request модель запроса сводки по дням
type Request struct {
	Zip       string
	StartDate time.Time
	EndDate   time.Time
}

// Response сводка по дням: только даты, где есть хотя бы один блок со свободными местами
type Response struct {
	Zip       string
	StartDate time.Time
	EndDate   time.Time
	Days      []domain.AvailabilityDaySummary
}
