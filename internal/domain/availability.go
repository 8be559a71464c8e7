package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/pkg/types"
)

// AvailabilityStatus статус блока доступности
type AvailabilityStatus string

const (
	AvailabilityOpen   AvailabilityStatus = "open"
	AvailabilityClosed AvailabilityStatus = "closed"
)

// AvailabilityBlock окно работы мойщика на дату с ограниченной вместимостью
type AvailabilityBlock struct {
	ID              int64
	WasherID        uuid.UUID
	ServiceDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Location        string // ZIP
	Status          AvailabilityStatus
	MaxBookings     int
	CurrentBookings int
	CreatedAt       time.Time
}

// HasCapacity проверяет, что блок открыт и в нем есть свободные места
func (b *AvailabilityBlock) HasCapacity() bool {
	return b.Status == AvailabilityOpen && b.CurrentBookings < b.MaxBookings
}

// RemainingCapacity возвращает количество свободных мест
func (b *AvailabilityBlock) RemainingCapacity() int {
	return max(0, b.MaxBookings-b.CurrentBookings)
}

// AvailabilityFilter фильтр для административного списка блоков.
// Нулевые поля не ограничивают выборку.
type AvailabilityFilter struct {
	Location  *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *AvailabilityStatus
	Limit     int
}
