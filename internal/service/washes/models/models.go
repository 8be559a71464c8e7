package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/internal/domain"
)

// Request модели

// CreateWashRequest запрос администратора на ручное создание мойки
type CreateWashRequest struct {
	SharetribeUserID    string     `json:"sharetribe_user_id" validate:"required"`
	SubscriptionID      *string    `json:"subscription_id,omitempty"`
	WasherID            *uuid.UUID `json:"washer_id,omitempty"`
	Status              *string    `json:"status,omitempty"`
	ScheduledStart      *time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd        *time.Time `json:"scheduled_end,omitempty"`
	LocationID          string     `json:"location_id" validate:"required"`
	VehicleCount        *int       `json:"vehicle_count,omitempty" validate:"omitempty,min=1,max=10"`
	SpecialInstructions *string    `json:"special_instructions,omitempty" validate:"omitempty,max=500"`
}

// ListAvailabilityRequest фильтр административного списка блоков
type ListAvailabilityRequest struct {
	Zip       *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Response модели

// WashResponse мойка в формате API
type WashResponse struct {
	ID                         int64   `json:"id"`
	SharetribeUserID           string  `json:"sharetribe_user_id"`
	SubscriptionID             *string `json:"subscription_id"`
	WasherID                   *string `json:"washer_id"`
	ScheduledStart             string  `json:"scheduled_start"` // RFC3339
	ScheduledEnd               *string `json:"scheduled_end"`
	LocationID                 string  `json:"location_id"`
	VehicleCount               int     `json:"vehicle_count"`
	Status                     string  `json:"status"`
	SpecialInstructions        *string `json:"special_instructions"`
	LateCancellationFeeApplied bool    `json:"late_cancellation_fee_applied"`
	CreatedAt                  string  `json:"created_at"`
}

// CreateWashResponse ответ на ручное создание мойки
type CreateWashResponse struct {
	Wash WashResponse `json:"wash"`
}

// WashListResponse список моек
type WashListResponse struct {
	Washes []WashResponse `json:"washes"`
}

// DashboardWash мойка в кабинете клиента
type DashboardWash struct {
	ID             int64   `json:"id"`
	ScheduledStart string  `json:"scheduledStart"`
	Date           string  `json:"date"` // "2026-09-14" в часовом поясе бронирования
	Time           string  `json:"time"` // "10:00"
	Location       string  `json:"location"`
	WasherID       *string `json:"washerId"`
	WasherName     string  `json:"washerName"`
	WasherPhone    string  `json:"washerPhone"`
	Status         string  `json:"status"`
	VehicleCount   int     `json:"vehicleCount"`
}

// CreditsResponse остаток кредитов подписки
type CreditsResponse struct {
	Remaining int    `json:"remaining"`
	PlanLabel string `json:"planLabel"`
}

// DashboardResponse кабинет клиента
type DashboardResponse struct {
	Upcoming []DashboardWash  `json:"upcoming"`
	Past     []DashboardWash  `json:"past"`
	Credits  *CreditsResponse `json:"credits"`
}

// WasherResponse профиль мойщика
type WasherResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}

// AvailabilityItem блок доступности с профилем мойщика
type AvailabilityItem struct {
	ID              int64           `json:"id"`
	WasherID        string          `json:"washer_id"`
	ServiceDate     string          `json:"service_date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	Location        string          `json:"location"`
	Status          string          `json:"status"`
	MaxBookings     int             `json:"max_bookings"`
	CurrentBookings int             `json:"current_bookings"`
	Washer          *WasherResponse `json:"washer"`
}

// AvailabilityListResponse административный список блоков
type AvailabilityListResponse struct {
	Availability []AvailabilityItem `json:"availability"`
}

// Конвертеры

// FromDomainWash конвертирует domain.Wash в WashResponse
func FromDomainWash(w *domain.Wash) WashResponse {
	resp := WashResponse{
		ID:                         w.ID,
		SharetribeUserID:           w.SharetribeUserID,
		SubscriptionID:             w.SubscriptionID,
		ScheduledStart:             w.ScheduledStart.UTC().Format(time.RFC3339),
		LocationID:                 w.LocationID,
		VehicleCount:               w.VehicleCount,
		Status:                     string(w.Status),
		SpecialInstructions:        w.SpecialInstructions,
		LateCancellationFeeApplied: w.LateCancellationFeeApplied,
	}

	if w.WasherID != nil {
		id := w.WasherID.String()
		resp.WasherID = &id
	}
	if w.ScheduledEnd != nil {
		end := w.ScheduledEnd.UTC().Format(time.RFC3339)
		resp.ScheduledEnd = &end
	}
	if !w.CreatedAt.IsZero() {
		resp.CreatedAt = w.CreatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

// FromDomainWashList конвертирует список моек
func FromDomainWashList(washes []*domain.Wash) WashListResponse {
	items := make([]WashResponse, 0, len(washes))
	for _, w := range washes {
		items = append(items, FromDomainWash(w))
	}
	return WashListResponse{Washes: items}
}

// FromDomainDashboardWash конвертирует мойку для кабинета клиента.
// Дата и время показываются в часовом поясе бронирования.
func FromDomainDashboardWash(w *domain.Wash, washer *domain.Washer, loc *time.Location) DashboardWash {
	local := w.ScheduledStart.In(loc)

	item := DashboardWash{
		ID:             w.ID,
		ScheduledStart: w.ScheduledStart.UTC().Format(time.RFC3339),
		Date:           local.Format(domain.DateFormat),
		Time:           local.Format(domain.ShortTimeFormat),
		Location:       w.LocationID,
		Status:         string(w.Status),
		VehicleCount:   w.VehicleCount,
	}

	if w.WasherID != nil {
		id := w.WasherID.String()
		item.WasherID = &id
	}
	if washer != nil {
		item.WasherName = washer.DisplayName
		item.WasherPhone = washer.Phone
	}

	return item
}

// FromDomainCredit конвертирует кредиты подписки, nil означает отсутствие записи
func FromDomainCredit(c *domain.SubscriptionCredit) *CreditsResponse {
	if c == nil {
		return nil
	}
	return &CreditsResponse{
		Remaining: c.CreditsRemaining,
		PlanLabel: c.PlanLabel,
	}
}

// FromDomainAvailability конвертирует блок доступности
func FromDomainAvailability(b *domain.AvailabilityBlock, washer *domain.Washer) AvailabilityItem {
	item := AvailabilityItem{
		ID:              b.ID,
		WasherID:        b.WasherID.String(),
		ServiceDate:     b.ServiceDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		Location:        b.Location,
		Status:          string(b.Status),
		MaxBookings:     b.MaxBookings,
		CurrentBookings: b.CurrentBookings,
	}

	if washer != nil {
		item.Washer = &WasherResponse{
			ID:          washer.ID.String(),
			DisplayName: washer.DisplayName,
			Phone:       washer.Phone,
		}
	}

	return item
}
