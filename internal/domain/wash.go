package domain

import (
	"time"

	"github.com/google/uuid"
)

// WashStatus статус мойки
type WashStatus string

const (
	WashScheduled WashStatus = "scheduled"
	WashCompleted WashStatus = "completed"
	WashCancelled WashStatus = "cancelled"
	WashNoShow    WashStatus = "no_show"
)

// IsValid проверяет, что статус известен
func (s WashStatus) IsValid() bool {
	switch s {
	case WashScheduled, WashCompleted, WashCancelled, WashNoShow:
		return true
	}
	return false
}

// Wash забронированная мойка
type Wash struct {
	ID                         int64
	SharetribeUserID           string
	SubscriptionID             *string
	WasherID                   *uuid.UUID
	ScheduledStart             time.Time
	ScheduledEnd               *time.Time
	LocationID                 string
	VehicleCount               int
	Status                     WashStatus
	SpecialInstructions        *string
	LateCancellationFeeApplied bool
	CreatedAt                  time.Time
}

// IsUpcoming проверяет, что мойка еще не началась
func (w *Wash) IsUpcoming(now time.Time) bool {
	return !w.ScheduledStart.Before(now)
}

// AssignmentMode способ выбора мойщика при бронировании
type AssignmentMode string

const (
	AssignmentAuto     AssignmentMode = "auto"
	AssignmentSpecific AssignmentMode = "specific"
)

// ParseAssignmentMode возвращает specific только для точного совпадения,
// любое другое значение означает auto
func ParseAssignmentMode(s string) AssignmentMode {
	if AssignmentMode(s) == AssignmentSpecific {
		return AssignmentSpecific
	}
	return AssignmentAuto
}

// Assignment результат выбора мойщика
type Assignment struct {
	WasherID       uuid.UUID
	AvailabilityID int64
	Mode           AssignmentMode
}
