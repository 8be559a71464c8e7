package domain

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashService/pkg/types"
)

// AvailableSlot represents one start-end window in a ZIP on a date,
// aggregated over every washer that has an open block with spare capacity
type AvailableSlot struct {
	StartTime              types.TimeString
	EndTime                types.TimeString
	OpenBlocks             int
	TotalCapacityRemaining int
	AvailabilityIDs        []int64
	Washers                []SlotWasher
}

// SlotWasher is a washer contributing to a slot
type SlotWasher struct {
	WasherID       uuid.UUID
	Name           string
	Phone          string
	AvailabilityID int64
	Remaining      int
}

// AvailabilityDaySummary is the number of open blocks in a ZIP on one date
type AvailabilityDaySummary struct {
	Date       string
	OpenBlocks int
}
