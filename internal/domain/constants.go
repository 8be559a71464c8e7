package domain

import "github.com/m04kA/SMC-WashService/pkg/types"

// Default business values
const (
	DefaultMaxBookingsPerBlock = 3
	DefaultMinWeeklyHours      = 10.0
	DefaultZip                 = "00000"
	DefaultVehicleCount        = 1

	DefaultShiftStart types.TimeString = "10:00:00"
	DefaultShiftEnd   types.TimeString = "15:00:00"
)

// Business validation constants
const (
	MaxVehicleCount                 = 10
	MaxSpecialInstructionsLength    = 500
	DefaultAdminWashesLimit         = 25
	MaxAdminWashesLimit             = 500
	MaxAvailabilitySummaryRangeDays = 92
)

// Time format constants
const (
	TimeFormat      = "15:04:05"   // HH:MM:SS
	ShortTimeFormat = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	MonthFormat     = "2006-01"    // YYYY-MM
)
