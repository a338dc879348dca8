package domain

// Time and date format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values applied when a product row leaves a field
// unset
const (
	DefaultBaseCapacity    = 8
	DefaultMaxVehicles     = 1
	DefaultMaxDurationDays = 30
	DefaultCurrency        = "EUR"
)

// Business validation constants
const (
	MinParticipants   = 1
	HoursPerDay       = 24
	MaxLeadTimeHours  = 2160 // 90 days
	MaxParticipantCap = 1000
)
