package domain

// ErrorCode is a stable machine-readable reason for a validation failure.
// Codes are part of the public contract: callers map them to remediation
// messages, so existing values must never change meaning.
type ErrorCode string

const (
	CodeOK ErrorCode = "Ok"

	CodeProductNotFound                ErrorCode = "ProductNotFound"
	CodeInvalidDateFormat              ErrorCode = "InvalidDateFormat"
	CodeGlobalParticipantLimitExceeded ErrorCode = "GlobalParticipantLimitExceeded"
	CodeInsufficientSeats              ErrorCode = "InsufficientSeats"
	CodeBookingTooLate                 ErrorCode = "BookingTooLate"
	CodeInefficientVehicleAllocation   ErrorCode = "InefficientVehicleAllocation"
	CodeVehicleLimitExceeded           ErrorCode = "VehicleLimitExceeded"
	CodeMissingTimeslot                ErrorCode = "MissingTimeslot"
	CodeInvalidTimeslot                ErrorCode = "InvalidTimeslot"
	CodeMissingTimes                   ErrorCode = "MissingTimes"
	CodeInvalidTimeFormat              ErrorCode = "InvalidTimeFormat"
	CodeTooShortDuration               ErrorCode = "TooShortDuration"
	CodeTooLongDuration                ErrorCode = "TooLongDuration"
	CodeInvalidDateRange               ErrorCode = "InvalidDateRange"
	CodeMaxSimultaneousReached         ErrorCode = "MaxSimultaneousReached"
	CodeDateNotAvailable               ErrorCode = "DateNotAvailable"
	CodeWeekdayNotAvailable            ErrorCode = "WeekdayNotAvailable"
	CodeDateExcluded                   ErrorCode = "DateExcluded"
)

// ValidationResult is the structured verdict of a feasibility check
type ValidationResult struct {
	Valid   bool
	Code    ErrorCode
	Message string

	VehiclesNeeded int
	// MissingParticipants is set only for InefficientVehicleAllocation:
	// how many more participants would exactly fill the last vehicle
	MissingParticipants int
}

// ValidResult строит положительный вердикт
func ValidResult(vehiclesNeeded int) ValidationResult {
	return ValidationResult{
		Valid:          true,
		Code:           CodeOK,
		VehiclesNeeded: vehiclesNeeded,
	}
}

// InvalidResult строит отрицательный вердикт с кодом и сообщением
func InvalidResult(code ErrorCode, message string) ValidationResult {
	return ValidationResult{
		Valid:   false,
		Code:    code,
		Message: message,
	}
}
