package validate_booking

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// ValidateRequest HTTP request model
type ValidateRequest struct {
	Participants int            `json:"participants"`
	StartDate    string         `json:"startDate"` // "2025-06-01"
	EndDate      string         `json:"endDate,omitempty"`
	StartTime    string         `json:"startTime,omitempty"` // "10:00"
	EndTime      string         `json:"endTime,omitempty"`
	Extras       map[string]int `json:"extras,omitempty"`
	Activities   map[string]int `json:"activities,omitempty"`
}

// ToBookingRequest конвертирует HTTP запрос в доменную модель
func (r *ValidateRequest) ToBookingRequest(productID int64) domain.BookingRequest {
	return domain.BookingRequest{
		ProductID:          productID,
		Participants:       r.Participants,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		StartTime:          types.TimeString(r.StartTime),
		EndTime:            types.TimeString(r.EndTime),
		SelectedExtras:     r.Extras,
		SelectedActivities: r.Activities,
	}
}

// ValidateResponse HTTP response model: структурированный вердикт
// Невыполнимая заявка — это не ошибка HTTP, а данные для формы, поэтому
// вердикт всегда отдается со статусом 200
type ValidateResponse struct {
	Valid               bool   `json:"valid"`
	ErrorCode           string `json:"errorCode,omitempty"`
	Message             string `json:"message,omitempty"`
	VehiclesNeeded      int    `json:"vehiclesNeeded,omitempty"`
	MissingParticipants int    `json:"missingParticipants,omitempty"`
}

// FromResult конвертирует доменный вердикт в HTTP response
func FromResult(result domain.ValidationResult) *ValidateResponse {
	resp := &ValidateResponse{
		Valid:               result.Valid,
		Message:             result.Message,
		VehiclesNeeded:      result.VehiclesNeeded,
		MissingParticipants: result.MissingParticipants,
	}
	if !result.Valid {
		resp.ErrorCode = string(result.Code)
	}
	return resp
}
