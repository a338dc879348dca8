package quote_price

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Participants int            `json:"participants"`
	StartDate    string         `json:"startDate"` // "2025-06-01"
	EndDate      string         `json:"endDate,omitempty"`
	StartTime    string         `json:"startTime,omitempty"` // "10:00"
	EndTime      string         `json:"endTime,omitempty"`
	Extras       map[string]int `json:"extras,omitempty"`
	Activities   map[string]int `json:"activities,omitempty"`
}

// ToBookingRequest конвертирует HTTP запрос в доменную модель
func (r *QuoteRequest) ToBookingRequest(productID int64) domain.BookingRequest {
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

// ExtraLineResponse строка разбивки по дополнительной опции
type ExtraLineResponse struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Amount     int64  `json:"amount"`
	Quantity   int    `json:"quantity"`
	Multiplier string `json:"multiplier"`
}

// ActivityLineResponse строка разбивки по активности
type ActivityLineResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	Days        int    `json:"days"`
	PricePerDay int64  `json:"pricePerDay"`
}

// QuoteResponse HTTP response model: полная разбивка цены
// Все суммы в минорных единицах валюты
type QuoteResponse struct {
	PricePerPerson        int64                  `json:"pricePerPerson"`
	Days                  int                    `json:"days"`
	Subtotal              int64                  `json:"subtotal"`
	ExtrasPrice           int64                  `json:"extrasPrice"`
	ExtraLines            []ExtraLineResponse    `json:"extraLines,omitempty"`
	ActivitiesPrice       int64                  `json:"activitiesPrice"`
	ActivityLines         []ActivityLineResponse `json:"activityLines,omitempty"`
	VehiclesNeeded        int                    `json:"vehiclesNeeded"`
	AdditionalVehicleCost int64                  `json:"additionalVehicleCost"`
	TotalPrice            int64                  `json:"totalPrice"`
	Currency              string                 `json:"currency"`
}

// FromBreakdown конвертирует доменную разбивку в HTTP response
func FromBreakdown(b *domain.PriceBreakdown) *QuoteResponse {
	resp := &QuoteResponse{
		PricePerPerson:        int64(b.PricePerPerson),
		Days:                  b.Days,
		Subtotal:              int64(b.Subtotal),
		ExtrasPrice:           int64(b.ExtrasPrice),
		ActivitiesPrice:       int64(b.ActivitiesPrice),
		VehiclesNeeded:        b.VehiclesNeeded,
		AdditionalVehicleCost: int64(b.AdditionalVehicleCost),
		TotalPrice:            int64(b.TotalPrice),
		Currency:              b.Currency,
	}

	for _, line := range b.ExtraLines {
		resp.ExtraLines = append(resp.ExtraLines, ExtraLineResponse{
			Key:        line.Key,
			Name:       line.Name,
			Amount:     int64(line.Amount),
			Quantity:   line.Quantity,
			Multiplier: string(line.Multiplier),
		})
	}
	for _, line := range b.ActivityLines {
		resp.ActivityLines = append(resp.ActivityLines, ActivityLineResponse{
			Key:         line.Key,
			Name:        line.Name,
			Amount:      int64(line.Amount),
			Days:        line.Days,
			PricePerDay: int64(line.PricePerDay),
		})
	}

	return resp
}
