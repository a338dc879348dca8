package models

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

// TierView тир цены в ответе сервиса
type TierView struct {
	Min            int   `json:"min"`
	Max            int   `json:"max"`
	PricePerPerson int64 `json:"pricePerPerson"`
}

// ExtraView дополнительная опция в ответе сервиса
type ExtraView struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Kind       string `json:"kind"`
	Multiplier string `json:"multiplier"`
}

// ActivityView активность в ответе сервиса
type ActivityView struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	PricePerDay     int64  `json:"pricePerDay"`
	MaxDurationDays int    `json:"maxDurationDays"`
}

// TimeSlotView диапазон времени с надбавкой в ответе сервиса
type TimeSlotView struct {
	RangeStart string `json:"rangeStart"`
	RangeEnd   string `json:"rangeEnd"`
	Adjustment int64  `json:"adjustment"`
}

// ConfigResponse публичное представление конфигурации продукта
// Отдает форме бронирования только то, что нужно для отрисовки опций;
// внутренние политики (strict fill, лимиты одновременности) не раскрываются
type ConfigResponse struct {
	ProductID        int64          `json:"productId"`
	Currency         string         `json:"currency"`
	ParticipantLimit int            `json:"participantLimit"`
	IsFixedDate      bool           `json:"isFixedDate"`
	BasePrice        int64          `json:"basePricePerPerson"`
	Tiers            []TierView     `json:"pricingTiers,omitempty"`
	Extras           []ExtraView    `json:"extras,omitempty"`
	Activities       []ActivityView `json:"activities,omitempty"`
	TimeSlots        []TimeSlotView `json:"timeSlots,omitempty"`
	MinDurationHours int            `json:"minDurationHours,omitempty"`
	MaxDurationDays  int            `json:"maxDurationDays,omitempty"`
	MaxParticipants  int            `json:"maxBookableParticipants"`
}

// FromDomainConfig конвертирует доменную конфигурацию в ответ сервиса
func FromDomainConfig(cfg *domain.ExcursionConfig) *ConfigResponse {
	resp := &ConfigResponse{
		ProductID:        cfg.ProductID,
		Currency:         cfg.Currency,
		ParticipantLimit: cfg.ParticipantLimit,
		IsFixedDate:      cfg.IsFixedDate,
		BasePrice:        int64(cfg.BasePricePerPerson),
		MinDurationHours: cfg.MinDurationHours,
		MaxDurationDays:  cfg.MaxDurationDays,
		MaxParticipants:  cfg.MaxBookableParticipants(),
	}

	for _, t := range cfg.PricingTiers {
		resp.Tiers = append(resp.Tiers, TierView{
			Min:            t.Min,
			Max:            t.Max,
			PricePerPerson: int64(t.PricePerPerson),
		})
	}
	for _, e := range cfg.Extras {
		resp.Extras = append(resp.Extras, ExtraView{
			Key:        e.Key,
			Name:       e.Name,
			Price:      int64(e.Price),
			Kind:       string(e.Kind),
			Multiplier: string(e.Multiplier),
		})
	}
	for _, a := range cfg.Activities {
		resp.Activities = append(resp.Activities, ActivityView{
			Key:             a.Key,
			Name:            a.Name,
			PricePerDay:     int64(a.PricePerDay),
			MaxDurationDays: a.MaxDurationDays,
		})
	}
	for _, r := range cfg.TimeSlotRules {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotView{
			RangeStart: r.RangeStart.String(),
			RangeEnd:   r.RangeEnd.String(),
			Adjustment: int64(r.Adjustment),
		})
	}

	return resp
}
