package pricing

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

// Supplements итог расчета дополнительных опций и активностей
type Supplements struct {
	ExtrasTotal money.Amount
	ExtraLines  []domain.ExtraLine

	ActivitiesTotal money.Amount
	ActivityLines   []domain.ActivityLine
}

// CalculateSupplements рассчитывает стоимость выбранных extras и activities
// Строки результата идут в порядке объявления в конфигурации, а не в порядке
// ключей запроса — это делает результат детерминированным
// Ключи запроса, отсутствующие в конфигурации, молча игнорируются
func CalculateSupplements(cfg *domain.ExcursionConfig, req domain.BookingRequest, days int) Supplements {
	var out Supplements

	for _, extra := range cfg.Extras {
		quantity, ok := req.SelectedExtras[extra.Key]
		if !ok || quantity <= 0 {
			continue
		}

		// boolean-опции заказываются максимум один раз
		if extra.Kind == domain.ExtraKindBoolean {
			quantity = 1
		}

		amount := extra.Price
		if extra.Kind == domain.ExtraKindQuantity {
			amount = amount.Mul(int64(quantity))
		}

		switch extra.Multiplier {
		case domain.MultiplierParticipants:
			amount = amount.Mul(int64(req.Participants))
		case domain.MultiplierDays:
			amount = amount.Mul(int64(days))
		case domain.MultiplierDaysParticipants:
			amount = amount.Mul(int64(req.Participants) * int64(days))
		case domain.MultiplierFixed:
			// ×1
		}

		out.ExtrasTotal = out.ExtrasTotal.Add(amount)
		out.ExtraLines = append(out.ExtraLines, domain.ExtraLine{
			Key:        extra.Key,
			Name:       extra.Name,
			Amount:     amount,
			Quantity:   quantity,
			Multiplier: extra.Multiplier,
		})
	}

	for _, activity := range cfg.Activities {
		requestedDays, ok := req.SelectedActivities[activity.Key]
		if !ok || requestedDays <= 0 {
			continue
		}

		effectiveDays := requestedDays
		if activity.MaxDurationDays > 0 && effectiveDays > activity.MaxDurationDays {
			effectiveDays = activity.MaxDurationDays
		}

		amount := activity.PricePerDay.Mul(int64(effectiveDays))

		out.ActivitiesTotal = out.ActivitiesTotal.Add(amount)
		out.ActivityLines = append(out.ActivityLines, domain.ActivityLine{
			Key:         activity.Key,
			Name:        activity.Name,
			Amount:      amount,
			Days:        effectiveDays,
			PricePerDay: activity.PricePerDay,
		})
	}

	return out
}
