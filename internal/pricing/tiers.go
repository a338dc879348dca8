package pricing

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

// ResolveTierPrice возвращает цену за участника из таблицы тиров
// Тиры просматриваются в порядке объявления, выигрывает первый тир, чей
// диапазон [Min, Max] включает participants. Если ни один тир не подошел,
// возвращается базовая цена продукта
func ResolveTierPrice(tiers []domain.PricingTier, basePrice money.Amount, participants int) money.Amount {
	for _, tier := range tiers {
		if tier.Contains(participants) {
			return tier.PricePerPerson
		}
	}
	return basePrice
}
