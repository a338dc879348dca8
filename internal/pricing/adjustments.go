package pricing

import (
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// TimeSlotAdjustment возвращает надбавку первого диапазона, содержащего
// выбранное время, и признак, что диапазон найден
// Диапазоны просматриваются в порядке объявления; сравнение лексикографическое
// по "HH:MM"
func TimeSlotAdjustment(rules []domain.TimeSlotRule, selected types.TimeString) (money.Amount, bool) {
	if selected.IsZero() {
		return 0, false
	}
	for _, rule := range rules {
		if rule.Contains(selected) {
			return rule.Adjustment, true
		}
	}
	return 0, false
}

// SeasonalAdjust применяет к базовой цене первый сезонный период, содержащий
// дату начала; остальные периоды игнорируются (правила не складываются)
// percentage масштабирует цену на Modifier процентов, fixed прибавляет
// Modifier минорных единиц
func SeasonalAdjust(rules []domain.SeasonRule, date time.Time, base money.Amount) money.Amount {
	for _, rule := range rules {
		if !rule.Contains(date) {
			continue
		}
		switch rule.Kind {
		case domain.SeasonPercentage:
			return base.AddPercent(rule.Modifier)
		case domain.SeasonFixed:
			return base.Add(money.Amount(rule.Modifier))
		}
		return base
	}
	return base
}
