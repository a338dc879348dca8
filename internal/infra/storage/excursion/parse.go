package excursion

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// Легаси-таблицы правил хранятся строками: одна запись на строку, поля
// разделены "|". Парсинг выполняется один раз здесь, на границе хранилища;
// движок типизированных конфигураций никогда не видит сырые строки.
// Некорректные строки пропускаются — частично битая конфигурация деградирует
// мягко, а не валит весь расчет.

// parseAmount парсит денежную сумму "125", "125.5", "-15.50" в минорные единицы
func parseAmount(s string) (money.Amount, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "+"))

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	unitsPart, fracPart, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(unitsPart, 10, 64)
	if err != nil {
		return 0, err
	}

	frac := int64(0)
	if fracPart != "" {
		// усечение до двух знаков, "5.5" читается как 5.50
		if len(fracPart) > 2 {
			fracPart = fracPart[:2]
		}
		for len(fracPart) < 2 {
			fracPart += "0"
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, err
		}
	}

	total := units*100 + frac
	if negative {
		total = -total
	}
	return money.Amount(total), nil
}

// parseTiers парсит строки "min|max|pricePerPerson"
func parseTiers(raw string) []domain.PricingTier {
	var tiers []domain.PricingTier
	for _, line := range splitLines(raw) {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}
		min, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		max, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		price, err3 := parseAmount(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		tiers = append(tiers, domain.PricingTier{Min: min, Max: max, PricePerPerson: price})
	}
	return tiers
}

// parseExtras парсит строки "Name|price|kind|multiplier"
// Имя служит ключом опции — так работала легаси-схема
func parseExtras(raw string) []domain.Extra {
	var extras []domain.Extra
	for _, line := range splitLines(raw) {
		parts := strings.Split(line, "|")
		if len(parts) != 4 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		price, err := parseAmount(parts[1])
		if name == "" || err != nil {
			continue
		}

		kind := domain.ExtraKind(strings.TrimSpace(parts[2]))
		if kind != domain.ExtraKindQuantity && kind != domain.ExtraKindBoolean {
			continue
		}

		multiplier := domain.ExtraMultiplier(strings.TrimSpace(parts[3]))
		switch multiplier {
		case domain.MultiplierParticipants, domain.MultiplierDays,
			domain.MultiplierDaysParticipants, domain.MultiplierFixed:
		default:
			continue
		}

		extras = append(extras, domain.Extra{
			Key:        name,
			Name:       name,
			Price:      price,
			Kind:       kind,
			Multiplier: multiplier,
		})
	}
	return extras
}

// parseActivities парсит строки "Name|pricePerDay|maxDurationDays"
func parseActivities(raw string) []domain.Activity {
	var activities []domain.Activity
	for _, line := range splitLines(raw) {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		price, err1 := parseAmount(parts[1])
		maxDays, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if name == "" || err1 != nil || err2 != nil {
			continue
		}
		activities = append(activities, domain.Activity{
			Key:             name,
			Name:            name,
			PricePerDay:     price,
			MaxDurationDays: maxDays,
		})
	}
	return activities
}

// parseTimeSlotRules парсит строки "HH:MM|HH:MM|adjustment"
func parseTimeSlotRules(raw string) []domain.TimeSlotRule {
	var rules []domain.TimeSlotRule
	for _, line := range splitLines(raw) {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}
		start, err1 := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
		end, err2 := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
		adjustment, err3 := parseAmount(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		rules = append(rules, domain.TimeSlotRule{
			RangeStart: start,
			RangeEnd:   end,
			Adjustment: adjustment,
		})
	}
	return rules
}

// parseSeasonRules парсит строки "startDate|endDate|kind|modifier"
// Для percentage модификатор — целые проценты, для fixed — денежная сумма
func parseSeasonRules(raw string) []domain.SeasonRule {
	var rules []domain.SeasonRule
	for _, line := range splitLines(raw) {
		parts := strings.Split(line, "|")
		if len(parts) != 4 {
			continue
		}
		start, err1 := time.Parse(domain.DateFormat, strings.TrimSpace(parts[0]))
		end, err2 := time.Parse(domain.DateFormat, strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			continue
		}

		kind := domain.SeasonRuleKind(strings.TrimSpace(parts[2]))
		var modifier int64
		switch kind {
		case domain.SeasonPercentage:
			v, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[3]), "+")), 10, 64)
			if err != nil {
				continue
			}
			modifier = v
		case domain.SeasonFixed:
			v, err := parseAmount(parts[3])
			if err != nil {
				continue
			}
			modifier = int64(v)
		default:
			continue
		}

		rules = append(rules, domain.SeasonRule{
			StartDate: start,
			EndDate:   end,
			Kind:      kind,
			Modifier:  modifier,
		})
	}
	return rules
}

// parseWeekdays парсит список дней недели "0,1,5" (0 = воскресенье)
func parseWeekdays(raw string) []time.Weekday {
	var weekdays []time.Weekday
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > 6 {
			continue
		}
		weekdays = append(weekdays, time.Weekday(v))
	}
	return weekdays
}

// parseDateList парсит список дат "2025-07-14,2025-08-15"
func parseDateList(raw string) []time.Time {
	var dates []time.Time
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := time.Parse(domain.DateFormat, part)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
