package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

func TestTimeSlotAdjustment(t *testing.T) {
	rules := []domain.TimeSlotRule{
		{RangeStart: "08:00", RangeEnd: "11:00", Adjustment: money.FromMajor(10)},
		{RangeStart: "11:00", RangeEnd: "14:00", Adjustment: money.FromMajor(-5)},
	}

	tests := []struct {
		name     string
		selected string
		expected money.Amount
		found    bool
	}{
		{name: "morning slot", selected: "09:30", expected: money.FromMajor(10), found: true},
		{name: "lower bound inclusive", selected: "08:00", expected: money.FromMajor(10), found: true},
		// 11:00 попадает в оба диапазона — выигрывает объявленный раньше
		{name: "boundary overlap resolved by order", selected: "11:00", expected: money.FromMajor(10), found: true},
		{name: "afternoon slot", selected: "12:00", expected: money.FromMajor(-5), found: true},
		{name: "outside all slots", selected: "15:00", found: false},
		{name: "no time selected", selected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, ok := TimeSlotAdjustment(rules, timeString(tt.selected))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, adj)
		})
	}
}

func TestSeasonalAdjust(t *testing.T) {
	rules := []domain.SeasonRule{
		{
			StartDate: date("2025-07-01"), EndDate: date("2025-08-31"),
			Kind: domain.SeasonPercentage, Modifier: 10,
		},
		{
			StartDate: date("2025-11-01"), EndDate: date("2025-12-31"),
			Kind: domain.SeasonFixed, Modifier: int64(money.FromMajor(-15)),
		},
		// Пересекается с высоким сезоном — никогда не применяется
		{
			StartDate: date("2025-08-01"), EndDate: date("2025-08-31"),
			Kind: domain.SeasonPercentage, Modifier: 50,
		},
	}
	base := money.FromMajor(100)

	tests := []struct {
		name     string
		date     string
		expected money.Amount
	}{
		{name: "high season plus ten percent", date: "2025-07-15", expected: money.FromMajor(110)},
		{name: "low season fixed discount", date: "2025-11-20", expected: money.FromMajor(85)},
		{name: "first matching period wins", date: "2025-08-15", expected: money.FromMajor(110)},
		{name: "period bounds inclusive", date: "2025-08-31", expected: money.FromMajor(110)},
		{name: "outside all periods", date: "2025-03-01", expected: money.FromMajor(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeasonalAdjust(rules, date(tt.date), base))
		})
	}
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}
