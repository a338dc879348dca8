package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

func supplementsConfig() *domain.ExcursionConfig {
	return &domain.ExcursionConfig{
		Extras: []domain.Extra{
			{Key: "Boissons", Name: "Boissons", Price: money.FromMajor(5),
				Kind: domain.ExtraKindQuantity, Multiplier: domain.MultiplierParticipants},
			{Key: "Guide", Name: "Guide", Price: money.FromMajor(100),
				Kind: domain.ExtraKindBoolean, Multiplier: domain.MultiplierDays},
			{Key: "Assurance", Name: "Assurance", Price: money.FromMajor(30),
				Kind: domain.ExtraKindBoolean, Multiplier: domain.MultiplierFixed},
		},
		Activities: []domain.Activity{
			{Key: "Plongée", Name: "Plongée", PricePerDay: money.FromMajor(50), MaxDurationDays: 1},
			{Key: "Kayak", Name: "Kayak", PricePerDay: money.FromMajor(20), MaxDurationDays: 5},
		},
	}
}

func TestCalculateSupplementsExtras(t *testing.T) {
	cfg := supplementsConfig()

	// Boissons: 5.00 × 2 шт × 4 участника = 40.00
	req := domain.BookingRequest{
		Participants:   4,
		SelectedExtras: map[string]int{"Boissons": 2},
	}
	out := CalculateSupplements(cfg, req, 3)

	assert.Equal(t, money.FromMajor(40), out.ExtrasTotal)
	require.Len(t, out.ExtraLines, 1)
	assert.Equal(t, "Boissons", out.ExtraLines[0].Key)
	assert.Equal(t, 2, out.ExtraLines[0].Quantity)
}

func TestCalculateSupplementsBooleanIgnoresQuantity(t *testing.T) {
	cfg := supplementsConfig()

	// Guide заказан "5 раз", но boolean-опция считается один раз: 100.00 × 3 дня
	req := domain.BookingRequest{
		Participants:   4,
		SelectedExtras: map[string]int{"Guide": 5},
	}
	out := CalculateSupplements(cfg, req, 3)

	assert.Equal(t, money.FromMajor(300), out.ExtrasTotal)
	require.Len(t, out.ExtraLines, 1)
	assert.Equal(t, 1, out.ExtraLines[0].Quantity)
}

func TestCalculateSupplementsFixedMultiplier(t *testing.T) {
	cfg := supplementsConfig()

	req := domain.BookingRequest{
		Participants:   10,
		SelectedExtras: map[string]int{"Assurance": 1},
	}
	out := CalculateSupplements(cfg, req, 7)

	// fixed не масштабируется ни участниками, ни днями
	assert.Equal(t, money.FromMajor(30), out.ExtrasTotal)
}

func TestCalculateSupplementsActivities(t *testing.T) {
	cfg := supplementsConfig()

	// Plongée запрошена на 3 дня, но ограничена 1 днем: 50.00 × 1
	// Kayak на 2 дня в пределах лимита: 20.00 × 2
	req := domain.BookingRequest{
		Participants:       4,
		SelectedActivities: map[string]int{"Plongée": 3, "Kayak": 2},
	}
	out := CalculateSupplements(cfg, req, 3)

	assert.Equal(t, money.FromMajor(90), out.ActivitiesTotal)
	require.Len(t, out.ActivityLines, 2)
	// Строки идут в порядке объявления конфигурации, не в порядке ключей
	assert.Equal(t, "Plongée", out.ActivityLines[0].Key)
	assert.Equal(t, 1, out.ActivityLines[0].Days)
	assert.Equal(t, "Kayak", out.ActivityLines[1].Key)
	assert.Equal(t, 2, out.ActivityLines[1].Days)
}

func TestCalculateSupplementsUnknownKeysIgnored(t *testing.T) {
	cfg := supplementsConfig()

	req := domain.BookingRequest{
		Participants:       4,
		SelectedExtras:     map[string]int{"Jacuzzi": 1},
		SelectedActivities: map[string]int{"Ski": 2},
	}
	out := CalculateSupplements(cfg, req, 1)

	assert.Equal(t, money.Amount(0), out.ExtrasTotal)
	assert.Equal(t, money.Amount(0), out.ActivitiesTotal)
	assert.Empty(t, out.ExtraLines)
	assert.Empty(t, out.ActivityLines)
}

func TestCalculateSupplementsNothingSelected(t *testing.T) {
	out := CalculateSupplements(supplementsConfig(), domain.BookingRequest{Participants: 4}, 2)

	assert.Equal(t, money.Amount(0), out.ExtrasTotal)
	assert.Equal(t, money.Amount(0), out.ActivitiesTotal)
}
