package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

// Конфигурация из типового продукта: базовая лодка на 8 мест, дополнительные
// лодки по 3 места за 20.00, максимум 3 лодки
func boatConfig() *domain.ExcursionConfig {
	return &domain.ExcursionConfig{
		BaseCapacity:              8,
		MinAdditionalParticipants: 3,
		MaxVehicles:               3,
		AdditionalUnitCost:        money.FromMajor(20),
	}
}

func TestAllocateVehicles(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		vehicles     int
		uncapped     int
		extraCost    money.Amount
		exceeded     bool
		missing      int
	}{
		{name: "fits base vehicle exactly", participants: 8, vehicles: 1, uncapped: 1, extraCost: 0},
		{name: "below base capacity", participants: 3, vehicles: 1, uncapped: 1, extraCost: 0},
		{name: "one extra participant", participants: 9, vehicles: 2, uncapped: 2, extraCost: money.FromMajor(20), missing: 2},
		{name: "second vehicle filled exactly", participants: 11, vehicles: 2, uncapped: 2, extraCost: money.FromMajor(20)},
		{name: "max capacity", participants: 14, vehicles: 3, uncapped: 3, extraCost: money.FromMajor(40)},
		{name: "one over max capacity", participants: 15, vehicles: 3, uncapped: 4, extraCost: money.FromMajor(40), exceeded: true, missing: 2},
		{name: "well over max capacity", participants: 20, vehicles: 3, uncapped: 5, extraCost: money.FromMajor(40), exceeded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := AllocateVehicles(tt.participants, boatConfig())

			assert.Equal(t, tt.vehicles, alloc.VehiclesNeeded)
			assert.Equal(t, tt.uncapped, alloc.UncappedVehicles)
			assert.Equal(t, tt.extraCost, alloc.ExtraCost)
			assert.Equal(t, tt.exceeded, alloc.LimitExceeded)
			assert.Equal(t, tt.missing, alloc.MissingParticipants)
		})
	}
}

func TestAllocateVehiclesNoAdditionalConfigured(t *testing.T) {
	cfg := &domain.ExcursionConfig{
		BaseCapacity:       8,
		MaxVehicles:        1,
		AdditionalUnitCost: money.FromMajor(20),
	}

	// MinAdditionalParticipants = 0: всегда одна единица, без доплаты
	alloc := AllocateVehicles(50, cfg)
	assert.Equal(t, 1, alloc.VehiclesNeeded)
	assert.Equal(t, money.Amount(0), alloc.ExtraCost)
	assert.False(t, alloc.LimitExceeded)
}

// Количество единиц и доплата не убывают с ростом числа участников
func TestAllocateVehiclesMonotonic(t *testing.T) {
	cfg := boatConfig()
	cfg.MaxVehicles = 100

	prev := AllocateVehicles(1, cfg)
	for participants := 2; participants <= 60; participants++ {
		cur := AllocateVehicles(participants, cfg)
		assert.GreaterOrEqual(t, cur.VehiclesNeeded, prev.VehiclesNeeded, "participants=%d", participants)
		assert.GreaterOrEqual(t, int64(cur.ExtraCost), int64(prev.ExtraCost), "participants=%d", participants)
		prev = cur
	}
}

func TestMaxBookableParticipants(t *testing.T) {
	assert.Equal(t, 14, boatConfig().MaxBookableParticipants())

	single := &domain.ExcursionConfig{BaseCapacity: 8, MaxVehicles: 1}
	assert.Equal(t, 8, single.MaxBookableParticipants())
}
