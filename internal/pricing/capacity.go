package pricing

import (
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
)

// Allocation результат распределения участников по транспортным единицам
type Allocation struct {
	// VehiclesNeeded итоговое количество единиц, ограниченное MaxVehicles
	VehiclesNeeded int
	// UncappedVehicles количество единиц без учета ограничения MaxVehicles
	UncappedVehicles int
	// ExtraCost доплата за дополнительные единицы: (VehiclesNeeded-1) × AdditionalUnitCost
	ExtraCost money.Amount
	// LimitExceeded true, когда UncappedVehicles > MaxVehicles; ограничение
	// сверху информационное, такая заявка невыполнима, а не дешевле
	LimitExceeded bool
	// MissingParticipants сколько участников не хватает до полного заполнения
	// последней единицы (для политики strict fill); 0, если заполнение точное
	MissingParticipants int
}

// AllocateVehicles вычисляет количество транспортных единиц и доплату
// Первые BaseCapacity участников едут в базовой единице без доплаты, каждые
// следующие MinAdditionalParticipants требуют дополнительную единицу
func AllocateVehicles(participants int, cfg *domain.ExcursionConfig) Allocation {
	if participants <= cfg.BaseCapacity || cfg.MinAdditionalParticipants <= 0 {
		return Allocation{VehiclesNeeded: 1, UncappedVehicles: 1}
	}

	remaining := participants - cfg.BaseCapacity
	additional := (remaining + cfg.MinAdditionalParticipants - 1) / cfg.MinAdditionalParticipants
	uncapped := 1 + additional

	needed := uncapped
	limitExceeded := false
	if cfg.MaxVehicles > 0 && uncapped > cfg.MaxVehicles {
		needed = cfg.MaxVehicles
		limitExceeded = true
	}

	missing := 0
	if rem := remaining % cfg.MinAdditionalParticipants; rem != 0 {
		missing = cfg.MinAdditionalParticipants - rem
	}

	return Allocation{
		VehiclesNeeded:      needed,
		UncappedVehicles:    uncapped,
		ExtraCost:           cfg.AdditionalUnitCost.Mul(int64(needed - 1)),
		LimitExceeded:       limitExceeded,
		MissingParticipants: missing,
	}
}
