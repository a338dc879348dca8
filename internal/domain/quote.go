package domain

import "github.com/m04kA/SMC-ExcursionService/pkg/money"

// ExtraLine is one priced extra in a breakdown
type ExtraLine struct {
	Key        string
	Name       string
	Amount     money.Amount
	Quantity   int
	Multiplier ExtraMultiplier
}

// ActivityLine is one priced activity in a breakdown
type ActivityLine struct {
	Key         string
	Name        string
	Amount      money.Amount
	Days        int // effective days after the MaxDurationDays cap
	PricePerDay money.Amount
}

// PriceBreakdown is a full itemized quote for a booking request.
// All amounts are integer minor units in Currency; the breakdown is built
// once per evaluation and never mutated afterwards.
type PriceBreakdown struct {
	PricePerPerson money.Amount // tier price after time-slot and seasonal adjustments
	Days           int
	Subtotal       money.Amount // PricePerPerson × participants × days

	ExtrasPrice money.Amount
	ExtraLines  []ExtraLine

	ActivitiesPrice money.Amount
	ActivityLines   []ActivityLine

	VehiclesNeeded        int
	AdditionalVehicleCost money.Amount

	TotalPrice money.Amount
	Currency   string
}
