package domain

import (
	"time"

	"github.com/m04kA/SMC-ExcursionService/pkg/money"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// ExtraKind defines how the requested quantity of an extra is interpreted
type ExtraKind string

const (
	// ExtraKindQuantity extras are ordered N times, price scales with N
	ExtraKindQuantity ExtraKind = "quantity"
	// ExtraKindBoolean extras are either selected or not, quantity is ignored
	ExtraKindBoolean ExtraKind = "boolean"
)

// ExtraMultiplier defines which booking dimension the extra price scales with
type ExtraMultiplier string

const (
	MultiplierParticipants     ExtraMultiplier = "participants"
	MultiplierDays             ExtraMultiplier = "days"
	MultiplierDaysParticipants ExtraMultiplier = "daysParticipants"
	MultiplierFixed            ExtraMultiplier = "fixed"
)

// SeasonRuleKind defines how a seasonal modifier is applied to the base price
type SeasonRuleKind string

const (
	// SeasonPercentage scales the base price by Modifier percent
	SeasonPercentage SeasonRuleKind = "percentage"
	// SeasonFixed adds Modifier minor units to the base price
	SeasonFixed SeasonRuleKind = "fixed"
)

// PricingTier maps a participant-count bracket to a per-person price.
// Tiers are matched in declaration order, the first inclusive [Min, Max]
// match wins; overlaps are allowed and resolved by order.
type PricingTier struct {
	Min            int
	Max            int
	PricePerPerson money.Amount
}

// Contains returns true if participants falls into the tier bracket
func (t PricingTier) Contains(participants int) bool {
	return participants >= t.Min && participants <= t.Max
}

// Extra is an optional add-on priced by quantity and a multiplier dimension
type Extra struct {
	Key        string
	Name       string
	Price      money.Amount
	Kind       ExtraKind
	Multiplier ExtraMultiplier
}

// Activity is an optional add-on priced per day, capped at MaxDurationDays
type Activity struct {
	Key             string
	Name            string
	PricePerDay     money.Amount
	MaxDurationDays int
}

// TimeSlotRule adjusts the per-person price for start times inside the range.
// Range bounds are inclusive; comparison is lexicographic on "HH:MM".
type TimeSlotRule struct {
	RangeStart types.TimeString
	RangeEnd   types.TimeString
	Adjustment money.Amount
}

// Contains returns true if the selected time falls into the rule range
func (r TimeSlotRule) Contains(t types.TimeString) bool {
	return t.InRange(r.RangeStart, r.RangeEnd)
}

// SeasonRule adjusts the per-person price for start dates inside the period
type SeasonRule struct {
	StartDate time.Time
	EndDate   time.Time
	Kind      SeasonRuleKind
	Modifier  int64
}

// Contains returns true if date falls into the rule period (inclusive)
func (r SeasonRule) Contains(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// AvailabilityRules describe when an excursion may be booked
type AvailabilityRules struct {
	MinDate           *time.Time // nil = no lower bound beyond lead time
	MaxDate           *time.Time // nil = no upper bound
	AvailableWeekdays []time.Weekday
	ExcludedDates     []time.Time
}

// WeekdayAllowed returns true if the weekday is bookable
// An empty whitelist allows every weekday
func (a AvailabilityRules) WeekdayAllowed(d time.Weekday) bool {
	if len(a.AvailableWeekdays) == 0 {
		return true
	}
	for _, w := range a.AvailableWeekdays {
		if w == d {
			return true
		}
	}
	return false
}

// IsExcluded returns true if the date is explicitly excluded
func (a AvailabilityRules) IsExcluded(date time.Time) bool {
	y, m, d := date.Date()
	for _, ex := range a.ExcludedDates {
		ey, em, ed := ex.Date()
		if y == ey && m == em && d == ed {
			return true
		}
	}
	return false
}

// ExcursionConfig is the full rule set of a bookable excursion product.
// It is loaded once per evaluation and never mutated by the engine.
type ExcursionConfig struct {
	ProductID int64
	// Version is a monotonically increasing token bumped on every
	// configuration change; it is part of every cache fingerprint
	Version  int64
	Currency string

	ParticipantLimit int
	LeadTimeHours    int

	IsFixedDate    bool
	FixedStartDate *time.Time
	FixedEndDate   *time.Time
	FixedStartTime types.TimeString
	FixedEndTime   types.TimeString

	BasePricePerPerson money.Amount
	PricingTiers       []PricingTier
	Extras             []Extra
	Activities         []Activity

	BaseCapacity              int
	MinAdditionalParticipants int
	MaxVehicles               int
	AdditionalUnitCost        money.Amount
	// StrictVehicleFill rejects bookings whose participants beyond
	// BaseCapacity do not exactly fill a multiple of
	// MinAdditionalParticipants. Off by default; the legacy behaviour is
	// contradictory, so it is a per-product policy rather than a rule
	StrictVehicleFill bool

	TimeSlotRules []TimeSlotRule
	SeasonRules   []SeasonRule

	MinDurationHours int
	MaxDurationDays  int

	Availability              AvailabilityRules
	MaxSimultaneousExcursions int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExtraByKey returns the configured extra for a key, or nil if unknown
func (c *ExcursionConfig) ExtraByKey(key string) *Extra {
	for i := range c.Extras {
		if c.Extras[i].Key == key {
			return &c.Extras[i]
		}
	}
	return nil
}

// ActivityByKey returns the configured activity for a key, or nil if unknown
func (c *ExcursionConfig) ActivityByKey(key string) *Activity {
	for i := range c.Activities {
		if c.Activities[i].Key == key {
			return &c.Activities[i]
		}
	}
	return nil
}

// MaxBookableParticipants returns the largest participant count that still
// fits into MaxVehicles
func (c *ExcursionConfig) MaxBookableParticipants() int {
	if c.MaxVehicles <= 1 || c.MinAdditionalParticipants <= 0 {
		return c.BaseCapacity
	}
	return c.BaseCapacity + (c.MaxVehicles-1)*c.MinAdditionalParticipants
}

// HasSimultaneousLimit returns true if the product caps parallel excursions
func (c *ExcursionConfig) HasSimultaneousLimit() bool {
	return c.MaxSimultaneousExcursions > 0
}
