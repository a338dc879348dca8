package excursion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionService/pkg/money"
	"github.com/m04kA/SMC-ExcursionService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// Repository репозиторий конфигураций экскурсионных продуктов (read-only)
// Хранилище принадлежит админке платформы; движок только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfig читает полную конфигурацию продукта и разворачивает
// легаси-таблицы правил в типизированные структуры
func (r *Repository) GetConfig(ctx context.Context, productID int64) (*domain.ExcursionConfig, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"version",
		"currency",
		"participant_limit",
		"lead_time_hours",
		"is_fixed_date",
		"fixed_start_date",
		"fixed_end_date",
		"fixed_start_time",
		"fixed_end_time",
		"base_price_per_person",
		"pricing_tiers",
		"extras",
		"activities",
		"base_capacity",
		"min_additional_participants",
		"max_vehicles",
		"additional_unit_cost",
		"strict_vehicle_fill",
		"time_slot_rules",
		"season_rules",
		"min_duration_hours",
		"max_duration_days",
		"min_date",
		"max_date",
		"available_weekdays",
		"excluded_dates",
		"max_simultaneous_excursions",
		"created_at",
		"updated_at",
	).
		From("excursions").
		Where(squirrel.Eq{"id": productID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg domain.ExcursionConfig

		currency                      sql.NullString
		fixedStartDate, fixedEndDate  sql.NullTime
		fixedStartTime, fixedEndTime  sql.NullString
		tiersRaw, extrasRaw           sql.NullString
		activitiesRaw                 sql.NullString
		timeSlotRulesRaw, seasonsRaw  sql.NullString
		minDate, maxDate              sql.NullTime
		weekdaysRaw, excludedDatesRaw sql.NullString
		basePricePerPerson, extraCost int64
		createdAt, updatedAt          sql.NullTime
	)

	err = dbmetrics.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(
		&cfg.ProductID,
		&cfg.Version,
		&currency,
		&cfg.ParticipantLimit,
		&cfg.LeadTimeHours,
		&cfg.IsFixedDate,
		&fixedStartDate,
		&fixedEndDate,
		&fixedStartTime,
		&fixedEndTime,
		&basePricePerPerson,
		&tiersRaw,
		&extrasRaw,
		&activitiesRaw,
		&cfg.BaseCapacity,
		&cfg.MinAdditionalParticipants,
		&cfg.MaxVehicles,
		&extraCost,
		&cfg.StrictVehicleFill,
		&timeSlotRulesRaw,
		&seasonsRaw,
		&cfg.MinDurationHours,
		&cfg.MaxDurationDays,
		&minDate,
		&maxDate,
		&weekdaysRaw,
		&excludedDatesRaw,
		&cfg.MaxSimultaneousExcursions,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%d", ErrExcursionNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan row: %v", ErrScanRow, err)
	}

	cfg.Currency = domain.DefaultCurrency
	if currency.Valid && currency.String != "" {
		cfg.Currency = currency.String
	}

	cfg.BasePricePerPerson = money.Amount(basePricePerPerson)
	cfg.AdditionalUnitCost = money.Amount(extraCost)

	if fixedStartDate.Valid {
		cfg.FixedStartDate = &fixedStartDate.Time
	}
	if fixedEndDate.Valid {
		cfg.FixedEndDate = &fixedEndDate.Time
	}
	if fixedStartTime.Valid {
		cfg.FixedStartTime = types.TimeString(fixedStartTime.String)
	}
	if fixedEndTime.Valid {
		cfg.FixedEndTime = types.TimeString(fixedEndTime.String)
	}

	cfg.PricingTiers = parseTiers(tiersRaw.String)
	cfg.Extras = parseExtras(extrasRaw.String)
	cfg.Activities = parseActivities(activitiesRaw.String)
	cfg.TimeSlotRules = parseTimeSlotRules(timeSlotRulesRaw.String)
	cfg.SeasonRules = parseSeasonRules(seasonsRaw.String)

	if minDate.Valid {
		cfg.Availability.MinDate = &minDate.Time
	}
	if maxDate.Valid {
		cfg.Availability.MaxDate = &maxDate.Time
	}
	cfg.Availability.AvailableWeekdays = parseWeekdays(weekdaysRaw.String)
	cfg.Availability.ExcludedDates = parseDateList(excludedDatesRaw.String)

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	applyDefaults(&cfg)

	return &cfg, nil
}

// ConfigVersion читает только токен версии конфигурации — дешевый запрос,
// выполняемый на каждом обращении к движку для вычисления fingerprint
func (r *Repository) ConfigVersion(ctx context.Context, productID int64) (int64, error) {
	query, args, err := psqlbuilder.Select("version").
		From("excursions").
		Where(squirrel.Eq{"id": productID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ConfigVersion - build select query: %v", ErrBuildQuery, err)
	}

	var version int64
	err = dbmetrics.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: id=%d", ErrExcursionNotFound, productID)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: ConfigVersion - scan row: %v", ErrScanRow, err)
	}

	return version, nil
}

// applyDefaults заполняет незаданные поля дефолтами платформы
func applyDefaults(cfg *domain.ExcursionConfig) {
	if cfg.BaseCapacity <= 0 {
		cfg.BaseCapacity = domain.DefaultBaseCapacity
	}
	if cfg.MaxVehicles <= 0 {
		cfg.MaxVehicles = domain.DefaultMaxVehicles
	}
	if cfg.MaxDurationDays <= 0 {
		cfg.MaxDurationDays = domain.DefaultMaxDurationDays
	}
	// Опечатка в админке не должна закрыть бронирование на годы вперед
	if cfg.LeadTimeHours > domain.MaxLeadTimeHours {
		cfg.LeadTimeHours = domain.MaxLeadTimeHours
	}
}
