package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/internal/infra/cache"
	configStore "github.com/m04kA/SMC-ExcursionService/internal/infra/storage/excursion"
	"github.com/m04kA/SMC-ExcursionService/internal/pricing"
)

// UseCase use case расчета полной котировки бронирования
// В отличие от проверки выполнимости, расчет никогда не останавливается на
// полпути: разбивка строится целиком, даже если заявка невыполнима, чтобы
// интерфейс мог показать пользователю "почему столько"
// Расчет — чистая функция от (конфигурация, запрос): одинаковые входы дают
// побайтно одинаковую разбивку
type UseCase struct {
	configStore ConfigStore
	resultCache ResultCache
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configStore ConfigStore, resultCache ResultCache, logger Logger) *UseCase {
	return &UseCase{
		configStore: configStore,
		resultCache: resultCache,
		logger:      logger,
	}
}

// Execute рассчитывает котировку для запроса
// Результат мемоизируется по fingerprint (версия конфигурации + запрос)
func (uc *UseCase) Execute(ctx context.Context, req domain.BookingRequest) (*domain.PriceBreakdown, error) {
	uc.logger.Info("QuotePrice: product=%d, participants=%d, dates=%s..%s",
		req.ProductID, req.Participants, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	normalized := req.Normalized()

	// 2. Версия конфигурации для fingerprint
	version, err := uc.configStore.ConfigVersion(ctx, normalized.ProductID)
	if err != nil {
		if errors.Is(err, configStore.ErrExcursionNotFound) {
			uc.logger.Warn("QuotePrice: product id=%d not found", normalized.ProductID)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("QuotePrice: failed to get config version for product id=%d: %v", normalized.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get config version: %v", ErrInternal, err)
	}

	// 3. get-or-compute по fingerprint
	key := cache.Fingerprint(cache.OpQuote, version, normalized.CanonicalString())

	value, err := uc.resultCache.GetOrCompute(ctx, cache.OpQuote, key, normalized.ProductID,
		func(ctx context.Context) (interface{}, error) {
			return uc.compute(ctx, normalized)
		})
	if err != nil {
		return nil, err
	}

	breakdown, ok := value.(*domain.PriceBreakdown)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cached value type %T", ErrInternal, value)
	}

	uc.logger.Info("QuotePrice: product=%d total=%s %s (per person %s, %d days, %d vehicles)",
		normalized.ProductID, breakdown.TotalPrice, breakdown.Currency,
		breakdown.PricePerPerson, breakdown.Days, breakdown.VehiclesNeeded)

	return breakdown, nil
}

func (uc *UseCase) compute(ctx context.Context, req domain.BookingRequest) (*domain.PriceBreakdown, error) {
	cfg, err := uc.configStore.GetConfig(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, configStore.ErrExcursionNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	return Quote(cfg, req)
}

// Quote строит полную разбивку цены для запроса поверх конфигурации
// Экспортируется как чистая точка входа движка: вызывающая сторона может
// рассчитать котировку без хранилища и кеша
func Quote(cfg *domain.ExcursionConfig, req domain.BookingRequest) (*domain.PriceBreakdown, error) {
	req = req.Normalized()

	// 1. Длительность: невалидные даты — единственная жесткая ошибка расчета
	startDate, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	endDate, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange, req.StartDate, req.EndDate)
	}

	duration, err := pricing.CalculateDuration(req.StartDate, req.EndDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Базовая цена за участника из таблицы тиров
	perPerson := pricing.ResolveTierPrice(cfg.PricingTiers, cfg.BasePricePerPerson, req.Participants)

	// 3. Надбавка за временной слот (аддитивная, до умножения на участников)
	if adj, ok := pricing.TimeSlotAdjustment(cfg.TimeSlotRules, req.StartTime); ok {
		perPerson = perPerson.Add(adj)
	}

	// 4. Сезонная корректировка по дате начала (применяется первый период)
	perPerson = pricing.SeasonalAdjust(cfg.SeasonRules, startDate, perPerson)

	// Отрицательная цена за участника невозможна: fixed-модификаторы могут
	// увести ее ниже нуля, итог всегда ограничен нулем снизу
	if perPerson.IsNegative() {
		perPerson = 0
	}

	// 5. Extras и activities
	supplements := pricing.CalculateSupplements(cfg, req, duration.Days)

	// 6. Транспортные единицы: количество усекается до MaxVehicles, сама
	// выполнимость заявки — забота проверки, а не котировки
	alloc := pricing.AllocateVehicles(req.Participants, cfg)

	subtotal := perPerson.Mul(int64(req.Participants)).Mul(int64(duration.Days))
	total := subtotal.
		Add(supplements.ExtrasTotal).
		Add(supplements.ActivitiesTotal).
		Add(alloc.ExtraCost)

	// Extras с отрицательной ценой работают как скидки: строки в breakdown
	// остаются отрицательными, но итог не опускается ниже нуля
	if total.IsNegative() {
		total = 0
	}

	return &domain.PriceBreakdown{
		PricePerPerson:        perPerson,
		Days:                  duration.Days,
		Subtotal:              subtotal,
		ExtrasPrice:           supplements.ExtrasTotal,
		ExtraLines:            supplements.ExtraLines,
		ActivitiesPrice:       supplements.ActivitiesTotal,
		ActivityLines:         supplements.ActivityLines,
		VehiclesNeeded:        alloc.VehiclesNeeded,
		AdditionalVehicleCost: alloc.ExtraCost,
		TotalPrice:            total,
		Currency:              cfg.Currency,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req domain.BookingRequest) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}
	if req.Participants < domain.MinParticipants {
		return fmt.Errorf("%w: participants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}
	if req.Participants > domain.MaxParticipantCap {
		return fmt.Errorf("%w: participants must not exceed %d", ErrInvalidInput, domain.MaxParticipantCap)
	}
	if req.StartDate == "" {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	return nil
}
