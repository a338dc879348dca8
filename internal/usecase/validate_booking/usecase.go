package validate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/internal/infra/cache"
	configStore "github.com/m04kA/SMC-ExcursionService/internal/infra/storage/excursion"
	"github.com/m04kA/SMC-ExcursionService/internal/pricing"
)

// UseCase use case проверки выполнимости бронирования
// Проверки выполняются в фиксированном порядке с остановкой на первом
// нарушении; use case повторно-входим, без побочных эффектов и никогда
// не пишет в журнал бронирований
type UseCase struct {
	configStore  ConfigStore
	checker      AvailabilityChecker
	resultCache  ResultCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configStore ConfigStore,
	checker AvailabilityChecker,
	resultCache ResultCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		configStore:  configStore,
		checker:      checker,
		resultCache:  resultCache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку выполнимости бронирования
// Результат мемоизируется по fingerprint (версия конфигурации + запрос)
func (uc *UseCase) Execute(ctx context.Context, req domain.BookingRequest) (domain.ValidationResult, error) {
	uc.logger.Info("ValidateBooking: product=%d, participants=%d, dates=%s..%s",
		req.ProductID, req.Participants, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return domain.ValidationResult{}, err
	}

	normalized := req.Normalized()

	// 2. Получаем версию конфигурации для fingerprint
	version, err := uc.configStore.ConfigVersion(ctx, normalized.ProductID)
	if err != nil {
		if errors.Is(err, configStore.ErrExcursionNotFound) {
			uc.logger.Warn("ValidateBooking: product id=%d not found", normalized.ProductID)
			return domain.InvalidResult(domain.CodeProductNotFound, "excursion product not found"), nil
		}
		uc.logger.Error("ValidateBooking: failed to get config version for product id=%d: %v", normalized.ProductID, err)
		return domain.ValidationResult{}, fmt.Errorf("%w: failed to get config version: %v", ErrInternal, err)
	}

	// 3. Фиксируем текущее время до кеша: конкурентные вызовы одного
	// fingerprint должны получить одинаковый вердикт
	now := uc.timeProvider.Now()

	// 4. get-or-compute по fingerprint
	key := cache.Fingerprint(cache.OpValidate, version, normalized.CanonicalString())

	value, err := uc.resultCache.GetOrCompute(ctx, cache.OpValidate, key, normalized.ProductID,
		func(ctx context.Context) (interface{}, error) {
			return uc.evaluate(ctx, normalized, now)
		})
	if err != nil {
		return domain.ValidationResult{}, err
	}

	result, ok := value.(domain.ValidationResult)
	if !ok {
		return domain.ValidationResult{}, fmt.Errorf("%w: unexpected cached value type %T", ErrInternal, value)
	}

	if result.Valid {
		uc.logger.Info("ValidateBooking: product=%d valid, vehicles=%d", normalized.ProductID, result.VehiclesNeeded)
	} else {
		uc.logger.Info("ValidateBooking: product=%d rejected, code=%s", normalized.ProductID, result.Code)
	}

	return result, nil
}

// evaluate выполняет полную цепочку проверок поверх свежей конфигурации
func (uc *UseCase) evaluate(ctx context.Context, req domain.BookingRequest, now time.Time) (domain.ValidationResult, error) {
	cfg, err := uc.configStore.GetConfig(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, configStore.ErrExcursionNotFound) {
			return domain.InvalidResult(domain.CodeProductNotFound, "excursion product not found"), nil
		}
		return domain.ValidationResult{}, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// Даты парсятся один раз; нечитаемая дата — единственная жесткая ошибка
	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		return domain.InvalidResult(domain.CodeInvalidDateFormat, "start date must be in YYYY-MM-DD format"), nil
	}
	end, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		return domain.InvalidResult(domain.CodeInvalidDateFormat, "end date must be in YYYY-MM-DD format"), nil
	}

	// 1. Глобальный лимит участников
	if v := validateParticipantLimit(cfg, req.Participants); v != nil {
		return *v, nil
	}

	// 2. Доступность дат и остаточная вместимость
	if v := uc.checker.CheckDateRules(cfg, start); v != nil {
		return domain.InvalidResult(v.Code, v.Message), nil
	}
	if !end.Equal(start) {
		if v := uc.checker.CheckDateRules(cfg, end); v != nil {
			return domain.InvalidResult(v.Code, v.Message), nil
		}
	}

	seatViolation, err := uc.checker.CheckSeats(ctx, cfg, start, end, req.Participants)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("%w: seat availability check: %v", ErrInternal, err)
	}
	if seatViolation != nil {
		return domain.InvalidResult(seatViolation.Code, seatViolation.Message), nil
	}

	// 3. Lead time
	if v := uc.checker.CheckLeadTime(cfg, start, now); v != nil {
		return domain.InvalidResult(v.Code, v.Message), nil
	}

	// 4. Распределение по транспортным единицам
	alloc := pricing.AllocateVehicles(req.Participants, cfg)
	if v := validateAllocation(cfg, alloc); v != nil {
		return *v, nil
	}

	// 5. Временной слот или длительность — в зависимости от типа продукта
	if cfg.IsFixedDate {
		if v := validateTimeslot(cfg, req); v != nil {
			return *v, nil
		}
	} else {
		if v := validateDuration(cfg, req, start, end); v != nil {
			return *v, nil
		}
	}

	// 6. Лимит одновременных экскурсий
	simViolation, err := uc.checker.CheckSimultaneous(ctx, cfg, start, end)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("%w: simultaneous excursions check: %v", ErrInternal, err)
	}
	if simViolation != nil {
		return domain.InvalidResult(simViolation.Code, simViolation.Message), nil
	}

	return domain.ValidResult(alloc.VehiclesNeeded), nil
}
