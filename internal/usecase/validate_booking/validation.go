package validate_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/internal/pricing"
)

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

// validateParticipantLimit проверяет глобальный лимит участников продукта
func validateParticipantLimit(cfg *domain.ExcursionConfig, participants int) *domain.ValidationResult {
	if cfg.ParticipantLimit > 0 && participants > cfg.ParticipantLimit {
		r := domain.InvalidResult(
			domain.CodeGlobalParticipantLimitExceeded,
			fmt.Sprintf("at most %d participants can be booked for this excursion", cfg.ParticipantLimit),
		)
		return &r
	}
	return nil
}

// validateAllocation проверяет результат распределения по транспортным единицам
// Превышение MaxVehicles делает заявку невыполнимой: усечение количества
// единиц информационное, а не тихое удешевление
// Политика строгого заполнения (StrictVehicleFill) дополнительно отклоняет
// заявки с неполной последней единицей
func validateAllocation(cfg *domain.ExcursionConfig, alloc pricing.Allocation) *domain.ValidationResult {
	if alloc.LimitExceeded {
		r := domain.InvalidResult(
			domain.CodeVehicleLimitExceeded,
			fmt.Sprintf("request needs %d vehicles but only %d are available (max %d participants)",
				alloc.UncappedVehicles, cfg.MaxVehicles, cfg.MaxBookableParticipants()),
		)
		r.VehiclesNeeded = alloc.VehiclesNeeded
		return &r
	}

	if cfg.StrictVehicleFill && alloc.VehiclesNeeded > 1 && alloc.MissingParticipants > 0 {
		r := domain.InvalidResult(
			domain.CodeInefficientVehicleAllocation,
			fmt.Sprintf("add %d more participants to fill the last vehicle", alloc.MissingParticipants),
		)
		r.VehiclesNeeded = alloc.VehiclesNeeded
		r.MissingParticipants = alloc.MissingParticipants
		return &r
	}

	return nil
}

// validateTimeslot проверяет выбранный слот для продуктов с фиксированной датой
func validateTimeslot(cfg *domain.ExcursionConfig, req domain.BookingRequest) *domain.ValidationResult {
	if req.StartTime.IsZero() {
		r := domain.InvalidResult(domain.CodeMissingTimeslot, "a time slot must be selected for this excursion")
		return &r
	}

	if err := req.StartTime.Validate(); err != nil {
		r := domain.InvalidResult(domain.CodeInvalidTimeslot, "selected time slot is not a valid HH:MM time")
		return &r
	}

	if len(cfg.TimeSlotRules) == 0 {
		return nil
	}

	for _, rule := range cfg.TimeSlotRules {
		if rule.Contains(req.StartTime) {
			return nil
		}
	}

	r := domain.InvalidResult(domain.CodeInvalidTimeslot,
		fmt.Sprintf("time %s does not match any bookable slot", req.StartTime))
	return &r
}

// validateDuration проверяет диапазон дат и длительность для продуктов
// со свободными датами
func validateDuration(cfg *domain.ExcursionConfig, req domain.BookingRequest, start, end time.Time) *domain.ValidationResult {
	if end.Before(start) {
		r := domain.InvalidResult(domain.CodeInvalidDateRange, "end date must not be before start date")
		return &r
	}

	duration, err := pricing.CalculateDuration(req.StartDate, req.EndDate, req.StartTime, req.EndTime)
	if err != nil {
		// Даты уже распарсены вызывающей стороной, сюда попасть нельзя
		r := domain.InvalidResult(domain.CodeInvalidDateFormat, "dates must be in YYYY-MM-DD format")
		return &r
	}

	if cfg.MaxDurationDays > 0 && duration.Days > cfg.MaxDurationDays {
		r := domain.InvalidResult(domain.CodeTooLongDuration,
			fmt.Sprintf("excursion cannot be longer than %d days", cfg.MaxDurationDays))
		return &r
	}

	// Однодневные бронирования с минимальной длительностью требуют времена
	if duration.Days == 1 && cfg.MinDurationHours > 0 {
		if req.StartTime.IsZero() || req.EndTime.IsZero() {
			r := domain.InvalidResult(domain.CodeMissingTimes, "start and end times are required for single-day bookings")
			return &r
		}
		if req.StartTime.Validate() != nil || req.EndTime.Validate() != nil {
			r := domain.InvalidResult(domain.CodeInvalidTimeFormat, "times must be in HH:MM format")
			return &r
		}
		if duration.Hours < cfg.MinDurationHours {
			r := domain.InvalidResult(domain.CodeTooShortDuration,
				fmt.Sprintf("excursion must last at least %d hours", cfg.MinDurationHours))
			return &r
		}
	} else if !req.StartTime.IsZero() && req.StartTime.Validate() != nil {
		r := domain.InvalidResult(domain.CodeInvalidTimeFormat, "times must be in HH:MM format")
		return &r
	}

	return nil
}
