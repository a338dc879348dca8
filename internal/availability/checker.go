package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

// ErrLedger возвращается, когда чтение журнала бронирований не удалось
var ErrLedger = errors.New("availability: ledger read failed")

// Violation описывает нарушение конкретного правила доступности
// nil Violation означает, что правило выполнено
type Violation struct {
	Code    domain.ErrorCode
	Message string
}

// Checker валидирует кандидатную дату против правил окна бронирования,
// дней недели, исключенных дат и остаточной вместимости
type Checker struct {
	ledger Ledger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(ledger Ledger) *Checker {
	return &Checker{ledger: ledger}
}

// CheckDateRules проверяет дату против окна [MinDate, MaxDate], белого списка
// дней недели и списка исключенных дат. Каждое правило дает свой код ошибки
func (c *Checker) CheckDateRules(cfg *domain.ExcursionConfig, date time.Time) *Violation {
	rules := cfg.Availability

	if rules.MinDate != nil && dateOnly(date).Before(dateOnly(*rules.MinDate)) {
		return &Violation{
			Code:    domain.CodeDateNotAvailable,
			Message: fmt.Sprintf("date %s is before the booking window opens", date.Format(domain.DateFormat)),
		}
	}
	if rules.MaxDate != nil && dateOnly(date).After(dateOnly(*rules.MaxDate)) {
		return &Violation{
			Code:    domain.CodeDateNotAvailable,
			Message: fmt.Sprintf("date %s is after the booking window closes", date.Format(domain.DateFormat)),
		}
	}

	if !rules.WeekdayAllowed(date.Weekday()) {
		return &Violation{
			Code:    domain.CodeWeekdayNotAvailable,
			Message: fmt.Sprintf("excursion is not available on %s", date.Weekday()),
		}
	}

	if rules.IsExcluded(date) {
		return &Violation{
			Code:    domain.CodeDateExcluded,
			Message: fmt.Sprintf("date %s is excluded from booking", date.Format(domain.DateFormat)),
		}
	}

	return nil
}

// CheckLeadTime проверяет, что до начала экскурсии остается не меньше
// настроенного lead time. Самая ранняя допустимая дата:
// сегодня + ceil(LeadTimeHours/24) дней
func (c *Checker) CheckLeadTime(cfg *domain.ExcursionConfig, start, now time.Time) *Violation {
	if cfg.LeadTimeHours <= 0 {
		return nil
	}

	leadDays := (cfg.LeadTimeHours + domain.HoursPerDay - 1) / domain.HoursPerDay
	earliest := dateOnly(now).AddDate(0, 0, leadDays)

	if dateOnly(start).Before(earliest) {
		return &Violation{
			Code: domain.CodeBookingTooLate,
			Message: fmt.Sprintf("booking requires at least %d hours notice, earliest date is %s",
				cfg.LeadTimeHours, earliest.Format(domain.DateFormat)),
		}
	}
	return nil
}

// CheckSeats проверяет остаточную вместимость по журналу бронирований:
// уже забронированные участники на пересекающиеся даты плюс запрошенные
// не должны превышать ParticipantLimit
func (c *Checker) CheckSeats(ctx context.Context, cfg *domain.ExcursionConfig, from, to time.Time, participants int) (*Violation, error) {
	if cfg.ParticipantLimit <= 0 {
		return nil, nil
	}

	committed, err := c.ledger.CountCommittedParticipants(ctx, cfg.ProductID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: count committed participants: %v", ErrLedger, err)
	}

	remaining := cfg.ParticipantLimit - committed
	if participants > remaining {
		if remaining < 0 {
			remaining = 0
		}
		return &Violation{
			Code:    domain.CodeInsufficientSeats,
			Message: fmt.Sprintf("only %d seats remain for the requested dates", remaining),
		}, nil
	}
	return nil, nil
}

// CheckSimultaneous проверяет ограничение на количество одновременных
// экскурсий. Два бронирования конфликтуют, когда их диапазоны дат
// пересекаются: existingStart <= requestedEnd AND existingEnd >= requestedStart
func (c *Checker) CheckSimultaneous(ctx context.Context, cfg *domain.ExcursionConfig, from, to time.Time) (*Violation, error) {
	if !cfg.HasSimultaneousLimit() {
		return nil, nil
	}

	overlapping, err := c.ledger.CountOverlappingBookings(ctx, cfg.ProductID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: count overlapping bookings: %v", ErrLedger, err)
	}

	if overlapping >= cfg.MaxSimultaneousExcursions {
		return &Violation{
			Code: domain.CodeMaxSimultaneousReached,
			Message: fmt.Sprintf("maximum of %d simultaneous excursions already reached for the requested dates",
				cfg.MaxSimultaneousExcursions),
		}, nil
	}
	return nil, nil
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
