package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// ErrInvalidDateFormat возвращается, когда дата запроса не парсится как YYYY-MM-DD
var ErrInvalidDateFormat = errors.New("pricing: invalid date format")

// Duration длительность бронирования в днях и часах
type Duration struct {
	// Days количество дней включительно по обеим границам (минимум 1)
	Days int
	// Hours целых часов между StartTime и EndTime; 0, если времена не заданы
	Hours int
}

// CalculateDuration вычисляет длительность бронирования
// Дни считаются включительно: (end - start) + 1. Часы считаются только когда
// заданы оба времени и усекаются до целых. endDate < startDate здесь НЕ
// отклоняется — за InvalidDateRange отвечает вызывающая сторона
func CalculateDuration(startDate, endDate string, startTime, endTime types.TimeString) (Duration, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: start date %q", ErrInvalidDateFormat, startDate)
	}

	if endDate == "" {
		endDate = startDate
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: end date %q", ErrInvalidDateFormat, endDate)
	}

	days := int(end.Sub(start).Hours()/domain.HoursPerDay) + 1

	hours := 0
	if !startTime.IsZero() && !endTime.IsZero() {
		minutes, err := startTime.MinutesUntil(endTime)
		if err == nil {
			hours = minutes / 60
		}
	}

	return Duration{Days: days, Hours: hours}, nil
}

// ParseDate парсит дату запроса в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}
