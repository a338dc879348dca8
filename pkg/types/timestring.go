package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// Zero-padding makes lexicographic comparison equivalent to chronological
// comparison, so ranges of TimeString values compare as plain strings.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// InRange возвращает true, если ts попадает в диапазон [start, end] включительно
func (ts TimeString) InRange(start, end TimeString) bool {
	return !ts.IsBefore(start) && !ts.IsAfter(end)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается — это ошибка вызывающей стороны
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// MinutesUntil возвращает количество минут от ts до other
// Отрицательное значение означает, что other раньше ts
func (ts TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	to, err := time.Parse(TimeFormat, string(other))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(other))
	}
	return int(to.Sub(from) / time.Minute), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}
