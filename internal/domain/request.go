package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

// BookingRequest is a candidate booking as it arrives from the booking form.
// Dates are kept as raw "YYYY-MM-DD" strings: parsing them is part of the
// engine's own validation (InvalidDateFormat is a user-facing verdict, not a
// transport error).
type BookingRequest struct {
	ProductID    int64
	Participants int
	StartDate    string
	EndDate      string // empty = single-day booking on StartDate
	StartTime    types.TimeString
	EndTime      types.TimeString

	SelectedExtras     map[string]int // extra key -> requested quantity
	SelectedActivities map[string]int // activity key -> requested days
}

// Normalized returns a copy with defaults filled in and noise removed:
// empty EndDate becomes StartDate, non-positive quantities are dropped.
// Two requests meaning the same booking normalize to the same value,
// which keeps cache fingerprints stable.
func (r BookingRequest) Normalized() BookingRequest {
	out := r
	if out.EndDate == "" {
		out.EndDate = out.StartDate
	}

	out.SelectedExtras = copyPositive(r.SelectedExtras)
	out.SelectedActivities = copyPositive(r.SelectedActivities)
	return out
}

// CanonicalString возвращает детерминированное строковое представление
// запроса: ключи extras/activities отсортированы, все поля в фиксированном
// порядке. Используется как вход для fingerprint кеша
func (r BookingRequest) CanonicalString() string {
	n := r.Normalized()

	var b strings.Builder
	fmt.Fprintf(&b, "p=%d|n=%d|sd=%s|ed=%s|st=%s|et=%s",
		n.ProductID, n.Participants, n.StartDate, n.EndDate, n.StartTime, n.EndTime)

	b.WriteString("|x=")
	writeSorted(&b, n.SelectedExtras)
	b.WriteString("|a=")
	writeSorted(&b, n.SelectedActivities)

	return b.String()
}

func copyPositive(src map[string]int) map[string]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		if v > 0 {
			dst[k] = v
		}
	}
	if len(dst) == 0 {
		return nil
	}
	return dst
}

func writeSorted(b *strings.Builder, m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%s:%d", k, m[k])
	}
}
