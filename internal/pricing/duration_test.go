package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionService/pkg/types"
)

func timeString(s string) types.TimeString {
	return types.TimeString(s)
}

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		startTime string
		endTime   string
		days      int
		hours     int
		wantErr   bool
	}{
		{name: "single day", startDate: "2025-06-01", endDate: "2025-06-01", days: 1},
		{name: "empty end date defaults to start", startDate: "2025-06-01", days: 1},
		{name: "three days inclusive", startDate: "2025-06-01", endDate: "2025-06-03", days: 3},
		{name: "across month boundary", startDate: "2025-06-30", endDate: "2025-07-02", days: 3},
		{name: "hours from times", startDate: "2025-06-01", endDate: "2025-06-01", startTime: "09:00", endTime: "17:30", days: 1, hours: 8},
		{name: "hours truncated", startDate: "2025-06-01", endDate: "2025-06-01", startTime: "09:00", endTime: "09:59", days: 1, hours: 0},
		{name: "only start time gives no hours", startDate: "2025-06-01", endDate: "2025-06-01", startTime: "09:00", days: 1},
		{name: "bad start date", startDate: "01.06.2025", wantErr: true},
		{name: "bad end date", startDate: "2025-06-01", endDate: "garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := CalculateDuration(tt.startDate, tt.endDate,
				timeString(tt.startTime), timeString(tt.endTime))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.days, d.Days)
			assert.Equal(t, tt.hours, d.Hours)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("2025/06/01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
