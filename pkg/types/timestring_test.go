package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeString
		wantErr  bool
	}{
		{name: "valid time", input: "09:30", expected: "09:30"},
		{name: "midnight", input: "00:00", expected: "00:00"},
		{name: "end of day", input: "23:59", expected: "23:59"},
		{name: "unpadded hour is normalized", input: "9:30", expected: "09:30"},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ts)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 6, 1, 9, 5, 30, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		ts       TimeString
		start    TimeString
		end      TimeString
		expected bool
	}{
		{name: "inside", ts: "10:00", start: "08:00", end: "11:00", expected: true},
		{name: "on lower bound", ts: "08:00", start: "08:00", end: "11:00", expected: true},
		{name: "on upper bound", ts: "11:00", start: "08:00", end: "11:00", expected: true},
		{name: "before", ts: "07:59", start: "08:00", end: "11:00", expected: false},
		{name: "after", ts: "11:01", start: "08:00", end: "11:00", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ts.InRange(tt.start, tt.end))
		})
	}
}

func TestMinutesUntil(t *testing.T) {
	from := TimeString("09:00")

	minutes, err := from.MinutesUntil("17:30")
	require.NoError(t, err)
	assert.Equal(t, 510, minutes)

	minutes, err = from.MinutesUntil("08:00")
	require.NoError(t, err)
	assert.Equal(t, -60, minutes)

	_, err = from.MinutesUntil("not-a-time")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
