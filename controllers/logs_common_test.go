package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "midweek wednesday",
			now:       time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC),
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-12",
		},
		{
			name:      "monday is its own start",
			now:       time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC),
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-10",
		},
		{
			name:      "sunday reaches back six days",
			now:       time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC),
			wantStart: "2025-03-10",
			wantEnd:   "2025-03-16",
		},
		{
			name:      "week spanning month boundary",
			now:       time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC),
			wantStart: "2025-03-31",
			wantEnd:   "2025-04-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekWindow(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	t.Run("default is current month through today", func(t *testing.T) {
		start, end, err := monthWindow("", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", start)
		assert.Equal(t, "2025-03-12", end)
	})

	t.Run("explicit month spans to the next first", func(t *testing.T) {
		start, end, err := monthWindow("2025-01", now)
		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", start)
		assert.Equal(t, "2025-02-01", end)
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		start, end, err := monthWindow("2024-12", now)
		require.NoError(t, err)
		assert.Equal(t, "2024-12-01", start)
		assert.Equal(t, "2025-01-01", end)
	})

	t.Run("garbage month is rejected", func(t *testing.T) {
		_, _, err := monthWindow("march", now)
		assert.Error(t, err)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.5, round2(1.499999999))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, -2.33, round2(-2.334))
	assert.Equal(t, 8.17, round2(8.166666667))
}
