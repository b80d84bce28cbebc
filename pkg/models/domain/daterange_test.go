package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func TestParseRange(t *testing.T) {
	tests := []struct {
		arg   string
		begin string
		end   string
		kind  RangeKind
	}{
		{"", "2025-03-14", "2025-03-14", RangeYesterday},
		{"today", "2025-03-15", "2025-03-15", RangeToday},
		{"yesterday", "2025-03-14", "2025-03-14", RangeYesterday},
		{"last7", "2025-03-09", "2025-03-15", RangeLast7},
		{"last14", "2025-03-02", "2025-03-15", RangeLast14},
		{"2025-01-31", "2025-01-31", "2025-01-31", RangeSingle},
		{"TODAY", "2025-03-15", "2025-03-15", RangeToday},
	}

	for _, tt := range tests {
		t.Run("arg="+tt.arg, func(t *testing.T) {
			rng, err := ParseRange(tt.arg, now)
			require.NoError(t, err)
			assert.Equal(t, tt.begin, rng.BeginDate())
			assert.Equal(t, tt.end, rng.EndDate())
			assert.Equal(t, tt.kind, rng.Kind)
		})
	}
}

func TestParseRange_Invalid(t *testing.T) {
	_, err := ParseRange("lastweek", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lastweek")

	_, err = ParseRange("31-01-2025", now)
	require.Error(t, err)
}

func TestDateRange_Label(t *testing.T) {
	yesterday, err := ParseRange("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14 · Yesterday", yesterday.Label())

	single, err := ParseRange("2025-01-31", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", single.Label())

	last7, err := ParseRange("last7", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09 → 2025-03-15 · Last 7 days", last7.Label())
}
