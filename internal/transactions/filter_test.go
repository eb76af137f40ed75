package transactions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestPresetWindows(t *testing.T) {
	today := day(2025, time.June, 20)

	tests := []struct {
		preset DateRangePreset
		in     time.Time
		out    time.Time
	}{
		{PresetLast7Days, day(2025, time.June, 13), day(2025, time.June, 10)},
		{PresetLast30Days, day(2025, time.May, 21), day(2025, time.May, 10)},
		{PresetLast6Months, day(2024, time.December, 20), day(2024, time.November, 30)},
		{PresetLast12Months, day(2024, time.June, 20), day(2024, time.May, 1)},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			window, ok := tc.preset.Window(today)
			require.True(t, ok)
			assert.True(t, window.Contains(tc.in), "%s should fall inside %s", tc.in.Format("2006-01-02"), tc.preset)
			assert.False(t, window.Contains(tc.out), "%s should fall outside %s", tc.out.Format("2006-01-02"), tc.preset)
			assert.True(t, window.Contains(today), "today is always the inclusive upper bound")
		})
	}
}

func TestPresetWindow_CustomHasNoRelativeWindow(t *testing.T) {
	_, ok := PresetCustom.Window(day(2025, time.June, 20))
	assert.False(t, ok)
}

func TestNewDateRange_NormalizesToWholeDays(t *testing.T) {
	from := time.Date(2025, time.June, 1, 14, 30, 0, 0, time.Local)
	to := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.Local)

	r, err := NewDateRange(from, to)
	require.NoError(t, err)

	// A transaction early on the first day and late on the last day are both in.
	assert.True(t, r.Contains(time.Date(2025, time.June, 1, 0, 0, 1, 0, time.Local)))
	assert.True(t, r.Contains(time.Date(2025, time.June, 10, 23, 59, 59, 0, time.Local)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.Local)))
	assert.False(t, r.Contains(time.Date(2025, time.May, 31, 23, 59, 59, 0, time.Local)))
}

func TestNewDateRange_RejectsInvertedRange(t *testing.T) {
	_, err := NewDateRange(day(2025, time.June, 10), day(2025, time.June, 1))
	assert.Error(t, err)
}

func TestNewDateRange_RequiresBothEnds(t *testing.T) {
	_, err := NewDateRange(day(2025, time.June, 1), time.Time{})
	assert.Error(t, err)
	_, err = NewDateRange(time.Time{}, day(2025, time.June, 1))
	assert.Error(t, err)
}

func TestStatusFilter_Matches(t *testing.T) {
	assert.True(t, StatusAll.matches("pending"))
	assert.True(t, StatusSuccessful.matches("SUCCESSFUL"))
	assert.True(t, StatusFailed.matches("failed"))
	assert.False(t, StatusPending.matches("successful"))
	// Unrecognized statuses display as successful, and filter accordingly.
	assert.True(t, StatusSuccessful.matches("weird"))
	assert.False(t, StatusPending.matches(""))
}
