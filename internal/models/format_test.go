package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1845200.50", "₦1,845,200.50"},
		{"500", "₦500.00"},
		{"0", "₦0.00"},
		{"1234567.891", "₦1,234,567.89"},
		{"-2500.5", "-₦2,500.50"},
		{"not-a-number", "₦not-a-number"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatNaira(tc.amount), "amount %q", tc.amount)
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusSuccessful, NormalizeStatus("successful"))
	assert.Equal(t, StatusSuccessful, NormalizeStatus("Success"))
	assert.Equal(t, StatusPending, NormalizeStatus("PENDING"))
	assert.Equal(t, StatusFailed, NormalizeStatus("fail"))
	assert.Equal(t, StatusFailed, NormalizeStatus("failed"))
	assert.Equal(t, StatusSuccessful, NormalizeStatus("reversed"), "unknown statuses display as successful")
}

func TestParseWireTime(t *testing.T) {
	for _, s := range []string{"2025-08-20T10:00:00Z", "2025-08-20T10:00:00.123Z", "2025-08-20T10:00:00+01:00"} {
		_, err := ParseWireTime(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseWireTime("20/08/2025")
	assert.Error(t, err)
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) string {
		return now.Add(-d).Format(time.RFC3339)
	}

	tests := []struct {
		wire string
		want string
	}{
		{at(5 * time.Second), "5 seconds ago"},
		{at(time.Second), "1 second ago"},
		{at(3 * time.Minute), "3 mins ago"},
		{at(time.Hour), "1 hour ago"},
		{at(26 * time.Hour), "Yesterday"},
		{at(5 * 24 * time.Hour), "5 days ago"},
		{at(70 * 24 * time.Hour), "2 months ago"},
		{at(800 * 24 * time.Hour), "2 years ago"},
		{"garbage", "garbage"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TimeAgo(tc.wire, now), tc.wire)
	}
}
