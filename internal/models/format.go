package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status is a normalized transaction status for display and filtering.
type Status string

const (
	StatusSuccessful Status = "Successful"
	StatusPending    Status = "Pending"
	StatusFailed     Status = "Failed"
)

// NormalizeStatus maps the backend's loosely spelled status strings onto the
// three display statuses. Unknown values default to successful, matching the
// dashboard's behavior.
func NormalizeStatus(status string) Status {
	switch strings.ToLower(status) {
	case "successful", "success":
		return StatusSuccessful
	case "pending":
		return StatusPending
	case "failed", "fail":
		return StatusFailed
	}
	return StatusSuccessful
}

// ParseWireTime parses the ISO 8601 timestamps the backend emits.
func ParseWireTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.000Z07:00", s)
}

// FormatNaira renders a decimal-string amount as a naira value with
// thousands separators and two decimal places.
func FormatNaira(amount string) string {
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "₦" + amount
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "₦" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// TimeAgo renders a wire timestamp relative to now ("5 mins ago",
// "Yesterday"). Unparseable timestamps come back verbatim.
func TimeAgo(s string, now time.Time) string {
	t, err := ParseWireTime(s)
	if err != nil {
		return s
	}
	secs := int(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	if secs < 60 {
		return plural(secs, "second")
	}
	mins := secs / 60
	if mins < 60 {
		return plural(mins, "min")
	}
	hours := mins / 60
	if hours < 24 {
		return plural(hours, "hour")
	}
	days := hours / 24
	if days == 1 {
		return "Yesterday"
	}
	if days < 30 {
		return fmt.Sprintf("%d days ago", days)
	}
	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}
	return plural(months/12, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
