package transactions

import (
	"fmt"
	"time"

	"partner-dashboard/internal/models"
)

// StatusFilter narrows the transaction list to one display status.
type StatusFilter string

const (
	StatusAll        StatusFilter = "all"
	StatusSuccessful StatusFilter = "successful"
	StatusPending    StatusFilter = "pending"
	StatusFailed     StatusFilter = "failed"
)

func (f StatusFilter) valid() bool {
	switch f {
	case StatusAll, StatusSuccessful, StatusPending, StatusFailed:
		return true
	}
	return false
}

func (f StatusFilter) matches(raw string) bool {
	if f == StatusAll {
		return true
	}
	return models.NormalizeStatus(raw) == models.NormalizeStatus(string(f))
}

// DateRangePreset is a named relative window ending today.
type DateRangePreset string

const (
	PresetLast12Months DateRangePreset = "last_12_months"
	PresetLast6Months  DateRangePreset = "last_6_months"
	PresetLast30Days   DateRangePreset = "last_30_days"
	PresetLast7Days    DateRangePreset = "last_7_days"
	PresetCustom       DateRangePreset = "custom"
)

// DateRange is an inclusive window. From is anchored at 00:00:00.000 and To
// at 23:59:59.999 local time, so whole days are always in or out together.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange validates and normalizes an explicit user-picked range. A
// missing To or an inverted range is rejected.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, fmt.Errorf("both ends of the range are required")
	}
	if from.After(to) {
		return DateRange{}, fmt.Errorf("range start %s is after end %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return DateRange{From: dayStart(from), To: dayEnd(to)}, nil
}

// Window resolves a relative preset against today. Custom has no relative
// window and reports false.
func (p DateRangePreset) Window(today time.Time) (DateRange, bool) {
	var from time.Time
	switch p {
	case PresetLast7Days:
		from = today.AddDate(0, 0, -7)
	case PresetLast30Days:
		from = today.AddDate(0, 0, -30)
	case PresetLast6Months:
		from = today.AddDate(0, -6, 0)
	case PresetLast12Months:
		from = today.AddDate(-1, 0, 0)
	default:
		return DateRange{}, false
	}
	return DateRange{From: dayStart(from), To: dayEnd(today)}, true
}

// Contains reports whether t falls inside the window, ends inclusive.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
