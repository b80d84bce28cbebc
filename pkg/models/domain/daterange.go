package domain

import (
	"fmt"
	"strings"
	"time"
)

// RangeKind tags how a report date range was selected. It ends up in the
// generated report filename.
type RangeKind string

const (
	RangeToday     RangeKind = "today"
	RangeYesterday RangeKind = "yesterday"
	RangeLast7     RangeKind = "last7"
	RangeLast14    RangeKind = "last14"
	RangeSingle    RangeKind = "single"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar range.
type DateRange struct {
	Begin time.Time
	End   time.Time
	Kind  RangeKind
}

func (r DateRange) SingleDay() bool {
	return r.Begin.Equal(r.End)
}

func (r DateRange) BeginDate() string {
	return r.Begin.Format(dateLayout)
}

func (r DateRange) EndDate() string {
	return r.End.Format(dateLayout)
}

// Label is the human-readable form shown in report headers.
func (r DateRange) Label() string {
	if r.SingleDay() {
		switch r.Kind {
		case RangeToday:
			return r.EndDate() + " · Today"
		case RangeYesterday:
			return r.EndDate() + " · Yesterday"
		default:
			return r.EndDate()
		}
	}
	label := r.BeginDate() + " → " + r.EndDate()
	switch r.Kind {
	case RangeLast7:
		return label + " · Last 7 days"
	case RangeLast14:
		return label + " · Last 14 days"
	default:
		return label
	}
}

// ParseRange resolves a positional range selector relative to now.
// Supported selectors: today, yesterday, last7, last14, a YYYY-MM-DD date,
// or the empty string, which defaults to yesterday.
func ParseRange(arg string, now time.Time) (DateRange, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "":
		y := today.AddDate(0, 0, -1)
		return DateRange{Begin: y, End: y, Kind: RangeYesterday}, nil
	case "today":
		return DateRange{Begin: today, End: today, Kind: RangeToday}, nil
	case "yesterday":
		y := today.AddDate(0, 0, -1)
		return DateRange{Begin: y, End: y, Kind: RangeYesterday}, nil
	case "last7":
		return DateRange{Begin: today.AddDate(0, 0, -6), End: today, Kind: RangeLast7}, nil
	case "last14":
		return DateRange{Begin: today.AddDate(0, 0, -13), End: today, Kind: RangeLast14}, nil
	}

	d, err := time.Parse(dateLayout, strings.TrimSpace(arg))
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid range selector %q: expected today, yesterday, last7, last14 or YYYY-MM-DD", arg)
	}
	return DateRange{Begin: d, End: d, Kind: RangeSingle}, nil
}
