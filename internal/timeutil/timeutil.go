package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactLayout is the 8-digit date form some feeds publish (YYYYMMDD).
const CompactLayout = "20060102"

// EasternName is the civil calendar schedule dates are resolved in.
const EasternName = "America/New_York"

// Eastern returns the America/New_York location, or UTC when tzdata is unavailable.
func Eastern() *time.Location {
	loc, err := time.LoadLocation(EasternName)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// EasternDate formats an instant as its Eastern calendar date.
func EasternDate(t time.Time) string {
	return t.In(Eastern()).Format(DateLayout)
}

var flexibleLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseFlexible parses the datetime forms seen across providers: ISO-8601
// with or without seconds and offset, plus the compact YYYYMMDD form read as
// UTC midnight. Reports false for anything else.
func ParseFlexible(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range flexibleLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	if len(value) == 8 && allDigits(value) {
		if ts, err := time.Parse(CompactLayout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
