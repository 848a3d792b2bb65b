package streak

import (
	"math"
	"time"
)

// DateLayout is the canonical date-only format used throughout the engine.
const DateLayout = "2006-01-02"

const millisPerDay = 24 * 60 * 60 * 1000

// timestampLayouts are tried in order when an input is not already date-only.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToLocalDateString renders t as YYYY-MM-DD using its own wall-clock
// components. Callers pass device-local times; converting through UTC here
// would shift users near midnight onto the wrong calendar day.
func ToLocalDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeToDateOnly returns value unchanged when it is already a valid
// date-only string, otherwise parses it as a timestamp and re-renders the
// local calendar day. Idempotent: normalizing an already-normalized value is
// a no-op. Unrecognizable input yields a DateParseError.
func NormalizeToDateOnly(value string) (string, error) {
	if len(value) == len(DateLayout) {
		if _, err := time.ParseInLocation(DateLayout, value, time.Local); err == nil {
			return value, nil
		}
		return "", &DateParseError{Value: value}
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ToLocalDateString(t.In(time.Local)), nil
		}
	}

	return "", &DateParseError{Value: value}
}

// DaysBetween returns the whole-day delta a minus b. Both inputs are
// normalized, anchored to local midnight, and the millisecond difference is
// rounded so daylight-saving transitions (23h/25h days) do not drift the
// result off by one.
func DaysBetween(a, b string) (int, error) {
	aMidnight, err := localMidnight(a)
	if err != nil {
		return 0, err
	}
	bMidnight, err := localMidnight(b)
	if err != nil {
		return 0, err
	}

	deltaMillis := aMidnight.UnixMilli() - bMidnight.UnixMilli()
	return int(math.Round(float64(deltaMillis) / millisPerDay)), nil
}

func localMidnight(value string) (time.Time, error) {
	normalized, err := NormalizeToDateOnly(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(DateLayout, normalized, time.Local)
}
