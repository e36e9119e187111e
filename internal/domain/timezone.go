package domain

import "time"

// ResolveTimezone resolves an IANA time zone name with an ordered fallback
// chain: requested zone -> site-wide default -> UTC.
//
// The boolean result reports whether a fallback was applied, so callers can
// log the degradation and tests can assert on it separately from the happy
// path.
func ResolveTimezone(name, siteDefault string) (*time.Location, bool) {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc, false
		}
	}

	if siteDefault != "" {
		if loc, err := time.LoadLocation(siteDefault); err == nil {
			return loc, true
		}
	}

	return time.UTC, true
}

// ISOWeekday returns the ISO-8601 weekday for t (Monday=1 .. Sunday=7).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
