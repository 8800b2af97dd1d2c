package timezone

import "time"

// All persisted timestamps are absolute instants; wall-clock dates and
// times-of-day only exist at the HTTP boundary and are resolved through the
// salon's IANA zone. This package is that conversion boundary.

const DefaultTimezone = "Europe/Bratislava"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
