package validators

import (
	"net"
	"regexp"
	"strings"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug accepts lowercase letters, digits and hyphens only; the slug is
// part of the public booking URL.
func IsValidSlug(slug string) bool {
	return slug != "" && slugRe.MatchString(slug)
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTimeOfDay accepts 24h "HH:MM" wall-clock strings.
func IsValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// IsEmailDomainValid does a cheap DNS sanity check on the domain part.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
