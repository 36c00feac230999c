// File: utils/constants.go
package utils

import "strings"

// CrisisKeywords is the static list of phrases that flag a session note for
// escalation to the care team. Loaded once at process start; never mutated.
var CrisisKeywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"self harm",
	"self-harm",
	"hurt myself",
	"overdose",
	"no reason to live",
	"want to die",
}

// ContainsCrisisKeyword reports whether the text mentions any crisis keyword,
// case-insensitively.
func ContainsCrisisKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range CrisisKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// CanonicalTimezones lists the IANA zone names an expert profile may use. All
// schedule times are wall clock in the expert's configured zone.
var CanonicalTimezones = []string{
	"UTC",
	"Africa/Nairobi",
	"Africa/Lagos",
	"Africa/Johannesburg",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Sao_Paulo",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Europe/Amsterdam",
	"Europe/Berlin",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Paris",
	"Pacific/Auckland",
}

var timezoneSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalTimezones))
	for _, tz := range CanonicalTimezones {
		set[tz] = struct{}{}
	}
	return set
}()

// IsValidTimezone reports whether name is one of the canonical zones.
func IsValidTimezone(name string) bool {
	_, ok := timezoneSet[name]
	return ok
}
