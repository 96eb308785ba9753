package utils

import (
	"regexp"
	"strings"
)

var (
	insuranceCompanyRegex = regexp.MustCompile(`([A-Z][A-Za-z\s&]+Insurance\s+Company(?:\s+of\s+[A-Za-z]+)?)`)
	insuranceNoiseRegex   = regexp.MustCompile(`(?i)^(View\s+Annuity\s+|COM\s+|click\s+button\s+to\s+verify|Get\s+County\s+|Has\s+not\s+been\s+verified)`)
	whitespaceRunRegex    = regexp.MustCompile(`\s+`)
)

// ParseInsurance extracts the insurer name: the first
// "<Capitalized words> Insurance Company [of <Place>]" match, with known
// screen-noise prefixes stripped. Returns "" when nothing clean is found.
func ParseInsurance(raw string) string {
	match := insuranceCompanyRegex.FindString(raw)
	if match == "" {
		return ""
	}

	name := strings.TrimSpace(match)
	name = insuranceNoiseRegex.ReplaceAllString(name, "")
	name = strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(name, " "))

	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return ""
	}
	if !strings.Contains(name, "Insurance Company") {
		return ""
	}
	return name
}
