package utils

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Contact holds the ranked phone numbers and email scrubbed from a paste.
type Contact struct {
	Phone1 string
	Phone2 string
	Phone3 string
	Email  string
}

// phoneCandidate is internal ranking state; it never reaches the output
// record.
type phoneCandidate struct {
	number   string
	modified time.Time
}

var (
	phoneBlockStartRegex = regexp.MustCompile(`^\s*(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`)
	modifiedDateRegex    = regexp.MustCompile(`Modified:\s*(\d{1,2}/\d{1,2}/\d{4})`)
	simplePhoneRegex     = regexp.MustCompile(`Phone:?\s*\n?\s*(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`)
	emailRegex           = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// oldestModified deprioritizes phone blocks that carry no "Modified:" date.
var oldestModified = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseContact extracts up to three phone numbers and an email address.
// Phone blocks are split on the literal "Phone #" marker; a block qualifies
// only when it is marked Active and not Inactive, and qualifying numbers are
// ranked most-recently-modified first.
func ParseContact(raw string) Contact {
	var result Contact

	var candidates []phoneCandidate
	for _, block := range strings.Split(raw, "Phone #") {
		if strings.TrimSpace(block) == "" {
			continue
		}

		m := phoneBlockStartRegex.FindStringSubmatch(block)
		if len(m) < 2 {
			continue
		}

		if !strings.Contains(block, "Active") || strings.Contains(block, "Inactive") {
			continue
		}

		modified := oldestModified
		if dm := modifiedDateRegex.FindStringSubmatch(block); len(dm) > 1 {
			if parsed, err := time.Parse("1/2/2006", dm[1]); err == nil {
				modified = parsed
			}
		}

		candidates = append(candidates, phoneCandidate{number: m[1], modified: modified})
	}

	// Most recent first; stable so equal dates keep paste order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].modified.After(candidates[j].modified)
	})

	if len(candidates) > 0 {
		result.Phone1 = candidates[0].number
	}
	if len(candidates) > 1 {
		result.Phone2 = candidates[1].number
	}
	if len(candidates) > 2 {
		result.Phone3 = candidates[2].number
	}

	// Fallback: no "Phone #" blocks qualified, try a bare "Phone:" label
	if result.Phone1 == "" {
		if m := simplePhoneRegex.FindStringSubmatch(raw); len(m) > 1 {
			result.Phone1 = m[1]
		}
	}

	if email := emailRegex.FindString(raw); email != "" {
		result.Email = email
	}

	return result
}
