package utils

import (
	"regexp"
	"strings"
)

// ClientInfo holds the identity fields scrubbed from a paste.
type ClientInfo struct {
	CrmID     string
	FirstName string
	LastName  string
	Gender    string
	SSN       string
	DOB       string
}

var (
	crmIDParenRegex = regexp.MustCompile(`\(ID=(\d+)\)`)
	crmIDLabelRegex = regexp.MustCompile(`ID[:\s=]+(\d+)`)
	alphaWordRegex  = regexp.MustCompile(`^[A-Za-z]+$`)
	nameLineRegex   = regexp.MustCompile(`Name:\s*([A-Za-z]+)\s+([A-Za-z]+)`)
	genderRegex     = regexp.MustCompile(`(?i)Gen(?:der)?:\s*\n?\s*([A-Za-z]+)`)
	ssnRegex        = regexp.MustCompile(`SSN:?\s*\n?\s*(\d{3}[-\s]?\d{2}[-\s]?\d{4})`)
	dobRegex        = regexp.MustCompile(`DOB:?\s*\n?\s*(\d{1,2}/\d{1,2}/\d{4})`)
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
)

// ParseClientInfo extracts CRM ID, name, gender, SSN and DOB from raw pasted
// text. Gender, SSN and DOB always get a value ("Unknown" when the label is
// missing); the other fields are left empty when unmatched.
func ParseClientInfo(raw string) ClientInfo {
	firstName, lastName := extractName(raw)
	return ClientInfo{
		CrmID:     extractCrmID(raw),
		FirstName: firstName,
		LastName:  lastName,
		Gender:    extractGender(raw),
		SSN:       extractSSN(raw),
		DOB:       extractDOB(raw),
	}
}

func extractCrmID(text string) string {
	if m := crmIDParenRegex.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	if m := crmIDLabelRegex.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	return ""
}

// extractName reads the text following the "Name:" label and takes the next
// two whitespace-separated tokens that are purely alphabetic. If that yields
// a first name but no last name, retry with a same-line two-word pattern.
func extractName(text string) (firstName, lastName string) {
	if idx := strings.Index(text, "Name:"); idx != -1 {
		afterName := text[idx+len("Name:"):]

		var words []string
		for _, word := range strings.Fields(afterName) {
			if alphaWordRegex.MatchString(word) {
				words = append(words, word)
				if len(words) == 2 {
					break
				}
			}
		}

		if len(words) >= 2 {
			firstName, lastName = words[0], words[1]
		} else if len(words) == 1 {
			firstName = words[0]
		}
	}

	if firstName != "" && lastName == "" {
		if m := nameLineRegex.FindStringSubmatch(text); len(m) > 2 {
			firstName, lastName = m[1], m[2]
		}
	}

	return firstName, lastName
}

// extractGender classifies the word after a "Gen:"/"Gender:" label by its
// first letter; anything that is not m/f, or a missing label, is "Unknown".
func extractGender(text string) string {
	m := genderRegex.FindStringSubmatch(text)
	if len(m) < 2 {
		return "Unknown"
	}

	switch gender := strings.ToLower(m[1]); {
	case strings.HasPrefix(gender, "m"):
		return "Male"
	case strings.HasPrefix(gender, "f"):
		return "Female"
	default:
		return "Unknown"
	}
}

// extractSSN matches dashed, spaced or bare 9-digit SSNs after an "SSN:"
// label and normalizes to NNN-NN-NNNN.
func extractSSN(text string) string {
	m := ssnRegex.FindStringSubmatch(text)
	if len(m) < 2 {
		return "Unknown"
	}

	digits := nonDigitRegex.ReplaceAllString(m[1], "")
	if len(digits) != 9 {
		return "Unknown"
	}
	return digits[0:3] + "-" + digits[3:5] + "-" + digits[5:9]
}

func extractDOB(text string) string {
	if m := dobRegex.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}
	return "Unknown"
}
