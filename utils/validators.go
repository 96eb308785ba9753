package utils

import "regexp"

var (
	emailFormatRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneFormatRegex = regexp.MustCompile(`^\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)
	ssnFormatRegex   = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
)

// IsValidEmail reports whether an email looks well-formed.
func IsValidEmail(email string) bool {
	return emailFormatRegex.MatchString(email)
}

// IsValidPhone reports whether a phone number looks like NNN-NNN-NNNN with
// optional parentheses and separators.
func IsValidPhone(phone string) bool {
	return phoneFormatRegex.MatchString(phone)
}

// IsValidSSN reports whether an SSN looks like NNN-NN-NNNN or bare digits.
func IsValidSSN(ssn string) bool {
	return ssnFormatRegex.MatchString(ssn)
}
