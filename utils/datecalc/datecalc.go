package datecalc

import (
	"math"
	"strings"
	"time"
)

// defaultAge is used for term calculations whenever the date of birth is
// missing or unreadable.
const defaultAge = 50

// maxTermYears caps the payment term; the term also may not run past age 75.
const maxTermYears = 30

var dobFormats = []string{"1/2/2006", "1-2-2006", "2006-01-02"}

// ParseDOB parses a date of birth like "2/16/1968".
func ParseDOB(dob string) (time.Time, bool) {
	dob = strings.TrimSpace(dob)
	for _, format := range dobFormats {
		if t, err := time.Parse(format, dob); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the whole-year age for a DOB string, defaulting to 50 when the
// DOB is empty, "Unknown" or unparseable.
func Age(dob string) int {
	return AgeAt(dob, time.Now())
}

// AgeAt is Age evaluated against an explicit current date.
func AgeAt(dob string, now time.Time) int {
	trimmed := strings.TrimSpace(dob)
	if trimmed == "" || strings.EqualFold(trimmed, "unknown") {
		return defaultAge
	}

	born, ok := ParseDOB(trimmed)
	if !ok {
		return defaultAge
	}

	age := now.Year() - born.Year()
	// Not yet had the birthday this year
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age
}

// MaxTerm returns the maximum term length in years for a given age: at most
// 30 years, never past age 75.
func MaxTerm(age int) int {
	if age <= 0 || age >= 75 {
		return 0
	}
	yearsUntil75 := 75 - age
	if yearsUntil75 < maxTermYears {
		return yearsUntil75
	}
	return maxTermYears
}

// PaymentStartDate returns today plus six calendar months as MM/DD/YYYY.
func PaymentStartDate() string {
	return PaymentStartDateAt(time.Now())
}

// PaymentStartDateAt is PaymentStartDate evaluated against an explicit date.
func PaymentStartDateAt(now time.Time) string {
	return now.AddDate(0, 6, 0).Format("01/02/2006")
}

// PaymentEndDateFromToday returns today plus MaxTerm(age) years as
// MM/DD/YYYY, or "" when no term is available. This is the authoritative end
// date; any end date inferred from a payment ledger is discarded in favor of
// this one.
func PaymentEndDateFromToday(age int) string {
	return PaymentEndDateAt(age, time.Now())
}

// PaymentEndDateAt is PaymentEndDateFromToday evaluated against an explicit
// current date.
func PaymentEndDateAt(age int, now time.Time) string {
	term := MaxTerm(age)
	if term == 0 {
		return ""
	}
	return now.AddDate(term, 0, 0).Format("01/02/2006")
}

// AnnualIncreasePercent returns the percentage increase from oldAmount to
// newAmount rounded to two decimals, or 0 when oldAmount is not positive.
func AnnualIncreasePercent(oldAmount, newAmount float64) float64 {
	if oldAmount <= 0 {
		return 0
	}
	pct := ((newAmount - oldAmount) / oldAmount) * 100
	return math.Round(pct*100) / 100
}
