package utils

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Ofranc1208/ScrubbingSheet/utils/datecalc"
)

// Payment holds the pricing fields derived from the embedded payment ledger.
// PaymentEndDate is provisional: the orchestrator always recomputes the end
// date from today and age.
type Payment struct {
	TypeOfPayment    string
	PaymentAmount    string
	PaymentFrequency string
	AnnualIncrease   string
	PaymentStartDate string
	PaymentEndDate   string
}

// ledgerRow is one parsed line of the payment table; internal selection
// state only.
type ledgerRow struct {
	date    time.Time
	dateStr string
	sold    float64
	lcp     float64
}

var (
	// Row shape: date, total amount, type, sold, guaranteed, LCP (available)
	ledgerRowRegex = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+\$?[\d,]+\.?\d*\s+(LCP|GP|Guaranteed|COLA)\s+\$?([\d,]+\.?\d*)\s+\$?([\d,]+\.?\d*)\s+\$?([\d,]+\.?\d*)`)

	// Relaxed single-row fallback when no row passes the strict rule
	ledgerFallbackRegex = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}\s+\$?[\d,]+\.?\d*\s+LCP\s+\$?[\d,]+\.?\d*\s+\$?[\d,]+\.?\d*\s+\$?([\d,]+\.?\d*)`)

	// Two date+amount lines on consecutive lines imply a monthly schedule
	adjacentRowsRegex = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}\s+\$[\d,]+\.?\d*.*\n.*\d{1,2}/\d{1,2}/\d{4}\s+\$[\d,]+\.?\d*`)
)

// ParsePayment derives payment type, amount, frequency, start date and annual
// increase from the ledger rows embedded in the paste. Only LCP rows with an
// available amount > 0 are priced; GP, Guaranteed and COLA rows are ignored.
func ParsePayment(raw string) Payment {
	return ParsePaymentAt(raw, time.Now())
}

// ParsePaymentAt is ParsePayment evaluated against an explicit current date.
func ParsePaymentAt(raw string, now time.Time) Payment {
	var result Payment

	rows := availableLCPRows(raw)

	if len(rows) > 0 {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].date.Before(rows[j].date)
		})

		// Start date: the later of today + 6 months and the first
		// available row, formatted M/D/YYYY without zero padding
		start := now.AddDate(0, 6, 0)
		if rows[0].date.After(start) {
			start = rows[0].date
		}
		result.PaymentStartDate = fmt.Sprintf("%d/%d/%d", start.Month(), start.Day(), start.Year())

		result.PaymentEndDate = rows[len(rows)-1].dateStr
		result.TypeOfPayment = "LCP"
		result.PaymentAmount = strconv.FormatFloat(rows[0].lcp, 'f', 2, 64)
	}

	// Relaxed fallback: a single LCP row anywhere with a positive final
	// amount sets amount and type only
	if result.PaymentAmount == "" {
		if m := ledgerFallbackRegex.FindStringSubmatch(raw); len(m) > 1 {
			if amount, ok := parseAmount(m[1]); ok && amount > 0 {
				result.PaymentAmount = strconv.FormatFloat(amount, 'f', -1, 64)
				result.TypeOfPayment = "LCP"
			}
		}
	}

	if adjacentRowsRegex.MatchString(raw) {
		result.PaymentFrequency = "Monthly"
	}

	// Annual increase: first row whose amount moves by more than a cent
	// against the first available amount
	if len(rows) >= 2 {
		first := rows[0].lcp
		second := first
		for _, row := range rows[1:] {
			if math.Abs(row.lcp-first) > 0.01 {
				second = row.lcp
				break
			}
		}
		if second != first && first > 0 {
			pct := datecalc.AnnualIncreasePercent(first, second)
			result.AnnualIncrease = strconv.FormatFloat(pct, 'f', 2, 64)
		}
	}

	return result
}

func availableLCPRows(raw string) []ledgerRow {
	var rows []ledgerRow

	for _, m := range ledgerRowRegex.FindAllStringSubmatch(raw, -1) {
		if m[2] != "LCP" {
			continue
		}

		lcp, ok := parseAmount(m[5])
		if !ok || lcp <= 0 {
			continue
		}

		date, err := time.Parse("1/2/2006", m[1])
		if err != nil {
			continue
		}

		sold, _ := parseAmount(m[3])
		rows = append(rows, ledgerRow{date: date, dateStr: m[1], sold: sold, lcp: lcp})
	}

	return rows
}
