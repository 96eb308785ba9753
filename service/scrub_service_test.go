package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/Ofranc1208/ScrubbingSheet/dto"
	"github.com/Ofranc1208/ScrubbingSheet/utils/datecalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

const accessDump = `Structured Settlement CRM - Client Record (ID=781618)
Name:	John	Noble
Gen:	Male
SSN:	454 65 1908
DOB:	2/16/1968

Phone #
832-444-1000
Active
Modified: 9/19/2024
Phone #
281-732-1631
Active
Modified: 12/2/2024
Phone #
713-555-0000
Inactive
Modified: 12/25/2024
Email:	jgnoble@outlook.com

Mailing Address	City, State, Zip
2247 East Vanburen St.
Apt. 416
Phoenix

Arizona
select

85006

View Annuity Prudential Insurance Company of America
11/1/2025	$11,610.60	LCP	$6,501.94	$0.00	$5,108.66
12/1/2025	$11,610.60	LCP	$11,610.60	$0.00	$0.00
11/1/2026	$11,958.92	LCP	$6,501.94	$0.00	$5,261.92`

func TestExtractFullDump(t *testing.T) {
	s := NewScrubService()

	record, err := s.extractAt(accessDump, testNow)
	require.NoError(t, err)

	assert.Equal(t, "781618", record.CrmID)
	assert.Equal(t, "John", record.FirstName)
	assert.Equal(t, "Noble", record.LastName)
	assert.Equal(t, "Male", record.Gender)
	assert.Equal(t, "454-65-1908", record.SSN)
	assert.Equal(t, "2/16/1968", record.DOB)
	assert.Equal(t, "58", record.Age)

	assert.Equal(t, "281-732-1631", record.Phone1)
	assert.Equal(t, "832-444-1000", record.Phone2)
	assert.Empty(t, record.Phone3)
	assert.Equal(t, "jgnoble@outlook.com", record.Email)

	assert.Equal(t, "2247 East Vanburen St.", record.StreetAddress1)
	assert.Equal(t, "Apt. 416", record.StreetAddress2)
	assert.Equal(t, "Phoenix", record.City)
	assert.Equal(t, "Arizona", record.State)
	assert.Equal(t, "85006", record.ZipCode)

	assert.Equal(t, "Prudential Insurance Company of America", record.InsuranceCompany)

	assert.Equal(t, "LCP", record.TypeOfPayment)
	assert.Equal(t, "5108.66", record.PaymentAmount)
	assert.Equal(t, "Monthly", record.PaymentFrequency)
	assert.Equal(t, "3.00", record.AnnualIncrease)
	assert.Equal(t, "3/1/2027", record.PaymentStartDate)

	// End date is derived from today and age (58 -> 17-year term), not
	// from the last ledger row
	assert.Equal(t, "09/01/2043", record.PaymentEndDate)
}

func TestExtractNoIdentityFails(t *testing.T) {
	s := NewScrubService()

	_, err := s.extractAt("SSN: 454-65-1908\nDOB: 2/16/1968\nno id or name", testNow)
	assert.ErrorIs(t, err, dto.ErrNoExtraction)

	_, err = s.extractAt("   \n\t  ", testNow)
	assert.ErrorIs(t, err, dto.ErrNoExtraction)
}

func TestExtractIsIdempotent(t *testing.T) {
	s := NewScrubService()

	first, err := s.extractAt(accessDump, testNow)
	require.NoError(t, err)
	second, err := s.extractAt(accessDump, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractDefaultsWithoutDOB(t *testing.T) {
	s := NewScrubService()

	record, err := s.extractAt("(ID=1234)\nName: Jane Smith", testNow)
	require.NoError(t, err)

	assert.Equal(t, "Unknown", record.Gender)
	assert.Equal(t, "Unknown", record.SSN)
	assert.Equal(t, "Unknown", record.DOB)
	assert.Equal(t, "50", record.Age)
	// Age 50 -> 25-year term from today
	assert.Equal(t, "09/01/2051", record.PaymentEndDate)
}

func TestValidateRecord(t *testing.T) {
	s := NewScrubService()

	assert.Equal(t, []string{"No data could be extracted"}, s.ValidateRecord(nil))

	record := &dto.ExtractedRecord{CrmID: "781618", SSN: "Unknown", DOB: "Unknown"}
	missing := s.ValidateRecord(record)
	assert.Equal(t, []string{"First Name", "Last Name"}, missing)

	full := &dto.ExtractedRecord{
		CrmID: "781618", FirstName: "John", LastName: "Noble",
		SSN: "454-65-1908", DOB: "2/16/1968",
	}
	assert.Empty(t, s.ValidateRecord(full))
}

func TestFormatWarnings(t *testing.T) {
	s := NewScrubService()

	record := &dto.ExtractedRecord{
		SSN:    "454-65-19",
		Phone1: "not a phone",
		Email:  "bad-email",
	}

	warnings := s.FormatWarnings(record)
	assert.Equal(t, []string{
		"SSN has an unexpected format",
		"Phone 1 has an unexpected format",
		"Email has an unexpected format",
	}, warnings)

	clean := &dto.ExtractedRecord{SSN: "Unknown", Phone1: "281-732-1631", Email: "jgnoble@outlook.com"}
	assert.Empty(t, s.FormatWarnings(clean))
}

func TestPreviewPairsStableOrder(t *testing.T) {
	s := NewScrubService()

	record, err := s.extractAt(accessDump, testNow)
	require.NoError(t, err)

	pairs := s.PreviewPairs(record)

	labels := make([]string, len(pairs))
	for i, pair := range pairs {
		labels[i] = pair.Label
	}
	assert.Equal(t, []string{
		"CRM ID", "Name", "SSN", "DOB", "Gender",
		"Phone 1 (Main)", "Phone 2", "Phone 3", "Email",
		"Address", "City", "State", "ZIP", "Insurance",
		"Payment Type", "Payment Amount", "Frequency",
		"Start Date", "End Date", "Annual Increase %",
	}, labels)

	assert.Equal(t, "John Noble", pairs[1].Value)
}

func TestPreviewPairsDefaults(t *testing.T) {
	s := NewScrubService()

	pairs := s.PreviewPairs(&dto.ExtractedRecord{})

	byLabel := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		byLabel[pair.Label] = pair.Value
	}
	assert.Equal(t, "Unknown", byLabel["SSN"])
	assert.Equal(t, "Unknown", byLabel["DOB"])
	assert.Equal(t, "0", byLabel["Annual Increase %"])

	assert.Nil(t, s.PreviewPairs(nil))
}

func TestExtractDelimited(t *testing.T) {
	s := NewScrubService()

	record, err := s.ExtractDelimited("CRM ID,First Name,Last Name,DOB\n781618,John,Noble,2/16/1968")
	require.NoError(t, err)

	assert.Equal(t, "781618", record.CrmID)
	assert.Equal(t, "John", record.FirstName)
	assert.Equal(t, "Noble", record.LastName)
	assert.Equal(t, "2/16/1968", record.DOB)
	assert.Equal(t, "Unknown", record.Gender)
	assert.Equal(t, "Unknown", record.SSN)
	assert.Equal(t, strconv.Itoa(datecalc.Age("2/16/1968")), record.Age)
}

func TestExtractDelimitedTabSeparated(t *testing.T) {
	s := NewScrubService()

	record, err := s.ExtractDelimited("crm id\temail\tzip\n781618\tjgnoble@outlook.com\t85006")
	require.NoError(t, err)

	assert.Equal(t, "781618", record.CrmID)
	assert.Equal(t, "jgnoble@outlook.com", record.Email)
	assert.Equal(t, "85006", record.ZipCode)
}

func TestExtractDelimitedNoIdentityFails(t *testing.T) {
	s := NewScrubService()

	_, err := s.ExtractDelimited("email,zip\njgnoble@outlook.com,85006")
	assert.ErrorIs(t, err, dto.ErrNoExtraction)

	_, err = s.ExtractDelimited("just one line")
	assert.ErrorIs(t, err, dto.ErrNoExtraction)
}
