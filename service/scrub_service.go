package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/Ofranc1208/ScrubbingSheet/dto"
	"github.com/Ofranc1208/ScrubbingSheet/utils"
	"github.com/Ofranc1208/ScrubbingSheet/utils/datecalc"
)

// ScrubService orchestrates the five field-group parsers over a raw paste
// and assembles the final record. It holds no state and is safe for
// concurrent use.
type ScrubService struct{}

func NewScrubService() *ScrubService {
	return &ScrubService{}
}

// Extract parses a raw legacy-screen paste into an ExtractedRecord. The five
// parsers run independently over the same text and own disjoint field sets;
// age and the payment end date are derived afterward. Returns
// dto.ErrNoExtraction when the input is blank or when none of CRM ID, first
// name and last name could be recovered.
func (s *ScrubService) Extract(rawText string) (*dto.ExtractedRecord, error) {
	return s.extractAt(rawText, time.Now())
}

func (s *ScrubService) extractAt(rawText string, now time.Time) (*dto.ExtractedRecord, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, dto.ErrNoExtraction
	}

	record := &dto.ExtractedRecord{}

	client := utils.ParseClientInfo(rawText)
	record.CrmID = client.CrmID
	record.FirstName = client.FirstName
	record.LastName = client.LastName
	record.Gender = client.Gender
	record.SSN = client.SSN
	record.DOB = client.DOB

	contact := utils.ParseContact(rawText)
	record.Phone1 = contact.Phone1
	record.Phone2 = contact.Phone2
	record.Phone3 = contact.Phone3
	record.Email = contact.Email

	address := utils.ParseAddress(rawText)
	record.StreetAddress1 = address.StreetAddress1
	record.StreetAddress2 = address.StreetAddress2
	record.City = address.City
	record.State = address.State
	record.ZipCode = address.ZipCode

	record.InsuranceCompany = utils.ParseInsurance(rawText)

	payment := utils.ParsePaymentAt(rawText, now)
	record.TypeOfPayment = payment.TypeOfPayment
	record.PaymentAmount = payment.PaymentAmount
	record.PaymentFrequency = payment.PaymentFrequency
	record.AnnualIncrease = payment.AnnualIncrease
	record.PaymentStartDate = payment.PaymentStartDate

	age := datecalc.AgeAt(record.DOB, now)
	record.Age = strconv.Itoa(age)

	// The end date is always today + min(30, 75-age) years, regardless of
	// anything the ledger implied
	record.PaymentEndDate = datecalc.PaymentEndDateAt(age, now)

	if record.CrmID == "" && record.FirstName == "" && record.LastName == "" {
		return nil, dto.ErrNoExtraction
	}

	return record, nil
}

// ValidateRecord lists the human-readable names of required fields that are
// missing. The caller uses it to warn the operator, never to block saving.
func (s *ScrubService) ValidateRecord(record *dto.ExtractedRecord) []string {
	if record == nil {
		return []string{"No data could be extracted"}
	}

	required := []struct {
		value string
		label string
	}{
		{record.CrmID, "CRM ID"},
		{record.FirstName, "First Name"},
		{record.LastName, "Last Name"},
		{record.SSN, "SSN"},
		{record.DOB, "Date of Birth"},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.label)
		}
	}
	return missing
}

// FormatWarnings flags populated identity/contact fields whose shape looks
// wrong (bad SSN, phone or email format).
func (s *ScrubService) FormatWarnings(record *dto.ExtractedRecord) []string {
	if record == nil {
		return nil
	}

	var warnings []string
	if record.SSN != "" && record.SSN != "Unknown" && !utils.IsValidSSN(record.SSN) {
		warnings = append(warnings, "SSN has an unexpected format")
	}
	phones := []struct {
		value string
		label string
	}{
		{record.Phone1, "Phone 1"},
		{record.Phone2, "Phone 2"},
		{record.Phone3, "Phone 3"},
	}
	for _, phone := range phones {
		if phone.value != "" && !utils.IsValidPhone(phone.value) {
			warnings = append(warnings, phone.label+" has an unexpected format")
		}
	}
	if record.Email != "" && !utils.IsValidEmail(record.Email) {
		warnings = append(warnings, "Email has an unexpected format")
	}
	return warnings
}

// PreviewPairs formats a record as the ordered (label, value) rows the
// preview pane renders. The transform is one-directional and the label order
// is fixed.
func (s *ScrubService) PreviewPairs(record *dto.ExtractedRecord) []dto.PreviewPair {
	if record == nil {
		return nil
	}

	orDefault := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	return []dto.PreviewPair{
		{Label: "CRM ID", Value: record.CrmID},
		{Label: "Name", Value: strings.TrimSpace(record.FirstName + " " + record.LastName)},
		{Label: "SSN", Value: orDefault(record.SSN, "Unknown")},
		{Label: "DOB", Value: orDefault(record.DOB, "Unknown")},
		{Label: "Gender", Value: record.Gender},
		{Label: "Phone 1 (Main)", Value: record.Phone1},
		{Label: "Phone 2", Value: record.Phone2},
		{Label: "Phone 3", Value: record.Phone3},
		{Label: "Email", Value: record.Email},
		{Label: "Address", Value: record.StreetAddress1},
		{Label: "City", Value: record.City},
		{Label: "State", Value: record.State},
		{Label: "ZIP", Value: record.ZipCode},
		{Label: "Insurance", Value: record.InsuranceCompany},
		{Label: "Payment Type", Value: record.TypeOfPayment},
		{Label: "Payment Amount", Value: record.PaymentAmount},
		{Label: "Frequency", Value: record.PaymentFrequency},
		{Label: "Start Date", Value: record.PaymentStartDate},
		{Label: "End Date", Value: record.PaymentEndDate},
		{Label: "Annual Increase %", Value: orDefault(record.AnnualIncrease, "0")},
	}
}
