package service

import (
	"strconv"
	"strings"

	"github.com/Ofranc1208/ScrubbingSheet/dto"
	"github.com/Ofranc1208/ScrubbingSheet/utils/datecalc"
)

// fieldMapping pairs a record field with the header aliases accepted in
// delimited pastes. Order matters: earlier fields claim columns first.
type fieldMapping struct {
	field   string
	aliases []string
}

var fieldMappings = []fieldMapping{
	{"crmId", []string{"crm", "id", "client id", "customer id", "crm id"}},
	{"firstName", []string{"first name", "firstname", "fname", "given name", "first"}},
	{"lastName", []string{"last name", "lastname", "lname", "surname", "family name", "last"}},
	{"ssn", []string{"ssn", "social security", "social security number", "ss#"}},
	{"dob", []string{"dob", "date of birth", "birth date", "birthdate", "birthday"}},
	{"age", []string{"age", "current age", "client age"}},
	{"gender", []string{"gender", "sex", "gen"}},
	{"phone1", []string{"phone 1", "phone1", "main phone", "primary phone", "phone"}},
	{"phone2", []string{"phone 2", "phone2", "secondary phone", "alternate phone"}},
	{"phone3", []string{"phone 3", "phone3", "third phone"}},
	{"email", []string{"email", "e-mail", "email address"}},
	{"insuranceCompany", []string{"insurance", "insurance company", "insurer", "carrier"}},
	{"typeOfPayment", []string{"payment type", "type of payment", "payment method", "type"}},
	{"paymentFrequency", []string{"frequency", "payment frequency", "pay frequency"}},
	{"paymentStartDate", []string{"start date", "begin date", "effective date"}},
	{"paymentEndDate", []string{"end date", "expiration date", "maturity date"}},
	{"paymentAmount", []string{"amount", "payment amount", "payment", "premium"}},
	{"annualIncrease", []string{"annual increase", "yearly increase", "increase"}},
	{"streetAddress1", []string{"street", "street address", "address line 1", "street 1", "street address 1"}},
	{"streetAddress2", []string{"street 2", "address line 2", "apt", "suite", "unit"}},
	{"city", []string{"city", "town"}},
	{"state", []string{"state", "province"}},
	{"zipCode", []string{"zip", "zip code", "postal code", "postal", "zipcode"}},
}

// ExtractDelimited parses a tab- or comma-delimited paste (header row plus
// one data row) into a record using header-alias matching. It is the
// fallback for dumps that are not legacy-screen text, and applies the same
// identity gate as Extract.
func (s *ScrubService) ExtractDelimited(rawText string) (*dto.ExtractedRecord, error) {
	lines := strings.Split(strings.TrimSpace(rawText), "\n")
	if len(lines) < 2 {
		return nil, dto.ErrNoExtraction
	}

	headers := splitDelimited(lines[0])
	row := splitDelimited(lines[1])

	record := &dto.ExtractedRecord{}
	fields := recordFields(record)

	for _, mapping := range fieldMappings {
		target, ok := fields[mapping.field]
		if !ok {
			continue
		}
		column := findColumn(headers, mapping.aliases)
		if column >= 0 && column < len(row) && row[column] != "" {
			*target = row[column]
		}
	}

	if record.CrmID == "" && record.FirstName == "" && record.LastName == "" {
		return nil, dto.ErrNoExtraction
	}

	if record.Gender == "" {
		record.Gender = "Unknown"
	}
	if record.SSN == "" {
		record.SSN = "Unknown"
	}
	if record.DOB == "" {
		record.DOB = "Unknown"
	}
	if record.Age == "" {
		record.Age = strconv.Itoa(datecalc.Age(record.DOB))
	}

	return record, nil
}

func splitDelimited(line string) []string {
	columns := strings.Split(line, "\t")
	if len(columns) == 1 {
		columns = strings.Split(line, ",")
	}
	for i := range columns {
		columns[i] = strings.TrimSpace(columns[i])
	}
	return columns
}

// findColumn returns the index of the first header containing any of the
// aliases, case-insensitively, or -1.
func findColumn(headers []string, aliases []string) int {
	for i, header := range headers {
		lower := strings.ToLower(header)
		for _, alias := range aliases {
			if strings.Contains(lower, alias) {
				return i
			}
		}
	}
	return -1
}

func recordFields(record *dto.ExtractedRecord) map[string]*string {
	return map[string]*string{
		"crmId":            &record.CrmID,
		"firstName":        &record.FirstName,
		"lastName":         &record.LastName,
		"ssn":              &record.SSN,
		"dob":              &record.DOB,
		"age":              &record.Age,
		"gender":           &record.Gender,
		"phone1":           &record.Phone1,
		"phone2":           &record.Phone2,
		"phone3":           &record.Phone3,
		"email":            &record.Email,
		"insuranceCompany": &record.InsuranceCompany,
		"typeOfPayment":    &record.TypeOfPayment,
		"paymentFrequency": &record.PaymentFrequency,
		"paymentStartDate": &record.PaymentStartDate,
		"paymentEndDate":   &record.PaymentEndDate,
		"paymentAmount":    &record.PaymentAmount,
		"annualIncrease":   &record.AnnualIncrease,
		"streetAddress1":   &record.StreetAddress1,
		"streetAddress2":   &record.StreetAddress2,
		"city":             &record.City,
		"state":            &record.State,
		"zipCode":          &record.ZipCode,
	}
}
