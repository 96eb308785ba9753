package dto

// ExtractedRecord is the flat field-name-to-value contract handed to the
// presentation layer. Every field is a string; absent fields are "" except
// where a documented default applies (gender/ssn/dob default to "Unknown",
// age is always computed).
type ExtractedRecord struct {
	CrmID     string `json:"crmId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	SSN       string `json:"ssn"`
	DOB       string `json:"dob"`
	Age       string `json:"age"`

	Phone1 string `json:"phone1"`
	Phone2 string `json:"phone2"`
	Phone3 string `json:"phone3"`
	Email  string `json:"email"`

	StreetAddress1 string `json:"streetAddress1"`
	StreetAddress2 string `json:"streetAddress2"`
	City           string `json:"city"`
	State          string `json:"state"`
	ZipCode        string `json:"zipCode"`

	InsuranceCompany string `json:"insuranceCompany"`

	TypeOfPayment    string `json:"typeOfPayment"`
	PaymentAmount    string `json:"paymentAmount"`
	PaymentFrequency string `json:"paymentFrequency"`
	AnnualIncrease   string `json:"annualIncrease"`
	PaymentStartDate string `json:"paymentStartDate"`
	PaymentEndDate   string `json:"paymentEndDate"`
}

// PreviewPair is one (label, value) row of the display preview.
type PreviewPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
