package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInsurance(t *testing.T) {
	assert.Equal(t, "Prudential Insurance Company of America",
		ParseInsurance("issued by Prudential Insurance Company of America in 1999"))

	assert.Equal(t, "MetLife Insurance Company",
		ParseInsurance("carrier: MetLife Insurance Company"))
}

func TestParseInsuranceStripsScreenNoise(t *testing.T) {
	assert.Equal(t, "Prudential Insurance Company of America",
		ParseInsurance("View Annuity Prudential Insurance Company of America"))

	assert.Equal(t, "MetLife Insurance Company",
		ParseInsurance("COM MetLife Insurance Company"))
}

func TestParseInsuranceCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "New York Life Insurance Company",
		ParseInsurance("New York  Life\tInsurance   Company"))
}

func TestParseInsuranceTakesFirstMatch(t *testing.T) {
	text := "Allstate Life Insurance Company of New York\nPrudential Insurance Company of America"

	assert.Equal(t, "Allstate Life Insurance Company of New", ParseInsurance(text))
}

func TestParseInsuranceNoMatch(t *testing.T) {
	assert.Empty(t, ParseInsurance("no insurer mentioned here"))
	assert.Empty(t, ParseInsurance("some insurance paperwork without the company phrase"))
}
