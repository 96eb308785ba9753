package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jgnoble@outlook.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("two@at@signs.com"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("281-732-1631"))
	assert.True(t, IsValidPhone("(281) 732-1631"))
	assert.True(t, IsValidPhone("281.732.1631"))
	assert.False(t, IsValidPhone("732-1631"))
	assert.False(t, IsValidPhone("phone me"))
}

func TestIsValidSSN(t *testing.T) {
	assert.True(t, IsValidSSN("454-65-1908"))
	assert.True(t, IsValidSSN("454651908"))
	assert.False(t, IsValidSSN("Unknown"))
	assert.False(t, IsValidSSN("454-65-19"))
}
