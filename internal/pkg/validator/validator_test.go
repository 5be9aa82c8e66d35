package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMonth(t *testing.T) {
	for _, m := range Months {
		assert.True(t, IsValidMonth(m), m)
	}
	assert.False(t, IsValidMonth("Aprile"))
	assert.False(t, IsValidMonth("april"))
	assert.False(t, IsValidMonth(""))
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 1, MonthIndex("January"))
	assert.Equal(t, 4, MonthIndex("April"))
	assert.Equal(t, 12, MonthIndex("December"))
	assert.Equal(t, 0, MonthIndex("Smarch"))
}

func TestIsValidDayOfMonth(t *testing.T) {
	assert.True(t, IsValidDayOfMonth(1))
	assert.True(t, IsValidDayOfMonth(31))
	assert.False(t, IsValidDayOfMonth(0))
	assert.False(t, IsValidDayOfMonth(32))
	assert.False(t, IsValidDayOfMonth(-3))
}

func TestIsValidAadhaar(t *testing.T) {
	assert.True(t, IsValidAadhaar("123456789012"))
	assert.False(t, IsValidAadhaar("12345678901"))
	assert.False(t, IsValidAadhaar("12345678901a"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-04-30")
	assert.True(t, ok)
	_, ok = IsValidDate("30/04/2025")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "is required"},
		{Field: "year", Message: "is out of range"},
	}
	assert.Equal(t, "month: is required; year: is out of range", errs.Error())
	assert.Equal(t, map[string]string{
		"month": "is required",
		"year":  "is out of range",
	}, errs.ToMap())
}
