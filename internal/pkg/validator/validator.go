package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Aadhaar validation (Indian ID)
func IsValidAadhaar(aadhaar string) bool {
	return len(aadhaar) == 12 && IsNumeric(aadhaar)
}

// Months holds the calendar month names used as record keys, January first.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// IsValidMonth reports whether name is one of the twelve month names.
func IsValidMonth(name string) bool {
	return IsInSlice(name, Months)
}

// MonthIndex returns the 1-based calendar index of a month name, 0 if unknown.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// IsValidYear bounds record years to a sane range.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// IsValidDayOfMonth bounds a day cell to the 1..31 grid the sheet uses.
func IsValidDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
