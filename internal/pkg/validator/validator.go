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

// IsValidDate checks a calendar date in YYYY-MM-DD form.
func IsValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// IsValidDateTime checks an ISO-8601 timestamp. RFC3339 variants are
// accepted first, then the bare "2006-01-02T15:04:05" form the mobile
// clients send without a zone offset.
func IsValidDateTime(dateTimeStr string) bool {
	if _, err := time.Parse(time.RFC3339, dateTimeStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339Nano, dateTimeStr); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02T15:04:05", dateTimeStr)
	return err == nil
}

// IsValidTimeOfDay checks a wall-clock time, HH:MM or HH:MM:SS.
func IsValidTimeOfDay(timeStr string) bool {
	if _, err := time.Parse("15:04:05", timeStr); err == nil {
		return true
	}
	_, err := time.Parse("15:04", timeStr)
	return err == nil
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

var employeeCodeRegex = regexp.MustCompile(`^[A-Z]{2,4}-\d{3,6}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}
