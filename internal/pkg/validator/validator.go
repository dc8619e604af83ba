package validator

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/hrms-backend-go/internal/pkg/apperror"
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

// KindOf classifies every ValidationErrors value as a validation failure.
func (v ValidationErrors) KindOf() apperror.Kind {
	return apperror.KindValidation
}

// ToMap keeps the first message reported for each field.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, ok := result[err.Field]; !ok {
			result[err.Field] = err.Message
		}
	}
	return result
}

func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns nil when nothing was collected, so callers can write
// `return errs.Err()` without the typed-nil trap.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RequiredString trims value and records an error when it is blank or longer
// than maxLen characters. maxLen <= 0 disables the length check.
func RequiredString(errs *ValidationErrors, field, value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.Add(field, field+" is required")
		return trimmed
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		errs.Add(field, field+" must not exceed "+strconv.Itoa(maxLen)+" characters")
	}
	return trimmed
}

// IsValidEmail only requires an '@' that is not the final character. It is a
// deliberately shallow syntactic check, not RFC 5322 validation.
func IsValidEmail(email string) bool {
	i := strings.IndexByte(email, '@')
	return i >= 0 && !strings.HasSuffix(email, "@")
}

// ValidateID rejects identifiers that are zero or negative.
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return ValidationErrors{{Field: field, Message: field + " must be greater than zero"}}
	}
	return nil
}

// NonNegative records an error when value is below zero.
func NonNegative(errs *ValidationErrors, field string, value int) {
	if value < 0 {
		errs.Add(field, field+" must not be negative")
	}
}

const DateLayout = "2006-01-02"

// dateTimeLayouts are also accepted for dates; the time of day is dropped.
var dateTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05"}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	if date, err := time.Parse(DateLayout, dateStr); err == nil {
		return date, true
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// RequiredDate parses a YYYY-MM-DD value or an ISO date-time. Blank input and the zero date are
// both reported as "must be specified".
func RequiredDate(errs *ValidationErrors, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.Add(field, field+" must be specified")
		return time.Time{}
	}
	date, ok := IsValidDate(value)
	if !ok {
		errs.Add(field, field+" must be a valid date (YYYY-MM-DD)")
		return time.Time{}
	}
	if date.IsZero() {
		errs.Add(field, field+" must be specified")
	}
	return date
}

// ParseInt parses an optional integer query value. ok is false when raw is
// blank; a non-blank, non-numeric value is recorded as an error.
func ParseInt(errs *ValidationErrors, field, raw string) (value int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, field+" must be an integer")
		return 0, false
	}
	return n, true
}

// ParseID parses a path identifier and applies ValidateID.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ValidationErrors{{Field: field, Message: field + " must be an integer"}}
	}
	if err := ValidateID(field, id); err != nil {
		return 0, err
	}
	return id, nil
}
