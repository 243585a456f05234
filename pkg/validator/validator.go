package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single failed check, named by field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failed rule from one Apply pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the field.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct field names with errors, in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, e := range ve {
		if !seen[e.Field] {
			fields = append(fields, e.Field)
			seen[e.Field] = true
		}
	}
	return fields
}

// Rule is a single validation check.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes the rules and returns ValidationErrors if any check failed.
func Apply(rules ...Rule) error {
	var ve ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			ve = append(ve, rule.Error)
		}
	}
	if len(ve) == 0 {
		return nil
	}
	return ve
}

// Extract returns the ValidationErrors wrapped anywhere in err, or nil.
func Extract(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
