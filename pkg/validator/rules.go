package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// Required validates that a string is non-empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// ValidEmail validates that a string is a parseable bare email address with
// exactly one non-empty local part and domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			// Reject display-name forms like "Pat <pat@example.com>".
			if addr.Address != strings.TrimSpace(value) {
				return false
			}
			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return false
			}
			// Require a dot in the domain for typical web use.
			return strings.Contains(parts[1], ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidURL validates an absolute http(s) URL. Empty values pass; combine
// with Required when the field is mandatory.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Error: ValidationError{Field: field, Message: "must be a valid http(s) URL"},
	}
}

// ValidHexColor validates a #RGB or #RRGGBB color. Empty values pass.
func ValidHexColor(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			return hexColorRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "must be a hex color like #2563EB"},
	}
}

// OneOf validates that a value is among the allowed choices. Empty values
// pass; combine with Required when the field is mandatory.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of: " + strings.Join(allowed, ", "),
		},
	}
}
