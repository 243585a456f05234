// Package validator provides small composable validation rules for the
// fields this system cares about: email addresses, URLs and hex colors.
//
// Rules carry their own field name and message, and Apply collects every
// failed rule into a ValidationErrors value so callers can report all
// problems at once:
//
//	err := validator.Apply(
//	    validator.Required("name", cfg.Name),
//	    validator.ValidHexColor("primary", cfg.Primary),
//	)
package validator
