package draft

import "errors"

var (
	// ErrMissingRecipient is returned when no recipient email could be
	// resolved anywhere in the caller's input.
	ErrMissingRecipient = errors.New("draft: recipient email is required")
	// ErrInvalidRecipient is returned when the resolved recipient email is
	// not a valid address.
	ErrInvalidRecipient = errors.New("draft: recipient email is invalid")
)
