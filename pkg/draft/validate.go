package draft

import (
	"errors"

	"github.com/mailwright/mailwright/pkg/validator"
)

// Validate checks the invariants a normalized request must satisfy before it
// reaches a rendering or delivery collaborator. Errors name the offending
// field so the conversational layer can prompt the user for it.
func (r Request) Validate() error {
	if r.Recipient.Email == "" {
		return ErrMissingRecipient
	}
	if err := validator.Apply(
		validator.ValidEmail("recipient.email", r.Recipient.Email),
	); err != nil {
		return errors.Join(ErrInvalidRecipient, err)
	}
	return nil
}
