package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/draft"
	"github.com/mailwright/mailwright/pkg/validator"
)

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com"},
		})
		assert.NoError(t, req.Validate())
	})

	t.Run("missing recipient", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{"note": "no address"})
		assert.ErrorIs(t, req.Validate(), draft.ErrMissingRecipient)
	})

	t.Run("malformed email names the field", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "not@valid"},
		})
		err := req.Validate()
		require.ErrorIs(t, err, draft.ErrInvalidRecipient)
		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.True(t, ve.Has("recipient.email"))
	})
}
