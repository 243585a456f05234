package draft_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailwright/mailwright/pkg/draft"
)

func TestComposeSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "personal subject without company",
			raw: map[string]any{
				"recipient": map[string]any{"email": "pat@example.com", "name": "Pat"},
			},
			want: "Welcome: For Pat",
		},
		{
			name: "email stands in for a missing name",
			raw: map[string]any{
				"recipient": map[string]any{"email": "pat@example.com"},
			},
			want: "Welcome: For pat@example.com",
		},
		{
			name: "company subject uses title-cased purpose",
			raw: map[string]any{
				"recipient": map[string]any{"email": "pat@example.com", "company": "Acme"},
				"purpose":   "newsletter",
			},
			want: "Newsletter: Acme",
		},
		{
			name: "subject override always wins",
			raw: map[string]any{
				"recipient": map[string]any{"email": "pat@example.com", "company": "Acme"},
				"context":   map[string]any{"subject": "Custom subject"},
			},
			want: "Custom subject",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := draft.Compose(draft.Normalize(tt.raw), "Mailwright")
			assert.Equal(t, tt.want, d.Subject)
		})
	}
}

func TestComposeBody(t *testing.T) {
	t.Parallel()

	t.Run("bullets become dashed lines", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com", "name": "Pat"},
			"context":   map[string]any{"bullets": []string{"First", "Second"}},
		})
		d := draft.Compose(req, "Mailwright")

		assert.True(t, strings.HasPrefix(d.BodyText, "Hi Pat,"))
		assert.Contains(t, d.BodyText, "- First")
		assert.Contains(t, d.BodyText, "- Second")
		assert.Contains(t, d.BodyText, "Best,\nMailwright")
	})

	t.Run("cleared bullets fall back to a friendly line", func(t *testing.T) {
		t.Parallel()
		base := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com", "name": "Pat"},
		})
		req := draft.Apply(base, draft.Update{BulletsReplace: draft.Replace()})
		d := draft.Compose(req, "")

		assert.Contains(t, d.BodyText, draft.FallbackBodyLine)
		assert.NotContains(t, d.BodyText, "- ")
		assert.Contains(t, d.BodyText, "Best,\nThe Team")
	})
}
