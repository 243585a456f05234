package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/draft"
)

func TestNormalizeRecipientResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         map[string]any
		wantEmail   string
		wantName    string
		wantCompany string
	}{
		{
			name: "structured recipient",
			raw: map[string]any{
				"recipient": map[string]any{"email": "pat@example.com", "name": "Pat", "company": "Acme"},
			},
			wantEmail:   "pat@example.com",
			wantName:    "Pat",
			wantCompany: "Acme",
		},
		{
			name:      "recipient as bare email string",
			raw:       map[string]any{"recipient": "pat@example.com"},
			wantEmail: "pat@example.com",
			wantName:  "pat@example.com",
		},
		{
			name:      "email alias beats generic to",
			raw:       map[string]any{"to": "other@example.com", "email": "pat@example.com"},
			wantEmail: "pat@example.com",
			wantName:  "pat@example.com",
		},
		{
			name:      "to_email alias",
			raw:       map[string]any{"to_email": "pat@example.com"},
			wantEmail: "pat@example.com",
			wantName:  "pat@example.com",
		},
		{
			name:      "at-sign scan over arbitrary keys",
			raw:       map[string]any{"contact_info": "pat@example.com", "note": "no address here"},
			wantEmail: "pat@example.com",
			wantName:  "pat@example.com",
		},
		{
			name:      "at-sign scan is deterministic under multiple candidates",
			raw:       map[string]any{"zzz": "z@example.com", "aaa": "a@example.com"},
			wantEmail: "a@example.com",
			wantName:  "a@example.com",
		},
		{
			name:     "top-level name fills structured recipient",
			raw:      map[string]any{"recipient": map[string]any{"email": "pat@example.com"}, "name": "Pat"},
			wantName: "Pat",

			wantEmail: "pat@example.com",
		},
		{
			name: "no email anywhere leaves recipient empty",
			raw:  map[string]any{"note": "hello"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := draft.Normalize(tt.raw)
			assert.Equal(t, tt.wantEmail, req.Recipient.Email)
			assert.Equal(t, tt.wantName, req.Recipient.Name)
			assert.Equal(t, tt.wantCompany, req.Recipient.Company)
		})
	}
}

func TestNormalizePurposeResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{name: "missing defaults to welcome", raw: map[string]any{}, want: "welcome"},
		{name: "newsletter keyword", raw: map[string]any{"purpose": "monthly updates"}, want: "newsletter"},
		{name: "digest keyword", raw: map[string]any{"type": "weekly digest"}, want: "newsletter"},
		{name: "onboarding maps to welcome", raw: map[string]any{"purpose": "onboarding email"}, want: "welcome"},
		{name: "discount maps to promo", raw: map[string]any{"category": "Discount blast"}, want: "promo"},
		{name: "cold maps to outreach", raw: map[string]any{"email_purpose": "cold intro"}, want: "outreach"},
		{name: "policy maps to notice", raw: map[string]any{"purpose": "policy change"}, want: "notice"},
		{name: "downtime maps to maintenance", raw: map[string]any{"purpose": "planned downtime"}, want: "maintenance"},
		{name: "unknown preserved lower-cased", raw: map[string]any{"purpose": "Quarterly-Report"}, want: "quarterly-report"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, draft.Normalize(tt.raw).Purpose)
		})
	}
}

func TestNormalizeSeedsDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty context gets purpose defaults", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com"},
			"purpose":   "welcome",
		})

		bullets := req.Bullets()
		require.Len(t, bullets, 4)
		assert.Equal(t, "Get started quickly with our docs and templates", bullets[0])
		assert.Equal(t, "Start your trial", req.ContextString("cta_text"))
		assert.Equal(t, draft.FallbackCTAURL, req.ContextString("cta_url"))
		assert.Equal(t, "default", req.BrandID)
	})

	t.Run("existing values are kept", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com"},
			"context": map[string]any{
				"bullets":  []any{"Custom bullet"},
				"cta_text": "Go now",
				"cta_url":  "https://example.com/go",
			},
		})

		assert.Equal(t, []string{"Custom bullet"}, req.Bullets())
		assert.Equal(t, "Go now", req.ContextString("cta_text"))
		assert.Equal(t, "https://example.com/go", req.ContextString("cta_url"))
	})

	t.Run("unknown purpose seeds welcome bullets and generic cta", func(t *testing.T) {
		t.Parallel()
		req := draft.Normalize(map[string]any{
			"recipient": map[string]any{"email": "pat@example.com"},
			"purpose":   "quarterly-report",
		})

		assert.Equal(t, draft.DefaultBullets("welcome")[:4], req.Bullets())
		assert.Equal(t, "Get started", req.ContextString("cta_text"))
	})
}

func TestNormalizeNeverMutatesCaller(t *testing.T) {
	t.Parallel()

	bullets := []string{"Original"}
	ctx := map[string]any{"bullets": bullets}
	raw := map[string]any{
		"recipient": map[string]any{"email": "pat@example.com"},
		"context":   ctx,
	}

	req := draft.Normalize(raw)
	req.Context["bullets"] = []string{"Changed"}
	req.Context["cta_text"] = "Changed"

	assert.Equal(t, []string{"Original"}, bullets)
	assert.Equal(t, map[string]any{"bullets": bullets}, ctx)
	assert.NotContains(t, raw, "cta_text")
}

func TestNormalizeBulletCap(t *testing.T) {
	t.Parallel()

	req := draft.Normalize(map[string]any{
		"recipient": map[string]any{"email": "pat@example.com"},
		"context": map[string]any{
			"bullets": []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	})

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, req.Bullets())
}
