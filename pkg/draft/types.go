package draft

import (
	"maps"
	"strings"
)

// MaxBullets caps the number of bullets carried by a request. Longer lists
// are truncated during normalization and composition.
const MaxBullets = 5

// Known purposes form the closed vocabulary the normalizer maps onto.
// Unrecognized purposes are preserved verbatim, lower-cased.
const (
	PurposeWelcome     = "welcome"
	PurposeNewsletter  = "newsletter"
	PurposePromo       = "promo"
	PurposeOutreach    = "outreach"
	PurposeNotice      = "notice"
	PurposeMaintenance = "maintenance"
)

// Reserved context keys with defined semantics. Everything else in the
// context map flows through to the rendering collaborator untouched.
const (
	ctxBullets  = "bullets"
	ctxCTAText  = "cta_text"
	ctxCTAURL   = "cta_url"
	ctxSubject  = "subject"
	ctxTone     = "tone"
	ctxLongForm = "long_form"
)

// Recipient identifies who the email is addressed to.
type Recipient struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
}

// Request is the canonical, fully-defaulted unit of work produced by
// Normalize and consumed by the composition, rendering and delivery layers.
type Request struct {
	Recipient Recipient      `json:"recipient"`
	Purpose   string         `json:"purpose"`
	BrandID   string         `json:"brand_id"`
	Context   map[string]any `json:"context,omitempty"`
}

// Clone returns a deep copy of the request. The context map and its bullets
// slice are copied so mutations of the clone never leak back.
func (r Request) Clone() Request {
	out := r
	if r.Context != nil {
		out.Context = make(map[string]any, len(r.Context))
		maps.Copy(out.Context, r.Context)
		if bullets, ok := bulletsFromContext(r.Context); ok {
			out.Context[ctxBullets] = append([]string(nil), bullets...)
		}
	}
	return out
}

// Bullets returns the trimmed, non-empty bullet list from the request
// context, capped at MaxBullets. Returns nil when no bullets are set.
func (r Request) Bullets() []string {
	bullets, ok := bulletsFromContext(r.Context)
	if !ok {
		return nil
	}
	cleaned := cleanBullets(bullets)
	if len(cleaned) > MaxBullets {
		cleaned = cleaned[:MaxBullets]
	}
	return cleaned
}

// ContextString returns the named context value as a trimmed string.
func (r Request) ContextString(key string) string {
	if r.Context == nil {
		return ""
	}
	if s, ok := r.Context[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// bulletsFromContext tolerates both []string and []any (the shape produced
// by JSON decoding) for the bullets context value.
func bulletsFromContext(ctx map[string]any) ([]string, bool) {
	if ctx == nil {
		return nil, false
	}
	switch v := ctx[ctxBullets].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// cleanBullets trims entries and drops empties, preserving order.
func cleanBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Update is a sparse set of changes to a Request. Nil pointer fields mean
// "no change"; a present field always applies, even when it holds an empty
// value. BulletsReplace wins over BulletsAdd when both are set.
type Update struct {
	BulletsReplace *[]string `json:"bullets_replace,omitempty"`
	BulletsAdd     []string  `json:"bullets_add,omitempty"`
	CTAText        *string   `json:"cta_text,omitempty"`
	CTAURL         *string   `json:"cta_url,omitempty"`
	Subject        *string   `json:"subject,omitempty"`
	Purpose        *string   `json:"purpose,omitempty"`
	Tone           *string   `json:"tone,omitempty"`
	LongForm       *bool     `json:"long_form,omitempty"`
}

// IsZero reports whether the update carries no changes at all.
func (u Update) IsZero() bool {
	return u.BulletsReplace == nil &&
		len(u.BulletsAdd) == 0 &&
		u.CTAText == nil &&
		u.CTAURL == nil &&
		u.Subject == nil &&
		u.Purpose == nil &&
		u.Tone == nil &&
		u.LongForm == nil
}

// String returns a pointer to s, for building sparse updates.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building sparse updates.
func Bool(b bool) *bool { return &b }

// Replace returns a bullets_replace value from the given entries.
// Replace() with no arguments is the explicit "clear bullets" form.
func Replace(bullets ...string) *[]string {
	out := append([]string{}, bullets...)
	return &out
}
