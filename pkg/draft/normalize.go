package draft

import (
	"slices"
	"strings"
)

// Alias lists are scanned in priority order, so an explicit "email" field
// always beats a generic "to" field.
var (
	emailAliases = []string{"email", "to", "recipient_email", "to_email", "address"}
	nameAliases  = []string{"name", "recipient_name", "full_name"}
)

var purposeAliases = []string{"purpose", "email_purpose", "type", "category"}

// purposeKeywords maps keyword families onto the closed purpose vocabulary.
// Evaluated in order; the first family with a contained keyword wins.
var purposeKeywords = []struct {
	purpose  string
	keywords []string
}{
	{PurposeNewsletter, []string{"newsletter", "updates", "digest"}},
	{PurposeWelcome, []string{"welcome", "onboard"}},
	{PurposePromo, []string{"promo", "discount", "sale", "offer"}},
	{PurposeOutreach, []string{"outreach", "intro", "cold"}},
	{PurposeNotice, []string{"notice", "announce", "policy"}},
	{PurposeMaintenance, []string{"maintenance", "downtime", "outage"}},
}

// Normalize coerces an arbitrary caller-supplied mapping into a canonical
// Request, filling every required default so downstream components never see
// a missing purpose, brand, bullet list or call-to-action.
//
// Normalize never mutates raw and fails soft: when no email can be resolved
// anywhere in the input, the recipient is left empty and the request is
// rejected later by Validate.
func Normalize(raw map[string]any) Request {
	req := Request{
		Recipient: resolveRecipient(raw),
		Purpose:   resolvePurpose(raw),
		BrandID:   stringField(raw, "brand_id", "brand"),
		Context:   copyContext(raw),
	}
	if req.BrandID == "" {
		req.BrandID = "default"
	}
	if req.Recipient.Name == "" && req.Recipient.Email != "" {
		req.Recipient.Name = req.Recipient.Email
	}

	seedDefaults(&req)
	return req
}

// resolveRecipient walks the documented resolution order: a structured
// recipient mapping, a bare email string, the alias list, and finally any
// top-level string value containing "@". Keys are visited in sorted order in
// the last step so resolution is deterministic.
func resolveRecipient(raw map[string]any) Recipient {
	switch v := raw["recipient"].(type) {
	case map[string]any:
		rec := Recipient{
			Email:   stringField(v, emailAliases...),
			Name:    stringField(v, nameAliases...),
			Company: stringField(v, "company", "organization"),
		}
		if rec.Email != "" || rec.Name != "" {
			fillRecipientName(raw, &rec)
			return rec
		}
	case string:
		if strings.Contains(v, "@") {
			rec := Recipient{Email: strings.TrimSpace(v)}
			fillRecipientName(raw, &rec)
			return rec
		}
	}

	rec := Recipient{Company: stringField(raw, "company", "organization")}
	for _, key := range emailAliases {
		if s, ok := raw[key].(string); ok && strings.Contains(s, "@") {
			rec.Email = strings.TrimSpace(s)
			break
		}
	}
	if rec.Email == "" {
		for _, key := range sortedKeys(raw) {
			if s, ok := raw[key].(string); ok && strings.Contains(s, "@") {
				rec.Email = strings.TrimSpace(s)
				break
			}
		}
	}
	fillRecipientName(raw, &rec)
	return rec
}

func fillRecipientName(raw map[string]any, rec *Recipient) {
	if rec.Name != "" {
		return
	}
	rec.Name = stringField(raw, nameAliases...)
}

// resolvePurpose reads the first purpose alias present, maps it through the
// keyword families, and preserves unrecognized values lower-cased. Defaults
// to welcome when nothing is supplied.
func resolvePurpose(raw map[string]any) string {
	supplied := stringField(raw, purposeAliases...)
	if supplied == "" {
		return PurposeWelcome
	}
	lowered := strings.ToLower(supplied)
	for _, family := range purposeKeywords {
		for _, kw := range family.keywords {
			if strings.Contains(lowered, kw) {
				return family.purpose
			}
		}
	}
	return lowered
}

// seedDefaults populates the per-purpose bullet list (truncated to four
// entries), call-to-action text and fallback URL for any of them the caller
// left empty. Existing bullets are cleaned and capped instead.
func seedDefaults(req *Request) {
	if req.Context == nil {
		req.Context = make(map[string]any)
	}
	ctx := req.Context

	bullets := req.Bullets()
	if len(bullets) == 0 {
		bullets = DefaultBullets(req.Purpose)
		if len(bullets) > seededBullets {
			bullets = bullets[:seededBullets]
		}
	}
	ctx[ctxBullets] = bullets

	if req.ContextString(ctxCTAText) == "" {
		ctx[ctxCTAText] = DefaultCTA(req.Purpose)
	}
	if req.ContextString(ctxCTAURL) == "" {
		ctx[ctxCTAURL] = FallbackCTAURL
	}
}

func copyContext(raw map[string]any) map[string]any {
	ctx, _ := raw["context"].(map[string]any)
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	// Copy the bullets slice too so seeding never touches the caller's data.
	if bullets, ok := bulletsFromContext(ctx); ok {
		out[ctxBullets] = append([]string(nil), bullets...)
	}
	return out
}

func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
