package draft

// Apply merges a sparse update into a request and returns the result. The
// base request is never mutated.
//
// Bullet semantics: a present BulletsReplace replaces the context bullets
// entirely (an empty list clears them); otherwise a non-empty BulletsAdd
// appends to the existing cleaned bullets. Replace always wins when both are
// set in the same update.
//
// CTA text and URL apply independently whenever present - an explicit empty
// string is a valid "no call to action" value, distinct from a nil pointer
// meaning "no change". Purpose, subject, tone and long_form flow through
// verbatim for the rendering collaborator to interpret; no content validation
// happens here.
func Apply(base Request, u Update) Request {
	out := base.Clone()
	if out.Context == nil {
		out.Context = make(map[string]any)
	}

	switch {
	case u.BulletsReplace != nil:
		out.Context[ctxBullets] = cleanBullets(*u.BulletsReplace)
	case len(u.BulletsAdd) > 0:
		existing := out.Bullets()
		out.Context[ctxBullets] = append(existing, cleanBullets(u.BulletsAdd)...)
	}

	if u.CTAText != nil {
		out.Context[ctxCTAText] = *u.CTAText
	}
	if u.CTAURL != nil {
		out.Context[ctxCTAURL] = *u.CTAURL
	}
	if u.Subject != nil {
		out.Context[ctxSubject] = *u.Subject
	}
	if u.Purpose != nil {
		out.Purpose = *u.Purpose
	}
	if u.Tone != nil {
		out.Context[ctxTone] = *u.Tone
	}
	if u.LongForm != nil {
		out.Context[ctxLongForm] = *u.LongForm
	}
	return out
}
