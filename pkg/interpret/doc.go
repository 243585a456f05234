// Package interpret turns free-text editing instructions into structured
// draft updates using a bounded, deterministic rule cascade.
//
// This is explicitly not language understanding: an ordered list of
// (pattern, effect) rules runs over the instruction text, and anything the
// rules don't recognize yields an empty update rather than a guess. Rule
// ordering is load-bearing - earlier, more specific rules win, and most
// later rules only set a field that is still unset ("set-if-absent"). The
// one documented exception is the brevity rule, which always overrides the
// long-form default implied by a tone change.
//
//	upd := interpret.Interpret("add bullets: Book a demo; See pricing")
//	// upd.BulletsAdd == []string{"Book a demo", "See pricing"}
//
// Interpret never returns an error; unmatched text is a no-op by design so
// the conversational layer can tell the user no changes were understood.
package interpret
