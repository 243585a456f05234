package interpret

import (
	"regexp"
	"strings"

	"github.com/mailwright/mailwright/pkg/draft"
)

// QAResponsibilities is the fixed bullet list produced by the QA-engineer
// convenience rule.
var QAResponsibilities = []string{
	"Develop and execute test plans and cases",
	"Automate regression and smoke tests where practical",
	"Log, track, and verify defects through resolution",
	"Collaborate with engineering to reproduce issues",
	"Report quality metrics and release readiness",
}

var (
	reBulletsReplace = regexp.MustCompile(`(?i)(?:replace|set)\s+bullets(?:\s+with)?\s*:\s*(.+)`)
	reBulletsAdd     = regexp.MustCompile(`(?i)(?:add|append)\s+bullets?\s*:\s*(.+)`)
	reBulletsClear   = regexp.MustCompile(`(?i)\b(?:clear|remove|drop)\s+bullets?\b`)
	reCTAText        = regexp.MustCompile(`(?i)(?:set\s+)?cta\s*text\s*(?:to)?\s*[:=]\s*([^;\n]+)`)
	reCTAURL         = regexp.MustCompile(`(?i)(?:set\s+)?cta\s*url\s*(?:to)?\s*[:=]\s*['"]?(\S+?)['"]?(?:\s|$)`)
	reCTARemove      = regexp.MustCompile(`(?i)\b(?:remove|clear|drop|no)\s+(?:cta|button)\b`)
	reSubject        = regexp.MustCompile(`(?i)(?:set\s+)?subject\s*(?:to)?\s*[:=]\s*([^;\n]+)`)
	reToneExplicit   = regexp.MustCompile(`(?i)(?:set\s+)?tone\s*(?:to)?\s*[:=]\s*['"]?([a-zA-Z ]+)['"]?`)
	rePurpose        = regexp.MustCompile(`(?i)(?:set\s+)?purpose\s*(?:to)?\s*[:=]\s*['"]?([a-zA-Z][a-zA-Z -]+)['"]?`)

	reToneFriendlier = regexp.MustCompile(`(?i)\b(?:a\s+little\s+(?:bit\s+)?more\s+friendly|more\s+friendly|friendlier)\b`)
	reToneFriendly   = regexp.MustCompile(`(?i)\b(?:friendly|welcom(?:ing|e))\b`)
	reToneWarm       = regexp.MustCompile(`(?i)\b(?:warm|warmer|more\s+warm|more\s+welcoming|more\s+personal|softer|kinder|less\s+formal)\b`)
	reToneExcited    = regexp.MustCompile(`(?i)\b(?:excit(?:ed|ing)|more\s+excited|enthusiastic|more\s+enthusiastic)\b`)
	reToneFormal     = regexp.MustCompile(`(?i)\b(?:formal|more\s+formal|professional|more\s+professional)\b`)
	reToneCasual     = regexp.MustCompile(`(?i)\b(?:casual|more\s+casual)\b`)

	reBrevity   = regexp.MustCompile(`(?i)\b(?:short(?:en|er)?|more\s+concise|tighter)\b`)
	reElaborate = regexp.MustCompile(`(?i)\b(?:more\s+(?:helpful|detailed|useful|informative)|make.*longer|expand|add\s+detail|more\s+than\s+\d+\s+words|>\s*\d+\s*words)\b`)
	reQARole    = regexp.MustCompile(`(?i)\b(?:qa|aq|quality\s*assurance)\s+engineer\b`)
)

// rules is the cascade, in evaluation order. The ordering encodes the
// documented precedence: explicit field edits first, tone inference next,
// the tone-implied long-form default before the brevity override, and the
// fallback elaboration/role rules last so they never clobber explicit edits.
var rules = []rule{
	{name: "bullets-replace", apply: func(text string, u *draft.Update) {
		if m := reBulletsReplace.FindStringSubmatch(text); m != nil {
			u.BulletsReplace = draft.Replace(splitList(m[1])...)
		}
	}},
	{name: "bullets-add", apply: func(text string, u *draft.Update) {
		if m := reBulletsAdd.FindStringSubmatch(text); m != nil {
			u.BulletsAdd = splitList(m[1])
		}
	}},
	{name: "bullets-clear", apply: func(text string, u *draft.Update) {
		if reBulletsClear.MatchString(text) {
			u.BulletsReplace = draft.Replace()
		}
	}},
	{name: "cta-text", apply: func(text string, u *draft.Update) {
		if m := reCTAText.FindStringSubmatch(text); m != nil {
			u.CTAText = draft.String(stripQuotes(m[1]))
		}
	}},
	{name: "cta-url", apply: func(text string, u *draft.Update) {
		if m := reCTAURL.FindStringSubmatch(text); m != nil {
			u.CTAURL = draft.String(strings.TrimSpace(m[1]))
		}
	}},
	{name: "cta-remove", apply: func(text string, u *draft.Update) {
		if reCTARemove.MatchString(text) {
			u.CTAText = draft.String("")
			u.CTAURL = draft.String("")
		}
	}},
	{name: "subject", apply: func(text string, u *draft.Update) {
		if m := reSubject.FindStringSubmatch(text); m != nil {
			u.Subject = draft.String(stripQuotes(m[1]))
		}
	}},
	{name: "tone", apply: func(text string, u *draft.Update) {
		if m := reToneExplicit.FindStringSubmatch(text); m != nil {
			u.Tone = draft.String(strings.ToLower(stripQuotes(m[1])))
			return
		}
		// Keyword inference, set-if-absent within a single pass. The
		// intensified friendliness forms map to warm so the change is
		// visible in the rendered greeting.
		for _, family := range []struct {
			re   *regexp.Regexp
			tone string
		}{
			{reToneFriendlier, "warm"},
			{reToneFriendly, "friendly"},
			{reToneWarm, "warm"},
			{reToneExcited, "enthusiastic"},
			{reToneFormal, "professional"},
			{reToneCasual, "casual"},
		} {
			if u.Tone == nil && family.re.MatchString(text) {
				u.Tone = draft.String(family.tone)
			}
		}
	}},
	{name: "tone-long-form-default", apply: func(text string, u *draft.Update) {
		// A tone change should produce a visibly different, fuller greeting.
		if u.Tone != nil && u.LongForm == nil {
			u.LongForm = draft.Bool(true)
		}
	}},
	{name: "brevity", apply: func(text string, u *draft.Update) {
		// Always overrides the tone-implied long-form default above.
		if reBrevity.MatchString(text) {
			u.LongForm = draft.Bool(false)
		}
	}},
	{name: "purpose", apply: func(text string, u *draft.Update) {
		if m := rePurpose.FindStringSubmatch(text); m != nil {
			u.Purpose = draft.String(strings.ToLower(stripQuotes(m[1])))
		}
	}},
	{name: "elaborate", apply: func(text string, u *draft.Update) {
		if !reElaborate.MatchString(text) {
			return
		}
		if u.BulletsReplace == nil && len(u.BulletsAdd) == 0 {
			purpose := draft.PurposeWelcome
			if u.Purpose != nil {
				purpose = *u.Purpose
			}
			u.BulletsAdd = draft.DefaultBullets(purpose)
		}
		if u.CTAText == nil {
			u.CTAText = draft.String("Get started")
		}
		if u.LongForm == nil {
			u.LongForm = draft.Bool(true)
		}
	}},
	{name: "qa-role", apply: func(text string, u *draft.Update) {
		if !reQARole.MatchString(text) {
			return
		}
		switch {
		case u.BulletsReplace == nil && len(u.BulletsAdd) == 0:
			u.BulletsReplace = draft.Replace(QAResponsibilities...)
		case len(u.BulletsAdd) == 0:
			// Replace already set by an earlier rule; keep it and append the
			// role list additively instead of dropping it.
			u.BulletsAdd = append([]string(nil), QAResponsibilities...)
		}
	}},
}
