package interpret

import (
	"regexp"
	"strings"

	"github.com/mailwright/mailwright/pkg/draft"
)

var listSeparator = regexp.MustCompile(`[;,]\s*`)

// splitList breaks an instruction fragment on ";" and "," boundaries,
// trimming entries and dropping empties.
func splitList(text string) []string {
	parts := listSeparator.Split(strings.TrimSpace(text), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// stripQuotes removes one matching pair of surrounding quotes, if any.
func stripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// rule is one step of the cascade: a named predicate/effect pair over the
// instruction text. Rules run in declaration order and are individually
// unit-testable through applyRule.
type rule struct {
	name  string
	apply func(text string, u *draft.Update)
}

// Interpret parses a free-text instruction into a sparse update. Matching is
// case-insensitive and English-only; unrecognized text yields a zero update
// and never an error.
func Interpret(instruction string) draft.Update {
	var u draft.Update
	text := strings.TrimSpace(instruction)
	if text == "" {
		return u
	}
	for _, r := range rules {
		r.apply(text, &u)
	}
	return u
}

// applyRule runs the single named rule against text, for rule-level tests.
// Returns false when no such rule exists.
func applyRule(name, text string, u *draft.Update) bool {
	for _, r := range rules {
		if r.name == name {
			r.apply(text, u)
			return true
		}
	}
	return false
}
