package draft

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FallbackBodyLine is rendered when a request carries no bullets at all.
const FallbackBodyLine = "Thanks for connecting with us!"

// Draft is the composed subject and plain body text for a request, before
// branding and HTML rendering.
type Draft struct {
	Subject  string `json:"subject"`
	BodyText string `json:"body_text"`
}

// Compose turns a normalized request into a subject line and plain body
// text. signoff is the brand display name used in the closing line; it
// defaults to "The Team" when empty.
//
// Subject policy: with a company on the recipient the subject is
// "<Purpose Title>: <Company>", otherwise "Welcome: For <name>". A subject
// override in the request context always wins.
func Compose(req Request, signoff string) Draft {
	name := req.Recipient.Name
	if name == "" {
		name = req.Recipient.Email
	}
	if signoff == "" {
		signoff = "The Team"
	}

	subject := fmt.Sprintf("Welcome: For %s", name)
	if req.Recipient.Company != "" {
		subject = fmt.Sprintf("%s: %s", titleCaser.String(req.Purpose), req.Recipient.Company)
	}
	if override := req.ContextString(ctxSubject); override != "" {
		subject = override
	}

	lines := []string{fmt.Sprintf("Hi %s,", name), ""}
	if bullets := req.Bullets(); len(bullets) > 0 {
		lines = append(lines, "Here are a few things to check out:")
		for _, b := range bullets {
			lines = append(lines, "- "+b)
		}
		lines = append(lines, "")
	} else {
		lines = append(lines, FallbackBodyLine, "")
	}
	lines = append(lines, fmt.Sprintf("Best,\n%s", signoff))

	return Draft{Subject: subject, BodyText: strings.Join(lines, "\n")}
}
