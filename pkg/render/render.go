package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/k3a/html2text"
	"github.com/vanng822/go-premailer/premailer"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/mailwright/mailwright/pkg/brand"
)

// preheaderLimit is how many characters of the body feed the hidden
// preview line mail clients show next to the subject.
const preheaderLimit = 90

// introBullets caps how many bullets the long-form intro repeats; the full
// list still renders in the body below.
const introBullets = 4

// markdown renders the body text. Hard wraps keep the greeting and sign-off
// lines intact; unsafe HTML is allowed because the body is our own
// composition, not caller input.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(ghtml.WithHardWraps(), ghtml.WithUnsafe()),
)

// Input is everything needed to render one email.
type Input struct {
	Subject   string
	BodyText  string
	Brand     brand.Config
	Purpose   string
	Variables map[string]any
}

// Render produces the CSS-inlined HTML body and its plain-text twin.
func Render(in Input) (html string, text string, err error) {
	vars := in.Variables
	subject := in.Subject
	if override := varString(vars, "subject"); override != "" {
		subject = override
	}

	bodyText := in.BodyText
	if longFormRequested(vars) {
		bodyText = prependIntro(bodyText, vars)
	}

	preheader := varString(vars, "preheader")
	if preheader == "" {
		preheader = DerivePreheader(bodyText, preheaderLimit)
	}

	ctaText, ctaURL := resolveCTA(in.Brand, vars)

	var bodyHTML bytes.Buffer
	if err := markdown.Convert([]byte(bodyText), &bodyHTML); err != nil {
		return "", "", errors.Join(ErrRenderFailed, err)
	}

	raw, err := renderLayout(layoutData{
		Brand:     in.Brand,
		Subject:   subject,
		Preheader: preheader,
		BodyHTML:  bodyHTML.String(),
		CTAText:   ctaText,
		CTAURL:    ctaURL,
		Purpose:   in.Purpose,
	})
	if err != nil {
		return "", "", errors.Join(ErrRenderFailed, err)
	}

	inlined, err := inlineCSS(raw)
	if err != nil {
		return "", "", errors.Join(ErrRenderFailed, err)
	}

	return inlined, html2text.HTML2Text(inlined), nil
}

// DerivePreheader collapses the body to single-spaced text and truncates it.
func DerivePreheader(plainText string, limit int) string {
	s := strings.Join(strings.Fields(plainText), " ")
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}

// resolveCTA picks the call-to-action pair. Outside the long-form path an
// unset CTA text falls back to "Learn more"; an explicitly empty CTA stays
// empty and suppresses the button.
func resolveCTA(b brand.Config, vars map[string]any) (text, url string) {
	text = "Learn more"
	if vars != nil {
		if v, ok := vars["cta_text"].(string); ok {
			text = strings.TrimSpace(v)
		}
	}
	url = varString(vars, "cta_url")
	if url == "" {
		url = b.Links["website"]
	}
	if url == "" {
		url = "#"
	}
	return text, url
}

// inlineCSS moves the layout's style block onto each element so the HTML
// survives mail clients that strip <style>.
func inlineCSS(rawHTML string) (string, error) {
	prem, err := premailer.NewPremailerFromString(rawHTML, premailer.NewOptions())
	if err != nil {
		return "", err
	}
	return prem.Transform()
}

func longFormRequested(vars map[string]any) bool {
	if vars == nil {
		return false
	}
	if lf, ok := vars["long_form"].(bool); ok && lf {
		return true
	}
	return varString(vars, "tone") != ""
}

// prependIntro builds the tone-aware long-form opening and stacks it above
// the composed body.
func prependIntro(bodyText string, vars map[string]any) string {
	tone := strings.ToLower(varString(vars, "tone"))
	if tone == "" {
		tone = "friendly"
	}
	name := varString(vars, "recipient_name")
	if name == "" {
		name = varString(vars, "recipient_email")
	}
	if name == "" {
		name = "there"
	}

	var lines []string
	switch tone {
	case "formal", "professional":
		lines = append(lines,
			fmt.Sprintf("Hello %s,", name),
			"Welcome aboard—it's a pleasure to have you with us.",
		)
	case "warm", "enthusiastic", "friendly":
		lines = append(lines, fmt.Sprintf("Hi %s — welcome! We're thrilled to have you.", name))
	default:
		lines = append(lines, fmt.Sprintf("Hi %s, welcome!", name))
	}

	if bullets := varBullets(vars); len(bullets) > 0 {
		lines = append(lines, "To make your first days smooth, here are a few quick wins:")
		for i, b := range bullets {
			if i == introBullets {
				break
			}
			lines = append(lines, "• "+b)
		}
	} else {
		lines = append(lines,
			"To help you get value fast, we suggest exploring a couple of real examples, "+
				"reviewing a short quickstart, and trying one small task end-to-end.",
			"Most new users create their first draft in minutes and then iterate—"+
				"if anything feels unclear, we're here to help.",
		)
	}

	if cta := strings.TrimSpace(varString(vars, "cta_text")); cta != "" {
		lines = append(lines, fmt.Sprintf("When you're ready, %s.", lowerFirst(cta)))
	}
	lines = append(lines, "If anything feels unclear, just reply—happy to help.", "Best,\nThe Team")

	intro := strings.TrimSpace(strings.Join(lines, "\n"))
	body := strings.TrimSpace(bodyText)
	if body == "" {
		return intro
	}
	return intro + "\n\n" + body
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return strings.TrimSuffix(string(runes), ".")
}

func varString(vars map[string]any, key string) string {
	if vars == nil {
		return ""
	}
	if s, ok := vars[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// varBullets tolerates []string and JSON-decoded []any bullet shapes.
func varBullets(vars map[string]any) []string {
	if vars == nil {
		return nil
	}
	var raw []string
	switch v := vars["bullets"].(type) {
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, b := range raw {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
