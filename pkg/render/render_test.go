package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/brand"
	"github.com/mailwright/mailwright/pkg/render"
)

func renderInput() render.Input {
	return render.Input{
		Subject:  "Welcome: For Pat",
		BodyText: "Hi Pat,\n\nHere are a few things to check out:\n- First steps\n- Second steps\n\nBest,\nMailwright",
		Brand:    brand.Default(),
		Purpose:  "welcome",
		Variables: map[string]any{
			"recipient_name": "Pat",
			"cta_text":       "Start your trial",
			"cta_url":        "https://example.com/start",
		},
	}
}

func TestRenderProducesHTMLAndText(t *testing.T) {
	t.Parallel()

	html, text, err := render.Render(renderInput())
	require.NoError(t, err)

	assert.Contains(t, html, "Hi Pat,")
	assert.Contains(t, html, "<li>First steps</li>")
	assert.Contains(t, html, "<li>Second steps</li>")
	assert.Contains(t, html, `href="https://example.com/start"`)
	assert.Contains(t, html, "Start your trial")

	assert.Contains(t, text, "Hi Pat,")
	assert.Contains(t, text, "First steps")
}

func TestRenderInlinesStyles(t *testing.T) {
	t.Parallel()

	html, _, err := render.Render(renderInput())
	require.NoError(t, err)

	// Premailer moves the stylesheet onto the elements.
	assert.Contains(t, html, `style=`)
}

func TestRenderCTASuppression(t *testing.T) {
	t.Parallel()

	t.Run("explicit empty cta removes the button", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["cta_text"] = ""

		html, _, err := render.Render(in)
		require.NoError(t, err)
		assert.NotContains(t, html, `class="cta"`)
		assert.NotContains(t, html, "https://example.com/start")
	})

	t.Run("absent cta falls back to a default label", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		delete(in.Variables, "cta_text")
		delete(in.Variables, "cta_url")

		html, _, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, html, "Learn more")
		assert.Contains(t, html, in.Brand.Links["website"])
	})
}

func TestRenderLongForm(t *testing.T) {
	t.Parallel()

	t.Run("warm tone opens with the enthusiastic greeting", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["tone"] = "warm"
		in.Variables["bullets"] = []string{"First steps", "Second steps"}

		html, text, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, text, "thrilled to have you")
		assert.Contains(t, html, "quick wins")
	})

	t.Run("professional tone opens formally", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["tone"] = "professional"

		_, text, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, text, "Hello Pat,")
	})

	t.Run("long form flag without tone reads friendly", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["long_form"] = true

		_, text, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, text, "thrilled to have you")
	})

	t.Run("unrecognized tone uses the plain greeting", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["tone"] = "stoic"

		_, text, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, text, "Hi Pat, welcome!")
	})

	t.Run("cta is echoed as a sentence", func(t *testing.T) {
		t.Parallel()
		in := renderInput()
		in.Variables["tone"] = "warm"

		_, text, err := render.Render(in)
		require.NoError(t, err)
		assert.Contains(t, text, "start your trial")
	})
}

func TestRenderSubjectOverride(t *testing.T) {
	t.Parallel()

	in := renderInput()
	in.Variables["subject"] = "Custom subject"

	html, _, err := render.Render(in)
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Custom subject</title>")
}

func TestDerivePreheader(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace", func(t *testing.T) {
		t.Parallel()
		got := render.DerivePreheader("Hi  Pat,\n\nwelcome   aboard", 90)
		assert.Equal(t, "Hi Pat, welcome aboard", got)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("word ", 40)
		got := render.DerivePreheader(long, 90)
		assert.Len(t, got, 90)
	})
}
