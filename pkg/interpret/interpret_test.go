package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/draft"
)

func TestInterpretBullets(t *testing.T) {
	t.Parallel()

	t.Run("replace with semicolon list", func(t *testing.T) {
		t.Parallel()
		u := Interpret("replace bullets: A; B")
		require.NotNil(t, u.BulletsReplace)
		assert.Equal(t, []string{"A", "B"}, *u.BulletsReplace)
		assert.Empty(t, u.BulletsAdd)
	})

	t.Run("set bullets with comma list", func(t *testing.T) {
		t.Parallel()
		u := Interpret("set bullets with: One, Two, Three")
		require.NotNil(t, u.BulletsReplace)
		assert.Equal(t, []string{"One", "Two", "Three"}, *u.BulletsReplace)
	})

	t.Run("add bullets", func(t *testing.T) {
		t.Parallel()
		u := Interpret("add bullets: Contact support; Check the docs")
		assert.Nil(t, u.BulletsReplace)
		assert.Equal(t, []string{"Contact support", "Check the docs"}, u.BulletsAdd)
	})

	t.Run("clear bullets yields an explicit empty replace", func(t *testing.T) {
		t.Parallel()
		u := Interpret("please remove bullets")
		require.NotNil(t, u.BulletsReplace)
		assert.Empty(t, *u.BulletsReplace)
	})
}

func TestInterpretCTA(t *testing.T) {
	t.Parallel()

	t.Run("cta text keeps the full phrase", func(t *testing.T) {
		t.Parallel()
		u := Interpret("set cta text to: Start your free trial")
		require.NotNil(t, u.CTAText)
		assert.Equal(t, "Start your free trial", *u.CTAText)
	})

	t.Run("cta url", func(t *testing.T) {
		t.Parallel()
		u := Interpret("cta url = https://example.com/start")
		require.NotNil(t, u.CTAURL)
		assert.Equal(t, "https://example.com/start", *u.CTAURL)
	})

	t.Run("remove cta clears both fields", func(t *testing.T) {
		t.Parallel()
		u := Interpret("remove cta")
		require.NotNil(t, u.CTAText)
		require.NotNil(t, u.CTAURL)
		assert.Empty(t, *u.CTAText)
		assert.Empty(t, *u.CTAURL)
	})

	t.Run("no button phrasing", func(t *testing.T) {
		t.Parallel()
		u := Interpret("no button please")
		require.NotNil(t, u.CTAText)
		assert.Empty(t, *u.CTAText)
	})
}

func TestInterpretSubjectAndPurpose(t *testing.T) {
	t.Parallel()

	t.Run("subject stops at semicolon", func(t *testing.T) {
		t.Parallel()
		u := Interpret("subject: Quick update; add bullets: X")
		require.NotNil(t, u.Subject)
		assert.Equal(t, "Quick update", *u.Subject)
		assert.Equal(t, []string{"X"}, u.BulletsAdd)
	})

	t.Run("quoted subject is unwrapped", func(t *testing.T) {
		t.Parallel()
		u := Interpret(`set subject: "Welcome aboard"`)
		require.NotNil(t, u.Subject)
		assert.Equal(t, "Welcome aboard", *u.Subject)
	})

	t.Run("purpose lower-cased", func(t *testing.T) {
		t.Parallel()
		u := Interpret("set purpose: Newsletter")
		require.NotNil(t, u.Purpose)
		assert.Equal(t, "newsletter", *u.Purpose)
	})
}

func TestInterpretTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		instruction string
		wantTone    string
	}{
		{name: "explicit tone wins", instruction: "tone: Warm and friendly", wantTone: "warm and friendly"},
		{name: "friendlier maps to warm", instruction: "make it a little bit more friendly", wantTone: "warm"},
		{name: "more friendly maps to warm", instruction: "more friendly please", wantTone: "warm"},
		{name: "friendly keyword", instruction: "keep it friendly", wantTone: "friendly"},
		{name: "less formal maps to warm", instruction: "make it less formal", wantTone: "warm"},
		{name: "excited maps to enthusiastic", instruction: "sound more excited", wantTone: "enthusiastic"},
		{name: "professional", instruction: "make it more professional", wantTone: "professional"},
		{name: "casual", instruction: "more casual", wantTone: "casual"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := Interpret(tt.instruction)
			require.NotNil(t, u.Tone)
			assert.Equal(t, tt.wantTone, *u.Tone)
		})
	}

	t.Run("tone change implies long form", func(t *testing.T) {
		t.Parallel()
		u := Interpret("make it warmer")
		require.NotNil(t, u.LongForm)
		assert.True(t, *u.LongForm)
	})

	t.Run("brevity overrides the tone-implied long form", func(t *testing.T) {
		t.Parallel()
		u := Interpret("more friendly but make it shorter")
		require.NotNil(t, u.Tone)
		assert.Equal(t, "warm", *u.Tone)
		require.NotNil(t, u.LongForm)
		assert.False(t, *u.LongForm)
	})
}

func TestInterpretElaboration(t *testing.T) {
	t.Parallel()

	t.Run("seeds default bullets when none were set", func(t *testing.T) {
		t.Parallel()
		u := Interpret("make it more helpful")
		assert.Equal(t, draft.DefaultBullets("welcome"), u.BulletsAdd)
		require.NotNil(t, u.CTAText)
		assert.Equal(t, "Get started", *u.CTAText)
		require.NotNil(t, u.LongForm)
		assert.True(t, *u.LongForm)
	})

	t.Run("word-count phrasing triggers elaboration", func(t *testing.T) {
		t.Parallel()
		u := Interpret("the email should be more than 100 words")
		assert.NotEmpty(t, u.BulletsAdd)
		require.NotNil(t, u.LongForm)
		assert.True(t, *u.LongForm)
	})

	t.Run("explicit bullets suppress the seeded list", func(t *testing.T) {
		t.Parallel()
		u := Interpret("add bullets: Only this; and expand the email")
		assert.Equal(t, []string{"Only this", "and expand the email"}, u.BulletsAdd)
		assert.Nil(t, u.BulletsReplace)
	})

	t.Run("elaboration keeps an explicit cta", func(t *testing.T) {
		t.Parallel()
		u := Interpret("cta text: Join now; make it more detailed")
		require.NotNil(t, u.CTAText)
		assert.Equal(t, "Join now", *u.CTAText)
	})
}

func TestInterpretQARole(t *testing.T) {
	t.Parallel()

	t.Run("role mention replaces bullets", func(t *testing.T) {
		t.Parallel()
		u := Interpret("tailor this for a QA engineer")
		require.NotNil(t, u.BulletsReplace)
		assert.Equal(t, QAResponsibilities, *u.BulletsReplace)
	})

	t.Run("existing replace is kept and the role list appended", func(t *testing.T) {
		t.Parallel()
		u := Interpret("replace bullets: Custom; and mention the quality assurance engineer role")
		require.NotNil(t, u.BulletsReplace)
		assert.Equal(t, "Custom", (*u.BulletsReplace)[0])
		assert.Equal(t, QAResponsibilities, u.BulletsAdd)
	})
}

func TestInterpretUnrecognized(t *testing.T) {
	t.Parallel()

	for _, instruction := range []string{"", "   ", "do something nice", "hello there"} {
		u := Interpret(instruction)
		assert.True(t, u.IsZero(), "instruction %q should yield a zero update", instruction)
	}
}

func TestApplyRuleByName(t *testing.T) {
	t.Parallel()

	var u draft.Update
	require.True(t, applyRule("brevity", "make it shorter", &u))
	require.NotNil(t, u.LongForm)
	assert.False(t, *u.LongForm)

	assert.False(t, applyRule("no-such-rule", "text", &u))
}
