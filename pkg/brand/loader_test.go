package brand_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailwright/mailwright/pkg/brand"
	"github.com/mailwright/mailwright/pkg/validator"
)

func writeBrand(t *testing.T, dir, id, file, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, id), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, id, file), []byte(content), 0o644))
}

func TestDirLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads json brand with defaults applied", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{"name": "Acme", "primary": "#FF0000"}`)

		cfg, err := brand.NewDirLoader(dir).Load("acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", cfg.Name)
		assert.Equal(t, "#FF0000", cfg.Primary)
		assert.Equal(t, "#111827", cfg.Secondary)
		assert.Equal(t, 600, cfg.ContentWidthPx)
		assert.Equal(t, "Agent-Sent", cfg.LabelPrefix)
		assert.Equal(t, []string{"newsletter", "outreach"}, cfg.Unsubscribe.RequiredFor)
	})

	t.Run("loads yaml brand", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.yaml", "name: Acme\nprimary: \"#00FF00\"\n")

		cfg, err := brand.NewDirLoader(dir).Load("acme")
		require.NoError(t, err)
		assert.Equal(t, "Acme", cfg.Name)
		assert.Equal(t, "#00FF00", cfg.Primary)
	})

	t.Run("json beats yaml when both exist", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{"name": "From JSON"}`)
		writeBrand(t, dir, "acme", "brand.yaml", "name: From YAML\n")

		cfg, err := brand.NewDirLoader(dir).Load("acme")
		require.NoError(t, err)
		assert.Equal(t, "From JSON", cfg.Name)
	})

	t.Run("unknown brand", func(t *testing.T) {
		t.Parallel()
		_, err := brand.NewDirLoader(t.TempDir()).Load("ghost")
		assert.ErrorIs(t, err, brand.ErrBrandNotFound)
	})

	t.Run("invalid json surfaces as invalid brand", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{broken`)

		_, err := brand.NewDirLoader(dir).Load("acme")
		assert.ErrorIs(t, err, brand.ErrInvalidBrand)
	})

	t.Run("semantic violations name the field", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{"name": "Acme", "primary": "red"}`)

		_, err := brand.NewDirLoader(dir).Load("acme")
		require.ErrorIs(t, err, brand.ErrInvalidBrand)
		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.True(t, ve.Has("primary"))
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{"primary": "#FF0000"}`)

		_, err := brand.NewDirLoader(dir).Load("acme")
		require.ErrorIs(t, err, brand.ErrInvalidBrand)
		ve := validator.Extract(err)
		require.NotNil(t, ve)
		assert.True(t, ve.Has("name"))
	})

	t.Run("second load is served from cache", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeBrand(t, dir, "acme", "brand.json", `{"name": "Acme"}`)
		loader := brand.NewDirLoader(dir)

		first, err := loader.Load("acme")
		require.NoError(t, err)

		// Changing the file on disk must not affect the cached entry.
		writeBrand(t, dir, "acme", "brand.json", `{"name": "Changed"}`)
		second, err := loader.Load("acme")
		require.NoError(t, err)
		assert.Equal(t, first.Name, second.Name)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		logoURL string
		ok      bool
	}{
		{name: "empty logo passes", logoURL: "", ok: true},
		{name: "https logo", logoURL: "https://cdn.example.com/logo.png", ok: true},
		{name: "cid logo", logoURL: "cid:logo", ok: true},
		{name: "data logo", logoURL: "data:image/png;base64,AAAA", ok: true},
		{name: "file scheme rejected", logoURL: "file:///etc/passwd", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := brand.Default()
			cfg.LogoURL = tt.logoURL
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWithDefault(t *testing.T) {
	t.Parallel()

	loader := brand.WithDefault(brand.NewDirLoader(t.TempDir()))

	cfg, err := loader.Load("default")
	require.NoError(t, err)
	assert.Equal(t, "Mailwright", cfg.Name)

	_, err = loader.Load("ghost")
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}

func TestStaticLoader(t *testing.T) {
	t.Parallel()

	loader := brand.StaticLoader{"acme": {Name: "Acme"}}

	cfg, err := loader.Load("acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Name)

	_, err = loader.Load("other")
	assert.ErrorIs(t, err, brand.ErrBrandNotFound)
}
