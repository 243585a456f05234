package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mailwright/mailwright/pkg/cache"
)

// cacheSize bounds how many parsed brands are kept in memory.
const cacheSize = 64

// Loader resolves a brand id to its configuration.
type Loader interface {
	Load(brandID string) (Config, error)
}

// DirLoader reads brands from <dir>/<brand_id>/brand.json (preferred) or
// brand.yaml / brand.yml. Parsed configs are LRU-cached.
type DirLoader struct {
	dir   string
	cache *cache.LRU[string, Config]
}

// NewDirLoader creates a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{
		dir:   dir,
		cache: cache.NewLRU[string, Config](cacheSize),
	}
}

// Load implements Loader.
func (l *DirLoader) Load(brandID string) (Config, error) {
	if cfg, ok := l.cache.Get(brandID); ok {
		return cfg, nil
	}

	cfg, err := l.read(brandID)
	if err != nil {
		return Config{}, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Join(ErrInvalidBrand, fmt.Errorf("brand %q: %w", brandID, err))
	}

	l.cache.Put(brandID, cfg)
	return cfg, nil
}

func (l *DirLoader) read(brandID string) (Config, error) {
	base := filepath.Join(l.dir, brandID)
	for _, candidate := range []struct {
		file string
		yaml bool
	}{
		{"brand.json", false},
		{"brand.yaml", true},
		{"brand.yml", true},
	} {
		path := filepath.Join(base, candidate.file)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, errors.Join(ErrInvalidBrand, err)
		}

		var cfg Config
		if candidate.yaml {
			err = yaml.Unmarshal(data, &cfg)
		} else {
			err = json.Unmarshal(data, &cfg)
		}
		if err != nil {
			return Config{}, errors.Join(ErrInvalidBrand, fmt.Errorf("brand %q: %w", brandID, err))
		}
		return cfg, nil
	}
	return Config{}, fmt.Errorf("%w: %q under %s", ErrBrandNotFound, brandID, l.dir)
}

// WithDefault wraps a loader so the built-in brand answers for "default"
// when the underlying loader has no entry for it. Any other miss still
// surfaces as ErrBrandNotFound.
func WithDefault(inner Loader) Loader {
	return defaultFallback{inner: inner}
}

type defaultFallback struct {
	inner Loader
}

// Load implements Loader.
func (f defaultFallback) Load(brandID string) (Config, error) {
	cfg, err := f.inner.Load(brandID)
	if errors.Is(err, ErrBrandNotFound) && brandID == "default" {
		return Default(), nil
	}
	return cfg, err
}

// StaticLoader serves brands from a fixed map. Useful in tests and for the
// zero-config deployment where only the built-in default brand exists.
type StaticLoader map[string]Config

// Load implements Loader.
func (s StaticLoader) Load(brandID string) (Config, error) {
	if cfg, ok := s[brandID]; ok {
		return cfg, nil
	}
	return Config{}, fmt.Errorf("%w: %q", ErrBrandNotFound, brandID)
}
