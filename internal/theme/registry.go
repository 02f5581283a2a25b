package theme

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/searchpath"
)

// ErrThemeNotFound is returned when no variant matches a name.
var ErrThemeNotFound = errors.New("theme not found")

// Registry indexes variants by case-insensitive name.
type Registry struct {
	variants map[string]*Variant
	order    []string
	logger   zerolog.Logger
}

// NewRegistry builds a registry from already-loaded variants. Later
// duplicates are ignored.
func NewRegistry(variants []*Variant, logger zerolog.Logger) *Registry {
	r := &Registry{
		variants: make(map[string]*Variant, len(variants)),
		logger:   logger,
	}
	for _, v := range variants {
		if v == nil {
			continue
		}
		key := normalizeName(v.Name)
		if _, exists := r.variants[key]; exists {
			logger.Debug().Str("theme", v.Name).Str("source", v.Source).Msg("shadowed theme ignored")
			continue
		}
		r.variants[key] = v
		r.order = append(r.order, key)
	}
	return r
}

// LoadRegistry loads every reachable variant for projectDir.
func LoadRegistry(projectDir string, logger zerolog.Logger) (*Registry, error) {
	variants, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("count", len(variants)).Msg("themes loaded")
	return NewRegistry(variants, logger), nil
}

// Find returns the variant called name.
func (r *Registry) Find(name string) (*Variant, error) {
	if v, ok := r.variants[normalizeName(name)]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

// List returns variants in load order.
func (r *Registry) List() []*Variant {
	out := make([]*Variant, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.variants[key])
	}
	return out
}

// Names returns the variant names in load order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.variants[key].Name)
	}
	return names
}

func normalizeName(name string) string {
	return searchpath.Key(name)
}
