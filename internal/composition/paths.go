package composition

import (
	"errors"
	"fmt"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/searchpath"
)

// ErrCompositionNotFound is returned when no composition matches a name.
var ErrCompositionNotFound = errors.New("composition not found")

// SearchPaths returns composition directories in precedence order.
func SearchPaths(projectDir string) []string {
	return searchpath.Dirs(projectDir, "compositions")
}

// LoadFromSearchPaths loads compositions with first-hit precedence, builtins
// last.
func LoadFromSearchPaths(projectDir string) ([]*Composition, error) {
	var groups [][]*Composition
	for _, path := range SearchPaths(projectDir) {
		comps, err := LoadCompositionsFromDir(path)
		if err != nil {
			return nil, err
		}
		groups = append(groups, comps)
	}

	builtins, err := LoadBuiltinCompositions()
	if err != nil {
		return nil, err
	}
	groups = append(groups, builtins)

	return searchpath.FirstWins(func(c *Composition) string { return c.Name }, groups...), nil
}

// Find returns the composition called name, ignoring case.
func Find(comps []*Composition, name string) (*Composition, error) {
	want := searchpath.Key(name)
	for _, comp := range comps {
		if searchpath.Key(comp.Name) == want {
			return comp, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCompositionNotFound, name)
}
