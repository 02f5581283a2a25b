package composition

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinCompositions returns the compositions bundled with fixtura.
func LoadBuiltinCompositions() ([]*Composition, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin compositions: %w", err)
	}

	comps := make([]*Composition, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin composition %s: %w", entry.Name(), err)
		}
		comp, err := parseComposition(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin composition %s: %w", entry.Name(), err)
		}
		comp.Source = "builtin"
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		return comps[i].Name < comps[j].Name
	})

	return comps, nil
}
