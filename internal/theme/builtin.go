package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinVariants returns the theme variants bundled with fixtura.
func LoadBuiltinVariants() ([]*Variant, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}

	variants := make([]*Variant, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := "builtin/" + entry.Name()
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", entry.Name(), err)
		}
		v, err := parseVariant(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", entry.Name(), err)
		}
		v.Source = "builtin"
		variants = append(variants, v)
	}

	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Name < variants[j].Name
	})

	return variants, nil
}
