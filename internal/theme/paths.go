package theme

import (
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/searchpath"
)

// SearchPaths returns theme directories in precedence order.
func SearchPaths(projectDir string) []string {
	return searchpath.Dirs(projectDir, "themes")
}

// LoadFromSearchPaths loads variants from the search paths and the builtins.
// The first definition of a name wins.
func LoadFromSearchPaths(projectDir string) ([]*Variant, error) {
	var groups [][]*Variant
	for _, path := range SearchPaths(projectDir) {
		variants, err := LoadVariantsFromDir(path)
		if err != nil {
			return nil, err
		}
		groups = append(groups, variants)
	}

	builtins, err := LoadBuiltinVariants()
	if err != nil {
		return nil, err
	}
	groups = append(groups, builtins)

	return searchpath.FirstWins(func(v *Variant) string { return v.Name }, groups...), nil
}
