// Package searchpath locates user-defined definitions (themes, compositions)
// and merges them with the bundled ones.
package searchpath

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs returns the directories holding kind definitions in precedence
// order: the project, the user config directory, then the system share.
func Dirs(projectDir, kind string) []string {
	dirs := make([]string, 0, 3)
	if projectDir != "" {
		dirs = append(dirs, filepath.Join(projectDir, ".fixtura", kind))
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "fixtura", kind))
	} else if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "fixtura", kind))
	}

	dirs = append(dirs, filepath.Join(string(filepath.Separator), "usr", "share", "fixtura", kind))
	return dirs
}

// Key is the lookup form of a definition name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FirstWins flattens groups in order, keeping only the first item for each
// name Key.
func FirstWins[T any](name func(T) string, groups ...[]T) []T {
	seen := make(map[string]bool)
	var out []T
	for _, group := range groups {
		for _, item := range group {
			key := Key(name(item))
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}
