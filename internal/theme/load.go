package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// LoadVariant reads a single theme variant from disk.
func LoadVariant(path string) (*Variant, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("theme path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	v, err := parseVariant(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	v.Source = path
	return v, nil
}

// LoadVariantsFromDir loads all variants from a directory. A missing
// directory yields no variants.
func LoadVariantsFromDir(dir string) ([]*Variant, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Variant{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Variant{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	variants := make([]*Variant, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		v, err := LoadVariant(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}

	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Name < variants[j].Name
	})

	return variants, nil
}

// Marshal encodes a variant as YAML.
func Marshal(v *Variant) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("theme is required")
	}
	return yaml.Marshal(v)
}

func parseVariant(data []byte) (*Variant, error) {
	var v Variant
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	v.Description = strings.TrimSpace(v.Description)
	v.Primary = strings.TrimSpace(v.Primary)
	v.Secondary = strings.TrimSpace(v.Secondary)

	if v.Primary == "" {
		return nil, fmt.Errorf("theme primary color is required")
	}
	if v.Secondary == "" {
		v.Secondary = palette.White.Hex()
	}

	if strings.TrimSpace(v.Palette) != "" {
		kind, ok := palette.ParseKind(v.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", v.Palette)
		}
		v.Palette = string(kind)
	}

	return &v, nil
}
