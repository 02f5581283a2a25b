package composition

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/palette"
)

// LoadComposition reads a single composition from disk.
func LoadComposition(path string) (*Composition, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("composition path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read composition %s: %w", path, err)
	}

	comp, err := parseComposition(data)
	if err != nil {
		return nil, fmt.Errorf("parse composition %s: %w", path, err)
	}
	comp.Source = path
	return comp, nil
}

// LoadCompositionsFromDir loads all compositions from a directory.
func LoadCompositionsFromDir(dir string) ([]*Composition, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Composition{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Composition{}, nil
		}
		return nil, fmt.Errorf("read compositions dir %s: %w", dir, err)
	}

	comps := make([]*Composition, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		comp, err := LoadComposition(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		return comps[i].Name < comps[j].Name
	})

	return comps, nil
}

// LoadData reads row data from a JSON or YAML file.
func LoadData(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read data %s: %w", path, err)
	}

	var data Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &data)
	default:
		err = yaml.Unmarshal(raw, &data)
	}
	if err != nil {
		return Data{}, fmt.Errorf("parse data %s: %w", path, err)
	}
	return data, nil
}

func parseComposition(data []byte) (*Composition, error) {
	var comp Composition
	if err := yaml.Unmarshal(data, &comp); err != nil {
		return nil, err
	}

	comp.Name = strings.TrimSpace(comp.Name)
	if comp.Name == "" {
		return nil, fmt.Errorf("composition name is required")
	}
	comp.Description = strings.TrimSpace(comp.Description)

	if comp.FPS == 0 {
		comp.FPS = DefaultFPS
		comp.fpsDefaulted = true
	}
	if comp.FPS < 0 {
		return nil, fmt.Errorf("fps must be greater than 0")
	}
	if comp.Duration <= 0 {
		return nil, fmt.Errorf("duration must be greater than 0")
	}

	if strings.TrimSpace(comp.Palette) != "" {
		kind, ok := palette.ParseKind(comp.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", comp.Palette)
		}
		comp.Palette = string(kind)
	}

	if err := normalizeElement(&comp.Title); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	comp.Rows.Template = strings.TrimSpace(comp.Rows.Template)
	if comp.Rows.Template == "" {
		return nil, fmt.Errorf("rows template is required")
	}
	if comp.Rows.MaxRows < 0 {
		return nil, fmt.Errorf("rows max_rows must not be negative")
	}
	if err := comp.Rows.Animation.Normalize(); err != nil {
		return nil, fmt.Errorf("rows animation: %w", err)
	}

	if comp.Exit != nil {
		if err := comp.Exit.Normalize(); err != nil {
			return nil, fmt.Errorf("exit animation: %w", err)
		}
	}

	return &comp, nil
}

func normalizeElement(el *Element) error {
	el.Text = strings.TrimSpace(el.Text)
	switch el.Split {
	case "", motion.ByChar, motion.ByWord:
	default:
		return fmt.Errorf("unknown split %q", el.Split)
	}
	if err := el.Animation.Normalize(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	return nil
}
