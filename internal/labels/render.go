package labels

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"
	"text/template/parse"
)

// Funcs are available in every label template.
var Funcs = template.FuncMap{
	"default":  defaultValue,
	"truncate": truncateValue,
	"upper":    strings.ToUpper,
	"lower":    strings.ToLower,
	"ordinal":  func(v any) string { return Ordinal(toInt(v)) },
	"overs":    func(v any) string { return Overs(toInt(v)) },
	"score":    func(runs, wickets any) string { return Score(toInt(runs), toInt(wickets)) },
	"initials": func(v any) string { return Initials(stringify(v)) },
}

// Template is a parsed label template.
type Template struct {
	name   string
	parsed *template.Template
	// fields are the top-level keys the template reads from its data.
	fields []string
}

// Parse compiles a label template.
func Parse(name, text string) (*Template, error) {
	parsed, err := template.New(name).
		Funcs(Funcs).
		Option("missingkey=zero").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse label %q: %w", name, err)
	}
	return &Template{name: name, parsed: parsed, fields: topLevelFields(parsed)}, nil
}

// Render executes the template against vars.
func (t *Template) Render(vars map[string]any) (string, error) {
	if t == nil || t.parsed == nil {
		return "", fmt.Errorf("label template is required")
	}
	var out strings.Builder
	if err := t.parsed.Execute(&out, t.withBlanks(vars)); err != nil {
		return "", fmt.Errorf("render label %q: %w", t.name, err)
	}
	return strings.TrimSpace(out.String()), nil
}

// Render parses and executes text in one step.
func Render(text string, vars map[string]any) (string, error) {
	tmpl, err := Parse("label", text)
	if err != nil {
		return "", err
	}
	return tmpl.Render(vars)
}

// withBlanks copies vars with every field the template reads present, so a
// missing key renders as "" rather than "<no value>".
func (t *Template) withBlanks(vars map[string]any) map[string]any {
	data := make(map[string]any, len(vars)+len(t.fields))
	for _, f := range t.fields {
		data[f] = ""
	}
	for k, v := range vars {
		if v != nil {
			data[k] = v
		}
	}
	return data
}

func topLevelFields(tmpl *template.Template) []string {
	seen := map[string]bool{}
	var fields []string
	var walk func(parse.Node)
	walk = func(n parse.Node) {
		switch n := n.(type) {
		case *parse.ListNode:
			if n == nil {
				return
			}
			for _, child := range n.Nodes {
				walk(child)
			}
		case *parse.ActionNode:
			walk(n.Pipe)
		case *parse.PipeNode:
			if n == nil {
				return
			}
			for _, cmd := range n.Cmds {
				walk(cmd)
			}
		case *parse.CommandNode:
			for _, arg := range n.Args {
				walk(arg)
			}
		case *parse.ChainNode:
			walk(n.Node)
		case *parse.IfNode:
			walk(n.Pipe)
			walk(n.List)
			walk(n.ElseList)
		case *parse.RangeNode:
			walk(n.Pipe)
			walk(n.List)
			walk(n.ElseList)
		case *parse.WithNode:
			walk(n.Pipe)
			walk(n.List)
			walk(n.ElseList)
		case *parse.TemplateNode:
			walk(n.Pipe)
		case *parse.FieldNode:
			if name := n.Ident[0]; !seen[name] {
				seen[name] = true
				fields = append(fields, name)
			}
		}
	}
	for _, tpl := range tmpl.Templates() {
		if tpl.Tree != nil {
			walk(tpl.Tree.Root)
		}
	}
	return fields
}

// truncateValue takes the length first so it reads naturally in a pipeline:
// {{.team | truncate 18}}.
func truncateValue(n int, value any) string {
	return Truncate(stringify(value), n)
}

func defaultValue(def string, value any) string {
	if text := strings.TrimSpace(stringify(value)); text != "" {
		return text
	}
	return def
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// toInt reads numbers the way row data arrives: native ints, JSON floats,
// json.Number or numeric strings. Anything else is 0.
func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(math.Round(v))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(math.Round(f))
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}
