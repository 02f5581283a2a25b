// Package composition describes stats layouts declaratively and plans the
// style of every element at any frame.
package composition

import (
	"github.com/trentnixon/fixtura-remotion-version2-sub000/internal/motion"
)

// DefaultFPS is used when a composition does not set one.
const DefaultFPS = 30

// Composition is one layout: a title, a list of rows and an optional exit.
type Composition struct {
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	FPS         int                `yaml:"fps" json:"fps"`
	Duration    int                `yaml:"duration" json:"duration"`
	Palette     string             `yaml:"palette,omitempty" json:"palette,omitempty"`
	Font        string             `yaml:"font,omitempty" json:"font,omitempty"`
	Title       Element            `yaml:"title" json:"title"`
	Rows        RowSpec            `yaml:"rows" json:"rows"`
	Exit        *motion.Descriptor `yaml:"exit,omitempty" json:"exit,omitempty"`
	Sample      Data               `yaml:"sample,omitempty" json:"-"`
	Tags        []string           `yaml:"tags,omitempty" json:"tags,omitempty"`
	Source      string             `yaml:"-" json:"source"` // file path or "builtin"

	// fpsDefaulted is set when the definition left fps out.
	fpsDefaulted bool
}

// Element is a single animated text block.
type Element struct {
	Text      string            `yaml:"text" json:"text"`
	Animation motion.Descriptor `yaml:"animation" json:"animation"`
	// Split staggers the text per character or word using Animation.Stagger.
	Split motion.SplitMode `yaml:"split,omitempty" json:"split,omitempty"`
}

// RowSpec describes how each data row is labelled and animated.
type RowSpec struct {
	Template  string            `yaml:"template" json:"template"`
	Animation motion.Descriptor `yaml:"animation" json:"animation"`
	// Highlight names a row field; truthy rows use the highlight container.
	Highlight string `yaml:"highlight,omitempty" json:"highlight,omitempty"`
	MaxRows   int    `yaml:"max_rows,omitempty" json:"max_rows,omitempty"`
}

// Data is the content a composition is filled with.
type Data struct {
	Title map[string]any   `yaml:"title,omitempty" json:"title,omitempty"`
	Rows  []map[string]any `yaml:"rows,omitempty" json:"rows,omitempty"`
}

// UseDefaultFPS sets the frame rate of a composition that did not declare
// one. Declared rates and non-positive fps are left alone.
func (c *Composition) UseDefaultFPS(fps int) {
	if c.fpsDefaulted && fps > 0 {
		c.FPS = fps
	}
}

// Seconds is the composition length in seconds.
func (c *Composition) Seconds() float64 {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return float64(c.Duration) / float64(fps)
}
