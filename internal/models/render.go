// Package models defines the records fixtura persists.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Render records one planned run of a composition against a theme.
type Render struct {
	ID          string    `json:"id"`
	Composition string    `json:"composition"`
	Theme       string    `json:"theme"`
	Palette     string    `json:"palette"`
	FPS         int       `json:"fps"`
	Frames      int       `json:"frames"`
	FirstFrame  int       `json:"first_frame"`
	LastFrame   int       `json:"last_frame"`
	Fingerprint string    `json:"fingerprint"`
	DataSource  string    `json:"data_source,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Plan optionally holds the serialized frame plans.
	Plan json.RawMessage `json:"plan,omitempty"`
}

// Validate checks the fields a render must carry.
func (r *Render) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Composition) == "" {
		missing = append(missing, "composition")
	}
	if strings.TrimSpace(r.Theme) == "" {
		missing = append(missing, "theme")
	}
	if strings.TrimSpace(r.Palette) == "" {
		missing = append(missing, "palette")
	}
	if strings.TrimSpace(r.Fingerprint) == "" {
		missing = append(missing, "fingerprint")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if r.FPS <= 0 || r.Frames < 0 || r.LastFrame < r.FirstFrame {
		return &ValidationError{Message: "fps must be positive and the frame range ordered"}
	}
	return nil
}

// Seconds is the render length in seconds.
func (r *Render) Seconds() float64 {
	if r.FPS <= 0 {
		return 0
	}
	return float64(r.LastFrame-r.FirstFrame+1) / float64(r.FPS)
}

// ValidationError describes an invalid record.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return "missing required fields: " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

// RenderQuery filters render history.
type RenderQuery struct {
	Composition *string
	Theme       *string
	Since       *time.Time
	Limit       int
}
