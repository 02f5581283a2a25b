package motion

import "fmt"

// Descriptor is a declarative animation: what to do, when, and how fast.
type Descriptor struct {
	Kind     Kind          `json:"kind" yaml:"kind"`
	Delay    int           `json:"delay" yaml:"delay"`
	Duration int           `json:"duration" yaml:"duration"`
	Easing   Easing        `json:"easing,omitempty" yaml:"easing,omitempty"`
	Spring   *SpringConfig `json:"spring,omitempty" yaml:"spring,omitempty"`
	Params   Params        `json:"params,omitempty" yaml:",inline"`

	// Stagger is the per-item delay when the descriptor animates a list.
	Stagger int `json:"stagger,omitempty" yaml:"stagger,omitempty"`
}

// Normalize canonicalizes kind and easing names and fills defaults. It
// returns an error for names it does not recognize.
func (d *Descriptor) Normalize() error {
	kind, ok := ParseKind(string(d.Kind))
	if !ok {
		return fmt.Errorf("unknown animation kind %q", d.Kind)
	}
	d.Kind = kind

	if d.Easing == "" {
		d.Easing = kind.defaultEasing()
	} else {
		easing, ok := ParseEasing(string(d.Easing))
		if !ok {
			return fmt.Errorf("unknown easing %q", d.Easing)
		}
		d.Easing = easing
	}

	if d.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if d.Stagger < 0 {
		return fmt.Errorf("stagger must not be negative")
	}
	return nil
}

func (d Descriptor) easing() Easing {
	if d.Easing == "" {
		return d.Kind.defaultEasing()
	}
	return d.Easing
}

// Window returns the frame window the descriptor covers.
func (d Descriptor) Window() Window {
	return WindowFor(d.Delay, d.Duration, d.easing())
}

// ForIndex returns the descriptor for the i-th staggered item.
func (d Descriptor) ForIndex(i int) Descriptor {
	d.Delay += i * d.Stagger
	return d
}

// Progress returns the animation progress at frame. Spring kinds simulate the
// spring from Delay; all others interpolate across Window.
func (d Descriptor) Progress(frame int, fps float64) float64 {
	if d.Kind.IsSpring() {
		cfg := DefaultSpring
		if d.Spring != nil {
			cfg = *d.Spring
		}
		return SpringProgress(frame-d.Delay, fps, cfg)
	}
	return ComputeProgress(frame, d.Window())
}

// Evaluate returns the style at frame.
func (d Descriptor) Evaluate(frame int, fps float64) Style {
	if d.Kind == "" || d.Kind == KindNone {
		return Identity
	}
	return DeriveStyle(d.Progress(frame, fps), d.Kind, d.Params)
}

// EndFrame is the first frame at which a non-spring animation is complete.
func (d Descriptor) EndFrame() int {
	return d.Window().End
}
