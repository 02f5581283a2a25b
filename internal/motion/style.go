package motion

import (
	"fmt"
	"math"
	"strings"
)

// Kind names an animation preset.
type Kind string

const (
	KindNone         Kind = "none"
	KindFadeIn       Kind = "fadeIn"
	KindFadeOut      Kind = "fadeOut"
	KindFadeInUp     Kind = "fadeInUp"
	KindFadeInDown   Kind = "fadeInDown"
	KindFadeInLeft   Kind = "fadeInLeft"
	KindFadeInRight  Kind = "fadeInRight"
	KindScaleIn      Kind = "scaleIn"
	KindTypewriter   Kind = "typewriter"
	KindSpringFadeIn Kind = "springFadeIn"
	KindSpringScale  Kind = "springScale"
	KindBounce       Kind = "bounce"
	KindElastic      Kind = "elastic"
)

// Kinds lists every animation kind.
var Kinds = []Kind{
	KindNone,
	KindFadeIn,
	KindFadeOut,
	KindFadeInUp,
	KindFadeInDown,
	KindFadeInLeft,
	KindFadeInRight,
	KindScaleIn,
	KindTypewriter,
	KindSpringFadeIn,
	KindSpringScale,
	KindBounce,
	KindElastic,
}

// DefaultDistance is the travel in pixels for slide-style kinds.
const DefaultDistance = 20.0

// ParseKind normalizes an animation kind name. Empty input is KindNone.
func ParseKind(name string) (Kind, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if key == "" {
		return KindNone, true
	}
	for _, k := range Kinds {
		if strings.ToLower(string(k)) == key {
			return k, true
		}
	}
	return KindNone, false
}

// IsSpring reports whether the kind is driven by the spring simulation.
func (k Kind) IsSpring() bool {
	return k == KindSpringFadeIn || k == KindSpringScale
}

// defaultEasing is used when a descriptor leaves easing empty.
func (k Kind) defaultEasing() Easing {
	switch k {
	case KindBounce:
		return EasingBounce
	case KindElastic:
		return EasingElastic
	case KindTypewriter:
		return EasingLinear
	default:
		return EasingEaseOut
	}
}

// Params tune the magnitude of a kind.
type Params struct {
	// Distance is the slide travel in pixels. Zero means DefaultDistance.
	Distance float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	// FromScale is the starting scale for scale kinds.
	FromScale float64 `json:"from_scale,omitempty" yaml:"from_scale,omitempty"`
}

func (p Params) distance() float64 {
	if p.Distance == 0 {
		return DefaultDistance
	}
	return p.Distance
}

// Style is the visual delta an animation applies at one frame.
type Style struct {
	Opacity    float64 `json:"opacity"`
	TranslateX float64 `json:"translate_x_px"`
	TranslateY float64 `json:"translate_y_px"`
	Scale      float64 `json:"scale"`
	// ClipRight is the percentage of the element hidden from the right edge.
	ClipRight float64 `json:"clip_right_pct"`
}

// Identity is the untouched style: opaque, in place, unscaled, unclipped.
var Identity = Style{Opacity: 1, Scale: 1}

// IsIdentity reports whether s leaves the element unchanged.
func (s Style) IsIdentity() bool {
	return s == Identity
}

// Combine layers o over s. Opacity and scale multiply, offsets add and the
// larger clip wins.
func (s Style) Combine(o Style) Style {
	return Style{
		Opacity:    s.Opacity * o.Opacity,
		TranslateX: s.TranslateX + o.TranslateX,
		TranslateY: s.TranslateY + o.TranslateY,
		Scale:      s.Scale * o.Scale,
		ClipRight:  math.Max(s.ClipRight, o.ClipRight),
	}
}

// CSS renders the style as inline CSS declarations.
func (s Style) CSS() string {
	parts := []string{fmt.Sprintf("opacity: %.3f", s.Opacity)}

	var transforms []string
	if s.TranslateX != 0 || s.TranslateY != 0 {
		transforms = append(transforms, fmt.Sprintf("translate(%.2fpx, %.2fpx)", s.TranslateX, s.TranslateY))
	}
	if s.Scale != 1 {
		transforms = append(transforms, fmt.Sprintf("scale(%.3f)", s.Scale))
	}
	if len(transforms) > 0 {
		parts = append(parts, "transform: "+strings.Join(transforms, " "))
	}
	if s.ClipRight > 0 {
		parts = append(parts, fmt.Sprintf("clip-path: inset(0 %.2f%% 0 0)", s.ClipRight))
	}
	return strings.Join(parts, "; ")
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// DeriveStyle maps progress to a style for kind. Opacity is clamped to [0,1];
// offsets and scale keep any overshoot in progress. KindNone and unknown
// kinds return Identity.
func DeriveStyle(progress float64, kind Kind, p Params) Style {
	s := Identity
	d := p.distance()
	remaining := 1 - progress

	switch kind {
	case KindFadeIn:
		s.Opacity = clamp01(progress)
	case KindFadeOut:
		s.Opacity = clamp01(remaining)
	case KindFadeInUp, KindSpringFadeIn:
		s.Opacity = clamp01(progress)
		s.TranslateY = d * remaining
	case KindFadeInDown:
		s.Opacity = clamp01(progress)
		s.TranslateY = -d * remaining
	case KindFadeInLeft:
		s.Opacity = clamp01(progress)
		s.TranslateX = -d * remaining
	case KindFadeInRight:
		s.Opacity = clamp01(progress)
		s.TranslateX = d * remaining
	case KindScaleIn, KindElastic:
		s.Opacity = clamp01(progress)
		s.Scale = p.FromScale + (1-p.FromScale)*progress
	case KindSpringScale:
		s.Opacity = clamp01(progress)
		s.Scale = progress
	case KindTypewriter:
		s.ClipRight = 100 * clamp01(remaining)
	case KindBounce:
		s.Opacity = clamp01(progress)
		s.TranslateY = -d * remaining
	}
	return s
}
