// Package motion converts frame numbers into animation progress and style deltas.
package motion

import (
	"math"
	"strings"
)

// Easing names a curve that shapes linear progress.
type Easing string

const (
	EasingLinear    Easing = "linear"
	EasingEase      Easing = "ease"
	EasingEaseIn    Easing = "easeIn"
	EasingEaseOut   Easing = "easeOut"
	EasingEaseInOut Easing = "easeInOut"
	EasingCubic     Easing = "cubic"
	EasingBounce    Easing = "bounce"
	EasingElastic   Easing = "elastic"
)

// Easings lists every supported easing in display order.
var Easings = []Easing{
	EasingLinear,
	EasingEase,
	EasingEaseIn,
	EasingEaseOut,
	EasingEaseInOut,
	EasingCubic,
	EasingBounce,
	EasingElastic,
}

// elasticBounciness controls how many oscillations the elastic curve makes.
const elasticBounciness = 1.0

var easingFuncs = map[Easing]func(float64) float64{
	EasingLinear:    func(t float64) float64 { return t },
	EasingEase:      newBezier(0.25, 0.1, 0.25, 1.0).at,
	EasingEaseIn:    newBezier(0.42, 0, 1, 1).at,
	EasingEaseOut:   newBezier(0, 0, 0.58, 1).at,
	EasingEaseInOut: newBezier(0.42, 0, 0.58, 1).at,
	EasingCubic:     func(t float64) float64 { return t * t * t },
	EasingBounce:    bounce,
	EasingElastic:   elastic,
}

// ParseEasing normalizes an easing name. Matching is case-insensitive and
// accepts kebab/snake case ("ease-in-out"). The second return is false for
// unknown names.
func ParseEasing(name string) (Easing, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if key == "" {
		return EasingLinear, true
	}
	for _, e := range Easings {
		if strings.ToLower(string(e)) == key {
			return e, true
		}
	}
	return EasingLinear, false
}

// Valid reports whether e is a known easing.
func (e Easing) Valid() bool {
	_, ok := easingFuncs[e]
	return ok
}

// Overshoots reports whether the curve may leave [0,1] between its endpoints.
func (e Easing) Overshoots() bool {
	return e == EasingElastic
}

// ApplyEasing shapes linear progress t with the given easing. Inputs outside
// [0,1] are pinned to the endpoints, so f(0) == 0 and f(1) == 1 for every
// kind. Interior overshoot (elastic) is preserved. Unknown kinds are linear.
func ApplyEasing(t float64, e Easing) float64 {
	if math.IsNaN(t) || t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	fn, ok := easingFuncs[e]
	if !ok {
		return t
	}
	return fn(t)
}

func bounce(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func elastic(t float64) float64 {
	p := elasticBounciness * math.Pi
	return 1 - math.Pow(math.Cos(t*math.Pi/2), 3)*math.Cos(t*p)
}

// bezier is a CSS cubic-bezier timing function with fixed endpoints (0,0) and (1,1).
type bezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newBezier(x1, y1, x2, y2 float64) bezier {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	return bezier{
		ax: 1 - cx - bx, bx: bx, cx: cx,
		ay: 1 - cy - by, by: by, cy: cy,
	}
}

func (b bezier) sampleX(t float64) float64 { return ((b.ax*t+b.bx)*t + b.cx) * t }
func (b bezier) sampleY(t float64) float64 { return ((b.ay*t+b.by)*t + b.cy) * t }
func (b bezier) slopeX(t float64) float64  { return (3*b.ax*t+2*b.bx)*t + b.cx }

// solveX finds the curve parameter for x: Newton first, bisection when the
// slope is too flat to trust.
func (b bezier) solveX(x float64) float64 {
	const epsilon = 1e-7

	t := x
	for i := 0; i < 8; i++ {
		dx := b.sampleX(t) - x
		if math.Abs(dx) < epsilon {
			return t
		}
		d := b.slopeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64 && lo < hi; i++ {
		v := b.sampleX(t)
		if math.Abs(v-x) < epsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func (b bezier) at(x float64) float64 {
	return b.sampleY(b.solveX(x))
}
