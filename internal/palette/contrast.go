package palette

// WCAG contrast thresholds.
const (
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
	ContrastAAA     = 7.0
)

const (
	// adjustStep is the lightness change per adjustment iteration, in points.
	adjustStep = 5.0
	// maxAdjustIterations bounds the adjustment loop.
	maxAdjustIterations = 20
)

// ContrastSafety reports how readable text on a colour can be made.
type ContrastSafety struct {
	Color                 Color   `json:"color"`
	SafeColor             Color   `json:"safe_color"`
	ContrastRatio         float64 `json:"contrast_ratio"`
	IsAccessible          bool    `json:"is_accessible"`
	IsLargeTextAccessible bool    `json:"is_large_text_accessible"`
	AdjustedColor         *Color  `json:"adjusted_color,omitempty"`
}

// ContrastRatio is the WCAG contrast ratio between a and b, in [1,21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ReadableOn returns black or white, whichever contrasts more with bg.
// Ties go to white.
func ReadableOn(bg Color) Color {
	if ContrastRatio(bg, Black) > ContrastRatio(bg, White) {
		return Black
	}
	return White
}

// ResolveContrastSafeText returns preferred when it reaches AA contrast on bg,
// and otherwise black or white, whichever contrasts more.
func ResolveContrastSafeText(bg, preferred Color) Color {
	if ContrastRatio(bg, preferred) >= ContrastAA {
		return preferred
	}
	return ReadableOn(bg)
}

// CalculateContrastSafety evaluates c against the AA threshold.
func CalculateContrastSafety(c Color) ContrastSafety {
	return CalculateContrastSafetyFor(c, ContrastAA)
}

// CalculateContrastSafetyFor evaluates c against white and black, picks the
// stronger as SafeColor and, when the ratio misses target, walks c's
// lightness away from SafeColor in fixed steps. The walk is bounded; when it
// cannot reach target the best candidate seen is reported.
func CalculateContrastSafetyFor(c Color, target float64) ContrastSafety {
	safe := ReadableOn(c)
	ratio := ContrastRatio(c, safe)

	result := ContrastSafety{
		Color:                 c,
		SafeColor:             safe,
		ContrastRatio:         roundTo(ratio, 2),
		IsAccessible:          ratio >= target,
		IsLargeTextAccessible: ratio >= ContrastAALarge,
	}
	if result.IsAccessible {
		return result
	}

	adjusted := adjustForContrast(c, safe, target)
	result.AdjustedColor = &adjusted
	return result
}

// adjustForContrast darkens c when against is white and lightens it when
// against is black, stopping at the first candidate that reaches target.
func adjustForContrast(c, against Color, target float64) Color {
	step := adjustStep
	if against == White {
		step = -adjustStep
	}

	best, bestRatio := c, ContrastRatio(c, against)
	candidate := c
	for i := 0; i < maxAdjustIterations; i++ {
		candidate = candidate.Lighten(step)
		r := ContrastRatio(candidate, against)
		if r > bestRatio {
			best, bestRatio = candidate, r
		}
		if r >= target {
			return candidate
		}
	}
	return best
}
