package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgressLinear(t *testing.T) {
	w := NewWindow(10, 20, EasingLinear)

	tests := []struct {
		name  string
		frame int
		want  float64
	}{
		{"before start", 5, 0},
		{"at start", 10, 0},
		{"midpoint", 15, 0.5},
		{"at end", 20, 1},
		{"after end", 25, 1},
		{"far past end", 10_000, 1},
		{"negative frame", -40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeProgress(tt.frame, w), 1e-12)
		})
	}
}

func TestComputeProgressPinnedForAllEasings(t *testing.T) {
	for _, e := range Easings {
		w := NewWindow(0, 30, e)
		assert.Equal(t, 0.0, ComputeProgress(-1, w), e)
		assert.Equal(t, 0.0, ComputeProgress(0, w), e)
		assert.Equal(t, 1.0, ComputeProgress(30, w), e)
		assert.Equal(t, 1.0, ComputeProgress(300, w), e)
	}
}

func TestComputeProgressZeroLengthWindow(t *testing.T) {
	w := NewWindow(12, 12, EasingEaseOut)

	assert.Equal(t, 0.0, ComputeProgress(11, w))
	assert.Equal(t, 1.0, ComputeProgress(12, w))
	assert.Equal(t, 1.0, ComputeProgress(13, w))
}

func TestNewWindowCollapsesInvertedRange(t *testing.T) {
	w := NewWindow(20, 10, EasingLinear)
	assert.Equal(t, 20, w.Start)
	assert.Equal(t, 20, w.End)
	assert.Equal(t, 0, w.Duration())

	w = WindowFor(5, -8, EasingLinear)
	assert.Equal(t, Window{Start: 5, End: 5, Easing: EasingLinear}, w)
	assert.Equal(t, 1.0, w.Progress(5))
}

func TestNewWindowUnknownEasingFallsBack(t *testing.T) {
	w := NewWindow(0, 10, Easing("nope"))
	assert.Equal(t, EasingLinear, w.Easing)
}

func TestComputeProgressNegativeDelay(t *testing.T) {
	w := WindowFor(-10, 20, EasingLinear)
	assert.InDelta(t, 0.5, ComputeProgress(0, w), 1e-12)
	assert.Equal(t, 1.0, ComputeProgress(10, w))
}

func TestComputeProgressIsIdempotent(t *testing.T) {
	w := NewWindow(3, 47, EasingEaseInOut)
	for frame := 0; frame < 50; frame++ {
		assert.Equal(t, ComputeProgress(frame, w), ComputeProgress(frame, w))
	}
}
