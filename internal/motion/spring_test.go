package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpringProgressStartsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, SpringProgress(0, 30, DefaultSpring))
	assert.Equal(t, 0.0, SpringProgress(-5, 30, DefaultSpring))
}

func TestSpringProgressSettles(t *testing.T) {
	assert.InDelta(t, 1.0, SpringProgress(90, 30, DefaultSpring), 0.01)
	assert.Equal(t, 1.0, SpringProgress(100_000, 30, DefaultSpring))
}

func TestSpringProgressOvershoots(t *testing.T) {
	peak := 0.0
	for frame := 1; frame <= 60; frame++ {
		if v := SpringProgress(frame, 30, DefaultSpring); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "underdamped spring should overshoot")
}

func TestSpringProgressDefaultsAndDeterminism(t *testing.T) {
	a := SpringProgress(12, 0, SpringConfig{})
	b := SpringProgress(12, DefaultFPS, DefaultSpring)
	assert.Equal(t, b, a)
	assert.Equal(t, a, SpringProgress(12, 0, SpringConfig{}))
}

func TestSpringProgressHeavyDampingDoesNotOvershoot(t *testing.T) {
	cfg := SpringConfig{Mass: 1, Stiffness: 100, Damping: 40}
	for frame := 1; frame <= 120; frame++ {
		v := SpringProgress(frame, 30, cfg)
		if v > 1+1e-9 {
			t.Fatalf("overdamped spring overshot at frame %d: %f", frame, v)
		}
	}
}
