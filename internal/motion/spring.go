package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig describes a damped spring in physical terms.
type SpringConfig struct {
	Mass      float64 `json:"mass,omitempty" yaml:"mass,omitempty"`
	Stiffness float64 `json:"stiffness,omitempty" yaml:"stiffness,omitempty"`
	Damping   float64 `json:"damping,omitempty" yaml:"damping,omitempty"`
}

// DefaultSpring is a slightly underdamped spring that settles in about a second.
var DefaultSpring = SpringConfig{Mass: 1, Stiffness: 100, Damping: 10}

const (
	// DefaultFPS is used when a caller passes a non-positive frame rate.
	DefaultFPS = 30.0

	// maxSpringSeconds bounds the simulation; the spring is at rest long before.
	maxSpringSeconds = 10
)

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Mass <= 0 {
		c.Mass = DefaultSpring.Mass
	}
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultSpring.Stiffness
	}
	if c.Damping <= 0 {
		c.Damping = DefaultSpring.Damping
	}
	return c
}

// angular returns the harmonica parameters for the config.
func (c SpringConfig) angular() (frequency, dampingRatio float64) {
	frequency = math.Sqrt(c.Stiffness / c.Mass)
	dampingRatio = c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
	return frequency, dampingRatio
}

// SpringProgress simulates a spring released from 0 toward 1 and returns its
// position after elapsed frames at fps. Non-positive elapsed gives 0. The
// result may exceed 1 while the spring overshoots.
func SpringProgress(elapsed int, fps float64, cfg SpringConfig) float64 {
	if elapsed <= 0 {
		return 0
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	cfg = cfg.withDefaults()

	limit := int(fps * maxSpringSeconds)
	if elapsed > limit {
		return 1
	}

	frequency, ratio := cfg.angular()
	spring := harmonica.NewSpring(1/fps, frequency, ratio)

	pos, vel := 0.0, 0.0
	for i := 0; i < elapsed; i++ {
		pos, vel = spring.Update(pos, vel, 1)
	}
	return pos
}
