package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescriptorNormalize(t *testing.T) {
	d := Descriptor{Kind: "fade-in-left", Duration: 15}
	require.NoError(t, d.Normalize())
	assert.Equal(t, KindFadeInLeft, d.Kind)
	assert.Equal(t, EasingEaseOut, d.Easing)

	d = Descriptor{Kind: "bounce"}
	require.NoError(t, d.Normalize())
	assert.Equal(t, EasingBounce, d.Easing)

	d = Descriptor{Kind: "spin"}
	assert.Error(t, d.Normalize())

	d = Descriptor{Kind: "fadeIn", Easing: "wobble"}
	assert.Error(t, d.Normalize())

	d = Descriptor{Kind: "fadeIn", Duration: -1}
	assert.Error(t, d.Normalize())
}

func TestDescriptorEvaluate(t *testing.T) {
	d := Descriptor{Kind: KindFadeIn, Delay: 10, Duration: 10, Easing: EasingLinear}

	assert.Equal(t, 0.0, d.Evaluate(5, 30).Opacity)
	assert.InDelta(t, 0.5, d.Evaluate(15, 30).Opacity, 1e-12)
	assert.Equal(t, Identity, d.Evaluate(25, 30))
}

func TestDescriptorNoneIsIdentity(t *testing.T) {
	for _, d := range []Descriptor{{}, {Kind: KindNone, Delay: 4, Duration: 9}} {
		for frame := -5; frame < 30; frame++ {
			assert.Equal(t, Identity, d.Evaluate(frame, 30))
		}
	}
}

func TestDescriptorForIndex(t *testing.T) {
	d := Descriptor{Kind: KindFadeInUp, Delay: 15, Duration: 10, Stagger: 5}
	assert.Equal(t, 15, d.ForIndex(0).Delay)
	assert.Equal(t, 30, d.ForIndex(3).Delay)
	assert.Equal(t, 40, d.ForIndex(3).EndFrame())
}

func TestDescriptorSpringUsesElapsedFrames(t *testing.T) {
	d := Descriptor{Kind: KindSpringScale, Delay: 20}

	assert.Equal(t, 0.0, d.Progress(20, 30))
	assert.Equal(t, SpringProgress(10, 30, DefaultSpring), d.Progress(30, 30))

	stiff := SpringConfig{Mass: 1, Stiffness: 300, Damping: 20}
	d.Spring = &stiff
	assert.Equal(t, SpringProgress(10, 30, stiff), d.Progress(30, 30))
}

func TestDescriptorYAML(t *testing.T) {
	src := `
kind: fadeInUp
delay: 5
duration: 12
easing: ease-in-out
distance: 48
stagger: 3
`
	var d Descriptor
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	require.NoError(t, d.Normalize())

	assert.Equal(t, KindFadeInUp, d.Kind)
	assert.Equal(t, EasingEaseInOut, d.Easing)
	assert.Equal(t, 48.0, d.Params.Distance)
	assert.Equal(t, 3, d.Stagger)
	assert.Equal(t, Window{Start: 5, End: 17, Easing: EasingEaseInOut}, d.Window())
}
