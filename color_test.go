package wireframe

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorLerp(t *testing.T) {

	red := NewColorRGB(1, 0, 0)
	blue := NewColorRGB(0, 0, 1)

	assert.Equal(t, red, red.Lerp(blue, 0))
	assert.Equal(t, blue, red.Lerp(blue, 1))
	assert.Equal(t, NewColorRGB(0.5, 0, 0.5), red.Lerp(blue, 0.5))

}

func TestColorGamma(t *testing.T) {

	c := NewColorRGB(0.25, 1, 0).Gamma(1 / 2.2)

	assert.InDelta(t, math.Pow(0.25, 1/2.2), c.R, 1e-12)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 0.0, c.B)
	assert.Equal(t, 1.0, c.A, "alpha is left alone")

}

func TestColorConversions(t *testing.T) {

	r, g, b, a := NewColor(1, 0.5, 2, -1).RGBA8()
	assert.Equal(t, [4]uint8{255, 128, 255, 0}, [4]uint8{r, g, b, a})

	assert.Equal(t, NewColorRGB(1, 0, 0), NewColorFromBytes(255, 0, 0))

	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, color.NRGBAModel.Convert(NewColorRGB(1, 0, 0)))

	assert.Equal(t, NewColor(0, 0, 0, 0), NewColor(math.NaN(), -3, 0, 0).Clamped())

	assert.False(t, NewColor(math.Inf(1), 0, 0, 1).IsFinite())
	assert.True(t, DefaultColor.IsFinite())

}
