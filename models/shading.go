package models

import (
	"math"
	"math/rand"

	"github.com/solarlune/wireframe"
)

// SetColor colors the whole Model with one color. A Model without colors gets one per vertex; otherwise
// every existing color is replaced.
func SetColor(model *wireframe.Model, color wireframe.Color) {
	if len(model.Colors) == 0 {
		for range model.Vertices {
			model.AddColor(color)
		}
		return
	}
	for i := range model.Colors {
		model.Colors[i] = color
	}
}

// RandomColor returns an opaque color with random R, G, and B channels drawn from rng.
func RandomColor(rng *rand.Rand) wireframe.Color {
	return wireframe.NewColorRGB(rng.Float64(), rng.Float64(), rng.Float64())
}

// SetRandomColor replaces every color in the Model (or gives it one per vertex, if it has none) with a
// random color drawn from rng.
func SetRandomColor(model *wireframe.Model, rng *rand.Rand) {
	if len(model.Colors) == 0 {
		for range model.Vertices {
			model.AddColor(RandomColor(rng))
		}
		return
	}
	for i := range model.Colors {
		model.Colors[i] = RandomColor(rng)
	}
}

// SetRandomVertexColor gives every vertex its own random color, and points every primitive's color indices
// at the colors of its vertices, so colors blend along line segments.
func SetRandomVertexColor(model *wireframe.Model, rng *rand.Rand) {

	model.Colors = model.Colors[:0]
	for range model.Vertices {
		model.AddColor(RandomColor(rng))
	}

	for i, p := range model.Primitives {
		switch prim := p.(type) {
		case wireframe.Point:
			prim.ColorIndex = prim.VertexIndex
			model.Primitives[i] = prim
		case wireframe.LineSegment:
			prim.Color = prim.Vertex
			model.Primitives[i] = prim
		}
	}

}

// SetRandomPrimitiveColor gives every primitive its own random, flat color.
func SetRandomPrimitiveColor(model *wireframe.Model, rng *rand.Rand) {

	model.Colors = model.Colors[:0]

	for i, p := range model.Primitives {
		model.AddColor(RandomColor(rng))
		c := len(model.Colors) - 1
		model.Primitives[i] = recolor(p, c, c)
	}

}

// SetRainbowPrimitiveColors colors the Model's primitives around the color wheel, in draw order; each
// end of each line segment gets its own hue, so every segment blends from one hue to the next.
func SetRainbowPrimitiveColors(model *wireframe.Model) {

	model.Colors = model.Colors[:0]

	count := 0
	for _, p := range model.Primitives {
		count += len(p.ColorIndices())
	}

	for i, p := range model.Primitives {
		first := len(model.Colors)
		for range p.ColorIndices() {
			model.AddColor(Hue(float64(len(model.Colors)) / float64(max(count, 1))))
		}
		model.Primitives[i] = recolor(p, first, len(model.Colors)-1)
	}

}

// recolor returns a copy of the Primitive using color index c0 (and c1, for the second end of a line segment).
func recolor(p wireframe.Primitive, c0, c1 int) wireframe.Primitive {
	switch prim := p.(type) {
	case wireframe.Point:
		prim.ColorIndex = c0
		return prim
	case wireframe.LineSegment:
		prim.Color = [2]int{c0, c1}
		return prim
	}
	return p
}

// Hue returns the fully saturated color at the given position around the color wheel, where 0 (and 1) is red,
// 1/3 is green, and 2/3 is blue.
func Hue(h float64) wireframe.Color {

	h = h - math.Floor(h)
	h6 := h * 6
	x := 1 - math.Abs(math.Mod(h6, 2)-1)

	switch int(h6) {
	case 0:
		return wireframe.NewColorRGB(1, x, 0)
	case 1:
		return wireframe.NewColorRGB(x, 1, 0)
	case 2:
		return wireframe.NewColorRGB(0, 1, x)
	case 3:
		return wireframe.NewColorRGB(0, x, 1)
	case 4:
		return wireframe.NewColorRGB(x, 0, 1)
	default:
		return wireframe.NewColorRGB(1, 0, x)
	}

}
