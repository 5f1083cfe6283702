package pipeline

import (
	"errors"
	"math"

	"github.com/solarlune/wireframe"
)

// pixelScale is the divisor used when mapping [-1, 1] onto a viewport's pixels. It is a little larger than 2 so
// that x = 1 (or y = 1) still rounds to the last pixel rather than one past it.
const pixelScale = 2.001

// Rasterize draws the Model's clipped, projected primitives into the Viewport. Vertex coordinates are
// expected to already lie within [-1, 1] x [-1, 1]; anything that still lands outside of the Viewport
// is not written.
//
// Lines are drawn with a DDA along their longer axis, interpolating color from one end to the other. With
// anti-aliasing on, each sample is split between the two pixels nearest it, blending the line color toward
// the Viewport's background color by the sample's distance to each. With gamma correction on, each pixel's
// R, G, and B channels are raised to 1 / GammaValue before being written. Points are drawn as flat squares
// of side 2 * Radius + 1.
func Rasterize(model *wireframe.Model, vp Viewport, options RenderOptions) error {
	return rasterize(model, vp, options, defaultStageLog())
}

type rasterizer struct {
	vp      Viewport
	w, h    int
	options RenderOptions
	log     stageLog
}

// set writes one pixel, given in viewport coordinates, gamma correcting it if requested. Writes outside of
// the viewport are dropped.
func (r rasterizer) set(xpp, ypp float64, x, y int, color wireframe.Color) {

	if r.options.Gamma {
		color = color.Gamma(r.options.gammaExponent())
	} else {
		color = color.Clamped()
	}

	clipped := x < 0 || x >= r.w || y < 0 || y >= r.h

	r.log.pixel(xpp, ypp, x, y, color, clipped)

	if !clipped {
		r.vp.SetPixel(x, y, color)
	}

}

func rasterize(model *wireframe.Model, vp Viewport, options RenderOptions, log stageLog) error {

	r := rasterizer{
		vp:      vp,
		w:       vp.Width(),
		h:       vp.Height(),
		options: options,
		log:     log,
	}

	var errs []error

	for _, p := range model.Primitives {

		if err := model.CheckPrimitive(p); err != nil {
			log.warn("skipping primitive", "stage", "rasterize", "error", err)
			errs = append(errs, err)
			continue
		}

		switch prim := p.(type) {
		case wireframe.Point:
			r.point(model, prim)
		case wireframe.LineSegment:
			r.line(model, prim)
		}

	}

	return errors.Join(errs...)

}

// toPixel maps a coordinate in [-1, 1] to pixel space for a viewport dimension of the given size.
func toPixel(v float64, size int) float64 {
	return 0.5 + float64(size)/pixelScale*(v+1)
}

func (r rasterizer) point(model *wireframe.Model, pt wireframe.Point) {

	v := model.Vertices[pt.VertexIndex]
	if !v.IsFinite() {
		return
	}

	c := model.Colors[pt.ColorIndex]

	xpp := toPixel(v.X, r.w)
	ypp := toPixel(v.Y, r.h)
	x := int(math.Round(xpp))
	y := int(math.Round(ypp))

	radius := max(pt.Radius, 0)

	// Only the part of the square that lands inside the viewport is visited.
	x0, x1 := max(x-radius, 1), min(x+radius, r.w)
	y0, y1 := max(y-radius, 1), min(y+radius, r.h)

	if x0 != x-radius || x1 != x+radius || y0 != y-radius || y1 != y+radius {
		r.log.message("point clipped to viewport", "model", model.Name, "x", x, "y", y, "radius", radius)
	}

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			r.set(xpp, ypp, px-1, r.h-py, c)
		}
	}

}

func (r rasterizer) line(model *wireframe.Model, ls wireframe.LineSegment) {

	v0 := model.Vertices[ls.Vertex[0]]
	v1 := model.Vertices[ls.Vertex[1]]

	if !v0.IsFinite() || !v1.IsFinite() {
		return
	}

	c0 := model.Colors[ls.Color[0]]
	c1 := model.Colors[ls.Color[1]]

	bg := r.vp.BackgroundColor()

	// Pixel-space endpoints, rounded to the nearest pixel center.
	x0pp, y0pp := toPixel(v0.X, r.w), toPixel(v0.Y, r.h)
	x1pp, y1pp := toPixel(v1.X, r.w), toPixel(v1.Y, r.h)

	r.log.message("rasterize line", "x0_pp", x0pp, "y0_pp", y0pp, "x1_pp", x1pp, "y1_pp", y1pp)

	x0, y0 := math.Round(x0pp), math.Round(y0pp)
	x1, y1 := math.Round(x1pp), math.Round(y1pp)

	if x0 == x1 && y0 == y1 {
		r.set(x0pp, y0pp, int(x0)-1, r.h-int(y0), c0)
		return
	}

	// Step along whichever axis the line is longer in.
	transposed := false
	if math.Abs(y1-y0) > math.Abs(x1-x0) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		transposed = true
	}

	if x1 < x0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		c0, c1 = c1, c0
	}

	denom := x1 - x0
	m := (y1 - y0) / denom

	r.log.message("rasterize line", "m", m, "transposed", transposed)

	y := y0

	for x := x0; x < x1; x, y = x+1, y+m {

		c := c0.Lerp(c1, (x-x0)/denom)

		if r.options.AntiAliasing {

			yLow := math.Floor(y)
			yHi := yLow + 1
			weight := y - yLow

			low := c.Lerp(bg, weight)
			hi := bg.Lerp(c, weight)

			if !transposed {
				r.set(x, y, int(x)-1, r.h-int(yLow), low)
				r.set(x, y, int(x)-1, r.h-int(yHi), hi)
			} else {
				r.set(y, x, int(yLow)-1, r.h-int(x), low)
				r.set(y, x, int(yHi)-1, r.h-int(x), hi)
			}

		} else {

			if !transposed {
				r.set(x, y, int(x)-1, r.h-int(math.Round(y)), c)
			} else {
				r.set(y, x, int(math.Round(y))-1, r.h-int(x), c)
			}

		}

	}

	// The loop stops one pixel short; finish the line with its far endpoint.
	if !transposed {
		r.set(x1, y1, int(x1)-1, r.h-int(y1), c1)
	} else {
		r.set(y1, x1, int(y1)-1, r.h-int(x1), c1)
	}

}
