package pipeline

import (
	"errors"

	"github.com/solarlune/wireframe"
)

// Clip clips the Model's projected primitives against the square -1 <= x <= 1, -1 <= y <= 1. A LineSegment
// that crosses the square's edge is cut back at the edge, one boundary at a time in the order x = +1,
// x = -1, y = +1, y = -1, with the color at each cut interpolated along the segment. A Point outside the
// square is dropped.
//
// As with NearClip, the returned Model is new, synthesized vertices and colors are appended to its own lists,
// and primitives that are out of range or reference non-finite vertices are skipped.
func Clip(model *wireframe.Model) (*wireframe.Model, error) {
	return clip(model, defaultStageLog())
}

func clip(model *wireframe.Model, log stageLog) (*wireframe.Model, error) {

	out := stageCopy(model)

	var errs []error

	for _, p := range model.Primitives {

		if err := model.CheckPrimitive(p); err != nil {
			log.warn("skipping primitive", "stage", "clip", "error", err)
			errs = append(errs, err)
			continue
		}

		switch prim := p.(type) {

		case wireframe.Point:

			v := model.Vertices[prim.VertexIndex]

			if v.IsFinite() && inSquare(v) {
				log.message("clip: accept", "primitive", prim.String())
				out.Primitives = append(out.Primitives, prim)
			} else {
				log.message("clip: reject", "primitive", prim.String())
			}

		case wireframe.LineSegment:

			if clipped, ok := clipLine(out, prim, log); ok {
				out.Primitives = append(out.Primitives, clipped)
			}

		}

	}

	return out, errors.Join(errs...)

}

func inSquare(v wireframe.Vertex) bool {
	return v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1
}

// clipLine repeatedly clips the segment until it is either entirely inside the square or entirely outside
// of one of its edges. Each pass moves one endpoint exactly onto a boundary it violated, so this
// takes at most four passes.
func clipLine(out *wireframe.Model, ls wireframe.LineSegment, log stageLog) (wireframe.LineSegment, bool) {

	for {

		v0 := out.Vertices[ls.Vertex[0]]
		v1 := out.Vertices[ls.Vertex[1]]

		if !v0.IsFinite() || !v1.IsFinite() {
			log.message("clip: reject non-finite", "primitive", ls.String())
			return ls, false
		}

		if inSquare(v0) && inSquare(v1) {
			log.message("clip: trivial accept", "primitive", ls.String())
			return ls, true
		}

		if (v0.X > 1 && v1.X > 1) || (v0.X < -1 && v1.X < -1) || (v0.Y > 1 && v1.Y > 1) || (v0.Y < -1 && v1.Y < -1) {
			log.message("clip: trivial delete", "primitive", ls.String())
			return ls, false
		}

		ls = clipLineOnce(out, ls, v0, v1, log)

	}

}

// clipLineOnce cuts the segment at the first boundary (in priority order) that one of its endpoints lies
// outside of.
func clipLineOnce(out *wireframe.Model, ls wireframe.LineSegment, v0, v1 wireframe.Vertex, log stageLog) wireframe.LineSegment {

	var (
		outside  int
		boundary float64
		onX      bool // If the boundary is a vertical line (x = ±1); otherwise it's horizontal (y = ±1)
		equation string
	)

	switch {
	case v0.X > 1:
		outside, boundary, onX, equation = 0, 1, true, "x = +1"
	case v1.X > 1:
		outside, boundary, onX, equation = 1, 1, true, "x = +1"
	case v0.X < -1:
		outside, boundary, onX, equation = 0, -1, true, "x = -1"
	case v1.X < -1:
		outside, boundary, onX, equation = 1, -1, true, "x = -1"
	case v0.Y > 1:
		outside, boundary, onX, equation = 0, 1, false, "y = +1"
	case v1.Y > 1:
		outside, boundary, onX, equation = 1, 1, false, "y = +1"
	case v0.Y < -1:
		outside, boundary, onX, equation = 0, -1, false, "y = -1"
	default:
		outside, boundary, onX, equation = 1, -1, false, "y = -1"
	}

	inside := 1 - outside

	vO, vI := v0, v1
	if outside == 1 {
		vO, vI = v1, v0
	}

	var t float64
	if onX {
		t = (boundary - vO.X) / (vI.X - vO.X)
	} else {
		t = (boundary - vO.Y) / (vI.Y - vO.Y)
	}
	t = clampUnit(t)

	newVertex := vO.Lerp(vI, t)
	if onX {
		newVertex.X = boundary
	} else {
		newVertex.Y = boundary
	}

	cO := out.Colors[ls.Color[outside]]
	cI := out.Colors[ls.Color[inside]]
	newColor := cO.Lerp(cI, t)

	out.Vertices = append(out.Vertices, newVertex)
	out.Colors = append(out.Colors, newColor)

	ls.Vertex[outside] = len(out.Vertices) - 1
	ls.Color[outside] = len(out.Colors) - 1

	log.message("clip: clip off endpoint", "endpoint", outside, "at", equation, "t", t,
		"inside", vI.String(), "outside", vO.String(), "new", newVertex.String(),
		"color_inside", cI.String(), "color_outside", cO.String(), "color_new", newColor.String())

	return ls

}
