package pipeline

import (
	"errors"

	"github.com/solarlune/wireframe"
)

// NearClip clips the Model's primitives against the Camera's near plane z = n (where n = -near), keeping
// only what lies on or beyond it (z <= n). A LineSegment crossing the plane has its near endpoint replaced by
// the point where it meets the plane, with the endpoint's color interpolated to match. A Point is either kept
// or dropped whole.
//
// The returned Model is new; vertices and colors created by clipping are appended to its own copies of the
// input's lists. Primitives referencing out-of-range indices or non-finite vertices are skipped; each
// out-of-range primitive is reported as a *wireframe.StructuralError in the returned (joined) error.
func NearClip(model *wireframe.Model, camera *wireframe.Camera) (*wireframe.Model, error) {
	return nearClip(model, camera, defaultStageLog())
}

func nearClip(model *wireframe.Model, camera *wireframe.Camera, log stageLog) (*wireframe.Model, error) {

	n := camera.NearPlane()

	out := stageCopy(model)

	var errs []error

	for _, p := range model.Primitives {

		if err := model.CheckPrimitive(p); err != nil {
			log.warn("skipping primitive", "stage", "near clip", "error", err)
			errs = append(errs, err)
			continue
		}

		switch prim := p.(type) {

		case wireframe.Point:

			v := model.Vertices[prim.VertexIndex]

			if v.IsFinite() && v.Z <= n {
				log.message("near clip: accept", "primitive", prim.String())
				out.Primitives = append(out.Primitives, prim)
			} else {
				log.message("near clip: reject", "primitive", prim.String())
			}

		case wireframe.LineSegment:

			if clipped, ok := nearClipLine(out, prim, n, log); ok {
				out.Primitives = append(out.Primitives, clipped)
			}

		}

	}

	return out, errors.Join(errs...)

}

// nearClipLine clips a LineSegment (whose indices have been checked) against the plane z = n, appending any
// new vertex and color to out's lists.
func nearClipLine(out *wireframe.Model, ls wireframe.LineSegment, n float64, log stageLog) (wireframe.LineSegment, bool) {

	v0 := out.Vertices[ls.Vertex[0]]
	v1 := out.Vertices[ls.Vertex[1]]

	if !v0.IsFinite() || !v1.IsFinite() {
		log.message("near clip: reject non-finite", "primitive", ls.String())
		return ls, false
	}

	if v0.Z <= n && v1.Z <= n {
		log.message("near clip: trivial accept", "primitive", ls.String())
		return ls, true
	}

	if v0.Z > n && v1.Z > n {
		log.message("near clip: trivial delete", "primitive", ls.String())
		return ls, false
	}

	// Exactly one endpoint is in front of the near plane.
	outside := 0
	if v1.Z > n {
		outside = 1
	}
	inside := 1 - outside

	vO, vI := out.Vertices[ls.Vertex[outside]], out.Vertices[ls.Vertex[inside]]
	cO, cI := out.Colors[ls.Color[outside]], out.Colors[ls.Color[inside]]

	t := clampUnit((n - vO.Z) / (vI.Z - vO.Z))

	newVertex := vO.Lerp(vI, t)
	newVertex.Z = n
	newColor := cO.Lerp(cI, t)

	out.Vertices = append(out.Vertices, newVertex)
	out.Colors = append(out.Colors, newColor)

	ls.Vertex[outside] = len(out.Vertices) - 1
	ls.Color[outside] = len(out.Colors) - 1

	log.message("near clip: clip", "endpoint", outside, "t", t, "vertex", newVertex.String(), "color", newColor.String())

	return ls, true

}

// clampUnit clamps t to [0, 1].
func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// stageCopy returns a new Model carrying copies of the given Model's vertex and color lists and an empty
// primitive list, ready for a clipping stage to fill.
func stageCopy(model *wireframe.Model) *wireframe.Model {
	return &wireframe.Model{
		Name:       model.Name,
		Visible:    model.Visible,
		Vertices:   append(make([]wireframe.Vertex, 0, len(model.Vertices)+2), model.Vertices...),
		Colors:     append(make([]wireframe.Color, 0, len(model.Colors)+2), model.Colors...),
		Primitives: make([]wireframe.Primitive, 0, len(model.Primitives)),
	}
}
