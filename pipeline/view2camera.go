package pipeline

import "github.com/solarlune/wireframe"

// ViewToCamera maps the Camera's view volume onto the normalized one the later stages are written against.
// For a perspective Camera the view rectangle at the near plane is skewed and scaled so the frustum's sides
// become the planes x = ±z and y = ±z; for an orthographic Camera the view rectangle is translated and scaled
// to [-1, 1] x [-1, 1]. Z coordinates are left unchanged in both cases.
func ViewToCamera(model *wireframe.Model, camera *wireframe.Camera) *wireframe.Model {

	l, r := camera.Left(), camera.Right()
	b, t := camera.Bottom(), camera.Top()
	near := camera.Near()

	out := &wireframe.Model{
		Name:       model.Name,
		Visible:    model.Visible,
		Vertices:   make([]wireframe.Vertex, 0, len(model.Vertices)),
		Colors:     append([]wireframe.Color(nil), model.Colors...),
		Primitives: append([]wireframe.Primitive(nil), model.Primitives...),
	}

	for _, v := range model.Vertices {

		var x, y float64

		if camera.Perspective() {
			x = (2 * near * (v.X - v.Z*(r+l)/(2*near))) / (r - l)
			y = (2 * near * (v.Y - v.Z*(t+b)/(2*near))) / (t - b)
		} else {
			x = 2 * (v.X - (r+l)/2) / (r - l)
			y = 2 * (v.Y - (t+b)/2) / (t - b)
		}

		out.Vertices = append(out.Vertices, wireframe.NewVertexW(x, y, v.Z, v.W))

	}

	return out

}
