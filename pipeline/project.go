package pipeline

import "github.com/solarlune/wireframe"

// Project projects every vertex of the Model onto the image plane. A perspective Camera projects onto the
// plane z = -1 by dividing through by the vertex's distance in front of the camera (-z); an orthographic
// Camera projects straight onto z = 0. Colors and primitives are copied unchanged.
//
// A vertex at z = 0 projects to an infinite coordinate; the Clip stage rejects any primitive using it.
func Project(model *wireframe.Model, camera *wireframe.Camera) *wireframe.Model {

	out := &wireframe.Model{
		Name:       model.Name,
		Visible:    model.Visible,
		Vertices:   make([]wireframe.Vertex, 0, len(model.Vertices)),
		Colors:     append([]wireframe.Color(nil), model.Colors...),
		Primitives: append([]wireframe.Primitive(nil), model.Primitives...),
	}

	for _, v := range model.Vertices {
		if camera.Perspective() {
			out.Vertices = append(out.Vertices, wireframe.NewVertex(v.X/-v.Z, v.Y/-v.Z, -1))
		} else {
			out.Vertices = append(out.Vertices, wireframe.NewVertex(v.X, v.Y, 0))
		}
	}

	return out

}
