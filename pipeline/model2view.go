package pipeline

import "github.com/solarlune/wireframe"

// ModelToView transforms every vertex of the Model by the current transformation matrix, moving the Model
// from its own coordinate system into view (camera) space. The returned Model shares nothing mutable with
// the one given; its colors and primitives are copies, and it's named "parentName::modelName".
func ModelToView(model *wireframe.Model, ctm wireframe.Matrix4, parentName string) *wireframe.Model {

	out := &wireframe.Model{
		Name:       parentName + "::" + model.Name,
		Visible:    model.Visible,
		Vertices:   make([]wireframe.Vertex, 0, len(model.Vertices)),
		Colors:     append([]wireframe.Color(nil), model.Colors...),
		Primitives: append([]wireframe.Primitive(nil), model.Primitives...),
	}

	for _, v := range model.Vertices {
		out.Vertices = append(out.Vertices, ctm.MultVertex(v))
	}

	return out

}
