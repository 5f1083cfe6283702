package wireframe

import (
	"fmt"
	"slices"
	"strings"
)

// Model represents a piece of wireframe geometry: a list of vertices, a list of colors, and a list of
// Primitives that reference both by index. The order of the Primitives is the order they are drawn in.
// A Model is authored once and then treated as read-only by the rendering pipeline; every pipeline stage
// builds a new Model rather than changing the one it was given.
type Model struct {
	Name       string
	Visible    bool
	Vertices   []Vertex
	Colors     []Color
	Primitives []Primitive
}

// NewModel returns a new, empty, visible Model.
func NewModel(name string) *Model {
	return &Model{
		Name:       name,
		Visible:    true,
		Vertices:   []Vertex{},
		Colors:     []Color{},
		Primitives: []Primitive{},
	}
}

// AddVertex adds the Vertices given to the Model's vertex list.
func (model *Model) AddVertex(vertices ...Vertex) {
	model.Vertices = append(model.Vertices, vertices...)
}

// AddColor adds the Colors given to the Model's color list.
func (model *Model) AddColor(colors ...Color) {
	model.Colors = append(model.Colors, colors...)
}

// AddPrimitive adds the Primitives given to the end of the Model's draw list.
func (model *Model) AddPrimitive(primitives ...Primitive) {
	model.Primitives = append(model.Primitives, primitives...)
}

// Clone returns a deep copy of the Model, such that appending to or modifying the clone's lists has no effect
// on the original.
func (model *Model) Clone() *Model {
	return &Model{
		Name:       model.Name,
		Visible:    model.Visible,
		Vertices:   slices.Clone(model.Vertices),
		Colors:     slices.Clone(model.Colors),
		Primitives: slices.Clone(model.Primitives),
	}
}

// CheckPrimitive verifies that every index the Primitive holds is in range for the Model, returning a
// *StructuralError for the first one that isn't.
func (model *Model) CheckPrimitive(p Primitive) error {

	for _, i := range p.VertexIndices() {
		if i < 0 || i >= len(model.Vertices) {
			return &StructuralError{Model: model.Name, Primitive: p, Kind: "vertex", Index: i, Length: len(model.Vertices)}
		}
	}

	for _, i := range p.ColorIndices() {
		if i < 0 || i >= len(model.Colors) {
			return &StructuralError{Model: model.Name, Primitive: p, Kind: "color", Index: i, Length: len(model.Colors)}
		}
	}

	return nil

}

// Check looks the Model over for suspicious construction, returning a description of each problem found:
// primitives without vertices, vertices without primitives, vertices without colors, and out-of-range indices.
// None of these stop the Model from being rendered.
func (model *Model) Check() []string {

	problems := []string{}

	if len(model.Vertices) == 0 && len(model.Primitives) != 0 {
		problems = append(problems, "model has primitives but no vertices")
	}

	if len(model.Vertices) != 0 && len(model.Primitives) == 0 {
		problems = append(problems, "model has vertices but no primitives")
	}

	if len(model.Vertices) != 0 && len(model.Colors) == 0 {
		problems = append(problems, "model has vertices but no colors")
	}

	for _, p := range model.Primitives {
		if err := model.CheckPrimitive(p); err != nil {
			problems = append(problems, err.Error())
		}
	}

	return problems

}

// String returns a multi-line description of the Model's lists, for debugging.
func (model *Model) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "Model: %s (visible = %t)\n", model.Name, model.Visible)
	fmt.Fprintf(&s, "%d vertices:\n", len(model.Vertices))
	for i, v := range model.Vertices {
		fmt.Fprintf(&s, "  %d: %v\n", i, v)
	}
	fmt.Fprintf(&s, "%d colors:\n", len(model.Colors))
	for i, c := range model.Colors {
		fmt.Fprintf(&s, "  %d: %v\n", i, c)
	}
	fmt.Fprintf(&s, "%d primitives:\n", len(model.Primitives))
	for i, p := range model.Primitives {
		fmt.Fprintf(&s, "  %d: %v\n", i, p)
	}
	return s.String()
}
