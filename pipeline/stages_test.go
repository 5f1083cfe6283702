package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/solarlune/wireframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelToView(t *testing.T) {

	model := newSegment(wireframe.NewVertex(-1, 0, 0), wireframe.NewVertex(1, 0, 0))

	out := ModelToView(model, wireframe.NewMatrix4Translate(0, 0, -5), "root")

	assert.Equal(t, "root::segment", out.Name)
	assert.Equal(t, wireframe.NewVertex(-1, 0, -5), out.Vertices[0])
	assert.Equal(t, wireframe.NewVertex(1, 0, -5), out.Vertices[1])
	assert.Equal(t, model.Colors, out.Colors)
	assert.Equal(t, model.Primitives, out.Primitives)

	out.Colors[0] = blue
	assert.Equal(t, red, model.Colors[0], "the input model is not shared")
	assert.Equal(t, wireframe.NewVertex(-1, 0, 0), model.Vertices[0])

}

func TestViewToCamera(t *testing.T) {

	model := newSegment(wireframe.NewVertex(1, 2, -4), wireframe.NewVertex(0, 0, -1))

	out := ViewToCamera(model, wireframe.NewCamera())
	assert.Equal(t, model.Vertices, out.Vertices, "the default camera's volume is already canonical")

	persp, err := wireframe.NewPerspectiveCamera(0, 2, -1, 1, 2)
	require.NoError(t, err)

	out = ViewToCamera(model, persp)
	// x' = (2 * 2 * (1 - (-4)*(2)/(2*2))) / 2 = 2 * (1 + 2) = 6
	assert.InDelta(t, 6, out.Vertices[0].X, 1e-12)
	assert.InDelta(t, 4, out.Vertices[0].Y, 1e-12)
	assert.Equal(t, -4.0, out.Vertices[0].Z)

	ortho, err := wireframe.NewOrthographicCamera(0, 4, 0, 2, 1)
	require.NoError(t, err)

	out = ViewToCamera(model, ortho)
	assert.InDelta(t, -0.5, out.Vertices[0].X, 1e-12)
	assert.InDelta(t, 1, out.Vertices[0].Y, 1e-12)
	assert.Equal(t, -4.0, out.Vertices[0].Z)

}

func TestProject(t *testing.T) {

	model := wireframe.NewModel("point")
	model.AddVertex(wireframe.NewVertex(2, 4, -2))

	out := Project(model, wireframe.NewCamera())
	assert.Equal(t, wireframe.NewVertex(1, 2, -1), out.Vertices[0])

	model.Vertices[0] = wireframe.NewVertex(2, 4, 2)
	out = Project(model, wireframe.NewCamera())
	assert.Equal(t, wireframe.NewVertex(-1, -2, -1), out.Vertices[0])

	model.Vertices[0] = wireframe.NewVertex(2, 4, -2)
	ortho, err := wireframe.NewOrthographicCamera(-1, 1, -1, 1, 1)
	require.NoError(t, err)

	out = Project(model, ortho)
	assert.Equal(t, wireframe.NewVertex(2, 4, 0), out.Vertices[0])

}

func TestNearClip(t *testing.T) {

	camera := wireframe.NewCamera()

	// One endpoint in front of the near plane z = -1.
	model := newSegment(wireframe.NewVertex(0, 0, 0), wireframe.NewVertex(0, 0, -2))

	out, err := NearClip(model, camera)
	require.NoError(t, err)
	require.Len(t, out.Primitives, 1)
	require.Len(t, out.Vertices, 3)

	ls := out.Primitives[0].(wireframe.LineSegment)
	assert.Equal(t, [2]int{2, 1}, ls.Vertex)
	assert.Equal(t, [2]int{2, 1}, ls.Color)
	assert.Equal(t, wireframe.NewVertex(0, 0, -1), out.Vertices[2])
	assert.Equal(t, wireframe.NewColorRGB(0.5, 0, 0.5), out.Colors[2])

	assert.Len(t, model.Vertices, 2, "the input model is left alone")
	assert.Len(t, model.Colors, 2)

	// Both in front: rejected.
	out, err = NearClip(newSegment(wireframe.NewVertex(0, 0, 1), wireframe.NewVertex(0, 0, -0.5)), camera)
	require.NoError(t, err)
	assert.Empty(t, out.Primitives)

	// Both behind, or on the plane: accepted untouched.
	model = newSegment(wireframe.NewVertex(0, 0, -1), wireframe.NewVertex(3, 0, -9))
	out, err = NearClip(model, camera)
	require.NoError(t, err)
	assert.Equal(t, model.Primitives, out.Primitives)
	assert.Equal(t, model.Vertices, out.Vertices)

}

func TestNearClipPoints(t *testing.T) {

	model := wireframe.NewModel("points")
	model.AddVertex(wireframe.NewVertex(0, 0, -3), wireframe.NewVertex(0, 0, -0.5), wireframe.NewVertex(math.NaN(), 0, -3))
	model.AddColor(red, red, red)
	model.AddPrimitive(wireframe.NewPoint(0), wireframe.NewPoint(1), wireframe.NewPoint(2))

	out, err := NearClip(model, wireframe.NewCamera())
	require.NoError(t, err)
	assert.Equal(t, []wireframe.Primitive{wireframe.NewPoint(0)}, out.Primitives)

}

func TestNearClipStructuralError(t *testing.T) {

	model := newSegment(wireframe.NewVertex(0, 0, -2), wireframe.NewVertex(0, 0, -3))
	model.AddPrimitive(wireframe.NewLineSegment(0, 7))

	out, err := NearClip(model, wireframe.NewCamera())

	var structural *wireframe.StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Equal(t, 7, structural.Index)
	assert.Len(t, out.Primitives, 1, "the valid primitive is still kept")

}

func TestClip(t *testing.T) {

	// Entirely inside: unchanged.
	model := newSegment(wireframe.NewVertex(-0.5, -1, -1), wireframe.NewVertex(1, 0.25, -1))
	out, err := Clip(model)
	require.NoError(t, err)
	assert.Equal(t, model.Primitives, out.Primitives)
	assert.Equal(t, model.Vertices, out.Vertices)

	// Both past the same edge: rejected.
	for _, pair := range [][2]wireframe.Vertex{
		{wireframe.NewVertex(2, 0, -1), wireframe.NewVertex(3, 5, -1)},
		{wireframe.NewVertex(-2, 0, -1), wireframe.NewVertex(-1.5, 0, -1)},
		{wireframe.NewVertex(0, 1.5, -1), wireframe.NewVertex(-4, 3, -1)},
		{wireframe.NewVertex(0, -1.5, -1), wireframe.NewVertex(4, -3, -1)},
	} {
		out, err = Clip(newSegment(pair[0], pair[1]))
		require.NoError(t, err)
		assert.Empty(t, out.Primitives, "%v", pair)
	}

	// Crossing x = -1.
	out, err = Clip(newSegment(wireframe.NewVertex(-2, 0, -1), wireframe.NewVertex(0, 0, -1)))
	require.NoError(t, err)
	require.Len(t, out.Primitives, 1)
	ls := out.Primitives[0].(wireframe.LineSegment)
	assert.Equal(t, [2]int{2, 1}, ls.Vertex)
	assert.Equal(t, wireframe.NewVertex(-1, 0, -1), out.Vertices[2])
	assert.Equal(t, wireframe.NewColorRGB(0.5, 0, 0.5), out.Colors[2])

}

func TestClipBothEnds(t *testing.T) {

	out, err := Clip(newSegment(wireframe.NewVertex(-3, -3, -1), wireframe.NewVertex(3, 3, -1)))
	require.NoError(t, err)
	require.Len(t, out.Primitives, 1)

	ls := out.Primitives[0].(wireframe.LineSegment)
	for _, i := range ls.Vertex {
		v := out.Vertices[i]
		assert.True(t, inSquare(v), "%v", v)
		assert.InDelta(t, 1, math.Abs(v.X), 1e-9)
		assert.InDelta(t, 1, math.Abs(v.Y), 1e-9)
	}

	for _, i := range ls.Color {
		c := out.Colors[i]
		assert.InDelta(t, 1, c.R+c.B, 1e-9, "colors stay on the red to blue ramp")
	}

}

func TestClipRejectsNonFinite(t *testing.T) {

	inf := math.Inf(1)

	out, err := Clip(newSegment(wireframe.NewVertex(inf, 0, -1), wireframe.NewVertex(0, 0, -1)))
	require.NoError(t, err)
	assert.Empty(t, out.Primitives)

	out, err = Clip(newSegment(wireframe.NewVertex(math.NaN(), 0, -1), wireframe.NewVertex(0, 0, -1)))
	require.NoError(t, err)
	assert.Empty(t, out.Primitives)

}
