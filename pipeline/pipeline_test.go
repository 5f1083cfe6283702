package pipeline

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/solarlune/wireframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLineScene returns a Scene holding a red-to-blue segment from (-1, 0, 0) to (1, 0, 0), five units in
// front of the default Camera.
func newLineScene() (*wireframe.Scene, *wireframe.Position) {
	scene := wireframe.NewScene("line", wireframe.NewCamera())
	pos := wireframe.NewPositionModel(newSegment(wireframe.NewVertex(-1, 0, 0), wireframe.NewVertex(1, 0, 0)))
	pos.SetTranslation(0, 0, -5)
	scene.AddPosition(pos)
	return scene, pos
}

func BenchmarkRender(b *testing.B) {
	scene, _ := newLineScene()
	vp := newTestViewport(500, 500)
	options := DefaultRenderOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Render(scene, vp, options); err != nil {
			b.Fatal(err)
		}
	}
}

func TestRenderLine(t *testing.T) {

	scene, _ := newLineScene()
	vp := newTestViewport(500, 500)

	require.NoError(t, Render(scene, vp, NewRenderOptions(WithGamma(false))))

	assert.Equal(t, 101, vp.writes)

	prev := -1.0
	for x := 199; x <= 299; x++ {
		c, ok := vp.pixel(x, 250)
		require.True(t, ok, "x = %d", x)
		assert.Greater(t, c.B, prev, "blue increases along the run")
		assert.InDelta(t, 1, c.R+c.B, 1e-9)
		prev = c.B
	}

	first, _ := vp.pixel(199, 250)
	assert.Equal(t, red, first)
	last, _ := vp.pixel(299, 250)
	assert.Equal(t, blue, last)

}

func TestRenderNilArguments(t *testing.T) {

	scene, _ := newLineScene()
	vp := newTestViewport(10, 10)

	assert.ErrorIs(t, Render(nil, vp, DefaultRenderOptions()), ErrNilScene)
	assert.ErrorIs(t, Render(scene, nil, DefaultRenderOptions()), ErrNilViewport)

	scene.Camera = nil
	assert.ErrorIs(t, Render(scene, vp, DefaultRenderOptions()), ErrNilCamera)
	assert.ErrorIs(t, RenderPosition(scene, scene.Position(0), wireframe.NewMatrix4(), vp, DefaultRenderOptions()), ErrNilCamera)

	assert.Zero(t, vp.writes)

}

func TestRenderVisibility(t *testing.T) {

	scene, pos := newLineScene()

	root := wireframe.NewPosition("root")
	require.NoError(t, root.AddChildren(pos))
	scene.Positions = []*wireframe.Position{root}

	root.Visible = false
	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Zero(t, vp.writes, "an invisible position hides everything beneath it")

	root.Visible = true
	pos.Model.Visible = false
	vp = newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Zero(t, vp.writes)

	pos.Model.Visible = true
	vp = newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Equal(t, 101, vp.writes)

}

func TestRenderNestedInvisible(t *testing.T) {

	scene, leaf := newLineScene()

	root := wireframe.NewPosition("root")
	mid := wireframe.NewPosition("mid")
	require.NoError(t, root.AddChildren(mid))
	require.NoError(t, mid.AddChildren(leaf))
	scene.Positions = []*wireframe.Position{root}

	mid.Visible = false
	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.True(t, root.Visible)
	assert.True(t, leaf.Visible)
	assert.Zero(t, vp.writes, "a visible position below an invisible one is not drawn")

	mid.Visible = true
	vp = newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Equal(t, 101, vp.writes)

}

func TestRenderSharedPosition(t *testing.T) {

	dot := wireframe.NewModel("dot")
	dot.AddVertex(wireframe.NewVertex(0, 0, 0))
	dot.AddColor(red)
	dot.AddPrimitive(wireframe.NewPoint(0))

	moon := wireframe.NewPositionModel(dot)

	left := wireframe.NewPosition("left")
	left.SetTranslation(-1, 0, -5)
	right := wireframe.NewPosition("right")
	right.SetTranslation(1, 0, -5)

	require.NoError(t, left.AddChildren(moon))
	require.NoError(t, right.AddChildren(moon))

	scene := wireframe.NewScene("shared", nil)
	scene.AddPosition(left, right)

	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))

	assert.Len(t, vp.pixels, 2)
	_, ok := vp.pixel(199, 250)
	assert.True(t, ok)
	_, ok = vp.pixel(299, 250)
	assert.True(t, ok)

	// Rendering just one branch, with the parent's transform passed in by hand.
	vp = newTestViewport(500, 500)
	require.NoError(t, RenderPosition(scene, moon, wireframe.NewMatrix4Translate(1, 0, -5), vp, DefaultRenderOptions()))
	assert.Len(t, vp.pixels, 1)
	_, ok = vp.pixel(299, 250)
	assert.True(t, ok)

}

func TestRenderDefaultColor(t *testing.T) {

	logs, restore := captureLogs(slog.LevelWarn)
	defer restore()

	model := newSegment(wireframe.NewVertex(-1, 0, 0), wireframe.NewVertex(1, 0, 0))
	model.Colors = nil

	a := wireframe.NewPositionModel(model)
	a.SetTranslation(0, 0, -5)
	b := wireframe.NewPositionModel(model)
	b.SetTranslation(0, 1, -5)

	scene := wireframe.NewScene("uncolored", nil)
	scene.AddPosition(a, b)

	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))

	assert.Equal(t, []string{"model has no colors; added default color"}, logs.messages(slog.LevelWarn),
		"one warning per model, even when it's drawn twice")
	assert.Empty(t, model.Colors, "the caller's model is not changed")

	c, ok := vp.pixel(249, 250)
	require.True(t, ok)
	assert.Equal(t, wireframe.DefaultColor, c)

	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Len(t, logs.messages(slog.LevelWarn), 2, "each render call warns again")

}

func TestRenderStructuralError(t *testing.T) {

	logs, restore := captureLogs(slog.LevelWarn)
	defer restore()

	scene, pos := newLineScene()
	pos.Model.AddPrimitive(wireframe.NewLineSegment(0, 9))

	vp := newTestViewport(500, 500)
	err := Render(scene, vp, DefaultRenderOptions())

	var structural *wireframe.StructuralError
	require.True(t, errors.As(err, &structural))
	assert.Equal(t, 9, structural.Index)
	assert.Equal(t, "segment::segment", structural.Model)
	assert.Equal(t, 101, vp.writes, "the rest of the model is still drawn")
	assert.Equal(t, []string{"skipping primitive"}, logs.messages(slog.LevelWarn))

	// The same problem is found without near clipping, by the 2D clipping stage.
	vp = newTestViewport(500, 500)
	err = Render(scene, vp, NewRenderOptions(WithNearClipping(false)))
	require.True(t, errors.As(err, &structural))

}

func TestRenderNearClipping(t *testing.T) {

	// Between the camera and its near plane.
	scene := wireframe.NewScene("near", nil)
	scene.AddPosition(wireframe.NewPositionModel(newSegment(wireframe.NewVertex(-0.1, 0, -0.5), wireframe.NewVertex(0.1, 0, -0.5))))

	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, DefaultRenderOptions()))
	assert.Zero(t, vp.writes)

	vp = newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, NewRenderOptions(WithNearClipping(false))))
	assert.Equal(t, 101, vp.writes)

}

func TestRenderNonFinite(t *testing.T) {

	scene, pos := newLineScene()
	pos.SetTranslation(0, 0, 0) // Both ends project to infinity.

	vp := newTestViewport(500, 500)
	require.NoError(t, Render(scene, vp, NewRenderOptions(WithNearClipping(false))))
	assert.Zero(t, vp.writes)

}

func TestRenderDebug(t *testing.T) {

	logs, restore := captureLogs(slog.LevelDebug)
	defer restore()

	scene, pos := newLineScene()

	require.NoError(t, Render(scene, newTestViewport(50, 50), DefaultRenderOptions()))
	assert.Empty(t, logs.messages(slog.LevelDebug), "nothing is dumped unless asked for")

	pos.Debug = true
	require.NoError(t, Render(scene, newTestViewport(50, 50), DefaultRenderOptions()))

	debug := logs.messages(slog.LevelDebug)
	assert.Contains(t, debug, "1. view")
	assert.Contains(t, debug, "5. clipped")
	assert.Contains(t, debug, "pixel")
	assert.NotContains(t, debug, "begin rendering scene")

	scene.Debug = true
	require.NoError(t, Render(scene, newTestViewport(50, 50), DefaultRenderOptions()))
	assert.Contains(t, logs.messages(slog.LevelDebug), "begin rendering scene")

}
