package scenefile

import (
	"errors"
	"strings"
	"testing"

	"github.com/solarlune/wireframe"
	"github.com/solarlune/wireframe/framebuffer"
	"github.com/solarlune/wireframe/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {

	for path, expected := range map[string]Format{
		"a.yaml":     FormatYAML,
		"a.YML":      FormatYAML,
		"dir/a.toml": FormatTOML,
		"a.gltf":     FormatGLTF,
		"a.glb":      FormatGLTF,
	} {
		format, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, format, path)
	}

	_, err := FormatOf("scene.json")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	assert.Equal(t, "toml", FormatTOML.String())

}

func TestLoadYAML(t *testing.T) {

	scene, err := Load("testdata/solar.yaml")
	require.NoError(t, err)

	assert.Equal(t, "solar", scene.Name)
	assert.InDelta(t, 90, scene.Camera.FieldOfView(), 1e-9)
	assert.True(t, scene.Camera.Perspective())
	require.Len(t, scene.Positions, 4)

	system := scene.Get("system")
	require.NotNil(t, system)
	assert.Equal(t, wireframe.NewMatrix4Translate(0, 0, -10), system.Matrix)

	sun := scene.Get("system/sun")
	require.NotNil(t, sun)
	assert.Len(t, sun.Model.Vertices, 2+4*8)
	assert.Empty(t, sun.Model.Check())

	moon := scene.Get("system/earth orbit/earth/moon")
	require.NotNil(t, moon)
	assert.Same(t, moon, scene.Get("system/mars/moon"), "use shares the position")
	assert.Equal(t, wireframe.NewColorRGB(0.8, 0.8, 0.8), moon.Model.Colors[0])

	assert.False(t, scene.Get("system/mars").Visible)

	orbit := scene.Get("system/earth orbit")
	assert.True(t, orbit.Matrix.ApproxEqual(wireframe.NewMatrix4RotateY(45), 1e-12))

	ground := scene.Get("ground")
	require.NotNil(t, ground.Model)
	assert.False(t, ground.Model.Visible, "hidden models are built invisible")
	assert.Equal(t, 5.0, ground.Matrix[0].X)
	assert.Equal(t, -2.0, ground.Matrix[3].Y)

	triangle := scene.Get("triangle").Model
	assert.Len(t, triangle.Primitives, 4)
	assert.Equal(t, wireframe.NewLineSegmentColors(2, 0, 2, 0), triangle.Primitives[2])
	assert.Empty(t, triangle.Check())

	imported := scene.Get("imported/Tri")
	require.NotNil(t, imported, "glTF models are nested beneath their position")
	assert.Len(t, imported.Model.Primitives, 3)

	fb := framebuffer.NewFrameBuffer(64, 64, wireframe.NewColorRGB(0, 0, 0))
	assert.NoError(t, pipeline.Render(scene, fb.Viewport(), pipeline.DefaultRenderOptions()))

}

func TestLoadTOML(t *testing.T) {

	scene, err := Load("testdata/boxes.toml")
	require.NoError(t, err)

	assert.Equal(t, "boxes", scene.Name)
	assert.False(t, scene.Camera.Perspective())
	assert.Equal(t, 2.0, scene.Camera.AspectRatio())

	box := scene.Get("box")
	require.NotNil(t, box)
	assert.Equal(t, "box", box.Name)
	assert.Len(t, box.Model.Colors, 8)
	assert.Equal(t, wireframe.NewVertex(1, 2, 3), box.Model.Vertices[6])

	assert.Same(t, box, scene.Get("twin/box"))

	dots := scene.Get("dots").Model
	assert.Equal(t, "PointCloud: Cube", dots.Name)
	require.Len(t, dots.Primitives, 8)
	assert.Equal(t, 2, dots.Primitives[0].(wireframe.Point).Radius)
	assert.Equal(t, wireframe.NewColorRGB(1, 1, 0), dots.Colors[0])

}

func TestLoadGLTF(t *testing.T) {

	scene, err := Load("testdata/triangle.gltf")
	require.NoError(t, err)

	assert.Equal(t, "Triangle", scene.Name)
	tri := scene.Get("Tri")
	require.NotNil(t, tri)
	assert.Equal(t, -2.0, tri.Matrix[3].Z)

}

func TestDecode(t *testing.T) {

	file, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	scene, err := file.Build(".")
	require.NoError(t, err)
	assert.Empty(t, scene.Positions)
	assert.Equal(t, 1.0, scene.Camera.Near())

	_, err = Decode(strings.NewReader("positions: [{nmae: typo}]"), FormatYAML)
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Decode(strings.NewReader("colour = 1\n"), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), FormatGLTF)
	assert.True(t, errors.Is(err, ErrUnknownFormat))

}

func TestDecodeSharedPosition(t *testing.T) {

	desc := `
name: nested
camera: {projection: perspective, left: -1, right: 1, bottom: -1, top: 1, near: 1}
positions:
  - name: arm
    id: arm
    translate: [0, 0, -5]
    rotate: {angle: 30, axis: [0, 1, 0]}
    model: {kind: box, size: [1, 1, 1], color: [1, 0, 0]}
  - name: mirror
    scale: [-1, 1, 1]
    children:
      - use: arm
`

	file, err := Decode(strings.NewReader(desc), FormatYAML)
	require.NoError(t, err)

	scene, err := file.Build(".")
	require.NoError(t, err)
	require.Len(t, scene.Positions, 2)

	arm, mirror := scene.Positions[0], scene.Positions[1]
	require.Len(t, mirror.Children(), 1)
	assert.Same(t, arm, mirror.Children()[0])

}

func TestBuildErrors(t *testing.T) {

	tests := []struct {
		yaml string
		err  error
	}{
		{"positions: [{use: nobody}]", ErrUnknownID},
		{"positions: [{name: a, children: [{use: a}]}, {id: a}]", ErrUnknownID},
		{"positions: [{id: a}, {id: a}]", ErrInvalidValue},
		{"positions: [{id: a, children: [{use: a}]}]", wireframe.ErrCycle},
		{"positions: [{model: {kind: teapot}}]", ErrUnknownModel},
		{"positions: [{translate: [1, 2]}]", ErrInvalidValue},
		{"positions: [{scale: [1, 2]}]", ErrInvalidValue},
		{"positions: [{rotate: {angle: 10, axis: [0, 0, 0]}}]", wireframe.ErrZeroAxis},
		{"positions: [{model: {kind: box, color: [1, 0]}}]", ErrInvalidValue},
		{"positions: [{model: {kind: box, shading: plaid}}]", ErrInvalidValue},
		{"positions: [{model: {kind: custom, lines: [[0, 1, 2]]}}]", ErrInvalidValue},
		{"positions: [{model: {kind: gltf}}]", ErrInvalidValue},
		{"camera: {projection: fisheye}", ErrInvalidValue},
		{"camera: {near: -1}", wireframe.ErrInvalidCamera},
		{"camera: {left: 1, right: -1}", wireframe.ErrInvalidCamera},
		{"camera: {fovy: 200}", wireframe.ErrInvalidCamera},
	}

	for _, test := range tests {
		file, err := Decode(strings.NewReader(test.yaml), FormatYAML)
		require.NoError(t, err, test.yaml)
		_, err = file.Build(".")
		assert.True(t, errors.Is(err, test.err), "%s: %v", test.yaml, err)
	}

}

func TestCameraBuild(t *testing.T) {

	right := 3.0
	camera, err := Camera{Projection: "ortho", Right: &right, Near: 2}.Build()
	require.NoError(t, err)

	assert.False(t, camera.Perspective())
	assert.Equal(t, -1.0, camera.Left())
	assert.Equal(t, 3.0, camera.Right())
	assert.Equal(t, 2.0, camera.Near())

}
