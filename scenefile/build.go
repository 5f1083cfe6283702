package scenefile

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/solarlune/wireframe"
	"github.com/solarlune/wireframe/models"
)

// Build turns the description into a Scene. Relative glTF model paths are resolved against baseDir.
func (file *File) Build(baseDir string) (*wireframe.Scene, error) {

	camera, err := file.Camera.Build()
	if err != nil {
		return nil, err
	}

	scene := wireframe.NewScene(file.Name, camera)
	scene.Debug = file.Debug

	b := &builder{baseDir: baseDir, ids: map[string]*wireframe.Position{}}

	for i := range file.Positions {
		pos, err := b.position(&file.Positions[i], "positions["+fmt.Sprint(i)+"]")
		if err != nil {
			return nil, err
		}
		scene.AddPosition(pos)
	}

	return scene, nil

}

// Build returns the Camera the description names.
func (c Camera) Build() (*wireframe.Camera, error) {

	near := c.Near
	if near == 0 {
		near = 1
	}

	perspective := true

	switch strings.ToLower(c.Projection) {
	case "", "perspective":
	case "orthographic", "ortho":
		perspective = false
	default:
		return nil, fmt.Errorf("camera projection %q: %w", c.Projection, ErrInvalidValue)
	}

	if c.FOVY != 0 {
		aspect := c.Aspect
		if aspect == 0 {
			aspect = 1
		}
		if perspective {
			return wireframe.NewPerspectiveCameraFOVY(c.FOVY, aspect, near)
		}
		return wireframe.NewOrthographicCameraFOVY(c.FOVY, aspect, near)
	}

	bound := func(v *float64, def float64) float64 {
		if v == nil {
			return def
		}
		return *v
	}

	left, right := bound(c.Left, -1), bound(c.Right, 1)
	bottom, top := bound(c.Bottom, -1), bound(c.Top, 1)

	if perspective {
		return wireframe.NewPerspectiveCamera(left, right, bottom, top, near)
	}
	return wireframe.NewOrthographicCamera(left, right, bottom, top, near)

}

type builder struct {
	baseDir string
	ids     map[string]*wireframe.Position
}

func (b *builder) position(desc *Position, path string) (*wireframe.Position, error) {

	if desc.Use != "" {
		shared, ok := b.ids[desc.Use]
		if !ok {
			return nil, fmt.Errorf("%s: use %q: %w", path, desc.Use, ErrUnknownID)
		}
		return shared, nil
	}

	pos := wireframe.NewPosition(desc.Name)
	pos.Debug = desc.Debug
	if desc.Visible != nil {
		pos.Visible = *desc.Visible
	}

	matrix, err := desc.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pos.Matrix = matrix

	if desc.ID != "" {
		if _, exists := b.ids[desc.ID]; exists {
			return nil, fmt.Errorf("%s: duplicate id %q: %w", path, desc.ID, ErrInvalidValue)
		}
		b.ids[desc.ID] = pos
	}

	if desc.Model != nil {

		if strings.ToLower(desc.Model.Kind) == "gltf" {

			sub, err := b.gltf(desc.Model)
			if err != nil {
				return nil, fmt.Errorf("%s.model: %w", path, err)
			}
			if err := pos.AddChildren(sub.Positions...); err != nil {
				return nil, fmt.Errorf("%s.model: %w", path, err)
			}

		} else {

			model, err := desc.Model.Build()
			if err != nil {
				return nil, fmt.Errorf("%s.model: %w", path, err)
			}
			if pos.Name == "" {
				pos.Name = model.Name
			}
			pos.Model = model

		}

	}

	for i := range desc.Children {
		child, err := b.position(&desc.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if err := pos.AddChildren(child); err != nil {
			return nil, fmt.Errorf("%s.children[%d]: %w", path, i, err)
		}
	}

	return pos, nil

}

func (b *builder) gltf(desc *Model) (*wireframe.Scene, error) {
	if desc.Path == "" {
		return nil, fmt.Errorf("gltf model without a path: %w", ErrInvalidValue)
	}
	path := desc.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.baseDir, path)
	}
	return wireframe.LoadGLTFFile(path)
}

// Matrix returns the Position's local transform, Translate * Rotate * Scale.
func (desc *Position) Matrix() (wireframe.Matrix4, error) {

	matrix := wireframe.NewMatrix4()

	if desc.Translate != nil {
		t, err := vector3(desc.Translate, "translate")
		if err != nil {
			return matrix, err
		}
		matrix = matrix.Mult(wireframe.NewMatrix4Translate(t[0], t[1], t[2]))
	}

	if desc.Rotate != nil {
		axis, err := vector3(desc.Rotate.Axis, "rotate.axis")
		if err != nil {
			return matrix, err
		}
		rotation, err := wireframe.NewMatrix4Rotate(desc.Rotate.Angle, axis[0], axis[1], axis[2])
		if err != nil {
			return matrix, err
		}
		matrix = matrix.Mult(rotation)
	}

	switch len(desc.Scale) {
	case 0:
	case 1:
		matrix = matrix.Mult(wireframe.NewMatrix4ScaleUniform(desc.Scale[0]))
	case 3:
		matrix = matrix.Mult(wireframe.NewMatrix4Scale(desc.Scale[0], desc.Scale[1], desc.Scale[2]))
	default:
		return matrix, fmt.Errorf("scale has %d components, want 1 or 3: %w", len(desc.Scale), ErrInvalidValue)
	}

	return matrix, nil

}

func vector3(values []float64, field string) ([3]float64, error) {
	if len(values) != 3 {
		return [3]float64{}, fmt.Errorf("%s has %d components, want 3: %w", field, len(values), ErrInvalidValue)
	}
	return [3]float64{values[0], values[1], values[2]}, nil
}

func color(values []float64, field string) (wireframe.Color, error) {
	switch len(values) {
	case 3:
		return wireframe.NewColorRGB(values[0], values[1], values[2]), nil
	case 4:
		return wireframe.NewColor(values[0], values[1], values[2], values[3]), nil
	}
	return wireframe.Color{}, fmt.Errorf("%s has %d components, want 3 or 4: %w", field, len(values), ErrInvalidValue)
}

// orDefault returns v, or def if v is zero.
func orDefault[V float64 | int](v, def V) V {
	if v == 0 {
		return def
	}
	return v
}

// Build returns the Model the description names. Supported kinds, and the fields each reads, are:
//
//	box     size [x, y, z] (default [1, 1, 1])
//	cube
//	axes    range [xmin, xmax, ymin, ymax, zmin, zmax] (default ±1)
//	circle  radius, k
//	disk    radius, n, k
//	grid    range [xmin, xmax, ymin, ymax], n, k
//	sphere  radius, n, k
//	torus   radius, radius2, n, k
//	prism   radius, height, k
//	custom  vertices, colors, lines ([v0, v1] or [v0, v1, c0, c1]), points (vertex indices)
//
// After building, color (or shading, with seed) colors the Model, and point_cloud replaces it with a point
// cloud of its vertices with radius point_radius.
func (desc *Model) Build() (*wireframe.Model, error) {

	var model *wireframe.Model

	switch strings.ToLower(desc.Kind) {

	case "box":
		size := []float64{1, 1, 1}
		if desc.Size != nil {
			s, err := vector3(desc.Size, "size")
			if err != nil {
				return nil, err
			}
			size = s[:]
		}
		model = models.Box(size[0], size[1], size[2])

	case "cube":
		model = models.Cube()

	case "axes":
		r := []float64{-1, 1, -1, 1, -1, 1}
		if desc.Range != nil {
			if len(desc.Range) != 6 {
				return nil, fmt.Errorf("axes range has %d components, want 6: %w", len(desc.Range), ErrInvalidValue)
			}
			r = desc.Range
		}
		model = models.Axes3D(r[0], r[1], r[2], r[3], r[4], r[5])

	case "circle":
		model = models.Circle(orDefault(desc.Radius, 1), orDefault(desc.K, 16))

	case "disk":
		model = models.Disk(orDefault(desc.Radius, 1), orDefault(desc.N, 6), orDefault(desc.K, 12))

	case "grid":
		r := []float64{-1, 1, -1, 1}
		if desc.Range != nil {
			if len(desc.Range) != 4 {
				return nil, fmt.Errorf("grid range has %d components, want 4: %w", len(desc.Range), ErrInvalidValue)
			}
			r = desc.Range
		}
		model = models.SquareGrid(r[0], r[1], r[2], r[3], orDefault(desc.N, 10), orDefault(desc.K, 10))

	case "sphere":
		model = models.Sphere(orDefault(desc.Radius, 1), orDefault(desc.N, 15), orDefault(desc.K, 16))

	case "torus":
		model = models.Torus(orDefault(desc.Radius, 0.75), orDefault(desc.Radius2, 0.25), orDefault(desc.N, 16), orDefault(desc.K, 12))

	case "prism":
		model = models.Prism(orDefault(desc.Radius, 1), orDefault(desc.Height, 1), orDefault(desc.K, 6))

	case "custom":
		var err error
		if model, err = desc.custom(); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%q: %w", desc.Kind, ErrUnknownModel)

	}

	if desc.Name != "" {
		model.Name = desc.Name
	}

	model.Visible = !desc.Hidden

	if desc.Color != nil {
		c, err := color(desc.Color, "color")
		if err != nil {
			return nil, err
		}
		models.SetColor(model, c)
	}

	rng := rand.New(rand.NewSource(desc.Seed))

	switch strings.ToLower(desc.Shading) {
	case "":
	case "random":
		models.SetRandomColor(model, rng)
	case "random-vertex":
		models.SetRandomVertexColor(model, rng)
	case "random-primitive":
		models.SetRandomPrimitiveColor(model, rng)
	case "rainbow":
		models.SetRainbowPrimitiveColors(model)
	default:
		return nil, fmt.Errorf("shading %q: %w", desc.Shading, ErrInvalidValue)
	}

	if desc.PointCloud {
		model = models.PointCloud(model, desc.PointRadius)
	}

	return model, nil

}

func (desc *Model) custom() (*wireframe.Model, error) {

	model := wireframe.NewModel(orName(desc.Name, "Custom"))

	for i, v := range desc.Vertices {
		xyz, err := vector3(v, fmt.Sprintf("vertices[%d]", i))
		if err != nil {
			return nil, err
		}
		model.AddVertex(wireframe.NewVertex(xyz[0], xyz[1], xyz[2]))
	}

	for i, c := range desc.Colors {
		col, err := color(c, fmt.Sprintf("colors[%d]", i))
		if err != nil {
			return nil, err
		}
		model.AddColor(col)
	}

	for i, l := range desc.Lines {
		switch len(l) {
		case 2:
			model.AddPrimitive(wireframe.NewLineSegment(l[0], l[1]))
		case 4:
			model.AddPrimitive(wireframe.NewLineSegmentColors(l[0], l[1], l[2], l[3]))
		default:
			return nil, fmt.Errorf("lines[%d] has %d indices, want 2 or 4: %w", i, len(l), ErrInvalidValue)
		}
	}

	for _, p := range desc.Points {
		pt := wireframe.NewPoint(p)
		pt.Radius = desc.PointRadius
		model.AddPrimitive(pt)
	}

	for _, problem := range model.Check() {
		wireframe.Logger().Warn("custom model", "model", model.Name, "problem", problem)
	}

	return model, nil

}

func orName(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
