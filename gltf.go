package wireframe

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoGLTFScene is returned when a glTF document holds no scenes to load.
var ErrNoGLTFScene = errors.New("wireframe: glTF document has no scene")

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning its default scene as a Scene.
// See SceneFromGLTF for how the document is translated.
func LoadGLTFFile(path string) (*Scene, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, returning its default scene as a Scene.
func LoadGLTFData(data []byte) (*Scene, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, err
	}

	return SceneFromGLTF(doc)

}

// SceneFromGLTF translates a decoded glTF document's default scene (or its first, if no default is set) into a Scene.
//
// Every node becomes a Position, keeping the node's name and local transform; a node referenced as a child by
// several parents becomes a shared Position. Every mesh becomes one Model (shared by all nodes using it) holding
// all of the mesh's primitives: line, line strip, and line loop primitives become LineSegments, point
// primitives become Points, and triangle primitives become the LineSegments along their (deduplicated) edges.
// Vertex colors (COLOR_0) become the Model's colors; meshes without them are left uncolored.
//
// The first camera found on a node becomes the Scene's Camera. Camera node transforms are not applied, as a
// Scene's Camera always sits at the origin looking down -Z.
func SceneFromGLTF(doc *gltf.Document) (*Scene, error) {

	if len(doc.Scenes) == 0 {
		return nil, ErrNoGLTFScene
	}

	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}

	if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("scene index %d of %d: %w", sceneIndex, len(doc.Scenes), ErrNoGLTFScene)
	}

	gltfScene := doc.Scenes[sceneIndex]

	scene := NewScene(gltfScene.Name, nil)

	models := make([]*Model, len(doc.Meshes))

	for i, mesh := range doc.Meshes {
		model, err := gltfMeshToModel(doc, mesh)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%q): %w", i, mesh.Name, err)
		}
		models[i] = model
	}

	positions := make([]*Position, len(doc.Nodes))

	cameraSet := false

	for i, node := range doc.Nodes {

		pos := NewPosition(node.Name)
		pos.Matrix = gltfNodeMatrix(node)

		if node.Mesh != nil {
			meshIndex := int(*node.Mesh)
			if meshIndex < 0 || meshIndex >= len(models) {
				return nil, fmt.Errorf("node %d (%q): mesh index %d out of range", i, node.Name, meshIndex)
			}
			pos.Model = models[meshIndex]
		}

		if node.Camera != nil && !cameraSet {
			if camera, err := gltfCamera(doc, int(*node.Camera)); err != nil {
				Logger().Warn("skipping glTF camera", "node", node.Name, "error", err)
			} else {
				scene.Camera = camera
				cameraSet = true
			}
		}

		positions[i] = pos

	}

	for i, node := range doc.Nodes {
		for _, child := range node.Children {
			childIndex := int(child)
			if childIndex < 0 || childIndex >= len(positions) {
				return nil, fmt.Errorf("node %d (%q): child index %d out of range", i, node.Name, childIndex)
			}
			if err := positions[i].AddChildren(positions[childIndex]); err != nil {
				return nil, err
			}
		}
	}

	for _, n := range gltfScene.Nodes {
		nodeIndex := int(n)
		if nodeIndex < 0 || nodeIndex >= len(positions) {
			return nil, fmt.Errorf("scene %q: node index %d out of range", gltfScene.Name, nodeIndex)
		}
		scene.AddPosition(positions[nodeIndex])
	}

	Logger().Info("loaded glTF scene", "scene", scene.Name, "meshes", len(models), "nodes", len(positions))

	return scene, nil

}

func gltfMeshToModel(doc *gltf.Document, mesh *gltf.Mesh) (*Model, error) {

	model := NewModel(mesh.Name)

	for _, v := range mesh.Primitives {

		posAccessor, ok := v.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		posBuffer := [][3]float32{}
		vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)

		if err != nil {
			return nil, err
		}

		offset := len(model.Vertices)

		for _, p := range vertPos {
			model.AddVertex(NewVertex(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if colorAccessor, colorExists := v.Attributes["COLOR_0"]; colorExists {

			vcBuffer := [][4]uint16{}
			colors, err := modeler.ReadColor64(doc, doc.Accessors[colorAccessor], vcBuffer)

			if err != nil {
				return nil, err
			}

			// Keep colors lined up with vertices, even if an earlier primitive in the mesh had none.
			for len(model.Colors) < offset {
				model.AddColor(DefaultColor)
			}

			for _, c := range colors {
				model.AddColor(NewColor(
					float64(c[0])/math.MaxUint16,
					float64(c[1])/math.MaxUint16,
					float64(c[2])/math.MaxUint16,
					float64(c[3])/math.MaxUint16,
				))
			}

		} else if len(model.Colors) > 0 {
			for range vertPos {
				model.AddColor(DefaultColor)
			}
		}

		var indices []int

		if v.Indices != nil {

			indexBuffer := []uint32{}
			read, err := modeler.ReadIndices(doc, doc.Accessors[*v.Indices], indexBuffer)

			if err != nil {
				return nil, err
			}

			indices = make([]int, len(read))
			for i, j := range read {
				indices[i] = offset + int(j)
			}

		} else {

			indices = make([]int, len(vertPos))
			for i := range indices {
				indices[i] = offset + i
			}

		}

		gltfPrimitives(model, v.Mode, indices)

	}

	// Earlier primitives may have been colored while later ones weren't.
	if len(model.Colors) > 0 {
		for len(model.Colors) < len(model.Vertices) {
			model.AddColor(DefaultColor)
		}
	}

	return model, nil

}

// gltfPrimitives adds the Points or LineSegments described by a glTF primitive's mode and (absolute) vertex indices.
func gltfPrimitives(model *Model, mode gltf.PrimitiveMode, indices []int) {

	switch mode {

	case gltf.PrimitivePoints:
		for _, i := range indices {
			model.AddPrimitive(NewPoint(i))
		}

	case gltf.PrimitiveLines:
		for i := 0; i+1 < len(indices); i += 2 {
			model.AddPrimitive(NewLineSegment(indices[i], indices[i+1]))
		}

	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		for i := 0; i+1 < len(indices); i++ {
			model.AddPrimitive(NewLineSegment(indices[i], indices[i+1]))
		}
		if mode == gltf.PrimitiveLineLoop && len(indices) > 2 {
			model.AddPrimitive(NewLineSegment(indices[len(indices)-1], indices[0]))
		}

	default:

		edges := map[[2]int]bool{}

		addEdge := func(a, b int) {
			if a == b {
				return
			}
			key := [2]int{min(a, b), max(a, b)}
			if edges[key] {
				return
			}
			edges[key] = true
			model.AddPrimitive(NewLineSegment(a, b))
		}

		addTriangle := func(a, b, c int) {
			addEdge(a, b)
			addEdge(b, c)
			addEdge(c, a)
		}

		switch mode {
		case gltf.PrimitiveTriangleStrip:
			for i := 0; i+2 < len(indices); i++ {
				addTriangle(indices[i], indices[i+1], indices[i+2])
			}
		case gltf.PrimitiveTriangleFan:
			for i := 1; i+1 < len(indices); i++ {
				addTriangle(indices[0], indices[i], indices[i+1])
			}
		default:
			for i := 0; i+2 < len(indices); i += 3 {
				addTriangle(indices[i], indices[i+1], indices[i+2])
			}
		}

	}

}

// gltfNodeMatrix returns a node's local transform: its matrix if it has a non-identity one, or otherwise its
// translation * rotation * scale. Zero-valued fields (as in documents built in code rather than decoded) are
// treated as their glTF defaults.
func gltfNodeMatrix(node *gltf.Node) Matrix4 {

	mtData := node.Matrix

	matrix := Matrix4{}
	allZero := true

	// glTF matrices are stored column-major.
	for c := 0; c < 4; c++ {
		matrix[c] = Vector{float64(mtData[c*4+0]), float64(mtData[c*4+1]), float64(mtData[c*4+2]), float64(mtData[c*4+3])}
		allZero = allZero && matrix[c].IsZero()
	}

	if !allZero && !matrix.IsIdentity() {
		return matrix
	}

	scale := Vector{float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2]), 0}
	if scale.IsZero() {
		scale = Vector{1, 1, 1, 0}
	}

	rotation := NewMatrix4()
	if q := node.Rotation; q[0] != 0 || q[1] != 0 || q[2] != 0 || q[3] != 0 {
		rotation = quaternionToMatrix(float64(q[0]), float64(q[1]), float64(q[2]), float64(q[3]))
	}

	return NewMatrix4Translate(float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])).
		Mult(rotation).
		Mult(NewMatrix4Scale(scale.X, scale.Y, scale.Z))

}

// quaternionToMatrix returns the rotation matrix for the quaternion (x, y, z, w), normalizing it first.
func quaternionToMatrix(x, y, z, w float64) Matrix4 {

	length := math.Sqrt(x*x + y*y + z*z + w*w)
	if length == 0 {
		return NewMatrix4()
	}
	x, y, z, w = x/length, y/length, z/length, w/length

	return NewMatrix4FromRows(
		Vector{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0},
		Vector{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0},
		Vector{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0},
		Vector{0, 0, 0, 1},
	)

}

func gltfCamera(doc *gltf.Document, index int) (*Camera, error) {

	if index < 0 || index >= len(doc.Cameras) {
		return nil, fmt.Errorf("camera index %d out of range: %w", index, ErrInvalidCamera)
	}

	gltfCam := doc.Cameras[index]

	if gltfCam.Perspective != nil {
		aspect := 1.0
		if gltfCam.Perspective.AspectRatio != nil {
			aspect = float64(*gltfCam.Perspective.AspectRatio)
		}
		return NewPerspectiveCameraFOVY(ToDegrees(float64(gltfCam.Perspective.Yfov)), aspect, float64(gltfCam.Perspective.Znear))
	}

	if gltfCam.Orthographic != nil {
		xmag := float64(gltfCam.Orthographic.Xmag)
		ymag := float64(gltfCam.Orthographic.Ymag)
		return NewOrthographicCamera(-xmag, xmag, -ymag, ymag, float64(gltfCam.Orthographic.Znear))
	}

	return nil, fmt.Errorf("camera %q has no projection: %w", gltfCam.Name, ErrInvalidCamera)

}
