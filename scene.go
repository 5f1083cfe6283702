package wireframe

import (
	"fmt"
	"strings"
)

// Scene is the top level of a renderable description: a Camera plus an ordered list of root Positions.
type Scene struct {
	Name      string
	Camera    *Camera
	Positions []*Position
	Debug     bool // If pipeline stage diagnostics should be logged for every Position in the Scene
}

// NewScene returns a new Scene using the given Camera. If camera is nil, the default Camera is used.
func NewScene(name string, camera *Camera) *Scene {
	if camera == nil {
		camera = NewCamera()
	}
	return &Scene{
		Name:      name,
		Camera:    camera,
		Positions: []*Position{},
	}
}

// AddPosition adds root Positions to the Scene.
func (scene *Scene) AddPosition(positions ...*Position) {
	scene.Positions = append(scene.Positions, positions...)
}

// Position returns the root Position at the given index, or nil if the index is out of range.
func (scene *Scene) Position(index int) *Position {
	if index < 0 || index >= len(scene.Positions) {
		return nil
	}
	return scene.Positions[index]
}

// walk visits every Position reachable from the Scene's roots once, stopping early if fn returns false.
func (scene *Scene) walk(fn func(p *Position) bool) {

	visited := map[*Position]bool{}

	var visit func(p *Position) bool

	visit = func(p *Position) bool {
		if p == nil || visited[p] {
			return true
		}
		visited[p] = true
		if !fn(p) {
			return false
		}
		for _, child := range p.children {
			if !visit(child) {
				return false
			}
		}
		return true
	}

	for _, p := range scene.Positions {
		if !visit(p) {
			return
		}
	}

}

// PositionByModelName returns the first Position (searching depth-first from the roots) holding a Model
// with the given name, or nil if there isn't one.
func (scene *Scene) PositionByModelName(name string) *Position {
	var found *Position
	scene.walk(func(p *Position) bool {
		if p.Model != nil && p.Model.Name == name {
			found = p
			return false
		}
		return true
	})
	return found
}

// ModelByName returns the first Model in the Scene with the given name, or nil if there isn't one.
func (scene *Scene) ModelByName(name string) *Model {
	if p := scene.PositionByModelName(name); p != nil {
		return p.Model
	}
	return nil
}

// Get finds a Position by a slash-separated path of names starting from the Scene's root Positions
// (i.e. "Body/Arm/Hand").
func (scene *Scene) Get(path string) *Position {
	root := NewPosition("")
	root.children = scene.Positions
	return root.Get(path)
}

// String returns a description of the Scene and its hierarchy.
func (scene *Scene) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "Scene: %s\n", scene.Name)
	if scene.Camera != nil {
		s.WriteString(scene.Camera.String())
	}
	for _, p := range scene.Positions {
		s.WriteString(p.HierarchyAsString())
	}
	return s.String()
}
