package wireframe

import (
	"fmt"
	"strconv"
	"strings"
)

// Position places an optional Model (and any nested Positions) into a Scene using a local transformation
// Matrix4. Nested Positions inherit the transforms of every Position above them.
//
// The same Position may be nested under several parents, so a Scene's Positions form a directed acyclic
// graph rather than a strict tree; this lets one piece of geometry be drawn in several places. A Position
// may never be reachable from itself.
type Position struct {
	Name     string
	Model    *Model  // The Model drawn at this Position; may be nil
	Matrix   Matrix4 // The local transform, applied on the right of the accumulated parent transform
	Visible  bool    // An invisible Position hides its Model and everything nested beneath it
	Debug    bool    // If pipeline stage diagnostics should be logged for this Position
	children []*Position
}

// NewPosition returns a new, visible Position with an identity matrix and no Model.
func NewPosition(name string) *Position {
	return &Position{
		Name:     name,
		Matrix:   NewMatrix4(),
		Visible:  true,
		children: []*Position{},
	}
}

// NewPositionModel returns a new Position holding the given Model, named after it.
func NewPositionModel(model *Model) *Position {
	pos := NewPosition("")
	if model != nil {
		pos.Name = model.Name
	}
	pos.Model = model
	return pos
}

// SetTranslation sets the Position's matrix to a translation by the amounts given.
func (position *Position) SetTranslation(dx, dy, dz float64) {
	position.Matrix = NewMatrix4Translate(dx, dy, dz)
}

// Children returns the Positions nested directly beneath this one, in order.
func (position *Position) Children() []*Position {
	return position.children
}

// reaches returns true if target can be found by following nested Positions down from position
// (including position itself).
func (position *Position) reaches(target *Position) bool {

	visited := map[*Position]bool{}

	var walk func(p *Position) bool

	walk = func(p *Position) bool {
		if p == target {
			return true
		}
		if visited[p] {
			return false
		}
		visited[p] = true
		for _, child := range p.children {
			if walk(child) {
				return true
			}
		}
		return false
	}

	return walk(position)

}

// AddChildren nests the Positions given beneath this one. A child that is already nested elsewhere is shared,
// not moved. If adding a child would make this Position reachable from itself, nothing is added and an error
// wrapping ErrCycle is returned.
func (position *Position) AddChildren(children ...*Position) error {

	for _, child := range children {
		if child == nil {
			return fmt.Errorf("position %q: cannot nest a nil position", position.Name)
		}
		if child.reaches(position) {
			return fmt.Errorf("position %q: nesting %q: %w", position.Name, child.Name, ErrCycle)
		}
	}

	position.children = append(position.children, children...)
	return nil

}

// SetChild replaces the nested Position at the given index, with the same cycle check as AddChildren.
func (position *Position) SetChild(index int, child *Position) error {

	if index < 0 || index >= len(position.children) {
		return fmt.Errorf("position %q: child index %d out of range [0, %d)", position.Name, index, len(position.children))
	}

	if child == nil {
		return fmt.Errorf("position %q: cannot nest a nil position", position.Name)
	}

	if child.reaches(position) {
		return fmt.Errorf("position %q: nesting %q: %w", position.Name, child.Name, ErrCycle)
	}

	position.children[index] = child
	return nil

}

// Get searches a Position's nested hierarchy using a string to find a specified Position. The path is in the format of
// names of Positions, separated by forward slashes ('/'), and is relative to the Position you use to call Get. As an example,
// if you had a hand nested in an arm nested in a body, body.Get("Arm/Hand") would return the hand.
// Get returns nil if no Position is found at the path.
func (position *Position) Get(path string) *Position {

	split := []string{}

	for _, s := range strings.Split(path, `/`) {
		if s = strings.TrimSpace(s); len(s) > 0 {
			split = append(split, s)
		}
	}

	current := position

	for _, name := range split {

		var found *Position

		for _, child := range current.children {
			if child.Name == name {
				found = child
				break
			}
		}

		if found == nil {
			return nil
		}

		current = found

	}

	return current

}

// HierarchyAsString returns a string displaying the hierarchy of this Position, and all nested Positions.
// This is a useful function to debug the layout of a scene, for example.
func (position *Position) HierarchyAsString() string {

	var printPosition func(p *Position, level int, path map[*Position]bool) string

	printPosition = func(p *Position, level int, path map[*Position]bool) string {

		str := ""

		for i := 0; i < level; i++ {
			str += "    |"
		}

		if level > 0 {
			str += "-"
		}

		prefix := "POS"
		if p.Model != nil {
			prefix = "MODEL"
		}

		translation := p.Matrix[3]
		floatTruncation := 2
		tStr := "[" + strconv.FormatFloat(translation.X, 'f', floatTruncation, 64) + ", " + strconv.FormatFloat(translation.Y, 'f', floatTruncation, 64) + ", " + strconv.FormatFloat(translation.Z, 'f', floatTruncation, 64) + "]"

		str += " [" + prefix + "] " + p.Name + " : " + tStr

		if !p.Visible {
			str += " (hidden)"
		}

		str += "\n"

		if path[p] {
			return str
		}

		path[p] = true
		for _, child := range p.children {
			str += printPosition(child, level+1, path)
		}
		delete(path, p)

		return str
	}

	return printPosition(position, 0, map[*Position]bool{})

}

// String returns a short description of the Position.
func (position *Position) String() string {
	modelName := "<none>"
	if position.Model != nil {
		modelName = position.Model.Name
	}
	return fmt.Sprintf("Position: %s (model = %s, visible = %t, children = %d)\n%v", position.Name, modelName, position.Visible, len(position.children), position.Matrix)
}
