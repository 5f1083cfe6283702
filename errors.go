package wireframe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCamera is returned when a Camera's view volume is malformed (near <= 0, right <= left,
	// top <= bottom, or a non-finite bound).
	ErrInvalidCamera = errors.New("wireframe: invalid camera")
	// ErrZeroAxis is returned when building a rotation around a zero-length axis.
	ErrZeroAxis = errors.New("wireframe: zero-length rotation axis")
	// ErrCycle is returned when a Position would become (or is found to be) reachable from itself.
	ErrCycle = errors.New("wireframe: position cycle")
)

// StructuralError reports a Primitive that references a vertex or color index outside of its Model's lists.
// The pipeline skips the offending Primitive and keeps rendering the rest of the Model.
type StructuralError struct {
	Model     string    // Name of the Model owning the Primitive
	Primitive Primitive // The offending Primitive
	Kind      string    // "vertex" or "color"
	Index     int       // The out-of-range index
	Length    int       // Length of the list the index was checked against
}

func (err *StructuralError) Error() string {
	return fmt.Sprintf("wireframe: model %q: %v: %s index %d out of range [0, %d)", err.Model, err.Primitive, err.Kind, err.Index, err.Length)
}
