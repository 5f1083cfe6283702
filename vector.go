package wireframe

import (
	"fmt"
	"math"
)

// VecX represents a unit vector pointing along +X (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector pointing along +Y (up).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector pointing along +Z (backwards, towards the viewer). The camera looks down -Z.
var VecZ = NewVector(0, 0, 1)

// Vector represents a direction in homogeneous coordinates. The fourth component, W, is conventionally 0 for
// directions and takes part in Matrix4 multiplication, but is ignored by the length and product functions.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, so method-chaining
// is safe.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
	W float64 // The W (4th) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components. W is 0.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: 0}
}

// NewVectorW creates a new Vector with all four components specified.
func NewVectorW(x, y, z, w float64) Vector {
	return Vector{X: x, Y: y, Z: z, W: w}
}

// Add returns a copy of the calling vector, added together with the other Vector provided (including W).
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it (including W).
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

// Scale returns a copy of the Vector with all four components multiplied by the scalar given.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

// Dot returns the dot product of the calling Vector and the other Vector (ignoring W).
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
// The W component of the result is 0.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Invert returns a copy of the Vector with every component negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	vec.W = -vec.W
	return vec
}

// Magnitude returns the length of the Vector (ignoring the Vector's W component).
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector (ignoring the Vector's W component); this is faster than
// Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// It does not alter the W component of the Vector. A zero-length Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-12 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// IsZero returns true if the X, Y, and Z components are all 0.
func (vec Vector) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// String returns a string representation of the Vector.
func (vec Vector) String() string {
	return fmt.Sprintf("[%.4f, %.4f, %.4f, %.4f]", vec.X, vec.Y, vec.Z, vec.W)
}

// Vertex represents a point in homogeneous coordinates. Vertices are values and never change once built;
// W is 1 for authored points, though pipeline stages may produce other values transiently.
type Vertex struct {
	X, Y, Z, W float64
}

// NewVertex returns a new Vertex at the given location, with W set to 1.
func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z, W: 1}
}

// NewVertexW returns a new Vertex with all four homogeneous components specified.
func NewVertexW(x, y, z, w float64) Vertex {
	return Vertex{X: x, Y: y, Z: z, W: w}
}

// Lerp linearly interpolates between the calling Vertex (at t = 0) and the other Vertex (at t = 1).
func (v Vertex) Lerp(other Vertex, t float64) Vertex {
	return Vertex{
		X: (1-t)*v.X + t*other.X,
		Y: (1-t)*v.Y + t*other.Y,
		Z: (1-t)*v.Z + t*other.Z,
		W: (1-t)*v.W + t*other.W,
	}
}

// IsFinite returns false if any component of the Vertex is NaN or infinite.
func (v Vertex) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

// String returns a string representation of the Vertex.
func (v Vertex) String() string {
	return fmt.Sprintf("(x,y,z,w)=(% .5f % .5f % .5f % .5f)", v.X, v.Y, v.Z, v.W)
}
