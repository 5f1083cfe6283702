package wireframe

import (
	"fmt"
	"math"
	"strings"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is made of four column
// Vectors (i.e. matrix[3] holds the translation column), and transforms column Vertices and Vectors
// multiplied on its right.
type Matrix4 [4]Vector

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return NewMatrix4Scale(1, 1, 1)
}

// NewMatrix4FromColumns returns a new Matrix4 using the four Vectors provided as its columns.
func NewMatrix4FromColumns(c0, c1, c2, c3 Vector) Matrix4 {
	return Matrix4{c0, c1, c2, c3}
}

// NewMatrix4FromRows returns a new Matrix4 using the four Vectors provided as its rows.
func NewMatrix4FromRows(r0, r1, r2, r3 Vector) Matrix4 {
	return Matrix4{r0, r1, r2, r3}.Transposed()
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3] = Vector{X: x, Y: y, Z: z, W: 1}
	return mat
}

// NewMatrix4Scale returns a new diagonal Matrix4 that scales by the x, y, and z values provided. 1, 1, 1 is the identity.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	return Matrix4{
		{X: x},
		{Y: y},
		{Z: z},
		{W: 1},
	}
}

// NewMatrix4ScaleUniform returns a new Matrix4 that scales by the same amount along each axis.
func NewMatrix4ScaleUniform(scale float64) Matrix4 {
	return NewMatrix4Scale(scale, scale, scale)
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in degrees) around the axis
// vector (x, y, z). This rotation works as though you pierced the object through by the axis, and then
// rotated it counter-clockwise (looking down the axis towards the origin) by the angle.
// The axis is normalized first; a zero-length or non-finite axis returns ErrZeroAxis.
func NewMatrix4Rotate(theta, x, y, z float64) (Matrix4, error) {

	axis := NewVector(x, y, z)
	norm := axis.Magnitude()

	if norm == 0 || !isFinite(norm) || !isFinite(theta) {
		return NewMatrix4(), fmt.Errorf("rotate by %v around (%v, %v, %v): %w", theta, x, y, z, ErrZeroAxis)
	}

	ux, uy, uz := x/norm, y/norm, z/norm
	radians := ToRadians(theta)
	c := math.Cos(radians)
	s := math.Sin(radians)
	m := 1 - c

	return Matrix4{
		{X: ux*ux*m + c, Y: uy*ux*m + uz*s, Z: uz*ux*m - uy*s},
		{X: ux*uy*m - uz*s, Y: uy*uy*m + c, Z: uz*uy*m + ux*s},
		{X: ux*uz*m + uy*s, Y: uy*uz*m - ux*s, Z: uz*uz*m + c},
		{W: 1},
	}, nil

}

// NewMatrix4RotateX returns a new Matrix4 that rotates around the X axis by theta degrees.
func NewMatrix4RotateX(theta float64) Matrix4 {
	mat, _ := NewMatrix4Rotate(theta, 1, 0, 0)
	return mat
}

// NewMatrix4RotateY returns a new Matrix4 that rotates around the Y axis by theta degrees.
func NewMatrix4RotateY(theta float64) Matrix4 {
	mat, _ := NewMatrix4Rotate(theta, 0, 1, 0)
	return mat
}

// NewMatrix4RotateZ returns a new Matrix4 that rotates around the Z axis by theta degrees.
func NewMatrix4RotateZ(theta float64) Matrix4 {
	mat, _ := NewMatrix4Rotate(theta, 0, 0, 1)
	return mat
}

// Column returns the indexed column of the Matrix4.
func (matrix Matrix4) Column(index int) Vector {
	return matrix[index]
}

// Row returns the indexed row of the Matrix4.
func (matrix Matrix4) Row(index int) Vector {
	switch index {
	case 0:
		return Vector{matrix[0].X, matrix[1].X, matrix[2].X, matrix[3].X}
	case 1:
		return Vector{matrix[0].Y, matrix[1].Y, matrix[2].Y, matrix[3].Y}
	case 2:
		return Vector{matrix[0].Z, matrix[1].Z, matrix[2].Z, matrix[3].Z}
	}
	return Vector{matrix[0].W, matrix[1].W, matrix[2].W, matrix[3].W}
}

// Transposed returns a transposed copy of the Matrix4 (rows become columns).
func (matrix Matrix4) Transposed() Matrix4 {
	return Matrix4{matrix.Row(0), matrix.Row(1), matrix.Row(2), matrix.Row(3)}
}

// MultScalar returns a copy of the Matrix4 with every entry multiplied by s.
func (matrix Matrix4) MultScalar(s float64) Matrix4 {
	for i := range matrix {
		matrix[i] = matrix[i].Scale(s)
	}
	return matrix
}

// MultVector returns the Vector produced by multiplying the Matrix4 by the Vector v (matrix * v).
func (matrix Matrix4) MultVector(v Vector) Vector {
	return Vector{
		X: matrix[0].X*v.X + matrix[1].X*v.Y + matrix[2].X*v.Z + matrix[3].X*v.W,
		Y: matrix[0].Y*v.X + matrix[1].Y*v.Y + matrix[2].Y*v.Z + matrix[3].Y*v.W,
		Z: matrix[0].Z*v.X + matrix[1].Z*v.Y + matrix[2].Z*v.Z + matrix[3].Z*v.W,
		W: matrix[0].W*v.X + matrix[1].W*v.Y + matrix[2].W*v.Z + matrix[3].W*v.W,
	}
}

// MultVertex returns the Vertex produced by multiplying the Matrix4 by the Vertex v (matrix * v).
func (matrix Matrix4) MultVertex(v Vertex) Vertex {
	r := matrix.MultVector(Vector(v))
	return Vertex(r)
}

// Mult composes two transforms, returning matrix * other. When the result is applied to a Vertex,
// other's effect happens first and the calling Matrix4's effect second; this is how a child
// Position's own matrix is multiplied on the right of its parent's accumulated matrix.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {
	return Matrix4{
		matrix.MultVector(other[0]),
		matrix.MultVector(other[1]),
		matrix.MultVector(other[2]),
		matrix.MultVector(other[3]),
	}
}

// IsIdentity returns true if the Matrix4 is exactly an identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix == NewMatrix4()
}

// ApproxEqual returns true if every entry of the two matrices is within epsilon of each other.
func (matrix Matrix4) ApproxEqual(other Matrix4, epsilon float64) bool {
	for i := 0; i < 4; i++ {
		a, b := matrix[i], other[i]
		if math.Abs(a.X-b.X) > epsilon || math.Abs(a.Y-b.Y) > epsilon ||
			math.Abs(a.Z-b.Z) > epsilon || math.Abs(a.W-b.W) > epsilon {
			return false
		}
	}
	return true
}

// String returns a row-by-row string representation of the Matrix4.
func (matrix Matrix4) String() string {
	s := strings.Builder{}
	for i := 0; i < 4; i++ {
		row := matrix.Row(i)
		if i == 0 {
			s.WriteString("[")
		} else {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "[% .5f % .5f % .5f % .5f]", row.X, row.Y, row.Z, row.W)
		if i == 3 {
			s.WriteString("]")
		}
		s.WriteString("\n")
	}
	return s.String()
}
