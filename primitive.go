package wireframe

import "fmt"

// Primitive is a piece of geometry drawn from a Model's vertex and color lists by index.
// The two kinds of Primitive are Point and LineSegment.
type Primitive interface {
	// VertexIndices returns the indices into the owning Model's vertex list.
	VertexIndices() []int
	// ColorIndices returns the indices into the owning Model's color list.
	ColorIndices() []int
	String() string
	primitive()
}

// Point is a single vertex drawn as a square of pixels. A Radius of 0 draws one pixel.
type Point struct {
	VertexIndex int
	ColorIndex  int
	Radius      int
}

// NewPoint returns a Point whose color index is the same as its vertex index.
func NewPoint(vertexIndex int) Point {
	return Point{VertexIndex: vertexIndex, ColorIndex: vertexIndex}
}

// NewPointColor returns a Point using the given vertex and color indices.
func NewPointColor(vertexIndex, colorIndex int) Point {
	return Point{VertexIndex: vertexIndex, ColorIndex: colorIndex}
}

func (point Point) VertexIndices() []int { return []int{point.VertexIndex} }
func (point Point) ColorIndices() []int  { return []int{point.ColorIndex} }
func (point Point) primitive()           {}

func (point Point) String() string {
	return fmt.Sprintf("Point: ([%d], [%d]) radius = %d", point.VertexIndex, point.ColorIndex, point.Radius)
}

// LineSegment is a straight line between two vertices, with its color interpolated between two colors.
type LineSegment struct {
	Vertex [2]int
	Color  [2]int
}

// NewLineSegment returns a LineSegment whose color indices are the same as its vertex indices.
func NewLineSegment(v0, v1 int) LineSegment {
	return LineSegment{Vertex: [2]int{v0, v1}, Color: [2]int{v0, v1}}
}

// NewLineSegmentColor returns a LineSegment drawn in the single color at colorIndex.
func NewLineSegmentColor(v0, v1, colorIndex int) LineSegment {
	return LineSegment{Vertex: [2]int{v0, v1}, Color: [2]int{colorIndex, colorIndex}}
}

// NewLineSegmentColors returns a LineSegment with separate color indices for each endpoint.
func NewLineSegmentColors(v0, v1, c0, c1 int) LineSegment {
	return LineSegment{Vertex: [2]int{v0, v1}, Color: [2]int{c0, c1}}
}

func (ls LineSegment) VertexIndices() []int { return ls.Vertex[:] }
func (ls LineSegment) ColorIndices() []int  { return ls.Color[:] }
func (ls LineSegment) primitive()           {}

func (ls LineSegment) String() string {
	return fmt.Sprintf("LineSegment: ([%d, %d], [%d, %d])", ls.Vertex[0], ls.Vertex[1], ls.Color[0], ls.Color[1])
}
