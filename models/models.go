// Package models builds procedural wireframe Models: boxes, grids, circles, disks, spheres, tori, prisms,
// axes, and point clouds. Generated Models have no colors; use the shading functions (SetColor and friends)
// to color them, or let the renderer fall back to wireframe.DefaultColor.
package models

import (
	"fmt"
	"math"

	"github.com/solarlune/wireframe"
)

// Box returns a Model of a rectangular box with one corner at the origin and the opposite corner at
// (xs, ys, zs).
func Box(xs, ys, zs float64) *wireframe.Model {

	box := wireframe.NewModel(fmt.Sprintf("Box(%v, %v, %v)", xs, ys, zs))

	box.AddVertex(
		wireframe.NewVertex(0, 0, 0),
		wireframe.NewVertex(xs, 0, 0),
		wireframe.NewVertex(xs, 0, zs),
		wireframe.NewVertex(0, 0, zs),
		wireframe.NewVertex(0, ys, 0),
		wireframe.NewVertex(xs, ys, 0),
		wireframe.NewVertex(xs, ys, zs),
		wireframe.NewVertex(0, ys, zs),
	)

	// Bottom face, top face, then the four uprights.
	for i := 0; i < 4; i++ {
		box.AddPrimitive(wireframe.NewLineSegment(i, (i+1)%4))
	}
	for i := 0; i < 4; i++ {
		box.AddPrimitive(wireframe.NewLineSegment(4+i, 4+(i+1)%4))
	}
	for i := 0; i < 4; i++ {
		box.AddPrimitive(wireframe.NewLineSegment(i, i+4))
	}

	return box

}

// Cube returns a Model of a cube of side 2 centered on the origin.
func Cube() *wireframe.Model {
	cube := Box(2, 2, 2)
	cube.Name = "Cube"
	for i, v := range cube.Vertices {
		cube.Vertices[i] = wireframe.NewVertex(v.X-1, v.Y-1, v.Z-1)
	}
	return cube
}

// Axes3D returns a Model of three line segments along the x, y, and z axes spanning the given ranges,
// colored red, green, and blue respectively.
func Axes3D(xMin, xMax, yMin, yMax, zMin, zMax float64) *wireframe.Model {

	axes := wireframe.NewModel("Axes 3D")

	axes.AddVertex(
		wireframe.NewVertex(xMin, 0, 0),
		wireframe.NewVertex(xMax, 0, 0),
		wireframe.NewVertex(0, yMin, 0),
		wireframe.NewVertex(0, yMax, 0),
		wireframe.NewVertex(0, 0, zMin),
		wireframe.NewVertex(0, 0, zMax),
	)

	axes.AddColor(
		wireframe.NewColorRGB(1, 0, 0),
		wireframe.NewColorRGB(0, 1, 0),
		wireframe.NewColorRGB(0, 0, 1),
	)

	axes.AddPrimitive(
		wireframe.NewLineSegmentColor(0, 1, 0),
		wireframe.NewLineSegmentColor(2, 3, 1),
		wireframe.NewLineSegmentColor(4, 5, 2),
	)

	return axes

}

// Axes2D returns a Model of the x and y axes spanning the given ranges in the plane z = 0, both in the
// color given.
func Axes2D(xMin, xMax, yMin, yMax float64, color wireframe.Color) *wireframe.Model {

	axes := wireframe.NewModel("Axes 2D")

	axes.AddVertex(
		wireframe.NewVertex(xMin, 0, 0),
		wireframe.NewVertex(xMax, 0, 0),
		wireframe.NewVertex(0, yMin, 0),
		wireframe.NewVertex(0, yMax, 0),
	)

	axes.AddColor(color)

	axes.AddPrimitive(
		wireframe.NewLineSegmentColor(0, 1, 0),
		wireframe.NewLineSegmentColor(2, 3, 0),
	)

	return axes

}

// SquareGrid returns a Model of a grid in the plane z = 0 over [xMin, xMax] x [yMin, yMax], divided into
// xDivisions columns and yDivisions rows. Division counts below 1 are treated as 1.
func SquareGrid(xMin, xMax, yMin, yMax float64, xDivisions, yDivisions int) *wireframe.Model {

	xDivisions = max(xDivisions, 1)
	yDivisions = max(yDivisions, 1)

	grid := wireframe.NewModel(fmt.Sprintf("SquareGrid(%v, %v, %v, %v, %d, %d)", xMin, xMax, yMin, yMax, xDivisions, yDivisions))

	xStep := (xMax - xMin) / float64(xDivisions)
	yStep := (yMax - yMin) / float64(yDivisions)

	// Vertices run in rows of (xDivisions + 1), from yMin upward.
	for j := 0; j <= yDivisions; j++ {
		for i := 0; i <= xDivisions; i++ {
			grid.AddVertex(wireframe.NewVertex(xMin+float64(i)*xStep, yMin+float64(j)*yStep, 0))
		}
	}

	index := func(i, j int) int { return j*(xDivisions+1) + i }

	for j := 0; j <= yDivisions; j++ {
		grid.AddPrimitive(wireframe.NewLineSegment(index(0, j), index(xDivisions, j)))
	}

	for i := 0; i <= xDivisions; i++ {
		grid.AddPrimitive(wireframe.NewLineSegment(index(i, 0), index(i, yDivisions)))
	}

	return grid

}

// ring adds k vertices evenly spaced around a circle of radius r in the plane z = z0 (starting on the
// positive x-axis), returning the index of the first.
func ring(model *wireframe.Model, r, z0 float64, k int) int {
	start := len(model.Vertices)
	for j := 0; j < k; j++ {
		theta := 2 * math.Pi * float64(j) / float64(k)
		model.AddVertex(wireframe.NewVertex(r*math.Cos(theta), r*math.Sin(theta), z0))
	}
	return start
}

// loop connects k consecutive vertices starting at start into a closed loop.
func loop(model *wireframe.Model, start, k int) {
	for j := 0; j < k; j++ {
		model.AddPrimitive(wireframe.NewLineSegment(start+j, start+(j+1)%k))
	}
}

// Circle returns a Model of a circle of radius r in the plane z = 0, approximated by a k-sided polygon.
// k below 3 is treated as 3.
func Circle(r float64, k int) *wireframe.Model {
	k = max(k, 3)
	circle := wireframe.NewModel(fmt.Sprintf("Circle(%v, %d)", r, k))
	loop(circle, ring(circle, r, 0, k), k)
	return circle
}

// Disk returns a Model of a disk of radius r in the plane z = 0, drawn as n concentric circles crossed by
// k spokes from the center. n below 1 is treated as 1, and k below 3 as 3.
func Disk(r float64, n, k int) *wireframe.Model {

	n = max(n, 1)
	k = max(k, 3)

	disk := wireframe.NewModel(fmt.Sprintf("Disk(%v, %d, %d)", r, n, k))

	disk.AddVertex(wireframe.NewVertex(0, 0, 0))

	for i := 1; i <= n; i++ {
		loop(disk, ring(disk, r*float64(i)/float64(n), 0, k), k)
	}

	// Spokes, from the center out through each circle.
	for j := 0; j < k; j++ {
		prev := 0
		for i := 0; i < n; i++ {
			next := 1 + i*k + j
			disk.AddPrimitive(wireframe.NewLineSegment(prev, next))
			prev = next
		}
	}

	return disk

}

// Sphere returns a Model of a sphere of radius r centered on the origin, drawn as n circles of latitude
// and k half-circles of longitude running from the north pole (0, r, 0) to the south pole.
// n below 1 is treated as 1, and k below 3 as 3.
func Sphere(r float64, n, k int) *wireframe.Model {

	n = max(n, 1)
	k = max(k, 3)

	sphere := wireframe.NewModel(fmt.Sprintf("Sphere(%v, %d, %d)", r, n, k))

	north := len(sphere.Vertices)
	sphere.AddVertex(wireframe.NewVertex(0, r, 0))
	south := len(sphere.Vertices)
	sphere.AddVertex(wireframe.NewVertex(0, -r, 0))

	// Circles of latitude, evenly spaced in angle between the poles.
	start := len(sphere.Vertices)
	for i := 1; i <= n; i++ {
		phi := math.Pi * float64(i) / float64(n+1)
		y := r * math.Cos(phi)
		ringRadius := r * math.Sin(phi)
		for j := 0; j < k; j++ {
			theta := 2 * math.Pi * float64(j) / float64(k)
			sphere.AddVertex(wireframe.NewVertex(ringRadius*math.Sin(theta), y, ringRadius*math.Cos(theta)))
		}
		loop(sphere, start+(i-1)*k, k)
	}

	for j := 0; j < k; j++ {
		prev := north
		for i := 0; i < n; i++ {
			next := start + i*k + j
			sphere.AddPrimitive(wireframe.NewLineSegment(prev, next))
			prev = next
		}
		sphere.AddPrimitive(wireframe.NewLineSegment(prev, south))
	}

	return sphere

}

// Torus returns a Model of a torus centered on the origin and lying in the xz-plane. r1 is the distance from
// the center to the middle of the tube, and r2 is the tube's radius. The torus is drawn as n circles around
// the tube and k circles around the hole; n and k below 3 are treated as 3.
func Torus(r1, r2 float64, n, k int) *wireframe.Model {

	n = max(n, 3)
	k = max(k, 3)

	torus := wireframe.NewModel(fmt.Sprintf("Torus(%v, %v, %d, %d)", r1, r2, n, k))

	// Vertex (i, j) is at angle i around the hole and angle j around the tube.
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		for j := 0; j < k; j++ {
			phi := 2 * math.Pi * float64(j) / float64(k)
			d := r1 + r2*math.Cos(phi)
			torus.AddVertex(wireframe.NewVertex(d*math.Cos(theta), r2*math.Sin(phi), -d*math.Sin(theta)))
		}
	}

	index := func(i, j int) int { return (i%n)*k + j%k }

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			torus.AddPrimitive(
				wireframe.NewLineSegment(index(i, j), index(i, j+1)),
				wireframe.NewLineSegment(index(i, j), index(i+1, j)),
			)
		}
	}

	return torus

}

// Prism returns a Model of a right prism centered on the origin whose ends are regular k-sided polygons of
// circumradius r lying in the planes y = ±h/2. k below 3 is treated as 3.
func Prism(r, h float64, k int) *wireframe.Model {

	k = max(k, 3)

	prism := wireframe.NewModel(fmt.Sprintf("Prism(%v, %v, %d)", r, h, k))

	for _, y := range []float64{h / 2, -h / 2} {
		for j := 0; j < k; j++ {
			theta := 2 * math.Pi * float64(j) / float64(k)
			prism.AddVertex(wireframe.NewVertex(r*math.Sin(theta), y, r*math.Cos(theta)))
		}
	}

	loop(prism, 0, k)
	loop(prism, k, k)

	for j := 0; j < k; j++ {
		prism.AddPrimitive(wireframe.NewLineSegment(j, j+k))
	}

	return prism

}

// PointCloud returns a new Model drawing every vertex used by the given Model's primitives as a Point of the
// given radius. Each Point takes the color its vertex had in the first primitive that used it. The new Model
// has its own copies of the vertex and color lists.
func PointCloud(model *wireframe.Model, radius int) *wireframe.Model {

	cloud := wireframe.NewModel("PointCloud: " + model.Name)
	cloud.Visible = model.Visible
	cloud.AddVertex(model.Vertices...)
	cloud.AddColor(model.Colors...)

	colorOf := map[int]int{}
	order := []int{}

	for _, p := range model.Primitives {
		vIndices, cIndices := p.VertexIndices(), p.ColorIndices()
		for i, v := range vIndices {
			if _, seen := colorOf[v]; !seen {
				colorOf[v] = cIndices[i]
				order = append(order, v)
			}
		}
	}

	for _, v := range order {
		pt := wireframe.NewPointColor(v, colorOf[v])
		pt.Radius = radius
		cloud.AddPrimitive(pt)
	}

	return cloud

}
