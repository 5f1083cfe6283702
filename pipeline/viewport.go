package pipeline

import "github.com/solarlune/wireframe"

// Viewport is the rectangular pixel surface the Rasterize stage writes into. Pixel (0, 0) is the
// upper-left corner; x grows to the right and y grows downward.
type Viewport interface {
	Width() int
	Height() int
	// BackgroundColor is the color anti-aliased lines blend toward.
	BackgroundColor() wireframe.Color
	// SetPixel sets the pixel at (x, y) to the given color. Rasterize never calls it with coordinates
	// outside of [0, Width()) x [0, Height()).
	SetPixel(x, y int, color wireframe.Color)
}
