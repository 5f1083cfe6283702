package framebuffer

import (
	"image"

	"github.com/solarlune/wireframe"
)

// Viewport is a rectangular region of a FrameBuffer. Its own pixel (0, 0) is the region's upper-left corner,
// and writes that fall outside of the region are dropped, so a Viewport can never draw over its neighbors.
// A Viewport satisfies pipeline.Viewport.
type Viewport struct {
	fb            *FrameBuffer
	x, y          int
	width, height int
	background    wireframe.Color
}

// Width returns the width of the Viewport in pixels.
func (vp *Viewport) Width() int { return vp.width }

// Height returns the height of the Viewport in pixels.
func (vp *Viewport) Height() int { return vp.height }

// Position returns the location of the Viewport's upper-left corner within its FrameBuffer.
func (vp *Viewport) Position() (x, y int) { return vp.x, vp.y }

// Rect returns the rectangle the Viewport covers in its FrameBuffer's coordinates.
func (vp *Viewport) Rect() image.Rectangle {
	return image.Rect(vp.x, vp.y, vp.x+vp.width, vp.y+vp.height)
}

// FrameBuffer returns the FrameBuffer the Viewport belongs to.
func (vp *Viewport) FrameBuffer() *FrameBuffer { return vp.fb }

// BackgroundColor returns the Viewport's background color, which anti-aliased lines blend toward.
func (vp *Viewport) BackgroundColor() wireframe.Color { return vp.background }

// SetBackgroundColor sets the Viewport's background color. It does not clear the Viewport.
func (vp *Viewport) SetBackgroundColor(color wireframe.Color) { vp.background = color }

// Clear fills the Viewport with its background color.
func (vp *Viewport) Clear() {
	vp.ClearColor(vp.background)
}

// ClearColor fills the Viewport with the color given.
func (vp *Viewport) ClearColor(color wireframe.Color) {
	r, g, b, a := color.RGBA8()
	for y := vp.y; y < vp.y+vp.height; y++ {
		for x := vp.x; x < vp.x+vp.width; x++ {
			vp.fb.setRaw(x, y, r, g, b, a)
		}
	}
}

// SetPixel sets the pixel at (x, y) in Viewport coordinates. Pixels outside of the Viewport are ignored.
func (vp *Viewport) SetPixel(x, y int, color wireframe.Color) {
	if x < 0 || x >= vp.width || y < 0 || y >= vp.height {
		return
	}
	vp.fb.SetPixel(vp.x+x, vp.y+y, color)
}

// Pixel returns the pixel at (x, y) in Viewport coordinates, or the background color if (x, y) is outside
// of the Viewport.
func (vp *Viewport) Pixel(x, y int) wireframe.Color {
	if x < 0 || x >= vp.width || y < 0 || y >= vp.height {
		return vp.background
	}
	return vp.fb.Pixel(vp.x+x, vp.y+y)
}

// Image returns a copy of the Viewport's pixels.
func (vp *Viewport) Image() *image.NRGBA {
	return vp.fb.SubImage(vp.Rect())
}
