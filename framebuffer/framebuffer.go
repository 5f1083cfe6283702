// Package framebuffer provides the pixel storage the wireframe pipeline renders into: a FrameBuffer
// holding a rectangle of RGBA pixels, and Viewports, sub-rectangles of a FrameBuffer that the pipeline
// draws into, along with writers for saving a FrameBuffer to disk.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/solarlune/wireframe"
)

// ErrViewportBounds is returned when a Viewport would extend past the edges of its FrameBuffer.
var ErrViewportBounds = errors.New("framebuffer: viewport out of bounds")

// FrameBuffer is a rectangle of pixels with 8-bit RGBA channels. Pixel (0, 0) is the upper-left corner.
// A FrameBuffer always has a current Viewport, which starts out covering the whole buffer.
type FrameBuffer struct {
	width      int
	height     int
	pix        []uint8 // RGBA, 4 bytes per pixel, rows top to bottom
	background wireframe.Color
	viewport   *Viewport
}

// NewFrameBuffer returns a new FrameBuffer of the given size, cleared to the background color.
// Non-positive dimensions are treated as 0.
func NewFrameBuffer(width, height int, background wireframe.Color) *FrameBuffer {

	width = max(width, 0)
	height = max(height, 0)

	fb := &FrameBuffer{
		width:      width,
		height:     height,
		pix:        make([]uint8, width*height*4),
		background: background,
	}

	fb.viewport = &Viewport{fb: fb, width: width, height: height, background: background}
	fb.Clear()

	return fb

}

// NewFrameBufferFromImage returns a new FrameBuffer holding a copy of the image given.
func NewFrameBufferFromImage(img image.Image, background wireframe.Color) *FrameBuffer {
	bounds := img.Bounds()
	fb := NewFrameBuffer(bounds.Dx(), bounds.Dy(), background)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			fb.setRaw(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return fb
}

// Width returns the width of the FrameBuffer in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the height of the FrameBuffer in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Pix returns the FrameBuffer's raw pixel data: 4 bytes (R, G, B, A) per pixel, in rows from top to bottom.
// The slice is the FrameBuffer's own storage, suitable for handing to ebiten.Image.WritePixels.
func (fb *FrameBuffer) Pix() []uint8 { return fb.pix }

// BackgroundColor returns the color the FrameBuffer is cleared to.
func (fb *FrameBuffer) BackgroundColor() wireframe.Color { return fb.background }

// SetBackgroundColor sets the color the FrameBuffer is cleared to. It does not clear the FrameBuffer.
func (fb *FrameBuffer) SetBackgroundColor(color wireframe.Color) { fb.background = color }

// Clear fills the whole FrameBuffer with its background color.
func (fb *FrameBuffer) Clear() {
	fb.ClearColor(fb.background)
}

// ClearColor fills the whole FrameBuffer with the color given.
func (fb *FrameBuffer) ClearColor(color wireframe.Color) {
	r, g, b, a := color.RGBA8()
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i+0] = r
		fb.pix[i+1] = g
		fb.pix[i+2] = b
		fb.pix[i+3] = a
	}
}

func (fb *FrameBuffer) setRaw(x, y int, r, g, b, a uint8) {
	i := (y*fb.width + x) * 4
	fb.pix[i+0] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
	fb.pix[i+3] = a
}

// SetPixel sets the pixel at (x, y). Pixels outside of the FrameBuffer are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, color wireframe.Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	r, g, b, a := color.RGBA8()
	fb.setRaw(x, y, r, g, b, a)
}

// Pixel returns the pixel at (x, y), or the background color if (x, y) is outside of the FrameBuffer.
func (fb *FrameBuffer) Pixel(x, y int) wireframe.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return fb.background
	}
	i := (y*fb.width + x) * 4
	return wireframe.NewColor(float64(fb.pix[i+0])/255, float64(fb.pix[i+1])/255, float64(fb.pix[i+2])/255, float64(fb.pix[i+3])/255)
}

// Viewport returns the FrameBuffer's current Viewport.
func (fb *FrameBuffer) Viewport() *Viewport { return fb.viewport }

// SetViewport makes the current Viewport the rectangle of the given size whose upper-left corner is at (x, y).
// The rectangle must lie within the FrameBuffer; otherwise ErrViewportBounds is returned and the current
// Viewport is left alone.
func (fb *FrameBuffer) SetViewport(x, y, width, height int) error {
	vp, err := fb.NewViewport(x, y, width, height)
	if err != nil {
		return err
	}
	fb.viewport = vp
	return nil
}

// SetViewportDefault makes the current Viewport cover the whole FrameBuffer again.
func (fb *FrameBuffer) SetViewportDefault() {
	fb.viewport = &Viewport{fb: fb, width: fb.width, height: fb.height, background: fb.background}
}

// NewViewport returns a new Viewport onto the FrameBuffer, without changing the current one. Several
// Viewports can be used to render different Scenes into different parts of one FrameBuffer.
func (fb *FrameBuffer) NewViewport(x, y, width, height int) (*Viewport, error) {
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > fb.width || y+height > fb.height {
		return nil, fmt.Errorf("viewport (%d, %d, %d x %d) in framebuffer %d x %d: %w", x, y, width, height, fb.width, fb.height, ErrViewportBounds)
	}
	return &Viewport{fb: fb, x: x, y: y, width: width, height: height, background: fb.background}, nil
}

// channel returns a new FrameBuffer holding only one of this FrameBuffer's color channels.
func (fb *FrameBuffer) channel(index int) *FrameBuffer {
	out := NewFrameBuffer(fb.width, fb.height, fb.background)
	for i := 0; i < len(fb.pix); i += 4 {
		out.pix[i+0], out.pix[i+1], out.pix[i+2] = 0, 0, 0
		out.pix[i+index] = fb.pix[i+index]
		out.pix[i+3] = fb.pix[i+3]
	}
	return out
}

// RedChannel returns a new FrameBuffer holding just the red plane of this FrameBuffer.
func (fb *FrameBuffer) RedChannel() *FrameBuffer { return fb.channel(0) }

// GreenChannel returns a new FrameBuffer holding just the green plane of this FrameBuffer.
func (fb *FrameBuffer) GreenChannel() *FrameBuffer { return fb.channel(1) }

// BlueChannel returns a new FrameBuffer holding just the blue plane of this FrameBuffer.
func (fb *FrameBuffer) BlueChannel() *FrameBuffer { return fb.channel(2) }

// ColorModel implements the image.Image interface.
func (fb *FrameBuffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements the image.Image interface.
func (fb *FrameBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.width, fb.height) }

// At implements the image.Image interface.
func (fb *FrameBuffer) At(x, y int) color.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return color.NRGBA{}
	}
	i := (y*fb.width + x) * 4
	return color.NRGBA{R: fb.pix[i+0], G: fb.pix[i+1], B: fb.pix[i+2], A: fb.pix[i+3]}
}

// SubImage returns a copy of the pixels within the given rectangle (clipped to the FrameBuffer) as an *image.NRGBA.
func (fb *FrameBuffer) SubImage(rect image.Rectangle) *image.NRGBA {
	rect = rect.Intersect(fb.Bounds())
	img := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		start := (y*fb.width + rect.Min.X) * 4
		copy(img.Pix[(y-rect.Min.Y)*img.Stride:], fb.pix[start:start+rect.Dx()*4])
	}
	return img
}

// String returns a textual dump of every pixel, for debugging very small FrameBuffers.
func (fb *FrameBuffer) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "FrameBuffer [w = %d, h = %d]\n", fb.width, fb.height)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			i := (y*fb.width + x) * 4
			fmt.Fprintf(&s, "%d %d %d | ", fb.pix[i+0], fb.pix[i+1], fb.pix[i+2])
		}
		s.WriteString("\n")
	}
	return s.String()
}
