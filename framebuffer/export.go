package framebuffer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned by Save when a file's extension doesn't name a supported image format.
var ErrUnknownFormat = errors.New("framebuffer: unknown image format")

// WritePPM writes the FrameBuffer as a binary ("P6") PPM image. Alpha is dropped.
func (fb *FrameBuffer) WritePPM(w io.Writer) error {
	return writePPM(w, fb, fb.Bounds())
}

// WritePPM writes the Viewport's pixels as a binary ("P6") PPM image.
func (vp *Viewport) WritePPM(w io.Writer) error {
	return writePPM(w, vp.fb, vp.Rect())
}

func writePPM(w io.Writer, fb *FrameBuffer, rect image.Rectangle) error {

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", rect.Dx(), rect.Dy(), 255); err != nil {
		return err
	}

	row := make([]byte, rect.Dx()*3)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			i := (y*fb.width + x) * 4
			j := (x - rect.Min.X) * 3
			row[j+0] = fb.pix[i+0]
			row[j+1] = fb.pix[i+1]
			row[j+2] = fb.pix[i+2]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()

}

// WritePNG writes the FrameBuffer as a PNG image.
func (fb *FrameBuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb)
}

// WriteBMP writes the FrameBuffer as a BMP image.
func (fb *FrameBuffer) WriteBMP(w io.Writer) error {
	return bmp.Encode(w, fb)
}

// WriteTIFF writes the FrameBuffer as a Deflate-compressed TIFF image.
func (fb *FrameBuffer) WriteTIFF(w io.Writer) error {
	return tiff.Encode(w, fb, &tiff.Options{Compression: tiff.Deflate})
}

// Format returns the writer matching a file name's extension (".ppm", ".png", ".bmp", ".tif" or ".tiff"),
// or ErrUnknownFormat.
func (fb *FrameBuffer) Format(path string) (func(io.Writer) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return fb.WritePPM, nil
	case ".png":
		return fb.WritePNG, nil
	case ".bmp":
		return fb.WriteBMP, nil
	case ".tif", ".tiff":
		return fb.WriteTIFF, nil
	}
	return nil, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}

// Save writes the FrameBuffer to the named file, picking the image format from the file's extension.
func (fb *FrameBuffer) Save(path string) (err error) {

	write, err := fb.Format(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return write(f)

}
