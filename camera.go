package wireframe

import (
	"fmt"
	"math"
)

// Camera represents the shape of the view volume. The camera sits at the origin of view space looking down
// the negative z-axis; Positions move geometry in front of it. The view volume is bounded by the rectangle
// [left, right] x [bottom, top] in the near plane z = -near, and is either a perspective frustum or an
// orthographic box.
//
// A Camera is immutable once built; use the constructors to make a new one.
type Camera struct {
	left, right float64
	bottom, top float64
	n           float64 // The near plane, stored as the (negative) z coordinate of the plane, n = -near
	perspective bool    // If the Camera has a perspective projection. If not, it is orthographic
}

// NewCamera returns the default Camera: a perspective Camera with a 90 degree view volume
// (left = -1, right = 1, bottom = -1, top = 1, near = 1).
func NewCamera() *Camera {
	return &Camera{left: -1, right: 1, bottom: -1, top: 1, n: -1, perspective: true}
}

// NewPerspectiveCamera returns a new perspective Camera whose view rectangle lies in the plane z = -near.
// An error wrapping ErrInvalidCamera is returned if near <= 0, right <= left, top <= bottom, or any bound is not finite.
func NewPerspectiveCamera(left, right, bottom, top, near float64) (*Camera, error) {
	return newCamera(left, right, bottom, top, near, true)
}

// NewOrthographicCamera returns a new orthographic Camera, with the same validation as NewPerspectiveCamera.
// Geometry nearer than the plane z = -near is still clipped away.
func NewOrthographicCamera(left, right, bottom, top, near float64) (*Camera, error) {
	return newCamera(left, right, bottom, top, near, false)
}

// NewPerspectiveCameraFOVY returns a symmetric perspective Camera with the given vertical field of view
// (in degrees) and aspect ratio (width / height).
func NewPerspectiveCameraFOVY(fovy, aspect, near float64) (*Camera, error) {
	left, right, bottom, top, err := fovyBounds(fovy, aspect, near)
	if err != nil {
		return nil, err
	}
	return newCamera(left, right, bottom, top, near, true)
}

// NewOrthographicCameraFOVY returns a symmetric orthographic Camera whose view rectangle matches the one a
// perspective Camera with the same field of view (in degrees), aspect ratio, and near plane would have.
func NewOrthographicCameraFOVY(fovy, aspect, near float64) (*Camera, error) {
	left, right, bottom, top, err := fovyBounds(fovy, aspect, near)
	if err != nil {
		return nil, err
	}
	return newCamera(left, right, bottom, top, near, false)
}

func fovyBounds(fovy, aspect, near float64) (left, right, bottom, top float64, err error) {
	if !(fovy > 0 && fovy < 180) || !(aspect > 0) || math.IsInf(aspect, 0) {
		return 0, 0, 0, 0, fmt.Errorf("fovy = %v, aspect = %v: %w", fovy, aspect, ErrInvalidCamera)
	}
	top = near * math.Tan(ToRadians(fovy)/2)
	bottom = -top
	right = top * aspect
	left = -right
	return left, right, bottom, top, nil
}

func newCamera(left, right, bottom, top, near float64, perspective bool) (*Camera, error) {

	for _, v := range []float64{left, right, bottom, top, near} {
		if !isFinite(v) {
			return nil, fmt.Errorf("non-finite camera bound %v: %w", v, ErrInvalidCamera)
		}
	}

	if near <= 0 {
		return nil, fmt.Errorf("near = %v must be > 0: %w", near, ErrInvalidCamera)
	}

	if right <= left {
		return nil, fmt.Errorf("right = %v must be > left = %v: %w", right, left, ErrInvalidCamera)
	}

	if top <= bottom {
		return nil, fmt.Errorf("top = %v must be > bottom = %v: %w", top, bottom, ErrInvalidCamera)
	}

	return &Camera{
		left:        left,
		right:       right,
		bottom:      bottom,
		top:         top,
		n:           -near,
		perspective: perspective,
	}, nil

}

// Left returns the left edge of the view rectangle.
func (camera *Camera) Left() float64 { return camera.left }

// Right returns the right edge of the view rectangle.
func (camera *Camera) Right() float64 { return camera.right }

// Bottom returns the bottom edge of the view rectangle.
func (camera *Camera) Bottom() float64 { return camera.bottom }

// Top returns the top edge of the view rectangle.
func (camera *Camera) Top() float64 { return camera.top }

// Near returns the (positive) distance from the camera to the near plane.
func (camera *Camera) Near() float64 { return -camera.n }

// NearPlane returns the z coordinate of the near plane in view space, which is -Near().
func (camera *Camera) NearPlane() float64 { return camera.n }

// Perspective returns whether the Camera is perspective or not (orthographic).
func (camera *Camera) Perspective() bool { return camera.perspective }

// FieldOfView returns the vertical field of view in degrees that the view rectangle spans from the origin.
func (camera *Camera) FieldOfView() float64 {
	return ToDegrees(math.Atan(camera.top/camera.Near()) - math.Atan(camera.bottom/camera.Near()))
}

// AspectRatio returns the ratio of the view rectangle's width to its height.
func (camera *Camera) AspectRatio() float64 {
	return (camera.right - camera.left) / (camera.top - camera.bottom)
}

// String returns a description of the Camera.
func (camera *Camera) String() string {
	return fmt.Sprintf("Camera:\n  perspective = %t\n  left = %v, right = %v\n  bottom = %v, top = %v\n  near = %v\n  (fovy = %.4f, aspect ratio = %.4f)\n",
		camera.perspective, camera.left, camera.right, camera.bottom, camera.top, camera.Near(), camera.FieldOfView(), camera.AspectRatio())
}
