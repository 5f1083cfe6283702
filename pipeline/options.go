package pipeline

// RenderOptions holds the settings a render call is run with. It is a plain value; a Render call reads it
// and never changes it, so the same RenderOptions can be shared between calls.
type RenderOptions struct {
	AntiAliasing bool    // Blend each line sample across its two nearest pixels, toward the viewport's background color
	Gamma        bool    // Gamma-correct each written pixel's R, G, and B channels
	GammaValue   float64 // The display gamma; channels are raised to 1 / GammaValue. Values <= 0 fall back to 2.2
	NearClipping bool    // Clip geometry against the Camera's near plane. Turning this off is only safe for geometry known to lie in front of the camera
}

// Option configures a RenderOptions value created with NewRenderOptions.
//
// Example:
//
//	opts := pipeline.NewRenderOptions(
//		pipeline.WithAntiAliasing(true),
//		pipeline.WithGammaValue(1.8),
//	)
type Option func(*RenderOptions)

// DefaultGammaValue is the display gamma used when none is given.
const DefaultGammaValue = 2.2

// DefaultRenderOptions returns the default options: gamma correction on at 2.2, anti-aliasing off,
// near-plane clipping on.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		AntiAliasing: false,
		Gamma:        true,
		GammaValue:   DefaultGammaValue,
		NearClipping: true,
	}
}

// NewRenderOptions returns DefaultRenderOptions() with the given Options applied in order.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAntiAliasing turns line anti-aliasing on or off.
func WithAntiAliasing(enabled bool) Option {
	return func(o *RenderOptions) {
		o.AntiAliasing = enabled
	}
}

// WithGamma turns gamma correction on or off.
func WithGamma(enabled bool) Option {
	return func(o *RenderOptions) {
		o.Gamma = enabled
	}
}

// WithGammaValue sets the display gamma (and turns gamma correction on).
func WithGammaValue(gamma float64) Option {
	return func(o *RenderOptions) {
		o.Gamma = true
		o.GammaValue = gamma
	}
}

// WithNearClipping turns near-plane clipping on or off.
func WithNearClipping(enabled bool) Option {
	return func(o *RenderOptions) {
		o.NearClipping = enabled
	}
}

// gammaExponent returns the exponent color channels are raised to when gamma correcting.
func (o RenderOptions) gammaExponent() float64 {
	if o.GammaValue <= 0 || o.GammaValue != o.GammaValue {
		return 1 / DefaultGammaValue
	}
	return 1 / o.GammaValue
}
