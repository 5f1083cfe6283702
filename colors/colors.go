// Package colors provides named colors for wireframe Models, Viewports, and command-line flags.
package colors

import "github.com/solarlune/wireframe"

// Transparent returns a fully transparent black.
func Transparent() wireframe.Color {
	return wireframe.NewColor(0, 0, 0, 0)
}

// White returns opaque white; this is also wireframe.DefaultColor.
func White() wireframe.Color {
	return wireframe.NewColor(1, 1, 1, 1)
}

// Black returns opaque black.
func Black() wireframe.Color {
	return wireframe.NewColor(0, 0, 0, 1)
}

// Gray returns a mid gray.
func Gray() wireframe.Color {
	return wireframe.NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray returns a gray at 80% intensity.
func LightGray() wireframe.Color {
	return wireframe.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkGray returns a gray at 20% intensity.
func DarkGray() wireframe.Color {
	return wireframe.NewColor(0.2, 0.2, 0.2, 1)
}

// Red returns pure red.
func Red() wireframe.Color {
	return wireframe.NewColor(1, 0, 0, 1)
}

// Orange returns red at full and green at half intensity.
func Orange() wireframe.Color {
	return wireframe.NewColor(1, 0.5, 0, 1)
}

// Yellow returns red plus green.
func Yellow() wireframe.Color {
	return wireframe.NewColor(1, 1, 0, 1)
}

func Green() wireframe.Color {
	return wireframe.NewColor(0, 1, 0, 1)
}

// Cyan returns green plus blue.
func Cyan() wireframe.Color {
	return wireframe.NewColor(0, 1, 1, 1)
}

func Blue() wireframe.Color {
	return wireframe.NewColor(0, 0, 1, 1)
}

// Magenta returns red plus blue.
func Magenta() wireframe.Color {
	return wireframe.NewColor(1, 0, 1, 1)
}

// Pink returns a pale red.
func Pink() wireframe.Color {
	return wireframe.NewColor(1, 0.686, 0.686, 1)
}

// Named returns the color of the given lowercase name ("red", "lightgray", ...), and whether the name was recognized.
func Named(name string) (wireframe.Color, bool) {
	fn, ok := named[name]
	if !ok {
		return wireframe.Color{}, false
	}
	return fn(), true
}

var named = map[string]func() wireframe.Color{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
	"gray":        Gray,
	"lightgray":   LightGray,
	"darkgray":    DarkGray,
	"red":         Red,
	"orange":      Orange,
	"yellow":      Yellow,
	"green":       Green,
	"cyan":        Cyan,
	"blue":        Blue,
	"magenta":     Magenta,
	"pink":        Pink,
}
