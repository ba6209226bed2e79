package gfx

import (
	"image/color"
	"math/bits"
)

// Color is a 32-bit RGBA color packed as A<<24 | B<<16 | G<<8 | R.
// Serialized little-endian the byte order is R, G, B, A.
//
// The built-in == operator compares all 32 bits including alpha; use
// [Color.Equal] for the color-key semantics that ignore alpha.
type Color uint32

const rgbMask Color = 0x00ffffff

// NewColor packs four 8-bit channels into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(r) | Color(g)<<8 | Color(b)<<16 | Color(a)<<24
}

// RGB packs three 8-bit channels into an opaque Color (alpha 255).
func RGB(r, g, b uint8) Color {
	return NewColor(r, g, b, 255)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return (c & rgbMask) | Color(a)<<24
}

// Equal reports whether the red, green and blue channels of both colors
// match. Alpha is excluded so that color-key matching is insensitive to
// the alpha content of the incoming pixels.
func (c Color) Equal(o Color) bool {
	return c&rgbMask == o&rgbMask
}

// Shl shifts every channel left by n bits. Channels wrap like plain
// byte shifts; they do not saturate.
func (c Color) Shl(n uint) Color {
	return NewColor(c.R()<<n, c.G()<<n, c.B()<<n, c.A()<<n)
}

// Shr shifts every channel right by n bits.
func (c Color) Shr(n uint) Color {
	return NewColor(c.R()>>n, c.G()>>n, c.B()>>n, c.A()>>n)
}

// Reverse swaps the byte order of the color (0↔3, 1↔2). Callers use it
// to repair pixel data imported with the opposite channel ordering.
func (c Color) Reverse() Color {
	return Color(bits.ReverseBytes32(uint32(c)))
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromColor converts a standard library color.Color to a Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
