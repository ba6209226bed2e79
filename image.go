package gfx

import (
	"errors"
	"image"
	"image/color"
)

// Common errors.
var (
	// ErrInvalidDimensions is returned when a requested width or height
	// is outside [1, MaxDimension].
	ErrInvalidDimensions = errors.New("gfx: invalid dimensions")

	// ErrBadImage is returned when an operation needs a usable pixel
	// buffer but the image is in the bad state.
	ErrBadImage = errors.New("gfx: bad image")

	// ErrFormat is returned when a file does not carry the native
	// container header.
	ErrFormat = errors.New("gfx: format not recognized")

	// ErrReleased is returned when a released surface is used.
	ErrReleased = errors.New("gfx: surface released")
)

// MaxDimension is the largest width or height an Image can have.
const MaxDimension = 65535

// Image owns a flat, row-major, top-to-bottom buffer of width*height
// colors. An image with a nil buffer is "bad": safe to query (it reports
// zero extent) but not indexable. A failed Create or Load always leaves
// the image bad, never half-populated.
type Image struct {
	pixels []Color
	width  int
	height int
}

// NewImage allocates an image of the given size. On error the returned
// image is bad.
func NewImage(width, height int) (*Image, error) {
	img := &Image{}
	if err := img.Create(width, height); err != nil {
		return img, err
	}
	return img, nil
}

// Create releases any existing buffer and allocates a fresh one of
// exactly width*height colors. Dimensions must be in [1, MaxDimension];
// otherwise the image is left bad and ErrInvalidDimensions is returned.
func (img *Image) Create(width, height int) error {
	img.Free()
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return ErrInvalidDimensions
	}
	img.pixels = make([]Color, width*height)
	img.width = width
	img.height = height
	Logger().Debug("gfx: image created", "width", width, "height", height)
	return nil
}

// Free releases the pixel buffer and returns the image to the bad state.
func (img *Image) Free() {
	img.pixels = nil
	img.width = 0
	img.height = 0
}

// Copy deep-duplicates another image's dimensions and pixel content.
func (img *Image) Copy(src *Image) error {
	if src.IsBad() {
		return ErrBadImage
	}
	if err := img.Create(src.width, src.height); err != nil {
		return err
	}
	copy(img.pixels, src.pixels)
	return nil
}

// Width returns the image width in pixels; zero for a bad image.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels; zero for a bad image.
func (img *Image) Height() int { return img.height }

// IsGood reports whether the image has a pixel buffer.
func (img *Image) IsGood() bool { return img.pixels != nil }

// IsBad reports whether the image has no pixel buffer.
func (img *Image) IsBad() bool { return img.pixels == nil }

// Row returns the pixel slice for row y. The slice aliases the image
// buffer; writes through it are writes to the image. Row performs no
// bounds check and must not be called on a bad image.
func (img *Image) Row(y int) []Color {
	return img.pixels[y*img.width : (y+1)*img.width]
}

// Pixel returns the color at (x, y), or zero for coordinates outside
// the image.
func (img *Image) Pixel(x, y int) Color {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0
	}
	return img.pixels[y*img.width+x]
}

// SetPixel writes the color at (x, y). Writes outside the image are
// discarded.
func (img *Image) SetPixel(x, y int, c Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	img.pixels[y*img.width+x] = c
}

// RGBF returns the red, green and blue channels of (x, y) passed
// through the normalized-channel table. See [Norm] for the table's
// scale. No bounds check.
func (img *Image) RGBF(x, y int) (r, g, b float32) {
	c := img.pixels[y*img.width+x]
	return tableNrm[c.R()], tableNrm[c.G()], tableNrm[c.B()]
}

// RGBAF is RGBF including the alpha channel.
func (img *Image) RGBAF(x, y int) (r, g, b, a float32) {
	c := img.pixels[y*img.width+x]
	return tableNrm[c.R()], tableNrm[c.G()], tableNrm[c.B()], tableNrm[c.A()]
}

// SetRGBF writes the red, green and blue channels of (x, y) from
// normalized [0,1] floats scaled by 255. Alpha is left unchanged.
// No bounds check.
func (img *Image) SetRGBF(x, y int, r, g, b float32) {
	i := y*img.width + x
	a := img.pixels[i].A()
	img.pixels[i] = NewColor(uint8(r*255), uint8(g*255), uint8(b*255), a)
}

// SetRGBAF is SetRGBF including the alpha channel.
func (img *Image) SetRGBAF(x, y int, r, g, b, a float32) {
	img.pixels[y*img.width+x] = NewColor(uint8(r*255), uint8(g*255), uint8(b*255), uint8(a*255))
}

// ReverseByteOrder swaps the byte order of every pixel in place
// (byte 0↔3, 1↔2). Apply it after importing pixel data whose channel
// ordering is the reverse of the native one.
func (img *Image) ReverseByteOrder() {
	for i, c := range img.pixels {
		img.pixels[i] = c.Reverse()
	}
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.Pixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}
