package gfx

// Sampler maps normalized coordinates u, v in [0,1] on an image to a
// color. Implementations must be pure. Nearest and Bilinear use
// different coordinate divisors on purpose; callers that generate
// coordinates for one must not reuse them under the other's convention.
type Sampler interface {
	Sample(img *Image, u, v float64) Color
}

// Nearest samples the single closest texel. Coordinates scale by
// (width-1) and (height-1) and truncate, biasing toward the top-left
// texel. Stretched output looks pixelated, shrunk output aliases.
type Nearest struct{}

// Sample returns the texel at truncate((w-1)*u), truncate((h-1)*v).
func (Nearest) Sample(img *Image, u, v float64) Color {
	return img.Row(int(float64(img.height-1) * v))[int(float64(img.width-1)*u)]
}

// Bilinear samples the four closest texels and interpolates between
// them. Coordinates scale by (width-2) and (height-2) — one less than
// Nearest's divisor — so the base texel plus one stays in bounds.
//
// Precondition: the image is at least 2×2. Sampling a smaller image
// reads out of bounds; the check is the caller's responsibility.
// Produces fringe artifacts when combined with ColorKey sources.
type Bilinear struct{}

// Sample returns the four-tap weighted sum around (u, v).
func (Bilinear) Sample(img *Image, u, v float64) Color {
	fu := u * float64(img.width-2)
	fv := v * float64(img.height-2)
	iu := int(fu)
	iv := int(fv)

	ur := fu - float64(iu)
	vr := fv - float64(iv)
	uo := 1 - ur
	vo := 1 - vr

	r0 := img.Row(iv)
	r1 := img.Row(iv + 1)
	c00 := r0[iu]
	c10 := r0[iu+1]
	c01 := r1[iu]
	c11 := r1[iu+1]

	tap := func(ch func(Color) uint8) uint8 {
		top := float64(ch(c00))*uo + float64(ch(c10))*ur
		bot := float64(ch(c01))*uo + float64(ch(c11))*ur
		return uint8(top*vo + bot*vr)
	}

	return NewColor(tap(Color.R), tap(Color.G), tap(Color.B), tap(Color.A))
}
