package gfx

// Blender combines a destination and a source color into the color
// written back to the destination. Implementations must be pure: no
// side effects, no hidden state. A Blender is invoked once per touched
// pixel by Fill, Line and the blit engine.
type Blender interface {
	Blend(dst, src Color) Color
}

// Assign replaces the destination with the source unconditionally.
// It is the default blender for every drawing operation.
type Assign struct{}

// Blend returns src.
func (Assign) Blend(_, src Color) Color { return src }

// AlphaBlend interpolates the destination toward the source, weighting
// every channel by the source alpha. Alpha itself is blended like the
// color channels rather than accumulated, so this is not
// premultiplied-alpha compositing.
type AlphaBlend struct{}

// Blend returns dst + ((src.A * (src.ch - dst.ch)) >> 8) per channel.
func (AlphaBlend) Blend(dst, src Color) Color {
	a := int(src.A())
	return NewColor(
		blendChannel(dst.R(), src.R(), a),
		blendChannel(dst.G(), src.G(), a),
		blendChannel(dst.B(), src.B(), a),
		blendChannel(dst.A(), src.A(), a),
	)
}

// blendChannel computes d + ((a*(s-d)) >> 8). The shift is arithmetic,
// and the result always lands between d and s, so the byte conversion
// cannot wrap.
func blendChannel(d, s uint8, a int) uint8 {
	return uint8(int(d) + ((a * (int(s) - int(d))) >> 8))
}

// ColorKey makes one color transparent: source pixels matching Key keep
// the destination, everything else is written through. The key match
// uses [Color.Equal] and therefore ignores alpha.
type ColorKey struct {
	Key Color
}

// Blend returns dst when src matches the key, src otherwise.
func (k ColorKey) Blend(dst, src Color) Color {
	if src.Equal(k.Key) {
		return dst
	}
	return src
}

// Grayscale converts the source color to its luma (weights 0.30, 0.59,
// 0.11 on red, green, blue) replicated into the color channels. The
// source alpha is carried through; the destination is ignored.
type Grayscale struct{}

// Blend returns the grayscaled source.
func (Grayscale) Blend(_, src Color) Color {
	gray := uint8(float32(src.R())*0.3 + float32(src.G())*0.59 + float32(src.B())*0.11)
	return NewColor(gray, gray, gray, src.A())
}

// FillGrayscale converts the destination color to grayscale, using the
// incoming paint only as a trigger. It is Grayscale with the operand
// roles swapped, for draining the color out of an area with Fill.
type FillGrayscale struct{}

// Blend returns the grayscaled destination.
func (FillGrayscale) Blend(dst, src Color) Color {
	return Grayscale{}.Blend(src, dst)
}
