package gfx

// Rect is a half-open integer rectangle [X1,Y1)–[X2,Y2). A blit
// destination rectangle with reversed endpoints (X2 < X1 or Y2 < Y1)
// mirrors the transfer along that axis.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// bounds returns the full extent of an image as a Rect.
func bounds(w, h int) Rect {
	return Rect{X2: w, Y2: h}
}

// BlitOptions parameterizes a blit. The zero value selects the default
// transfer: the entire source, Assign blending, Nearest sampling.
type BlitOptions struct {
	// SrcRect selects the source region to transfer. Nil means the full
	// source extent. The rectangle is clipped to the source bounds.
	SrcRect *Rect

	// Blender combines each sampled source color with the destination
	// pixel. Nil means Assign.
	Blender Blender

	// Sampler produces source colors from normalized coordinates.
	// Nil means Nearest. Ignored by BlitStream, which reads texels
	// directly from the file.
	Sampler Sampler
}

// Blit transfers a rectangle of src into a rectangle of dst, resampling
// when the two differ in size. The destination rectangle may have
// reversed endpoints (mirroring the transfer), extend beyond the canvas,
// or lie entirely outside it; the off-canvas portion is clipped away and
// the source region still maps onto whatever remains visible. A fully
// clipped blit is a no-op, not an error.
//
// Source coordinates are normalized against (width-1) and (height-1) and
// advance by a fixed per-axis step per destination pixel.
func Blit(dst *Image, dstRect Rect, src *Image, opts BlitOptions) {
	if dst.IsBad() || src.IsBad() {
		Logger().Warn("gfx: blit with bad source or destination")
		return
	}
	blend := opts.Blender
	if blend == nil {
		blend = Assign{}
	}
	sample := opts.Sampler
	if sample == nil {
		sample = Nearest{}
	}

	sr := bounds(src.width, src.height)
	if opts.SrcRect != nil {
		sr = clipRect(*opts.SrcRect, src.width, src.height)
	}

	// A 1-pixel axis would make the divisor 0 and the coordinates
	// NaN/Inf. Clamp to 1; Nearest scales by the true width-1/height-1,
	// so the degenerate axis still lands on texel 0.
	uDiv := src.width - 1
	if uDiv == 0 {
		uDiv = 1
	}
	vDiv := src.height - 1
	if vDiv == 0 {
		vDiv = 1
	}

	u1 := float64(sr.X1) / float64(uDiv)
	u2 := float64(sr.X2) / float64(uDiv)
	v1 := float64(sr.Y1) / float64(vDiv)
	v2 := float64(sr.Y2) / float64(vDiv)
	du := (u2 - u1) / float64(dstRect.X2-dstRect.X1)
	dv := (v2 - v1) / float64(dstRect.Y2-dstRect.Y1)

	dx1, dx2, u := clipSpan(dstRect.X1, dstRect.X2, dst.width, u1, u2, du)
	dy1, dy2, v := clipSpan(dstRect.Y1, dstRect.Y2, dst.height, v1, v2, dv)

	maxX := dx2 - dx1
	maxY := dy2 - dy1
	if maxX < 0 || maxY < 0 {
		return
	}

	for y := 0; y < maxY; y++ {
		row := dst.Row(dy1 + y)
		ux := u
		for x := dx1; x < dx2; x++ {
			row[x] = blend.Blend(row[x], sample.Sample(src, ux, v))
			ux += du
		}
		v += dv
	}
}

// clipSpan normalizes one axis of a blit. Reversed destination endpoints
// are swapped and the source start moved one step past the far source
// edge, so the mirrored traversal visits exactly the source coordinates
// of the unflipped one, in reverse. A destination start left of the
// canvas origin advances the source coordinate by the skipped steps
// before clamping to 0, so an edge-straddling rectangle samples the
// correct sub-region instead of shifting content. The destination end is
// clipped to the canvas bound.
func clipSpan(d1, d2, limit int, s1, s2, step float64) (int, int, float64) {
	start := s1
	if d2 < d1 {
		d1, d2 = d2, d1
		start = s2 + step
	}
	if d1 < 0 {
		start += step * float64(-d1)
		d1 = 0
	}
	if d2 > limit {
		d2 = limit
	}
	return d1, d2, start
}

// clipRect clamps r to [0,w)×[0,h). Used on source rectangles, whose
// endpoints are never reversed.
func clipRect(r Rect, w, h int) Rect {
	if r.X1 < 0 {
		r.X1 = 0
	}
	if r.Y1 < 0 {
		r.Y1 = 0
	}
	if r.X2 > w {
		r.X2 = w
	}
	if r.Y2 > h {
		r.Y2 = h
	}
	return r
}
