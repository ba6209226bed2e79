package gfx

import "math"

// Fill assigns c to every pixel of the rectangle [x1,y1)–[x2,y2),
// clipped to the canvas.
func (img *Image) Fill(x1, y1, x2, y2 int, c Color) {
	img.FillBlend(x1, y1, x2, y2, c, Assign{})
}

// FillBlend applies the blender to every pixel of the rectangle
// [x1,y1)–[x2,y2), clipped to the canvas, with c as the incoming source
// color.
func (img *Image) FillBlend(x1, y1, x2, y2 int, c Color, blend Blender) {
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > img.width {
		x2 = img.width
	}
	if y2 > img.height {
		y2 = img.height
	}
	for y := y1; y < y2; y++ {
		row := img.Row(y)
		for x := x1; x < x2; x++ {
			row[x] = blend.Blend(row[x], c)
		}
	}
}

// Line draws a line from (x1, y1) to (x2, y2), interpolating the color
// from c1 to c2 along the way.
func (img *Image) Line(x1, y1 int, c1 Color, x2, y2 int, c2 Color) {
	img.LineBlend(x1, y1, c1, x2, y2, c2, Assign{})
}

// LineBlend draws a line from (x1, y1) to (x2, y2) through the blender,
// interpolating the color from c1 to c2 along the way. Both endpoints
// are inclusive. The walk follows the axis of greater absolute delta in
// unit steps, clipping each step against the canvas individually, so
// partially off-canvas lines draw their visible portion.
func (img *Image) LineBlend(x1, y1 int, c1 Color, x2, y2 int, c2 Color, blend Blender) {
	r1, g1, b1, a1 := float64(c1.R()), float64(c1.G()), float64(c1.B()), float64(c1.A())
	r2, g2, b2, a2 := float64(c2.R()), float64(c2.G()), float64(c2.B()), float64(c2.A())

	xdiff := float64(x2 - x1)
	ydiff := float64(y2 - y1)

	// Coincident endpoints degenerate to a single clipped plot.
	if xdiff == 0 && ydiff == 0 {
		if x1 >= 0 && x1 < img.width && y1 >= 0 && y1 < img.height {
			row := img.Row(y1)
			row[x1] = blend.Blend(row[x1], c1)
		}
		return
	}

	at := func(t float64) Color {
		return NewColor(
			uint8(r1+(r2-r1)*t),
			uint8(g1+(g2-g1)*t),
			uint8(b1+(b2-b1)*t),
			uint8(a1+(a2-a1)*t),
		)
	}

	if math.Abs(xdiff) > math.Abs(ydiff) {
		xmin, xmax := float64(x1), float64(x2)
		if xmax < xmin {
			xmin, xmax = xmax, xmin
		}
		if xmin < 0 {
			xmin = 0
		}
		if m := float64(img.width - 1); xmax > m {
			xmax = m
		}

		slope := ydiff / xdiff
		for x := xmin; x <= xmax; x++ {
			y := float64(y1) + (x-float64(x1))*slope
			if y < 0 || y >= float64(img.height) {
				continue
			}
			row := img.Row(int(y))
			xi := int(x)
			row[xi] = blend.Blend(row[xi], at((x-float64(x1))/xdiff))
		}
	} else {
		ymin, ymax := float64(y1), float64(y2)
		if ymax < ymin {
			ymin, ymax = ymax, ymin
		}
		if ymin < 0 {
			ymin = 0
		}
		if m := float64(img.height - 1); ymax > m {
			ymax = m
		}

		slope := xdiff / ydiff
		for y := ymin; y <= ymax; y++ {
			x := float64(x1) + (y-float64(y1))*slope
			if x < 0 || x >= float64(img.width) {
				continue
			}
			row := img.Row(int(y))
			xi := int(x)
			row[xi] = blend.Blend(row[xi], at((y-float64(y1))/ydiff))
		}
	}
}
