package gfx

// Color arithmetic tables. Built once under the init barrier, never
// mutated afterwards; every arithmetic and sampling call site reads them
// without synchronization.
var (
	tableAdd [256][256]uint8
	tableSub [256][256]uint8
	tableMul [256][256]uint8
	tableNrm [256]float32
)

func init() {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			sum := i + j
			if sum > 255 {
				sum = 255
			}
			tableAdd[i][j] = uint8(sum)

			diff := i - j
			if diff < 0 {
				diff = 0
			}
			tableSub[i][j] = uint8(diff)

			tableMul[i][j] = uint8(i * j / 255)
		}
		// Reciprocal on purpose: the table stores 255/i, not i/255, and
		// diverges to +Inf at i == 0. Consumers of RGBF/RGBAF depend on
		// this scale, so it is preserved byte for byte.
		tableNrm[i] = 255 / float32(i)
	}
}

// Norm returns the normalized-channel table entry for v.
//
// Note the table holds 255/v rather than v/255; Norm(0) is +Inf.
// RGBF and SetRGBF are the intended producer/consumer pair for these
// values; new code wanting v/255 should compute it directly.
func Norm(v uint8) float32 {
	return tableNrm[v]
}

// Add returns the component-wise saturating sum of c and o.
func (c Color) Add(o Color) Color {
	return NewColor(
		tableAdd[c.R()][o.R()],
		tableAdd[c.G()][o.G()],
		tableAdd[c.B()][o.B()],
		tableAdd[c.A()][o.A()],
	)
}

// Sub returns the component-wise saturating difference of c and o.
func (c Color) Sub(o Color) Color {
	return NewColor(
		tableSub[c.R()][o.R()],
		tableSub[c.G()][o.G()],
		tableSub[c.B()][o.B()],
		tableSub[c.A()][o.A()],
	)
}

// Mul returns the component-wise modulate product of c and o: each
// channel of o acts as a weight in [0,1] scaled by 255, so the result
// channel is c*o/255 rounded down. Modulating by opaque white is the
// identity.
func (c Color) Mul(o Color) Color {
	return NewColor(
		tableMul[c.R()][o.R()],
		tableMul[c.G()][o.G()],
		tableMul[c.B()][o.B()],
		tableMul[c.A()][o.A()],
	)
}
