package gfx

import "math/bits"

// Surface is a non-owning view over a host-managed pixel buffer, such
// as the backing store of a window or framebuffer. It never allocates
// or frees the buffer; the host controls the buffer's lifetime and
// tells the surface when the borrow ends via Release.
//
// If the host requires the buffer to be locked around access, pass the
// lock and unlock hooks to NewSurface; Flip wraps every transfer in
// that acquire/release pair.
type Surface struct {
	pixels []Color
	width  int
	height int
	lock   func() error
	unlock func()
}

// NewSurface wraps a host-supplied pixel buffer of the given dimensions.
// The buffer must hold at least width*height colors. lock and unlock may
// be nil when the host needs no acquire/release scoping.
func NewSurface(pixels []Color, width, height int, lock func() error, unlock func()) (*Surface, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if len(pixels) < width*height {
		return nil, ErrInvalidDimensions
	}
	return &Surface{
		pixels: pixels[:width*height],
		width:  width,
		height: height,
		lock:   lock,
		unlock: unlock,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Release ends the borrow of the host buffer. The surface keeps its
// dimensions but any further Flip fails with ErrReleased.
func (s *Surface) Release() {
	s.pixels = nil
}

// Flip transfers src onto the surface inside the lock/unlock pair.
// An equal-size source is copied wholesale. A source that shrinks by the
// same power-of-two factor on both axes is box-filtered, averaging each
// block into one output pixel. Any other size difference falls back to a
// full-canvas Assign+Nearest blit.
func (s *Surface) Flip(src *Image) error {
	if s.pixels == nil {
		return ErrReleased
	}
	if src.IsBad() {
		return ErrBadImage
	}
	if s.lock != nil {
		if err := s.lock(); err != nil {
			return err
		}
	}
	if s.unlock != nil {
		defer s.unlock()
	}

	view := Image{pixels: s.pixels, width: s.width, height: s.height}

	switch {
	case src.width == s.width && src.height == s.height:
		copy(view.pixels, src.pixels)
	case s.boxShrinks(src):
		s.boxFilter(&view, src)
	default:
		Blit(&view, bounds(s.width, s.height), src, BlitOptions{})
	}
	return nil
}

// boxShrinks reports whether src shrinks onto the surface by the same
// power-of-two integer factor on both axes.
func (s *Surface) boxShrinks(src *Image) bool {
	if src.width <= s.width || src.width%s.width != 0 {
		return false
	}
	scale := src.width / s.width
	return src.height == s.height*scale && scale&(scale-1) == 0
}

// boxFilter averages each scale×scale source block into one surface
// pixel. scale is a power of two, so the division is a shift.
func (s *Surface) boxFilter(view *Image, src *Image) {
	scale := src.width / s.width
	shift := uint(bits.TrailingZeros(uint(scale)))

	accR := make([]uint32, s.width)
	accG := make([]uint32, s.width)
	accB := make([]uint32, s.width)
	accA := make([]uint32, s.width)

	for y := 0; y < s.height; y++ {
		for y0 := 0; y0 < scale; y0++ {
			row := src.Row(y*scale + y0)
			for x0, c := range row {
				i := x0 >> shift
				accR[i] += uint32(c.R())
				accG[i] += uint32(c.G())
				accB[i] += uint32(c.B())
				accA[i] += uint32(c.A())
			}
		}
		out := view.Row(y)
		for x := 0; x < s.width; x++ {
			out[x] = NewColor(
				uint8(accR[x]>>(2*shift)),
				uint8(accG[x]>>(2*shift)),
				uint8(accB[x]>>(2*shift)),
				uint8(accA[x]>>(2*shift)),
			)
			accR[x], accG[x], accB[x], accA[x] = 0, 0, 0, 0
		}
	}
}
