package gfx

import (
	"fmt"
	"os"
)

// Stream is a lazy handle on an on-disk native image: it holds the
// header metadata (dimensions and the byte offset where pixel data
// starts) and the source path, but never caches pixel data. It is valid
// only while the backing file exists. BlitStream reads source rows
// through it on demand, so arbitrarily large images can be composited
// without materializing them in memory.
type Stream struct {
	width     int
	height    int
	path      string
	dataStart int64
}

// OpenStream reads and validates the native header of the file at path
// and returns a handle on it.
func OpenStream(path string) (*Stream, error) {
	s := &Stream{path: path}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh re-reads the header to pick up external changes to the
// backing file.
func (s *Stream) Refresh() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("gfx: open stream: %w", err)
	}
	defer func() { _ = f.Close() }()

	w, h, err := readNativeHeader(f)
	if err != nil {
		return err
	}
	s.width = w
	s.height = h
	s.dataStart = nativeHeaderSize
	return nil
}

// Width returns the width recorded in the header.
func (s *Stream) Width() int { return s.width }

// Height returns the height recorded in the header.
func (s *Stream) Height() int { return s.height }

// Path returns the backing file path.
func (s *Stream) Path() string { return s.path }

// DataStart returns the byte offset of the pixel data in the backing
// file.
func (s *Stream) DataStart() int64 { return s.dataStart }

// IsGood reports whether the backing file can currently be opened.
func (s *Stream) IsGood() bool {
	f, err := os.Open(s.path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// BlitStream transfers a rectangle of the stream's backing file into a
// rectangle of dst, resampling when the two differ in size. Instead of
// normalized floating coordinates it uses 16.16 fixed-point ratios
// (exact for the 65535 dimension cap), and for each destination row it
// reads only the needed column span into a transient row buffer — one
// buffer allocation per call, one read per row.
//
// The returned error is non-nil only when opening the backing file
// fails. A short read partway through the transfer stops it silently:
// destination rows already written stay written, later rows stay
// unchanged. Partial completion is an accepted outcome, not an error;
// callers needing atomicity must stage into a scratch image themselves.
//
// Unlike Blit, a destination rectangle with reversed endpoints does not
// mirror the transfer; it clips to an empty writable area and the call
// is a no-op. The options' Sampler is ignored.
func BlitStream(dst *Image, dstRect Rect, src *Stream, opts BlitOptions) error {
	if dst.IsBad() {
		Logger().Warn("gfx: stream blit with bad destination")
		return nil
	}
	blend := opts.Blender
	if blend == nil {
		blend = Assign{}
	}

	sr := bounds(src.width, src.height)
	if opts.SrcRect != nil {
		sr = clipRect(*opts.SrcRect, src.width, src.height)
	}

	dx1, dy1, dx2, dy2 := dstRect.X1, dstRect.Y1, dstRect.X2, dstRect.Y2

	scaleX := int64(float64(sr.X2-sr.X1) / float64(dx2-dx1) * (1 << 16))
	scaleY := int64(float64(sr.Y2-sr.Y1) / float64(dy2-dy1) * (1 << 16))

	// Skipped off-canvas steps become a read offset into the source.
	var sx, sy int
	if dx1 < 0 {
		sx = -dx1
		dx1 = 0
	}
	if dy1 < 0 {
		sy = -dy1
		dy1 = 0
	}
	if dx2 > dst.width {
		dx2 = dst.width
	}
	if dy2 > dst.height {
		dy2 = dst.height
	}

	maxX := dx2 - dx1
	maxY := dy2 - dy1
	if maxX < 0 || maxY < 0 {
		return nil
	}

	span := sr.X2 - sr.X1
	if span <= 0 {
		// Empty source span: nothing to sample from.
		return nil
	}
	rowBytes := make([]byte, span*colorSize)
	rowPix := make([]Color, span)
	srcRowWidth := int64(src.width) * colorSize
	srcXOffset := int64(sr.X1)*colorSize + src.dataStart

	f, err := os.Open(src.path)
	if err != nil {
		return fmt.Errorf("gfx: stream blit: %w", err)
	}
	defer func() { _ = f.Close() }()

	for y := 0; y < maxY; y++ {
		srcRow := (scaleY*int64(y+sy))>>16 + int64(sr.Y1)
		n, err := f.ReadAt(rowBytes, srcRow*srcRowWidth+srcXOffset)
		if n < len(rowBytes) {
			Logger().Warn("gfx: stream blit stopped early",
				"path", src.path, "row", y, "error", err)
			break
		}
		for i := range rowPix {
			rowPix[i] = colorFromBytes(rowBytes[i*colorSize:])
		}
		row := dst.Row(dy1 + y)
		for x := 0; x < maxX; x++ {
			sp := rowPix[(scaleX*int64(x+sx))>>16]
			row[dx1+x] = blend.Blend(row[dx1+x], sp)
		}
	}
	return nil
}
