package gfx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Foreign image import is delegated to the registered decoders.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Native container layout: a 4-byte pixel-type-size tag (must equal
// colorSize), 4-byte width, 4-byte height, then width*height raw 4-byte
// pixel records. All fields little-endian; pixel byte order is R,G,B,A.
// No compression, no checksums.
const (
	colorSize        = 4
	nativeHeaderSize = 3 * 4
)

func colorFromBytes(b []byte) Color {
	return Color(binary.LittleEndian.Uint32(b))
}

// readNativeHeader reads and validates the container header, returning
// the recorded dimensions.
func readNativeHeader(r io.Reader) (w, h int, err error) {
	var hdr [nativeHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("gfx: read header: %w", err)
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != colorSize {
		return 0, 0, ErrFormat
	}
	w = int(int32(binary.LittleEndian.Uint32(hdr[4:8])))
	h = int(int32(binary.LittleEndian.Uint32(hdr[8:12])))
	return w, h, nil
}

// Encode writes the image to w in the native container format.
func (img *Image) Encode(w io.Writer) error {
	if img.IsBad() {
		return ErrBadImage
	}

	bw := bufio.NewWriter(w)
	var hdr [nativeHeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], colorSize)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(img.width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(img.height))
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("gfx: write header: %w", err)
	}

	var px [colorSize]byte
	for _, c := range img.pixels {
		binary.LittleEndian.PutUint32(px[:], uint32(c))
		if _, err := bw.Write(px[:]); err != nil {
			return fmt.Errorf("gfx: write pixels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gfx: write pixels: %w", err)
	}
	return nil
}

// Decode replaces the image with the native container read from r.
// A failed decode leaves the image bad, never half-populated.
func (img *Image) Decode(r io.Reader) error {
	w, h, err := readNativeHeader(r)
	if err != nil {
		img.Free()
		return err
	}
	if err := img.Create(w, h); err != nil {
		return err
	}

	br := bufio.NewReader(r)
	var px [colorSize]byte
	for i := range img.pixels {
		if _, err := io.ReadFull(br, px[:]); err != nil {
			img.Free()
			return fmt.Errorf("gfx: read pixels: %w", err)
		}
		img.pixels[i] = colorFromBytes(px[:])
	}
	return nil
}

// Save writes the image to a file in the native container format.
func (img *Image) Save(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gfx: create file: %w", err)
	}
	if err := img.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	Logger().Debug("gfx: image saved", "path", path, "width", img.width, "height", img.height)
	return f.Close()
}

// Load replaces the image with the native container read from a file.
// On any error the image is left bad.
func (img *Image) Load(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		img.Free()
		return fmt.Errorf("gfx: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := img.Decode(f); err != nil {
		return err
	}
	Logger().Debug("gfx: image loaded", "path", path, "width", img.width, "height", img.height)
	return nil
}

// Convert replaces the image with the decoded content of a foreign
// image file (PNG, JPEG, GIF, BMP, TIFF or WebP). Decoding is delegated
// to the registered stdlib and golang.org/x/image decoders; each decoded
// pixel is repacked into a Color row by row.
func (img *Image) Convert(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		img.Free()
		return fmt.Errorf("gfx: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	src, format, err := image.Decode(f)
	if err != nil {
		img.Free()
		return fmt.Errorf("gfx: decode %q: %w", path, err)
	}
	Logger().Debug("gfx: image converted", "path", path, "format", format)
	return img.FromImage(src)
}

// FromImage replaces the image with the content of a standard library
// image. NRGBA and RGBA sources copy row by row using the source's
// stride; anything else goes through per-pixel channel extraction.
func (img *Image) FromImage(src image.Image) error {
	b := src.Bounds()
	if err := img.Create(b.Dx(), b.Dy()); err != nil {
		return err
	}

	switch s := src.(type) {
	case *image.NRGBA:
		img.fromRawRGBA(s.Pix, s.Stride)
	case *image.RGBA:
		img.fromRawRGBA(s.Pix, s.Stride)
	default:
		for y := 0; y < img.height; y++ {
			row := img.Row(y)
			for x := 0; x < img.width; x++ {
				row[x] = FromColor(src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return nil
}

// fromRawRGBA repacks 4-byte R,G,B,A pixel rows with the given stride.
func (img *Image) fromRawRGBA(pix []byte, stride int) {
	for y := 0; y < img.height; y++ {
		row := img.Row(y)
		src := pix[y*stride:]
		for x := 0; x < img.width; x++ {
			row[x] = colorFromBytes(src[x*colorSize:])
		}
	}
}

// ToImage converts the image to a standard library *image.NRGBA.
// Returns nil for a bad image.
func (img *Image) ToImage() *image.NRGBA {
	if img.IsBad() {
		return nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		row := img.Row(y)
		dst := out.Pix[y*out.Stride:]
		for x, c := range row {
			binary.LittleEndian.PutUint32(dst[x*colorSize:], uint32(c))
		}
	}
	return out
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	if img.IsBad() {
		return ErrBadImage
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gfx: create file: %w", err)
	}
	if err := png.Encode(f, img.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("gfx: encode PNG: %w", err)
	}
	return f.Close()
}
