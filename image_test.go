package gfx

import (
	"errors"
	"image"
	"testing"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"minimal", 1, 1, nil},
		{"typical", 640, 480, nil},
		{"max dimension", MaxDimension, 1, nil},
		{"zero width", 0, 10, ErrInvalidDimensions},
		{"zero height", 10, 0, ErrInvalidDimensions},
		{"negative", -1, 10, ErrInvalidDimensions},
		{"too wide", MaxDimension + 1, 10, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImage(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImage(%d, %d) error = %v, want %v", tt.w, tt.h, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if img.IsGood() || img.Width() != 0 || img.Height() != 0 {
					t.Errorf("failed image must be bad with zero extent")
				}
				return
			}
			if img.IsBad() || img.Width() != tt.w || img.Height() != tt.h {
				t.Errorf("image = %dx%d good=%v", img.Width(), img.Height(), img.IsGood())
			}
		})
	}
}

// TestCreateReplacesBuffer checks that Create releases the previous
// buffer even when the new request is invalid.
func TestCreateReplacesBuffer(t *testing.T) {
	img, err := NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := img.Create(0, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("Create(0, 0) error = %v", err)
	}
	if img.IsGood() {
		t.Error("image should be bad after a failed Create")
	}
}

func TestFree(t *testing.T) {
	img, err := NewImage(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Free()
	if img.IsGood() || img.Width() != 0 || img.Height() != 0 {
		t.Error("freed image should be bad with zero extent")
	}
	// A bad image stays safe to query.
	if got := img.Pixel(0, 0); got != 0 {
		t.Errorf("Pixel on bad image = %v, want zero", got.NRGBA())
	}
}

func TestCopy(t *testing.T) {
	src := gradientImage(t, 3, 2, 50)

	var dst Image
	if err := dst.Copy(src); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if dst.Width() != 3 || dst.Height() != 2 {
		t.Fatalf("copy = %dx%d, want 3x2", dst.Width(), dst.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if dst.Pixel(x, y) != src.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}

	// Deep copy: mutating the source must not affect the copy.
	src.SetPixel(0, 0, NewColor(9, 9, 9, 9))
	if dst.Pixel(0, 0) == src.Pixel(0, 0) {
		t.Error("copy shares the source buffer")
	}

	if err := dst.Copy(&Image{}); !errors.Is(err, ErrBadImage) {
		t.Errorf("Copy from bad image error = %v, want ErrBadImage", err)
	}
}

func TestPixelBounds(t *testing.T) {
	img, err := NewImage(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(-1, 0, NewColor(1, 1, 1, 1)) // discarded
	img.SetPixel(2, 0, NewColor(1, 1, 1, 1))  // discarded
	img.SetPixel(1, 1, NewColor(5, 6, 7, 8))

	if got := img.Pixel(5, 5); got != 0 {
		t.Errorf("out-of-bounds Pixel = %v, want zero", got.NRGBA())
	}
	if got := img.Pixel(1, 1); got != NewColor(5, 6, 7, 8) {
		t.Errorf("Pixel(1,1) = %v", got.NRGBA())
	}
}

// TestFloatAccessors checks that RGBAF reads through the normalized
// table (reciprocal scale) and SetRGBAF scales [0,1] floats by 255.
func TestFloatAccessors(t *testing.T) {
	img, err := NewImage(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	img.SetPixel(0, 0, NewColor(51, 255, 51, 255))
	r, g, b, a := img.RGBAF(0, 0)
	if r != 5 || g != 1 || b != 5 || a != 1 {
		t.Errorf("RGBAF = (%v,%v,%v,%v), want (5,1,5,1)", r, g, b, a)
	}

	img.SetRGBAF(0, 0, 1, 0.5, 0, 1)
	if got := img.Pixel(0, 0); got != NewColor(255, 127, 0, 255) {
		t.Errorf("SetRGBAF pixel = %v, want (255,127,0,255)", got.NRGBA())
	}

	img.SetRGBF(0, 0, 0, 0, 1)
	if got := img.Pixel(0, 0); got != NewColor(0, 0, 255, 255) {
		t.Errorf("SetRGBF should keep alpha, got %v", got.NRGBA())
	}
}

func TestReverseByteOrder(t *testing.T) {
	img, err := NewImage(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(0, 0, NewColor(1, 2, 3, 4))
	img.SetPixel(1, 0, NewColor(5, 6, 7, 8))

	img.ReverseByteOrder()

	if img.Pixel(0, 0) != NewColor(4, 3, 2, 1) || img.Pixel(1, 0) != NewColor(8, 7, 6, 5) {
		t.Errorf("ReverseByteOrder = %v, %v", img.Pixel(0, 0).NRGBA(), img.Pixel(1, 0).NRGBA())
	}
}

func TestImageImplementsStdImage(t *testing.T) {
	img, err := NewImage(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	var _ image.Image = img

	img.SetPixel(1, 0, NewColor(10, 20, 30, 40))
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds = %v", got)
	}
	r, g, b, a := img.At(1, 0).RGBA()
	nr, ng, nb, na := img.Pixel(1, 0).NRGBA().RGBA()
	if r != nr || g != ng || b != nb || a != na {
		t.Errorf("At(1,0) = (%d,%d,%d,%d), want (%d,%d,%d,%d)", r, g, b, a, nr, ng, nb, na)
	}
}
