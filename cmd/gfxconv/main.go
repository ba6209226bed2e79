// Command gfxconv inspects and converts images to and from the gfx
// native container format.
//
//	gfxconv info picture.gfx
//	gfxconv convert picture.png picture.gfx
//	gfxconv convert picture.gfx picture.png
//	gfxconv resize --width 640 --height 480 in.gfx out.gfx
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	xdraw "golang.org/x/image/draw"

	"github.com/SirJonthe/gfx"
)

const nativeExt = ".gfx"

var cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Info    infoCmd    `cmd:"" help:"Print image metadata."`
	Convert convertCmd `cmd:"" help:"Convert between image formats."`
	Resize  resizeCmd  `cmd:"" help:"Resize an image."`
}

type infoCmd struct {
	File string `arg:"" type:"existingfile" help:"Image file to inspect."`
}

func (c *infoCmd) Run() error {
	if strings.EqualFold(filepath.Ext(c.File), nativeExt) {
		s, err := gfx.OpenStream(c.File)
		if err != nil {
			return err
		}
		fmt.Printf("%s: native %dx%d, pixel data at byte %d\n",
			c.File, s.Width(), s.Height(), s.DataStart())
		return nil
	}

	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("decode %q: %w", c.File, err)
	}
	fmt.Printf("%s: %s %dx%d\n", c.File, format, cfg.Width, cfg.Height)
	return nil
}

type convertCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input image (native, PNG, JPEG, GIF, BMP, TIFF or WebP)."`
	Out string `arg:"" help:"Output image (.gfx or .png)."`
}

func (c *convertCmd) Run() error {
	img, err := loadAny(c.In)
	if err != nil {
		return err
	}
	return saveAny(img, c.Out)
}

type resizeCmd struct {
	In     string `arg:"" type:"existingfile" help:"Input image."`
	Out    string `arg:"" help:"Output image (.gfx or .png)."`
	Width  int    `required:"" help:"Output width in pixels."`
	Height int    `required:"" help:"Output height in pixels."`
}

func (c *resizeCmd) Run() error {
	img, err := loadAny(c.In)
	if err != nil {
		return err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img.ToImage(), img.Bounds(), xdraw.Src, nil)

	out := &gfx.Image{}
	if err := out.FromImage(dst); err != nil {
		return err
	}
	return saveAny(out, c.Out)
}

// loadAny reads a native container by extension, anything else through
// the registered foreign decoders.
func loadAny(path string) (*gfx.Image, error) {
	img := &gfx.Image{}
	if strings.EqualFold(filepath.Ext(path), nativeExt) {
		return img, img.Load(path)
	}
	return img, img.Convert(path)
}

// saveAny writes a native container or a PNG depending on extension.
func saveAny(img *gfx.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case nativeExt:
		return img.Save(path)
	case ".png":
		return img.SavePNG(path)
	default:
		return fmt.Errorf("unsupported output format %q (use %s or .png)", filepath.Ext(path), nativeExt)
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("gfxconv"),
		kong.Description("Inspect and convert gfx native images."),
		kong.UsageOnError(),
	)
	if cli.Verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	ctx.FatalIfErrorf(ctx.Run())
}
