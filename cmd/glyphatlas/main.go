// Command glyphatlas bakes a glyph atlas for a font and writes it as a PNG
// image plus an optional JSON table of glyph records and kerning pairs.
//
//	glyphatlas -font DejaVuSans.ttf -size 48 -text "Hello, World" -o atlas.png -json atlas.json
//
// Without -font the Go Regular font is used. -o - writes the PNG to
// standard output, which is refused when standard output is a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/text"
)

// options holds the parsed command line.
type options struct {
	fontPath string
	chars    string
	output   string
	table    string
	verbose  bool
	noGPOS   bool
	settings glyphatlas.Settings
}

func parseFlags(args []string) (*options, error) {
	def := glyphatlas.DefaultSettings()
	o := &options{}

	fs := flag.NewFlagSet("glyphatlas", flag.ContinueOnError)
	fs.StringVar(&o.fontPath, "font", "", "TTF/OTF font file (default: Go Regular)")
	fs.StringVar(&o.chars, "text", "", "characters to add to the atlas")
	fs.StringVar(&o.output, "o", "atlas.png", "output PNG file, - for stdout")
	fs.StringVar(&o.table, "json", "", "output JSON glyph table (optional)")
	fs.BoolVar(&o.verbose, "v", false, "log debug messages to stderr")
	fs.BoolVar(&o.noGPOS, "no-gpos", false, "ignore the GPOS table for kerning")

	size := fs.Uint("size", uint(def.FontSize), "font size in pixels per em")
	pad := fs.Uint("pad", uint(def.PadSize), "padding around each glyph in pixels")
	radius := fs.Float64("radius", float64(def.SDFRadius), "SDF radius in pixels, 0 for grayscale")
	width := fs.Uint("width", uint(def.AtlasWidth), "atlas width (power of 2)")
	height := fs.Uint("height", uint(def.AtlasHeight), "atlas height (power of 2)")
	defaults := fs.Bool("defaults", false, "add the default glyph set")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.settings = glyphatlas.Settings{
		FontSize:                    uint32(*size),
		PadSize:                     uint32(*pad),
		SDFRadius:                   float32(*radius),
		AtlasWidth:                  uint32(*width),
		AtlasHeight:                 uint32(*height),
		InitializeWithDefaultGlyphs: *defaults,
	}
	o.chars = norm.NFC.String(o.chars)
	return o, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glyphatlas: ")

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if o.verbose {
		glyphatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(o, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(o *options, stdout *os.File) error {
	data := goregular.TTF
	if o.fontPath != "" {
		// #nosec G304 -- Font file path is provided by the user
		b, err := os.ReadFile(o.fontPath)
		if err != nil {
			return err
		}
		data = b
	}

	var srcOpts []text.SourceOption
	if o.noGPOS {
		srcOpts = append(srcOpts, text.WithoutGPOS())
	}

	fc, err := glyphatlas.New(data, o.settings, srcOpts...)
	if err != nil {
		return err
	}
	defer fc.Close()

	if err := bake(fc, o.chars); err != nil {
		return err
	}

	if o.output == "-" {
		if term.IsTerminal(int(stdout.Fd())) {
			return fmt.Errorf("refusing to write PNG data to a terminal")
		}
		if err := writePNG(stdout, fc); err != nil {
			return err
		}
	} else if err := writeFile(o.output, func(w io.Writer) error { return writePNG(w, fc) }); err != nil {
		return err
	}

	if o.table != "" {
		if err := writeFile(o.table, func(w io.Writer) error { return writeTable(w, fc) }); err != nil {
			return err
		}
	}

	log.Printf("%d glyphs, %d kerning pairs, %.1f%% of %dx%d atlas used",
		fc.GlyphCount(), fc.KerningPairCount(), 100*fc.Utilization(),
		o.settings.AtlasWidth, o.settings.AtlasHeight)
	return nil
}

// bake adds chars to the cache, turning atlas exhaustion into an error.
func bake(fc *glyphatlas.FontCache, chars string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			full, ok := r.(*glyphatlas.AtlasFullError)
			if !ok {
				panic(r)
			}
			err = full
		}
	}()
	fc.WarmUp(chars)
	return nil
}

// atlasImage wraps the atlas pixels as an image.Gray without copying.
func atlasImage(fc *glyphatlas.FontCache) *image.Gray {
	img := fc.AtlasImage()
	return &image.Gray{
		Pix:    img.Pix,
		Stride: img.Width,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

func writePNG(w io.Writer, fc *glyphatlas.FontCache) error {
	return png.Encode(w, atlasImage(fc))
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
