// Package main provides the edgemap CLI: it turns a label image into the
// binary edge target used to train the shape stream.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder

	"github.com/born-ml/gscnn/boundary"
	"github.com/born-ml/gscnn/tensor"
)

const version = "v0.1.0"

// options holds the parsed command line.
type options struct {
	in         string
	out        string
	classes    int
	radius     int
	background int
	scale      int
	logLevel   string
}

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, errVersion) || errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "edgemap: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "edgemap").
		Logger()
	boundary.SetLogger(&logger)
	defer boundary.SetLogger(nil)

	label, err := readLabel(opts.in)
	if err != nil {
		return err
	}
	logger.Info().
		Str("in", opts.in).
		Ints("shape", label.Shape()).
		Int("classes", opts.classes).
		Msg("label loaded")

	cfg := boundary.DefaultEdgeConfig()
	cfg.Radius = opts.radius
	cfg.BackgroundClass = opts.background

	edges, err := boundary.FlatLabelToEdgeLabel(label, opts.classes, cfg)
	if err != nil {
		return fmt.Errorf("edge map: %w", err)
	}

	count, err := writeEdges(opts.out, edges, uint8(opts.scale))
	if err != nil {
		return err
	}
	logger.Info().
		Str("out", opts.out).
		Int("edge_pixels", count).
		Msg("edge map written")
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("edgemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "label image (PNG, BMP or TIFF); gray value = class index")
	fs.StringVar(&opts.out, "out", "", "output edge map (PNG)")
	fs.IntVar(&opts.classes, "classes", 0, "number of classes")
	fs.IntVar(&opts.radius, "radius", boundary.DefaultRadius, "edge radius in pixels")
	fs.IntVar(&opts.background, "background", boundary.DefaultBackgroundClass, "background class index")
	fs.IntVar(&opts.scale, "scale", 255, "output value for edge pixels (1-255)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if *showVersion {
		fmt.Fprintf(stderr, "edgemap %s\n", version)
		return opts, errVersion
	}

	switch {
	case opts.in == "":
		return opts, errors.New("-in is required")
	case opts.out == "":
		return opts, errors.New("-out is required")
	case opts.classes <= 0:
		return opts, fmt.Errorf("-classes must be > 0, got %d", opts.classes)
	case opts.scale < 1 || opts.scale > 255:
		return opts, fmt.Errorf("-scale must be in [1, 255], got %d", opts.scale)
	}
	return opts, nil
}

// errVersion stops run after -version without reporting a failure.
var errVersion = errors.New("version requested")

func readLabel(path string) (*tensor.Tensor[int32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open label: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode label %s: %w", path, err)
	}
	return labelFromImage(img), nil
}

// labelFromImage reads class indices: palette indices for paletted images,
// gray values otherwise.
func labelFromImage(img image.Image) *tensor.Tensor[int32] {
	b := img.Bounds()
	label := tensor.Zeros[int32](tensor.Shape{b.Dy(), b.Dx()})
	data := label.Data()

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch src := img.(type) {
			case *image.Paletted:
				data[i] = int32(src.ColorIndexAt(x, y))
			case *image.Gray16:
				data[i] = int32(src.Gray16At(x, y).Y)
			default:
				data[i] = int32(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
			}
			i++
		}
	}
	return label
}

func writeEdges(path string, edges *tensor.Tensor[uint8], scale uint8) (int, error) {
	shape := edges.Shape()
	h, w := shape[0], shape[1]

	img := image.NewGray(image.Rect(0, 0, w, h))
	count := 0
	for i, v := range edges.Data() {
		if v != 0 {
			img.Pix[i] = scale
			count++
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("encode edge map: %w", err)
	}
	return count, f.Close()
}
