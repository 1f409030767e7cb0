package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lumineer/ledlayout"
	"github.com/lumineer/ledlayout/cache"
	"github.com/lumineer/ledlayout/glyph"
)

// defaultPPEM is the glyph pixel size used when --size is not given. Letter
// outlines at this size are in the scale range the engine's default tunables
// are calibrated for.
const defaultPPEM = 200

// letter is one placeable outline plus the metadata commands report. For
// polygon input there is a single letter named after the input file.
type letter struct {
	Name    string
	Shape   ledlayout.Shape
	Outline *ledlayout.Polyline
}

// inputOpts holds the flags shared by the place and estimate commands that
// select what outline to fill.
type inputOpts struct {
	text    string // text to shape into letter outlines
	font    string // TTF/OTF file; empty means the bundled Go Regular
	ppem    float64
	polygon string // JSON polygon file, mutually exclusive with text
	raster  bool   // resolve containment against a rasterized mask
}

func (o *inputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.text, "text", "t", "", "text to lay out, one letter per shape")
	cmd.Flags().StringVar(&o.font, "font", "", "TTF/OTF font file (default: bundled Go Regular)")
	cmd.Flags().Float64Var(&o.ppem, "size", defaultPPEM, "glyph size in pixels per em")
	cmd.Flags().StringVarP(&o.polygon, "polygon", "p", "", "JSON polygon file: array of contours, each an array of [x, y] pairs")
	cmd.Flags().BoolVar(&o.raster, "raster", false, "test containment against a rasterized coverage mask")
}

// shapedRuns caches shaped text for the life of the process. One-shot
// commands shape at most once; embedding callers and tests that lay out the
// same text repeatedly skip the shaping and flattening cost.
var shapedRuns = cache.New(64)

// loadLetters resolves the input flags into placeable shapes.
func loadLetters(opts *inputOpts) ([]letter, error) {
	switch {
	case opts.text != "" && opts.polygon != "":
		return nil, fmt.Errorf("--text and --polygon are mutually exclusive")
	case opts.text != "":
		return loadText(opts)
	case opts.polygon != "":
		return loadPolygon(opts)
	default:
		return nil, fmt.Errorf("one of --text or --polygon is required")
	}
}

func loadText(opts *inputOpts) ([]letter, error) {
	fontData := goregular.TTF
	if opts.font != "" {
		var err error
		fontData, err = os.ReadFile(opts.font)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
	}

	key := cache.KeyOf("en", opts.text, opts.ppem, cache.FontID(fontData))
	glyphs, ok := shapedRuns.Get(key)
	if !ok {
		shaper, err := glyph.NewShaper(fontData)
		if err != nil {
			return nil, err
		}
		glyphs, err = shaper.Shape(opts.text, opts.ppem)
		if err != nil {
			return nil, err
		}
		shapedRuns.Put(key, glyphs)
	}

	runes := []rune(opts.text)
	var letters []letter
	for _, g := range glyphs {
		if g.Outline == nil {
			continue // whitespace or blank glyph
		}
		name := "?"
		if g.Cluster >= 0 && g.Cluster < len(runes) {
			name = string(runes[g.Cluster])
		}
		letters = append(letters, letter{
			Name:    name,
			Shape:   asShape(g.Outline, opts.raster),
			Outline: g.Outline,
		})
	}
	return letters, nil
}

func loadPolygon(opts *inputOpts) ([]letter, error) {
	data, err := os.ReadFile(opts.polygon)
	if err != nil {
		return nil, fmt.Errorf("reading polygon: %w", err)
	}
	outline, err := parsePolygon(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", opts.polygon, err)
	}
	return []letter{{
		Name:    opts.polygon,
		Shape:   asShape(outline, opts.raster),
		Outline: outline,
	}}, nil
}

// parsePolygon decodes a JSON array of contours, each contour an array of
// [x, y] pairs. Contours wound opposite to their surroundings cut holes.
func parsePolygon(data []byte) (*ledlayout.Polyline, error) {
	var raw [][][2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	contours := make([][]ledlayout.Point, 0, len(raw))
	for i, c := range raw {
		if len(c) < 3 {
			return nil, fmt.Errorf("contour %d has %d points, need at least 3", i, len(c))
		}
		pts := make([]ledlayout.Point, len(c))
		for j, xy := range c {
			pts[j] = ledlayout.Pt(xy[0], xy[1])
		}
		contours = append(contours, pts)
	}
	outline := ledlayout.NewPolyline(contours...)
	if outline.TotalLength() == 0 {
		return nil, fmt.Errorf("polygon has no usable contours")
	}
	return outline, nil
}

func asShape(outline *ledlayout.Polyline, raster bool) ledlayout.Shape {
	if raster {
		return ledlayout.NewRasterShape(outline)
	}
	return outline
}

// parseOrientation maps the --orientation flag to an engine orientation.
func parseOrientation(s string) (ledlayout.Orientation, error) {
	switch s {
	case "", "follow", "follow-outline":
		return ledlayout.FollowOutline, nil
	case "horizontal":
		return ledlayout.Horizontal, nil
	case "vertical":
		return ledlayout.Vertical, nil
	default:
		return 0, fmt.Errorf("invalid orientation: %s (must be 'follow', 'horizontal', or 'vertical')", s)
	}
}
