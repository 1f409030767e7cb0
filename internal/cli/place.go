package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumineer/ledlayout"
	"github.com/lumineer/ledlayout/catalog"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	input       inputOpts
	spacing     float64 // base module spacing in pixels; 0 defers to --module
	module      string  // catalog module whose density derives the spacing
	catalogPath string  // TOML catalog; empty means the built-in one
	ppi         float64 // drawing resolution for density-derived spacing
	count       int     // exact module count per shape (0 = density mode)
	columns     int     // parallel rows per stroke
	orientation string  // follow, horizontal, or vertical
	halfLength  float64 // module capsule half-length in pixels
	output      string  // JSON output file ("-" or empty for stdout)
	svgPath     string  // optional SVG preview file
}

// placementRecord is one placed module in the JSON output.
type placementRecord struct {
	Letter   string  `json:"letter"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

func newPlaceCmd() *cobra.Command {
	opts := placeOpts{
		ppi:     10,
		columns: 1,
	}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute LED module positions for text or a polygon outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.Context(), &opts)
		},
	}

	opts.input.register(cmd)
	cmd.Flags().Float64VarP(&opts.spacing, "spacing", "s", 0, "base module spacing in pixels (default: engine default, or derived from --module)")
	cmd.Flags().StringVarP(&opts.module, "module", "m", "", "catalog module whose rated density derives the spacing")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "TOML catalog file (default: built-in catalog)")
	cmd.Flags().Float64Var(&opts.ppi, "ppi", opts.ppi, "drawing resolution in pixels per inch, used with --module")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "exact module count per shape (0 = as many as spacing admits)")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", opts.columns, "parallel rows per stroke (1-5)")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "follow", "module orientation: follow, horizontal, or vertical")
	cmd.Flags().Float64Var(&opts.halfLength, "half-length", 0, "module capsule half-length in pixels (default: engine default)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "JSON output file (default: stdout)")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write an SVG preview to this file")

	return cmd
}

func runPlace(ctx context.Context, opts *placeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	letters, config, err := loadAndConfigure(ctx, opts)
	if err != nil {
		return err
	}

	placements := make([][]ledlayout.Position, len(letters))
	total := 0
	for i, l := range letters {
		placements[i] = ledlayout.Place(l.Shape, config)
		logger.Debugf("Placed %d modules in %q", len(placements[i]), l.Name)
		if len(placements[i]) == 0 {
			printWarning("no placement found for %q", l.Name)
		}
		total += len(placements[i])
	}
	prog.done(fmt.Sprintf("Placed %d modules across %d shapes", total, len(letters)))

	if err := writePlacementJSON(opts.output, letters, placements); err != nil {
		return err
	}
	if opts.svgPath != "" {
		if err := writeSVGFile(opts.svgPath, letters, placements, config.HalfLength); err != nil {
			return err
		}
		printFile(opts.svgPath)
	}
	return nil
}

// loadAndConfigure resolves the shared input and engine flags into letters
// and a placement config. The estimate command uses the same resolution.
func loadAndConfigure(ctx context.Context, opts *placeOpts) ([]letter, ledlayout.Config, error) {
	logger := loggerFromContext(ctx)

	orientation, err := parseOrientation(opts.orientation)
	if err != nil {
		return nil, ledlayout.Config{}, err
	}

	spacing := opts.spacing
	if opts.module != "" {
		if spacing != 0 {
			return nil, ledlayout.Config{}, fmt.Errorf("--spacing and --module are mutually exclusive")
		}
		m, err := lookupModule(opts.catalogPath, opts.module)
		if err != nil {
			return nil, ledlayout.Config{}, err
		}
		spacing = m.Spacing(opts.ppi)
		logger.Debugf("Module %s at %.0f ppi: spacing %.1f px", m.Name, opts.ppi, spacing)
	}

	letters, err := loadLetters(&opts.input)
	if err != nil {
		return nil, ledlayout.Config{}, err
	}
	logger.Infof("Loaded %d shapes", len(letters))

	config := ledlayout.Config{
		Spacing:     spacing,
		TargetCount: opts.count,
		Columns:     opts.columns,
		Orientation: orientation,
		HalfLength:  opts.halfLength,
	}
	return letters, config, nil
}

// lookupModule finds a module by name in the given catalog file, or in the
// built-in catalog when path is empty.
func lookupModule(path, name string) (catalog.Module, error) {
	c := catalog.Default()
	if path != "" {
		var err error
		c, err = catalog.Load(path)
		if err != nil {
			return catalog.Module{}, err
		}
	}
	return c.Module(name)
}

func writePlacementJSON(output string, letters []letter, placements [][]ledlayout.Position) error {
	records := make([]placementRecord, 0, len(letters))
	for i, l := range letters {
		for _, pos := range placements[i] {
			records = append(records, placementRecord{
				Letter:   l.Name,
				X:        pos.Center.X,
				Y:        pos.Center.Y,
				Rotation: pos.Rotation,
			})
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if output == "" || output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
