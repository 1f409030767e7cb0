package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumineer/ledlayout"
	"github.com/lumineer/ledlayout/catalog"
)

func newEstimateCmd() *cobra.Command {
	opts := placeOpts{
		ppi:     10,
		columns: 1,
		module:  "standard",
	}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run placement and report power draw and a supply pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.Context(), &opts)
		},
	}

	opts.input.register(cmd)
	cmd.Flags().StringVarP(&opts.module, "module", "m", opts.module, "catalog module to estimate with")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "TOML catalog file (default: built-in catalog)")
	cmd.Flags().Float64Var(&opts.ppi, "ppi", opts.ppi, "drawing resolution in pixels per inch")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "exact module count per shape (0 = as many as spacing admits)")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", opts.columns, "parallel rows per stroke (1-5)")
	cmd.Flags().StringVar(&opts.orientation, "orientation", "follow", "module orientation: follow, horizontal, or vertical")
	cmd.Flags().Float64Var(&opts.halfLength, "half-length", 0, "module capsule half-length in pixels (default: engine default)")

	return cmd
}

func runEstimate(ctx context.Context, opts *placeOpts) error {
	logger := loggerFromContext(ctx)

	c := catalog.Default()
	if opts.catalogPath != "" {
		var err error
		c, err = catalog.Load(opts.catalogPath)
		if err != nil {
			return err
		}
	}
	m, err := c.Module(opts.module)
	if err != nil {
		return err
	}
	opts.spacing = 0 // always derived from the module density

	letters, config, err := loadAndConfigure(ctx, opts)
	if err != nil {
		return err
	}

	total := 0
	printNewline()
	fmt.Println(StyleTitle.Render("Placement"))
	for _, l := range letters {
		n := len(ledlayout.Place(l.Shape, config))
		if n == 0 {
			printWarning("no placement found for %q", l.Name)
		} else {
			printDetail("%-8s %d modules", l.Name, n)
		}
		total += n
	}
	logger.Debugf("Total %d modules", total)

	watts := catalog.EstimatePower(total, m)

	printNewline()
	fmt.Println(StyleTitle.Render("Power"))
	printKeyValue("module", m.Name)
	printKeyValue("count", StyleNumber.Render(fmt.Sprintf("%d", total)))
	printKeyValue("draw", fmt.Sprintf("%.1f W", watts))

	supply, err := catalog.PickSupply(watts, c.Supplies)
	if err != nil {
		printWarning("%v", err)
		return nil
	}
	printKeyValue("supply", fmt.Sprintf("%s (%.0f W usable)", supply.Name, supply.Usable()))
	printNewline()
	printSuccess("%d × %s on one %s", total, m.Name, supply.Name)
	return nil
}
