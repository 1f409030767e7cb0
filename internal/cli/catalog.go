package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumineer/ledlayout/catalog"
)

func newCatalogCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the modules and supplies of a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			source := "built-in"
			if path != "" {
				var err error
				c, err = catalog.Load(path)
				if err != nil {
					return err
				}
				source = path
			}
			printCatalog(c, source)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "catalog", "", "TOML catalog file (default: built-in catalog)")
	return cmd
}

func printCatalog(c *catalog.Catalog, source string) {
	printInfo("catalog: %s", source)
	printNewline()

	fmt.Println(StyleTitle.Render("Modules"))
	for _, m := range c.Modules {
		printDetail("%-14s %.1f W, %.0f per foot", m.Name, m.Watts, m.Density)
	}

	printNewline()
	fmt.Println(StyleTitle.Render("Supplies"))
	for _, s := range c.Supplies {
		printDetail("%-14s %.0f W rated, %.0f W usable", s.Name, s.Watts, s.Usable())
	}
}
