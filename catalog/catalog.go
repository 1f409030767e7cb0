// Package catalog describes the LED modules and power supplies a sign shop
// stocks, and the power arithmetic that turns a placement count into a
// supply pick. Catalogs are plain TOML files so shops can maintain their own;
// a small built-in catalog covers common parts.
//
// The placement engine never consults the catalog. It consumes a base
// spacing; [Module.Spacing] is how a module's rated density becomes that
// spacing for a given drawing resolution.
package catalog

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// DefaultDerating is the fraction of a supply's rated wattage considered
// usable when the supply does not specify its own derating.
const DefaultDerating = 0.8

// Module is one LED module product.
type Module struct {
	// Name identifies the product line, e.g. "tetra-max".
	Name string `toml:"name"`
	// Watts is power draw per module.
	Watts float64 `toml:"watts"`
	// Density is the rated modules per foot of stroke.
	Density float64 `toml:"density"`
}

// Supply is one power supply product.
type Supply struct {
	Name  string  `toml:"name"`
	Watts float64 `toml:"watts"`
	// Derating is the usable fraction of Watts; zero means DefaultDerating.
	Derating float64 `toml:"derating"`
}

// Catalog is a set of modules and supplies.
type Catalog struct {
	Modules  []Module `toml:"module"`
	Supplies []Supply `toml:"supply"`
}

// Load reads a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return &c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Modules: []Module{
			{Name: "mini", Watts: 0.4, Density: 4},
			{Name: "standard", Watts: 0.8, Density: 3},
			{Name: "high-output", Watts: 1.2, Density: 2},
		},
		Supplies: []Supply{
			{Name: "ps-20", Watts: 20},
			{Name: "ps-60", Watts: 60},
			{Name: "ps-96", Watts: 96},
			{Name: "ps-150", Watts: 150},
		},
	}
}

func (c *Catalog) validate() error {
	for _, m := range c.Modules {
		if m.Name == "" {
			return fmt.Errorf("module with empty name")
		}
		if m.Watts <= 0 || m.Density <= 0 {
			return fmt.Errorf("module %q: watts and density must be positive", m.Name)
		}
	}
	for _, s := range c.Supplies {
		if s.Name == "" {
			return fmt.Errorf("supply with empty name")
		}
		if s.Watts <= 0 {
			return fmt.Errorf("supply %q: watts must be positive", s.Name)
		}
		if s.Derating < 0 || s.Derating > 1 {
			return fmt.Errorf("supply %q: derating must be in [0, 1]", s.Name)
		}
	}
	return nil
}

// Module returns the named module.
func (c *Catalog) Module(name string) (Module, error) {
	for _, m := range c.Modules {
		if m.Name == name {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("no module %q in catalog", name)
}

// Spacing converts the module's rated density into the base pixel spacing
// used for placement, given the drawing's resolution in pixels per inch.
func (m Module) Spacing(pixelsPerInch float64) float64 {
	return 12 * pixelsPerInch / m.Density
}

// EstimatePower returns total draw in watts for n modules.
func EstimatePower(n int, m Module) float64 {
	return float64(n) * m.Watts
}

// PickSupply returns the smallest supply whose derated capacity covers
// totalWatts, or an error if none does.
func PickSupply(totalWatts float64, supplies []Supply) (Supply, error) {
	best := Supply{}
	bestUsable := math.Inf(1)
	for _, s := range supplies {
		usable := s.Usable()
		if usable >= totalWatts && usable < bestUsable {
			best = s
			bestUsable = usable
		}
	}
	if best.Name == "" {
		return Supply{}, fmt.Errorf("no supply covers %.1f W", totalWatts)
	}
	return best, nil
}

// Usable returns the supply's derated capacity in watts.
func (s Supply) Usable() float64 {
	d := s.Derating
	if d == 0 {
		d = DefaultDerating
	}
	return s.Watts * d
}
