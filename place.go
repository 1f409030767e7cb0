package ledlayout

import (
	"math"
)

// Orientation selects how placed modules are rotated.
type Orientation uint8

const (
	// FollowOutline rotates each module to the local stroke direction.
	FollowOutline Orientation = iota
	// Horizontal pins every module's rotation to 0°.
	Horizontal
	// Vertical pins every module's rotation to 90°.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case FollowOutline:
		return "follow-outline"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Position is a single placed LED module: a center point plus a rotation in
// degrees. Rotation 0 points along the positive x axis; the module's capsule
// footprint extends from the center along the rotation in both directions.
type Position struct {
	Center   Point
	Rotation float64
}

// DefaultHalfLength is the capsule half-length assumed when
// [Config.HalfLength] is zero.
const DefaultHalfLength = 4.0

// Config is the per-call placement configuration. A zero Config places a
// single row of outline-following modules at the default spacing.
type Config struct {
	// Spacing is the base distance between neighboring modules, in shape
	// units. Zero means DefaultParams().Spacing. Callers working from a
	// catalog density can derive it with catalog.Module.Spacing.
	Spacing float64

	// TargetCount, when positive, requests this exact number of modules.
	// The engine binary-searches the spacing threshold that yields it and
	// subsamples any surplus. Zero means density mode: place as many
	// modules as Spacing admits.
	TargetCount int

	// Columns is the number of parallel rows, 1 through 5. Values outside
	// that range are clamped.
	Columns int

	// Orientation selects forced or outline-following module rotation.
	Orientation Orientation

	// HalfLength is half the module footprint length used for capsule
	// containment checks. Zero means DefaultHalfLength.
	HalfLength float64

	// Params overrides the engine tunables. Nil means DefaultParams.
	Params *Params
}

// Params are the engine's tuned constants. The defaults are calibrated for
// sign-letter scale geometry (device pixels at a fixed pixels-per-inch);
// override them only when the unit space differs.
type Params struct {
	// Spacing is the base module spacing used when Config.Spacing is zero.
	Spacing float64

	// SampleStep is the arc-length step of the fine boundary walk.
	SampleStep float64

	// NormalDelta is the arc-length half-window for tangent estimation.
	NormalDelta float64

	// MarchStep is the linear ray-march step of the edge distance search.
	MarchStep float64

	// MaxEdgeDistance bounds the edge search; beyond it the fill is
	// assumed to continue.
	MaxEdgeDistance float64

	// InsetDepth is how far a boundary sample is pushed inward before
	// the stroke is measured.
	InsetDepth float64

	// MinStrokeWidth and MaxStrokeWidth bound plausible stroke
	// measurements; values outside are treated as noise.
	MinStrokeWidth float64
	MaxStrokeWidth float64

	// FallbackOffsets are the fixed inward offsets probed when stroke
	// centering fails.
	FallbackOffsets []float64

	// MinFineYield is the candidate count under which the fine walk is
	// discarded in favor of the coarse walk.
	MinFineYield int

	// CoarseMinSpacing and CoarseDivisor set the coarse walk's sample
	// spacing to max(CoarseMinSpacing, TotalLength/CoarseDivisor).
	CoarseMinSpacing float64
	CoarseDivisor    float64

	// CoarseInset is the fixed inward offset of coarse walk samples.
	CoarseInset float64

	// SmallPool and SmallPoolRelax relax the effective spacing to
	// SmallPoolRelax × spacing when fewer than SmallPool candidates are
	// available, so sparse shapes do not end up under-filled.
	SmallPool      int
	SmallPoolRelax float64

	// ColumnWidthFactor is the fraction of the measured stroke width
	// usable for spreading multiple columns.
	ColumnWidthFactor float64

	// NarrowStroke is the stroke width under which the capsule
	// half-length adapts to max(NarrowHalfMin, width/4) so thin strokes
	// are not falsely rejected.
	NarrowStroke  float64
	NarrowHalfMin float64
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		Spacing:           15,
		SampleStep:        2,
		NormalDelta:       0.1,
		MarchStep:         10,
		MaxEdgeDistance:   1000,
		InsetDepth:        2,
		MinStrokeWidth:    6,
		MaxStrokeWidth:    200,
		FallbackOffsets:   []float64{3, 6, 10, 15, 20},
		MinFineYield:      10,
		CoarseMinSpacing:  15,
		CoarseDivisor:     50,
		CoarseInset:       5,
		SmallPool:         20,
		SmallPoolRelax:    0.7,
		ColumnWidthFactor: 0.65,
		NarrowStroke:      16,
		NarrowHalfMin:     3,
	}
}

// Place computes LED module positions for the shape under the given
// configuration.
//
// The result is empty when the shape has zero arc length or admits no valid
// footprint anywhere; that is a signal for the caller, not an error. Output
// is deterministic: identical shape and config yield identical positions.
func Place(shape Shape, config Config) []Position {
	pl := newPlacer(shape, config)
	return pl.run()
}

// placer holds one placement invocation's resolved configuration. It is
// created and discarded within a single Place call; nothing is cached across
// calls.
type placer struct {
	shape  Shape
	config Config
	params Params

	// orientation is the resolved orientation; it reverts to FollowOutline
	// when a forced orientation fits nowhere.
	orientation Orientation
	halfLength  float64
}

func newPlacer(shape Shape, config Config) *placer {
	params := DefaultParams()
	if config.Params != nil {
		params = *config.Params
	}
	if config.Spacing <= 0 {
		config.Spacing = params.Spacing
	}
	config.Columns = max(1, min(config.Columns, 5))
	half := config.HalfLength
	if half <= 0 {
		half = DefaultHalfLength
	}
	return &placer{
		shape:       shape,
		config:      config,
		params:      params,
		orientation: config.Orientation,
		halfLength:  half,
	}
}

func (pl *placer) run() []Position {
	if pl.shape.TotalLength() <= 0 {
		return nil
	}
	cands := pl.generate()
	if len(cands) == 0 {
		return nil
	}
	cands = pl.orient(cands)
	if len(cands) == 0 {
		return nil
	}

	spacing := pl.config.Spacing
	if len(cands) < pl.params.SmallPool {
		spacing *= pl.params.SmallPoolRelax
	}

	var selected []candidate
	if pl.config.TargetCount > 0 {
		rowTarget := (pl.config.TargetCount + pl.config.Columns - 1) / pl.config.Columns
		selected = pl.selectForCount(cands, rowTarget, spacing)
	} else {
		selected = selectWellSpaced(cands, spacing)
	}
	return pl.expandColumns(selected)
}

// contains is the placer's fail-closed containment probe.
func (pl *placer) contains(pt Point) bool {
	return contains(pl.shape, pt)
}

// capsuleHalf returns the capsule half-length for a module on a stroke of
// the given measured width under the resolved orientation.
func (pl *placer) capsuleHalf(width float64) float64 {
	if pl.orientation != Horizontal && width > 0 && width < pl.params.NarrowStroke {
		return max(pl.params.NarrowHalfMin, width/4)
	}
	return pl.halfLength
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
