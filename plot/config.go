package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidToneField marks a zero-area or malformed intensity grid.
	ErrInvalidToneField = errors.New("invalid tone field")
	// ErrInvalidConfig marks a non-positive spacing, page dimension, feed
	// rate or similar bad configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNonFinite marks a segment with NaN or infinite coordinates.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// Strategy selects one path generation pass.
type Strategy int

const (
	// StrategyOutline traces threshold contours.
	StrategyOutline Strategy = iota
	// StrategyScanline fills ink regions with horizontal runs.
	StrategyScanline
	// StrategyDiagonal hatches with stacked diagonal line families.
	StrategyDiagonal
	// StrategyBlocks hatches blocks proportionally to their mean tone.
	StrategyBlocks
)

// ParseStrategy resolves a strategy name from the command line.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "outline":
		return StrategyOutline, nil
	case "scanline", "fill":
		return StrategyScanline, nil
	case "hatch", "diagonal":
		return StrategyDiagonal, nil
	case "blocks", "block":
		return StrategyBlocks, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
}

// Config is the single immutable record threaded through the pipeline.
// Lengths are millimetres unless noted.
type Config struct {
	PageWidth  float64 // maximum printed width
	PageHeight float64 // maximum printed height
	FeedRate   float64 // drawing feed, mm/min

	FillSpacing float64 // scanline step and base hatch spacing
	Threshold   float64 // ink threshold in [0,1]

	PenDown string // actuation line, emitted verbatim
	PenUp   string

	TinyMove float64 // minimum drawn move; shorter segments are dropped

	BlockSize int  // block hatch cell side, px
	MaxLines  int  // block hatch maximum lines per block
	Diagonal  bool // block hatch orientation

	// Bands configures the diagonal family hatch. Nil derives a default
	// four-band stack from FillSpacing.
	Bands []HatchBand

	// Strategies run in order, each appending to the same PathSet.
	Strategies []Strategy
}

// DefaultConfig mirrors the dRawbot defaults: A5-ish portrait page,
// servo pen commands, outline plus black and white fill.
func DefaultConfig() Config {
	return Config{
		PageWidth:   135,
		PageHeight:  210,
		FeedRate:    2000,
		FillSpacing: 0.35,
		Threshold:   0.5,
		PenDown:     "M3;S0",
		PenUp:       "M5;S180",
		TinyMove:    0.01,
		BlockSize:   4,
		MaxLines:    4,
		Strategies:  []Strategy{StrategyOutline, StrategyScanline},
	}
}

// DefaultBands builds a four-level stack: sparse lines over anything
// faintly inked, down to the tightest spacing over the darkest quarter.
// Overdraw between levels is intentional; dark regions collect every band.
func DefaultBands(spacing float64) []HatchBand {
	return []HatchBand{
		{Spacing: 4 * spacing, Threshold: 0.125},
		{Spacing: 3 * spacing, Threshold: 0.375},
		{Spacing: 2 * spacing, Threshold: 0.625},
		{Spacing: spacing, Threshold: 0.875},
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (c Config) validate() error {
	if !positive(c.PageWidth) || !positive(c.PageHeight) {
		return fmt.Errorf("%w: page %gx%g mm", ErrInvalidConfig, c.PageWidth, c.PageHeight)
	}
	if !positive(c.FeedRate) {
		return fmt.Errorf("%w: feed rate %g", ErrInvalidConfig, c.FeedRate)
	}
	if !positive(c.FillSpacing) {
		return fmt.Errorf("%w: fill spacing %g", ErrInvalidConfig, c.FillSpacing)
	}
	if c.Threshold < 0 || c.Threshold > 1 || math.IsNaN(c.Threshold) {
		return fmt.Errorf("%w: threshold %g outside [0,1]", ErrInvalidConfig, c.Threshold)
	}
	if c.TinyMove < 0 || math.IsNaN(c.TinyMove) {
		return fmt.Errorf("%w: tiny move threshold %g", ErrInvalidConfig, c.TinyMove)
	}
	for _, b := range c.Bands {
		if !positive(b.Spacing) {
			return fmt.Errorf("%w: band spacing %g", ErrInvalidConfig, b.Spacing)
		}
		if b.Threshold < 0 || b.Threshold > 1 || math.IsNaN(b.Threshold) {
			return fmt.Errorf("%w: band threshold %g outside [0,1]", ErrInvalidConfig, b.Threshold)
		}
	}
	for _, s := range c.Strategies {
		if s == StrategyBlocks && (c.BlockSize <= 0 || c.MaxLines <= 0) {
			return fmt.Errorf("%w: block hatch needs positive block size and line count", ErrInvalidConfig)
		}
	}
	return nil
}
