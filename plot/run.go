// Package plot converts a grayscale tone field into G-code for a pen
// plotter: contour tracing and fill generation produce an ordered segment
// list in pixel space, a coordinate mapper scales it onto the page, and a
// motion compiler emits pen-actuated moves.
package plot

import (
	"fmt"
	"math"
)

// Result reports a successful conversion.
type Result struct {
	GCode    string
	PrintedW float64 // mm
	PrintedH float64 // mm
	Segments int     // drawing moves after tiny-move filtering
}

// Run executes the whole pipeline on one tone field. The configured
// strategies append to a single PathSet in order; the order then survives
// through mapping and compilation. A field with no ink above threshold is
// not an error and yields a header-only stream.
func Run(tf *ToneField, cfg Config) (*Result, error) {
	if tf == nil || tf.W <= 0 || tf.H <= 0 {
		return nil, fmt.Errorf("%w: missing or empty field", ErrInvalidToneField)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	area, err := FitPage(tf.W, tf.H, cfg.PageWidth, cfg.PageHeight)
	if err != nil {
		return nil, err
	}
	mmPerPx := area.W / float64(tf.W)

	var paths PathSet
	for _, s := range cfg.Strategies {
		switch s {
		case StrategyOutline:
			paths = append(paths, Outline(tf, cfg.Threshold)...)
		case StrategyScanline:
			paths = append(paths, ScanlineFill(tf, pixelStep(cfg.FillSpacing, mmPerPx), cfg.Threshold)...)
		case StrategyDiagonal:
			bands := cfg.Bands
			if bands == nil {
				bands = DefaultBands(cfg.FillSpacing)
			}
			paths = append(paths, DiagonalHatch(tf, pixelBands(bands, mmPerPx))...)
		case StrategyBlocks:
			paths = append(paths, BlockHatch(tf, cfg.BlockSize, cfg.MaxLines, cfg.Diagonal)...)
		default:
			return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, s)
		}
	}

	mapper, err := NewMapper(tf.W, tf.H, area)
	if err != nil {
		return nil, err
	}
	comp := &Compiler{TinyMove: cfg.TinyMove, Feed: cfg.FeedRate}
	cmds, err := comp.Compile(mapper.MapSet(paths))
	if err != nil {
		return nil, err
	}

	drawn := 0
	for _, c := range cmds {
		if c.Kind == KindLinear {
			drawn++
		}
	}
	return &Result{
		GCode:    Encode(cmds, cfg.PenDown, cfg.PenUp),
		PrintedW: area.W,
		PrintedH: area.H,
		Segments: drawn,
	}, nil
}

// pixelStep converts a millimetre spacing to a whole-pixel row step,
// never below one pixel.
func pixelStep(mm, mmPerPx float64) int {
	step := int(math.Round(mm / mmPerPx))
	if step < 1 {
		step = 1
	}
	return step
}

// pixelBands converts band spacings from millimetres to pixels. Fractional
// offset steps are fine on the diagonal, but below one pixel the family
// would be denser than the grid itself.
func pixelBands(bands []HatchBand, mmPerPx float64) []HatchBand {
	out := make([]HatchBand, len(bands))
	for i, b := range bands {
		px := b.Spacing / mmPerPx
		if px < 1 {
			px = 1
		}
		out[i] = HatchBand{Spacing: px, Threshold: b.Threshold}
	}
	return out
}
