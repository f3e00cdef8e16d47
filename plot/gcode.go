package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CommandKind enumerates plotter motion commands.
type CommandKind int

const (
	// KindRapid is a pen-up repositioning move.
	KindRapid CommandKind = iota
	// KindPenDown lowers the pen.
	KindPenDown
	// KindLinear is a drawing move at the configured feed.
	KindLinear
	// KindPenUp raises the pen.
	KindPenUp
)

// Command is one step of the motion program. X, Y and Feed are meaningful
// for the move kinds only.
type Command struct {
	Kind CommandKind
	X, Y float64
	Feed float64
}

// posEps is the positional tolerance below which the pen is considered to
// already rest at a segment's start, suppressing the rapid move.
const posEps = 1e-6

// Compiler turns an ordered millimetre-space PathSet into motion commands.
// It owns the pen position and state; nothing upstream reads them back.
type Compiler struct {
	TinyMove float64 // drop segments shorter than this
	Feed     float64
}

// Compile emits, per segment and in PathSet order: a rapid to the start
// when the pen is elsewhere, pen down, one linear move, pen up. Segments
// shorter than TinyMove are dropped without touching the pen state.
func (c *Compiler) Compile(ps PathSet) ([]Command, error) {
	var cmds []Command
	var pos Point
	away := true // no known position before the first rapid
	for _, s := range ps {
		if !finiteSegment(s) {
			return nil, fmt.Errorf("%w: segment (%g,%g)-(%g,%g)", ErrNonFinite,
				s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		}
		if s.length() < c.TinyMove {
			continue
		}
		if away || math.Hypot(s.Start.X-pos.X, s.Start.Y-pos.Y) > posEps {
			cmds = append(cmds, Command{Kind: KindRapid, X: s.Start.X, Y: s.Start.Y})
		}
		cmds = append(cmds,
			Command{Kind: KindPenDown},
			Command{Kind: KindLinear, X: s.End.X, Y: s.End.Y, Feed: c.Feed},
			Command{Kind: KindPenUp})
		pos = s.End
		away = false
	}
	return cmds, nil
}

func finiteSegment(s Segment) bool {
	for _, v := range [4]float64{s.Start.X, s.Start.Y, s.End.X, s.End.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Encode renders the command stream as G-code text, one command per line.
// The header declares millimetre units and absolute positioning; the pen
// actuation strings are emitted verbatim.
func Encode(cmds []Command, penDown, penUp string) string {
	var sb strings.Builder
	sb.WriteString("G21 ; set units to mm\n")
	sb.WriteString("G90 ; absolute positioning\n")
	for _, c := range cmds {
		switch c.Kind {
		case KindRapid:
			fmt.Fprintf(&sb, "G0 X%.2f Y%.2f\n", c.X, c.Y)
		case KindPenDown:
			sb.WriteString(penDown)
			sb.WriteByte('\n')
		case KindLinear:
			fmt.Fprintf(&sb, "G1 X%.2f Y%.2f F%s\n", c.X, c.Y,
				strconv.FormatFloat(c.Feed, 'f', -1, 64))
		case KindPenUp:
			sb.WriteString(penUp)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
