package plot

import "math"

// Point is a 2-D coordinate, in pixel or millimetre space depending on
// which side of the mapper it sits.
type Point struct {
	X, Y float64
}

// Segment is a directed straight line from Start to End.
type Segment struct {
	Start, End Point
}

// PathSet is an ordered list of segments. The order is the plot order and
// survives mapping and compilation untouched.
type PathSet []Segment

const segEps = 1e-9

func (s Segment) length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// appendSegment adds s unless it is degenerate.
func appendSegment(ps PathSet, s Segment) PathSet {
	if s.length() < segEps {
		return ps
	}
	return append(ps, s)
}

// runMerger collapses a maximal contiguous run of ink samples into one
// segment from the first to the last sample. The scanline filler and the
// diagonal hatcher both scan through it, each along its own axis.
type runMerger struct {
	open  bool
	first Point
	last  Point
	out   PathSet
}

// Sample feeds the next point along the scan axis. A non-ink sample closes
// any open run.
func (m *runMerger) Sample(p Point, ink bool) {
	if !ink {
		m.Flush()
		return
	}
	if !m.open {
		m.open = true
		m.first = p
	}
	m.last = p
}

// Flush closes the open run, if any. A run of a single sample is dropped
// since it would yield a degenerate segment.
func (m *runMerger) Flush() {
	if m.open {
		m.out = appendSegment(m.out, Segment{m.first, m.last})
		m.open = false
	}
}
