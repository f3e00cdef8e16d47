package plot

import "math"

// Polyline is an ordered chain of points traced along a tone boundary.
// A closed contour repeats its first point at the end.
type Polyline []Point

// TraceContours extracts the polylines along which the field crosses the
// ink threshold, using marching squares over the pixel grid with linear
// interpolation of the crossing position on cell edges. Point order encodes
// a continuous pen path and is never smoothed or simplified. Polylines
// shorter than two points are dropped silently.
func TraceContours(tf *ToneField, threshold float64) []Polyline {
	return chainSegments(cellSegments(tf, threshold))
}

// Outline converts traced contours into drawable segments, one per
// consecutive point pair, preserving trace order.
func Outline(tf *ToneField, threshold float64) PathSet {
	var out PathSet
	for _, pl := range TraceContours(tf, threshold) {
		for i := 1; i < len(pl); i++ {
			out = appendSegment(out, Segment{pl[i-1], pl[i]})
		}
	}
	return out
}

// crossing interpolates where the threshold sits between two samples that
// straddle it.
func crossing(a, b, threshold float64) float64 {
	if a == b {
		return 0.5
	}
	t := (threshold - a) / (b - a)
	return math.Min(math.Max(t, 0), 1)
}

// cellSegments walks every 2x2 pixel cell and emits the boundary pieces
// crossing it. Corner bits: 1 top-left, 2 top-right, 4 bottom-right,
// 8 bottom-left. The two ambiguous saddle cases keep each ink corner on
// its own boundary piece.
func cellSegments(tf *ToneField, threshold float64) []Segment {
	var segs []Segment
	for y := 0; y < tf.H-1; y++ {
		for x := 0; x < tf.W-1; x++ {
			tl, tr := tf.At(x, y), tf.At(x+1, y)
			bl, br := tf.At(x, y+1), tf.At(x+1, y+1)
			idx := 0
			if tl >= threshold {
				idx |= 1
			}
			if tr >= threshold {
				idx |= 2
			}
			if br >= threshold {
				idx |= 4
			}
			if bl >= threshold {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}
			fx, fy := float64(x), float64(y)
			top := Point{fx + crossing(tl, tr, threshold), fy}
			right := Point{fx + 1, fy + crossing(tr, br, threshold)}
			bottom := Point{fx + crossing(bl, br, threshold), fy + 1}
			left := Point{fx, fy + crossing(tl, bl, threshold)}
			switch idx {
			case 1, 14:
				segs = append(segs, Segment{left, top})
			case 2, 13:
				segs = append(segs, Segment{top, right})
			case 3, 12:
				segs = append(segs, Segment{left, right})
			case 4, 11:
				segs = append(segs, Segment{right, bottom})
			case 6, 9:
				segs = append(segs, Segment{top, bottom})
			case 8, 7:
				segs = append(segs, Segment{bottom, left})
			case 5:
				segs = append(segs, Segment{left, top}, Segment{right, bottom})
			case 10:
				segs = append(segs, Segment{top, right}, Segment{bottom, left})
			}
		}
	}
	return segs
}

type gridKey struct {
	x, y int64
}

// quantize keys a point for endpoint matching. 1/4096 px resolution is far
// below any crossing interpolation step.
func quantize(p Point) gridKey {
	return gridKey{int64(math.Round(p.X * 4096)), int64(math.Round(p.Y * 4096))}
}

// chainSegments links cell boundary pieces into ordered polylines by
// matching shared endpoints. Cells are visited row-major, so the result
// order is deterministic for a given field.
func chainSegments(segs []Segment) []Polyline {
	used := make([]bool, len(segs))
	atPoint := make(map[gridKey][]int, 2*len(segs))
	for i, s := range segs {
		atPoint[quantize(s.Start)] = append(atPoint[quantize(s.Start)], i)
		atPoint[quantize(s.End)] = append(atPoint[quantize(s.End)], i)
	}
	take := func(p Point) (int, bool) {
		for _, i := range atPoint[quantize(p)] {
			if !used[i] {
				return i, true
			}
		}
		return 0, false
	}
	other := func(s Segment, p Point) Point {
		if quantize(s.Start) == quantize(p) {
			return s.End
		}
		return s.Start
	}

	var out []Polyline
	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		pl := Polyline{segs[i].Start, segs[i].End}
		for {
			j, ok := take(pl[len(pl)-1])
			if !ok {
				break
			}
			used[j] = true
			pl = append(pl, other(segs[j], pl[len(pl)-1]))
		}
		for {
			j, ok := take(pl[0])
			if !ok {
				break
			}
			used[j] = true
			pl = append(Polyline{other(segs[j], pl[0])}, pl...)
		}
		if len(pl) >= 2 {
			out = append(out, pl)
		}
	}
	return out
}
