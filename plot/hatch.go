package plot

import "math"

// HatchBand pairs a line spacing with the ink threshold selecting the
// pixels the band covers. Spacing is in pixels at this level; Run converts
// from millimetres before calling the hatcher.
type HatchBand struct {
	Spacing   float64
	Threshold float64
}

// DiagonalHatch stacks one diagonal line family per band. Bands run
// independently in order; overdraw between them is intentional, darker
// regions simply collect more families.
func DiagonalHatch(tf *ToneField, bands []HatchBand) PathSet {
	var out PathSet
	for _, b := range bands {
		out = diagonalFamily(tf, b.Spacing, b.Threshold, out)
	}
	return out
}

// diagonalFamily walks the lines x+y = o for offsets o stepped across
// [0, W+H) and merges contiguous ink runs along each, reusing the scanline
// run merge on the diagonal axis.
func diagonalFamily(tf *ToneField, spacing, threshold float64, out PathSet) PathSet {
	if spacing < 1 {
		spacing = 1
	}
	max := float64(tf.W + tf.H)
	for o := 0.0; o < max; o += spacing {
		m := runMerger{out: out}
		yo := int(o)
		for x := 0; x < tf.W; x++ {
			y := yo - x
			if y < 0 || y >= tf.H {
				m.Sample(Point{}, false)
				continue
			}
			m.Sample(Point{float64(x), float64(y)}, tf.Ink(x, y, threshold))
		}
		m.Flush()
		out = m.out
	}
	return out
}

// BlockHatch partitions the field into blockSize squares and emits, per
// block, round(mean*maxLines) parallel lines evenly offset within the
// block. A darker block never receives fewer lines than a lighter one.
func BlockHatch(tf *ToneField, blockSize, maxLines int, diagonal bool) PathSet {
	var out PathSet
	bs := float64(blockSize)
	for y := 0; y < tf.H; y += blockSize {
		for x := 0; x < tf.W; x += blockSize {
			mean := blockMean(tf, x, y, blockSize)
			n := int(math.Round(mean * float64(maxLines)))
			for i := 0; i < n; i++ {
				off := (float64(i) + 0.5) * bs / float64(maxLines)
				start := Point{float64(x), float64(y) + off}
				end := Point{float64(x) + bs, start.Y}
				if diagonal {
					end.Y += bs
				}
				out = appendSegment(out, Segment{clampPoint(start, tf), clampPoint(end, tf)})
			}
		}
	}
	return out
}

func blockMean(tf *ToneField, x0, y0, bs int) float64 {
	sum, n := 0.0, 0
	for y := y0; y < y0+bs && y < tf.H; y++ {
		for x := x0; x < x0+bs && x < tf.W; x++ {
			sum += tf.At(x, y)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// clampPoint keeps block hatch lines on the page when a block overhangs
// the field edge.
func clampPoint(p Point, tf *ToneField) Point {
	p.X = math.Min(math.Max(p.X, 0), float64(tf.W))
	p.Y = math.Min(math.Max(p.Y, 0), float64(tf.H))
	return p
}
