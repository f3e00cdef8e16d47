package plot

// ScanlineFill emits one horizontal segment per maximal contiguous run of
// ink pixels on every step-th row. A run still open at the row edge is
// closed with the last valid pixel. Sampled rows alternate scan direction
// (boustrophedon), so each row's segments start near where the previous
// row ended, roughly halving pen-up travel over constant-direction scans.
func ScanlineFill(tf *ToneField, step int, threshold float64) PathSet {
	if step < 1 {
		step = 1
	}
	var out PathSet
	row := 0
	for y := 0; y < tf.H; y += step {
		m := runMerger{out: out}
		fy := float64(y)
		if row%2 == 0 {
			for x := 0; x < tf.W; x++ {
				m.Sample(Point{float64(x), fy}, tf.Ink(x, y, threshold))
			}
		} else {
			for x := tf.W - 1; x >= 0; x-- {
				m.Sample(Point{float64(x), fy}, tf.Ink(x, y, threshold))
			}
		}
		m.Flush()
		out = m.out
		row++
	}
	return out
}
