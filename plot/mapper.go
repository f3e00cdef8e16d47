package plot

import (
	"fmt"
	"math"
)

// PrintedArea is the physical size of the plot in millimetres.
type PrintedArea struct {
	W, H float64
}

// FitPage scales an imgW x imgH pixel image onto a pageW x pageH page,
// preserving aspect ratio, and returns the resulting printed size.
func FitPage(imgW, imgH int, pageW, pageH float64) (PrintedArea, error) {
	if imgW <= 0 || imgH <= 0 {
		return PrintedArea{}, fmt.Errorf("%w: %dx%d px", ErrInvalidToneField, imgW, imgH)
	}
	if !positive(pageW) || !positive(pageH) {
		return PrintedArea{}, fmt.Errorf("%w: page %gx%g mm", ErrInvalidConfig, pageW, pageH)
	}
	scale := math.Min(pageW/float64(imgW), pageH/float64(imgH))
	return PrintedArea{W: float64(imgW) * scale, H: float64(imgH) * scale}, nil
}

// Mapper converts pixel coordinates to millimetres. Pixel row 0 is the
// image top while the physical origin is the page's bottom-left corner, so
// Y flips; the flip applies identically to every segment no matter which
// generator produced it. X and Y scale independently.
type Mapper struct {
	imgH   float64
	sx, sy float64
}

// NewMapper derives the two scale factors from the pixel dimensions and
// the printed area. Both must come out positive and finite.
func NewMapper(imgW, imgH int, area PrintedArea) (*Mapper, error) {
	if imgW <= 0 || imgH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d px", ErrInvalidToneField, imgW, imgH)
	}
	sx := area.W / float64(imgW)
	sy := area.H / float64(imgH)
	if !positive(sx) || !positive(sy) {
		return nil, fmt.Errorf("%w: scale %g x %g mm/px", ErrInvalidConfig, sx, sy)
	}
	return &Mapper{imgH: float64(imgH), sx: sx, sy: sy}, nil
}

// MapPoint transforms one pixel coordinate to millimetres.
func (m *Mapper) MapPoint(p Point) Point {
	return Point{p.X * m.sx, (m.imgH - p.Y) * m.sy}
}

// Unmap inverts MapPoint.
func (m *Mapper) Unmap(p Point) Point {
	return Point{p.X / m.sx, m.imgH - p.Y/m.sy}
}

// MapSet transforms every segment, preserving PathSet order.
func (m *Mapper) MapSet(ps PathSet) PathSet {
	out := make(PathSet, len(ps))
	for i, s := range ps {
		out[i] = Segment{m.MapPoint(s.Start), m.MapPoint(s.End)}
	}
	return out
}
