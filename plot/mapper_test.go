package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFitPage(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   int
		pageW, pageH float64
		want         PrintedArea
	}{
		{"portrait fits height", 100, 200, 135, 210, PrintedArea{105, 210}},
		{"square fits width", 10, 10, 135, 210, PrintedArea{135, 135}},
		{"exact page", 135, 210, 135, 210, PrintedArea{135, 210}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitPage(tt.imgW, tt.imgH, tt.pageW, tt.pageH)
			if err != nil {
				t.Fatalf("FitPage: %v", err)
			}
			if math.Abs(got.W-tt.want.W) > 1e-9 || math.Abs(got.H-tt.want.H) > 1e-9 {
				t.Errorf("got %gx%g mm, want %gx%g mm", got.W, got.H, tt.want.W, tt.want.H)
			}
		})
	}
}

func TestFitPageInvalid(t *testing.T) {
	if _, err := FitPage(100, 100, 0, 210); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero page width: got %v, want ErrInvalidConfig", err)
	}
	if _, err := FitPage(0, 100, 135, 210); !errors.Is(err, ErrInvalidToneField) {
		t.Errorf("zero image width: got %v, want ErrInvalidToneField", err)
	}
}

func TestMapPointFlipsY(t *testing.T) {
	m, err := NewMapper(100, 200, PrintedArea{100, 200})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{0, 200}}, // image top-left -> page top-left
		{Point{0, 200}, Point{0, 0}}, // image bottom -> physical origin
		{Point{10, 50}, Point{10, 150}},
	}
	for _, tt := range tests {
		if got := m.MapPoint(tt.in); got != tt.want {
			t.Errorf("MapPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestMapRoundTrip(t *testing.T) {
	area, err := FitPage(640, 480, 135, 210)
	if err != nil {
		t.Fatalf("FitPage: %v", err)
	}
	m, err := NewMapper(640, 480, area)
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	points := []Point{{0, 0}, {639, 479}, {320, 240}, {17.5, 401.25}}
	for _, p := range points {
		back := m.Unmap(m.MapPoint(p))
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip %+v -> %+v", p, back)
		}
	}
}

func TestMapSetPreservesOrder(t *testing.T) {
	m, err := NewMapper(10, 10, PrintedArea{10, 10})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}

	in := PathSet{
		{Point{0, 0}, Point{9, 0}},
		{Point{9, 2}, Point{0, 2}},
		{Point{3, 3}, Point{6, 6}},
	}
	want := PathSet{
		{Point{0, 10}, Point{9, 10}},
		{Point{9, 8}, Point{0, 8}},
		{Point{3, 7}, Point{6, 4}},
	}
	if diff := cmp.Diff(want, m.MapSet(in)); diff != "" {
		t.Errorf("mapped set mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMapperInvalidArea(t *testing.T) {
	if _, err := NewMapper(10, 10, PrintedArea{0, 10}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero area width: got %v, want ErrInvalidConfig", err)
	}
	if _, err := NewMapper(10, 10, PrintedArea{math.Inf(1), 10}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("infinite area width: got %v, want ErrInvalidConfig", err)
	}
}
