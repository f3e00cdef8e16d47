package plot

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileBalancedActuation(t *testing.T) {
	c := &Compiler{TinyMove: 0.01, Feed: 2000}
	cmds, err := c.Compile(PathSet{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 10}},
		{Point{20, 20}, Point{30, 20}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var down, linear, up int
	for i, cmd := range cmds {
		switch cmd.Kind {
		case KindPenDown:
			down++
		case KindPenUp:
			up++
		case KindLinear:
			linear++
			if i == 0 || cmds[i-1].Kind != KindPenDown {
				t.Errorf("linear move at %d not preceded by pen down", i)
			}
			if i == len(cmds)-1 || cmds[i+1].Kind != KindPenUp {
				t.Errorf("linear move at %d not followed by pen up", i)
			}
		}
	}
	if down != linear || up != linear || linear != 3 {
		t.Errorf("actuation counts down=%d linear=%d up=%d, want 3 each", down, linear, up)
	}
}

func TestCompileRapidSuppression(t *testing.T) {
	c := &Compiler{Feed: 2000}
	cmds, err := c.Compile(PathSet{
		{Point{0, 0}, Point{10, 0}},
		{Point{10, 0}, Point{10, 10}}, // continues where the pen rests
		{Point{20, 20}, Point{30, 20}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	rapids := 0
	for _, cmd := range cmds {
		if cmd.Kind == KindRapid {
			rapids++
		}
	}
	if rapids != 2 {
		t.Errorf("got %d rapid moves, want 2 (middle segment continues in place)", rapids)
	}
}

func TestCompileTinyMoveDropped(t *testing.T) {
	c := &Compiler{TinyMove: 0.01, Feed: 2000}
	cmds, err := c.Compile(PathSet{{Point{0, 0}, Point{0, 0.001}}})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cmds) != 0 {
		t.Errorf("got %d commands for a sub-threshold move, want none", len(cmds))
	}
}

func TestCompileNeverEmitsTinyLinear(t *testing.T) {
	c := &Compiler{TinyMove: 0.5, Feed: 2000}
	cmds, err := c.Compile(PathSet{
		{Point{0, 0}, Point{0.2, 0}},
		{Point{0, 0}, Point{3, 4}},
		{Point{3, 4}, Point{3.1, 4.1}},
	})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	pos := Point{}
	for _, cmd := range cmds {
		if cmd.Kind == KindLinear {
			if d := math.Hypot(cmd.X-pos.X, cmd.Y-pos.Y); d < 0.5 {
				t.Errorf("linear move of length %g below the tiny-move threshold", d)
			}
		}
		if cmd.Kind == KindRapid || cmd.Kind == KindLinear {
			pos = Point{cmd.X, cmd.Y}
		}
	}
}

func TestCompileNonFinite(t *testing.T) {
	c := &Compiler{Feed: 2000}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := c.Compile(PathSet{{Point{bad, 0}, Point{10, 10}}})
		if !errors.Is(err, ErrNonFinite) {
			t.Errorf("coordinate %v: got %v, want ErrNonFinite", bad, err)
		}
	}
}

func TestEncodeHeaderOnly(t *testing.T) {
	got := Encode(nil, "M3;S0", "M5;S180")
	want := "G21 ; set units to mm\nG90 ; absolute positioning\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeCommands(t *testing.T) {
	cmds := []Command{
		{Kind: KindRapid, X: 10, Y: 20},
		{Kind: KindPenDown},
		{Kind: KindLinear, X: 30.5, Y: 40.25, Feed: 2000},
		{Kind: KindPenUp},
	}
	got := strings.Split(strings.TrimRight(Encode(cmds, "M3;S0", "M5;S180"), "\n"), "\n")
	want := []string{
		"G21 ; set units to mm",
		"G90 ; absolute positioning",
		"G0 X10.00 Y20.00",
		"M3;S0",
		"G1 X30.50 Y40.25 F2000",
		"M5;S180",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stream mismatch (-want +got):\n%s", diff)
	}
}
