package presenter

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name              string
		vw, vh, cw, ch, m float64
		want              float64
	}{
		{"same size, height bound", 1920, 1080, 1920, 1080, 20, 1040.0 / 1080},
		{"width constrained", 1000, 2000, 1920, 1080, 20, 960.0 / 1920},
		{"height constrained", 4000, 600, 1920, 1080, 20, 560.0 / 1080},
		{"no margin", 3840, 2160, 1920, 1080, 0, 2},
		{"viewport smaller than margin", 30, 30, 1920, 1080, 20, MinScale},
		{"degenerate canvas", 1920, 1080, 0, 1080, 20, MinScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScale(tt.vw, tt.vh, tt.cw, tt.ch, tt.m)
			if !near(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeScaleIsSymmetric(t *testing.T) {
	a := ComputeScale(1920, 1080, 1920, 1080, 40)
	b := ComputeScale(1080, 1920, 1080, 1920, 40)
	if !near(a, b) {
		t.Fatalf("swapping axes should not change the scale: %v vs %v", a, b)
	}
	want := math.Min(1840.0/1920, 1000.0/1080)
	if !near(a, want) {
		t.Fatalf("expected the smaller axis ratio %v, got %v", want, a)
	}
}

func TestScalerResize(t *testing.T) {
	s := NewScaler(1920, 1080, 20, 1920, 1080)
	if !near(s.Scale(), 1040.0/1080) {
		t.Fatalf("unexpected initial scale %v", s.Scale())
	}
	s.Resize(1000, 2000)
	if !near(s.Scale(), 960.0/1920) {
		t.Fatalf("unexpected scale after resize %v", s.Scale())
	}
}
