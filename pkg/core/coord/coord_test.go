package coord

import (
	"math"
	"testing"
)

const tol = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) < tol }

func TestCartesianConvert(t *testing.T) {
	c := NewCartesian(Point{X: 0, Y: 180}, Point{X: 180, Y: 0})

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"origin", Point{0, 0}, Point{0, 180}},
		{"top right", Point{1, 1}, Point{180, 0}},
		{"center", Point{0.5, 0.5}, Point{90, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Convert(tt.in)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCartesianTransposed(t *testing.T) {
	c := NewCartesian(Point{X: 0, Y: 100}, Point{X: 200, Y: 0}).Transpose()
	if !c.IsTransposed() {
		t.Fatal("IsTransposed() = false, want true")
	}
	got := c.Convert(Point{X: 1, Y: 0})
	if !near(got.X, 0) || !near(got.Y, 0) {
		t.Errorf("Convert({1 0}) = %v, want {0 0}", got)
	}
}

func TestXDimensionLength(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want float64
	}{
		{"cartesian", NewCartesian(Point{0, 180}, Point{180, 0}), 180},
		{"cartesian transposed", NewCartesian(Point{0, 100}, Point{200, 0}).Transpose(), 100},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XDimensionLength(tt.c); !near(got, tt.want) {
				t.Errorf("XDimensionLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestXDimensionLengthPolar(t *testing.T) {
	p := NewPolar(Point{0, 200}, Point{200, 0})
	got := XDimensionLength(p)
	want := 2 * math.Pi * 100
	// 64-gon perimeter is within 0.1% of the circumference.
	if math.Abs(got-want)/want > 1e-3 {
		t.Errorf("XDimensionLength(polar) = %v, want ~%v", got, want)
	}
}

func TestPolarConvert(t *testing.T) {
	p := NewPolar(Point{0, 200}, Point{200, 0})

	if !p.IsPolar() || p.IsTransposed() {
		t.Fatal("unexpected capability flags")
	}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"top", Point{0, 1}, Point{100, 0}},
		{"quarter", Point{0.25, 1}, Point{200, 100}},
		{"center", Point{0.3, 0}, Point{100, 100}},
		{"half radius bottom", Point{0.5, 0.5}, Point{100, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Convert(tt.in)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Convert(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPolarInnerRadius(t *testing.T) {
	p := NewPolar(Point{0, 200}, Point{200, 0})
	p.InnerRadius = 0.5
	got := p.Convert(Point{X: 0, Y: 0})
	if !near(got.X, 100) || !near(got.Y, 50) {
		t.Errorf("Convert({0 0}) = %v, want {100 50}", got)
	}
}
