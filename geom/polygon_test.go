// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPolygon_Degenerate(t *testing.T) {
	_, err := NewPolygon([]Point{{0, 0}, {1, 0}})
	if !errors.Is(err, ErrDegeneratePolygon) {
		t.Errorf("NewPolygon with 2 points error = %v, want ErrDegeneratePolygon", err)
	}
}

func TestPolygon_Area(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float64
	}{
		{"unit square", []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 1},
		{"unit triangle", []Point{{0, 0}, {1, 0}, {0, 1}}, 0.5},
		{"clockwise square", []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolygon(tt.points)
			if err != nil {
				t.Fatalf("NewPolygon: %v", err)
			}
			if got := p.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygon_IsConvex(t *testing.T) {
	square, _ := NewPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	if !square.IsConvex() {
		t.Errorf("square.IsConvex() = false, want true")
	}

	dart, _ := NewPolygon([]Point{{0, 0}, {2, 0}, {1, 1}, {2, 2}, {0, 2}})
	if dart.IsConvex() {
		t.Errorf("dart.IsConvex() = true, want false")
	}
}

func TestPolygon_RayContains(t *testing.T) {
	square, _ := NewPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{0.5, 0.5}, true},
		{"outside", Point{2, 2}, false},
		{"far below", Point{0.5, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.RayContains(tt.p); got != tt.want {
				t.Errorf("RayContains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPolygon_RayContains_ConcaveDent(t *testing.T) {
	// A dart/arrow shape with a concave dent pointing in from the right edge.
	dart, _ := NewPolygon([]Point{{0, 0}, {2, 0}, {1, 1}, {2, 2}, {0, 2}})
	if dart.RayContains(Point{0.2, 1}) != true {
		t.Errorf("expected point near the solid left side to be inside")
	}
	if dart.RayContains(Point{1.8, 1}) != false {
		t.Errorf("expected point in the dent to be outside")
	}
}

func TestPolygon_TriangleInteriorPoint(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{4, 0}, Point{0, 4})
	rng := newTestRand(t)
	for i := 0; i < 50; i++ {
		p := tri.TriangleInteriorPoint(rng)
		if !tri.RayContains(p) {
			t.Fatalf("sample %v not contained in triangle", p)
		}
	}
}

func TestPolygon_TriangleInteriorPoint_PanicsOnNonTriangle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-triangle polygon")
		}
	}()
	square, _ := NewPolygon([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	square.TriangleInteriorPoint(newTestRand(t))
}

func TestPolygon_CCWOrder(t *testing.T) {
	ccw := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	cw := NewTriangle(Point{0, 0}, Point{0, 1}, Point{1, 0})
	if diff := cmp.Diff(true, ccw.CCWOrder()); diff != "" {
		t.Errorf("ccw.CCWOrder() mismatch (-want +got):\n%v", diff)
	}
	if diff := cmp.Diff(false, cw.CCWOrder()); diff != "" {
		t.Errorf("cw.CCWOrder() mismatch (-want +got):\n%v", diff)
	}
}

func TestPolygon_EnsureCCW(t *testing.T) {
	ccw := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
	cw := NewTriangle(Point{0, 0}, Point{0, 1}, Point{1, 0})

	if got := ccw.EnsureCCW(); got != ccw {
		t.Errorf("EnsureCCW() on an already-CCW polygon returned a different pointer")
	}
	if got := cw.EnsureCCW(); !got.CCWOrder() {
		t.Errorf("EnsureCCW() on a CW polygon: CCWOrder() = false, want true")
	}
	if got := cw.Reverse().Area(); got != cw.Area() {
		t.Errorf("Reverse() changed area: got %v, want %v", got, cw.Area())
	}
}
