// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"
	"testing"

	"github.com/2dChan/kirklocate/geom"
)

func TestTriangulate_Square(t *testing.T) {
	points := []geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	triangles, err := Triangulate(points)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(triangles) != 2 {
		t.Fatalf("Triangulate(square) returned %d triangles, want 2", len(triangles))
	}

	var total float64
	for _, tri := range triangles {
		if !tri.IsTriangle() {
			t.Fatalf("result %v is not a triangle", tri)
		}
		total += tri.Area()
	}
	if math.Abs(total-1.0) > 1e-6 {
		t.Errorf("total triangulated area = %v, want 1.0", total)
	}
}

func TestTriangulate_TooFewPoints(t *testing.T) {
	_, err := Triangulate([]geom.Point{{0, 0}, {1, 0}})
	if err == nil {
		t.Fatalf("Triangulate with 2 points: want error, got nil")
	}
}

func TestTriangulate_WithEps_RejectsNonPositive(t *testing.T) {
	_, err := Triangulate([]geom.Point{{0, 0}, {1, 0}, {0, 1}}, WithEps(0))
	if err == nil {
		t.Errorf("Triangulate with eps=0: want error, got nil")
	}
}
