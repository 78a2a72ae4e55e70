// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyops

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/kirklocate/cdt"
	"github.com/2dChan/kirklocate/geom"
)

// maxSampleAttempts bounds the rejection-sampling loops below. The
// reference implementation these are ported from samples unboundedly;
// a bound turns "this polygon's bounding box is a bad fit" into an
// error instead of a hang.
const maxSampleAttempts = 10000

func boundingBox(poly *geom.Polygon) (minX, maxX, minY, maxY float64) {
	minX, maxX = poly.Points[0].X, poly.Points[0].X
	minY, maxY = poly.Points[0].Y, poly.Points[0].Y
	for _, p := range poly.Points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

// InteriorPoint returns a uniformly random point inside poly via
// rejection sampling over its bounding box.
func InteriorPoint(rng *rand.Rand, poly *geom.Polygon) (geom.Point, error) {
	minX, maxX, minY, maxY := boundingBox(poly)
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		p := geom.Point{X: minX + rng.Float64()*(maxX-minX), Y: minY + rng.Float64()*(maxY-minY)}
		ok, err := Contains(poly, p)
		if err != nil {
			return geom.Point{}, fmt.Errorf("InteriorPoint: %w", err)
		}
		if ok {
			return p, nil
		}
	}
	return geom.Point{}, fmt.Errorf("InteriorPoint: no interior point found in %d attempts", maxSampleAttempts)
}

// ExteriorPoint returns a random point near poly (within its bounding
// box expanded by one unit on each side) that falls outside it.
func ExteriorPoint(rng *rand.Rand, poly *geom.Polygon) (geom.Point, error) {
	minX, maxX, minY, maxY := boundingBox(poly)
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		offX := 1 - 2*rng.Float64()
		offY := 1 - 2*rng.Float64()
		p := geom.Point{
			X: minX + rng.Float64()*(maxX-minX) + offX,
			Y: minY + rng.Float64()*(maxY-minY) + offY,
		}
		ok, err := Contains(poly, p)
		if err != nil {
			return geom.Point{}, fmt.Errorf("ExteriorPoint: %w", err)
		}
		if !ok {
			return p, nil
		}
	}
	return geom.Point{}, fmt.Errorf("ExteriorPoint: no exterior point found in %d attempts", maxSampleAttempts)
}

// SmartInteriorPoint returns a random interior point of poly sampled by
// triangulating it and picking a triangle weighted by area, then a
// uniform point within that triangle. Unlike InteriorPoint's rejection
// sampling this needs no retries: one triangulation pass always yields a
// point, distributed uniformly over poly's area.
func SmartInteriorPoint(rng *rand.Rand, poly *geom.Polygon) (geom.Point, error) {
	if poly.IsTriangle() {
		return poly.TriangleInteriorPoint(rng), nil
	}

	triangles, err := cdt.Triangulate(poly, nil)
	if err != nil {
		return geom.Point{}, fmt.Errorf("SmartInteriorPoint: %w", err)
	}

	areas := make([]float64, len(triangles))
	var total float64
	for i, tri := range triangles {
		areas[i] = tri.Area()
		total += areas[i]
	}
	if total <= 0 {
		return geom.Point{}, fmt.Errorf("SmartInteriorPoint: %w", errEmptyPolygon)
	}

	r := rng.Float64()
	var cumulative float64
	for i, tri := range triangles {
		cumulative += areas[i] / total
		if cumulative >= r {
			return tri.TriangleInteriorPoint(rng), nil
		}
	}
	// Floating point rounding can leave cumulative just short of r;
	// the last triangle is the correct fallback.
	return triangles[len(triangles)-1].TriangleInteriorPoint(rng), nil
}
