// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"

	"github.com/mikenye/geom2d"

	"github.com/2dChan/kirklocate/geom"
)

// ConvexHull2D computes the convex hull of points and returns it as a CCW
// Polygon. It is used when Locator.Build is given no explicit outline and
// must hull the union of all region vertices (spec §4.5 step 1), and as
// the convex-hulling fallback mintriangle.Minimum applies to concave
// input.
func ConvexHull2D(points []geom.Point) (*geom.Polygon, error) {
	if len(points) < 3 {
		return nil, errors.New("ConvexHull2D: at least three points are required")
	}

	in := make([]geom2d.Point[float64], len(points))
	for i, p := range points {
		in[i] = geom2d.NewPoint(p.X, p.Y)
	}

	hull := geom2d.ConvexHull(in...)
	if len(hull) < 3 {
		return nil, errors.New("ConvexHull2D: convex hull solver returned fewer than three points")
	}

	out := make([]geom.Point, len(hull))
	for i, p := range hull {
		out[i] = geom.Point{X: p.X(), Y: p.Y()}
	}

	poly, err := geom.NewPolygon(out)
	if err != nil {
		return nil, err
	}
	if !poly.CCWOrder() {
		reversed := make([]geom.Point, len(out))
		for i, p := range out {
			reversed[len(out)-1-i] = p
		}
		poly, err = geom.NewPolygon(reversed)
		if err != nil {
			return nil, err
		}
	}
	return poly, nil
}
