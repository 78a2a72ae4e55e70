// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package mintriangle computes a polygon's minimum-area enclosing
// triangle by the O(n) rotating-calipers construction of Klee and
// Laskowski (1985): for each polygon edge taken as a candidate triangle
// side, the other two sides are found by sliding a pair of tangent lines
// around the polygon so each is flush with a polygon edge at its
// midpoint, and the smallest of the n candidate triangles produced is
// the answer.
package mintriangle

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/kirklocate/delaunay"
	"github.com/2dChan/kirklocate/geom"
)

// Minimum returns the minimum-area triangle enclosing poly. If poly is
// not convex its convex hull is used instead, since the minimum enclosing
// triangle of a point set depends only on its hull.
func Minimum(poly *geom.Polygon) (*geom.Polygon, error) {
	if poly == nil {
		return nil, errors.New("Minimum: poly must not be nil")
	}

	work := poly
	if !poly.IsConvex() {
		hull, err := delaunay.ConvexHull2D(poly.Points)
		if err != nil {
			return nil, fmt.Errorf("Minimum: %w", err)
		}
		work = hull
	}

	n := work.N()
	switch {
	case n < 3:
		return nil, geom.ErrDegeneratePolygon
	case n == 3:
		return geom.NewTriangle(work.Points[0], work.Points[1], work.Points[2]).EnsureCCW(), nil
	}

	points := work.Points
	var best *geom.Polygon
	bestArea := math.Inf(1)

	a, b := 1, 2
	for c := 0; c < n; c++ {
		tri, na, nb := triangleForIndex(points, n, c, a, b)
		a, b = na, nb
		if tri == nil {
			continue
		}
		if area := tri.Area(); area < bestArea {
			bestArea = area
			best = tri
		}
	}

	if best == nil {
		return nil, errors.New("Minimum: no valid enclosing triangle was found for any edge")
	}
	return best.EnsureCCW(), nil
}

// triangleForIndex builds the candidate minimum-enclosing triangle whose
// side C is flush with polygon edge c, advancing the caliper indices a and
// b (which track the other two candidate sides) from their previous
// positions. It returns nil if no valid triangle exists for this edge.
func triangleForIndex(points []geom.Point, n, c, aIn, bIn int) (tri *geom.Polygon, a, b int) {
	a = mod(max(aIn, c+1), n)
	b = mod(max(bIn, c+2), n)

	ec := newEdgeContext(points, n, c)

	for ec.onLeftChain(b) {
		b = mod(b+1, n)
	}
	for ec.hIdx(b) > ec.hIdx(a) {
		a, b = ec.incrementLowHigh(a, b)
	}
	for ec.tangency(a, b) {
		b = mod(b+1, n)
	}

	gammaB := ec.gamma(points[mod(b, n)], ec.side(a))

	var sideA, sideB geom.Line
	if ec.low(b, gammaB) || ec.hIdx(b) < ec.hIdx(a-1) {
		sideB0 := ec.side(b)
		sideA0 := ec.side(a)
		p1, ok1 := ec.sideC.Intersection(sideB0)
		p2, ok2 := sideA0.Intersection(sideB0)
		if !ok1 || !ok2 {
			return nil, a, b
		}
		sideB = geom.NewLine(p1, p2)
		sideA = sideA0
		if ec.hPoint(sideB.Midpoint()) < ec.hIdx(a-1) {
			gammaA := ec.gamma(points[mod(a-1, n)], sideB)
			sideA = geom.NewLine(gammaA, points[mod(a-1, n)])
		}
	} else {
		gammaB2 := ec.gamma(points[mod(b, n)], ec.side(a))
		sideB = geom.NewLine(gammaB2, points[mod(b, n)])
		sideA = geom.NewLine(gammaB2, points[mod(a-1, n)])
	}

	vertexA, okA := ec.sideC.Intersection(sideB)
	vertexB, okB := ec.sideC.Intersection(sideA)
	vertexC, okC := sideA.Intersection(sideB)
	if !okA || !okB || !okC {
		return nil, a, b
	}

	if !isValidTriangle(points, n, vertexA, vertexB, vertexC, a, b, c) {
		return nil, a, b
	}
	return geom.NewTriangle(vertexA, vertexB, vertexC), a, b
}

// isValidTriangle checks that each candidate triangle side is actually
// flush with (tangent at the midpoint of) the polygon edge it was built
// to match.
func isValidTriangle(points []geom.Point, n int, vertexA, vertexB, vertexC geom.Point, a, b, c int) bool {
	midA := geom.NewLine(vertexC, vertexB).Midpoint()
	midB := geom.NewLine(vertexA, vertexC).Midpoint()
	midC := geom.NewLine(vertexA, vertexB).Midpoint()
	return validateMidpoint(points, n, midA, a) &&
		validateMidpoint(points, n, midB, b) &&
		validateMidpoint(points, n, midC, c)
}

func validateMidpoint(points []geom.Point, n int, mid geom.Point, index int) bool {
	s := sideAt(points, n, index)
	const eps = geom.Epsilon

	if s.Vertical {
		if mid.X != s.P1.X {
			return false
		}
		maxY, minY := math.Max(s.P1.Y, s.P2.Y)+eps, math.Min(s.P1.Y, s.P2.Y)-eps
		return mid.Y <= maxY && mid.Y >= minY
	}

	maxX, minX := math.Max(s.P1.X, s.P2.X)+eps, math.Min(s.P1.X, s.P2.X)-eps
	if mid.X > maxX || mid.X < minX {
		return false
	}
	atX, ok := s.AtX(mid.X)
	if !ok {
		return false
	}
	return atX.Close(mid, eps)
}

// Bounding returns a triangle strictly containing every point in points,
// built by expanding the minimum enclosing triangle outward along each
// vertex's external bisector. It is used to seed the outermost boundary a
// point-location hierarchy triangulates against, so query points outside
// the original polygon but inside the expanded triangle still resolve to
// some region.
func Bounding(points []geom.Point) (*geom.Polygon, error) {
	poly, err := geom.NewPolygon(points)
	if err != nil {
		return nil, fmt.Errorf("Bounding: %w", err)
	}
	tri, err := Minimum(poly)
	if err != nil {
		return nil, fmt.Errorf("Bounding: %w", err)
	}
	return expand(tri, 10), nil
}

// expand pushes every vertex of poly outward along its external bisector
// by factor times the negated mean of the unit vectors toward its two
// neighbors (a vector shorter than one unit), then rounds away
// from the origin so the result safely contains poly even after floating
// point error.
func expand(poly *geom.Polygon, factor float64) *geom.Polygon {
	n := poly.N()
	out := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		A := poly.Points[mod(i, n)]
		B := poly.Points[mod(i-1, n)]
		C := poly.Points[mod(i+1, n)]
		out[i] = bisect(A, B, C, factor)
	}
	expanded, _ := geom.NewPolygon(out)
	return expanded
}

func bisect(a, b, c geom.Point, factor float64) geom.Point {
	vb := normalize(geom.Point{X: b.X - a.X, Y: b.Y - a.Y})
	vc := normalize(geom.Point{X: c.X - a.X, Y: c.Y - a.Y})
	median := geom.Point{X: (vb.X + vc.X) / 2, Y: (vb.Y + vc.Y) / 2}
	bisector := geom.Point{X: -median.X, Y: -median.Y}

	return geom.Point{
		X: absRound(a.X + factor*bisector.X),
		Y: absRound(a.Y + factor*bisector.Y),
	}
}

func normalize(v geom.Point) geom.Point {
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 {
		return v
	}
	return geom.Point{X: v.X / mag, Y: v.Y / mag}
}

// absRound rounds away from zero, matching the conservative outward
// rounding the original bounding-triangle expansion relies on to
// guarantee strict containment.
func absRound(v float64) float64 {
	if v < 0 {
		return math.Floor(v)
	}
	return math.Ceil(v)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
