// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the planar geometric primitives the Kirkpatrick
// hierarchy is built on: points, lines/segments, and polygons, along with
// the predicates (CCW, segment intersection, containment) that the rest of
// the module composes.
package geom

import "math"

// Epsilon is the default tolerance used for "close enough" comparisons
// across the package, e.g. validating that a minimum-triangle midpoint
// touches its supporting polygon edge. The external triangulators this
// module wires in occasionally return vertex coordinates that differ from
// the inputs in the last few bits, so an exact comparison is too strict.
const Epsilon = 0.01

// Point is an immutable 2D Cartesian coordinate. Equality is exact by
// value; use Close for tolerance-based proximity checks.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by c.
func (p Point) Scale(c float64) Point {
	return Point{X: c * p.X, Y: c * p.Y}
}

// SqrDist returns the squared Euclidean distance between p and q.
func (p Point) SqrDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.SqrDist(q))
}

// Close reports whether p and q are within eps of each other.
func (p Point) Close(q Point, eps float64) bool {
	return p.Dist(q) < eps
}

// CCW reports whether the triple (a, b, c) is wound counter-clockwise.
// Collinear triples report false; downstream code only ever compares two
// CCW results for equality, which is stable under that tie.
func CCW(a, b, c Point) bool {
	return (b.X-a.X)*(c.Y-a.Y) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether segments a1-b1 and a2-b2 properly
// intersect. Shared endpoints and collinear overlaps report false; this is
// the strict test polygon splitting relies on to reject chords that only
// touch an existing edge.
func SegmentsIntersect(a1, b1, a2, b2 Point) bool {
	if a1 == a2 || a1 == b2 || b1 == a2 || b1 == b2 {
		return false
	}
	return CCW(a1, b1, a2) != CCW(a1, b1, b2) && CCW(a2, b2, a1) != CCW(a2, b2, b1)
}
