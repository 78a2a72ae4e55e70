// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cdt wires the external constrained-triangulation primitive spec
// §6 calls out (constrained_triangulate(poly, hole?)) to
// github.com/osuushi/triangulate's simple-polygon triangulator.
//
// triangulate.Triangulate (not TriangulateMonotone) is the entry point:
// it decomposes an arbitrary simple polygon into y-monotone pieces by
// sweep before handing each to the monotone triangulator internally.
// TriangulateMonotone alone requires the input already be y-monotone,
// which neither the bridged boundary annulus below nor a general
// concave region can be relied on to be.
//
// triangulate.Triangulate has no native notion of a hole, so Triangulate
// bridges the hole into the outer boundary first: it picks the closest
// outer/hole vertex pair and walks out to the hole and back along a
// zero-width corridor, turning "outer boundary with one polygonal hole"
// into a single simple polygon. Slit triangles introduced by the bridge
// (zero area) are filtered back out afterward. The osuushi triangulator
// also classifies polygon edges by winding, so both the outer boundary
// and the bridged result are normalized to counter-clockwise before
// being handed off.
package cdt

import (
	"errors"
	"fmt"

	"github.com/osuushi/triangulate"

	"github.com/2dChan/kirklocate/geom"
)

// areaEpsilon is the threshold below which a triangulated triangle is
// treated as a degenerate sliver introduced by hole-bridging and dropped.
const areaEpsilon = 1e-9

// Triangulate triangulates poly, a simple polygon, optionally with hole
// punched out of its interior. It returns the triangles covering
// poly \ hole.
func Triangulate(poly *geom.Polygon, hole *geom.Polygon) ([]*geom.Polygon, error) {
	if poly == nil || poly.N() < 3 {
		return nil, errors.New("Triangulate: poly must have at least three vertices")
	}

	poly = poly.EnsureCCW()

	var inputPoints []geom.Point
	var tpoly *triangulate.Polygon

	if hole == nil {
		inputPoints = append(inputPoints, poly.Points...)
		tpoly = toTriangulatePolygon(poly.Points)
	} else {
		if hole.N() < 3 {
			return nil, errors.New("Triangulate: hole must have at least three vertices")
		}
		inputPoints = append(inputPoints, poly.Points...)
		inputPoints = append(inputPoints, hole.Points...)
		bridged := bridgeHole(poly.Points, hole.Points)
		if signedArea(bridged) < 0 {
			// The bridge corridor can make the first vertex triple
			// collinear or otherwise unrepresentative of the ring's
			// overall winding, so orientation is judged from the whole
			// ring's signed area rather than geom.CCW on three points.
			bridged = reversed(bridged)
		}
		tpoly = toTriangulatePolygon(bridged)
	}

	triangles := triangulate.Triangulate(tpoly)
	if len(triangles) == 0 {
		return nil, fmt.Errorf("Triangulate: external triangulator returned no triangles for a %d-vertex polygon", len(tpoly.Points))
	}

	out := make([]*geom.Polygon, 0, len(triangles))
	for _, tri := range triangles {
		a := snap(tri.A, inputPoints)
		b := snap(tri.B, inputPoints)
		c := snap(tri.C, inputPoints)
		gt := geom.NewTriangle(a, b, c)
		if gt.Area() < areaEpsilon {
			// A zero-area sliver along the bridge corridor, or a
			// collapsed snap; not part of the real triangulation.
			continue
		}
		out = append(out, gt)
	}

	if len(out) == 0 {
		return nil, errors.New("Triangulate: every triangle returned by the external triangulator degenerated after snapping")
	}
	return out, nil
}

func toTriangulatePolygon(points []geom.Point) *triangulate.Polygon {
	pts := make([]*triangulate.Point, len(points))
	for i, p := range points {
		pts[i] = &triangulate.Point{X: p.X, Y: p.Y}
	}
	return &triangulate.Polygon{Points: pts}
}

func snap(p *triangulate.Point, candidates []geom.Point) geom.Point {
	return NearestPoint(geom.Point{X: p.X, Y: p.Y}, candidates)
}

// bridgeHole turns an outer boundary plus one interior hole into a single
// simple polygon by connecting the closest outer/hole vertex pair with a
// zero-width corridor: ... outerBridge, holeBridge, hole (reversed to
// wind oppositely to outer), holeBridge, outerBridge, outer remainder ...
func bridgeHole(outer, hole []geom.Point) []geom.Point {
	if len(outer) >= 3 && len(hole) >= 3 && geom.CCW(outer[0], outer[1], outer[2]) == geom.CCW(hole[0], hole[1], hole[2]) {
		hole = reversed(hole)
	}

	oi, hi := closestPair(outer, hole)

	result := make([]geom.Point, 0, len(outer)+len(hole)+2)
	for i := 0; i <= oi; i++ {
		result = append(result, outer[i])
	}
	n := len(hole)
	for k := 0; k <= n; k++ {
		result = append(result, hole[(hi+k)%n])
	}
	result = append(result, outer[oi:]...)
	return result
}

// signedArea returns twice the signed area of the closed ring points,
// positive for counter-clockwise winding. Unlike geom.Polygon.CCWOrder
// (which judges winding from a single vertex triple), this sums over
// every edge, so it stays correct even when a few consecutive vertices
// are collinear or nearly so, as happens along a hole-bridging corridor.
func signedArea(points []geom.Point) float64 {
	n := len(points)
	var sum float64
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func reversed(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func closestPair(outer, hole []geom.Point) (outerIdx, holeIdx int) {
	best := -1.0
	for i, o := range outer {
		for j, h := range hole {
			d := o.SqrDist(h)
			if best < 0 || d < best {
				best = d
				outerIdx, holeIdx = i, j
			}
		}
	}
	return outerIdx, holeIdx
}
