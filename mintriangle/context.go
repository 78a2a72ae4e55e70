// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package mintriangle

import "github.com/2dChan/kirklocate/geom"

// mod returns i modulo n, folded into [0, n).
func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// sideAt returns the polygon edge ending at vertex i: (points[i-1], points[i]).
func sideAt(points []geom.Point, n, i int) geom.Line {
	return geom.NewLine(points[mod(i-1, n)], points[mod(i, n)])
}

// edgeContext holds the state shared by the per-edge candidate-triangle
// construction in triangleForIndex: the polygon being enclosed and the
// fixed edge C the candidate triangle's side-C is flush against. The
// original implementation threaded this through nested closures over
// shared mutable a/b variables; here it is an explicit value passed to
// each step, with a and b themselves passed and returned explicitly by
// the caller rather than captured.
type edgeContext struct {
	points []geom.Point
	n      int
	c      int
	sideC  geom.Line
}

func newEdgeContext(points []geom.Point, n, c int) *edgeContext {
	return &edgeContext{points: points, n: n, c: c, sideC: sideAt(points, n, c)}
}

func (ec *edgeContext) side(i int) geom.Line {
	return sideAt(ec.points, ec.n, i)
}

// hIdx returns the distance from polygon vertex i to side C.
func (ec *edgeContext) hIdx(i int) float64 {
	return ec.sideC.Distance(ec.points[mod(i, ec.n)])
}

// hPoint returns the distance from point p to side C.
func (ec *edgeContext) hPoint(p geom.Point) float64 {
	return ec.sideC.Distance(p)
}

// gamma returns the point on line "on" whose distance to side C is twice
// that of point. The direction along "on" is chosen so gamma lands on the
// same CCW side of side C as point does; this is the "double distance"
// construction that characterises a triangle side flush at a midpoint.
func (ec *edgeContext) gamma(point geom.Point, on geom.Line) geom.Point {
	inter, ok := on.Intersection(ec.sideC)
	if !ok {
		// on is parallel to side C (as opposite edges of a rectangle
		// are); fall back to the probe point rather than propagating a
		// zero-value Point.
		return point
	}
	dist := 2 * ec.hPoint(point)

	if on.Vertical {
		probe := geom.Point{X: inter.X, Y: inter.Y + 1}
		ddist := ec.hPoint(probe)
		guess := geom.Point{X: inter.X, Y: inter.Y + dist/ddist}
		if geom.CCW(ec.sideC.P1, ec.sideC.P2, guess) != geom.CCW(ec.sideC.P1, ec.sideC.P2, point) {
			guess = geom.Point{X: inter.X, Y: inter.Y - dist/ddist}
		}
		return guess
	}

	probe, _ := on.AtX(inter.X + 1)
	ddist := ec.hPoint(probe)
	guess, _ := on.AtX(inter.X + dist/ddist)
	if geom.CCW(ec.sideC.P1, ec.sideC.P2, guess) != geom.CCW(ec.sideC.P1, ec.sideC.P2, point) {
		guess, _ = on.AtX(inter.X - dist/ddist)
	}
	return guess
}

// high reports whether gammaB/b is in the "advance b" configuration: b and
// its neighbors are not tangent, gamma_B lies on b's side of the chord
// through its neighbors, and gamma_B is farther from side C than b is.
func (ec *edgeContext) high(b int, gammaB geom.Point) bool {
	pb := ec.points[mod(b, ec.n)]
	prev := ec.points[mod(b-1, ec.n)]
	next := ec.points[mod(b+1, ec.n)]

	if geom.CCW(gammaB, pb, prev) == geom.CCW(gammaB, pb, next) {
		return false
	}
	if geom.CCW(prev, next, gammaB) == geom.CCW(prev, next, pb) {
		return ec.hPoint(gammaB) > ec.hIdx(b)
	}
	return false
}

// low is high's dual: true when gamma_B falls on the opposite side of the
// chord through b's neighbors and is still farther from side C than b.
func (ec *edgeContext) low(b int, gammaB geom.Point) bool {
	pb := ec.points[mod(b, ec.n)]
	prev := ec.points[mod(b-1, ec.n)]
	next := ec.points[mod(b+1, ec.n)]

	if geom.CCW(gammaB, pb, prev) == geom.CCW(gammaB, pb, next) {
		return false
	}
	if geom.CCW(prev, next, gammaB) == geom.CCW(prev, next, pb) {
		return false
	}
	return ec.hPoint(gammaB) > ec.hIdx(b)
}

// onLeftChain reports whether b is still on the increasing side of the
// height profile relative to side C.
func (ec *edgeContext) onLeftChain(b int) bool {
	return ec.hIdx(b+1) >= ec.hIdx(b)
}

// incrementLowHigh performs one monotone caliper step, advancing whichever
// of a or b the high() classification says should move.
func (ec *edgeContext) incrementLowHigh(a, b int) (int, int) {
	gammaA := ec.gamma(ec.points[mod(a, ec.n)], ec.side(a))
	if ec.high(b, gammaA) {
		return a, mod(b+1, ec.n)
	}
	return mod(a+1, ec.n), b
}

// tangency reports whether b should keep advancing during the tangency
// correction pass.
func (ec *edgeContext) tangency(a, b int) bool {
	gammaB := ec.gamma(ec.points[mod(b, ec.n)], ec.side(a))
	return ec.hIdx(b) >= ec.hIdx(a-1) && ec.high(b, gammaB)
}
