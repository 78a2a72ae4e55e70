// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyops

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/kirklocate/geom"
)

// maxSplitAttempts bounds Split's search for a valid cut. The reference
// implementation retries unboundedly; a cap turns pathological inputs
// (e.g. a polygon with no simple chord split) into an error.
const maxSplitAttempts = 1000

// Split divides poly into two simple, non-overlapping polygons.
//
// If interior is false, two polygon vertices u and v (at least two apart
// along the boundary) are connected by a chord, and poly is cut along it.
// If interior is true, a random interior point is connected to two
// distinct vertices instead, producing a three-way junction at that
// point.
//
// Both forms retry until the cut doesn't cross poly's own boundary; for
// a concave poly the two pieces' combined area is also checked against
// poly's own area, since an invalid interior-point placement can make a
// "split" overlap itself.
func Split(rng *rand.Rand, poly *geom.Polygon, interior bool) (*geom.Polygon, *geom.Polygon, error) {
	n := poly.N()
	if n < 4 {
		return nil, nil, fmt.Errorf("Split: polygon must have at least four vertices, got %d", n)
	}
	convex := poly.IsConvex()

	draw := func() (int, int) {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if interior {
			for u == v {
				v = rng.Intn(n)
			}
		} else {
			for absInt(v-u) < 2 || absInt(u-v) > n-2 {
				v = rng.Intn(n)
			}
		}
		if u > v {
			u, v = v, u
		}
		return u, v
	}

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		u, v := draw()

		var mid geom.Point
		var hasMid bool
		if interior {
			p, err := SmartInteriorPoint(rng, poly)
			if err != nil {
				continue
			}
			mid, hasMid = p, true
		}

		if !validSplit(poly, u, v, mid, hasMid) {
			continue
		}

		poly1, poly2, err := cutAt(poly, u, v, mid, hasMid)
		if err != nil {
			continue
		}
		if !convex && poly1.Area()+poly2.Area() > poly.Area()+geom.Epsilon {
			continue
		}
		return poly1, poly2, nil
	}
	return nil, nil, fmt.Errorf("Split: no valid split found in %d attempts", maxSplitAttempts)
}

func cutAt(poly *geom.Polygon, u, v int, mid geom.Point, hasMid bool) (*geom.Polygon, *geom.Polygon, error) {
	p1 := append([]geom.Point{}, poly.Points[u:v+1]...)
	p2 := append(append([]geom.Point{}, poly.Points[v:]...), poly.Points[:u+1]...)
	if hasMid {
		p1 = append(p1, mid)
		p2 = append(p2, mid)
	}
	poly1, err := geom.NewPolygon(p1)
	if err != nil {
		return nil, nil, err
	}
	poly2, err := geom.NewPolygon(p2)
	if err != nil {
		return nil, nil, err
	}
	return poly1, poly2, nil
}

// validSplit reports whether connecting vertex u (and v) to mid (or, in
// the chord case, to v directly) leaves every other edge of poly
// un-crossed.
func validSplit(poly *geom.Polygon, u, v int, mid geom.Point, hasMid bool) bool {
	n := poly.N()
	pu := poly.Points[u]
	pv := poly.Points[v]

	for i := 0; i < n; i++ {
		p1 := poly.Points[i]
		p2 := poly.Points[(i+1)%n]

		if hasMid {
			if p1 != pu && p2 != pu && geom.SegmentsIntersect(pu, mid, p1, p2) {
				return false
			}
			if p1 != pv && p2 != pv && geom.SegmentsIntersect(pv, mid, p1, p2) {
				return false
			}
			continue
		}

		if p1 == pu || p2 == pu || p1 == pv || p2 == pv {
			continue
		}
		if geom.SegmentsIntersect(pv, pu, p1, p2) {
			return false
		}
	}
	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
