// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import "github.com/2dChan/kirklocate/geom"

// NearestPoint returns the element of candidates closest to q. It panics
// if candidates is empty.
//
// This is spec's nearest_point primitive, used to snap a triangulator's
// output vertices back onto the exact input points they were derived
// from. It is a linear scan rather than a spatial index: no KD-tree (or
// similar) library turned up anywhere in the retrieved pack, and the
// vertex counts snapping runs over (one triangulation's worth of points at
// a time) are small enough that Theta(n) per query is not a bottleneck.
func NearestPoint(q geom.Point, candidates []geom.Point) geom.Point {
	if len(candidates) == 0 {
		panic("cdt: NearestPoint called with no candidates")
	}
	best := candidates[0]
	bestDist := q.SqrDist(best)
	for _, c := range candidates[1:] {
		if d := q.SqrDist(c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
