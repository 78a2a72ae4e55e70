// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyops

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/kirklocate/delaunay"
	"github.com/2dChan/kirklocate/geom"
)

// maxGeneratorAttempts bounds RandomConvexPolygon's search for a sample
// whose hull has enough vertices.
const maxGeneratorAttempts = 1000

// RandomConvexPolygon draws sample uniform random points from the unit
// square and returns their convex hull, retrying until the hull has at
// least minVertices vertices. It is test support for exercising the
// rest of this package and the locator built on top of it against
// varied convex regions, not a general-purpose geometry primitive.
func RandomConvexPolygon(rng *rand.Rand, sample, minVertices int) (*geom.Polygon, error) {
	for attempt := 0; attempt < maxGeneratorAttempts; attempt++ {
		points := make([]geom.Point, sample)
		for i := range points {
			points[i] = geom.Point{X: rng.Float64(), Y: rng.Float64()}
		}
		hull, err := delaunay.ConvexHull2D(points)
		if err != nil {
			continue
		}
		if hull.N() >= minVertices {
			return hull, nil
		}
	}
	return nil, fmt.Errorf("RandomConvexPolygon: no %d-sample hull with >= %d vertices found in %d attempts", sample, minVertices, maxGeneratorAttempts)
}
