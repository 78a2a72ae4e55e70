// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyops

import (
	"fmt"

	"github.com/2dChan/kirklocate/cdt"
	"github.com/2dChan/kirklocate/geom"
)

// Contains reports whether p lies inside poly. Convex polygons are
// tested directly by ray casting; concave polygons are triangulated
// first and p is tested against each triangle.
func Contains(poly *geom.Polygon, p geom.Point) (bool, error) {
	if poly.IsConvex() {
		return poly.RayContains(p), nil
	}

	triangles, err := cdt.Triangulate(poly, nil)
	if err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}
	for _, tri := range triangles {
		if tri.RayContains(p) {
			return true, nil
		}
	}
	return false, nil
}
