// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements the two external point-cloud primitives the
// Kirkpatrick hierarchy consumes but does not itself define (spec §6):
// unconstrained Delaunay triangulation and planar convex hull.
//
// Triangulate reuses the lift-and-hull technique the teacher package used
// for spherical Delaunay triangulation (s2delaunay: lift sites onto the
// unit sphere, take the convex hull, the hull faces are the triangulation)
// but swaps the sphere for the classic paraboloid lift: a 2D point (x, y)
// is lifted to (x, y, x²+y²) in R³, and the lower faces of the 3D convex
// hull of the lifted points project straight down onto the Delaunay
// triangulation of the original points. Upper faces are an artifact of
// the lift and are discarded.
package delaunay

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/2dChan/kirklocate/geom"
)

const defaultEps = 1e-9

// TriangulationOptions holds configuration for Triangulate.
type TriangulationOptions struct {
	Eps float64
}

// TriangulationOption is a functional option for Triangulate.
type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the numerical tolerance passed through to the underlying
// convex hull solver. It must be positive.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Triangulate computes the unconstrained Delaunay triangulation of points
// via the paraboloid lift + 3D convex hull technique described above. It
// requires at least three points and that they not be collinear.
func Triangulate(points []geom.Point, setters ...TriangulationOption) ([]*geom.Polygon, error) {
	opts := TriangulationOptions{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(points)
	if n < 3 {
		return nil, errors.New("Triangulate: at least three points are required")
	}

	lifted := make([]r3.Vector, n)
	var centroid r3.Vector
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1.0 / float64(n))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("Triangulate: convex hull solver returned a malformed face list")
	}

	triangles := make([]*geom.Polygon, 0, len(ch.Indices)/3)
	for i := 0; i < len(ch.Indices); i += 3 {
		ia, ib, ic := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		a, b, c := lifted[ia], lifted[ib], lifted[ic]

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Dot(a.Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		if normal.Z >= 0 {
			// Upper-hull face: an artifact of the lift, not part of the
			// planar Delaunay triangulation.
			continue
		}

		triangles = append(triangles, geom.NewTriangle(points[ia], points[ib], points[ic]))
	}

	if len(triangles) == 0 {
		return nil, errors.New("Triangulate: no lower-hull faces found; points may be collinear")
	}
	return triangles, nil
}
