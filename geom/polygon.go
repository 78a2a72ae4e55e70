// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"math/rand"
)

// Polygon is an ordered, cyclic sequence of vertices, assumed simple
// (non-self-intersecting). A Polygon with exactly three vertices is a
// triangle; it is not a distinct Go type because its area already has a
// closed form (the shoelace formula below, computed directly rather than
// via the general-polygon decomposition the original implementation used)
// and the hierarchy treats it identically to any other region otherwise.
//
// Locator and the DAG it builds track regions by the identity of the
// *Polygon pointer, not by value, so Polygon is always passed around as a
// pointer once constructed.
type Polygon struct {
	Points []Point
}

// NewPolygon builds a polygon from points, which must already be in the
// intended cyclic order. It returns ErrDegeneratePolygon if points has
// fewer than three elements.
func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, ErrDegeneratePolygon
	}
	return &Polygon{Points: points}, nil
}

// NewTriangle is a convenience constructor for the common 3-vertex case.
func NewTriangle(a, b, c Point) *Polygon {
	return &Polygon{Points: []Point{a, b, c}}
}

// N returns the number of vertices.
func (p *Polygon) N() int {
	return len(p.Points)
}

// IsTriangle reports whether p has exactly three vertices.
func (p *Polygon) IsTriangle() bool {
	return len(p.Points) == 3
}

// CCWOrder reports whether the polygon's vertices are wound
// counter-clockwise, as judged by its first three vertices.
func (p *Polygon) CCWOrder() bool {
	return CCW(p.Points[0], p.Points[1], p.Points[2])
}

// IsConvex reports whether every consecutive CCW triple of vertices agrees
// in winding sign.
func (p *Polygon) IsConvex() bool {
	n := p.N()
	var target bool
	for i := 0; i < n; i++ {
		a := p.Points[i%n]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		ccw := CCW(a, b, c)
		if i == 0 {
			target = ccw
		} else if ccw != target {
			return false
		}
	}
	return true
}

// Reverse returns a new Polygon with the same vertices in reverse cyclic
// order, flipping its winding direction.
func (p *Polygon) Reverse() *Polygon {
	n := p.N()
	out := make([]Point, n)
	for i, pt := range p.Points {
		out[n-1-i] = pt
	}
	return &Polygon{Points: out}
}

// EnsureCCW returns p unchanged if it already winds counter-clockwise, or
// its Reverse otherwise. Several downstream consumers (the osuushi
// constrained triangulator chief among them) classify edges by winding
// and silently misbehave on a clockwise ring, so any polygon built from
// raw coordinate arithmetic rather than an already-CCW source should be
// passed through this before being handed off.
func (p *Polygon) EnsureCCW() *Polygon {
	if p.CCWOrder() {
		return p
	}
	return p.Reverse()
}

// Area returns the polygon's area via the shoelace formula. This is the
// closed form for any simple polygon, triangle or not, so unlike the
// original implementation (which always triangulated and summed triangle
// areas, even for a bare triangle) Area here never needs a triangulator.
func (p *Polygon) Area() float64 {
	n := p.N()
	var sum float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// RayContains reports whether q lies inside p using the even-odd
// ray-casting rule, walking edges in order and counting crossings of the
// horizontal ray through q. It is valid for any simple polygon, convex or
// concave; the package-level dispatch between "use RayContains directly"
// and "triangulate and OR over triangles" lives in the polyops package
// because the latter needs a constrained triangulator, which geom does not
// depend on. A point that lies exactly on an edge has unspecified
// membership, matching the ambiguity of the ray-casting test itself.
func (p *Polygon) RayContains(q Point) bool {
	inside := false
	n := p.N()
	p1 := p.Points[0]
	for i := 0; i <= n; i++ {
		p2 := p.Points[i%n]
		if q.Y > math.Min(p1.Y, p2.Y) && q.Y <= math.Max(p1.Y, p2.Y) && q.X <= math.Max(p1.X, p2.X) {
			var xints float64
			if p1.Y != p2.Y {
				xints = (q.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			}
			if p1.X == p2.X || q.X <= xints {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// TriangleInteriorPoint samples a uniformly random point inside the
// triangle via barycentric coordinates. It panics if p is not a triangle;
// callers that don't already know p.IsTriangle() should use the weighted
// triangulation sampling in polyops.SmartInteriorPoint instead.
func (p *Polygon) TriangleInteriorPoint(rng *rand.Rand) Point {
	if !p.IsTriangle() {
		panic("geom: TriangleInteriorPoint called on a non-triangle polygon")
	}
	a, b, c := p.Points[0], p.Points[1], p.Points[2]
	r1 := rng.Float64()
	r2 := rng.Float64()
	sqrtR1 := math.Sqrt(r1)
	return a.Scale(1 - sqrtR1).
		Add(b.Scale(sqrtR1 * (1 - r2))).
		Add(c.Scale(r2 * sqrtR1))
}
