// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package kirkpatrick builds Kirkpatrick's hierarchical point-location
// structure over a planar subdivision: a set of non-overlapping polygons
// ("regions") tiling some portion of the plane is wrapped in a bounding
// triangle, triangulated, and then repeatedly coarsened by peeling off an
// independent set of low-degree vertices and re-triangulating the holes
// this leaves behind, round by round, until a single triangle remains.
// Each round's triangles point, in a DAG, at the finer triangles or
// regions they replace, so locating a point is a descent from the root
// (the final triangle) picking whichever child contains the point, down
// to one of the original regions (or one of the fabricated boundary
// triangles, if the point falls outside every region but inside the
// bounding triangle).
package kirkpatrick

import (
	"errors"
	"fmt"

	"github.com/2dChan/kirklocate/cdt"
	"github.com/2dChan/kirklocate/delaunay"
	"github.com/2dChan/kirklocate/geom"
	"github.com/2dChan/kirklocate/graph"
	"github.com/2dChan/kirklocate/mintriangle"
)

// Locator answers point-location queries against the regions it was
// built from.
type Locator struct {
	dag       *graph.DirectedGraph[*geom.Polygon]
	regionSet map[*geom.Polygon]struct{}
	regions   []*geom.Polygon
	boundary  []*geom.Polygon
}

// Build preprocesses regions, a set of non-overlapping polygons tiling
// some part of the plane, into a Locator.
//
// If outline is nil, the convex hull of every region's vertices is used,
// which assumes regions themselves tile a convex area; pass outline
// explicitly to seed a concave outer boundary instead.
func Build(regions []*geom.Polygon, outline *geom.Polygon, opts ...Option) (*Locator, error) {
	if len(regions) == 0 {
		return nil, errors.New("Build: at least one region is required")
	}

	o := options{independentSetDegree: defaultIndependentSetDegree}
	for _, set := range opts {
		if err := set(&o); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	b := &builder{
		dag:                  graph.NewDirected[*geom.Polygon](),
		independentSetDegree: o.independentSetDegree,
	}

	boundingTriangle, boundary, err := b.processBoundary(regions, outline)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	b.boundingTriangle = boundingTriangle

	all := make([]*geom.Polygon, 0, len(regions)+len(boundary))
	all = append(all, regions...)
	all = append(all, boundary...)

	frontier, err := b.triangulateRegions(all)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for len(frontier) > 1 {
		frontier, err = b.removeIndependentSet(frontier)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	regionSet := make(map[*geom.Polygon]struct{}, len(regions))
	for _, r := range regions {
		regionSet[r] = struct{}{}
	}

	return &Locator{
		dag:       b.dag,
		regionSet: regionSet,
		regions:   append([]*geom.Polygon{}, regions...),
		boundary:  boundary,
	}, nil
}

// Locate returns the original region p falls in, or nil if p falls in one
// of the fabricated boundary triangles or outside the bounding triangle
// entirely.
func (l *Locator) Locate(p geom.Point) *geom.Polygon {
	region, valid := l.AnnotatedLocate(p)
	if !valid {
		return nil
	}
	return region
}

// AnnotatedLocate locates p and additionally reports whether the region
// found was one of the original input regions, as opposed to one of the
// fabricated triangles filling the gap between the regions and the
// bounding triangle.
func (l *Locator) AnnotatedLocate(p geom.Point) (*geom.Polygon, bool) {
	curr, ok := l.dag.Root()
	if !ok || !curr.RayContains(p) {
		return nil, false
	}

	children := l.dag.Successors(curr)
	for len(children) > 0 {
		next := curr
		for _, region := range children {
			if region.RayContains(p) {
				next = region
				break
			}
		}
		if next == curr {
			// None of curr's children contain p: p lies exactly on a
			// shared seam that both neighbors' boundary tests reject, or
			// the DAG bottomed out. Either way curr is the best answer.
			break
		}
		curr = next
		children = l.dag.Successors(curr)
	}

	_, isOriginal := l.regionSet[curr]
	return curr, isOriginal
}

// Boundary returns the triangles fabricated to fill the region between
// the input regions and the bounding triangle Build constructed around
// them.
func (l *Locator) Boundary() []*geom.Polygon {
	return l.boundary
}

// DAGIsAcyclic reports whether the hierarchy's internal DAG is indeed
// acyclic, as it must always be for a correctly built Locator. It exists
// for tests and diagnostics, not as part of normal query use.
func (l *Locator) DAGIsAcyclic() bool {
	return l.dag.Acyclic()
}

// builder holds the mutable state threaded through Build's preprocessing
// pipeline: the DAG under construction and the bounding triangle its
// vertices must never be peeled from.
type builder struct {
	dag                  *graph.DirectedGraph[*geom.Polygon]
	independentSetDegree int
	boundingTriangle     *geom.Polygon
}

// processBoundary computes a bounding triangle for outline (hulling
// regions' own vertices first if outline is nil) and triangulates the
// annular gap between outline and the bounding triangle.
func (b *builder) processBoundary(regions []*geom.Polygon, outline *geom.Polygon) (*geom.Polygon, []*geom.Polygon, error) {
	if outline == nil {
		var points []geom.Point
		for _, r := range regions {
			points = append(points, r.Points...)
		}
		hull, err := delaunay.ConvexHull2D(points)
		if err != nil {
			return nil, nil, fmt.Errorf("processBoundary: %w", err)
		}
		outline = hull
	}

	boundingTriangle, err := mintriangle.Bounding(outline.Points)
	if err != nil {
		return nil, nil, fmt.Errorf("processBoundary: %w", err)
	}

	gap, err := cdt.Triangulate(boundingTriangle, outline)
	if err != nil {
		return nil, nil, fmt.Errorf("processBoundary: %w", err)
	}
	return boundingTriangle, gap, nil
}

// triangulateRegions triangulates every region with more than three
// vertices, registers each region and its pieces as DAG nodes with an
// edge from each piece to the region it came from, and returns the
// pieces (or the region itself, if it was already a triangle) as the
// initial peeling frontier.
func (b *builder) triangulateRegions(regions []*geom.Polygon) ([]*geom.Polygon, error) {
	frontier := make([]*geom.Polygon, 0, len(regions))

	for _, region := range regions {
		b.dag.AddNode(region)

		if region.N() <= 3 {
			frontier = append(frontier, region)
			continue
		}

		triangles, err := cdt.Triangulate(region, nil)
		if err != nil {
			return nil, fmt.Errorf("triangulateRegions: %w", err)
		}
		for _, tri := range triangles {
			b.dag.AddNode(tri)
			b.dag.Connect(tri, region)
			frontier = append(frontier, tri)
		}
	}
	return frontier, nil
}
