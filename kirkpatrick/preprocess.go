// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package kirkpatrick

import (
	"fmt"

	"github.com/2dChan/kirklocate/cdt"
	"github.com/2dChan/kirklocate/geom"
	"github.com/2dChan/kirklocate/graph"
)

// removeIndependentSet peels a low-degree independent set of vertices
// out of regions' shared-edge adjacency graph, re-triangulates the
// star-shaped hole each removed vertex leaves behind, and returns the
// new, coarser frontier: the retriangulated holes plus whatever regions
// were untouched this round.
func (b *builder) removeIndependentSet(regions []*geom.Polygon) ([]*geom.Polygon, error) {
	pointsToRegions := make(map[geom.Point]map[int]struct{})
	for idx, region := range regions {
		for _, p := range region.Points {
			if pointsToRegions[p] == nil {
				pointsToRegions[p] = make(map[int]struct{})
			}
			pointsToRegions[p][idx] = struct{}{}
		}
	}

	g := graph.NewUndirected[geom.Point]()
	for _, region := range regions {
		n := region.N()
		for idx := 0; idx < n; idx++ {
			u := region.Points[idx%n]
			v := region.Points[(idx+1)%n]
			if !g.Contains(u) {
				g.AddNode(u)
			}
			if !g.Contains(v) {
				g.AddNode(v)
			}
			g.Connect(u, v)
		}
	}

	avoid := make(map[geom.Point]struct{}, b.boundingTriangle.N())
	for _, p := range b.boundingTriangle.Points {
		avoid[p] = struct{}{}
	}
	removal := g.IndependentSet(b.independentSetDegree, avoid)

	unaffected := make(map[int]struct{}, len(regions))
	for i := range regions {
		unaffected[i] = struct{}{}
	}

	newRegions := make([]*geom.Polygon, 0, len(regions))
	for _, p := range removal {
		affected := indexSetToSlice(pointsToRegions[p])
		for _, i := range affected {
			delete(unaffected, i)
		}

		hole, err := calculateBoundingPolygon(p, affected, regions)
		if err != nil {
			return nil, fmt.Errorf("removeIndependentSet: %w", err)
		}

		triangles, err := cdt.Triangulate(hole, nil)
		if err != nil {
			return nil, fmt.Errorf("removeIndependentSet: %w", err)
		}
		for _, tri := range triangles {
			b.dag.AddNode(tri)
			for _, j := range affected {
				b.dag.Connect(tri, regions[j])
			}
			newRegions = append(newRegions, tri)
		}
	}

	for i := range unaffected {
		newRegions = append(newRegions, regions[i])
	}
	return newRegions, nil
}

// calculateBoundingPolygon reconstructs the star-shaped hole left behind
// by removing vertex p from every triangle in affectedRegions: each such
// triangle contributes its edge opposite p, and those edges are chained
// end to end into a single polygon boundary around where p used to be.
func calculateBoundingPolygon(p geom.Point, affectedRegions []int, regions []*geom.Polygon) (*geom.Polygon, error) {
	type opposite struct {
		a, b geom.Point
	}

	edges := make([]opposite, 0, len(affectedRegions))
	locations := make(map[geom.Point]map[int]struct{})

	for j, i := range affectedRegions {
		tri := regions[i]
		var e opposite
		k := 0
		for _, v := range tri.Points {
			if v == p {
				continue
			}
			if k == 0 {
				e.a = v
			} else {
				e.b = v
			}
			k++
		}
		edges = append(edges, e)
		for _, v := range [2]geom.Point{e.a, e.b} {
			if locations[v] == nil {
				locations[v] = make(map[int]struct{})
			}
			locations[v][j] = struct{}{}
		}
	}

	lastIdx := len(edges) - 1
	last := edges[lastIdx]
	edges = edges[:lastIdx]

	boundary := make([]geom.Point, 0, len(affectedRegions))
	for _, v := range [2]geom.Point{last.a, last.b} {
		delete(locations[v], lastIdx)
		boundary = append(boundary, v)
	}

	for k := 0; k < len(affectedRegions)-2; k++ {
		v := boundary[len(boundary)-1]
		idx, ok := popAny(locations[v])
		if !ok {
			return nil, fmt.Errorf("calculateBoundingPolygon: star polygon around %v is not a closed fan", p)
		}
		e := edges[idx]
		u := e.a
		if u == v {
			u = e.b
		}
		delete(locations[u], idx)
		boundary = append(boundary, u)
	}

	return geom.NewPolygon(boundary)
}

func indexSetToSlice(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	return out
}

func popAny(s map[int]struct{}) (int, bool) {
	for k := range s {
		delete(s, k)
		return k, true
	}
	return 0, false
}
