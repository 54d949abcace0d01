// Package adjacency turns a list of room placeholders into a weighted
// undirected graph expressing desired and forbidden adjacencies. The graph
// only scores candidate placements; it never assigns coordinates.
package adjacency

import "github.com/Achu067/PLANEXA/pkg/catalog"

// Graph is an undirected weighted graph over placeholder ids. Edge weight
// is the catalog affinity between the placeholders' room types.
type Graph struct {
	types   []catalog.RoomType
	weights [][]float64
}

// Build constructs the graph for one floor's placeholders, indexed by
// position in types.
func Build(types []catalog.RoomType, cat *catalog.Catalog) *Graph {
	n := len(types)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			if i == j {
				continue
			}
			w[i][j] = cat.Affinity(types[i], types[j])
		}
	}
	return &Graph{types: types, weights: w}
}

// Len returns the number of placeholders.
func (g *Graph) Len() int {
	return len(g.types)
}

// Type returns the room type of placeholder i.
func (g *Graph) Type(i int) catalog.RoomType {
	return g.types[i]
}

// Weight returns the affinity weight between placeholders i and j.
// The weight of a placeholder with itself is zero.
func (g *Graph) Weight(i, j int) float64 {
	return g.weights[i][j]
}
