package visualization

import (
	"math"

	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// RadialLayout places the center at the origin and every other node on a
// ring whose radius grows with undirected hop distance from the center.
type RadialLayout struct {
	config *LayoutConfig
}

// NewRadialLayout creates a new radial layout
func NewRadialLayout(config *LayoutConfig) *RadialLayout {
	if config.RadiusBase == 0 {
		config.RadiusBase = 200
	}
	return &RadialLayout{config: config}
}

// Distances computes each node's hop distance from the center, treating
// edges as bidirectional for distance purposes only. Visited-set BFS, so
// cycles terminate.
func (rl *RadialLayout) Distances(g *lineage.Graph) map[string]int {
	distances := map[string]int{g.CenterNodeID: 0}
	idx := indexEdges(g)

	queue := []string{g.CenterNodeID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		hop := distances[current] + 1

		for _, edge := range idx.outgoing[current] {
			if _, seen := distances[edge.Target]; !seen {
				distances[edge.Target] = hop
				queue = append(queue, edge.Target)
			}
		}
		for _, edge := range idx.incoming[current] {
			if _, seen := distances[edge.Source]; !seen {
				distances[edge.Source] = hop
				queue = append(queue, edge.Source)
			}
		}
	}

	return distances
}

// ComputeLayout puts nodes at distance d on a ring of radius d*RadiusBase,
// evenly spaced by angle. Disconnected nodes land on one ring beyond the
// farthest reached one.
func (rl *RadialLayout) ComputeLayout(g *lineage.Graph) []lineage.Node {
	if len(g.Nodes) == 0 {
		return nil
	}

	distances := rl.Distances(g)

	maxDistance := 0
	for _, d := range distances {
		if d > maxDistance {
			maxDistance = d
		}
	}
	for i := range g.Nodes {
		if _, ok := distances[g.Nodes[i].ID]; !ok {
			distances[g.Nodes[i].ID] = maxDistance + 1
		}
	}

	// Ring membership in node-list order keeps angles deterministic
	rings := make(map[int][]string)
	for i := range g.Nodes {
		d := distances[g.Nodes[i].ID]
		rings[d] = append(rings[d], g.Nodes[i].ID)
	}

	positions := make(map[string]lineage.Position, len(g.Nodes))
	for distance, ids := range rings {
		if distance == 0 {
			for _, id := range ids {
				positions[id] = lineage.Position{X: 0, Y: 0}
			}
			continue
		}

		radius := float64(distance) * rl.config.RadiusBase
		angleStep := 2 * math.Pi / float64(len(ids))
		for i, id := range ids {
			angle := float64(i) * angleStep
			positions[id] = lineage.Position{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
			}
		}
	}

	return positioned(g, positions)
}
