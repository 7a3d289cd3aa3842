package visualization

import "github.com/catalogops/lineage-engine/pkg/lineage"

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	HorizontalSpacing float64           // distance between hierarchy levels
	VerticalSpacing   float64           // distance between nodes within a level
	RadiusBase        float64           // ring spacing for the radial layout
	Direction         lineage.Direction // sides the hierarchical walk expands
}

// Layout interface for different layout algorithms. Implementations are
// pure: they return node copies with Position set and leave the input
// graph untouched.
type Layout interface {
	ComputeLayout(g *lineage.Graph) []lineage.Node
}

// neighbourIndex holds ordered per-node edge lists. Edge order follows
// the graph's edge list, which keeps every walk over it deterministic.
type neighbourIndex struct {
	outgoing map[string][]*lineage.Edge
	incoming map[string][]*lineage.Edge
}

func indexEdges(g *lineage.Graph) *neighbourIndex {
	idx := &neighbourIndex{
		outgoing: make(map[string][]*lineage.Edge),
		incoming: make(map[string][]*lineage.Edge),
	}
	for i := range g.Edges {
		edge := &g.Edges[i]
		idx.outgoing[edge.Source] = append(idx.outgoing[edge.Source], edge)
		idx.incoming[edge.Target] = append(idx.incoming[edge.Target], edge)
	}
	return idx
}

// positioned copies the graph's nodes and applies computed positions.
// Nodes absent from the map keep a nil Position.
func positioned(g *lineage.Graph, positions map[string]lineage.Position) []lineage.Node {
	nodes := make([]lineage.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	for i := range nodes {
		if pos, ok := positions[nodes[i].ID]; ok {
			p := pos
			nodes[i].Position = &p
		}
	}
	return nodes
}
