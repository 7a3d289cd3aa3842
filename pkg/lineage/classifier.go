package lineage

// adjacency holds per-node edge indices over a preliminary edge list.
// Index sizes double as the raw connection counts.
type adjacency struct {
	outgoing map[string][]*Edge // source -> edges leaving it
	incoming map[string][]*Edge // target -> edges entering it
}

func buildAdjacency(edges []Edge) *adjacency {
	adj := &adjacency{
		outgoing: make(map[string][]*Edge),
		incoming: make(map[string][]*Edge),
	}
	for i := range edges {
		edge := &edges[i]
		adj.outgoing[edge.Source] = append(adj.outgoing[edge.Source], edge)
		adj.incoming[edge.Target] = append(adj.incoming[edge.Target], edge)
	}
	return adj
}

// reachable walks the graph from start with an explicit queue and visited
// set, so cyclic lineage terminates. step yields the neighbour an edge
// leads to for the traversal's direction. The start node is not included.
func reachable(start string, index map[string][]*Edge, step func(*Edge) string) map[string]bool {
	result := make(map[string]bool)
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, edge := range index[current] {
			next := step(edge)
			if visited[next] {
				continue
			}
			visited[next] = true
			result[next] = true
			queue = append(queue, next)
		}
	}

	return result
}

// Classify annotates a built graph relative to its center: every edge's
// IsUpstream, every node's lineage flags and connection counts, and the
// final direction-filtered edge list. This is the one mutation pass a
// Graph goes through; afterwards it is immutable.
//
// A center with zero relations yields empty reachability sets and all
// flags false. That is a valid terminal state, not an error.
func Classify(g *Graph, direction Direction) *Graph {
	adj := buildAdjacency(g.Edges)
	center := g.CenterNodeID

	// Nodes that eventually feed the center: follow incoming edges backward
	upstream := reachable(center, adj.incoming, func(e *Edge) string { return e.Source })
	// Nodes the center eventually feeds: follow outgoing edges forward
	downstream := reachable(center, adj.outgoing, func(e *Edge) string { return e.Target })

	for i := range g.Edges {
		edge := &g.Edges[i]
		switch {
		case edge.Target == center:
			edge.IsUpstream = true
		case edge.Source == center:
			edge.IsUpstream = false
		default:
			// Transitive edge: upstream-side iff its target feeds the center
			edge.IsUpstream = upstream[edge.Target]
		}
	}

	for i := range g.Nodes {
		node := &g.Nodes[i]
		node.UpstreamCount = len(adj.incoming[node.ID])
		node.DownstreamCount = len(adj.outgoing[node.ID])

		if node.ID == center {
			node.HasUpstream = len(adj.incoming[center]) > 0 || len(upstream) > 0
			node.HasDownstream = len(adj.outgoing[center]) > 0 || len(downstream) > 0
			continue
		}
		node.HasUpstream = upstream[node.ID]
		node.HasDownstream = downstream[node.ID]
	}

	g.Edges = filterEdges(g.Edges, center, direction)
	return g
}

// filterEdges restricts the edge list to the requested direction. Edges
// touching the center directly survive a one-sided request on their side.
func filterEdges(edges []Edge, center string, direction Direction) []Edge {
	if direction == DirectionBoth || direction == "" {
		return edges
	}

	kept := make([]Edge, 0, len(edges))
	for _, edge := range edges {
		switch direction {
		case DirectionUpstream:
			if edge.IsUpstream || edge.Target == center {
				kept = append(kept, edge)
			}
		case DirectionDownstream:
			if !edge.IsUpstream || edge.Source == center {
				kept = append(kept, edge)
			}
		}
	}
	return kept
}
