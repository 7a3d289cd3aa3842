package analysis

import "github.com/catalogops/lineage-engine/pkg/lineage"

// FindImpactPath returns every node id strictly forward-reachable from
// nodeID via outgoing edges, in BFS discovery order. The start node is
// excluded and converging paths produce no duplicates. Used for "what
// breaks if I change this" queries; the start node can be any node, not
// just the center.
func FindImpactPath(g *lineage.Graph, nodeID string) []string {
	next := make(map[string][]string)
	for i := range g.Edges {
		edge := &g.Edges[i]
		next[edge.Source] = append(next[edge.Source], edge.Target)
	}
	return collectReachable(nodeID, next)
}

// FindRootCausePath is the backward analogue of FindImpactPath: every
// node id reachable from nodeID via incoming edges, for "what upstream
// source caused this" queries.
func FindRootCausePath(g *lineage.Graph, nodeID string) []string {
	prev := make(map[string][]string)
	for i := range g.Edges {
		edge := &g.Edges[i]
		prev[edge.Target] = append(prev[edge.Target], edge.Source)
	}
	return collectReachable(nodeID, prev)
}

// collectReachable runs an iterative BFS with an explicit work queue and
// visited set, so cyclic lineage terminates.
func collectReachable(start string, neighbours map[string][]string) []string {
	result := make([]string, 0)
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range neighbours[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			result = append(result, next)
			queue = append(queue, next)
		}
	}

	return result
}
