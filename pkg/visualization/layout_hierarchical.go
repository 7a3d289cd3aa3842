package visualization

import (
	"sort"

	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// HierarchicalLayout arranges nodes in columns by lineage level: the
// center at level 0, upstream levels negative, downstream positive.
type HierarchicalLayout struct {
	config *LayoutConfig
}

// NewHierarchicalLayout creates a new hierarchical layout
func NewHierarchicalLayout(config *LayoutConfig) *HierarchicalLayout {
	if config.HorizontalSpacing == 0 {
		config.HorizontalSpacing = 250
	}
	if config.VerticalSpacing == 0 {
		config.VerticalSpacing = 120
	}
	if config.Direction == "" {
		config.Direction = lineage.DirectionBoth
	}
	return &HierarchicalLayout{config: config}
}

type levelEntry struct {
	id    string
	level int
}

// Levels runs a BFS from the center over the configured direction(s) and
// returns each reached node's integer level. A node reachable both ways
// keeps the level of its first-discovered edge; ties are not re-resolved.
// The visited set makes the walk terminate on cyclic graphs.
func (hl *HierarchicalLayout) Levels(g *lineage.Graph) map[string]int {
	levels := map[string]int{g.CenterNodeID: 0}
	idx := indexEdges(g)

	visited := map[string]bool{g.CenterNodeID: true}
	queue := []levelEntry{{id: g.CenterNodeID, level: 0}}

	expandUp := hl.config.Direction == lineage.DirectionBoth || hl.config.Direction == lineage.DirectionUpstream
	expandDown := hl.config.Direction == lineage.DirectionBoth || hl.config.Direction == lineage.DirectionDownstream

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if expandUp {
			for _, edge := range idx.incoming[current.id] {
				if visited[edge.Source] {
					continue
				}
				visited[edge.Source] = true
				levels[edge.Source] = current.level - 1
				queue = append(queue, levelEntry{id: edge.Source, level: current.level - 1})
			}
		}
		if expandDown {
			for _, edge := range idx.outgoing[current.id] {
				if visited[edge.Target] {
					continue
				}
				visited[edge.Target] = true
				levels[edge.Target] = current.level + 1
				queue = append(queue, levelEntry{id: edge.Target, level: current.level + 1})
			}
		}
	}

	return levels
}

// ComputeLayout assigns positions: X from the node's level normalized
// against the observed level range, Y by stacking a level's nodes
// vertically centered on zero. Nodes the walk never reaches are parked
// one level past the deepest observed one, in node-list order.
func (hl *HierarchicalLayout) ComputeLayout(g *lineage.Graph) []lineage.Node {
	if len(g.Nodes) == 0 {
		return nil
	}

	levels := hl.Levels(g)

	minLevel, maxLevel := 0, 0
	for _, level := range levels {
		if level < minLevel {
			minLevel = level
		}
		if level > maxLevel {
			maxLevel = level
		}
	}

	for i := range g.Nodes {
		if _, ok := levels[g.Nodes[i].ID]; !ok {
			levels[g.Nodes[i].ID] = maxLevel + 1
		}
	}

	// Group ids per level in node-list order so the stacking is stable
	grouped := make(map[int][]string)
	for i := range g.Nodes {
		level := levels[g.Nodes[i].ID]
		grouped[level] = append(grouped[level], g.Nodes[i].ID)
	}

	ordered := make([]int, 0, len(grouped))
	for level := range grouped {
		ordered = append(ordered, level)
	}
	sort.Ints(ordered)

	positions := make(map[string]lineage.Position, len(g.Nodes))
	for _, level := range ordered {
		ids := grouped[level]
		x := float64(level-minLevel) * hl.config.HorizontalSpacing
		for i, id := range ids {
			y := (float64(i) - float64(len(ids)-1)/2) * hl.config.VerticalSpacing
			positions[id] = lineage.Position{X: x, Y: y}
		}
	}

	return positioned(g, positions)
}
