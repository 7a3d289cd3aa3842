package lineage

import (
	"sort"
	"time"

	"github.com/catalogops/lineage-engine/pkg/logging"
)

// Builder constructs unclassified lineage graphs from raw API payloads.
// It performs no I/O; diagnostics go through the injected logger.
type Builder struct {
	logger logging.Logger
	now    func() time.Time
}

// NewBuilder creates a graph builder. A nil logger disables diagnostics.
func NewBuilder(logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Builder{
		logger: logger.With(logging.Component("graph-builder")),
		now:    time.Now,
	}
}

// Build constructs a Graph from a center asset and a raw lineage response.
//
// The authoritative center record is the entity map's copy when present,
// with the caller-supplied record as fallback. Relations whose endpoints
// do not resolve to constructed nodes are dropped silently; lineage API
// responses are frequently partial and that is not an error condition.
//
// Edges come back with IsUpstream unset and node lineage flags at their
// zero values. Classify finalizes both; the direction argument here is the
// one the caller will classify with.
func (b *Builder) Build(center *AssetRecord, raw *RawLineageResponse, direction Direction, scores map[string]*QualityScores) *Graph {
	if raw == nil {
		raw = &RawLineageResponse{}
	}

	centerRecord := center
	if center != nil {
		if fresh, ok := raw.GuidEntityMap[center.Guid]; ok && fresh != nil {
			centerRecord = fresh
		}
	}

	graph := &Graph{
		Nodes: make([]Node, 0, len(raw.GuidEntityMap)+1),
		Edges: make([]Edge, 0, len(raw.Relations)),
	}
	if centerRecord == nil {
		// Nothing to anchor on; degrade to an empty graph
		b.logger.Warn("no center record available", logging.Direction(string(direction)))
		return graph
	}

	now := b.now()
	graph.CenterNodeID = centerRecord.Guid

	centerNode := b.newNode(centerRecord, scores, now)
	centerNode.IsCenterNode = true
	graph.Nodes = append(graph.Nodes, centerNode)

	// Entity map order is not stable; sort guids so node order is deterministic
	guids := make([]string, 0, len(raw.GuidEntityMap))
	for guid := range raw.GuidEntityMap {
		if guid == centerRecord.Guid {
			continue
		}
		guids = append(guids, guid)
	}
	sort.Strings(guids)

	for _, guid := range guids {
		record := raw.GuidEntityMap[guid]
		if record == nil {
			continue
		}
		graph.Nodes = append(graph.Nodes, b.newNode(record, scores, now))
	}

	types := make(map[string]string, len(graph.Nodes))
	for i := range graph.Nodes {
		types[graph.Nodes[i].ID] = graph.Nodes[i].Type
	}

	dropped := 0
	for _, rel := range raw.Relations {
		sourceType, sourceOK := types[rel.FromEntityID]
		targetType, targetOK := types[rel.ToEntityID]
		if !sourceOK || !targetOK {
			dropped++
			continue
		}

		id := rel.RelationshipID
		if id == "" {
			id = rel.FromEntityID + "-" + rel.ToEntityID
		}

		graph.Edges = append(graph.Edges, Edge{
			ID:               id,
			Source:           rel.FromEntityID,
			Target:           rel.ToEntityID,
			RelationshipType: rel.RelationshipType,
			SourceType:       sourceType,
			TargetType:       targetType,
		})
	}

	b.logger.Debug("lineage graph built",
		logging.Guid(graph.CenterNodeID),
		logging.Direction(string(direction)),
		logging.Nodes(len(graph.Nodes)),
		logging.Edges(len(graph.Edges)),
		logging.Int("dropped_relations", dropped),
	)

	return graph
}

func (b *Builder) newNode(record *AssetRecord, scores map[string]*QualityScores, now time.Time) Node {
	node := Node{
		ID:         record.Guid,
		Label:      resolveLabel(record),
		Type:       record.TypeName,
		EntityType: classifyEntityType(record.TypeName),
		Governance: extractGovernance(record),
		Freshness:  calculateFreshness(record, now),
	}
	if scores != nil {
		node.Quality = scores[record.Guid]
	}
	return node
}
