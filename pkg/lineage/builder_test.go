package lineage

import (
	"testing"
)

func testBuilder() *Builder {
	return NewBuilder(nil)
}

func record(guid, typeName, name string) *AssetRecord {
	return &AssetRecord{Guid: guid, TypeName: typeName, Name: name}
}

func TestBuild_EmptyResponse(t *testing.T) {
	center := record("c-1", "Table", "orders")
	graph := testBuilder().Build(center, &RawLineageResponse{}, DirectionBoth, nil)

	if len(graph.Nodes) != 1 {
		t.Fatalf("Expected exactly the center node, got %d nodes", len(graph.Nodes))
	}
	if len(graph.Edges) != 0 {
		t.Errorf("Expected 0 edges, got %d", len(graph.Edges))
	}
	if graph.CenterNodeID != "c-1" {
		t.Errorf("CenterNodeID = %q, want c-1", graph.CenterNodeID)
	}
	if !graph.Nodes[0].IsCenterNode {
		t.Error("center node not flagged IsCenterNode")
	}
}

func TestBuild_NilResponse(t *testing.T) {
	graph := testBuilder().Build(record("c-1", "Table", "orders"), nil, DirectionBoth, nil)
	if len(graph.Nodes) != 1 || len(graph.Edges) != 0 {
		t.Errorf("nil response: got %d nodes, %d edges", len(graph.Nodes), len(graph.Edges))
	}
}

func TestBuild_CenterResolutionPrefersEntityMap(t *testing.T) {
	stale := record("c-1", "Table", "old-name")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"c-1": record("c-1", "Table", "fresh-name"),
		},
	}

	graph := testBuilder().Build(stale, raw, DirectionBoth, nil)

	center := graph.CenterNode()
	if center == nil {
		t.Fatal("no center node")
	}
	if center.Label != "fresh-name" {
		t.Errorf("center label = %q, want the entity map's fresh-name", center.Label)
	}
}

func TestBuild_CenterFallbackToCallerRecord(t *testing.T) {
	center := record("c-1", "Table", "orders")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"u-1": record("u-1", "Table", "raw_orders"),
		},
		Relations: []RawRelation{{FromEntityID: "u-1", ToEntityID: "c-1"}},
	}

	graph := testBuilder().Build(center, raw, DirectionBoth, nil)

	if graph.CenterNode() == nil {
		t.Fatal("center absent from entity map must fall back to caller record")
	}
	if len(graph.Nodes) != 2 {
		t.Errorf("Expected 2 nodes, got %d", len(graph.Nodes))
	}
	if len(graph.Edges) != 1 {
		t.Errorf("Expected 1 edge, got %d", len(graph.Edges))
	}
}

func TestBuild_DropsUnresolvedRelations(t *testing.T) {
	center := record("c-1", "Table", "orders")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"u-1": record("u-1", "Table", "raw_orders"),
		},
		Relations: []RawRelation{
			{FromEntityID: "u-1", ToEntityID: "c-1"},
			{FromEntityID: "ghost", ToEntityID: "c-1"},
			{FromEntityID: "u-1", ToEntityID: "ghost"},
		},
	}

	graph := testBuilder().Build(center, raw, DirectionBoth, nil)

	if len(graph.Edges) != 1 {
		t.Fatalf("Expected unresolved relations dropped, got %d edges", len(graph.Edges))
	}
	assertReferentialIntegrity(t, graph)
}

func TestBuild_EdgeIDSynthesis(t *testing.T) {
	center := record("c-1", "Table", "orders")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"u-1": record("u-1", "Table", "raw_orders"),
			"d-1": record("d-1", "View", "orders_v"),
		},
		Relations: []RawRelation{
			{FromEntityID: "u-1", ToEntityID: "c-1", RelationshipID: "rel-42", RelationshipType: "lineage"},
			{FromEntityID: "c-1", ToEntityID: "d-1"},
		},
	}

	graph := testBuilder().Build(center, raw, DirectionBoth, nil)

	if graph.Edges[0].ID != "rel-42" {
		t.Errorf("edge id = %q, want relationship id rel-42", graph.Edges[0].ID)
	}
	if graph.Edges[1].ID != "c-1-d-1" {
		t.Errorf("edge id = %q, want synthesized c-1-d-1", graph.Edges[1].ID)
	}
	if graph.Edges[0].SourceType != "Table" || graph.Edges[1].TargetType != "View" {
		t.Errorf("denormalized endpoint types wrong: %+v", graph.Edges)
	}
	for _, edge := range graph.Edges {
		if edge.IsUpstream {
			t.Error("builder must leave IsUpstream unset; classification is a separate pass")
		}
	}
}

func TestBuild_QualityScoreAttachment(t *testing.T) {
	center := record("c-1", "Table", "orders")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"u-1": record("u-1", "Table", "raw_orders"),
		},
	}
	scores := map[string]*QualityScores{
		"u-1": {Overall: 77, Completeness: 80},
	}

	graph := testBuilder().Build(center, raw, DirectionBoth, scores)

	scored := graph.NodeByID("u-1")
	if scored == nil || scored.Quality == nil || scored.Quality.Overall != 77 {
		t.Errorf("score for u-1 not attached: %+v", scored)
	}
	if graph.CenterNode().Quality != nil {
		t.Error("center without a score entry must keep Quality nil")
	}
}

func TestBuild_DeterministicNodeOrder(t *testing.T) {
	center := record("c-1", "Table", "orders")
	raw := &RawLineageResponse{
		GuidEntityMap: map[string]*AssetRecord{
			"b": record("b", "Table", "b"),
			"a": record("a", "Table", "a"),
			"z": record("z", "Table", "z"),
		},
	}

	first := testBuilder().Build(center, raw, DirectionBoth, nil)
	for i := 0; i < 10; i++ {
		again := testBuilder().Build(center, raw, DirectionBoth, nil)
		for j := range first.Nodes {
			if first.Nodes[j].ID != again.Nodes[j].ID {
				t.Fatalf("node order not deterministic: run %d position %d", i, j)
			}
		}
	}
}

func assertReferentialIntegrity(t *testing.T, g *Graph) {
	t.Helper()
	ids := make(map[string]bool, len(g.Nodes))
	for i := range g.Nodes {
		if ids[g.Nodes[i].ID] {
			t.Errorf("duplicate node id %q", g.Nodes[i].ID)
		}
		ids[g.Nodes[i].ID] = true
	}
	for _, edge := range g.Edges {
		if !ids[edge.Source] || !ids[edge.Target] {
			t.Errorf("edge %q has endpoint outside the node set", edge.ID)
		}
	}
}
