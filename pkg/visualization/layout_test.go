package visualization

import (
	"math"
	"testing"

	"github.com/catalogops/lineage-engine/pkg/lineage"
)

func layoutFixture(ids []string, edges [][2]string) *lineage.Graph {
	g := &lineage.Graph{CenterNodeID: ids[0]}
	for _, id := range ids {
		g.Nodes = append(g.Nodes, lineage.Node{
			ID: id, Label: id, Type: "Table",
			EntityType:   lineage.EntityAsset,
			IsCenterNode: id == ids[0],
		})
	}
	for _, e := range edges {
		g.Edges = append(g.Edges, lineage.Edge{ID: e[0] + "-" + e[1], Source: e[0], Target: e[1]})
	}
	return lineage.Classify(g, lineage.DirectionBoth)
}

func positionOf(t *testing.T, nodes []lineage.Node, id string) lineage.Position {
	t.Helper()
	for i := range nodes {
		if nodes[i].ID == id {
			if nodes[i].Position == nil {
				t.Fatalf("node %s has no position", id)
			}
			return *nodes[i].Position
		}
	}
	t.Fatalf("node %s not in layout result", id)
	return lineage.Position{}
}

func TestHierarchicalLayout_CenterLevelZero(t *testing.T) {
	// A2 -> A1 -> C -> B1
	g := layoutFixture([]string{"C", "A1", "A2", "B1"},
		[][2]string{{"A2", "A1"}, {"A1", "C"}, {"C", "B1"}})

	layout := NewHierarchicalLayout(&LayoutConfig{})
	levels := layout.Levels(g)

	if levels["C"] != 0 {
		t.Errorf("center level = %d, want 0", levels["C"])
	}
	if levels["A1"] != -1 || levels["A2"] != -2 {
		t.Errorf("upstream levels = %d/%d, want -1/-2", levels["A1"], levels["A2"])
	}
	if levels["B1"] != 1 {
		t.Errorf("downstream level = %d, want 1", levels["B1"])
	}
}

func TestHierarchicalLayout_Positions(t *testing.T) {
	g := layoutFixture([]string{"C", "A", "B"}, [][2]string{{"A", "C"}, {"C", "B"}})

	layout := NewHierarchicalLayout(&LayoutConfig{HorizontalSpacing: 100, VerticalSpacing: 50})
	nodes := layout.ComputeLayout(g)

	a := positionOf(t, nodes, "A")
	c := positionOf(t, nodes, "C")
	b := positionOf(t, nodes, "B")

	if a.X != 0 || c.X != 100 || b.X != 200 {
		t.Errorf("level columns: A=%v C=%v B=%v, want X 0/100/200", a.X, c.X, b.X)
	}
	// One node per level stacks at the vertical origin
	if a.Y != 0 || c.Y != 0 || b.Y != 0 {
		t.Errorf("single-node levels must center on zero: %v %v %v", a.Y, c.Y, b.Y)
	}
}

func TestHierarchicalLayout_VerticalStackCenteredOnZero(t *testing.T) {
	// Two upstream feeders of C
	g := layoutFixture([]string{"C", "A1", "A2"}, [][2]string{{"A1", "C"}, {"A2", "C"}})

	layout := NewHierarchicalLayout(&LayoutConfig{HorizontalSpacing: 100, VerticalSpacing: 50})
	nodes := layout.ComputeLayout(g)

	a1 := positionOf(t, nodes, "A1")
	a2 := positionOf(t, nodes, "A2")

	if a1.Y+a2.Y != 0 {
		t.Errorf("level stack not centered: %v + %v != 0", a1.Y, a2.Y)
	}
	if math.Abs(a1.Y-a2.Y) != 50 {
		t.Errorf("vertical spacing = %v, want 50", math.Abs(a1.Y-a2.Y))
	}
}

func TestHierarchicalLayout_DirectionRestriction(t *testing.T) {
	g := layoutFixture([]string{"C", "A", "B"}, [][2]string{{"A", "C"}, {"C", "B"}})

	layout := NewHierarchicalLayout(&LayoutConfig{Direction: lineage.DirectionUpstream})
	levels := layout.Levels(g)

	if _, reached := levels["B"]; reached {
		t.Error("upstream-only walk must not reach downstream nodes")
	}
	if levels["A"] != -1 {
		t.Errorf("A level = %d, want -1", levels["A"])
	}
}

func TestHierarchicalLayout_Idempotent(t *testing.T) {
	g := layoutFixture([]string{"C", "A1", "A2", "B1", "B2", "X"},
		[][2]string{{"A1", "C"}, {"A2", "A1"}, {"C", "B1"}, {"C", "B2"}})

	layout := NewHierarchicalLayout(&LayoutConfig{})
	first := layout.ComputeLayout(g)

	for run := 0; run < 20; run++ {
		again := layout.ComputeLayout(g)
		for i := range first {
			if *first[i].Position != *again[i].Position {
				t.Fatalf("run %d: node %s moved from %v to %v",
					run, first[i].ID, *first[i].Position, *again[i].Position)
			}
		}
	}
}

func TestHierarchicalLayout_CycleTerminates(t *testing.T) {
	g := layoutFixture([]string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})

	nodes := NewHierarchicalLayout(&LayoutConfig{}).ComputeLayout(g)
	if len(nodes) != 2 {
		t.Fatalf("cyclic layout returned %d nodes", len(nodes))
	}
	positionOf(t, nodes, "A")
	positionOf(t, nodes, "B")
}

func TestHierarchicalLayout_InputUntouched(t *testing.T) {
	g := layoutFixture([]string{"C", "A"}, [][2]string{{"A", "C"}})

	NewHierarchicalLayout(&LayoutConfig{}).ComputeLayout(g)
	for i := range g.Nodes {
		if g.Nodes[i].Position != nil {
			t.Error("layout must not mutate the input graph's nodes")
		}
	}
}

func TestRadialLayout_CenterAtOrigin(t *testing.T) {
	g := layoutFixture([]string{"C", "A", "B"}, [][2]string{{"A", "C"}, {"C", "B"}})

	nodes := NewRadialLayout(&LayoutConfig{RadiusBase: 100}).ComputeLayout(g)

	center := positionOf(t, nodes, "C")
	if center.X != 0 || center.Y != 0 {
		t.Errorf("center position = %v, want origin", center)
	}

	for _, id := range []string{"A", "B"} {
		pos := positionOf(t, nodes, id)
		radius := math.Hypot(pos.X, pos.Y)
		if math.Abs(radius-100) > 1e-9 {
			t.Errorf("node %s radius = %v, want 100", id, radius)
		}
	}
}

func TestRadialLayout_UndirectedDistance(t *testing.T) {
	// B2 is two directed hops downstream; A2 two hops upstream. Both ring 2.
	g := layoutFixture([]string{"C", "A1", "A2", "B1", "B2"},
		[][2]string{{"A2", "A1"}, {"A1", "C"}, {"C", "B1"}, {"B1", "B2"}})

	layout := NewRadialLayout(&LayoutConfig{RadiusBase: 100})
	distances := layout.Distances(g)

	for id, want := range map[string]int{"C": 0, "A1": 1, "B1": 1, "A2": 2, "B2": 2} {
		if distances[id] != want {
			t.Errorf("distance[%s] = %d, want %d", id, distances[id], want)
		}
	}
}

func TestRadialLayout_EvenAngularSpacing(t *testing.T) {
	g := layoutFixture([]string{"C", "A", "B", "D"},
		[][2]string{{"A", "C"}, {"B", "C"}, {"D", "C"}})

	nodes := NewRadialLayout(&LayoutConfig{RadiusBase: 100}).ComputeLayout(g)

	angles := make([]float64, 0, 3)
	for _, id := range []string{"A", "B", "D"} {
		pos := positionOf(t, nodes, id)
		angles = append(angles, math.Atan2(pos.Y, pos.X))
	}

	// Three nodes on one ring sit 2π/3 apart
	step := 2 * math.Pi / 3
	for i := 1; i < len(angles); i++ {
		diff := math.Mod(angles[i]-angles[i-1]+2*math.Pi, 2*math.Pi)
		if math.Abs(diff-step) > 1e-9 {
			t.Errorf("angular gap %d = %v, want %v", i, diff, step)
		}
	}
}

func TestRadialLayout_DisconnectedNodesOnOuterRing(t *testing.T) {
	g := layoutFixture([]string{"C", "A", "X"}, [][2]string{{"A", "C"}})

	layout := NewRadialLayout(&LayoutConfig{RadiusBase: 100})
	nodes := layout.ComputeLayout(g)

	x := positionOf(t, nodes, "X")
	radius := math.Hypot(x.X, x.Y)
	if math.Abs(radius-200) > 1e-9 {
		t.Errorf("disconnected node radius = %v, want one ring past the farthest (200)", radius)
	}
}

func TestRadialLayout_CycleTerminates(t *testing.T) {
	g := layoutFixture([]string{"A", "B", "D"},
		[][2]string{{"A", "B"}, {"B", "D"}, {"D", "A"}})

	nodes := NewRadialLayout(&LayoutConfig{}).ComputeLayout(g)
	if len(nodes) != 3 {
		t.Fatalf("cyclic radial layout returned %d nodes", len(nodes))
	}
}
