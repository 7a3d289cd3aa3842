package analysis

import (
	"testing"
)

func TestFindImpactPath_DirectionConsistency(t *testing.T) {
	// A -> C -> B
	g := classifiedFixture([]string{"C", "A", "B"}, [][2]string{{"A", "C"}, {"C", "B"}})

	impact := FindImpactPath(g, "C")
	if len(impact) != 1 || impact[0] != "B" {
		t.Errorf("FindImpactPath(C) = %v, want [B]", impact)
	}

	rootCause := FindRootCausePath(g, "C")
	if len(rootCause) != 1 || rootCause[0] != "A" {
		t.Errorf("FindRootCausePath(C) = %v, want [A]", rootCause)
	}
}

func TestFindImpactPath_Transitive(t *testing.T) {
	// C -> B1 -> B2, C -> B3
	g := classifiedFixture([]string{"C", "B1", "B2", "B3"},
		[][2]string{{"C", "B1"}, {"B1", "B2"}, {"C", "B3"}})

	impact := FindImpactPath(g, "C")
	if len(impact) != 3 {
		t.Fatalf("impact set size = %d, want 3: %v", len(impact), impact)
	}
	want := map[string]bool{"B1": true, "B2": true, "B3": true}
	for _, id := range impact {
		if !want[id] {
			t.Errorf("unexpected id %q in impact set", id)
		}
	}
}

func TestFindImpactPath_ExcludesStartAndDeduplicates(t *testing.T) {
	// Diamond: C -> X, C -> Y, X -> Z, Y -> Z; plus cycle back Z -> C
	g := classifiedFixture([]string{"C", "X", "Y", "Z"},
		[][2]string{{"C", "X"}, {"C", "Y"}, {"X", "Z"}, {"Y", "Z"}, {"Z", "C"}})

	impact := FindImpactPath(g, "C")

	seen := make(map[string]bool)
	for _, id := range impact {
		if id == "C" {
			t.Error("start node must be excluded from its own impact path")
		}
		if seen[id] {
			t.Errorf("duplicate id %q despite converging paths", id)
		}
		seen[id] = true
	}
	if len(impact) != 3 {
		t.Errorf("impact = %v, want X, Y, Z exactly once each", impact)
	}
}

func TestFindRootCausePath_CycleTerminates(t *testing.T) {
	// A -> B -> A
	g := classifiedFixture([]string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})

	rootCause := FindRootCausePath(g, "A")
	if len(rootCause) != 1 || rootCause[0] != "B" {
		t.Errorf("FindRootCausePath(A) = %v, want [B]", rootCause)
	}
}

func TestFindImpactPath_ArbitraryStartNode(t *testing.T) {
	// Path queries are center-independent: start from B1, not the center
	g := classifiedFixture([]string{"C", "B1", "B2"}, [][2]string{{"C", "B1"}, {"B1", "B2"}})

	impact := FindImpactPath(g, "B1")
	if len(impact) != 1 || impact[0] != "B2" {
		t.Errorf("FindImpactPath(B1) = %v, want [B2]", impact)
	}

	rootCause := FindRootCausePath(g, "B1")
	if len(rootCause) != 1 || rootCause[0] != "C" {
		t.Errorf("FindRootCausePath(B1) = %v, want [C]", rootCause)
	}
}

func TestFindImpactPath_UnknownNode(t *testing.T) {
	g := classifiedFixture([]string{"C"}, nil)
	if impact := FindImpactPath(g, "missing"); len(impact) != 0 {
		t.Errorf("unknown start node must yield an empty set, got %v", impact)
	}
}
