package lineage

import (
	"testing"
	"time"
)

func TestClassifyEntityType(t *testing.T) {
	cases := []struct {
		typeName string
		want     EntityType
	}{
		{"Table", EntityAsset},
		{"View", EntityAsset},
		{"Column", EntityAsset},
		{"Process", EntityProcess},
		{"ColumnProcess", EntityProcess},
		{"DbtProcess", EntityProcess},
		{"BiProcess", EntityProcess},
		{"AirflowTask", EntityProcess},
		{"SparkJob", EntityProcess},
		{"CustomProcessStep", EntityProcess}, // substring match
		{"", EntityAsset},
	}

	for _, tc := range cases {
		if got := classifyEntityType(tc.typeName); got != tc.want {
			t.Errorf("classifyEntityType(%q) = %v, want %v", tc.typeName, got, tc.want)
		}
	}
}

func TestResolveLabel(t *testing.T) {
	cases := []struct {
		name      string
		record    AssetRecord
		wantLabel string
	}{
		{"name wins", AssetRecord{Name: "orders", QualifiedName: "db/schema/orders"}, "orders"},
		{"qualified name fallback", AssetRecord{QualifiedName: "db/schema/orders"}, "db/schema/orders"},
		{"unknown fallback", AssetRecord{}, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveLabel(&tc.record); got != tc.wantLabel {
				t.Errorf("resolveLabel = %q, want %q", got, tc.wantLabel)
			}
		})
	}
}

func TestExtractGovernance(t *testing.T) {
	record := &AssetRecord{
		CertificateStatus:   "VERIFIED",
		OwnerUsers:          []string{"alice"},
		OwnerGroups:         []string{"data-eng"},
		AssetTags:           []string{"pii"},
		ClassificationNames: []string{"restricted"},
		Meanings:            []string{"Revenue"},
		AssignedTerms:       []string{"Net Revenue"},
		DomainGUIDs:         []string{"dom-1"},
	}

	gov := extractGovernance(record)

	if gov.CertificateStatus != "VERIFIED" {
		t.Errorf("CertificateStatus = %q", gov.CertificateStatus)
	}
	if len(gov.Tags) != 2 || gov.Tags[0] != "pii" || gov.Tags[1] != "restricted" {
		t.Errorf("Tags = %v, want [pii restricted]", gov.Tags)
	}
	if len(gov.Terms) != 2 || gov.Terms[0] != "Revenue" || gov.Terms[1] != "Net Revenue" {
		t.Errorf("Terms = %v, want [Revenue Net Revenue]", gov.Terms)
	}
	if len(gov.OwnerUsers) != 1 || len(gov.OwnerGroups) != 1 || len(gov.DomainGUIDs) != 1 {
		t.Errorf("owners/domains not copied: %+v", gov)
	}
}

func TestCalculateFreshness(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no timestamps is not stale", func(t *testing.T) {
		fresh := calculateFreshness(&AssetRecord{}, now)
		if fresh.IsStale {
			t.Error("missing timestamps must never count as stale")
		}
		if fresh.LastUpdatedAt != nil {
			t.Errorf("LastUpdatedAt = %v, want nil", fresh.LastUpdatedAt)
		}
	})

	t.Run("recent update is fresh", func(t *testing.T) {
		updated := now.Add(-10 * 24 * time.Hour)
		fresh := calculateFreshness(&AssetRecord{UpdateTime: updated.UnixMilli()}, now)
		if fresh.IsStale {
			t.Error("10-day-old asset flagged stale")
		}
		if fresh.StaleDays != 10 {
			t.Errorf("StaleDays = %d, want 10", fresh.StaleDays)
		}
	})

	t.Run("old update is stale", func(t *testing.T) {
		updated := now.Add(-120 * 24 * time.Hour)
		fresh := calculateFreshness(&AssetRecord{UpdateTime: updated.UnixMilli()}, now)
		if !fresh.IsStale {
			t.Error("120-day-old asset not flagged stale")
		}
		if fresh.StaleDays != 120 {
			t.Errorf("StaleDays = %d, want 120", fresh.StaleDays)
		}
	})

	t.Run("90 days is the boundary", func(t *testing.T) {
		updated := now.Add(-90 * 24 * time.Hour)
		fresh := calculateFreshness(&AssetRecord{UpdateTime: updated.UnixMilli()}, now)
		if fresh.IsStale {
			t.Error("exactly 90 days must not be stale; threshold is strictly greater")
		}
	})

	t.Run("timestamp fallback order", func(t *testing.T) {
		source := now.Add(-30 * 24 * time.Hour)
		sync := now.Add(-200 * 24 * time.Hour)

		fresh := calculateFreshness(&AssetRecord{
			SourceUpdatedAt: source.UnixMilli(),
			LastSyncRunAt:   sync.UnixMilli(),
		}, now)
		if fresh.LastUpdatedAt == nil || !fresh.LastUpdatedAt.Equal(source) {
			t.Errorf("LastUpdatedAt = %v, want sourceUpdatedAt %v", fresh.LastUpdatedAt, source)
		}

		fresh = calculateFreshness(&AssetRecord{LastSyncRunAt: sync.UnixMilli()}, now)
		if fresh.LastUpdatedAt == nil || !fresh.LastUpdatedAt.Equal(sync) {
			t.Errorf("LastUpdatedAt = %v, want lastSyncRunAt %v", fresh.LastUpdatedAt, sync)
		}
	})
}
