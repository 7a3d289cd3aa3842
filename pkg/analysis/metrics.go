package analysis

import "github.com/catalogops/lineage-engine/pkg/lineage"

// GraphMetrics bundles the three independent metric families for
// dashboard widgets that want everything in one call.
type GraphMetrics struct {
	Coverage  CoverageMetrics  `json:"coverage"`
	Quality   QualityMetrics   `json:"quality"`
	Freshness FreshnessMetrics `json:"freshness"`
}

// CalculateMetrics composes coverage, quality and freshness over a
// classified graph. Convenience only; each family is independently callable.
func CalculateMetrics(g *lineage.Graph) GraphMetrics {
	return GraphMetrics{
		Coverage:  CalculateCoverage(g),
		Quality:   CalculateQuality(g),
		Freshness: CalculateFreshness(g),
	}
}
