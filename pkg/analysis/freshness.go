package analysis

import "github.com/catalogops/lineage-engine/pkg/lineage"

// FreshnessMetrics reports the stale fraction of a graph's asset nodes,
// using each node's precomputed freshness snapshot.
type FreshnessMetrics struct {
	TotalAssets     int `json:"totalAssets"`
	StaleAssets     int `json:"staleAssets"`
	FreshAssets     int `json:"freshAssets"`
	StalePercentage int `json:"stalePercentage"`
}

// CalculateFreshness counts stale asset-type nodes. With no assets the
// result is all zeroes.
func CalculateFreshness(g *lineage.Graph) FreshnessMetrics {
	var metrics FreshnessMetrics
	for i := range g.Nodes {
		node := &g.Nodes[i]
		if node.EntityType != lineage.EntityAsset {
			continue
		}
		metrics.TotalAssets++
		if node.Freshness.IsStale {
			metrics.StaleAssets++
		}
	}

	metrics.FreshAssets = metrics.TotalAssets - metrics.StaleAssets
	metrics.StalePercentage = roundPercent(metrics.StaleAssets, metrics.TotalAssets)
	return metrics
}
