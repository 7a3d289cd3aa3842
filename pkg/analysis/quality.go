package analysis

import (
	"math"

	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// issueThreshold marks an asset as having quality issues. Strictly below.
const issueThreshold = 50

// QualityMetrics aggregates quality scores over the scored asset subset
// of a graph. Process nodes and unscored assets are excluded.
type QualityMetrics struct {
	ScoredAssets int `json:"scoredAssets"`

	AvgCompleteness int `json:"avgCompleteness"`
	AvgAccuracy     int `json:"avgAccuracy"`
	AvgTimeliness   int `json:"avgTimeliness"`
	AvgConsistency  int `json:"avgConsistency"`
	AvgUsability    int `json:"avgUsability"`
	AvgOverall      int `json:"avgOverall"`

	AssetsWithIssues int `json:"assetsWithIssues"`
	IssuePercentage  int `json:"issuePercentage"`
}

// CalculateQuality averages the five scoring dimensions plus overall
// across asset nodes that carry scores. With no scored assets every field
// is zero; division by zero never surfaces.
func CalculateQuality(g *lineage.Graph) QualityMetrics {
	var metrics QualityMetrics
	var completeness, accuracy, timeliness, consistency, usability, overall int

	for i := range g.Nodes {
		node := &g.Nodes[i]
		if node.EntityType != lineage.EntityAsset || node.Quality == nil {
			continue
		}

		metrics.ScoredAssets++
		completeness += node.Quality.Completeness
		accuracy += node.Quality.Accuracy
		timeliness += node.Quality.Timeliness
		consistency += node.Quality.Consistency
		usability += node.Quality.Usability
		overall += node.Quality.Overall

		if node.Quality.Overall < issueThreshold {
			metrics.AssetsWithIssues++
		}
	}

	if metrics.ScoredAssets == 0 {
		return metrics
	}

	n := float64(metrics.ScoredAssets)
	metrics.AvgCompleteness = int(math.Round(float64(completeness) / n))
	metrics.AvgAccuracy = int(math.Round(float64(accuracy) / n))
	metrics.AvgTimeliness = int(math.Round(float64(timeliness) / n))
	metrics.AvgConsistency = int(math.Round(float64(consistency) / n))
	metrics.AvgUsability = int(math.Round(float64(usability) / n))
	metrics.AvgOverall = int(math.Round(float64(overall) / n))
	metrics.IssuePercentage = roundPercent(metrics.AssetsWithIssues, metrics.ScoredAssets)
	return metrics
}
