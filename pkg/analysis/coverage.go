package analysis

import (
	"math"

	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// CoverageMetrics summarizes how well-connected a lineage graph is.
type CoverageMetrics struct {
	TotalNodes     int `json:"totalNodes"`
	AssetNodes     int `json:"assetNodes"`
	ProcessNodes   int `json:"processNodes"`
	UpstreamOnly   int `json:"upstreamOnly"`
	DownstreamOnly int `json:"downstreamOnly"`
	BothDirections int `json:"bothDirections"`
	Orphaned       int `json:"orphaned"`

	CoveragePercentage int     `json:"coveragePercentage"`
	AvgUpstreamCount   float64 `json:"avgUpstreamCount"`
	AvgDownstreamCount float64 `json:"avgDownstreamCount"`
}

// CalculateCoverage counts nodes by entity type and connectivity over a
// classified graph. An empty graph yields the zero result, never an error.
func CalculateCoverage(g *lineage.Graph) CoverageMetrics {
	metrics := CoverageMetrics{TotalNodes: len(g.Nodes)}
	if metrics.TotalNodes == 0 {
		return metrics
	}

	upstreamSum := 0
	downstreamSum := 0
	for i := range g.Nodes {
		node := &g.Nodes[i]

		switch node.EntityType {
		case lineage.EntityProcess:
			metrics.ProcessNodes++
		default:
			metrics.AssetNodes++
		}

		switch {
		case node.HasUpstream && node.HasDownstream:
			metrics.BothDirections++
		case node.HasUpstream:
			metrics.UpstreamOnly++
		case node.HasDownstream:
			metrics.DownstreamOnly++
		default:
			metrics.Orphaned++
		}

		upstreamSum += node.UpstreamCount
		downstreamSum += node.DownstreamCount
	}

	connected := metrics.TotalNodes - metrics.Orphaned
	metrics.CoveragePercentage = roundPercent(connected, metrics.TotalNodes)
	metrics.AvgUpstreamCount = roundTenth(float64(upstreamSum) / float64(metrics.TotalNodes))
	metrics.AvgDownstreamCount = roundTenth(float64(downstreamSum) / float64(metrics.TotalNodes))
	return metrics
}

// roundPercent returns round(part/total*100), 0 when total is 0.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// roundTenth rounds to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
