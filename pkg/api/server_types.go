package api

import (
	"github.com/catalogops/lineage-engine/pkg/analysis"
	"github.com/catalogops/lineage-engine/pkg/lineage"
)

// LineageRequest asks for a classified lineage graph around one asset
type LineageRequest struct {
	Guid      string `json:"guid"`
	Direction string `json:"direction,omitempty"`
	Depth     int    `json:"depth,omitempty"`
	Layout    string `json:"layout,omitempty"`

	// QualityScores is the scoring engine output, keyed by guid. The
	// engine merges scores onto matching nodes and ignores the rest.
	QualityScores map[string]*lineage.QualityScores `json:"qualityScores,omitempty"`
}

// LineageResponse carries the classified graph plus derived metrics
type LineageResponse struct {
	Graph     *lineage.Graph        `json:"graph"`
	Metrics   analysis.GraphMetrics `json:"metrics"`
	ElapsedMs int64                 `json:"elapsedMs"`
}

// PathResponse lists the nodes reachable from a start node in one direction
type PathResponse struct {
	Guid      string   `json:"guid"`
	StartNode string   `json:"startNode"`
	Nodes     []string `json:"nodes"`
}

// LayoutRequest asks for positions over an already-built graph
type LayoutRequest struct {
	Graph     *lineage.Graph `json:"graph"`
	Algorithm string         `json:"algorithm"`

	HorizontalSpacing float64 `json:"horizontalSpacing,omitempty"`
	VerticalSpacing   float64 `json:"verticalSpacing,omitempty"`
	RadiusBase        float64 `json:"radiusBase,omitempty"`
}

// LayoutResponse carries the positioned node list
type LayoutResponse struct {
	Nodes []lineage.Node `json:"nodes"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
