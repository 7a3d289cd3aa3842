package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/catalogops/lineage-engine/pkg/analysis"
	"github.com/catalogops/lineage-engine/pkg/health"
	"github.com/catalogops/lineage-engine/pkg/lineage"
	"github.com/catalogops/lineage-engine/pkg/validation"
	"github.com/catalogops/lineage-engine/pkg/visualization"
)

func (s *Server) handleLineage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req LineageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vreq := validation.LineageRequest{
		Guid:      req.Guid,
		Direction: req.Direction,
		Depth:     req.Depth,
		Layout:    req.Layout,
	}
	if err := validation.ValidateLineageRequest(&vreq); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	graph, err := s.buildGraph(r.Context(), req.Guid, lineage.Direction(req.Direction), req.Depth, req.QualityScores)
	if err != nil {
		status, msg := s.sanitizeError(err, "lineage build")
		s.respondError(w, status, msg)
		return
	}

	if req.Layout != "" && req.Layout != "none" {
		graph.Nodes = s.layoutFor(req.Layout, lineage.Direction(req.Direction), nil).ComputeLayout(graph)
	}

	s.respondJSON(w, http.StatusOK, LineageResponse{
		Graph:     graph,
		Metrics:   analysis.CalculateMetrics(graph),
		ElapsedMs: time.Since(start).Milliseconds(),
	})
}

// handlePathQuery serves GET /api/v1/lineage/{guid}/impact and
// GET /api/v1/lineage/{guid}/root-cause
func (s *Server) handlePathQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "use GET")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/lineage/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		s.respondError(w, http.StatusNotFound, "expected /api/v1/lineage/{guid}/impact or /root-cause")
		return
	}
	guid, kind := parts[0], parts[1]

	vreq := validation.PathRequest{
		Guid:   guid,
		NodeID: r.URL.Query().Get("nodeId"),
	}
	if err := validation.ValidatePathRequest(&vreq); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	graph, err := s.BuildGraph(r.Context(), guid, lineage.DirectionBoth, 0)
	if err != nil {
		status, msg := s.sanitizeError(err, "lineage build")
		s.respondError(w, status, msg)
		return
	}

	startNode := vreq.NodeID
	if startNode == "" {
		startNode = graph.CenterNodeID
	}

	var nodes []string
	switch kind {
	case "impact":
		nodes = analysis.FindImpactPath(graph, startNode)
	case "root-cause":
		nodes = analysis.FindRootCausePath(graph, startNode)
	default:
		s.respondError(w, http.StatusNotFound, "unknown path query: "+kind)
		return
	}

	s.respondJSON(w, http.StatusOK, PathResponse{
		Guid:      guid,
		StartNode: startNode,
		Nodes:     nodes,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Graph == nil || len(req.Graph.Nodes) == 0 {
		s.respondError(w, http.StatusBadRequest, "graph with at least one node is required")
		return
	}
	if req.Algorithm != "hierarchical" && req.Algorithm != "radial" {
		s.respondError(w, http.StatusBadRequest, "algorithm must be hierarchical or radial")
		return
	}

	layout := s.layoutFor(req.Algorithm, lineage.DirectionBoth, &req)
	s.respondJSON(w, http.StatusOK, LayoutResponse{Nodes: layout.ComputeLayout(req.Graph)})
}

// layoutFor builds a layout from server defaults plus optional overrides
func (s *Server) layoutFor(algorithm string, direction lineage.Direction, overrides *LayoutRequest) visualization.Layout {
	cfg := &visualization.LayoutConfig{
		HorizontalSpacing: s.cfg.Layout.HorizontalSpacing,
		VerticalSpacing:   s.cfg.Layout.VerticalSpacing,
		RadiusBase:        s.cfg.Layout.RadiusBase,
		Direction:         direction,
	}
	if overrides != nil {
		if overrides.HorizontalSpacing > 0 {
			cfg.HorizontalSpacing = overrides.HorizontalSpacing
		}
		if overrides.VerticalSpacing > 0 {
			cfg.VerticalSpacing = overrides.VerticalSpacing
		}
		if overrides.RadiusBase > 0 {
			cfg.RadiusBase = overrides.RadiusBase
		}
	}

	if algorithm == "radial" {
		return visualization.NewRadialLayout(cfg)
	}
	return visualization.NewHierarchicalLayout(cfg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondHealth(w, s.checker.Check())
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.respondHealth(w, s.checker.CheckReadiness())
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	s.respondHealth(w, s.checker.CheckLiveness())
}

// respondHealth maps check status to HTTP status: degraded still answers
// 200 so load balancers keep routing, unhealthy answers 503
func (s *Server) respondHealth(w http.ResponseWriter, response health.Response) {
	status := http.StatusOK
	if response.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	s.respondJSON(w, status, response)
}
