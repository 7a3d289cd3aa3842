package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/catalogops/lineage-engine/pkg/catalog"
	"github.com/catalogops/lineage-engine/pkg/config"
	"github.com/catalogops/lineage-engine/pkg/graphql"
	"github.com/catalogops/lineage-engine/pkg/health"
	"github.com/catalogops/lineage-engine/pkg/lineage"
	"github.com/catalogops/lineage-engine/pkg/logging"
	"github.com/catalogops/lineage-engine/pkg/metrics"
)

// Server is the HTTP API over the lineage engine
type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	registry  *metrics.Registry
	checker   *health.Checker
	catalog   *catalog.Client
	builder   *lineage.Builder
	graphql   *graphql.Handler
	startTime time.Time
}

// NewServer wires the engine, catalog client and observability stack into
// an HTTP server. A nil logger falls back to the no-op logger.
func NewServer(cfg *config.Config, client *catalog.Client, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.With(logging.Component("api"))

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		registry:  metrics.Default(),
		checker:   health.NewChecker(),
		catalog:   client,
		builder:   lineage.NewBuilder(logger),
		startTime: time.Now(),
	}

	schema, err := graphql.BuildSchema(s)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}
	s.graphql = graphql.NewHandler(schema)

	s.registerHealthChecks()
	return s, nil
}

func (s *Server) registerHealthChecks() {
	s.checker.RegisterCheck("engine", health.EngineCheck())
	s.checker.RegisterCheck("catalog", health.CatalogCheck(s.catalog.Ping))
	s.checker.RegisterCheck("cache", health.CacheCheck(s.catalog.CacheStats))

	s.checker.RegisterReadinessCheck("catalog", health.CatalogCheck(s.catalog.Ping))
	s.checker.RegisterLivenessCheck("engine", health.EngineCheck())
}

// Handler builds the routed handler with the full middleware chain
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/lineage", s.handleLineage)
	mux.HandleFunc("/api/v1/lineage/", s.handlePathQuery) // /{guid}/impact, /{guid}/root-cause
	mux.HandleFunc("/api/v1/lineage/layout", s.handleLayout)

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/health/ready", s.handleReady)
	mux.HandleFunc("/health/live", s.handleLive)
	mux.Handle("/metrics", s.registry.Handler())

	mux.Handle("/graphql", s.graphql)

	var handler http.Handler = mux
	handler = s.bodySizeLimitMiddleware(handler, s.cfg.Server.MaxBodyBytes)
	handler = s.metricsMiddleware(handler)
	handler = s.loggingMiddleware(handler)
	handler = s.corsMiddleware(handler)
	handler = s.requestIDMiddleware(handler)
	handler = s.panicRecoveryMiddleware(handler)
	return handler
}

// HTTPServer builds the net/http server with production timeouts
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

// BuildGraph runs the full pipeline: cache-first fetch, graph assembly,
// direction classification. Shared by the REST handlers and the GraphQL
// resolvers.
func (s *Server) BuildGraph(ctx context.Context, guid string, direction lineage.Direction, depth int) (*lineage.Graph, error) {
	return s.buildGraph(ctx, guid, direction, depth, nil)
}

func (s *Server) buildGraph(ctx context.Context, guid string, direction lineage.Direction, depth int, scores map[string]*lineage.QualityScores) (*lineage.Graph, error) {
	if direction == "" {
		direction = lineage.DirectionBoth
	}
	if depth < 1 {
		depth = s.cfg.Catalog.DefaultDepth
	}

	start := time.Now()
	raw, err := s.catalog.FetchLineage(ctx, guid, direction, depth)
	if err != nil {
		return nil, fmt.Errorf("fetch lineage for %s: %w", guid, err)
	}

	// Entity map wins over a separately fetched center record, so only
	// fall back to a direct fetch when the lineage payload lacks it.
	var center *lineage.AssetRecord
	if raw == nil || raw.GuidEntityMap[guid] == nil {
		center, err = s.catalog.FetchAsset(ctx, guid)
		if err != nil {
			s.logger.Warn("center asset fetch failed",
				logging.Guid(guid), logging.Error(err))
		}
	}

	graph := s.builder.Build(center, raw, direction, scores)
	graph = lineage.Classify(graph, direction)

	s.registry.RecordGraphBuild(string(direction), len(graph.Nodes), len(graph.Edges), time.Since(start))
	return graph, nil
}
