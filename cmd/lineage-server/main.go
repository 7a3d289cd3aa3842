package main

import (
	"flag"
	"os"
	"time"

	"github.com/catalogops/lineage-engine/pkg/api"
	"github.com/catalogops/lineage-engine/pkg/catalog"
	"github.com/catalogops/lineage-engine/pkg/config"
	"github.com/catalogops/lineage-engine/pkg/logging"
	"github.com/catalogops/lineage-engine/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.NewDefaultLogger().Error("config load failed", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.Logging.Level))
	logger.Info("lineage engine starting",
		logging.String("addr", cfg.Server.Addr),
		logging.String("catalog", cfg.Catalog.BaseURL))

	if cfg.Catalog.BaseURL == "" {
		logger.Error("catalog base URL is required (CATALOG_BASE_URL or config file)")
		os.Exit(1)
	}

	cache := catalog.NewResultCache(cfg.Cache.MaxSize, cfg.Cache.TTL)
	client := catalog.NewClient(catalog.ClientConfig{
		BaseURL:          cfg.Catalog.BaseURL,
		APIKey:           cfg.Catalog.APIKey,
		Timeout:          cfg.Catalog.Timeout,
		FetchConcurrency: cfg.Catalog.FetchConcurrency,
	}, cache, logger)

	apiServer, err := api.NewServer(cfg, client, logger)
	if err != nil {
		logger.Error("server init failed", logging.Error(err))
		os.Exit(1)
	}

	gs := server.NewGracefulServer(apiServer.HTTPServer(), cfg.Server.ShutdownTimeout, logger)
	start := time.Now()
	if err := gs.Start(); err != nil {
		logger.Error("server failed", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("lineage engine stopped", logging.Duration("uptime", time.Since(start)))
}
