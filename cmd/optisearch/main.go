// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	optisearch "github.com/Sanjay1766/OptiSearch-AI"
	"github.com/Sanjay1766/OptiSearch-AI/config"
	"github.com/Sanjay1766/OptiSearch-AI/corpus"
	"github.com/Sanjay1766/OptiSearch-AI/geo"
	"github.com/Sanjay1766/OptiSearch-AI/search"
	"github.com/Sanjay1766/OptiSearch-AI/server"
	"github.com/Sanjay1766/OptiSearch-AI/storage"
	"github.com/Sanjay1766/OptiSearch-AI/storage/badger"
	"github.com/Sanjay1766/OptiSearch-AI/tfidf"
)

func main() {
	app := &cli.App{
		Name:  "optisearch",
		Usage: "Internship search with TF-IDF ranking and geolocation filtering",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the search API over HTTP, configured from the environment",
				Action: serveCommand,
			},
			{
				Name:   "build",
				Usage:  "Build the vector model and save a snapshot without serving",
				Action: buildCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data",
						Usage: "Path to the internship CSV (overrides DATA_PATH)",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the snapshot database directory (overrides SNAPSHOT_DIR)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a one-shot query against the CSV corpus",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data",
						Usage: "Path to the internship CSV (overrides DATA_PATH)",
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Narrow results to a place",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum results to print",
						Value:   10,
					},
				},
			},
			{
				Name:   "locations",
				Usage:  "Print the known places and what lies near each",
				Action: locationsCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "radius",
						Usage: "Neighborhood radius in kilometers",
						Value: geo.DefaultRadiusKm,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("starting internship search service",
		"http_port", cfg.HTTPPort,
		"data", cfg.DataPath,
		"snapshot_dir", cfg.SnapshotDir,
	)

	corp, err := corpus.Load(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	var store storage.SnapshotStore
	if cfg.SnapshotInMemory {
		store, err = badger.NewMemorySnapshotStore()
	} else {
		store, err = badger.NewSnapshotStore(cfg.SnapshotDir)
	}
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}

	system, err := newSystem(corp, cfg, store)
	if err != nil {
		store.Close()
		return err
	}
	defer system.Close()

	if err := system.Bootstrap(context.Background()); err != nil {
		return fmt.Errorf("failed to bootstrap search system: %w", err)
	}

	srv, err := server.New(system, server.Config{
		Port:           cfg.HTTPPort,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func buildCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if path := c.String("data"); path != "" {
		cfg.DataPath = path
	}
	if dir := c.String("db"); dir != "" {
		cfg.SnapshotDir = dir
	}

	corp, err := corpus.Load(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	store, err := badger.NewSnapshotStore(cfg.SnapshotDir)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}

	system, err := newSystem(corp, cfg, store)
	if err != nil {
		store.Close()
		return err
	}
	defer system.Close()

	if err := system.Rebuild(context.Background()); err != nil {
		return fmt.Errorf("model build failed: %w", err)
	}

	health := system.Health()
	fmt.Fprintf(os.Stderr, "Records: %d\n", health.TotalRecords)
	fmt.Fprintf(os.Stderr, "Vocabulary: %d terms\n", health.VocabularySize)
	fmt.Fprintf(os.Stderr, "Snapshot saved under %s\n", cfg.SnapshotDir)
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if path := c.String("data"); path != "" {
		cfg.DataPath = path
	}

	corp, err := corpus.Load(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	system, err := newSystem(corp, cfg, nil)
	if err != nil {
		return err
	}
	defer system.Close()

	ctx := context.Background()
	if err := system.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to bootstrap search system: %w", err)
	}

	results, err := system.Search(ctx, optisearch.SearchQuery{
		Query:    query,
		Location: c.String("location"),
		TopK:     c.Int("top-k"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		t := hit.Internship
		fmt.Printf("%d: '%s' at %s in %s (%d)[%0.3f]\n", i, t.Title, t.Company, t.Location, t.Id, hit.Score)
	}
	return nil
}

func locationsCommand(c *cli.Context) error {
	registry, err := geo.NewRegistry()
	if err != nil {
		return err
	}
	filter, err := geo.NewProximityFilter(registry)
	if err != nil {
		return err
	}

	radius := c.Float64("radius")
	for _, name := range registry.Places() {
		coord, _ := registry.Lookup(name)
		fmt.Printf("%s (%.4f, %.4f)\n", name, coord.Latitude, coord.Longitude)
		for _, p := range filter.NearbyPlaces(name, radius) {
			fmt.Printf("  %s %.1f km\n", p.Name, p.DistanceKm)
		}
	}
	return nil
}

// newSystem assembles a search system from the loaded configuration. A nil
// store disables snapshot persistence.
func newSystem(corp *corpus.Corpus, cfg *config.Config, store storage.SnapshotStore) (*optisearch.System, error) {
	opts := []optisearch.SystemOption{
		optisearch.WithCacheTTL(cfg.CacheTTL),
		optisearch.WithDefaultRadius(cfg.DefaultRadiusKm),
		optisearch.WithEngineOptions(
			search.WithModelOptions(tfidf.WithMaxFeatures(cfg.MaxFeatures)),
		),
	}
	if store != nil {
		opts = append(opts, optisearch.WithSnapshotStore(store))
	}

	system, err := optisearch.NewSystem(corp, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build search system: %w", err)
	}
	return system, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
