package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/cv-composer/internal/cache"
	"github.com/jonathan/cv-composer/internal/config"
	"github.com/jonathan/cv-composer/internal/corpus"
	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/llm"
	"github.com/jonathan/cv-composer/internal/observability"
	"github.com/jonathan/cv-composer/internal/retrieval"
)

// resolveConfig merges flag values over an optional config file, falls back
// to environment variables for secrets, and fills remaining defaults.
// Flag values win over the file; the file wins over built-in defaults.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	cfg := flags

	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		cfg.Verbose = cfg.Verbose || loaded.Verbose
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		EmbeddingModel:  embedding.DefaultEmbeddingModel,
		GenerationModel: llm.DefaultGenerationModel,
		TopK:            retrieval.DefaultTopK,
		CandidateCap:    corpus.DefaultCandidateCap,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtime bundles the connected backends a command needs.
type runtime struct {
	cfg      config.Config
	pool     *pgxpool.Pool
	embedder *embedding.GeminiEmbedder
	store    *corpus.PostgresStore
	cache    *cache.PostgresStore
	engine   *retrieval.Engine
	printer  *observability.Printer
}

// newRuntime connects the embedder and database backends from config.
// Callers must Close the returned runtime.
func newRuntime(ctx context.Context, cfg config.Config) (*runtime, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		embedder.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		embedder.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := corpus.NewPostgresStore(pool)
	cacheStore := cache.NewPostgresStore(pool)
	engine := retrieval.NewEngine(embedder, store,
		retrieval.WithCache(cacheStore),
		retrieval.WithCandidateCap(cfg.CandidateCap),
	)

	return &runtime{
		cfg:      cfg,
		pool:     pool,
		embedder: embedder,
		store:    store,
		cache:    cacheStore,
		engine:   engine,
		printer:  observability.NewPrinter(os.Stdout),
	}, nil
}

// Close releases the runtime's backends.
func (rt *runtime) Close() {
	if rt.embedder != nil {
		_ = rt.embedder.Close()
	}
	if rt.pool != nil {
		rt.pool.Close()
	}
}
