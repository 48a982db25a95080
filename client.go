// Package partdex embeds the parts query engine in a Go program without
// running the HTTP server: connect to Redis, ingest price lists, parse
// queries and filter inventory.
package partdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/db"
	dbRedis "github.com/partdex/partdex/internal/db/redis"
	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/trace"
	"github.com/partdex/partdex/internal/ingest"
	"github.com/partdex/partdex/internal/repository/enhcache"
	learningrepo "github.com/partdex/partdex/internal/repository/learning"
	partsrepo "github.com/partdex/partdex/internal/repository/parts"
	openaiEnh "github.com/partdex/partdex/internal/transport/openai"
	"github.com/partdex/partdex/internal/usecase/enhance"
	queryuc "github.com/partdex/partdex/internal/usecase/query"
)

const defaultReadinessTimeout = 10 * time.Second

// Public aliases for the engine's result types.
type (
	// Intent is the structured interpretation of a free-text query.
	Intent = intent.Intent
	// Part is a single inventory record.
	Part = domain.Part
	// Trace explains what each filter stage did.
	Trace = trace.Trace
	// IngestReport summarizes a price-list directory run.
	IngestReport = ingest.Report
)

// Client is the partdex SDK entry point.
type Client struct {
	store    db.Store
	query    *queryuc.Service
	parts    *partsrepo.Repo
	ingestor *ingest.Ingestor
}

// New creates a partdex Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		enhancerTimeout: queryuc.DefaultEnhancerTimeout,
		logger:          zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("partdex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("partdex: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("partdex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	partsRepo := partsrepo.New(store)
	learningRepo := learningrepo.New(store)

	enhancer := openaiEnh.NewEnhancer(&openaiEnh.Config{
		APIKey:  cfg.enhancerAPIKey,
		BaseURL: cfg.enhancerBaseURL,
		Model:   cfg.enhancerModel,
		Logger:  cfg.logger,
	})

	// Identical queries within the cache TTL skip the model call.
	var queryEnhancer queryuc.Enhancer = enhancer
	if enhancer.Enabled() {
		queryEnhancer = enhcache.New(
			enhancer, store, cfg.enhancerModel, enhcache.DefaultTTL, nil, cfg.logger,
		)
		if cfg.enhancerDailyTokens > 0 || cfg.enhancerMonthlyTokens > 0 {
			tracker := enhance.NewBudgetTracker(
				cfg.enhancerDailyTokens, cfg.enhancerMonthlyTokens,
				enhance.BudgetActionReject, cfg.logger,
			)
			queryEnhancer = enhance.NewInstrumentedEnhancer(queryEnhancer, cfg.enhancerModel, tracker, cfg.logger)
		}
	}

	querySvc := queryuc.New(queryEnhancer, learningRepo, partsRepo, cfg.enhancerTimeout, cfg.logger)

	return &Client{
		store:    store,
		query:    querySvc,
		parts:    partsRepo,
		ingestor: ingest.New(partsRepo, cfg.logger),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// ParseIntent parses a free-text query into a structured intent. It never
// fails: enhancer problems degrade to the local parse.
func (c *Client) ParseIntent(ctx context.Context, query string) Intent {
	return c.query.ParseIntent(ctx, query)
}

// Search parses the query and filters the stored inventory against it.
func (c *Client) Search(ctx context.Context, query string) (Intent, []Part, Trace, error) {
	return c.query.Search(ctx, query)
}

// PutParts stores inventory records in batches.
func (c *Client) PutParts(ctx context.Context, parts []Part) error {
	if err := c.parts.PutBatch(ctx, parts); err != nil {
		return fmt.Errorf("put parts: %w", err)
	}
	return nil
}

// GetPart returns one stored part. Returns an error wrapping
// domain.ErrPartNotFound when absent.
func (c *Client) GetPart(ctx context.Context, stockCode, partNumber string) (Part, error) {
	return c.parts.Get(ctx, stockCode, partNumber)
}

// DeletePart removes one stored part.
func (c *Client) DeletePart(ctx context.Context, stockCode, partNumber string) error {
	return c.parts.Delete(ctx, stockCode, partNumber)
}

// IngestDir loads every CSV price list in dir into the store.
func (c *Client) IngestDir(ctx context.Context, dir string) (IngestReport, error) {
	return c.ingestor.IngestDir(ctx, dir)
}
