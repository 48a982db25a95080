// Package parts persists inventory records as Redis hashes, one hash per
// part keyed by stock code and part number.
package parts

import (
	"context"
	"fmt"
	"strings"

	"github.com/partdex/partdex/internal/db"
	"github.com/partdex/partdex/internal/domain"
)

// store is the consumer interface for parts (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

const keyPrefix = domain.KeyPrefix + "parts:"

// batchSize bounds a single DoMulti round-trip during ingestion.
const batchSize = 500

// Repo implements usecase/query.PartSource and the ingestion sink.
type Repo struct {
	store store
}

// New creates a parts repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Put stores one part.
func (r *Repo) Put(ctx context.Context, p *domain.Part) error {
	if err := r.store.HSet(ctx, partKey(p), toFields(p)); err != nil {
		return fmt.Errorf("hset %s: %w", partKey(p), err)
	}
	return nil
}

// PutBatch stores parts in pipelined chunks.
func (r *Repo) PutBatch(ctx context.Context, ps []domain.Part) error {
	for start := 0; start < len(ps); start += batchSize {
		end := start + batchSize
		if end > len(ps) {
			end = len(ps)
		}
		items := make([]db.HashSetItem, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, db.HashSetItem{Key: partKey(&ps[i]), Fields: toFields(&ps[i])})
		}
		if err := r.store.HSetMulti(ctx, items); err != nil {
			return fmt.Errorf("hset batch at %d: %w", start, err)
		}
	}
	return nil
}

// Get returns one part by stock code and part number.
func (r *Repo) Get(ctx context.Context, stockCode, partNumber string) (domain.Part, error) {
	key := keyFor(stockCode, partNumber)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domain.Part{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return domain.Part{}, domain.ErrPartNotFound
	}
	return fromFields(fields), nil
}

// List returns every stored part. The candidate set feeds the filter
// pipeline, which expects the full inventory.
func (r *Repo) List(ctx context.Context) ([]domain.Part, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan parts: %w", err)
	}
	if len(keys) == 0 {
		return []domain.Part{}, nil
	}

	out := make([]domain.Part, 0, len(keys))
	for start := 0; start < len(keys); start += batchSize {
		end := start + batchSize
		if end > len(keys) {
			end = len(keys)
		}
		maps, err := r.store.HGetAllMulti(ctx, keys[start:end])
		if err != nil {
			return nil, fmt.Errorf("hgetall batch at %d: %w", start, err)
		}
		for _, m := range maps {
			if len(m) == 0 {
				continue
			}
			out = append(out, fromFields(m))
		}
	}
	return out, nil
}

// Delete removes one part.
func (r *Repo) Delete(ctx context.Context, stockCode, partNumber string) error {
	key := keyFor(stockCode, partNumber)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrPartNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

func partKey(p *domain.Part) string {
	return keyFor(p.StockCode, p.PartNumber)
}

func keyFor(stockCode, partNumber string) string {
	// Part numbers may themselves contain colons; normalize them out so
	// the key structure stays parseable.
	pn := strings.ReplaceAll(partNumber, ":", "_")
	if stockCode == "" {
		stockCode = "default"
	}
	return keyPrefix + stockCode + ":" + pn
}
