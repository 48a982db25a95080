package query

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/filter"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
	"github.com/partdex/partdex/internal/domain/trace"
	"github.com/partdex/partdex/internal/extract"
	"github.com/partdex/partdex/internal/metrics"
	"github.com/partdex/partdex/internal/normalize"
)

// DefaultEnhancerTimeout bounds the enhancer race when the config does not
// name a timeout.
const DefaultEnhancerTimeout = 12 * time.Second

// Service turns free-text queries into structured intents and filters
// candidate records against them.
type Service struct {
	enhancer Enhancer
	learning LearningStore
	parts    PartSource
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a query service. enhancer and learn may be nil; the service
// then runs local-only.
func New(enhancer Enhancer, learn LearningStore, parts PartSource, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultEnhancerTimeout
	}
	return &Service{
		enhancer: enhancer,
		learning: learn,
		parts:    parts,
		timeout:  timeout,
		logger:   logger,
	}
}

// ParseIntent parses a query into a structured intent. It always resolves:
// any enhancer failure degrades to the local parse, never to an error.
func (s *Service) ParseIntent(ctx context.Context, rawQuery string) intent.Intent {
	start := time.Now()

	norm := normalize.Normalize(rawQuery)
	local := extract.Extract(norm.Canonical, norm.Original, norm.Language)

	enhanced := s.raceEnhancer(ctx, rawQuery, local)
	merged := mergeIntents(local, enhanced)

	metrics.ParseDuration.Observe(time.Since(start).Seconds())
	metrics.ParseConfidenceTotal.WithLabelValues(string(merged.Confidence)).Inc()

	s.logger.Debug("intent parsed",
		zap.String("language", string(merged.Language)),
		zap.String("confidence", string(merged.Confidence)),
		zap.Bool("enhanced", enhanced != nil),
		zap.Duration("took", time.Since(start)))

	return merged
}

// Search parses the query, loads the candidate set and filters it.
func (s *Service) Search(ctx context.Context, rawQuery string) (intent.Intent, []domain.Part, trace.Trace, error) {
	it := s.ParseIntent(ctx, rawQuery)

	candidates, err := s.parts.List(ctx)
	if err != nil {
		return it, nil, trace.Trace{}, fmt.Errorf("list parts: %w", err)
	}

	matching, tr := s.Filter(candidates, &it)
	return it, matching, tr, nil
}

// Filter runs the deterministic pipeline and records its metrics.
func (s *Service) Filter(candidates []domain.Part, it *intent.Intent) ([]domain.Part, trace.Trace) {
	matching, tr := filter.Filter(candidates, it)

	metrics.FilterDuration.Observe(float64(tr.FilterTimeMs) / 1000)
	for _, stage := range tr.Stages {
		if dropped := stage.Before - stage.After; dropped > 0 {
			metrics.FilterExcludedTotal.WithLabelValues(stage.Name).Add(float64(dropped))
		}
	}
	return matching, tr
}

// raceEnhancer runs the enhancer against a hard timeout, first settled
// wins. The loser is abandoned, not cancelled: the call is simply no
// longer awaited. Every failure path returns nil.
func (s *Service) raceEnhancer(ctx context.Context, rawQuery string, local intent.Intent) *intent.Intent {
	if s.enhancer == nil || !s.enhancer.Enabled() {
		return nil
	}

	learned := s.learnedContext(ctx, rawQuery)

	ch := make(chan *intent.Intent, 1)
	go func() {
		enhanced, err := s.enhancer.Enhance(ctx, rawQuery, local, learned)
		if err != nil {
			s.logger.Warn("enhancer failed, using local intent", zap.Error(err))
			ch <- nil
			return
		}
		ch <- enhanced
	}()

	select {
	case enhanced := <-ch:
		if enhanced != nil {
			s.recordOutcome(rawQuery, enhanced)
		}
		return enhanced
	case <-time.After(s.timeout):
		s.logger.Warn("enhancer timed out, using local intent",
			zap.Duration("timeout", s.timeout))
		return nil
	case <-ctx.Done():
		return nil
	}
}

// recordOutcome saves the enhancer's summary as a hint for future queries
// of the same shape. Runs off the request path; failures are logged only.
func (s *Service) recordOutcome(rawQuery string, enhanced *intent.Intent) {
	if s.learning == nil {
		return
	}
	hint := enhanced.Summary
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.learning.RecordOutcome(ctx, rawQuery, hint); err != nil {
			s.logger.Debug("record outcome failed", zap.Error(err))
		}
	}()
}

// learnedContext reads the learning collaborator; failure is silently an
// empty context.
func (s *Service) learnedContext(ctx context.Context, rawQuery string) learning.Context {
	if s.learning == nil {
		return learning.Context{}
	}
	learned, err := s.learning.LearnedContext(ctx, rawQuery)
	if err != nil {
		s.logger.Debug("learned context unavailable", zap.Error(err))
		return learning.Context{}
	}
	return learned
}
