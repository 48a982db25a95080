package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/partdex/partdex/internal/domain"
	"github.com/partdex/partdex/internal/domain/intent"
	"github.com/partdex/partdex/internal/domain/learning"
	"github.com/partdex/partdex/internal/metrics"
)

// Enhancer asks an OpenAI-compatible chat model to re-read the query and
// return a structured intent. It is a recall booster on top of the local
// parser, never ground truth: any failure is reported as an error and the
// caller falls back to the local intent.
type Enhancer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// Config holds the chat model settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewEnhancer creates an OpenAI-compatible enhancer. A missing API key is a
// valid state: the returned enhancer reports Enabled() == false and the
// parse path short-circuits to local-only.
func NewEnhancer(cfg *Config) *Enhancer {
	if cfg.APIKey == "" {
		return &Enhancer{model: cfg.Model, logger: cfg.Logger}
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Enhancer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// Enabled reports whether credentials were configured.
func (e *Enhancer) Enabled() bool {
	return e.client != nil
}

// Enhance implements the query.Enhancer contract. The returned intent is
// decoded leniently from the model output; structural repair is attempted
// before giving up.
func (e *Enhancer) Enhance(
	ctx context.Context, rawQuery string, local intent.Intent, learned learning.Context,
) (*intent.Intent, error) {
	if !e.Enabled() {
		metrics.EnhancerRequestsTotal.WithLabelValues(e.model, "disabled").Inc()
		return nil, domain.ErrEnhancerDisabled
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(learned)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(rawQuery, local)},
		},
		Temperature: 0,
	}

	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.EnhancerRequestsTotal.WithLabelValues(e.model, "error").Inc()
		return nil, parseAPIError(err)
	}

	metrics.EnhancerRequestDuration.WithLabelValues(e.model).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.EnhancerTokensTotal.WithLabelValues(e.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.EnhancerTokensTotal.WithLabelValues(e.model, "completion").Add(float64(resp.Usage.CompletionTokens))
		metrics.EnhancerTokensTotal.WithLabelValues(e.model, "total").Add(float64(resp.Usage.TotalTokens))
		domain.UsageFromContext(ctx).AddTokens(resp.Usage.TotalTokens)
	}

	if len(resp.Choices) == 0 {
		metrics.EnhancerRequestsTotal.WithLabelValues(e.model, "error").Inc()
		return nil, fmt.Errorf("empty completion response: %w", domain.ErrEnhancerFailed)
	}

	enhanced, err := decodeIntent(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.EnhancerRequestsTotal.WithLabelValues(e.model, "error").Inc()
		e.logger.Warn("enhancer response not decodable",
			zap.String("model", e.model), zap.Error(err))
		return nil, fmt.Errorf("decode completion: %w: %w", err, domain.ErrEnhancerFailed)
	}

	metrics.EnhancerRequestsTotal.WithLabelValues(e.model, "success").Inc()
	return enhanced, nil
}

// decodeIntent parses the model output into an intent. The model is asked
// for bare JSON but routinely wraps it in prose or code fences.
func decodeIntent(raw string) (*intent.Intent, error) {
	var it intent.Intent
	if err := DecodeLenient(raw, &it); err != nil {
		return nil, err
	}
	if !it.Confidence.IsValid() {
		it.Confidence = ""
	}
	if !it.Condition.IsValid() {
		it.Condition = intent.ConditionAny
	}
	if !it.SortPreference.IsValid() {
		it.SortPreference = ""
	}
	return &it, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrEnhancerFailed.
func parseAPIError(err error) error {
	wrap := domain.ErrEnhancerFailed

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("enhancer API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("enhancer API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("enhancer API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("enhancer request failed: %w: %w", err, wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
