// Package rewrite turns an analysis pass into an AI rewrite plus a bundle
// of marketing assets. Provider failures degrade to placeholders and
// defaults; once analysis has succeeded the endpoint does not fail.
package rewrite

import (
	"context"
	"errors"

	"content-optimizer/internal/llm"
	"content-optimizer/internal/optimize"
	"content-optimizer/internal/optimize/recommendations"
	"content-optimizer/internal/shared/metrics"
	"content-optimizer/internal/shared/telemetry"
)

// ErrDisabled means no generative provider is configured at all; the route
// answers 502 instead of serving placeholders.
var ErrDisabled = errors.New("rewrite is not configured")

// ErrorCodeUnavailable is the machine code for a rewrite hard outage.
const ErrorCodeUnavailable = "REWRITE_UNAVAILABLE"

// Placeholder bodies returned in place of a rewrite when the provider call
// fails. The caller still receives the asset bundle and a 200.
const (
	placeholderUnavailable = "[AI Enhancement: Currently unavailable. Your content analysis is still available above.]"
	placeholderTimeout     = "[AI Enhancement: Request timeout. Please try again with shorter content.]"
)

// Service orchestrates analyze, rewrite, and asset generation.
type Service struct {
	Analyzer *optimize.Service
	Client   llm.Client
	Enabled  bool
}

// NewService constructs a Service. enabled is false when no provider API
// key is configured.
func NewService(analyzer *optimize.Service, client llm.Client, enabled bool) *Service {
	return &Service{Analyzer: analyzer, Client: client, Enabled: enabled}
}

// Output is the result of one rewrite call.
type Output struct {
	Rewritten string
	Assets    llm.AssetBundle
}

// Rewrite analyzes the content, feeds the high and medium priority
// recommendation messages into the rewrite prompt, and generates the asset
// bundle. Validation and empty-content errors surface to the caller; any
// provider failure after that point degrades instead.
func (s *Service) Rewrite(ctx context.Context, content string, params optimize.TargetParameters) (Output, error) {
	if !s.Enabled {
		return Output{}, ErrDisabled
	}
	metrics.IncRewriteRequests()

	result, err := s.Analyzer.Analyze(ctx, content, params)
	if err != nil {
		metrics.IncRewriteFailed()
		return Output{}, err
	}

	targets := llm.TargetParams{
		Audience:    result.Report.TargetParams.TargetAudience,
		Readability: result.Report.TargetParams.TargetReadability,
		Tone:        result.Report.TargetParams.TargetTone,
		Goal:        result.Report.TargetParams.OptimizationGoal,
	}

	rewritten, err := s.Client.Rewrite(ctx, llm.RewriteInput{
		Content:      content,
		Improvements: improvementMessages(result.Recommendations),
		Targets:      targets,
	})
	if err != nil {
		metrics.IncRewriteFailed()
		telemetry.Warn("rewrite.provider.failed", map[string]any{
			"report_id": result.Report.ID,
			"error":     err.Error(),
		})
		rewritten = placeholderFor(err)
	}

	assets, err := s.Client.GenerateAssets(ctx, content, targets)
	if err != nil {
		telemetry.Warn("rewrite.assets.failed", map[string]any{
			"report_id": result.Report.ID,
			"error":     err.Error(),
		})
		assets = llm.DefaultAssets()
	}

	return Output{Rewritten: rewritten, Assets: assets}, nil
}

// improvementMessages selects the messages the rewrite prompt should
// address: high and medium priority, in ranked order.
func improvementMessages(recs []recommendations.Recommendation) []string {
	var msgs []string
	for _, rec := range recs {
		if rec.Priority == recommendations.PriorityHigh || rec.Priority == recommendations.PriorityMedium {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}

func placeholderFor(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return placeholderTimeout
	}
	return placeholderUnavailable
}
