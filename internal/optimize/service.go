// Package optimize is the content analysis domain: it parses the input,
// fans out across the analyzers, folds the metrics into composite scores,
// and produces the ranked recommendation list.
package optimize

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"content-optimizer/internal/optimize/readability"
	"content-optimizer/internal/optimize/recommendations"
	"content-optimizer/internal/optimize/scoring"
	"content-optimizer/internal/optimize/seo"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/optimize/tone"
	"content-optimizer/internal/optimize/topic"
	"content-optimizer/internal/shared/metrics"
	"content-optimizer/internal/shared/telemetry"
)

// Service contains the analysis business logic.
type Service struct {
	Parser *textparse.Parser
	Engine *recommendations.Engine
}

// NewService constructs a Service with the default rule thresholds.
func NewService(parser *textparse.Parser) *Service {
	return &Service{
		Parser: parser,
		Engine: recommendations.NewEngine(recommendations.DefaultThresholds()),
	}
}

// Analyze runs one full analysis call: validate targets, parse, run the four
// analyzers concurrently over the immutable document, then score and derive
// recommendations once all have joined. The call is pure apart from
// telemetry; identical input yields an identical result.
func (s *Service) Analyze(ctx context.Context, content string, params TargetParameters) (Result, error) {
	start := time.Now()
	metrics.IncOptimizeRequests()

	params, err := ValidateTargets(params)
	if err != nil {
		metrics.IncOptimizeFailed()
		return Result{}, err
	}

	doc, err := s.Parser.Parse(ctx, content)
	if err != nil {
		metrics.IncOptimizeFailed()
		return Result{}, err
	}

	var (
		readMetrics  readability.Metrics
		seoMetrics   seo.Metrics
		toneResult   tone.Result
		topicMetrics topic.Metrics
	)

	// The analyzers share the read-only document; the group Wait is the
	// barrier before scoring.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		readMetrics = readability.Analyze(doc)
		return nil
	})
	g.Go(func() error {
		seoMetrics = seo.Analyze(doc)
		return nil
	})
	g.Go(func() error {
		toneResult = tone.Analyze(doc)
		return nil
	})
	g.Go(func() error {
		topicMetrics = topic.Analyze(doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.IncOptimizeFailed()
		return Result{}, err
	}

	bundle := MetricsBundle{
		Readability:   readMetrics,
		SEO:           seoMetrics,
		Tone:          toneResult,
		TopicCoverage: topicMetrics,
		Structure: StructureMetrics{
			SentenceCount:  doc.SentenceCount(),
			ParagraphCount: doc.ParagraphCount(),
			WordCount:      doc.WordCount(),
			Entities:       doc.Entities,
			Headings:       doc.Headings,
		},
	}

	scores := scoring.Compute(doc, readMetrics, seoMetrics, topicMetrics, params.TargetReadability)

	recs := s.Engine.Generate(recommendations.Input{
		Doc:         doc,
		Readability: readMetrics,
		SEO:         seoMetrics,
		Topic:       topicMetrics,
		TargetGrade: params.TargetReadability,
	})

	report := Report{
		ID:           uuid.NewString(),
		Scores:       scores,
		Analysis:     bundle,
		TargetParams: params,
	}

	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveOptimizeDurationMs(durationMs)
	telemetry.Info("analysis.complete", map[string]any{
		"report_id":       report.ID,
		"word_count":      doc.WordCount(),
		"sentence_count":  doc.SentenceCount(),
		"recommendations": len(recs),
		"duration_ms":     durationMs,
	})

	return Result{Report: report, Recommendations: recs}, nil
}
