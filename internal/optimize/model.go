package optimize

import (
	"content-optimizer/internal/optimize/readability"
	"content-optimizer/internal/optimize/recommendations"
	"content-optimizer/internal/optimize/scoring"
	"content-optimizer/internal/optimize/seo"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/optimize/tone"
	"content-optimizer/internal/optimize/topic"
)

// TargetParameters are the caller-supplied optimization targets.
type TargetParameters struct {
	TargetAudience    string `json:"target_audience"`
	TargetReadability int    `json:"target_readability"`
	TargetTone        string `json:"target_tone"`
	OptimizationGoal  string `json:"optimization_goal"`
}

// StructureMetrics is the structural sub-bundle of the analysis result.
type StructureMetrics struct {
	SentenceCount  int                 `json:"sentence_count"`
	ParagraphCount int                 `json:"paragraph_count"`
	WordCount      int                 `json:"word_count"`
	Entities       []textparse.Entity  `json:"entities"`
	Headings       []textparse.Heading `json:"headings"`
}

// MetricsBundle bundles every analyzer's output for one analysis call. It is
// produced once and read-only afterwards.
type MetricsBundle struct {
	Readability   readability.Metrics `json:"readability"`
	SEO           seo.Metrics         `json:"seo"`
	Tone          tone.Result         `json:"tone"`
	TopicCoverage topic.Metrics       `json:"topic_coverage"`
	Structure     StructureMetrics    `json:"structure"`
}

// Report is the complete, immutable output of one analysis call.
type Report struct {
	ID           string           `json:"id"`
	Scores       scoring.ScoreSet `json:"scores"`
	Analysis     MetricsBundle    `json:"analysis"`
	TargetParams TargetParameters `json:"target_params"`
}

// Result pairs a report with its recommendation list for the HTTP response.
type Result struct {
	Report          Report
	Recommendations []recommendations.Recommendation
}
