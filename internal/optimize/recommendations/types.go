package recommendations

import (
	"content-optimizer/internal/optimize/readability"
	"content-optimizer/internal/optimize/seo"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/optimize/topic"
)

// Priorities, highest first.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is one actionable suggestion. Type tags are unique within a
// report.
type Recommendation struct {
	Type         string   `json:"type"`
	Priority     string   `json:"priority"`
	Message      string   `json:"message"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`
}

// Input is everything a rule predicate may consult.
type Input struct {
	Doc         *textparse.Document
	Readability readability.Metrics
	SEO         seo.Metrics
	Topic       topic.Metrics
	TargetGrade int
}

// Thresholds are the calibration constants behind the rule set. They are
// documented defaults, not hard physics; tests may tighten or loosen them.
type Thresholds struct {
	GradeDeviation      float64 // readability_gap triggers beyond this
	AvgSentenceLength   float64 // words
	PassiveHighPct      float64
	PassiveMediumPct    float64
	KeywordDensityMax   float64 // % before an over-optimization warning
	MinContentWords     int
	MinCoverageScore    float64
	MinLexicalDiversity float64
}

// DefaultThresholds returns the calibration carried over from the original
// rule set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GradeDeviation:      2,
		AvgSentenceLength:   25,
		PassiveHighPct:      20,
		PassiveMediumPct:    10,
		KeywordDensityMax:   5,
		MinContentWords:     300,
		MinCoverageScore:    70,
		MinLexicalDiversity: 0.5,
	}
}

func ptr(v float64) *float64 { return &v }
