// Package scoring folds the metric bundles into the three composite 0-100
// scores. Each score depends only on metrics, never on another score, and is
// clamped to [0,100].
package scoring

import (
	"math"

	"content-optimizer/internal/optimize/readability"
	"content-optimizer/internal/optimize/seo"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/optimize/topic"
)

// ScoreSet is the composite score triple returned with every report.
type ScoreSet struct {
	ReadabilityScore    float64 `json:"readability_score"`
	SEOScore            float64 `json:"seo_score"`
	ContentQualityScore float64 `json:"content_quality_score"`
}

const (
	gradePenaltyPerLevel = 10.0

	passiveCeiling       = 10.0 // % above which quality decays
	passiveDecayPerPct   = 2.5
	sentenceCeiling      = 25.0 // words above which quality decays
	sentenceDecayPerWord = 4.0

	weightCoverage = 0.50
	weightPassive  = 0.25
	weightSentence = 0.15
	weightRichness = 0.10
)

// Compute derives the score set from the analyzer outputs and the target
// readability grade.
func Compute(doc *textparse.Document, read readability.Metrics, s seo.Metrics, t topic.Metrics, targetGrade int) ScoreSet {
	return ScoreSet{
		ReadabilityScore:    Readability(read.FleschKincaidGrade, targetGrade),
		SEOScore:            SEO(s),
		ContentQualityScore: ContentQuality(doc, read, t),
	}
}

// Readability maps grade distance from target onto [0,100]: ten points per
// grade level of deviation, applied symmetrically, floored at 0.
func Readability(grade float64, targetGrade int) float64 {
	deviation := math.Abs(grade - float64(targetGrade))
	return clamp(100 - deviation*gradePenaltyPerLevel)
}

// SEO starts at 100 and applies fixed bonuses and penalties for heading
// structure, content length, and keyword stuffing.
func SEO(m seo.Metrics) float64 {
	score := 100.0

	switch {
	case m.HeadingStructure.H1Count == 0:
		score -= 20
	case m.HeadingStructure.H1Count > 1:
		score -= 10
	}

	if m.HeadingStructure.H2Count > 0 {
		score += 5
	} else {
		score -= 10
	}

	// hierarchy broken for a reason other than the h1/h2 terms (skipped level)
	if !m.HeadingStructure.ProperHierarchy && m.HeadingStructure.H1Count == 1 && m.HeadingStructure.H2Count > 0 {
		score -= 10
	}

	switch {
	case m.ContentLength < 300:
		score -= 15
	case m.ContentLength > 2000:
		score += 10
	}

	for _, kw := range m.KeywordDensity {
		if kw.Density > 3 {
			score -= 5
		}
	}

	return clamp(score)
}

// ContentQuality blends topic coverage, passive-voice restraint, sentence
// length, and entity/structure richness.
func ContentQuality(doc *textparse.Document, read readability.Metrics, t topic.Metrics) float64 {
	passive := 100.0
	if read.PassiveVoicePercent > passiveCeiling {
		passive = clamp(100 - (read.PassiveVoicePercent-passiveCeiling)*passiveDecayPerPct)
	}

	sentence := 100.0
	if read.AvgSentenceLength > sentenceCeiling {
		sentence = clamp(100 - (read.AvgSentenceLength-sentenceCeiling)*sentenceDecayPerWord)
	}

	richness := float64(len(doc.Entities)) * 10
	if len(doc.Headings) > 0 {
		richness += 20
	}
	richness = clamp(richness)

	score := t.CoverageScore*weightCoverage +
		passive*weightPassive +
		sentence*weightSentence +
		richness*weightRichness
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
