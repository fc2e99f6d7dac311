package recommendations

import (
	"fmt"
	"math"
)

// ruleTable is the fixed, ordered rule set. Order matters twice: evaluation
// order is preserved within a priority tier, and a type's higher-priority
// tier must precede its lower one so dedupe keeps the stronger finding.
func ruleTable() []Rule {
	return []Rule{
		{
			Type:     "readability_gap",
			Priority: PriorityHigh,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				grade := in.Readability.FleschKincaidGrade
				deviation := math.Abs(grade - float64(in.TargetGrade))
				if deviation <= t.GradeDeviation {
					return false, Recommendation{}
				}
				direction := "Shorten sentences and use simpler words."
				if grade < float64(in.TargetGrade) {
					direction = "Use richer vocabulary and more developed sentences."
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Reading grade is %.1f but the target is %d. %s",
						grade, in.TargetGrade, direction),
					CurrentValue: ptr(round1(grade)),
					TargetValue:  ptr(float64(in.TargetGrade)),
				}
			},
		},
		{
			Type:     "sentence_length",
			Priority: PriorityMedium,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				avg := in.Readability.AvgSentenceLength
				if avg <= t.AvgSentenceLength {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Average sentence length is %.1f words. Aim for %d words or fewer per sentence.",
						avg, int(t.AvgSentenceLength)),
					CurrentValue: ptr(round1(avg)),
					TargetValue:  ptr(t.AvgSentenceLength),
				}
			},
		},
		{
			Type:     "passive_voice",
			Priority: PriorityHigh,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				pct := in.Readability.PassiveVoicePercent
				if pct <= t.PassiveHighPct {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Passive voice appears in %.1f%% of sentences. Rewrite most of them in active voice.",
						pct),
					CurrentValue: ptr(round1(pct)),
					TargetValue:  ptr(t.PassiveMediumPct),
				}
			},
		},
		{
			Type:     "passive_voice",
			Priority: PriorityMedium,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				pct := in.Readability.PassiveVoicePercent
				if pct <= t.PassiveMediumPct || pct > t.PassiveHighPct {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Passive voice appears in %.1f%% of sentences. Prefer active voice for better engagement.",
						pct),
					CurrentValue: ptr(round1(pct)),
					TargetValue:  ptr(t.PassiveMediumPct),
				}
			},
		},
		{
			Type:     "heading_structure",
			Priority: PriorityHigh,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				hs := in.SEO.HeadingStructure
				switch {
				case hs.H1Count == 0:
					return true, Recommendation{
						Message:      "Missing H1 heading. Add a main title to your content.",
						CurrentValue: ptr(0),
						TargetValue:  ptr(1),
					}
				case hs.H1Count > 1:
					return true, Recommendation{
						Message: fmt.Sprintf("Multiple H1 headings found (%d). Use only one H1 per page.",
							hs.H1Count),
						CurrentValue: ptr(float64(hs.H1Count)),
						TargetValue:  ptr(1),
					}
				case !hs.ProperHierarchy:
					return true, Recommendation{
						Message: "Heading levels are skipped. Nest headings without gaps (H2 before H3).",
					}
				}
				return false, Recommendation{}
			},
		},
		{
			Type:     "subheadings",
			Priority: PriorityMedium,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				if in.SEO.HeadingStructure.H2Count > 0 || in.SEO.ContentLength <= t.MinContentWords {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message:      "No H2 headings found. Add section headings to improve structure and SEO.",
					CurrentValue: ptr(0),
					TargetValue:  ptr(2),
				}
			},
		},
		{
			Type:     "keyword_stuffing",
			Priority: PriorityMedium,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				if len(in.SEO.KeywordDensity) == 0 {
					return false, Recommendation{}
				}
				top := in.SEO.KeywordDensity[0]
				if top.Density <= t.KeywordDensityMax {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Keyword %q density is %.1f%%. Reduce repetition to avoid keyword stuffing.",
						top.Word, top.Density),
					CurrentValue: ptr(round1(top.Density)),
					TargetValue:  ptr(t.KeywordDensityMax),
				}
			},
		},
		{
			Type:     "content_length",
			Priority: PriorityHigh,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				if in.SEO.ContentLength >= t.MinContentWords {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Content is only %d words. Aim for at least %d words for better SEO.",
						in.SEO.ContentLength, t.MinContentWords),
					CurrentValue: ptr(float64(in.SEO.ContentLength)),
					TargetValue:  ptr(float64(t.MinContentWords)),
				}
			},
		},
		{
			Type:     "topic_coverage",
			Priority: PriorityMedium,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				if in.Topic.CoverageScore >= t.MinCoverageScore {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Topic coverage score is %.1f%%. Add more relevant subtopics and keywords.",
						in.Topic.CoverageScore),
					CurrentValue: ptr(round1(in.Topic.CoverageScore)),
					TargetValue:  ptr(t.MinCoverageScore),
				}
			},
		},
		{
			Type:     "lexical_diversity",
			Priority: PriorityLow,
			When: func(in Input, t Thresholds) (bool, Recommendation) {
				if in.Topic.LexicalDiversity >= t.MinLexicalDiversity || in.Topic.TotalWords == 0 {
					return false, Recommendation{}
				}
				return true, Recommendation{
					Message: fmt.Sprintf("Vocabulary diversity is %.2f. Use more varied vocabulary.",
						in.Topic.LexicalDiversity),
					CurrentValue: ptr(round2(in.Topic.LexicalDiversity)),
					TargetValue:  ptr(t.MinLexicalDiversity),
				}
			},
		},
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
