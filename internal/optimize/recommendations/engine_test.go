package recommendations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-optimizer/internal/optimize/readability"
	"content-optimizer/internal/optimize/seo"
	"content-optimizer/internal/optimize/textparse"
	"content-optimizer/internal/optimize/topic"
)

// healthyInput triggers no rule: grade on target, short active sentences,
// one h1 with h2 sections, long diverse content.
func healthyInput() Input {
	return Input{
		Doc: &textparse.Document{},
		Readability: readability.Metrics{
			FleschKincaidGrade:  8,
			AvgSentenceLength:   15,
			PassiveVoicePercent: 5,
		},
		SEO: seo.Metrics{
			HeadingStructure: seo.HeadingStructure{H1Count: 1, H2Count: 2, ProperHierarchy: true},
			ContentLength:    500,
			KeywordDensity:   []seo.Keyword{{Word: "alpha", Count: 5, Density: 2}},
		},
		Topic: topic.Metrics{
			CoverageScore:    90,
			LexicalDiversity: 0.7,
			TotalWords:       400,
		},
		TargetGrade: 8,
	}
}

func TestGenerateHealthyContentYieldsNothing(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	assert.Empty(t, engine.Generate(healthyInput()))
}

func TestGenerateIsDeterministic(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	in := healthyInput()
	in.Readability.FleschKincaidGrade = 14
	in.Readability.PassiveVoicePercent = 40
	in.SEO.HeadingStructure = seo.HeadingStructure{H1Count: 3}
	in.SEO.ContentLength = 100

	first := engine.Generate(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Generate(in))
	}
}

func TestGenerateDeduplicatesByType(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	in := healthyInput()
	in.Readability.PassiveVoicePercent = 40 // only the high tier may survive

	recs := engine.Generate(in)

	count := 0
	for _, r := range recs {
		if r.Type == "passive_voice" {
			count++
			assert.Equal(t, PriorityHigh, r.Priority)
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerateNoDuplicateTypesUnderPressure(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	in := Input{
		Doc: &textparse.Document{},
		Readability: readability.Metrics{
			FleschKincaidGrade:  16,
			AvgSentenceLength:   32,
			PassiveVoicePercent: 45,
		},
		SEO: seo.Metrics{
			HeadingStructure: seo.HeadingStructure{H1Count: 0},
			ContentLength:    80,
			KeywordDensity:   []seo.Keyword{{Word: "spam", Count: 9, Density: 11}},
		},
		Topic: topic.Metrics{
			CoverageScore:    40,
			LexicalDiversity: 0.2,
			TotalWords:       80,
		},
		TargetGrade: 8,
	}

	recs := engine.Generate(in)
	require.NotEmpty(t, recs)

	seen := make(map[string]bool)
	for _, r := range recs {
		assert.False(t, seen[r.Type], "duplicate type %s", r.Type)
		seen[r.Type] = true
	}
}

func TestGenerateSortsHighToLow(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	in := healthyInput()
	in.Readability.FleschKincaidGrade = 14   // high
	in.Readability.AvgSentenceLength = 30    // medium
	in.Topic.LexicalDiversity = 0.3          // low
	in.Readability.PassiveVoicePercent = 2.0 // quiet

	recs := engine.Generate(in)
	require.NotEmpty(t, recs)

	rank := map[string]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, rank[recs[i-1].Priority], rank[recs[i].Priority],
			"recommendations out of order at %d", i)
	}
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, PriorityLow, recs[len(recs)-1].Priority)
}

func TestZeroThresholdsFallBackToDefaults(t *testing.T) {
	engine := NewEngine(Thresholds{})
	assert.Empty(t, engine.Generate(healthyInput()))
}

func TestRuleTableTierOrderSupportsDedup(t *testing.T) {
	engine := NewEngine(DefaultThresholds())
	tierSeen := make(map[string]string)
	rank := map[string]int{PriorityHigh: 3, PriorityMedium: 2, PriorityLow: 1}
	for _, rule := range engine.Rules() {
		if prev, ok := tierSeen[rule.Type]; ok {
			assert.Greater(t, rank[prev], rank[rule.Priority],
				"type %s must list higher tiers first", rule.Type)
		}
		tierSeen[rule.Type] = rule.Priority
	}
}
