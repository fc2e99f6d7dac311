package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"content-optimizer/internal/optimize/textparse"
)

func TestAnalyzeEmptyDocumentYieldsZeros(t *testing.T) {
	m := Analyze(&textparse.Document{})
	assert.Zero(t, m.FleschKincaidGrade)
	assert.Zero(t, m.FleschReadingEase)
	assert.Zero(t, m.AvgSentenceLength)
	assert.Zero(t, m.PassiveVoicePercent)
	assert.Zero(t, m.WordCount)
}

func TestAnalyzeFleschFormulas(t *testing.T) {
	words := []string{"The", "cat", "sat", "on", "the", "mat", "The", "dog", "ran", "away"}
	normalized := []string{"the", "cat", "sat", "on", "the", "mat", "the", "dog", "ran", "away"}
	doc := &textparse.Document{
		Sentences:  []string{"The cat sat on the mat.", "The dog ran away."},
		Words:      words,
		Normalized: normalized,
	}

	m := Analyze(doc)

	assert.Equal(t, 10, m.WordCount)
	assert.Equal(t, 11, m.SyllableCount) // "away" has two, the rest one
	assert.InDelta(t, 5.0, m.AvgSentenceLength, 0.001)
	assert.InDelta(t, 108.70, m.FleschReadingEase, 0.01)
	assert.InDelta(t, -0.66, m.FleschKincaidGrade, 0.01)
}

func TestAnalyzePassiveCountsSentenceOnce(t *testing.T) {
	doc := &textparse.Document{
		Sentences: []string{
			"The data was collected and the report was reviewed.",
			"The team completed the project.",
		},
		Words:      []string{"data"},
		Normalized: []string{"data"},
	}

	m := Analyze(doc)

	assert.Equal(t, 1, m.PassiveVoiceCount)
	assert.InDelta(t, 50.0, m.PassiveVoicePercent, 0.001)
}

func TestIsPassivePatterns(t *testing.T) {
	cases := []struct {
		sentence string
		passive  bool
	}{
		{"The report was completed by the team.", true},
		{"Mistakes were made.", false}, // "made" matches neither -ed nor -en suffix pattern
		{"The window was broken overnight.", true},
		{"The team completed the report.", false},
		{"She is running fast.", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.passive, isPassive(tc.sentence), "sentence %q", tc.sentence)
	}
}

func TestDifficultWordsSkipProperNounsAndExceptions(t *testing.T) {
	doc := &textparse.Document{
		Sentences:  []string{"magnificent Magnificent beautiful."},
		Words:      []string{"magnificent", "Magnificent", "beautiful"},
		Normalized: []string{"magnificent", "magnificent", "beautiful"},
	}

	m := Analyze(doc)

	// the capitalized repeat reads as a proper noun, "beautiful" is excepted
	assert.Equal(t, 1, m.DifficultWords)
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"make", 1},
		{"walked", 1},
		{"wanted", 2},
		{"beautiful", 3},
		{"optimization", 5},
		{"strength", 1},
		{"", 0},
		{"rhythm", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountSyllables(tc.word), "word %q", tc.word)
	}
}
