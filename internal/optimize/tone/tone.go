// Package tone classifies the dominant tone of a document by counting
// lexicon markers per category. The tie-break order is fixed so detection is
// deterministic.
package tone

import (
	"strings"

	"content-optimizer/internal/optimize/lexicon"
	"content-optimizer/internal/optimize/textparse"
)

// Result is the tone sub-bundle of the analysis result.
type Result struct {
	DetectedTone string         `json:"detected_tone"`
	Confidence   float64        `json:"confidence"`
	ToneScores   map[string]int `json:"tone_scores"`
}

// Analyze scores each tone category by marker occurrences. A marker may
// contribute to more than one category. If every category scores zero the
// tone is neutral with confidence 0.
func Analyze(doc *textparse.Document) Result {
	lower := strings.ToLower(doc.CleanText)

	tokenCounts := make(map[string]int, len(doc.Normalized))
	for _, w := range doc.Normalized {
		tokenCounts[w]++
	}

	scores := make(map[string]int, len(lexicon.ToneMarkers)+1)
	for category, markers := range lexicon.ToneMarkers {
		score := 0
		for _, marker := range markers {
			if strings.ContainsRune(marker, ' ') {
				score += strings.Count(lower, marker)
			} else {
				score += tokenCounts[marker]
			}
		}
		scores[category] = score
	}
	scores["neutral"] = 0

	detected := "neutral"
	best := 0
	for _, category := range lexicon.ToneTieOrder {
		if scores[category] > best {
			best = scores[category]
			detected = category
		}
	}

	total := 0
	for _, s := range scores {
		total += s
	}

	confidence := 0.0
	if total > 0 {
		confidence = float64(best) / float64(total) * 100
	}

	return Result{
		DetectedTone: detected,
		Confidence:   confidence,
		ToneScores:   scores,
	}
}
