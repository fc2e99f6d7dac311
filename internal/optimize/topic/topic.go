// Package topic measures vocabulary coverage and diversity over the
// stopword-filtered token stream.
package topic

import (
	"sort"

	"content-optimizer/internal/optimize/lexicon"
	"content-optimizer/internal/optimize/textparse"
)

// WordCount is one entry of the frequency list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Metrics is the topic-coverage sub-bundle of the analysis result.
type Metrics struct {
	CoverageScore    float64     `json:"coverage_score"`
	WordFrequency    []WordCount `json:"word_frequency"`
	UniqueWords      int         `json:"unique_words"`
	TotalWords       int         `json:"total_words"`
	LexicalDiversity float64     `json:"lexical_diversity"`
}

const topWords = 10

// Analyze computes coverage from word diversity: a document whose unique
// vocabulary is at least a tenth of its filtered length scores 100.
func Analyze(doc *textparse.Document) Metrics {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	total := 0
	for i, w := range doc.Normalized {
		if lexicon.IsStopWord(w) {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
		total++
	}

	unique := len(counts)
	m := Metrics{
		UniqueWords: unique,
		TotalWords:  total,
	}
	if total == 0 {
		return m
	}

	denom := float64(total) * 0.1
	if denom < 1 {
		denom = 1
	}
	m.CoverageScore = float64(unique) / denom * 100
	if m.CoverageScore > 100 {
		m.CoverageScore = 100
	}
	m.LexicalDiversity = float64(unique) / float64(total)

	freq := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		freq = append(freq, WordCount{Word: w, Count: c})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return firstSeen[freq[i].Word] < firstSeen[freq[j].Word]
	})
	if len(freq) > topWords {
		freq = freq[:topWords]
	}
	m.WordFrequency = freq
	return m
}
