// Package readability computes the syllable- and sentence-length-based
// readability metrics: Flesch Reading Ease, Flesch-Kincaid grade, average
// sentence length, passive-voice ratio, and difficult-word count.
package readability

import (
	"regexp"

	"content-optimizer/internal/optimize/lexicon"
	"content-optimizer/internal/optimize/textparse"
)

// Metrics is the readability sub-bundle of the analysis result.
type Metrics struct {
	FleschKincaidGrade  float64 `json:"flesch_kincaid_grade"`
	FleschReadingEase   float64 `json:"flesch_reading_ease"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	DifficultWords      int     `json:"difficult_words"`
	SyllableCount       int     `json:"syllable_count"`
	WordCount           int     `json:"word_count"`
	PassiveVoiceCount   int     `json:"passive_voice_count"`
	PassiveVoicePercent float64 `json:"passive_voice_percentage"`
}

// Passive constructions: auxiliary verb followed by a past participle. The
// pattern is an approximation, not a grammar.
var passiveRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(was|were|been|being|is|are|am)\s+\w+ed\b`),
	regexp.MustCompile(`(?i)\b(was|were|been|being|is|are|am)\s+\w+en\b`),
	regexp.MustCompile(`(?i)\bby\s+\w+\s+(was|were|been|being|is|are|am)\b`),
}

// Analyze computes the readability metrics for the parsed document. All
// ratios carry zero guards: an empty sentence or word list yields zeros, not
// an error.
func Analyze(doc *textparse.Document) Metrics {
	words := doc.WordCount()
	sentences := doc.SentenceCount()

	syllables := 0
	difficult := 0
	for i, w := range doc.Normalized {
		s := CountSyllables(w)
		syllables += s
		if s >= 3 && !lexicon.DifficultWordExceptions[w] && !isProperNoun(doc.Words[i], i) {
			difficult++
		}
	}

	m := Metrics{
		SyllableCount:  syllables,
		WordCount:      words,
		DifficultWords: difficult,
	}

	if sentences > 0 && words > 0 {
		wps := float64(words) / float64(sentences)
		spw := float64(syllables) / float64(words)
		m.AvgSentenceLength = wps
		m.FleschReadingEase = 206.835 - 1.015*wps - 84.6*spw
		m.FleschKincaidGrade = 0.39*wps + 11.8*spw - 15.59
	}

	passive := 0
	for _, sentence := range doc.Sentences {
		if isPassive(sentence) {
			passive++
		}
	}
	m.PassiveVoiceCount = passive
	if sentences > 0 {
		m.PassiveVoicePercent = float64(passive) / float64(sentences) * 100
	}

	return m
}

// isPassive reports whether a sentence contains at least one passive
// construction. A sentence counts once no matter how many clauses match.
func isPassive(sentence string) bool {
	for _, re := range passiveRes {
		if re.MatchString(sentence) {
			return true
		}
	}
	return false
}

// isProperNoun treats a capitalized word that does not open the text as a
// proper noun so names do not inflate the difficult-word count. Capitals that
// merely start a sentence slip through; the count is a heuristic, not a
// census.
func isProperNoun(original string, idx int) bool {
	if idx == 0 || original == "" {
		return false
	}
	first := original[0]
	return first >= 'A' && first <= 'Z'
}
