// Package seo computes heading-structure, keyword-density, and
// content-length metrics over the parsed document.
package seo

import (
	"sort"

	"content-optimizer/internal/optimize/lexicon"
	"content-optimizer/internal/optimize/textparse"
)

const (
	topKeywords   = 10
	minKeywordLen = 4

	metaDescriptionMin = 150
	metaDescriptionMax = 160
)

// HeadingStructure summarizes the heading hierarchy.
type HeadingStructure struct {
	H1Count         int  `json:"h1_count"`
	H2Count         int  `json:"h2_count"`
	H3Count         int  `json:"h3_count"`
	ProperHierarchy bool `json:"proper_hierarchy"`
}

// Keyword is one entry of the top-keyword list, densest first.
type Keyword struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// MetaDescription is the advisory-only meta description check; it never
// feeds the composite score.
type MetaDescription struct {
	Text    string `json:"text"`
	Length  int    `json:"length"`
	InRange bool   `json:"in_range"`
}

// Metrics is the SEO sub-bundle of the analysis result.
type Metrics struct {
	HeadingStructure HeadingStructure `json:"heading_structure"`
	ContentLength    int              `json:"content_length"`
	MetaTitleLength  int              `json:"meta_title_length"`
	KeywordDensity   []Keyword        `json:"keyword_density"`
	MetaDescription  MetaDescription  `json:"meta_description"`
}

// Analyze computes SEO metrics. Content length is the structural word count,
// not recomputed.
func Analyze(doc *textparse.Document) Metrics {
	counts := doc.HeadingCounts()

	m := Metrics{
		HeadingStructure: HeadingStructure{
			H1Count:         counts[1],
			H2Count:         counts[2],
			H3Count:         counts[3],
			ProperHierarchy: properHierarchy(counts),
		},
		ContentLength:  doc.WordCount(),
		KeywordDensity: KeywordDensity(doc, topKeywords),
	}

	for _, h := range doc.Headings {
		if h.Level == 1 {
			m.MetaTitleLength = len(h.Text)
			break
		}
	}

	m.MetaDescription = metaDescription(doc)
	return m
}

// properHierarchy is true iff exactly one h1 exists and no level is skipped
// descending from it. Zero headings is improper.
func properHierarchy(counts [7]int) bool {
	if counts[1] != 1 {
		return false
	}
	seenZero := false
	for level := 2; level <= 6; level++ {
		if counts[level] == 0 {
			seenZero = true
			continue
		}
		if seenZero {
			return false
		}
	}
	return true
}

// KeywordDensity ranks non-stopword tokens of four or more letters by
// density descending, ties broken by first occurrence.
func KeywordDensity(doc *textparse.Document, limit int) []Keyword {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	total := 0
	for i, w := range doc.Normalized {
		if len(w) < minKeywordLen || lexicon.IsStopWord(w) {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
		total++
	}
	if total == 0 {
		return nil
	}

	keywords := make([]Keyword, 0, len(counts))
	for w, c := range counts {
		keywords = append(keywords, Keyword{
			Word:    w,
			Count:   c,
			Density: float64(c) / float64(total) * 100,
		})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return firstSeen[keywords[i].Word] < firstSeen[keywords[j].Word]
	})
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// metaDescription derives the advisory meta description from the first
// paragraph and checks it against the 150-160 character band.
func metaDescription(doc *textparse.Document) MetaDescription {
	text := ""
	for _, p := range doc.Paragraphs {
		// skip heading-only paragraphs
		if len(p) > 0 {
			text = p
			break
		}
	}
	if len(text) > metaDescriptionMax {
		text = text[:metaDescriptionMax]
	}
	return MetaDescription{
		Text:    text,
		Length:  len(text),
		InRange: len(text) >= metaDescriptionMin && len(text) <= metaDescriptionMax,
	}
}
