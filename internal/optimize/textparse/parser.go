// Package textparse turns raw content into the structural document the
// analyzers consume: sentences, word tokens, paragraphs, headings, and named
// entities. HTML input is cleaned with goquery; markdown heading markers are
// recognized in plain text.
package textparse

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"content-optimizer/internal/shared/telemetry"
)

// ErrEmptyContent is returned when the input is empty or whitespace-only.
var ErrEmptyContent = errors.New("content is empty")

// EntityExtractor is the external named-entity capability. Implementations
// return (surface text, category) pairs in first-occurrence order.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
}

// Parser builds Documents. A nil Entities extractor disables entity
// extraction entirely.
type Parser struct {
	Entities EntityExtractor
}

const entityCap = 10

var (
	wordRe       = regexp.MustCompile(`[A-Za-z][A-Za-z'-]*`)
	mdHeadingRe  = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*#*\s*$`)
	paragraphRe  = regexp.MustCompile(`\n\s*\n`)
	sentenceEnds = ".!?"
)

// common abbreviations that should not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "inc": true, "ltd": true, "co": true,
	"no": true, "fig": true, "approx": true,
}

// Parse builds the immutable Document for one analysis call. Empty or
// whitespace-only input fails with ErrEmptyContent. Entity extraction is
// degraded, never fatal: on failure the document carries an empty entity
// list.
func (p *Parser) Parse(ctx context.Context, raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyContent
	}

	doc := &Document{Raw: raw}

	text := raw
	if looksLikeHTML(raw) {
		cleaned, headings, err := stripHTML(raw)
		if err == nil {
			text = cleaned
			doc.Headings = headings
			doc.WasHTML = true
		}
	}
	doc.Headings = append(doc.Headings, markdownHeadings(text)...)
	text = stripMarkdownMarkers(text)
	doc.CleanText = text

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}

	doc.Sentences = SplitSentences(text)
	doc.Words, doc.Normalized = tokenize(text)
	doc.Paragraphs = splitParagraphs(text)

	if p.Entities != nil {
		entities, err := p.Entities.ExtractEntities(ctx, text)
		if err != nil {
			telemetry.Warn("entity.extraction.unavailable", map[string]any{
				"error": err.Error(),
			})
		} else {
			doc.Entities = capEntities(entities, entityCap)
		}
	}

	return doc, nil
}

// SplitSentences segments text on sentence-ending punctuation, skipping
// common abbreviations and decimal points. Whitespace-only segments are
// dropped.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if !strings.ContainsRune(sentenceEnds, r) {
			continue
		}
		if r == '.' {
			// decimal number: 3.14
			if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				continue
			}
			if isAbbreviation(current.String()) {
				continue
			}
		}
		// consume trailing closers and repeats ("!?", quotes)
		for i+1 < len(runes) && (strings.ContainsRune(sentenceEnds, runes[i+1]) || runes[i+1] == '"' || runes[i+1] == '\'' || runes[i+1] == ')') {
			i++
			current.WriteRune(runes[i])
		}
		flush()
	}
	flush()
	return sentences
}

func isAbbreviation(soFar string) bool {
	trimmed := strings.TrimSuffix(soFar, ".")
	idx := strings.LastIndexFunc(trimmed, func(r rune) bool {
		return unicode.IsSpace(r)
	})
	last := strings.ToLower(trimmed[idx+1:])
	last = strings.TrimLeft(last, "(\"'")
	if abbreviations[last] {
		return true
	}
	// single capital letter initial, e.g. "J."
	return len(last) == 1 && last != "i" && last != "a"
}

func tokenize(text string) (words []string, normalized []string) {
	matches := wordRe.FindAllString(text, -1)
	words = make([]string, 0, len(matches))
	normalized = make([]string, 0, len(matches))
	for _, m := range matches {
		words = append(words, m)
		normalized = append(normalized, strings.ToLower(m))
	}
	return words, normalized
}

func splitParagraphs(text string) []string {
	parts := paragraphRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func markdownHeadings(text string) []Heading {
	matches := mdHeadingRe.FindAllStringSubmatch(text, -1)
	out := make([]Heading, 0, len(matches))
	for _, m := range matches {
		out = append(out, Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])})
	}
	return out
}

// stripMarkdownMarkers removes heading markers and emphasis so that heading
// text still counts as words but "#" and "**" do not distort tokenization.
func stripMarkdownMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#") {
			lines[i] = strings.TrimLeft(trimmed, "# ")
		}
	}
	out := strings.Join(lines, "\n")
	out = strings.ReplaceAll(out, "**", "")
	out = strings.ReplaceAll(out, "__", "")
	return out
}

func looksLikeHTML(raw string) bool {
	lower := strings.ToLower(raw)
	for _, marker := range []string{"</", "<p", "<h1", "<h2", "<h3", "<div", "<br", "<span", "<body"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func stripHTML(raw string) (string, []Heading, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", nil, err
	}
	gq.Find("script, style").Remove()

	var headings []Heading
	for level := 1; level <= 6; level++ {
		sel := gq.Find(fmt.Sprintf("h%d", level))
		sel.Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" {
				headings = append(headings, Heading{Level: level, Text: text})
			}
		})
	}

	// Block elements become paragraph breaks so the paragraph count survives
	// the markup removal.
	gq.Find("p, div, h1, h2, h3, h4, h5, h6, li, br").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	text := gq.Text()
	return strings.TrimSpace(text), headings, nil
}

func capEntities(entities []Entity, limit int) []Entity {
	seen := make(map[string]bool, len(entities))
	out := make([]Entity, 0, limit)
	for _, e := range entities {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		key := strings.ToLower(text) + "|" + strings.ToLower(strings.TrimSpace(e.Category))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Entity{Text: text, Category: strings.TrimSpace(e.Category)})
		if len(out) == limit {
			break
		}
	}
	return out
}
