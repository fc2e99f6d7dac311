package textparse

// Heading is a document heading with its level (1-6) and text.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Entity is a named entity surfaced by the external extractor.
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Document is the immutable structural parse of one piece of content. It is
// built once per analysis call and never mutated afterwards, so the analyzers
// may read it concurrently.
type Document struct {
	Raw        string
	CleanText  string
	Sentences  []string
	Words      []string // original case, in order
	Normalized []string // lowercased alphabetic tokens, in order
	Paragraphs []string
	Headings   []Heading
	Entities   []Entity
	WasHTML    bool
}

// WordCount returns the number of word tokens.
func (d *Document) WordCount() int { return len(d.Words) }

// SentenceCount returns the number of sentences.
func (d *Document) SentenceCount() int { return len(d.Sentences) }

// ParagraphCount returns the number of blank-line separated paragraphs.
func (d *Document) ParagraphCount() int { return len(d.Paragraphs) }

// HeadingCounts returns the number of headings at each level 1-6.
func (d *Document) HeadingCounts() [7]int {
	var counts [7]int
	for _, h := range d.Headings {
		if h.Level >= 1 && h.Level <= 6 {
			counts[h.Level]++
		}
	}
	return counts
}
