// Package lexicon holds the fixed word tables shared by the analyzers:
// stopwords, tone marker sets, and difficult-word exceptions. The tables are
// built once at init and must be treated as read-only; concurrent analysis
// calls share them.
package lexicon

// StopWords is the English stopword set used for keyword and topic analysis.
var StopWords = buildSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am",
	"an", "and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "he'd", "he'll", "he's", "her", "here", "here's", "hers", "herself",
	"him", "himself", "his", "how", "how's", "i", "i'd", "i'll", "i'm",
	"i've", "if", "in", "into", "is", "isn't", "it", "it's", "its", "itself",
	"just", "let's", "me", "more", "most", "mustn't", "my", "myself", "no",
	"nor", "not", "of", "off", "on", "once", "only", "or", "other", "ought",
	"our", "ours", "ourselves", "out", "over", "own", "same", "shan't", "she",
	"she'd", "she'll", "she's", "should", "shouldn't", "so", "some", "such",
	"than", "that", "that's", "the", "their", "theirs", "them", "themselves",
	"then", "there", "there's", "these", "they", "they'd", "they'll",
	"they're", "they've", "this", "those", "through", "to", "too", "under",
	"until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're",
	"we've", "were", "weren't", "what", "what's", "when", "when's", "where",
	"where's", "which", "while", "who", "who's", "whom", "why", "why's",
	"will", "with", "won't", "would", "wouldn't", "you", "you'd", "you'll",
	"you're", "you've", "your", "yours", "yourself", "yourselves",
})

// DifficultWordExceptions lists common polysyllabic words that readers know
// well; they are excluded from the difficult-word count even though the
// syllable heuristic flags them.
var DifficultWordExceptions = buildSet([]string{
	"anybody", "anything", "everybody", "everything", "everywhere", "family",
	"however", "important", "interesting", "internet", "probably",
	"somebody", "something", "together", "tomorrow", "yesterday", "company",
	"business", "different", "remember", "understand", "beautiful",
	"especially", "usually", "actually", "basically", "generally",
})

// ToneMarkers maps each tone category to its marker word/phrase set. Phrases
// are matched against the lowercased text; single words against the
// normalized token stream. A marker may legitimately appear in more than one
// category.
var ToneMarkers = map[string][]string{
	"formal": {
		"furthermore", "moreover", "consequently", "therefore", "thus",
		"hence", "accordingly", "nevertheless", "whereas",
	},
	"casual": {
		"really", "pretty", "quite", "sort of", "kind of", "stuff", "things",
		"awesome", "cool", "basically",
	},
	"expert": {
		"methodology", "implementation", "framework", "analysis",
		"evaluation", "infrastructure", "architecture", "optimization",
		"paradigm",
	},
	"persuasive": {
		"should", "must", "need to", "important", "essential", "critical",
		"imperative", "vital", "proven",
	},
}

// ToneTieOrder fixes the tie-break priority for tone detection; earlier wins.
var ToneTieOrder = []string{"formal", "expert", "persuasive", "casual", "neutral"}

func buildSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// IsStopWord reports whether the lowercased token is a stopword.
func IsStopWord(word string) bool {
	return StopWords[word]
}
