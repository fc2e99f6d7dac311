package readability

import "strings"

// CountSyllables estimates syllables by counting vowel groups with the usual
// English adjustments (silent trailing e, -le endings). Good enough for the
// Flesch family; no pronunciation dictionary.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, "'-"))
	if word == "" {
		return 0
	}

	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	// silent e: "make", but keep the -le group in "table"
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	// -ed after a consonant is usually silent: "walked", but "wanted" keeps it
	if strings.HasSuffix(word, "ed") && len(word) > 3 && count > 1 {
		c := word[len(word)-3]
		if c != 't' && c != 'd' && !strings.ContainsRune(vowels, rune(c)) {
			count--
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}
