package kamar

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// punctuation lists the Latin and Arabic marks removed from words.
// Hyphens are kept inside words and trimmed from their edges.
const punctuation = `.,;:!?()[]{}<>"'` + "`" + `«»“”‘’„…|/\*#@&^~_+=•·–—` + "،؛؟٪۔٫٬"

// invisible lists format characters that commonly leak into scraped Arabic
// text: tatweel, zero-width joiners and direction marks.
const invisible = "\u0640\u200b\u200c\u200d\u200e\u200f\ufeff"

// Tokenize returns the words of text with punctuation removed, skipping
// words shorter than minLength runes. Words are split on whitespace.
func Tokenize(text string, minLength int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for field := range strings.FieldsSeq(text) {
			word := cleanWord(field)
			if !isToken(word, minLength) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// cleanWord removes punctuation and invisible runes from a
// whitespace-delimited word.
func cleanWord(word string) string {
	word = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) || strings.ContainsRune(invisible, r) {
			return -1
		}
		return r
	}, word)
	return strings.Trim(word, "-")
}

func isToken(word string, minLength int) bool {
	return word != "" && utf8.RuneCountInString(word) >= minLength
}

// collapseSpace trims s and replaces every whitespace run with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
