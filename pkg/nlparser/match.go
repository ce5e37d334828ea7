package nlparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// inflections are the word endings a keyword may carry under whole-word
// matching and still count ("meetings", "reviewed").
var inflections = map[string]bool{
	"": true, "s": true, "es": true, "ed": true, "ing": true, "er": true, "ers": true,
}

// normalize returns the lowercase projection used for matching: lowered,
// with runs of whitespace folded into single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// matcher decides whether a vocabulary entry occurs in lowered text. The
// zero value matches literal substrings, so "urgent" hits "urgently".
type matcher struct {
	wholeWord bool
}

func (m matcher) phrase(text, phrase string) bool {
	if m.wholeWord {
		return containsWord(text, phrase)
	}
	return phrase != "" && strings.Contains(text, phrase)
}

func (m matcher) keyword(text, keyword string) bool {
	if m.wholeWord {
		return containsKeyword(text, keyword)
	}
	return keyword != "" && strings.Contains(text, keyword)
}

// isWordRune is the single word-character definition shared by whole-word
// matching and title cleaning.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordStartAt reports whether a word may begin at byte offset i of text.
func wordStartAt(text string, i int) bool {
	if i <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

// wordEndAt reports whether a word may end at byte offset i of text.
func wordEndAt(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

// wordTail returns the run of word characters at the start of rest.
func wordTail(rest string) string {
	n := 0
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if !isWordRune(r) {
			break
		}
		n += size
	}
	return rest[:n]
}

// containsWord reports whether phrase occurs in text as whole words.
func containsWord(text, phrase string) bool {
	return findPhrase(text, phrase, func(end int) bool {
		return wordEndAt(text, end)
	})
}

// containsKeyword is containsWord that also accepts a plain inflection
// glued to the end of the phrase.
func containsKeyword(text, keyword string) bool {
	return findPhrase(text, keyword, func(end int) bool {
		return inflections[wordTail(text[end:])]
	})
}

func findPhrase(text, phrase string, acceptEnd func(end int) bool) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		if wordStartAt(text, i) && acceptEnd(i+len(phrase)) {
			return true
		}
		start = i + 1
	}
	return false
}

// scored pairs an extracted value with its confidence.
type scored[T any] struct {
	value      T
	confidence float64
}

// pickBest folds candidates into the one with the highest confidence.
// Ties keep the earliest candidate.
func pickBest[T any](candidates []scored[T]) (scored[T], bool) {
	var best scored[T]
	found := false
	for _, c := range candidates {
		if !found || c.confidence > best.confidence {
			best = c
			found = true
		}
	}
	return best, found
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
