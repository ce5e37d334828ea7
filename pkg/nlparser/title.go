package nlparser

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// strayPunct is what may be left dangling once vocabulary is cut out.
const strayPunct = ",;:-–—"

type titleCleaner struct {
	// vocabulary patterns only count at word boundaries as isWordRune
	// defines them.
	vocabulary []*regexp.Regexp
	patterns   []*regexp.Regexp
}

// newTitleCleaner compiles removal patterns from the complete date and
// priority vocabularies, not only from what a given text matched.
func newTitleCleaner(times []timeRule, priorities []priorityRule) titleCleaner {
	var weekdays, phrases []string
	for _, rule := range times {
		if rule.mode == resolveWeekday {
			weekdays = append(weekdays, rule.phrase)
			continue
		}
		phrases = append(phrases, rule.phrase)
	}
	for _, rule := range priorities {
		for _, group := range rule.groups {
			phrases = append(phrases, group.phrases...)
		}
	}

	return titleCleaner{
		vocabulary: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:(?:next|this|on|by)\s+)?` + alternation(weekdays)),
			regexp.MustCompile(`(?i)` + alternation(phrases)),
		},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:at\s+\d{1,2}(?::\d{2})?(?:\s*[ap]m)?|\d{1,2}:\d{2}(?:\s*[ap]m)?|\d{1,2}\s*[ap]m)\b`),
			regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:minute|hour|day)s?\b`),
			regexp.MustCompile(`!{2,}`),
		},
	}
}

// alternation builds a non-capturing group, longest phrase first so that
// "high priority" is removed whole before "priority"-like fragments.
func alternation(phrases []string) string {
	sorted := append([]string(nil), phrases...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(p), " ", `\s+`)
	}
	return `(?:` + strings.Join(quoted, "|") + `)`
}

// removeWords blanks every match of re that starts and ends on a word
// boundary. A match rejected at one offset is retried one rune later, so
// "moon monday" still loses "monday".
func removeWords(re *regexp.Regexp, text string) string {
	var b strings.Builder
	last := 0
	for pos := 0; pos < len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && wordStartAt(text, start) && wordEndAt(text, end) {
			b.WriteString(text[last:start])
			b.WriteByte(' ')
			last, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	b.WriteString(text[last:])
	return b.String()
}

func (c titleCleaner) clean(raw string) string {
	text := raw
	for _, p := range c.vocabulary {
		text = removeWords(p, text)
	}
	for _, p := range c.patterns {
		text = p.ReplaceAllString(text, " ")
	}

	var words []string
	for _, w := range strings.Fields(text) {
		if strings.Trim(w, strayPunct) == "" {
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		return raw
	}
	words[0] = strings.TrimLeft(words[0], strayPunct)
	words[len(words)-1] = strings.TrimRight(words[len(words)-1], strayPunct)

	return strings.Join(words, " ")
}
