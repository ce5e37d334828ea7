package nlparser

import (
	"math"
	"strings"
)

type categoryExtractor struct {
	order []Category
	rules map[Category]categoryRule
	match matcher
}

func newCategoryExtractor(rules []categoryRule, order []Category, match matcher) categoryExtractor {
	byCategory := make(map[Category]categoryRule, len(rules))
	for _, rule := range rules {
		byCategory[rule.category] = rule
	}
	return categoryExtractor{order: order, rules: byCategory, match: match}
}

// score sums weight × word count over every keyword found in lower.
// Adding words to lower can only keep or raise a score.
func (e categoryExtractor) score(lower string, category Category) int {
	total := 0
	for _, tier := range e.rules[category].tiers {
		for _, keyword := range tier.keywords {
			if e.match.keyword(lower, keyword) {
				total += tier.weight * len(strings.Fields(keyword))
			}
		}
	}
	return total
}

func (e categoryExtractor) extract(lower string) (Category, float64) {
	best, bestScore := CategoryOther, 0
	for _, category := range e.order {
		if s := e.score(lower, category); s > bestScore {
			best, bestScore = category, s
		}
	}
	if bestScore == 0 {
		return CategoryOther, fallbackCategoryConf
	}
	return best, math.Min(maxCategoryConf, float64(bestScore)/categoryScoreNormalize)
}
