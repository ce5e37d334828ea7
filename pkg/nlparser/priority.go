package nlparser

import "strings"

type priorityExtractor struct {
	rules []priorityRule
	match matcher
}

// extract returns the priority carried by the strongest matching phrase,
// regardless of level: a clear "low priority" beats a passing "soon".
func (e priorityExtractor) extract(lower, raw string) (Priority, float64) {
	var matches []scored[Priority]
	for _, rule := range e.rules {
		for _, group := range rule.groups {
			for _, phrase := range group.phrases {
				if e.match.phrase(lower, phrase) {
					matches = append(matches, scored[Priority]{value: rule.level, confidence: group.confidence})
				}
			}
		}
	}

	if best, ok := pickBest(matches); ok {
		return best.value, best.confidence
	}
	if strings.Count(raw, "!") >= minExclamations {
		return PriorityHigh, exclamationConfidence
	}
	return PriorityMedium, defaultPriorityConf
}
