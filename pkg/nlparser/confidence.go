package nlparser

import "strings"

func aggregate(date, priority, category float64) float64 {
	return clamp01(dateWeight*date + priorityWeight*priority + categoryWeight*category + titleAllowance)
}

// suggest returns coaching hints for the weak fields, in a fixed order.
func suggest(raw string, c Confidence) []string {
	suggestions := []string{}
	if c.Date < lowDateConf {
		suggestions = append(suggestions, SuggestDate)
	}
	if c.Category < lowCategoryConf {
		suggestions = append(suggestions, SuggestCategory)
	}
	if c.Priority < lowPriorityConf && !strings.Contains(raw, "!") {
		suggestions = append(suggestions, SuggestPriority)
	}
	return suggestions
}
