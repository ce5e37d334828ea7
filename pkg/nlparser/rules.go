package nlparser

import "time"

type resolution int

const (
	resolveDayOffset resolution = iota
	resolveWeekday
)

type clockTime struct {
	hour   int
	minute int
	set    bool
}

func at(hour, minute int) clockTime {
	return clockTime{hour: hour, minute: minute, set: true}
}

// timeRule is a named relative-date phrase.
type timeRule struct {
	phrase     string
	mode       resolution
	days       int
	weekday    time.Weekday
	confidence float64
	clock      clockTime
}

// phraseGroup is a set of literal phrases sharing one confidence.
type phraseGroup struct {
	phrases    []string
	confidence float64
}

type priorityRule struct {
	level  Priority
	groups []phraseGroup
}

type keywordTier struct {
	weight   int
	keywords []string
}

type categoryRule struct {
	category Category
	tiers    []keywordTier
}

// Rule tables. Order matters: earlier entries win confidence ties.
// Nothing writes to these after package initialization.
var timeRules = []timeRule{
	{phrase: "today", confidence: 0.8},
	{phrase: "tonight", confidence: 0.8, clock: at(20, 0)},
	{phrase: "tomorrow", days: 1, confidence: 0.8},
	{phrase: "this morning", confidence: 0.7, clock: at(9, 0)},
	{phrase: "this afternoon", confidence: 0.7, clock: at(14, 0)},
	{phrase: "this evening", confidence: 0.7, clock: at(18, 0)},
	{phrase: "next week", days: 7, confidence: 0.7},
	{phrase: "next month", days: 30, confidence: 0.6},
	{phrase: "monday", mode: resolveWeekday, weekday: time.Monday, confidence: 0.7},
	{phrase: "tuesday", mode: resolveWeekday, weekday: time.Tuesday, confidence: 0.7},
	{phrase: "wednesday", mode: resolveWeekday, weekday: time.Wednesday, confidence: 0.7},
	{phrase: "thursday", mode: resolveWeekday, weekday: time.Thursday, confidence: 0.7},
	{phrase: "friday", mode: resolveWeekday, weekday: time.Friday, confidence: 0.7},
	{phrase: "saturday", mode: resolveWeekday, weekday: time.Saturday, confidence: 0.7},
	{phrase: "sunday", mode: resolveWeekday, weekday: time.Sunday, confidence: 0.7},
}

// Abbreviations of multi-word phrases ("asap") sit in the phrase group.
var priorityRules = []priorityRule{
	{
		level: PriorityUrgent,
		groups: []phraseGroup{
			{phrases: []string{"as soon as possible", "asap", "right now", "right away", "top priority"}, confidence: phraseConfidence},
			{phrases: []string{"urgent", "emergency", "critical", "immediately"}, confidence: wordConfidence},
		},
	},
	{
		level: PriorityHigh,
		groups: []phraseGroup{
			{phrases: []string{"high priority", "very important"}, confidence: phraseConfidence},
			{phrases: []string{"important", "soon", "deadline"}, confidence: wordConfidence},
		},
	},
	{
		level: PriorityLow,
		groups: []phraseGroup{
			{phrases: []string{"low priority", "when possible", "whenever possible", "no rush"}, confidence: phraseConfidence},
			{phrases: []string{"eventually", "sometime", "someday"}, confidence: wordConfidence},
		},
	},
}

var categoryRules = []categoryRule{
	{
		category: CategoryWork,
		tiers: []keywordTier{
			{weight: 3, keywords: []string{"meeting", "client", "presentation", "report", "project", "deadline", "conference call"}},
			{weight: 2, keywords: []string{"email", "office", "team", "boss", "colleague", "proposal", "budget"}},
			{weight: 1, keywords: []string{"call", "review", "analysis", "invoice"}},
		},
	},
	{
		category: CategoryPersonal,
		tiers: []keywordTier{
			{weight: 3, keywords: []string{"call mom", "call dad", "family", "birthday", "anniversary", "wedding"}},
			{weight: 2, keywords: []string{"dinner", "friend", "vacation", "holiday", "party"}},
			{weight: 1, keywords: []string{"home", "lunch", "visit", "personal"}},
		},
	},
	{
		category: CategoryStudy,
		tiers: []keywordTier{
			{weight: 3, keywords: []string{"study", "exam", "homework", "assignment"}},
			{weight: 2, keywords: []string{"lecture", "course", "research", "tutorial", "notes"}},
			{weight: 1, keywords: []string{"book", "learn", "practice", "class"}},
		},
	},
	{
		category: CategoryHealth,
		tiers: []keywordTier{
			{weight: 3, keywords: []string{"doctor", "dentist", "gym", "workout", "medicine"}},
			{weight: 2, keywords: []string{"appointment", "exercise", "pharmacy", "checkup", "therapy"}},
			{weight: 1, keywords: []string{"run", "running", "jog", "yoga", "meditation", "walk"}},
		},
	},
	{
		category: CategoryShopping,
		tiers: []keywordTier{
			{weight: 3, keywords: []string{"buy groceries", "buy", "groceries", "grocery", "shop", "shopping", "purchase"}},
			{weight: 2, keywords: []string{"store", "mall", "order", "amazon", "clothes"}},
			{weight: 1, keywords: []string{"milk", "bread", "food", "online"}},
		},
	},
}
