package nlparser

const (
	LogPrefixParse = "pkg.nlparser.Parse"
)

// Confidence values.
const (
	phraseConfidence       = 0.9
	wordConfidence         = 0.7
	exclamationConfidence  = 0.6
	defaultPriorityConf    = 0.5
	fallbackCategoryConf   = 0.1
	maxCategoryConf        = 0.95
	categoryScoreNormalize = 15.0
	specificTimeBonus      = 0.1

	minuteDeltaConf = 0.9
	hourDeltaConf   = 0.9
	dayDeltaConf    = 0.85
)

// Overall confidence weights. titleAllowance stands in for the title,
// which has no measured signal.
const (
	dateWeight     = 0.3
	priorityWeight = 0.2
	categoryWeight = 0.3
	titleAllowance = 0.2
)

// Suggestion thresholds.
const (
	lowDateConf     = 0.5
	lowCategoryConf = 0.3
	lowPriorityConf = 0.6
)

const (
	DefaultPMCutoffHour = 8
	minExclamations     = 2
)

const (
	SuggestDate     = `Add a time phrase such as "tomorrow", "friday" or "at 3pm" to set a due date.`
	SuggestCategory = `Add a hint like "meeting", "groceries" or "gym" so the task lands in the right category.`
	SuggestPriority = `Add a priority keyword like "urgent", "important" or "low priority".`
)
