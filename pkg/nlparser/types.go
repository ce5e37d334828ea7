package nlparser

import "time"

// Priority is a task priority level.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

// Valid reports whether p is one of the four known levels.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// Category is a task category tag.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// Categories lists the scored categories in their default tie-break order.
// CategoryOther is not scored; it is the fallback.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryShopping}
}

// Valid reports whether c is a scored category or CategoryOther.
func (c Category) Valid() bool {
	if c == CategoryOther {
		return true
	}
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Confidence holds per-field confidence scores, each in [0, 1].
type Confidence struct {
	Overall  float64 `json:"overall"`
	Date     float64 `json:"date"`
	Priority float64 `json:"priority"`
	Category float64 `json:"category"`
}

// Result is the structured reading of one task description. Every call
// builds a fresh Result; nothing in it is shared with the Parser.
type Result struct {
	OriginalText string
	Title        string
	Description  *string // never derived by the parser
	DueDate      *time.Time
	Priority     Priority
	Category     Category
	Confidence   Confidence
	Suggestions  []string
}
