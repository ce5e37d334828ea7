// Package nlparser turns a free-text task description into a structured
// task: a cleaned title, an optional due date, a priority, a category and
// per-field confidence with coaching suggestions.
//
// Parsing is keyword driven over fixed vocabularies. A Parser is built
// once and is safe for concurrent use.
package nlparser

import (
	"context"
	"time"

	"smart-todo/pkg/log"
)

type (
	dateSource interface {
		extract(lower string, now time.Time) (*time.Time, float64)
	}
	prioritySource interface {
		extract(lower, raw string) (Priority, float64)
	}
	categorySource interface {
		extract(lower string) (Category, float64)
	}
	titleSource interface {
		clean(raw string) string
	}
)

// Parser is a stateless task parser. Its rule tables and compiled
// patterns are read-only after New.
type Parser struct {
	l     log.Logger
	loc   *time.Location
	clock func() time.Time

	dates      dateSource
	priorities prioritySource
	categories categorySource
	titles     titleSource
}

type options struct {
	loc           *time.Location
	clock         func() time.Time
	pmCutoff      int
	bareHours     bool
	wholeWord     bool
	categoryOrder []Category
}

// Option customizes a Parser.
type Option func(*options)

// WithLocation sets the timezone due dates are resolved in. Default UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithClock replaces time.Now as the source of the parse-time "now".
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithPMCutoffHour sets the hour below which a clock time without am/pm
// is read as afternoon ("at 3" -> 15:00). Zero disables the assumption.
func WithPMCutoffHour(hour int) Option {
	return func(o *options) {
		if hour >= 0 && hour <= 12 {
			o.pmCutoff = hour
		}
	}
}

// WithBareHourTimes sets whether a lone number such as the "2" in "buy 2
// apples tomorrow" is read as a clock time. Default true; when false a time
// needs "at", minutes or am/pm.
func WithBareHourTimes(on bool) Option {
	return func(o *options) {
		o.bareHours = on
	}
}

// WithWholeWordMatching makes the date, priority and category vocabularies
// match only whole words, with plain inflections still allowed on category
// keywords. By default entries match anywhere in the text, so "urgent"
// counts in "urgently".
func WithWholeWordMatching(on bool) Option {
	return func(o *options) {
		o.wholeWord = on
	}
}

// WithCategoryOrder sets the tie-break order between equally scored
// categories. Unknown entries are ignored and missing categories keep
// their default relative order after the given ones.
func WithCategoryOrder(order ...Category) Option {
	return func(o *options) {
		seen := make(map[Category]bool)
		var result []Category
		for _, c := range append(order, Categories()...) {
			if c == CategoryOther || !c.Valid() || seen[c] {
				continue
			}
			seen[c] = true
			result = append(result, c)
		}
		o.categoryOrder = result
	}
}

// New builds a Parser.
func New(l log.Logger, opts ...Option) *Parser {
	o := options{
		loc:           time.UTC,
		clock:         time.Now,
		pmCutoff:      DefaultPMCutoffHour,
		bareHours:     true,
		categoryOrder: Categories(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if l == nil {
		l = log.NewNop()
	}

	match := matcher{wholeWord: o.wholeWord}

	return &Parser{
		l:     l,
		loc:   o.loc,
		clock: o.clock,
		dates: dateExtractor{
			rules:     timeRules,
			match:     match,
			pmCutoff:  o.pmCutoff,
			bareHours: o.bareHours,
		},
		priorities: priorityExtractor{rules: priorityRules, match: match},
		categories: newCategoryExtractor(categoryRules, o.categoryOrder, match),
		titles:     newTitleCleaner(timeRules, priorityRules),
	}
}

// Location returns the timezone due dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

// Parse reads text against the current time.
func (p *Parser) Parse(ctx context.Context, text string) Result {
	return p.ParseAt(ctx, text, p.clock())
}

// ParseAt reads text with now as the reference time for relative dates.
// It never fails: a field whose extractor breaks keeps its default.
func (p *Parser) ParseAt(ctx context.Context, text string, now time.Time) Result {
	now = now.In(p.loc)
	lower := normalize(text)

	var (
		dueDate  *time.Time
		dateConf float64
		priority = PriorityMedium
		prioConf = defaultPriorityConf
		category = CategoryOther
		catConf  = fallbackCategoryConf
		title    = text
	)

	p.isolate(ctx, "date", func() {
		dueDate, dateConf = p.dates.extract(lower, now)
	})
	p.isolate(ctx, "priority", func() {
		priority, prioConf = p.priorities.extract(lower, text)
	})
	p.isolate(ctx, "category", func() {
		category, catConf = p.categories.extract(lower)
	})
	p.isolate(ctx, "title", func() {
		title = p.titles.clean(text)
	})

	if !priority.Valid() {
		priority, prioConf = PriorityMedium, defaultPriorityConf
	}
	if !category.Valid() {
		category, catConf = CategoryOther, fallbackCategoryConf
	}
	if title == "" {
		title = text
	}

	confidence := Confidence{
		Date:     clamp01(dateConf),
		Priority: clamp01(prioConf),
		Category: clamp01(catConf),
	}
	confidence.Overall = aggregate(confidence.Date, confidence.Priority, confidence.Category)

	return Result{
		OriginalText: text,
		Title:        title,
		DueDate:      dueDate,
		Priority:     priority,
		Category:     category,
		Confidence:   confidence,
		Suggestions:  suggest(text, confidence),
	}
}

// isolate runs one extraction step, turning a panic into a logged
// no-signal result for that field only.
func (p *Parser) isolate(ctx context.Context, field string, step func()) {
	defer func() {
		if r := recover(); r != nil {
			p.l.Errorf(ctx, "%s: %s extraction failed: %v", LogPrefixParse, field, r)
		}
	}()
	step()
}
