package nlparser

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text, phrase string
		want         bool
	}{
		{"call the client today", "today", true},
		{"todays plan", "today", false},
		{"asap!!", "asap", true},
		{"not important", "important", true},
		{"unimportant", "important", false},
		{"high  priority", "high priority", false},
		{"high priority", "high priority", true},
		{"report—tomorrow", "tomorrow", true},
		{"café today", "today", true},
		{"todayé", "today", false},
		{"", "today", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsWord(tt.text, tt.phrase), "%q in %q", tt.phrase, tt.text)
	}
}

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		text, keyword string
		want          bool
	}{
		{"two meetings today", "meeting", true},
		{"reviewed the draft", "review", true},
		{"for example", "exam", false},
		{"finish homework", "home", false},
		{"runs daily", "run", true},
		{"buy groceries", "buy groceries", true},
		{"runtime error", "run", false},
		{"meetings—today", "meeting", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsKeyword(tt.text, tt.keyword), "%q in %q", tt.keyword, tt.text)
	}
}

func TestMatcher(t *testing.T) {
	tests := []struct {
		text, entry        string
		literal, wholeWord bool
	}{
		{text: "fix the login bug urgently", entry: "urgent", literal: true, wholeWord: false},
		{text: "two deadlines", entry: "deadline", literal: true, wholeWord: false},
		{text: "yoga mondays", entry: "monday", literal: true, wholeWord: false},
		{text: "for example", entry: "exam", literal: true, wholeWord: false},
		{text: "report—tomorrow", entry: "tomorrow", literal: true, wholeWord: true},
		{text: "water the plants", entry: "today", literal: false, wholeWord: false},
		{text: "anything", entry: "", literal: false, wholeWord: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.literal, matcher{}.phrase(tt.text, tt.entry), "literal %q in %q", tt.entry, tt.text)
		assert.Equal(t, tt.literal, matcher{}.keyword(tt.text, tt.entry), "literal keyword %q in %q", tt.entry, tt.text)
		assert.Equal(t, tt.wholeWord, matcher{wholeWord: true}.phrase(tt.text, tt.entry), "whole word %q in %q", tt.entry, tt.text)
	}

	assert.True(t, matcher{wholeWord: true}.keyword("two deadlines", "deadline"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "call the client", normalize("  Call\tthe\n CLIENT "))
	assert.Equal(t, "", normalize("   "))
}

func TestPickBest(t *testing.T) {
	_, ok := pickBest[int](nil)
	assert.False(t, ok)

	best, ok := pickBest([]scored[string]{
		{value: "a", confidence: 0.7},
		{value: "b", confidence: 0.9},
		{value: "c", confidence: 0.9},
	})
	require.True(t, ok)
	assert.Equal(t, "b", best.value)
}

func TestPriorityExtract(t *testing.T) {
	e := priorityExtractor{rules: priorityRules}

	tests := []struct {
		name     string
		text     string
		want     Priority
		wantConf float64
	}{
		{name: "urgent phrase", text: "fix prod right now", want: PriorityUrgent, wantConf: 0.9},
		{name: "urgent word", text: "critical bug", want: PriorityUrgent, wantConf: 0.7},
		{name: "high phrase", text: "very important email", want: PriorityHigh, wantConf: 0.9},
		{name: "high word", text: "pay bill soon", want: PriorityHigh, wantConf: 0.7},
		{name: "low phrase beats high word", text: "low priority but important", want: PriorityLow, wantConf: 0.9},
		{name: "equal confidence keeps rule order", text: "sometime soon", want: PriorityHigh, wantConf: 0.7},
		{name: "exclamations", text: "fix this!!", want: PriorityHigh, wantConf: 0.6},
		{name: "single exclamation", text: "fix this!", want: PriorityMedium, wantConf: 0.5},
		{name: "keyword beats exclamations", text: "eventually!!!", want: PriorityLow, wantConf: 0.7},
		{name: "default", text: "water the plants", want: PriorityMedium, wantConf: 0.5},
		{name: "inflected urgent word", text: "Fix the login bug urgently", want: PriorityUrgent, wantConf: 0.7},
		{name: "inflected high word", text: "Handle this importantly", want: PriorityHigh, wantConf: 0.7},
		{name: "plural high word", text: "track the deadlines", want: PriorityHigh, wantConf: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := e.extract(normalize(tt.text), tt.text)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantConf, conf, 1e-9)
		})
	}
}

func TestPriorityExtractWholeWord(t *testing.T) {
	e := priorityExtractor{rules: priorityRules, match: matcher{wholeWord: true}}

	for _, text := range []string{"Fix the login bug urgently", "Handle this importantly", "track the deadlines"} {
		got, conf := e.extract(normalize(text), text)
		assert.Equal(t, PriorityMedium, got, text)
		assert.InDelta(t, defaultPriorityConf, conf, 1e-9, text)
	}

	got, conf := e.extract(normalize("Ship—urgent"), "Ship—urgent")
	assert.Equal(t, PriorityUrgent, got)
	assert.InDelta(t, 0.7, conf, 1e-9)
}

func TestCategoryExtract(t *testing.T) {
	e := newCategoryExtractor(categoryRules, Categories(), matcher{})

	tests := []struct {
		name     string
		text     string
		want     Category
		wantConf float64
	}{
		{name: "work", text: "prepare client presentation", want: CategoryWork, wantConf: 6.0 / 15},
		{name: "personal beats plain call", text: "call mom", want: CategoryPersonal, wantConf: 6.0 / 15},
		{name: "study", text: "finish homework", want: CategoryStudy, wantConf: 3.0 / 15},
		{name: "health", text: "dentist appointment", want: CategoryHealth, wantConf: 5.0 / 15},
		{name: "shopping", text: "buy groceries", want: CategoryShopping, wantConf: 12.0 / 15},
		{name: "capped", text: "meeting client presentation report project deadline", want: CategoryWork, wantConf: 0.95},
		{name: "plural keyword", text: "two deadlines", want: CategoryWork, wantConf: 3.0 / 15},
		{name: "keyword inside a longer word", text: "for example", want: CategoryStudy, wantConf: 3.0 / 15},
		{name: "fallback", text: "water the plants", want: CategoryOther, wantConf: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := e.extract(normalize(tt.text))
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantConf, conf, 1e-9)
		})
	}
}

func TestCategoryExtractWholeWord(t *testing.T) {
	e := newCategoryExtractor(categoryRules, Categories(), matcher{wholeWord: true})

	got, conf := e.extract("for example")
	assert.Equal(t, CategoryOther, got)
	assert.InDelta(t, 0.1, conf, 1e-9)

	got, conf = e.extract("two meetings today")
	assert.Equal(t, CategoryWork, got)
	assert.InDelta(t, 3.0/15, conf, 1e-9)
}

func TestCategoryScoreIsMonotonic(t *testing.T) {
	base := "meeting with the team"
	extras := []string{"", " and lunch", " then gym", " buy milk", " study notes", " client report"}

	for _, match := range []matcher{{}, {wholeWord: true}} {
		e := newCategoryExtractor(categoryRules, Categories(), match)
		for _, category := range Categories() {
			prev := e.score(base, category)
			text := base
			for _, extra := range extras {
				text += extra
				cur := e.score(text, category)
				assert.GreaterOrEqual(t, cur, prev, "%s on %q", category, text)
				prev = cur
			}
		}
	}
}

func TestCategoryTieBreak(t *testing.T) {
	text := "doctor then meeting"

	got, _ := newCategoryExtractor(categoryRules, Categories(), matcher{}).extract(text)
	assert.Equal(t, CategoryWork, got)

	var o options
	WithCategoryOrder(CategoryHealth, CategoryOther, Category("bogus"), CategoryHealth)(&o)
	assert.Equal(t, []Category{CategoryHealth, CategoryWork, CategoryPersonal, CategoryStudy, CategoryShopping}, o.categoryOrder)

	got, _ = newCategoryExtractor(categoryRules, o.categoryOrder, matcher{}).extract(text)
	assert.Equal(t, CategoryHealth, got)
}

func TestDateExtractNoSignal(t *testing.T) {
	e := dateExtractor{rules: timeRules, pmCutoff: DefaultPMCutoffHour, bareHours: true}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, text := range []string{"finish the thing", "meet at 5pm", "room 12", "someday", "in 99999999999999999999 days", "in 9999999999999 hours"} {
		due, conf := e.extract(normalize(text), now)
		assert.Nil(t, due, text)
		assert.Zero(t, conf, text)
	}
}

func TestDateExtractMatching(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)

	literal := dateExtractor{rules: timeRules, pmCutoff: DefaultPMCutoffHour}
	due, conf := literal.extract("yoga mondays", now)
	require.NotNil(t, due)
	assert.Equal(t, monday, *due)
	assert.InDelta(t, 0.7, conf, 1e-9)

	wholeWord := dateExtractor{rules: timeRules, match: matcher{wholeWord: true}, pmCutoff: DefaultPMCutoffHour}
	due, _ = wholeWord.extract("yoga mondays", now)
	assert.Nil(t, due)

	for _, e := range []dateExtractor{literal, wholeWord} {
		due, conf = e.extract("report—tomorrow", now)
		require.NotNil(t, due)
		assert.Equal(t, now.AddDate(0, 0, 1), *due)
		assert.InDelta(t, 0.8, conf, 1e-9)
	}
}

func TestFindDurationWithoutDigitLimit(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	got, ok := findDuration("check back in 10000 minutes", now)
	require.True(t, ok)
	assert.Equal(t, now.Add(10000*time.Minute), got.value)
	assert.InDelta(t, minuteDeltaConf, got.confidence, 1e-9)

	got, ok = findDuration("renew in 36500 days", now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, 36500), got.value)

	_, ok = findDuration("in 9999999999999 hours", now)
	assert.False(t, ok)
}

func TestFindClock(t *testing.T) {
	e := dateExtractor{rules: timeRules, pmCutoff: DefaultPMCutoffHour, bareHours: true}

	tests := []struct {
		text       string
		wantOK     bool
		hour, mins int
	}{
		{text: "at 3", wantOK: true, hour: 15},
		{text: "at 8", wantOK: true, hour: 8},
		{text: "at 0", wantOK: true, hour: 12},
		{text: "3pm", wantOK: true, hour: 15},
		{text: "11 am", wantOK: true, hour: 11},
		{text: "7:05", wantOK: true, hour: 19, mins: 5},
		{text: "13pm", wantOK: false},
		{text: "at 24", wantOK: false},
		{text: "2 apples", wantOK: true, hour: 14},
		{text: "room 12", wantOK: true, hour: 12},
		{text: "9:75 then at 10", wantOK: true, hour: 10},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := e.findClock(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.hour, got.hour)
				assert.Equal(t, tt.mins, got.minute)
			}
		})
	}
}

func TestFindClockWithoutBareHours(t *testing.T) {
	e := dateExtractor{rules: timeRules, pmCutoff: DefaultPMCutoffHour}

	_, ok := e.findClock("buy 2 apples tomorrow")
	assert.False(t, ok)

	got, ok := e.findClock("buy 2 apples at 6")
	require.True(t, ok)
	assert.Equal(t, 18, got.hour)

	got, ok = e.findClock("at 0")
	require.True(t, ok)
	assert.Equal(t, 12, got.hour)

	noCutoff := dateExtractor{rules: timeRules, bareHours: true}
	got, ok = noCutoff.findClock("at 0")
	require.True(t, ok)
	assert.Equal(t, 0, got.hour)
}

func TestTitleClean(t *testing.T) {
	c := newTitleCleaner(timeRules, priorityRules)

	tests := []struct {
		raw, want string
	}{
		{raw: "Call the client tomorrow at 2pm", want: "Call the client"},
		{raw: "Email Bob - tomorrow - urgent", want: "Email Bob"},
		{raw: "Review notes, next week", want: "Review notes"},
		{raw: "Pay rent by Friday!!", want: "Pay rent"},
		{raw: "Send invoice HIGH PRIORITY in 2 days", want: "Send invoice"},
		{raw: "Standup at 9:30 am this Monday", want: "Standup"},
		{raw: "Write report as soon as possible", want: "Write report"},
		{raw: "today", want: "today"},
		{raw: "Pick up Todd", want: "Pick up Todd"},
		{raw: "Report—tomorrow", want: "Report"},
		{raw: "Call Dave on Tuesday—urgent", want: "Call Dave"},
		{raw: "Fix the login bug urgently", want: "Fix the login bug urgently"},
		{raw: "Yoga mondays", want: "Yoga mondays"},
		{raw: "Walk the moon monday", want: "Walk the moon"},
		{raw: "Check back in 10000 minutes", want: "Check back"},
		{raw: "Café today", want: "Café"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.clean(tt.raw), tt.raw)
	}
}

func TestSuggest(t *testing.T) {
	strong := Confidence{Date: 0.9, Priority: 0.9, Category: 0.8}
	assert.Empty(t, suggest("x", strong))
	assert.NotNil(t, suggest("x", strong))

	weak := Confidence{Date: 0.4, Priority: 0.5, Category: 0.2}
	assert.Equal(t, []string{SuggestDate, SuggestCategory, SuggestPriority}, suggest("x", weak))
	assert.Equal(t, []string{SuggestDate, SuggestCategory}, suggest("x!", weak))
}

func TestAggregate(t *testing.T) {
	assert.InDelta(t, 0.2, aggregate(0, 0, 0), 1e-9)
	assert.InDelta(t, 1.0, aggregate(1, 1, 1), 1e-9)
	assert.InDelta(t, 0.2+0.2*0.5+0.3*0.1, aggregate(0, 0.5, 0.1), 1e-9)
}

type panicSource struct{}

func (panicSource) extract(string) (Category, float64) { panic("boom") }

type recordingLogger struct {
	noopLogger
	errors []string
}

func (r *recordingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	r.errors = append(r.errors, fmt.Sprintf(template, arg...))
}

func TestParseIsolatesFailingExtractor(t *testing.T) {
	l := &recordingLogger{}
	p := New(l)
	p.categories = panicSource{}

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	res := p.ParseAt(context.Background(), "buy groceries tomorrow urgent", now)

	assert.Equal(t, CategoryOther, res.Category)
	assert.InDelta(t, fallbackCategoryConf, res.Confidence.Category, 1e-9)
	assert.Equal(t, PriorityUrgent, res.Priority)
	require.NotNil(t, res.DueDate)
	assert.Equal(t, "buy groceries", res.Title)

	require.Len(t, l.errors, 1)
	assert.Contains(t, l.errors[0], "category extraction failed: boom")
}

type invalidSource struct{}

func (invalidSource) extract(string, string) (Priority, float64) { return Priority(9), 3 }

func TestParseRepairsOutOfRangeValues(t *testing.T) {
	p := New(nil)
	p.priorities = invalidSource{}

	res := p.ParseAt(context.Background(), "anything", time.Now())
	assert.Equal(t, PriorityMedium, res.Priority)
	assert.InDelta(t, defaultPriorityConf, res.Confidence.Priority, 1e-9)
}
