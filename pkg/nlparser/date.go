package nlparser

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"smart-todo/pkg/datemath"
)

var (
	// Optional "at", hour, optional ":MM", optional am/pm.
	clockPattern = regexp.MustCompile(`\b(?:(at)\s+)?(\d{1,2})(?::(\d{2}))?(?:\s*([ap])m)?\b`)

	durationPattern = regexp.MustCompile(`\bin\s+(\d+)\s+(minute|hour|day)s?\b`)
)

type dateExtractor struct {
	rules    []timeRule
	match    matcher
	pmCutoff int

	// bareHours lets a lone number such as the "2" in "buy 2 apples" count
	// as a clock time.
	bareHours bool
}

func (r timeRule) resolve(now time.Time) time.Time {
	var t time.Time
	if r.mode == resolveWeekday {
		t = datemath.NextWeekday(now, r.weekday)
	} else {
		t = datemath.AddDays(now, r.days)
	}
	if r.clock.set {
		t = datemath.AtClock(t, r.clock.hour, r.clock.minute)
	}
	return t
}

func (e dateExtractor) extract(lower string, now time.Time) (*time.Time, float64) {
	clock, hasClock := e.findClock(lower)

	var candidates []scored[time.Time]
	for _, rule := range e.rules {
		if !e.match.phrase(lower, rule.phrase) {
			continue
		}
		due := rule.resolve(now)
		confidence := rule.confidence
		if hasClock {
			due = datemath.AtClock(due, clock.hour, clock.minute)
			confidence = math.Min(1, confidence+specificTimeBonus)
		}
		candidates = append(candidates, scored[time.Time]{value: due, confidence: confidence})
	}

	if c, ok := findDuration(lower, now); ok {
		candidates = append(candidates, c)
	}

	best, ok := pickBest(candidates)
	if !ok {
		return nil, 0
	}
	due := best.value
	return &due, best.confidence
}

// findClock returns the first explicit clock-time token in lower.
func (e dateExtractor) findClock(lower string) (clockTime, bool) {
	for _, m := range clockPattern.FindAllStringSubmatch(lower, -1) {
		hasAt, minutes, marker := m[1] != "", m[3], m[4]
		if !e.bareHours && !hasAt && minutes == "" && marker == "" {
			continue
		}

		hour, _ := strconv.Atoi(m[2])
		minute := 0
		if minutes != "" {
			minute, _ = strconv.Atoi(minutes)
		}
		if minute > 59 {
			continue
		}

		switch marker {
		case "p":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour != 12 {
				hour += 12
			}
		case "a":
			if hour < 1 || hour > 12 {
				continue
			}
			if hour == 12 {
				hour = 0
			}
		default:
			if hour > 23 {
				continue
			}
			// "at 3" reads as 15:00 and "at 0" as noon.
			if hour < e.pmCutoff {
				hour += 12
			}
		}
		return at(hour, minute), true
	}
	return clockTime{}, false
}

func findDuration(lower string, now time.Time) (scored[time.Time], bool) {
	m := durationPattern.FindStringSubmatch(lower)
	if m == nil {
		return scored[time.Time]{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return scored[time.Time]{}, false
	}

	switch m[2] {
	case "minute":
		return offsetBy(now, n, time.Minute, minuteDeltaConf)
	case "hour":
		return offsetBy(now, n, time.Hour, hourDeltaConf)
	default:
		if _, ok := scaled(n, 24*time.Hour); !ok {
			return scored[time.Time]{}, false
		}
		return scored[time.Time]{value: datemath.AddDays(now, n), confidence: dayDeltaConf}, true
	}
}

func offsetBy(now time.Time, n int, unit time.Duration, confidence float64) (scored[time.Time], bool) {
	d, ok := scaled(n, unit)
	if !ok {
		return scored[time.Time]{}, false
	}
	return scored[time.Time]{value: now.Add(d), confidence: confidence}, true
}

// scaled returns n units, or false when that does not fit a time.Duration.
func scaled(n int, unit time.Duration) (time.Duration, bool) {
	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, false
	}
	return time.Duration(n) * unit, true
}
