package usecase

import (
	"strings"
	"unicode/utf8"

	"smart-todo/internal/task"
	"smart-todo/pkg/nlparser"
)

// validateText checks parser input against the configured size bound.
func (uc *implUseCase) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return task.ErrEmptyInput
	}
	if utf8.RuneCountInString(text) > uc.maxInputLength {
		return task.ErrInputTooLong
	}
	return nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > task.MaxTitleLength {
		return "", task.ErrInvalidTitle
	}
	return title, nil
}

// truncateTitle shortens a parsed title to the stored maximum.
func truncateTitle(title string) string {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= task.MaxTitleLength {
		return title
	}
	return strings.TrimSpace(string([]rune(title)[:task.MaxTitleLength]))
}

// resolvePriority maps the zero value to the default level.
func resolvePriority(p nlparser.Priority) (nlparser.Priority, error) {
	if p == 0 {
		return nlparser.PriorityMedium, nil
	}
	if !p.Valid() {
		return 0, task.ErrInvalidPriority
	}
	return p, nil
}

// resolveCategory maps the empty value to the fallback category.
func resolveCategory(c nlparser.Category) (nlparser.Category, error) {
	c = nlparser.Category(strings.ToLower(strings.TrimSpace(string(c))))
	if c == "" {
		return nlparser.CategoryOther, nil
	}
	if !c.Valid() {
		return "", task.ErrInvalidCategory
	}
	return c, nil
}

// optionalText turns blank text into nil.
func optionalText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
