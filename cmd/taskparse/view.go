package main

import (
	"smart-todo/pkg/nlparser"
	"smart-todo/pkg/response"
)

type parsedTaskView struct {
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	DueDate     *response.Timestamp `json:"due_date"`
	Priority    int                 `json:"priority"`
	Category    string              `json:"category"`
	Confidence  nlparser.Confidence `json:"confidence"`
	Suggestions []string            `json:"suggestions"`
}

type previewView struct {
	Title    string              `json:"title"`
	DueDate  *response.Timestamp `json:"due_date"`
	Priority int                 `json:"priority"`
	Category string              `json:"category"`
}

type parseView struct {
	OriginalText string         `json:"original_text"`
	ParsedTask   parsedTaskView `json:"parsed_task"`
	Preview      previewView    `json:"preview"`
}

func newParseView(r nlparser.Result) parseView {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	due := response.NewTimestamp(r.DueDate)
	return parseView{
		OriginalText: r.OriginalText,
		ParsedTask: parsedTaskView{
			Title:       r.Title,
			Description: r.Description,
			DueDate:     due,
			Priority:    int(r.Priority),
			Category:    string(r.Category),
			Confidence:  r.Confidence,
			Suggestions: suggestions,
		},
		Preview: previewView{
			Title:    r.Title,
			DueDate:  due,
			Priority: int(r.Priority),
			Category: string(r.Category),
		},
	}
}
