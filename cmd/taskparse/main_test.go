package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-todo/internal/task"
)

// Wednesday 2024-05-01 10:00 UTC.
func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(fixedClock)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "--timezone", "Asia/Ho_Chi_Minh", "Call the client tomorrow at 2pm")
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Equal(t, "2024-05-02T14:00:00+07:00", raw["parsed_task"]["due_date"])
	assert.Equal(t, "work", raw["parsed_task"]["category"])
	assert.Equal(t, float64(2), raw["parsed_task"]["priority"])
	assert.Nil(t, raw["parsed_task"]["description"])
	assert.Equal(t, "Call the client", raw["preview"]["title"])
	assert.NotContains(t, out, "\n  ", "compact output by default")
}

func TestParseCommandJoinsArgs(t *testing.T) {
	out, err := execute(t, "--pretty", "URGENT:", "submit", "report", "asap!!")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  ")

	var view struct {
		OriginalText string `json:"original_text"`
		ParsedTask   struct {
			Priority   int `json:"priority"`
			Confidence struct {
				Priority float64 `json:"priority"`
			} `json:"confidence"`
		} `json:"parsed_task"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "URGENT: submit report asap!!", view.OriginalText)
	assert.Equal(t, 4, view.ParsedTask.Priority)
	assert.Equal(t, 0.9, view.ParsedTask.Confidence.Priority)
}

func TestParseCommandSuggestions(t *testing.T) {
	out, err := execute(t, "finish the thing")
	require.NoError(t, err)

	var raw struct {
		ParsedTask struct {
			DueDate     *string  `json:"due_date"`
			Suggestions []string `json:"suggestions"`
		} `json:"parsed_task"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Nil(t, raw.ParsedTask.DueDate)
	assert.GreaterOrEqual(t, len(raw.ParsedTask.Suggestions), 2)
}

func TestParseCommandMatchingFlags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantDue      string
		wantPriority float64
	}{
		{name: "defaults", args: []string{"buy 2 apples tomorrow urgently"}, wantDue: "2024-05-02T14:00:00Z", wantPriority: 4},
		{name: "strict time", args: []string{"--strict-time", "buy 2 apples tomorrow urgently"}, wantDue: "2024-05-02T10:00:00Z", wantPriority: 4},
		{name: "whole word", args: []string{"--whole-word", "buy 2 apples tomorrow urgently"}, wantDue: "2024-05-02T14:00:00Z", wantPriority: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var raw map[string]map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &raw))
			assert.Equal(t, tt.wantDue, raw["parsed_task"]["due_date"])
			assert.Equal(t, tt.wantPriority, raw["parsed_task"]["priority"])
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "blank text", args: []string{"   "}, want: task.ErrEmptyInput},
		{name: "too long", args: []string{"--max-length", "5", "buy milk today"}, want: task.ErrInputTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out)
		})
	}

	t.Run("no args", func(t *testing.T) {
		_, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("bad timezone", func(t *testing.T) {
		_, err := execute(t, "--timezone", "Nowhere/Special", "buy milk")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "Nowhere/Special"))
	})

	t.Run("bad cutoff", func(t *testing.T) {
		_, err := execute(t, "--pm-cutoff", "13", "buy milk")
		assert.Error(t, err)
	})
}
