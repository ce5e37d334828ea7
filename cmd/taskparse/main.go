// Command taskparse reads a task description from its arguments and prints
// the parsed fields as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-todo/internal/task"
	"smart-todo/internal/task/usecase"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/nlparser"
)

var Version = "dev"

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	timezone   string
	pmCutoff   int
	maxLength  int
	strictTime bool
	wholeWord  bool
	pretty     bool
}

func newRootCmd(clock func() time.Time) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "taskparse [flags] <text...>",
		Short: "Parse a free-text task description",
		Long: `Parse a free-text task description into a title, due date, priority,
category and confidence scores.

Examples:
  taskparse "Call the client tomorrow at 2pm"
  taskparse --timezone Asia/Ho_Chi_Minh --pretty URGENT: submit report asap!!`,
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, clock, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone relative dates are resolved in")
	cmd.Flags().IntVar(&opts.pmCutoff, "pm-cutoff", nlparser.DefaultPMCutoffHour, "bare hours below this read as PM (0 disables)")
	cmd.Flags().BoolVar(&opts.strictTime, "strict-time", false, "require \"at\", minutes or am/pm before a number reads as a time")
	cmd.Flags().BoolVar(&opts.wholeWord, "whole-word", false, "match vocabulary as whole words only")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", task.DefaultMaxInputLength, "maximum input length in characters")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func runParse(cmd *cobra.Command, opts options, clock func() time.Time, text string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loc, err := datemath.LoadLocation(opts.timezone)
	if err != nil {
		return err
	}
	if opts.pmCutoff < 0 || opts.pmCutoff > 12 {
		return fmt.Errorf("--pm-cutoff must be within 0..12, got %d", opts.pmCutoff)
	}

	// Extraction failures go to stderr so stdout stays valid JSON.
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingConsole,
		Output:   cmd.ErrOrStderr(),
	})

	parser := nlparser.New(l,
		nlparser.WithLocation(loc),
		nlparser.WithClock(clock),
		nlparser.WithPMCutoffHour(opts.pmCutoff),
		nlparser.WithBareHourTimes(!opts.strictTime),
		nlparser.WithWholeWordMatching(opts.wholeWord),
	)
	uc := usecase.New(l, nil, parser, nil, nil, usecase.Config{
		MaxInputLength: opts.maxLength,
		Clock:          clock,
	})

	out, err := uc.Parse(ctx, task.ParseInput{Text: text})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if opts.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newParseView(out.Result))
}
