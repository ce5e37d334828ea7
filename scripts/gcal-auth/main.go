// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access and generate
// the token file read by the API when google_calendar.credentials_path
// points at an OAuth Desktop App credentials file.
//
// Usage:
//   go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
//
// It prints a URL, you log in with your Google account, paste the
// authorization code, and the token is saved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:          "gcal-auth",
		Short:        "Authorize Google Calendar access and save an OAuth token",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return authorize(cmd.Context(), credsPath, tokenPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth client credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")
	return cmd
}

func authorize(ctx context.Context, credsPath, tokenPath string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("failed to parse credentials (is %q an OAuth Desktop App credentials file?): %w", credsPath, err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "=================================================================")
	fmt.Fprintln(out, "STEP 1: open this URL in a browser and sign in to Google:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "=================================================================")
	fmt.Fprint(out, "STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Token saved to %s. Restart the API to enable calendar sync.\n", tokenPath)
	return nil
}
