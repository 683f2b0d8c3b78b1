package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"event-planner/pkg/gcalendar"
)

// newCalendarAuthCmd runs the one-off OAuth consent flow that produces the
// token.json read by the calendar export when desktop credentials are used.
func newCalendarAuthCmd() *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and write token.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}

			conf, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, conf.AuthCodeURL("event-planner", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := conf.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", tokenPath, err)
			}
			fmt.Fprintf(out, "\nSaved %s\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", gcalendar.DefaultTokenPath, "where to write the token")
	return cmd
}
