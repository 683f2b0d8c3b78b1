package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"event-planner/internal/event"
)

func newPlanCmd(factory useCaseFactory, opts *rootOptions) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Run the full planning pipeline and print the plan as JSON",
		Example: `  event-planner plan "Wedding in Lahore on 2025-06-13 for 300 guests"
  echo "team offsite in Murree next friday" | event-planner plan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd.Context(), opts)
			defer cancel()

			uc, err := factory(ctx)
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			out, err := uc.PlanEvent(ctx, event.PlanEventInput{RawText: text})
			if err != nil {
				return err
			}

			if summaryOnly {
				return writeJSON(cmd, opts, map[string]any{
					"intent":   out.Plan.Intent,
					"summary":  out.Plan.Summary,
					"failures": out.Plan.Failures,
				})
			}
			return writeJSON(cmd, opts, out.Plan)
		},
	}
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print the intent, summaries and failures only")
	return cmd
}
