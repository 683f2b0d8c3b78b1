package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"event-planner/internal/event"
)

func newIntentCmd(factory useCaseFactory, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "intent [description]",
		Short:   "Extract and print the structured intent without planning",
		Example: `  event-planner intent "Birthday party in Karachi tomorrow, 40 people"`,
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

			intent, err := uc.ExtractIntent(ctx, event.ExtractIntentInput{RawText: text})
			if err != nil {
				return err
			}
			return writeJSON(cmd, opts, intent)
		},
	}
}
