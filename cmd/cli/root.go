package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"event-planner/config"
	"event-planner/internal/bootstrap"
	"event-planner/internal/event"
	"event-planner/pkg/log"
)

var errNoText = errors.New("describe the event as an argument or on stdin")

// useCaseFactory builds the event use case; tests replace it with a fake.
type useCaseFactory func(ctx context.Context) (event.UseCase, error)

type rootOptions struct {
	timeout time.Duration
	compact bool
}

func newRootCmd(factory useCaseFactory) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "event-planner",
		Short:         "Plan events from a free-text description",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "abort the command after this long")
	root.PersistentFlags().BoolVar(&opts.compact, "compact", false, "print JSON on a single line")

	root.AddCommand(newPlanCmd(factory, opts), newIntentCmd(factory, opts), newCalendarAuthCmd())
	return root
}

func newEventUseCase(ctx context.Context) (event.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return bootstrap.NewEventUseCase(ctx, cfg, logger)
}

// inputText joins the positional arguments, falling back to stdin.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(string(b))
	}
	if text == "" {
		return "", errNoText
	}
	return text, nil
}

func writeJSON(cmd *cobra.Command, opts *rootOptions, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func withTimeout(ctx context.Context, opts *rootOptions) (context.Context, context.CancelFunc) {
	if opts.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, opts.timeout)
}
