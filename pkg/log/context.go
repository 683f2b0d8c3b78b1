package log

import "context"

// WithRunID attaches a plan run ID that every log line emitted with ctx will carry.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID returns the run ID stored in ctx, if any.
func RunID(ctx context.Context) string {
	v, _ := ctx.Value(runIDKey).(string)
	return v
}

// WithTask attaches the name of the pipeline task currently executing.
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, taskKey, task)
}

// Task returns the task name stored in ctx, if any.
func Task(ctx context.Context) string {
	v, _ := ctx.Value(taskKey).(string)
	return v
}
