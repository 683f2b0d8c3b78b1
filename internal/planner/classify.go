package planner

import (
	"context"
	"errors"
	"fmt"

	"event-planner/pkg/extract"
	"event-planner/pkg/llmprovider"
)

// Classify maps an error returned inside a task to its ErrorKind.
// ctx is the run context handed to the task; once it is done every error is a cancellation.
func Classify(ctx context.Context, err error) ErrorKind {
	if err == nil {
		return KindInternal
	}
	if ctx != nil && ctx.Err() != nil {
		return KindCancelled
	}

	switch {
	case errors.Is(err, ErrPreconditionUnmet):
		return KindPreconditionUnmet
	case errors.Is(err, ErrUpstreamFailed):
		return KindUpstreamFailure
	case errors.Is(err, extract.ErrMalformedOutput):
		return KindMalformedOutput
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, llmprovider.ErrProviderTimeout):
		return KindTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, ErrRunCancelled):
		return KindCancelled
	default:
		return KindServiceError
	}
}

// Fail converts err into a failed output.
func Fail(ctx context.Context, err error) Output {
	return Failed(Classify(ctx, err), err)
}

// Precondition fails a task before any outbound call.
func Precondition(format string, args ...any) Output {
	return Failed(KindPreconditionUnmet, fmt.Errorf("%w: %s", ErrPreconditionUnmet, fmt.Sprintf(format, args...)))
}

// UpstreamFailed reports that the named upstream produced no value.
func UpstreamFailed(name string) Output {
	return Failed(KindUpstreamFailure, fmt.Errorf("%w: %s", ErrUpstreamFailed, name))
}
