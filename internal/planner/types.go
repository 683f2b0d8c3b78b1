package planner

import (
	"context"
	"time"

	"event-planner/internal/model"
)

// Status is the lifecycle state of a task within one run.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// ErrorKind classifies why a task failed.
type ErrorKind string

const (
	KindPreconditionUnmet ErrorKind = "precondition_unmet"
	KindMalformedOutput   ErrorKind = "malformed_output"
	KindServiceError      ErrorKind = "service_error"
	KindTimeout           ErrorKind = "timeout"
	KindCancelled         ErrorKind = "cancelled"
	KindUpstreamFailure   ErrorKind = "upstream_failure"
	KindInternal          ErrorKind = "internal"
)

// Output is the tagged result of a task: a value on success, a kind and error on failure.
type Output struct {
	Status   Status
	Value    any
	Kind     ErrorKind
	Err      error
	Duration time.Duration
}

// Succeeded wraps a task value.
func Succeeded(v any) Output {
	return Output{Status: StatusSucceeded, Value: v}
}

// Failed builds a failed output of the given kind.
func Failed(kind ErrorKind, err error) Output {
	return Output{Status: StatusFailed, Kind: kind, Err: err}
}

// OK reports whether the task succeeded.
func (o Output) OK() bool {
	return o.Status == StatusSucceeded
}

// Upstream is the read-only view of a task's declared dependencies, keyed by task name.
type Upstream map[string]Output

// Value returns the succeeded value of the named upstream as T.
func Value[T any](up Upstream, name string) (T, bool) {
	var zero T
	out, ok := up[name]
	if !ok || !out.OK() {
		return zero, false
	}
	v, ok := out.Value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// ProduceFunc computes one task's output from the intent and its upstream outputs.
type ProduceFunc func(ctx context.Context, intent model.Intent, up Upstream) Output

// Descriptor declares a task: its name, the tasks it consumes and how it produces output.
// Summarizes names the plan section a summarizer condenses; it is empty for ordinary tasks.
type Descriptor struct {
	Name       string
	Upstream   []string
	Produce    ProduceFunc
	Summarizes string
}

// IsSummarizer reports whether d produces a section digest.
func (d Descriptor) IsSummarizer() bool {
	return d.Summarizes != ""
}
