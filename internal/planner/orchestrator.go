package planner

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"event-planner/internal/model"
	"event-planner/pkg/log"
)

// Execute validates descriptors and runs every task to a terminal state.
// The only errors are graph validation errors, returned before any task runs.
func (o *Orchestrator) Execute(ctx context.Context, intent model.Intent, descriptors []Descriptor) (*ResultGraph, error) {
	g, err := NewGraph(descriptors)
	if err != nil {
		o.l.Errorf(ctx, "planner.Execute: invalid task graph: %v", err)
		return nil, err
	}
	return o.Run(ctx, intent, g), nil
}

// Run executes a validated graph. Each task starts once all of its upstreams are terminal.
func (o *Orchestrator) Run(ctx context.Context, intent model.Intent, g *Graph) *ResultGraph {
	if o.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.RunTimeout)
		defer cancel()
	}

	order := g.Order()
	rg := newResultGraph(order)

	var sem *semaphore.Weighted
	if o.cfg.MaxConcurrency > 0 {
		sem = semaphore.NewWeighted(int64(o.cfg.MaxConcurrency))
	}

	done := make(map[string]chan struct{}, len(order))
	for _, name := range order {
		done[name] = make(chan struct{})
	}

	start := time.Now()
	o.l.Info(ctx, "planner run started", "tasks", len(order))

	var wg sync.WaitGroup
	for _, name := range order {
		d, _ := g.Descriptor(name)
		ups := g.Upstream(name)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer close(done[d.Name])
			rg.set(d.Name, o.runTask(ctx, intent, d, ups, done, rg, sem))
		}()
	}
	wg.Wait()

	failed := 0
	for _, out := range rg.Snapshot() {
		if !out.OK() {
			failed++
		}
	}
	o.l.Info(ctx, "planner run finished", "tasks", len(order), "failed", failed, "duration", time.Since(start).String())
	return rg
}

func (o *Orchestrator) runTask(
	ctx context.Context,
	intent model.Intent,
	d Descriptor,
	ups []string,
	done map[string]chan struct{},
	rg *ResultGraph,
	sem *semaphore.Weighted,
) Output {
	ctx = log.WithTask(ctx, d.Name)

	for _, u := range ups {
		select {
		case <-done[u]:
		case <-ctx.Done():
			return o.finish(ctx, d.Name, Failed(KindCancelled, fmt.Errorf("%w: %v", ErrRunCancelled, ctx.Err())), time.Now())
		}
	}
	if err := ctx.Err(); err != nil {
		return o.finish(ctx, d.Name, Failed(KindCancelled, fmt.Errorf("%w: %v", ErrRunCancelled, err)), time.Now())
	}

	upstream := rg.upstream(ups)
	for _, u := range ups {
		if !upstream[u].OK() {
			return o.finish(ctx, d.Name, UpstreamFailed(u), time.Now())
		}
	}

	if sem != nil {
		if err := sem.Acquire(ctx, 1); err != nil {
			return o.finish(ctx, d.Name, Failed(KindCancelled, fmt.Errorf("%w: %v", ErrRunCancelled, err)), time.Now())
		}
		defer sem.Release(1)
	}

	rg.markRunning(d.Name)
	start := time.Now()
	o.l.Debugf(ctx, "planner task %s started", d.Name)

	result := make(chan Output, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				o.l.Errorf(ctx, "planner task %s panicked: %v\n%s", d.Name, r, debug.Stack())
				result <- Failed(KindInternal, fmt.Errorf("task %s panicked: %v", d.Name, r))
			}
		}()
		result <- d.Produce(ctx, intent, upstream)
	}()

	select {
	case out := <-result:
		if err := ctx.Err(); err != nil {
			// late results after cancellation are discarded
			out = Failed(KindCancelled, fmt.Errorf("%w: %v", ErrRunCancelled, err))
		}
		return o.finish(ctx, d.Name, out, start)
	case <-ctx.Done():
		return o.finish(ctx, d.Name, Failed(KindCancelled, fmt.Errorf("%w: %v", ErrRunCancelled, ctx.Err())), start)
	}
}

func (o *Orchestrator) finish(ctx context.Context, name string, out Output, start time.Time) Output {
	if !out.Status.Terminal() {
		out = Failed(KindInternal, fmt.Errorf("task %s returned non-terminal status %s", name, out.Status))
	}
	out.Duration = time.Since(start)

	if out.OK() {
		o.l.Info(ctx, "planner task succeeded", "duration", out.Duration.String())
		return out
	}
	switch out.Kind {
	case KindUpstreamFailure, KindCancelled:
		o.l.Info(ctx, "planner task skipped", "kind", string(out.Kind), "error", errString(out.Err))
	default:
		o.l.Warn(ctx, "planner task failed", "kind", string(out.Kind), "error", errString(out.Err), "duration", out.Duration.String())
	}
	return out
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
