package planner

import "sync"

// ResultGraph records each task's status and terminal output for one run.
// Outputs are insert-once; after Execute returns it is read-only.
type ResultGraph struct {
	mu      sync.RWMutex
	order   []string
	status  map[string]Status
	outputs map[string]Output
}

func newResultGraph(order []string) *ResultGraph {
	rg := &ResultGraph{
		order:   order,
		status:  make(map[string]Status, len(order)),
		outputs: make(map[string]Output, len(order)),
	}
	for _, name := range order {
		rg.status[name] = StatusPending
	}
	return rg
}

// Names returns task names in topological order.
func (r *ResultGraph) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the terminal output of a task.
func (r *ResultGraph) Get(name string) (Output, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out, ok := r.outputs[name]
	return out, ok
}

// Status returns the current lifecycle state of a task.
func (r *ResultGraph) Status(name string) Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status[name]
}

// Snapshot copies every terminal output.
func (r *ResultGraph) Snapshot() map[string]Output {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Output, len(r.outputs))
	for k, v := range r.outputs {
		out[k] = v
	}
	return out
}

// Complete reports whether every task reached a terminal state.
func (r *ResultGraph) Complete() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.outputs) == len(r.order)
}

func (r *ResultGraph) markRunning(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status[name] == StatusPending {
		r.status[name] = StatusRunning
	}
}

// set stores a terminal output. The first write wins.
func (r *ResultGraph) set(name string, out Output) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.outputs[name]; exists {
		return false
	}
	if !out.Status.Terminal() {
		out.Status = StatusFailed
		out.Kind = KindInternal
	}
	r.outputs[name] = out
	r.status[name] = out.Status
	return true
}

// upstream collects the outputs of the named tasks.
func (r *ResultGraph) upstream(names []string) Upstream {
	r.mu.RLock()
	defer r.mu.RUnlock()
	up := make(Upstream, len(names))
	for _, n := range names {
		up[n] = r.outputs[n]
	}
	return up
}
