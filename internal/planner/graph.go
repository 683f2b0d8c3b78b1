package planner

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"
)

// Graph is a validated, acyclic set of task descriptors.
type Graph struct {
	nodes    []Descriptor
	index    map[string]int
	incoming [][]int
	outgoing [][]int
	order    []int
}

// NewGraph validates descriptors and computes a deterministic topological order.
// Descriptors are canonicalized by name so the order does not depend on declaration order.
func NewGraph(descriptors []Descriptor) (*Graph, error) {
	if len(descriptors) == 0 {
		return nil, ErrEmptyGraph
	}

	nodes := make([]Descriptor, len(descriptors))
	copy(nodes, descriptors)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })

	g := &Graph{
		nodes:    nodes,
		index:    make(map[string]int, len(nodes)),
		incoming: make([][]int, len(nodes)),
		outgoing: make([][]int, len(nodes)),
	}
	for i, d := range nodes {
		if strings.TrimSpace(d.Name) == "" {
			return nil, ErrEmptyTaskName
		}
		if _, dup := g.index[d.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, d.Name)
		}
		if d.Produce == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingProduce, d.Name)
		}
		g.index[d.Name] = i
	}

	for i, d := range nodes {
		seen := make(map[int]bool, len(d.Upstream))
		for _, up := range d.Upstream {
			j, ok := g.index[up]
			if !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownTask, d.Name, up)
			}
			if seen[j] {
				continue
			}
			seen[j] = true
			g.incoming[i] = append(g.incoming[i], j)
			g.outgoing[j] = append(g.outgoing[j], i)
		}
	}
	for i := range g.outgoing {
		sort.Ints(g.outgoing[i])
		sort.Ints(g.incoming[i])
	}

	g.order = g.topoOrder()
	if len(g.order) != len(g.nodes) {
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(g.cycle(), " -> "))
	}
	return g, nil
}

// Len returns the number of tasks.
func (g *Graph) Len() int { return len(g.nodes) }

// Order returns task names in topological order.
func (g *Graph) Order() []string {
	out := make([]string, 0, len(g.order))
	for _, i := range g.order {
		out = append(out, g.nodes[i].Name)
	}
	return out
}

// Descriptor returns the named descriptor.
func (g *Graph) Descriptor(name string) (Descriptor, bool) {
	i, ok := g.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return g.nodes[i], true
}

// Upstream returns the deduplicated upstream names of a task.
func (g *Graph) Upstream(name string) []string {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.incoming[i]))
	for _, j := range g.incoming[i] {
		out = append(out, g.nodes[j].Name)
	}
	return out
}

type intMinHeap []int

func (h intMinHeap) Len() int           { return len(h) }
func (h intMinHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intMinHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intMinHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// topoOrder runs Kahn's algorithm with a min-heap ready queue.
// A result shorter than the node count means a cycle exists.
func (g *Graph) topoOrder() []int {
	indeg := make([]int, len(g.nodes))
	for i := range g.incoming {
		indeg[i] = len(g.incoming[i])
	}

	ready := &intMinHeap{}
	for i, d := range indeg {
		if d == 0 {
			heap.Push(ready, i)
		}
	}

	out := make([]int, 0, len(indeg))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(int)
		out = append(out, n)
		for _, m := range g.outgoing[n] {
			indeg[m]--
			if indeg[m] == 0 {
				heap.Push(ready, m)
			}
		}
	}
	return out
}

// cycle extracts one stable cycle witness by DFS over canonical indices.
func (g *Graph) cycle() []string {
	const (
		white = iota
		gray
		black
	)

	color := make([]int, len(g.nodes))
	parent := make([]int, len(g.nodes))
	for i := range parent {
		parent[i] = -1
	}

	var path []int
	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = gray
		for _, v := range g.outgoing[u] {
			switch color[v] {
			case white:
				parent[v] = u
				if dfs(v) {
					return true
				}
			case gray:
				// back-edge u -> v
				path = append(path, v)
				for cur := u; cur != -1 && cur != v; cur = parent[cur] {
					path = append(path, cur)
				}
				path = append(path, v)
				return true
			}
		}
		color[u] = black
		return false
	}

	for i := range g.nodes {
		if color[i] == white && dfs(i) {
			break
		}
	}

	out := make([]string, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		out = append(out, g.nodes[path[i]].Name)
	}
	return out
}
