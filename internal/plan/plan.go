// Package plan orders a configuration's producers into a deterministic
// evaluation plan. Every producer appears after all producers of its own
// inputs; ties are broken by declaration order so the plan is reproducible
// across runs. A graph with no valid order is rejected with the full cycle.
package plan

import (
	"context"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/classify"
	"github.com/vk/samcase/internal/ctxlog"
)

// Build computes the evaluation plan from the classifier's dependency
// edges. It either returns a complete plan covering every producer, or an
// error and no plan at all; there are no partial results.
func Build(ctx context.Context, info *classify.CaseVariableInfo) ([]classify.ProducerID, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Plan: building evaluation plan.", "config", info.Config, "producers", len(info.Producers))

	g := buildGraph(info)

	plan := make([]classify.ProducerID, 0, len(info.Producers))
	emitted := make(map[classify.ProducerID]bool)
	indegree := make(map[classify.ProducerID]int, len(info.Producers))
	for _, id := range info.Producers {
		indegree[id] = len(g.deps[id])
	}

	// Kahn's algorithm, selecting the first ready producer in declaration
	// order each round. Quadratic in the producer count, which is bounded
	// by the static spec size.
	for len(plan) < len(info.Producers) {
		progressed := false
		for _, id := range info.Producers {
			if emitted[id] || indegree[id] > 0 {
				continue
			}
			emitted[id] = true
			plan = append(plan, id)
			for dependent := range g.dependents[id] {
				indegree[dependent]--
			}
			progressed = true
			break
		}
		if !progressed {
			cycle := g.findCycle(info.Producers, emitted)
			names := make([]string, len(cycle))
			for i, id := range cycle {
				names[i] = string(id)
			}
			return nil, &caseerr.CyclicDependencyError{Config: info.Config, Cycle: names}
		}
	}

	logger.Debug("Plan: evaluation plan complete.", "config", info.Config, "plan_length", len(plan))
	return plan, nil
}

// graph is the producer-to-producer dependency graph: an edge A -> B means
// some output of A is an input of B.
type graph struct {
	deps       map[classify.ProducerID]map[classify.ProducerID]bool
	dependents map[classify.ProducerID]map[classify.ProducerID]bool
}

func buildGraph(info *classify.CaseVariableInfo) *graph {
	g := &graph{
		deps:       make(map[classify.ProducerID]map[classify.ProducerID]bool, len(info.Producers)),
		dependents: make(map[classify.ProducerID]map[classify.ProducerID]bool, len(info.Producers)),
	}
	for _, id := range info.Producers {
		g.deps[id] = make(map[classify.ProducerID]bool)
		g.dependents[id] = make(map[classify.ProducerID]bool)
	}

	producerOf := make(map[string]classify.ProducerID, len(info.ProducerEdges))
	for _, e := range info.ProducerEdges {
		producerOf[e.Variable] = e.Producer
	}

	for _, e := range info.ConsumerEdges {
		from, produced := producerOf[e.Variable]
		if !produced {
			continue
		}
		to := classify.ProducerID(e.Consumer)
		if _, isProducer := g.deps[to]; !isProducer {
			continue // The primary module consumes but never produces.
		}
		// A producer consuming its own output is a self-loop; keeping the
		// edge lets the cycle check reject it.
		g.deps[to][from] = true
		g.dependents[from][to] = true
	}
	return g
}

// findCycle extracts one full cycle from the unemitted remainder of the
// graph using depth-first search with visiting/visited coloring. Called
// only after the sort stalled, so a cycle is guaranteed to exist.
func (g *graph) findCycle(order []classify.ProducerID, emitted map[classify.ProducerID]bool) []classify.ProducerID {
	visiting := make(map[classify.ProducerID]bool)
	visited := make(map[classify.ProducerID]bool)
	var stack []classify.ProducerID
	var cycle []classify.ProducerID

	var visit func(id classify.ProducerID) bool
	visit = func(id classify.ProducerID) bool {
		visiting[id] = true
		stack = append(stack, id)
		for _, dep := range sortedByOrder(g.deps[id], order) {
			if emitted[dep] {
				continue
			}
			if visiting[dep] {
				// Slice the stack from the first occurrence of dep to get
				// the ordered cycle.
				for i, onStack := range stack {
					if onStack == dep {
						cycle = append(cycle, stack[i:]...)
						return true
					}
				}
			}
			if !visited[dep] && visit(dep) {
				return true
			}
		}
		stack = stack[:len(stack)-1]
		delete(visiting, id)
		visited[id] = true
		return false
	}

	for _, id := range order {
		if emitted[id] || visited[id] {
			continue
		}
		stack = stack[:0]
		if visit(id) {
			return cycle
		}
	}
	return nil
}

// sortedByOrder returns the members of set in declaration order, keeping
// cycle extraction deterministic.
func sortedByOrder(set map[classify.ProducerID]bool, order []classify.ProducerID) []classify.ProducerID {
	out := make([]classify.ProducerID, 0, len(set))
	for _, id := range order {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}
