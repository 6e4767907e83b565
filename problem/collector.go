package problem

import "sync"

// Collector accumulates Problems across the course of an operation that may
// want to report more than one failure at once, rather than stopping at the
// first. No package of the engine uses it itself; [validate.Collector]
// concatenates plain [Message] values instead.
//
// Collector is safe for concurrent use: every method takes its mutex,
// matching the engine's general discipline of exposing lock-guarded state
// even though the engine's own call graph is single-threaded cooperative.
type Collector struct {
	mu       sync.Mutex
	problems []Problem
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect adds p to the collector.
func (c *Collector) Collect(p Problem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.problems = append(c.problems, p)
}

// CollectAll adds every problem in ps under a single lock acquisition.
func (c *Collector) CollectAll(ps []Problem) {
	if len(ps) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.problems = append(c.problems, ps...)
}

// Problems returns a defensive copy of the collected problems in collection
// order.
func (c *Collector) Problems() []Problem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.problems) == 0 {
		return nil
	}
	cp := make([]Problem, len(c.problems))
	copy(cp, c.problems)
	return cp
}

// Len returns the number of collected problems.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.problems)
}

// OK reports whether no problems have been collected.
func (c *Collector) OK() bool {
	return c.Len() == 0
}
