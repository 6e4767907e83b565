package validate

import "github.com/typegraph/typir/problem"

// Rule pattern-matches a host node and reports zero or more diagnostic
// messages. A Rule never panics on a recognized validation failure —
// that is what the returned messages are for (spec.md §4.J, §7).
type Rule func(node any) []problem.Message

// Collector holds an ordered set of Rules and runs all of them against
// a node, concatenating their messages. Order is registration order;
// Collector does not short-circuit on the first rule that reports
// anything, since a node can fail more than one independent constraint
// at once and a host wants to see all of them in a single pass.
type Collector struct {
	rules []Rule
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// AddValidationRule appends rule to the end of the run order.
func (c *Collector) AddValidationRule(rule Rule) {
	c.rules = append(c.rules, rule)
}

// Validate runs every registered rule against node and concatenates
// their messages in registration order. Returns nil, not an empty
// non-nil slice, when nothing was reported.
func (c *Collector) Validate(node any) []problem.Message {
	var messages []problem.Message
	for _, rule := range c.rules {
		messages = append(messages, rule(node)...)
	}
	return messages
}
