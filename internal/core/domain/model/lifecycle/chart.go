// Package lifecycle provides the data-driven status machine shared by every
// finite-state entity in the model. Each entity kind declares its legal
// transitions once, as an adjacency map, instead of re-deriving legality from
// scattered conditionals. Any edge not declared is denied; a state with no
// outgoing edges is terminal.
//
// Transitions may carry declarative side-effect stamps ("set the delivery date
// when entering DELIVERED"). The chart only reports the stamps; applying them
// is the aggregate's job, which keeps the chart pure and trivially testable.
package lifecycle

// Stamp names a declarative side effect required when entering a status.
type Stamp string

const (
	// StampDeliveryDate requires the actual delivery date to be set to "now"
	// when the status becomes DELIVERED and the previous status was not DELIVERED.
	StampDeliveryDate Stamp = "deliveryDate"

	// StampPaymentDate requires the payment date to be set to "now" when the
	// payment becomes PAID.
	StampPaymentDate Stamp = "paymentDate"
)

// Chart is the transition table for one entity kind: an adjacency map of legal
// from->to edges plus the stamps required on entering a status.
//
// Build a chart once at package init and share it; Chart is immutable after
// construction and safe for concurrent reads.
//
// Example:
//
//	var transitions = lifecycle.NewChart[Status]().
//	    Allow(Scheduled, Arrived, Cancelled).
//	    StampOnEnter(Arrived, lifecycle.StampDeliveryDate)
type Chart[S comparable] struct {
	edges   map[S]map[S]struct{}
	onEnter map[S][]Stamp
}

// NewChart creates an empty transition table.
func NewChart[S comparable]() *Chart[S] {
	return &Chart[S]{
		edges:   make(map[S]map[S]struct{}),
		onEnter: make(map[S][]Stamp),
	}
}

// Allow declares legal edges from one status to each of the given targets.
// Returns the chart for chaining.
func (c *Chart[S]) Allow(from S, targets ...S) *Chart[S] {
	set, ok := c.edges[from]
	if !ok {
		set = make(map[S]struct{}, len(targets))
		c.edges[from] = set
	}
	for _, to := range targets {
		set[to] = struct{}{}
	}
	return c
}

// StampOnEnter declares side-effect stamps required whenever a transition
// enters the given status. Returns the chart for chaining.
func (c *Chart[S]) StampOnEnter(target S, stamps ...Stamp) *Chart[S] {
	c.onEnter[target] = append(c.onEnter[target], stamps...)
	return c
}

// CanTransition reports whether the from->to edge is declared, and if so, the
// stamps the caller must apply on entering the target status.
func (c *Chart[S]) CanTransition(from, to S) (bool, []Stamp) {
	set, ok := c.edges[from]
	if !ok {
		return false, nil
	}
	if _, ok := set[to]; !ok {
		return false, nil
	}
	return true, c.onEnter[to]
}

// IsTerminal reports whether the status has no outgoing edges.
func (c *Chart[S]) IsTerminal(s S) bool {
	return len(c.edges[s]) == 0
}
