package quadra

// SearchPosition describes where in the search tree an event happened.
type SearchPosition interface {
	// Depth is the number of tentative assignments on the current path.
	Depth() int
	// Nodes is the total number of assignments tried so far.
	Nodes() uint64
}

// Tracer receives progress events from the search engine.
type Tracer interface {
	// Branch is called after a value is tentatively assigned to a variable.
	Branch(p SearchPosition, variable string, value int)
	// Fail is called when propagation rejects the current assignment.
	// constraint names the propagator that detected the conflict.
	Fail(p SearchPosition, constraint string)
	// Backtrack is called when a choice point runs out of values and
	// control returns to its parent.
	Backtrack(p SearchPosition, variable string)
	// Solution is called once when a complete consistent assignment is
	// reached.
	Solution(p SearchPosition)
}
