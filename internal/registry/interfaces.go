package registry

import "iter"

// Descender is the traversal capability every stored object graph provides.
// The registry only reads identifiers and invokes traversal; it never mutates
// the objects it holds.
type Descender interface {
	// Descend yields every object transitively reachable from this one in
	// depth-first order. The sequence must be deterministic and complete:
	// every nested object is reachable exactly once. The object itself is
	// not part of its own descent.
	Descend() iter.Seq[any]

	// DescendOnce yields only the immediate children, in the same relative
	// order Descend would produce them.
	DescendOnce() iter.Seq[any]
}

// Identifiable is a top-level object graph with a globally unique identifier,
// assigned at creation and immutable while the object is stored.
// Implementations are expected to be pointer types; the store compares
// stored handles, not values, when enforcing uniqueness.
type Identifiable interface {
	Descender
	ID() string
}

// Referable is an object reachable via descent that additionally carries a
// short local name. Short names are not unique store-wide; by convention they
// are unique only within a single parent's direct children, and the registry
// does not enforce that.
type Referable interface {
	Descender
	IDShort() string
}

// Compile-time checks that both provider implementations satisfy the
// ObjectProvider interface.
var (
	_ ObjectProvider = (*Store)(nil)
	_ ObjectProvider = (*Multiplexer)(nil)
)
