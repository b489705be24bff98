// Package registry implements the domain layer for the model object registry.
//
// The registry maps globally unique identifiers to Identifiable object graphs
// and answers tree-shaped lookups (by short local name) into the sub-structure
// each graph owns. It contains only pure Go code with standard library
// imports and has no knowledge of infrastructure concerns (file I/O, YAML
// parsing, caching, tracing).
//
// # Capability Interfaces
//
// The package never depends on concrete domain types. Anything stored must
// implement Identifiable (a unique identifier plus depth-first traversal of
// its composed sub-graph); objects produced by traversal that carry a short
// local name are recognized as Referable via type assertion. The split keeps
// the store pluggable over any object model that can satisfy the two small
// interfaces.
//
// # Store
//
// Store is an identity-keyed mutable set of Identifiables that is also an
// ObjectProvider. Insertion is keyed by identifier but guarded by instance
// identity: two distinct instances claiming the same identifier indicate a
// data-integrity bug and are rejected with ErrDuplicateIdentifier rather than
// silently overwritten. Beyond keyed lookup the store answers three traversal
// queries: ResolveReferable, ListChildren, and FindParent.
//
// # Multiplexer
//
// Multiplexer composes an ordered list of ObjectProviders behind the single
// ObjectProvider interface, trying each in turn. Order is precedence: the
// first successful resolution wins and later providers are never consulted.
//
// # Concurrency
//
// Store performs every operation synchronously on the caller's goroutine and
// takes no locks. Callers that mutate concurrently must provide their own
// mutual exclusion; a single lock around Add/Discard and the traversal
// queries is the natural strategy, since traversals are not snapshot-isolated
// against concurrent mutation.
package registry
