package registry

import "fmt"

// Multiplexer combines multiple providers of Identifiable objects into a
// single one, so objects can be retrieved from different sources behind one
// ObjectProvider.
//
// Providers are consulted strictly in the order given at construction; the
// first successful resolution wins and later providers are never queried.
// Because lookup short-circuits, order is a correctness property, not an
// optimization, whenever the same identifier could resolve differently from
// two providers.
//
// A provider failing its lookup is skipped: no distinction is made between
// "this provider does not have it" and a provider-internal fault. Both
// collapse into "try next", and exhaustion surfaces a single ErrNotFound
// naming how many providers were consulted.
type Multiplexer struct {
	providers []ObjectProvider
}

// NewMultiplexer creates a multiplexer over the given providers.
// The multiplexer holds only the references; it does not own the providers.
func NewMultiplexer(providers ...ObjectProvider) *Multiplexer {
	return &Multiplexer{providers: providers}
}

// GetIdentifiable queries each provider in turn and returns the first
// successful resolution.
func (m *Multiplexer) GetIdentifiable(identifier string) (Identifiable, error) {
	for _, p := range m.providers {
		if obj, err := p.GetIdentifiable(identifier); err == nil {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: identifier %s could not be found in any of the %d consulted providers", ErrNotFound, identifier, len(m.providers))
}
