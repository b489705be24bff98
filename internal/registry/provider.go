package registry

// ObjectProvider defines read-only resolution of an identifier to an
// Identifiable. This includes local stores as well as proxy objects for
// remote registries; the interface is deliberately minimal so that mock
// implementations can be substituted in tests.
type ObjectProvider interface {
	// GetIdentifiable finds an Identifiable by its identifier.
	// Returns an error wrapping ErrNotFound if no such object exists.
	GetIdentifiable(identifier string) (Identifiable, error)
}

// GetOrDefault finds an Identifiable by its identifier, with a fallback.
// Any lookup failure yields def instead of an error.
func GetOrDefault(p ObjectProvider, identifier string, def Identifiable) Identifiable {
	obj, err := p.GetIdentifiable(identifier)
	if err != nil {
		return def
	}
	return obj
}
