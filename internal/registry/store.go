package registry

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Store is a local in-memory, identity-keyed set of Identifiable objects,
// backed by a map from identifier to object. It implements ObjectProvider.
//
// The store owns only the mapping, never the objects: an object handed to Add
// is held by reference until Discard. Iteration and the FindParent scan visit
// objects in insertion order, which keeps "first match" answers deterministic.
type Store struct {
	backend map[string]Identifiable
	order   []string
}

// NewStore creates a store holding the given initial objects.
// Returns an error if any of them fails the Add contract.
func NewStore(objects ...Identifiable) (*Store, error) {
	s := &Store{backend: make(map[string]Identifiable)}
	for _, x := range objects {
		if err := s.Add(x); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts x under its identifier.
//
// Re-adding the identical instance is a no-op. A distinct instance claiming
// an identifier that is already taken fails with ErrDuplicateIdentifier and
// leaves the store unchanged: identity, not structural equality, is the
// uniqueness criterion, because two distinct objects sharing an identifier
// indicate a data-integrity bug that must surface immediately.
func (s *Store) Add(x Identifiable) error {
	if isNil(x) {
		return ErrNilIdentifiable
	}
	id := x.ID()
	if id == "" {
		return ErrMissingIdentifier
	}
	if existing, ok := s.backend[id]; ok {
		if existing == x {
			return nil
		}
		return fmt.Errorf("%w: an identifiable with id %s is already stored in this store", ErrDuplicateIdentifier, id)
	}
	s.backend[id] = x
	s.order = append(s.order, id)
	return nil
}

// Update adds every object in the given slice, stopping at the first failure.
func (s *Store) Update(objects []Identifiable) error {
	for _, x := range objects {
		if err := s.Add(x); err != nil {
			return err
		}
	}
	return nil
}

// Discard removes x from the store. It is a no-op unless the stored entry for
// x's identifier is the same instance as x, so a store reused across callers
// never loses a different object that happens to share an identifier.
func (s *Store) Discard(x Identifiable) {
	if isNil(x) {
		return
	}
	id := x.ID()
	if s.backend[id] != x {
		return
	}
	delete(s.backend, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// GetIdentifiable retrieves an object by its identifier.
func (s *Store) GetIdentifiable(identifier string) (Identifiable, error) {
	obj, ok := s.backend[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: no identifiable with id %s", ErrNotFound, identifier)
	}
	return obj, nil
}

// Contains reports membership. A string asks whether some entry is stored
// under that identifier; an Identifiable asks whether this exact instance is
// stored. Anything else is not contained.
func (s *Store) Contains(x any) bool {
	switch v := x.(type) {
	case string:
		_, ok := s.backend[v]
		return ok
	case Identifiable:
		if isNil(v) {
			return false
		}
		return s.backend[v.ID()] == v
	default:
		return false
	}
}

// isNil reports whether x is nil, including an interface holding a typed nil
// pointer. Implementations are pointer types, so calling ID() on such a value
// would panic on the nil receiver.
func isNil(x Identifiable) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	return len(s.backend)
}

// All iterates over the stored objects in insertion order.
func (s *Store) All() iter.Seq[Identifiable] {
	return func(yield func(Identifiable) bool) {
		for _, id := range s.order {
			if !yield(s.backend[id]) {
				return
			}
		}
	}
}

// descendAll yields every stored object followed by its full descent, lazily.
func (s *Store) descendAll() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, id := range s.order {
			obj := s.backend[id]
			if !yield(obj) {
				return
			}
			for elem := range obj.Descend() {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// ResolveReferable finds the first Referable with the given short name within
// the sub-graph of the identifiable stored under identifier. The match order
// is the depth-first order produced by the object's own Descend.
func (s *Store) ResolveReferable(identifier, idShort string) (Referable, error) {
	obj, err := s.GetIdentifiable(identifier)
	if err != nil {
		return nil, err
	}
	for elem := range obj.Descend() {
		if ref, ok := elem.(Referable); ok && ref.IDShort() == idShort {
			return ref, nil
		}
	}
	return nil, fmt.Errorf("%w: no referable with idShort %s exists for identifiable with id %s", ErrNotFound, idShort, identifier)
}

// ListChildren resolves the referable addressed by identifier and idShort,
// then returns its immediate children that are themselves Referables, in
// descent order. An empty slice is a valid result for a leaf referable.
func (s *Store) ListChildren(identifier, idShort string) ([]Referable, error) {
	parent, err := s.ResolveReferable(identifier, idShort)
	if err != nil {
		return nil, err
	}
	children := make([]Referable, 0)
	for elem := range parent.DescendOnce() {
		if ref, ok := elem.(Referable); ok {
			children = append(children, ref)
		}
	}
	return children, nil
}

// FindParent scans the whole store for the referable that has an immediate
// child with the given short name. Candidates are every top-level object and
// every object reached via full descent, visited in insertion order composed
// with descent order; only the candidate's immediate children are inspected.
//
// Short names are not globally unique, so this returns the first match.
// Callers needing a specific parent should resolve against a scoped
// identifier instead. The scan is O(total graph size), which is acceptable
// for the small, locally-cached working sets the store targets.
func (s *Store) FindParent(idShort string) (Referable, error) {
	for elem := range s.descendAll() {
		candidate, ok := elem.(Referable)
		if !ok {
			continue
		}
		for child := range candidate.DescendOnce() {
			if ref, ok := child.(Referable); ok && ref.IDShort() == idShort {
				return candidate, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: there is no parent referable for idShort %s", ErrNotFound, idShort)
}
