package model

import (
	"iter"

	"github.com/google/uuid"

	"github.com/zjrosen/modelstore/internal/registry"
)

// Compile-time checks that the model satisfies the registry capabilities.
var (
	_ registry.Identifiable = (*Object)(nil)
	_ registry.Referable    = (*Object)(nil)
	_ registry.Referable    = (*Element)(nil)
)

// NewID returns a fresh globally unique identifier in urn:uuid form.
func NewID() string {
	return "urn:uuid:" + uuid.NewString()
}

// Object is the root of a model graph. The identifier is assigned at
// creation and never changes while the object is stored.
type Object struct {
	id       string
	idShort  string
	metadata *Metadata
	elements []*Element
}

// NewObject creates an object with the given identifier.
func NewObject(id string) *Object {
	return &Object{
		id:       id,
		elements: []*Element{},
	}
}

// WithIDShort sets the short local name and returns the object for fluent chaining.
func (o *Object) WithIDShort(idShort string) *Object {
	o.idShort = idShort
	return o
}

// WithMetadata attaches metadata and returns the object for fluent chaining.
func (o *Object) WithMetadata(m *Metadata) *Object {
	o.metadata = m
	return o
}

// WithElements appends top-level elements and returns the object for fluent chaining.
func (o *Object) WithElements(elements ...*Element) *Object {
	o.elements = append(o.elements, elements...)
	return o
}

// ID returns the globally unique identifier.
func (o *Object) ID() string {
	return o.id
}

// IDShort returns the short local name.
func (o *Object) IDShort() string {
	return o.idShort
}

// Metadata returns the attached metadata, or nil.
func (o *Object) Metadata() *Metadata {
	return o.metadata
}

// Elements returns the top-level elements.
func (o *Object) Elements() []*Element {
	return o.elements
}

// Descend yields every object nested under this one in pre-order depth-first
// order. The object itself is not yielded.
func (o *Object) Descend() iter.Seq[any] {
	return func(yield func(any) bool) {
		if o.metadata != nil && !yield(o.metadata) {
			return
		}
		for _, e := range o.elements {
			if !descendElement(e, yield) {
				return
			}
		}
	}
}

// DescendOnce yields only the immediate children: the metadata, if any,
// followed by the top-level elements.
func (o *Object) DescendOnce() iter.Seq[any] {
	return func(yield func(any) bool) {
		if o.metadata != nil && !yield(o.metadata) {
			return
		}
		for _, e := range o.elements {
			if !yield(e) {
				return
			}
		}
	}
}
