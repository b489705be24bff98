package model

import "iter"

// Element is a nested, referable node of a model graph. Short names are by
// convention unique among a parent's direct children, but nothing here
// enforces that.
type Element struct {
	idShort     string
	value       string
	annotations []*Annotation
	children    []*Element
}

// NewElement creates an element with the given short local name.
func NewElement(idShort string) *Element {
	return &Element{
		idShort:     idShort,
		annotations: []*Annotation{},
		children:    []*Element{},
	}
}

// WithValue sets the element's value and returns it for fluent chaining.
func (e *Element) WithValue(value string) *Element {
	e.value = value
	return e
}

// WithAnnotations appends annotations and returns the element for fluent chaining.
func (e *Element) WithAnnotations(annotations ...*Annotation) *Element {
	e.annotations = append(e.annotations, annotations...)
	return e
}

// WithChildren appends child elements and returns the element for fluent chaining.
func (e *Element) WithChildren(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// IDShort returns the short local name.
func (e *Element) IDShort() string {
	return e.idShort
}

// Value returns the element's value, if any.
func (e *Element) Value() string {
	return e.value
}

// Annotations returns the element's annotations.
func (e *Element) Annotations() []*Annotation {
	return e.annotations
}

// Children returns the element's child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Descend yields every object nested under this element in pre-order
// depth-first order: annotations first, then each child followed by the
// child's own descent. The element itself is not yielded.
func (e *Element) Descend() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, a := range e.annotations {
			if !yield(a) {
				return
			}
		}
		for _, c := range e.children {
			if !descendElement(c, yield) {
				return
			}
		}
	}
}

// DescendOnce yields only the immediate children: annotations, then child
// elements, in the same relative order Descend produces them.
func (e *Element) DescendOnce() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, a := range e.annotations {
			if !yield(a) {
				return
			}
		}
		for _, c := range e.children {
			if !yield(c) {
				return
			}
		}
	}
}

// descendElement yields e and then e's full descent.
// Reports false once yield stops the iteration.
func descendElement(e *Element, yield func(any) bool) bool {
	if !yield(e) {
		return false
	}
	for _, a := range e.annotations {
		if !yield(a) {
			return false
		}
	}
	for _, c := range e.children {
		if !descendElement(c, yield) {
			return false
		}
	}
	return true
}
