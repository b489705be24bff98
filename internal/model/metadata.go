package model

// Metadata describes a top-level object. It is part of the object's descent
// but carries no short name, so traversal queries skip over it.
type Metadata struct {
	kind    string
	version string
}

// NewMetadata creates metadata with the given kind (e.g. "instance", "type").
func NewMetadata(kind string) *Metadata {
	return &Metadata{kind: kind}
}

// WithVersion sets the version and returns the metadata for fluent chaining.
func (m *Metadata) WithVersion(version string) *Metadata {
	m.version = version
	return m
}

// Kind returns the metadata kind.
func (m *Metadata) Kind() string {
	return m.kind
}

// Version returns the version, if any.
func (m *Metadata) Version() string {
	return m.version
}

// Annotation is a free-form, non-referable note attached to an element.
type Annotation struct {
	text string
}

// NewAnnotation creates an annotation with the given text.
func NewAnnotation(text string) *Annotation {
	return &Annotation{text: text}
}

// Text returns the annotation text.
func (a *Annotation) Text() string {
	return a.text
}
