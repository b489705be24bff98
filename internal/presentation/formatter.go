package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatObjects formats a list of objects as JSON
func (f *Formatter) FormatObjects(objects []ObjectDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(objects)
}

// FormatObject formats a single object as JSON
func (f *Formatter) FormatObject(object ObjectDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(object)
}

// FormatReferable formats a traversal query result as JSON
func (f *Formatter) FormatReferable(ref ReferableDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ref)
}

// FormatReferables formats a list of traversal query results as JSON
func (f *Formatter) FormatReferables(refs []ReferableDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(refs)
}
