package presentation

import (
	"github.com/zjrosen/modelstore/internal/model"
	"github.com/zjrosen/modelstore/internal/registry"
)

// ObjectDTO represents a stored identifiable for presentation
type ObjectDTO struct {
	ID       string       `json:"id"`
	IDShort  string       `json:"idShort,omitempty"`
	Metadata *MetadataDTO `json:"metadata,omitempty"`
	Elements []ElementDTO `json:"elements,omitempty"`
}

// MetadataDTO represents object metadata
type MetadataDTO struct {
	Kind    string `json:"kind"`
	Version string `json:"version,omitempty"`
}

// ElementDTO represents a nested element with its annotations and children
type ElementDTO struct {
	IDShort     string       `json:"idShort"`
	Value       string       `json:"value,omitempty"`
	Annotations []string     `json:"annotations,omitempty"`
	Elements    []ElementDTO `json:"elements,omitempty"`
}

// ReferableDTO represents a traversal query result. Depending on the match
// it carries either a full element or a top-level object summary.
type ReferableDTO struct {
	IDShort string `json:"idShort"`
	ID      string `json:"id,omitempty"`    // set when the referable is a stored object
	Value   string `json:"value,omitempty"` // set when the referable is an element
}

// FromElement converts a model element to a DTO recursively.
func FromElement(element *model.Element) ElementDTO {
	annotations := make([]string, len(element.Annotations()))
	for i, a := range element.Annotations() {
		annotations[i] = a.Text()
	}

	children := make([]ElementDTO, len(element.Children()))
	for i, c := range element.Children() {
		children[i] = FromElement(c)
	}

	return ElementDTO{
		IDShort:     element.IDShort(),
		Value:       element.Value(),
		Annotations: annotations,
		Elements:    children,
	}
}

// FromObject converts a model object to a DTO.
func FromObject(obj *model.Object) ObjectDTO {
	dto := ObjectDTO{
		ID:      obj.ID(),
		IDShort: obj.IDShort(),
	}

	if meta := obj.Metadata(); meta != nil {
		dto.Metadata = &MetadataDTO{
			Kind:    meta.Kind(),
			Version: meta.Version(),
		}
	}

	dto.Elements = make([]ElementDTO, len(obj.Elements()))
	for i, e := range obj.Elements() {
		dto.Elements[i] = FromElement(e)
	}

	return dto
}

// FromIdentifiable converts any stored identifiable to a DTO.
// Identifiables that are not model objects get an id-only summary.
func FromIdentifiable(obj registry.Identifiable) ObjectDTO {
	if mo, ok := obj.(*model.Object); ok {
		return FromObject(mo)
	}
	dto := ObjectDTO{ID: obj.ID()}
	if ref, ok := obj.(registry.Referable); ok {
		dto.IDShort = ref.IDShort()
	}
	return dto
}

// FromStore converts every identifiable in the store, in insertion order.
func FromStore(store *registry.Store) []ObjectDTO {
	dtos := make([]ObjectDTO, 0, store.Len())
	for obj := range store.All() {
		dtos = append(dtos, FromIdentifiable(obj))
	}
	return dtos
}

// FromReferable converts a traversal query result to a DTO.
func FromReferable(ref registry.Referable) ReferableDTO {
	dto := ReferableDTO{IDShort: ref.IDShort()}
	if obj, ok := ref.(registry.Identifiable); ok {
		dto.ID = obj.ID()
	}
	if element, ok := ref.(*model.Element); ok {
		dto.Value = element.Value()
	}
	return dto
}

// FromReferables converts a slice of traversal query results to DTOs.
func FromReferables(refs []registry.Referable) []ReferableDTO {
	dtos := make([]ReferableDTO, len(refs))
	for i, ref := range refs {
		dtos[i] = FromReferable(ref)
	}
	return dtos
}
