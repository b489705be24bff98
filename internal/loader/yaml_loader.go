// Package loader implements the application layer over the object registry.
//
// It parses environment files (YAML definitions of model object graphs) into
// domain objects and keeps a Store populated from such a file, optionally
// reloading when the file changes on disk. The domain layer stays free of
// I/O concerns and can be tested in isolation.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/modelstore/internal/log"
	"github.com/zjrosen/modelstore/internal/model"
	"github.com/zjrosen/modelstore/internal/registry"
)

// EnvironmentFile is the root structure for environment.yaml
type EnvironmentFile struct {
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef defines a single top-level object in YAML
type ObjectDef struct {
	ID       string       `yaml:"id"`       // globally unique identifier; generated when empty
	IDShort  string       `yaml:"idShort"`  // optional short local name
	Metadata *MetadataDef `yaml:"metadata"` // optional descriptive metadata
	Elements []ElementDef `yaml:"elements"` // composed element tree
}

// MetadataDef defines object metadata in YAML
type MetadataDef struct {
	Kind    string `yaml:"kind"`
	Version string `yaml:"version"`
}

// ElementDef defines a single element node in YAML
type ElementDef struct {
	IDShort     string       `yaml:"idShort"`     // required short local name
	Value       string       `yaml:"value"`       // optional value
	Annotations []string     `yaml:"annotations"` // optional free-form notes
	Elements    []ElementDef `yaml:"elements"`    // nested child elements
}

// ParseEnvironment parses environment YAML into domain objects.
// Objects without an explicit id get a generated urn:uuid identifier.
func ParseEnvironment(content []byte) ([]registry.Identifiable, error) {
	var file EnvironmentFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	objects := make([]registry.Identifiable, 0, len(file.Objects))
	for i, def := range file.Objects {
		obj, err := buildObjectFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("object %d in environment: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// LoadEnvironmentFile reads and parses the environment file at path.
func LoadEnvironmentFile(path string) ([]registry.Identifiable, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is user-supplied environment file
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	objects, err := ParseEnvironment(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info(log.CatLoader, "environment loaded", "path", path, "objects", len(objects))
	return objects, nil
}

// NewStoreFromFile loads the environment file into a fresh store.
func NewStoreFromFile(path string) (*registry.Store, error) {
	objects, err := LoadEnvironmentFile(path)
	if err != nil {
		return nil, err
	}
	return registry.NewStore(objects...)
}

func buildObjectFromDef(def ObjectDef) (*model.Object, error) {
	id := def.ID
	if id == "" {
		id = model.NewID()
	}

	obj := model.NewObject(id).WithIDShort(def.IDShort)
	if def.Metadata != nil {
		obj.WithMetadata(model.NewMetadata(def.Metadata.Kind).WithVersion(def.Metadata.Version))
	}

	for _, elemDef := range def.Elements {
		elem, err := buildElementFromDef(elemDef)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", id, err)
		}
		obj.WithElements(elem)
	}
	return obj, nil
}

func buildElementFromDef(def ElementDef) (*model.Element, error) {
	if def.IDShort == "" {
		return nil, fmt.Errorf("element is missing idShort")
	}

	elem := model.NewElement(def.IDShort).WithValue(def.Value)
	for _, text := range def.Annotations {
		elem.WithAnnotations(model.NewAnnotation(text))
	}
	for _, childDef := range def.Elements {
		child, err := buildElementFromDef(childDef)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", def.IDShort, err)
		}
		elem.WithChildren(child)
	}
	return elem, nil
}
