package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/modelstore/internal/loader"
	"github.com/zjrosen/modelstore/internal/model"
	"github.com/zjrosen/modelstore/internal/registry"
)

const sampleEnvironment = `
objects:
  - id: urn:x-test:robot1
    idShort: Robot1
    metadata:
      kind: instance
      version: "1.0"
    elements:
      - idShort: Sensors
        annotations:
          - calibrated 2026-08-01
        elements:
          - idShort: Temperature
            value: "23.5"
          - idShort: Humidity
            value: "40"
  - id: urn:x-test:robot2
    idShort: Robot2
`

func TestParseEnvironment(t *testing.T) {
	objects, err := loader.ParseEnvironment([]byte(sampleEnvironment))

	require.NoError(t, err)
	require.Len(t, objects, 2)

	robot, ok := objects[0].(*model.Object)
	require.True(t, ok)
	require.Equal(t, "urn:x-test:robot1", robot.ID())
	require.Equal(t, "Robot1", robot.IDShort())
	require.Equal(t, "instance", robot.Metadata().Kind())
	require.Equal(t, "1.0", robot.Metadata().Version())
	require.Len(t, robot.Elements(), 1)

	sensors := robot.Elements()[0]
	require.Equal(t, "Sensors", sensors.IDShort())
	require.Len(t, sensors.Annotations(), 1)
	require.Len(t, sensors.Children(), 2)
	require.Equal(t, "23.5", sensors.Children()[0].Value())
}

func TestParseEnvironment_GeneratesMissingIDs(t *testing.T) {
	objects, err := loader.ParseEnvironment([]byte("objects:\n  - idShort: Anonymous\n"))

	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Contains(t, objects[0].ID(), "urn:uuid:")
}

func TestParseEnvironment_InvalidYAML(t *testing.T) {
	_, err := loader.ParseEnvironment([]byte("objects: ["))

	require.Error(t, err)
	require.Contains(t, err.Error(), "parse environment")
}

func TestParseEnvironment_ElementMissingIDShort(t *testing.T) {
	content := `
objects:
  - id: urn:x-test:robot1
    elements:
      - value: "orphan"
`
	_, err := loader.ParseEnvironment([]byte(content))

	require.Error(t, err)
	require.Contains(t, err.Error(), "missing idShort")
}

func TestParseEnvironment_Empty(t *testing.T) {
	objects, err := loader.ParseEnvironment([]byte(""))

	require.NoError(t, err)
	require.Empty(t, objects)
}

func writeEnvironment(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewStoreFromFile(t *testing.T) {
	path := writeEnvironment(t, sampleEnvironment)

	store, err := loader.NewStoreFromFile(path)

	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	require.True(t, store.Contains("urn:x-test:robot1"))

	sensors, err := store.ResolveReferable("urn:x-test:robot1", "Sensors")
	require.NoError(t, err)
	require.Equal(t, "Sensors", sensors.IDShort())
}

func TestNewStoreFromFile_DuplicateIdentifiers(t *testing.T) {
	content := `
objects:
  - id: urn:x-test:robot1
  - id: urn:x-test:robot1
`
	path := writeEnvironment(t, content)

	_, err := loader.NewStoreFromFile(path)

	require.ErrorIs(t, err, registry.ErrDuplicateIdentifier)
}

func TestNewStoreFromFile_MissingFile(t *testing.T) {
	_, err := loader.NewStoreFromFile(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}
