package browse

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/modelstore/internal/loader"
)

const testEnvironment = `
objects:
  - id: urn:x-test:robot1
    idShort: Robot1
    elements:
      - idShort: Sensors
        elements:
          - idShort: Temperature
            value: "23.5"
  - id: urn:x-test:robot2
    idShort: Robot2
`

func newTestModel(t *testing.T) *Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testEnvironment), 0644))

	svc, err := loader.NewService(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	return New(svc, nil)
}

func press(m *Model, keyType tea.KeyType) *Model {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(*Model)
}

func TestBrowse_ListsObjectsAtTopLevel(t *testing.T) {
	m := newTestModel(t)

	items := m.list.Items()
	require.Len(t, items, 2)
	require.Equal(t, "Robot1", items[0].(item).title)
	require.Equal(t, "urn:x-test:robot1", items[0].(item).desc)
	require.Equal(t, "Robot2", items[1].(item).title)
}

func TestBrowse_DrillAndBack(t *testing.T) {
	m := newTestModel(t)

	// Drill into Robot1, then into Sensors.
	m = press(m, tea.KeyEnter)
	require.Equal(t, "Robot1", m.list.Title)
	require.Len(t, m.stack, 1)

	items := m.list.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Sensors", items[0].(item).title)

	m = press(m, tea.KeyEnter)
	require.Equal(t, "Sensors", m.list.Title)
	items = m.list.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Temperature", items[0].(item).title)
	require.Equal(t, "23.5", items[0].(item).desc)

	// Climb back out.
	m = press(m, tea.KeyEsc)
	require.Equal(t, "Robot1", m.list.Title)
	m = press(m, tea.KeyEsc)
	require.Equal(t, "Objects", m.list.Title)
	require.Empty(t, m.stack)

	// Esc at the top level is a no-op.
	m = press(m, tea.KeyEsc)
	require.Equal(t, "Objects", m.list.Title)
}

func TestBrowse_DrillIntoLeafIsNoOp(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyEnter) // Robot1
	m = press(m, tea.KeyEnter) // Sensors
	m = press(m, tea.KeyEnter) // Temperature has no children

	m = press(m, tea.KeyEnter)
	require.Equal(t, "Sensors", m.list.Title)
	require.Len(t, m.stack, 2)
}

func TestBrowse_ReloadResetsToTopLevel(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyEnter)
	require.Equal(t, "Robot1", m.list.Title)

	updated, _ := m.Update(reloadedMsg{objects: 2})
	m = updated.(*Model)

	require.Equal(t, "Objects", m.list.Title)
	require.Empty(t, m.stack)
	require.Len(t, m.list.Items(), 2)
}
