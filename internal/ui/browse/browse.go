// Package browse provides an interactive terminal browser for a loaded
// environment. Stored objects are listed at the top level; enter drills into
// a node's immediate referable children and esc climbs back out.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/modelstore/internal/loader"
	"github.com/zjrosen/modelstore/internal/log"
	"github.com/zjrosen/modelstore/internal/model"
	"github.com/zjrosen/modelstore/internal/pubsub"
	"github.com/zjrosen/modelstore/internal/registry"
)

var breadcrumbStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241")).
	Padding(0, 1)

// item adapts a graph node to the bubbles list.
type item struct {
	title string
	desc  string
	node  any
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// level is one step of the drill-down stack.
type level struct {
	label  string
	items  []list.Item
	cursor int
}

type keyMap struct {
	drill  key.Binding
	back   key.Binding
	reload key.Binding
}

var keys = keyMap{
	drill:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drill in")),
	back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
}

// reloadedMsg arrives when the environment service swapped in a fresh store.
type reloadedMsg struct {
	objects int
}

// Model is the bubbletea model for the environment browser.
type Model struct {
	svc    *loader.Service
	events <-chan pubsub.Event[int]

	list  list.Model
	stack []level

	width  int
	height int
}

// New creates a browser over the given environment service.
// The events channel may be nil when auto-reload is disabled.
func New(svc *loader.Service, events <-chan pubsub.Event[int]) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Objects"
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.drill, keys.back, keys.reload}
	}

	m := &Model{svc: svc, events: events, list: l}
	m.list.SetItems(m.rootItems())
	return m
}

// rootItems builds the top-level listing of stored objects.
func (m *Model) rootItems() []list.Item {
	items := make([]list.Item, 0, m.svc.Store().Len())
	for obj := range m.svc.Store().All() {
		title := obj.ID()
		if ref, ok := obj.(registry.Referable); ok && ref.IDShort() != "" {
			title = ref.IDShort()
		}
		items = append(items, item{
			title: title,
			desc:  obj.ID(),
			node:  obj,
		})
	}
	return items
}

// childItems builds the listing for a node's immediate children.
// Annotations and metadata are shown too; they just can't be drilled into.
func childItems(node any) []list.Item {
	descender, ok := node.(registry.Descender)
	if !ok {
		return nil
	}

	var items []list.Item
	for child := range descender.DescendOnce() {
		switch c := child.(type) {
		case *model.Element:
			desc := c.Value()
			if desc == "" {
				desc = fmt.Sprintf("%d children", len(c.Children()))
			}
			items = append(items, item{title: c.IDShort(), desc: desc, node: c})
		case *model.Annotation:
			items = append(items, item{title: "(annotation)", desc: c.Text(), node: c})
		case *model.Metadata:
			desc := c.Kind()
			if c.Version() != "" {
				desc += " " + c.Version()
			}
			items = append(items, item{title: "(metadata)", desc: desc, node: c})
		case registry.Referable:
			items = append(items, item{title: c.IDShort(), node: c})
		}
	}
	return items
}

// Init starts listening for reload events.
func (m *Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *Model) waitForReload() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return nil
		}
		return reloadedMsg{objects: event.Payload}
	}
}

// Update handles key presses, reloads, and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)

	case reloadedMsg:
		log.Debug(log.CatUI, "browser refreshing after reload", "objects", msg.objects)
		// Drill-down positions point into the old graph; start over at the top.
		m.stack = nil
		m.list.Title = "Objects"
		m.list.SetItems(m.rootItems())
		return m, m.waitForReload()

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.drill):
			return m, m.drill()
		case key.Matches(msg, keys.back):
			return m, m.back()
		case key.Matches(msg, keys.reload):
			return m, func() tea.Msg {
				_ = m.svc.Reload()
				return nil
			}
		case msg.String() == "q", msg.String() == "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// drill descends into the selected node if it has children to show.
func (m *Model) drill() tea.Cmd {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		return nil
	}

	children := childItems(selected.node)
	if len(children) == 0 {
		return nil
	}

	m.stack = append(m.stack, level{
		label:  m.list.Title,
		items:  m.list.Items(),
		cursor: m.list.Index(),
	})
	m.list.Title = selected.title
	m.list.ResetSelected()
	return m.list.SetItems(children)
}

// back climbs one level up the drill-down stack.
func (m *Model) back() tea.Cmd {
	if len(m.stack) == 0 {
		return nil
	}

	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]

	m.list.Title = top.label
	cmd := m.list.SetItems(top.items)
	m.list.Select(top.cursor)
	return cmd
}

// View renders the list with a breadcrumb trail underneath.
func (m *Model) View() string {
	crumb := ""
	for _, lvl := range m.stack {
		crumb += lvl.label + " > "
	}
	crumb += m.list.Title
	return m.list.View() + "\n" + breadcrumbStyle.Render(crumb)
}
