// Package tui is an interactive terminal view over the todo API.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/todo-backend/internal/client"
)

// API is the subset of the API client the view needs.
type API interface {
	List(ctx context.Context) ([]client.Todo, error)
	Create(ctx context.Context, title string) (client.Todo, error)
	Update(ctx context.Context, id string, title *string, done *bool) (client.Todo, error)
	Delete(ctx context.Context, id string) (bool, error)
}

var errEmptyTitle = errors.New("title cannot be empty")

// Run starts the interactive view and blocks until the user quits.
func Run(ctx context.Context, api API) error {
	p := tea.NewProgram(New(ctx, api), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeRename
)

// item adapts a todo to list.Item.
type item struct {
	todo client.Todo
}

func (i item) FilterValue() string { return i.todo.Title }

type delegate struct{}

func (delegate) Height() int                             { return 1 }
func (delegate) Spacing() int                            { return 0 }
func (delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (delegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(item)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Title
	if it.todo.Done {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// loadedMsg delivers the result of a load or a mutation followed by a load.
type loadedMsg struct {
	todos  []client.Todo
	status string
	err    error
}

// Model is the Bubble Tea model of the todo list.
type Model struct {
	ctx    context.Context
	api    API
	list   list.Model
	input  textinput.Model
	mode   mode
	editID string
	status string
	err    error
	busy   bool
}

// New creates the model. Nothing is fetched until Init runs.
func New(ctx context.Context, api API) Model {
	l := list.New(nil, delegate{}, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = helpStyle

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{ctx: ctx, api: api, list: l, input: ti}
}

// Init loads the list.
func (m Model) Init() tea.Cmd {
	return m.load("")
}

func (m Model) load(status string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		todos, err := api.List(ctx)
		return loadedMsg{todos: todos, status: status, err: err}
	}
}

// mutate runs fn against the API and reloads the list when it succeeds.
func (m Model) mutate(status string, fn func(ctx context.Context, api API) error) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		if err := fn(ctx, api); err != nil {
			return loadedMsg{err: err}
		}
		todos, err := api.List(ctx)
		return loadedMsg{todos: todos, status: status, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, max(msg.Height-6, 1))
		return m, nil

	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		m.setTodos(msg.todos)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "r":
		m.busy = true
		return m, m.load("reloaded")

	case "a":
		m.mode = modeAdd
		m.err = nil
		m.input.SetValue("")
		m.input.Placeholder = "New todo title..."
		return m, m.input.Focus()

	case " ", "e", "d":
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.err = nil
		switch msg.String() {
		case " ":
			done := !t.Done
			m.busy = true
			return m, m.mutate("", func(ctx context.Context, api API) error {
				_, err := api.Update(ctx, t.ID, nil, &done)
				return err
			})
		case "e":
			m.mode = modeRename
			m.editID = t.ID
			m.input.SetValue(t.Title)
			m.input.CursorEnd()
			m.input.Placeholder = "Todo title..."
			return m, m.input.Focus()
		default:
			m.busy = true
			return m, m.mutate("deleted", func(ctx context.Context, api API) error {
				_, err := api.Delete(ctx, t.ID)
				return err
			})
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			m.err = errEmptyTitle
			return m, nil
		}
		var cmd tea.Cmd
		if m.mode == modeAdd {
			cmd = m.mutate("added", func(ctx context.Context, api API) error {
				_, err := api.Create(ctx, title)
				return err
			})
		} else {
			id := m.editID
			cmd = m.mutate("renamed", func(ctx context.Context, api API) error {
				_, err := api.Update(ctx, id, &title, nil)
				return err
			})
		}
		m.closeInput()
		m.busy = true
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.editID = ""
	m.input.SetValue("")
	m.input.Blur()
}

// setTodos replaces the list contents and keeps the cursor on the same todo when it survives.
func (m *Model) setTodos(todos []client.Todo) {
	prev, hadPrev := m.selected()
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = item{todo: t}
	}
	m.list.SetItems(items)
	if !hadPrev {
		return
	}
	for i, t := range todos {
		if t.ID == prev.ID {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) selected() (client.Todo, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return client.Todo{}, false
	}
	return it.todo, true
}

func (m Model) todos() []client.Todo {
	items := m.list.Items()
	out := make([]client.Todo, 0, len(items))
	for _, li := range items {
		if it, ok := li.(item); ok {
			out = append(out, it.todo)
		}
	}
	return out
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(mutedStyle.Render("  nothing to do, press a to add a todo"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if m.mode != modeBrowse {
		label := "Add todo"
		if m.mode == modeRename {
			label = "Rename todo"
		}
		b.WriteString(barStyle.Render(label + "\n" + m.input.View()))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("✖ " + m.err.Error()))
	case m.busy:
		b.WriteString(mutedStyle.Render("working..."))
	case m.status != "":
		b.WriteString(successStyle.Render("✔ " + m.status))
	}
	b.WriteString("\n")

	if m.mode == modeBrowse {
		b.WriteString(helpStyle.Render("space toggle • a add • e rename • d delete • r reload • q quit"))
	} else {
		b.WriteString(helpStyle.Render("enter save • esc cancel"))
	}
	return b.String()
}

func (m Model) header() string {
	var done int
	todos := m.todos()
	for _, t := range todos {
		if t.Done {
			done++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), len(todos)-done,
		accentStyle.Render("Total"), len(todos),
	)
}
