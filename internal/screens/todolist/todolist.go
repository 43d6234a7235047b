package todolist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/router"
	"github.com/abhisek/breet/internal/screen"
	"github.com/abhisek/breet/internal/todos"
	"github.com/abhisek/breet/internal/ui/components"
	"github.com/abhisek/breet/internal/ui/layout"
	"github.com/abhisek/breet/internal/ui/theme"
)

type todosLoadedMsg struct {
	Items []todos.Todo
	Err   error
}

// TodoScreen is a small keep-at-hand task list. Pending items feed the
// recommendation context.
type TodoScreen struct {
	list     *todos.List
	items    []todos.Todo
	selected int
	adding   bool
	input    components.TextInput
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TodoScreen)(nil)
var _ screen.KeyHintProvider = (*TodoScreen)(nil)

// New creates a new TodoScreen.
func New(list *todos.List) *TodoScreen {
	return &TodoScreen{
		list:  list,
		input: components.NewTextInput("What needs doing?", false, 60),
	}
}

func (s *TodoScreen) Init() tea.Cmd {
	return s.reload()
}

func (s *TodoScreen) reload() tea.Cmd {
	return func() tea.Msg {
		items, err := s.list.All(context.Background())
		return todosLoadedMsg{Items: items, Err: err}
	}
}

func (s *TodoScreen) Title() string {
	return "Todos"
}

func (s *TodoScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "X", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TodoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Items
			if s.selected >= len(s.items) && s.selected > 0 {
				s.selected = len(s.items) - 1
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.adding {
			return s.handleAddKey(msg)
		}
		return s.handleListKey(msg)
	}

	if s.adding {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TodoScreen) handleAddKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.adding = false
		return s, nil
	case "enter":
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		s.adding = false
		s.input = components.NewTextInput("What needs doing?", false, 60)
		return s, func() tea.Msg {
			if _, err := s.list.Add(context.Background(), text); err != nil {
				return todosLoadedMsg{Err: err}
			}
			return s.reload()()
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TodoScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "a":
		s.adding = true
		return s, s.input.Init()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		if s.selected < len(s.items) {
			id := s.items[s.selected].ID
			return s, func() tea.Msg {
				if err := s.list.Toggle(context.Background(), id); err != nil {
					return todosLoadedMsg{Err: err}
				}
				return s.reload()()
			}
		}
		return s, nil
	case "x":
		if s.selected < len(s.items) {
			id := s.items[s.selected].ID
			return s, func() tea.Msg {
				if err := s.list.Remove(context.Background(), id); err != nil {
					return todosLoadedMsg{Err: err}
				}
				return s.reload()()
			}
		}
		return s, nil
	}
	return s, nil
}

func (s *TodoScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.adding {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
		b.WriteString("\n\n")
	}

	if len(s.items) == 0 && !s.adding {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing here. Press A to add a task."))
		return b.String()
	}

	for i, t := range s.items {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if t.Done {
			box = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}

		prefix := "  "
		if i == s.selected && !s.adding {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, t.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
