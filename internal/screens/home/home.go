package home

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/router"
	"github.com/abhisek/breet/internal/screen"
	"github.com/abhisek/breet/internal/screens/history"
	"github.com/abhisek/breet/internal/screens/stats"
	"github.com/abhisek/breet/internal/screens/timer"
	"github.com/abhisek/breet/internal/screens/todolist"
	"github.com/abhisek/breet/internal/session"
	statssvc "github.com/abhisek/breet/internal/stats"
	"github.com/abhisek/breet/internal/store"
	"github.com/abhisek/breet/internal/todos"
	"github.com/abhisek/breet/internal/ui/components"
	"github.com/abhisek/breet/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	quote       string
	breaksToday int
	pendingTodo int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(machine *session.Machine, statsService *statssvc.Service, todoList *todos.List, eventRepo store.EventRepo, kv *store.KV) *HomeScreen {
	ctx := context.Background()

	// Daily affirmation, refreshed once a day by the machine.
	var quote string
	if kv != nil {
		_, _ = kv.Get(ctx, store.KeyDailyQuote, &quote)
	}

	var breaksToday int
	if statsService != nil {
		breaksToday = statsService.BreaksToday(ctx)
	}

	var pendingTodo int
	if todoList != nil {
		if pending, err := todoList.Pending(ctx, 0); err == nil {
			pendingTodo = len(pending)
		}
	}

	items := []components.MenuItem{
		{Label: "START SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: timer.New(machine, kv)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(statsService)}
			}
		}},
		{Label: "TODOS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: todolist.New(todoList)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		quote:       quote,
		breaksToday: breaksToday,
		pendingTodo: pendingTodo,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("B R E E T")
	sub := theme.Subtitle.Width(width).Render("work in intervals, rest on purpose")
	sections = append(sections, title, sub, "")

	if h.quote != "" {
		quote := lipgloss.NewStyle().
			Foreground(theme.Accent).Italic(true).
			Width(width).Align(lipgloss.Center).
			Render("“" + h.quote + "”")
		sections = append(sections, quote, "")
	}

	statsLine := renderStatsLine(h.breaksToday, h.pendingTodo)
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine), "")

	menu := theme.Card.Render(h.menu.View())
	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderStatsLine(breaksToday, pendingTodo int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	parts := []string{
		dim.Render("breaks today ") + val.Render(strconv.Itoa(breaksToday)),
		dim.Render("todos open ") + val.Render(strconv.Itoa(pendingTodo)),
	}
	return strings.Join(parts, dim.Render("   |   "))
}
