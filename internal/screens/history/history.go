package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/router"
	"github.com/abhisek/breet/internal/screen"
	"github.com/abhisek/breet/internal/store"
	"github.com/abhisek/breet/internal/ui/layout"
	"github.com/abhisek/breet/internal/ui/theme"
)

const historyPageSize = 50

type historyLoadedMsg struct {
	Breaks []store.BreakEvent
	Err    error
}

// HistoryScreen lists past breaks, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	breaks    []store.BreakEvent
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		evs, err := s.eventRepo.RecentBreaks(context.Background(), historyPageSize)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		// RecentBreaks is oldest first; show newest first.
		for i, j := 0, len(evs)-1; i < j; i, j = i+1, j-1 {
			evs[i], evs[j] = evs[j], evs[i]
		}
		return historyLoadedMsg{Breaks: evs}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.breaks = msg.Breaks
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.breaks)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.breaks) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No breaks yet. Take one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ev := range s.breaks {
		dateStr := ev.Timestamp.Format("Jan 02 15:04")

		mark := "✗"
		if ev.Completed {
			mark = "✓"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		label := ev.Label
		if label == "" {
			label = "-"
		}

		line := fmt.Sprintf("%s%s  %s  %s  %dm  [%s]  %s",
			prefix, dateStr, mark, ev.BreakName, ev.DurationMinutes, label, ev.Source)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
