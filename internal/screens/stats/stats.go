package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/router"
	"github.com/abhisek/breet/internal/screen"
	statssvc "github.com/abhisek/breet/internal/stats"
	"github.com/abhisek/breet/internal/ui/components"
	"github.com/abhisek/breet/internal/ui/layout"
	"github.com/abhisek/breet/internal/ui/theme"
)

type statsLoadedMsg struct {
	Overall    statssvc.Summary
	ByCategory []statssvc.CategoryStats
	ByWeekday  map[time.Weekday]statssvc.Summary
	Err        error
}

// StatsScreen shows break history rollups.
type StatsScreen struct {
	service    *statssvc.Service
	overall    statssvc.Summary
	byCategory []statssvc.CategoryStats
	byWeekday  map[time.Weekday]statssvc.Summary
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(service *statssvc.Service) *StatsScreen {
	return &StatsScreen{service: service}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		overall, err := s.service.Overall(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		byCat, err := s.service.ByCategory(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		byDay, err := s.service.ByWeekday(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Overall: overall, ByCategory: byCat, ByWeekday: byDay}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.overall = msg.Overall
			s.byCategory = msg.ByCategory
			s.byWeekday = msg.ByWeekday
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Crunching numbers...")
	}
	if s.overall.Total == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to chart yet.")
	}

	var sections []string

	sections = append(sections, renderOverall(s.overall, width))
	if len(s.byCategory) > 0 {
		sections = append(sections, renderCategories(s.byCategory, width))
	}
	if len(s.byWeekday) > 0 {
		sections = append(sections, renderWeekdays(s.byWeekday, width))
	}

	return "\n" + strings.Join(sections, "\n\n")
}

func renderOverall(sum statssvc.Summary, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	line := strings.Join([]string{
		dim.Render("breaks ") + val.Render(fmt.Sprintf("%d", sum.Total)),
		dim.Render("completed ") + val.Render(fmt.Sprintf("%d", sum.Completed)),
		dim.Render("rate ") + val.Render(fmt.Sprintf("%.0f%%", sum.CompletionRate()*100)),
		dim.Render("rest ") + val.Render(fmt.Sprintf("%dm", sum.MinutesOnBreak)),
	}, dim.Render("   |   "))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func renderCategories(cats []statssvc.CategoryStats, width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("By category"))
	b.WriteString("\n")

	max := 0
	for _, c := range cats {
		if c.Total > max {
			max = c.Total
		}
	}

	for _, c := range cats {
		percent := 0.0
		if max > 0 {
			percent = float64(c.Total) / float64(max)
		}
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-12s", c.Category),
			Percent: percent,
			Width:   statBarWidth(width),
			Color:   theme.Break,
		}
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d", c.Total))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func renderWeekdays(byDay map[time.Weekday]statssvc.Summary, width int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("By weekday"))
	b.WriteString("\n")

	days := make([]time.Weekday, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	max := 0
	for _, d := range days {
		if byDay[d].Total > max {
			max = byDay[d].Total
		}
	}

	for _, d := range days {
		sum := byDay[d]
		percent := 0.0
		if max > 0 {
			percent = float64(sum.Total) / float64(max)
		}
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-12s", d.String()),
			Percent: percent,
			Width:   statBarWidth(width),
			Color:   theme.Work,
		}
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d", sum.Total))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func statBarWidth(width int) int {
	w := width / 2
	if w < 24 {
		w = 24
	}
	if w > 44 {
		w = 44
	}
	return w
}
