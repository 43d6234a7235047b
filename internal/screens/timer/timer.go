package timer

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/breet/internal/recommend"
	"github.com/abhisek/breet/internal/screen"
	"github.com/abhisek/breet/internal/session"
	"github.com/abhisek/breet/internal/store"
	"github.com/abhisek/breet/internal/ui/components"
	"github.com/abhisek/breet/internal/ui/layout"
	"github.com/abhisek/breet/internal/ui/theme"
)

type timerTickMsg time.Time

type dispatchDoneMsg struct {
	res session.Result
}

// TimerScreen drives one work/break cycle through the state machine.
type TimerScreen struct {
	machine *session.Machine
	kv      *store.KV

	presetMenu components.Menu

	// candidate page state, valid while selecting
	cands    []recommend.Candidate
	source   recommend.Source
	seenIDs  []string
	selected int
	limit    bool
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*TimerScreen)(nil)
var _ screen.KeyHintProvider = (*TimerScreen)(nil)

// New creates a new TimerScreen bound to the shared state machine.
func New(machine *session.Machine, kv *store.KV) *TimerScreen {
	s := &TimerScreen{machine: machine, kv: kv}
	s.presetMenu = components.NewMenu(s.presetItems())
	return s
}

func (s *TimerScreen) presetItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(session.Presets()))
	for _, p := range session.Presets() {
		p := p
		label := fmt.Sprintf("%s  (%dm work, %dm break)", p.Label, p.WorkMinutes, p.BreakMinutes)
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			return s.dispatch(session.SelectBreakBeforeWork{
				Mode:         p.Label,
				WorkMinutes:  p.WorkMinutes,
				BreakMinutes: p.BreakMinutes,
			})
		}})
	}
	return items
}

func (s *TimerScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *TimerScreen) Title() string {
	switch s.machine.State().Phase {
	case session.PhaseWork, session.PhaseWorkEnding:
		return "Focus"
	case session.PhaseBreak:
		return "Break"
	case session.PhasePaused:
		return "Paused"
	default:
		return "Timer"
	}
}

func (s *TimerScreen) KeyHints() []layout.KeyHint {
	switch s.machine.State().Phase {
	case session.PhaseSelecting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Start"},
			{Key: "M", Description: "More ideas"},
			{Key: "S", Description: "Cancel"},
		}
	case session.PhaseWork:
		return []layout.KeyHint{
			{Key: "Space", Description: "Pause"},
			{Key: "R", Description: "Swap break"},
			{Key: "S", Description: "Stop"},
		}
	case session.PhaseWorkEnding:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start break"},
			{Key: "R", Description: "Swap break"},
			{Key: "S", Description: "Stop"},
		}
	case session.PhaseBreak:
		return []layout.KeyHint{
			{Key: "Space", Description: "Pause"},
			{Key: "D", Description: "Done early"},
			{Key: "S", Description: "Stop"},
		}
	case session.PhasePaused:
		return []layout.KeyHint{
			{Key: "Space", Description: "Resume"},
			{Key: "S", Description: "Stop"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// dispatch runs an intent off the update loop. The recommendation path
// can block for the full LLM timeout.
func (s *TimerScreen) dispatch(intent session.Intent) tea.Cmd {
	s.loading = true
	s.errMsg = ""
	return func() tea.Msg {
		res := s.machine.Dispatch(context.Background(), intent)
		return dispatchDoneMsg{res: res}
	}
}

func (s *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s, tickCmd()

	case dispatchDoneMsg:
		return s.handleResult(msg.res)

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TimerScreen) handleResult(res session.Result) (screen.Screen, tea.Cmd) {
	s.loading = false

	if res.LimitReached {
		s.limit = true
		return s, nil
	}
	if !res.OK {
		s.errMsg = res.Error
		return s, nil
	}
	if res.Recommendation != nil {
		s.cands = res.Recommendation.Candidates
		s.source = res.Recommendation.Source
		s.selected = 0
		for _, c := range s.cands {
			s.seenIDs = append(s.seenIDs, c.ID)
		}
	}
	return s, nil
}

func (s *TimerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	st := s.machine.State()

	switch st.Phase {
	case session.PhaseIdle:
		var cmd tea.Cmd
		s.presetMenu, cmd = s.presetMenu.Update(msg)
		return s, cmd

	case session.PhaseSelecting:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.cands)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.cands) {
				return s, s.dispatch(session.StartTimer{Candidate: s.cands[s.selected]})
			}
		case "m":
			if !s.limit {
				return s, s.dispatch(session.RequestNewBreaks{ExcludeIDs: s.seenIDs})
			}
		case "s":
			return s, s.dispatch(session.StopTimer{})
		}
		return s, nil

	case session.PhaseWork, session.PhaseBreak:
		switch msg.String() {
		case " ", "space":
			return s, s.dispatch(session.PauseTimer{})
		case "r":
			if st.Phase == session.PhaseWork {
				return s, s.dispatch(session.RotatePendingBreak{})
			}
		case "d":
			if st.Phase == session.PhaseBreak {
				elapsed := int(time.Since(time.UnixMilli(st.StartTs)).Minutes())
				return s, s.dispatch(session.BreakCompleted{Completed: true, ActualMinutes: elapsed})
			}
		case "s":
			return s, s.dispatch(session.StopTimer{})
		}
		return s, nil

	case session.PhaseWorkEnding:
		switch msg.String() {
		case "enter", "b":
			return s, s.dispatch(session.StartBreakTimer{})
		case "r":
			return s, s.dispatch(session.RotatePendingBreak{})
		case "s":
			return s, s.dispatch(session.StopTimer{})
		}
		return s, nil

	case session.PhasePaused:
		switch msg.String() {
		case " ", "space":
			return s, s.dispatch(session.ResumeTimer{})
		case "s":
			return s, s.dispatch(session.StopTimer{})
		}
		return s, nil
	}
	return s, nil
}

func (s *TimerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return center(width, height, lipgloss.NewStyle().
			Foreground(theme.Error).Render("error: "+s.errMsg))
	}
	if s.loading {
		return center(width, height, lipgloss.NewStyle().
			Foreground(theme.TextDim).Render("Finding good breaks..."))
	}

	st := s.machine.State()
	switch st.Phase {
	case session.PhaseSelecting:
		return s.viewSelecting(width, height)
	case session.PhaseWork:
		flavor := s.workFlavor()
		if name := s.pendingName(); name != "" {
			flavor = strings.TrimSpace(flavor + "\nup next: " + name)
		}
		return s.viewCountdown(width, height, st, theme.Work, "FOCUS", flavor)
	case session.PhaseWorkEnding:
		return s.viewToast(width, height)
	case session.PhaseBreak:
		return s.viewCountdown(width, height, st, theme.Break, "BREAK", s.pendingName())
	case session.PhasePaused:
		return s.viewPaused(width, height, st)
	default:
		return s.viewPresets(width, height)
	}
}

func (s *TimerScreen) viewPresets(width, height int) string {
	title := theme.Title.Width(width).Render("Pick an interval")
	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(s.presetMenu.View()))
	return center(width, height, title+"\n\n"+menu)
}

func (s *TimerScreen) viewSelecting(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Choose your break"))
	b.WriteString("\n")

	sourceNote := "picked from the catalog"
	if s.source == recommend.SourceAI {
		sourceNote = "suggested for you"
	}
	b.WriteString(theme.Subtitle.Width(width).Render(sourceNote))
	b.WriteString("\n\n")

	for i, c := range s.cands {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = theme.Selected
		}
		line := fmt.Sprintf("%s%s  %dm  %s", prefix, c.Name, c.Minutes, c.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.limit {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render("That's all the fresh ideas for this session")))
	}

	return center(width, height, b.String())
}

func (s *TimerScreen) viewCountdown(width, height int, st session.State, accent color.Color, label, flavor string) string {
	now := time.Now().UnixMilli()
	remaining := st.EndTs - now
	if remaining < 0 {
		remaining = 0
	}
	total := st.EndTs - st.StartTs

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).
		Width(width).Align(lipgloss.Center).Render(label))
	b.WriteString("\n\n")

	clock := formatMillis(remaining)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(width).Align(lipgloss.Center).Render(clock))
	b.WriteString("\n\n")

	percent := 0.0
	if total > 0 {
		percent = float64(total-remaining) / float64(total)
	}
	bar := components.ProgressBar{Percent: percent, Width: barWidth(width), Color: accent}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	if flavor != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(flavor))
	}

	return center(width, height, b.String())
}

func (s *TimerScreen) viewToast(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Width(width).Align(lipgloss.Center).Render("Work interval done!"))
	b.WriteString("\n\n")

	name := s.pendingName()
	if name != "" {
		b.WriteString(theme.Subtitle.Width(width).Render("Up next: " + name))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Press Enter to start the break, or it starts on its own"))
	return center(width, height, b.String())
}

func (s *TimerScreen) viewPaused(width, height int, st session.State) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Pause).Bold(true).
		Width(width).Align(lipgloss.Center).Render("PAUSED"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(width).Align(lipgloss.Center).Render(formatMillis(st.RemainingMs) + " left"))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Space resumes where you left off"))
	return center(width, height, b.String())
}

// workFlavor is the daily one-liner shown under the focus countdown.
func (s *TimerScreen) workFlavor() string {
	if s.kv == nil {
		return ""
	}
	var desc string
	_, _ = s.kv.Get(context.Background(), store.KeyTimerDescription, &desc)
	return desc
}

// pendingName resolves the confirmed break's name from the pending
// record.
func (s *TimerScreen) pendingName() string {
	if s.kv == nil {
		return ""
	}
	var cand recommend.Candidate
	if found, err := s.kv.Get(context.Background(), store.KeyPendingBreak, &cand); err != nil || !found {
		return ""
	}
	return cand.Name
}

func formatMillis(ms int64) string {
	secs := (ms + 999) / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func barWidth(width int) int {
	w := width / 2
	if w < 20 {
		w = 20
	}
	if w > 48 {
		w = 48
	}
	return w
}

func center(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
