// Package tui renders the interactive Monty Hall game in the terminal.
// All game rules live in internal/session and internal/game; the TUI
// only draws the current session state and forwards key presses.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmorrel/montysim/internal/game"
	"github.com/jmorrel/montysim/internal/session"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type model struct {
	session *session.Session
	cursor  game.Door
	width   int
	height  int
}

// RunInteractive starts the interactive game loop.
func RunInteractive() error {
	p := tea.NewProgram(newModel(time.Now().UnixNano()))
	_, err := p.Run()
	return err
}

func newModel(seed int64) model {
	return model{session: session.New(seed), width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.session.Reset()
		m.cursor = 0
		return m, nil
	}

	switch m.session.Phase() {
	case session.AwaitingSelection:
		return m.selectionKey(msg)
	case session.AwaitingDecision:
		return m.decisionKey(msg)
	case session.RoundComplete:
		return m.completeKey(msg)
	}
	return m, nil
}

func (m model) selectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < game.NumDoors-1 {
			m.cursor++
		}
	case "1", "2", "3":
		m.cursor = game.Door(msg.String()[0] - '1')
	case "enter", " ":
		// Selection is cursor-bound, so Select cannot fail here.
		_ = m.session.Select(m.cursor)
	}
	return m, nil
}

func (m model) decisionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k":
		_, _ = m.session.Decide(game.Keep)
	case "s":
		_, _ = m.session.Decide(game.Switch)
	}
	return m, nil
}

func (m model) completeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p", "enter", " ":
		_ = m.session.PlayAgain()
		m.cursor = 0
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("m o n t y s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	b.WriteString(m.viewDoors())
	b.WriteString("\n")
	b.WriteString(m.viewMessage())
	b.WriteString("\n")
	b.WriteString(m.viewTally())
	b.WriteString("\n")
	b.WriteString(m.viewHints())

	return b.String()
}

// doorFace is what a single door shows: a label and a render style.
type doorFace struct {
	label string
	style lipgloss.Style
}

func (m model) faces() [game.NumDoors]doorFace {
	var faces [game.NumDoors]doorFace
	for d := game.Door(0); d < game.NumDoors; d++ {
		faces[d] = doorFace{label: "?", style: dim}
	}

	switch m.session.Phase() {
	case session.AwaitingSelection:
		faces[m.cursor].style = cyan
	case session.AwaitingDecision:
		r := m.session.Round()
		faces[r.Selected] = doorFace{label: "you", style: cyan}
		faces[r.Revealed] = doorFace{label: "goat", style: yellow}
		faces[r.Remaining] = doorFace{label: "?", style: white}
	case session.RoundComplete:
		r := m.session.Round()
		for d := game.Door(0); d < game.NumDoors; d++ {
			if d == r.Prize {
				faces[d] = doorFace{label: "car", style: green}
			} else {
				faces[d] = doorFace{label: "goat", style: yellow}
			}
		}
		final := r.Selected
		if m.session.LastDecision() == game.Switch {
			final = r.Remaining
		}
		faces[final].style = faces[final].style.Bold(true)
	}
	return faces
}

func (m model) viewDoors() string {
	faces := m.faces()

	rows := make([]string, 6)
	for d := game.Door(0); d < game.NumDoors; d++ {
		face := faces[d]
		lines := []string{
			"┌───────┐",
			"│       │",
			fmt.Sprintf("│%s│", center(face.label, 7)),
			"│       │",
			"└───────┘",
			center(fmt.Sprintf("door %d", d+1), 9),
		}
		for i, line := range lines {
			rows[i] += "   " + face.style.Render(line)
		}
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString("   " + row + "\n")
	}
	return b.String()
}

func (m model) viewMessage() string {
	switch m.session.Phase() {
	case session.AwaitingSelection:
		return "   " + white.Render("pick a door: the car hides behind one of them") + "\n"
	case session.AwaitingDecision:
		r := m.session.Round()
		return fmt.Sprintf("   you chose %s and the host opened %s to show a goat\n   %s\n",
			white.Render(fmt.Sprintf("door %d", r.Selected+1)),
			white.Render(fmt.Sprintf("door %d", r.Revealed+1)),
			magenta.Render(fmt.Sprintf("keep door %d or switch to door %d?", r.Selected+1, r.Remaining+1)))
	case session.RoundComplete:
		if m.session.LastOutcome() == game.Won {
			return "   " + green.Render("you won the car!") + "\n"
		}
		return "   " + yellow.Render("a goat this time, no car") + "\n"
	}
	return ""
}

func (m model) viewTally() string {
	tally := m.session.Tally()
	rate, ok := tally.WinRate()
	if !ok {
		return "   " + dim.Render("no completed games yet") + "\n"
	}
	return fmt.Sprintf("   %s %d of %d games  %s\n",
		dim.Render("won"),
		tally.Wins,
		tally.Rounds(),
		cyan.Render(fmt.Sprintf("%.1f%%", 100*rate)))
}

func (m model) viewHints() string {
	var hints string
	switch m.session.Phase() {
	case session.AwaitingSelection:
		hints = "←→ move   1-3 jump   enter choose   r reset   q quit"
	case session.AwaitingDecision:
		hints = "k keep   s switch   r reset   q quit"
	case session.RoundComplete:
		hints = "p play again   r reset   q quit"
	}
	return "   " + dim.Render(hints) + "\n"
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
