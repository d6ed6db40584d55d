// Package tui is the terminal front-end: an interactive board over the
// puzzle search core.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sahib855/8-puzzle/internal/render"
	"github.com/sahib855/8-puzzle/puzzle"
)

const (
	animateDelay        = 400 * time.Millisecond
	defaultShuffleSteps = 30

	statusReady     = "Arrows move the blank • s shuffle • enter solve • r reset • q quit"
	statusSolving   = "Solving..."
	statusAnimating = "Animating solution..."
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Padding(1, 0, 0, 2)
	boardStyle  = lipgloss.NewStyle().Padding(0, 0, 0, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(1, 0, 1, 2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(1, 0, 1, 2)
)

// outcomeMsg bridges the solver's handoff channel into the update loop.
type outcomeMsg puzzle.Outcome

// frameMsg advances the solution animation.
type frameMsg time.Time

// Model is the bubbletea model for the interactive board.
type Model struct {
	ctx   context.Context
	state puzzle.State
	goal  puzzle.State

	path      []puzzle.State
	stepIndex int

	solving   bool
	animating bool
	failed    bool
	status    string
}

// New returns a model showing the goal board.
func New(ctx context.Context) Model {
	return Model{
		ctx:    ctx,
		state:  puzzle.Goal(),
		goal:   puzzle.Goal(),
		status: statusReady,
	}
}

// Run drives the TUI until the user quits.
func Run(ctx context.Context) error {
	_, err := tea.NewProgram(New(ctx), tea.WithAltScreen()).Run()
	return err
}

func waitForOutcome(outcomes <-chan puzzle.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-outcomes)
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(animateDelay, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case outcomeMsg:
		m.solving = false
		if msg.Err != nil {
			m.failed = true
			m.status = fmt.Sprintf("Solve failed: %v", msg.Err)
			return m, nil
		}
		switch msg.Result.Status {
		case puzzle.StatusUnsolvable:
			m.failed = true
			m.status = "This configuration is unsolvable."
			return m, nil
		case puzzle.StatusNoSolutionFound:
			m.failed = true
			m.status = "Search exhausted without reaching the goal. Please report this board."
			return m, nil
		}
		m.path = msg.Result.Path
		m.stepIndex = 0
		m.state = m.path[0]
		m.animating = true
		m.failed = false
		m.status = statusAnimating
		return m, frameCmd()

	case frameMsg:
		if !m.animating {
			return m, nil
		}
		m.stepIndex++
		if m.stepIndex < len(m.path) {
			m.state = m.path[m.stepIndex]
			return m, frameCmd()
		}
		m.animating = false
		m.status = fmt.Sprintf("Solved in %d moves. %s", len(m.path)-1, statusReady)
		m.path = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	// Input is frozen while a solve or animation is in flight.
	if m.solving || m.animating {
		return m, nil
	}

	switch key {
	case "up":
		return m.move(puzzle.MoveUp)
	case "down":
		return m.move(puzzle.MoveDown)
	case "left":
		return m.move(puzzle.MoveLeft)
	case "right":
		return m.move(puzzle.MoveRight)
	case "s":
		state, err := puzzle.Shuffle(defaultShuffleSteps, nil)
		if err != nil {
			return m, nil
		}
		m.state = state
		m.failed = false
		m.status = fmt.Sprintf("Shuffled with %d valid moves.", defaultShuffleSteps)
		return m, nil
	case "r":
		m.state = m.goal
		m.failed = false
		m.status = statusReady
		return m, nil
	case "enter":
		if m.state == m.goal {
			m.status = "Already at the goal."
			return m, nil
		}
		m.solving = true
		m.failed = false
		m.status = statusSolving
		return m, waitForOutcome(puzzle.SolveAsync(m.ctx, m.state, m.goal))
	}
	return m, nil
}

func (m Model) move(mv puzzle.Move) (tea.Model, tea.Cmd) {
	if next, ok := m.state.Apply(mv); ok {
		m.state = next
	}
	return m, nil
}

func (m Model) View() string {
	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("8-Puzzle"),
		boardStyle.Render(render.Board(m.state)),
		status,
	)
}
