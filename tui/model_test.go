package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahib855/8-puzzle/puzzle"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewShowsGoal(t *testing.T) {
	m := New(context.Background())
	assert.Equal(t, puzzle.Goal(), m.state)
	assert.False(t, m.solving)
	assert.False(t, m.animating)
}

func TestArrowMovesBlank(t *testing.T) {
	m := New(context.Background())

	// Goal has the blank bottom-right: only UP and LEFT are legal.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	moved := next.(Model)
	want, ok := puzzle.Goal().Apply(puzzle.MoveUp)
	require.True(t, ok)
	assert.Equal(t, want, moved.state)

	// Illegal move leaves the board unchanged.
	next, _ = moved.Update(tea.KeyMsg{Type: tea.KeyRight})
	stuck := next.(Model)
	blocked, ok := moved.state.Apply(puzzle.MoveRight)
	if !ok {
		assert.Equal(t, moved.state, stuck.state)
	} else {
		assert.Equal(t, blocked, stuck.state)
	}
}

func TestShuffleKey(t *testing.T) {
	m := New(context.Background())
	next, _ := m.Update(keyRune('s'))
	shuffled := next.(Model)

	assert.NoError(t, shuffled.state.Validate())
	assert.True(t, puzzle.Solvable(shuffled.state))
	assert.Contains(t, shuffled.status, "Shuffled")
}

func TestResetKey(t *testing.T) {
	m := New(context.Background())
	m.state = puzzle.State{1, 2, 3, 7, 4, 5, 0, 8, 6}

	next, _ := m.Update(keyRune('r'))
	assert.Equal(t, puzzle.Goal(), next.(Model).state)
}

func TestEnterAtGoalDoesNotSolve(t *testing.T) {
	m := New(context.Background())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).solving)
}

func TestEnterStartsSolve(t *testing.T) {
	m := New(context.Background())
	m.state = puzzle.State{1, 2, 3, 7, 4, 5, 0, 8, 6}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	solving := next.(Model)
	assert.True(t, solving.solving)
	require.NotNil(t, cmd)

	// The command blocks on the solver handoff and yields its outcome.
	msg := cmd()
	outcome, ok := msg.(outcomeMsg)
	require.True(t, ok)
	require.NoError(t, outcome.Err)
	assert.Equal(t, puzzle.StatusSolved, outcome.Result.Status)
}

func TestSolvedOutcomeStartsAnimation(t *testing.T) {
	m := New(context.Background())
	start := puzzle.State{1, 2, 3, 4, 5, 6, 7, 0, 8}
	m.state = start
	m.solving = true

	result, err := puzzle.Solve(start, puzzle.Goal())
	require.NoError(t, err)
	require.Equal(t, puzzle.StatusSolved, result.Status)

	next, cmd := m.Update(outcomeMsg{Result: result})
	animating := next.(Model)
	assert.False(t, animating.solving)
	assert.True(t, animating.animating)
	assert.Equal(t, start, animating.state)
	assert.NotNil(t, cmd)
}

func TestAnimationFramesAdvanceAndFinish(t *testing.T) {
	m := New(context.Background())
	start := puzzle.State{1, 2, 3, 4, 5, 6, 7, 0, 8}
	result, err := puzzle.Solve(start, puzzle.Goal())
	require.NoError(t, err)

	m.state = start
	m.path = result.Path
	m.stepIndex = 0
	m.animating = true

	var model tea.Model = m
	for i := 1; i < len(result.Path); i++ {
		model, _ = model.(Model).Update(frameMsg(time.Now()))
		assert.Equal(t, result.Path[i], model.(Model).state)
	}

	model, _ = model.(Model).Update(frameMsg(time.Now()))
	done := model.(Model)
	assert.False(t, done.animating)
	assert.Equal(t, puzzle.Goal(), done.state)
	assert.Contains(t, done.status, "Solved in 1 moves")
}

func TestUnsolvableOutcome(t *testing.T) {
	m := New(context.Background())
	m.solving = true

	next, cmd := m.Update(outcomeMsg{Result: puzzle.Result{Status: puzzle.StatusUnsolvable}})
	failed := next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, failed.solving)
	assert.True(t, failed.failed)
	assert.Contains(t, failed.status, "unsolvable")
}

func TestInputFrozenWhileBusy(t *testing.T) {
	m := New(context.Background())
	m.solving = true
	before := m.state

	next, cmd := m.Update(keyRune('s'))
	assert.Nil(t, cmd)
	assert.Equal(t, before, next.(Model).state)

	// Quit still works.
	_, cmd = next.(Model).Update(keyRune('q'))
	assert.NotNil(t, cmd)
}

func TestViewRendersBoardAndStatus(t *testing.T) {
	m := New(context.Background())
	out := m.View()
	assert.Contains(t, out, "8-Puzzle")
	for _, digit := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		assert.Contains(t, out, digit)
	}
}
