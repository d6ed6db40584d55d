package puzzle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManhattanDistanceZeroAtGoal(t *testing.T) {
	assert.Equal(t, 0, ManhattanDistance(Goal(), Goal()))

	// Against any goal, not just the canonical one.
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		var s State
		for j, v := range rng.Perm(BoardLen) {
			s[j] = v
		}
		assert.Equal(t, 0, ManhattanDistance(s, s))
	}
}

func TestManhattanDistancePositiveOffGoal(t *testing.T) {
	goal := Goal()
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		s, err := Shuffle(1+rng.Intn(40), rng)
		require.NoError(t, err)
		d := ManhattanDistance(s, goal)
		if s == goal {
			assert.Equal(t, 0, d)
		} else {
			assert.Greater(t, d, 0)
		}
	}
}

func TestManhattanDistanceKnownValues(t *testing.T) {
	// 7 is one row off, 4 and 5 one column off, 6 one row off: total 4.
	assert.Equal(t, 4, ManhattanDistance(State{1, 2, 3, 7, 4, 5, 0, 8, 6}, Goal()))

	// A single slide of the blank moves exactly one tile one step.
	for _, nb := range Goal().Neighbors() {
		assert.Equal(t, 1, ManhattanDistance(nb.State, Goal()))
	}
}

func TestManhattanDistanceConsistent(t *testing.T) {
	// |h(s) - h(s')| <= 1 across a single move, the consistency bound
	// A* optimality relies on.
	goal := Goal()
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		s, err := Shuffle(rng.Intn(50), rng)
		require.NoError(t, err)
		h := ManhattanDistance(s, goal)
		for _, nb := range s.Neighbors() {
			hn := ManhattanDistance(nb.State, goal)
			diff := h - hn
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1)
		}
	}
}
