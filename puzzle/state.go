package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	gridSize  = 3
	boardLen  = gridSize * gridSize // 9
	blankTile = 0
)

// Exported board dimensions for callers that lay out a grid.
const (
	GridSize  = gridSize
	BoardLen  = boardLen
	BlankTile = blankTile
)

var (
	// ErrInvalidConfiguration reports a board that is not a permutation
	// of 0..8. All parse/validate failures wrap it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	errInvalidSteps = errors.New("steps must be >= 0")
)

// State is one board configuration: 9 tiles in row-major order, 0 is the
// blank. It is a comparable value, so it works directly as a map key.
type State [boardLen]int

// Move labels the blank's displacement that produced a state from its
// predecessor.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

func (m Move) String() string {
	switch m {
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	case MoveLeft:
		return "LEFT"
	case MoveRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Neighbor pairs a reachable state with the move that reaches it.
type Neighbor struct {
	State State
	Move  Move
}

// Goal returns the canonical goal: tiles 1..8 in order, blank last.
func Goal() State { return State{1, 2, 3, 4, 5, 6, 7, 8, blankTile} }

// String serializes the state, blank as "_" and rows separated by "|".
func (s State) String() string {
	var b strings.Builder
	for i, v := range s {
		if v == blankTile {
			b.WriteString("_")
		} else {
			b.WriteString(strconv.Itoa(v))
		}
		if i%gridSize == gridSize-1 && i != boardLen-1 {
			b.WriteString("|")
		} else if i != boardLen-1 {
			b.WriteString(",")
		}
	}
	return b.String()
}

// Blank returns the index of the blank tile.
func (s State) Blank() int {
	for i, v := range s {
		if v == blankTile {
			return i
		}
	}
	return -1 // unreachable for a valid state
}

// Validate checks that the state is a permutation of 0..8.
func (s State) Validate() error {
	var seen [boardLen]bool
	for i, v := range s {
		if v < 0 || v >= boardLen {
			return fmt.Errorf("%w: value %d at index %d out of range 0..%d",
				ErrInvalidConfiguration, v, i, boardLen-1)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d repeated", ErrInvalidConfiguration, v)
		}
		seen[v] = true
	}
	return nil
}

// Parse reads a comma-separated board such as "1,2,3,7,4,5,0,8,6".
// Whitespace around entries is ignored. The result is always a valid
// permutation of 0..8; anything else fails with ErrInvalidConfiguration.
func Parse(in string) (State, error) {
	parts := strings.Split(in, ",")
	if len(parts) != boardLen {
		return State{}, fmt.Errorf("%w: got %d values, want %d",
			ErrInvalidConfiguration, len(parts), boardLen)
	}
	var s State
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return State{}, fmt.Errorf("%w: %q is not a number",
				ErrInvalidConfiguration, strings.TrimSpace(p))
		}
		s[i] = v
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// moveDeltas in emission order: UP, DOWN, LEFT, RIGHT. The order is part
// of the contract, it fixes frontier tie-breaking downstream.
var moveDeltas = [...]struct {
	dr, dc int
	move   Move
}{
	{dr: -1, dc: 0, move: MoveUp},
	{dr: 1, dc: 0, move: MoveDown},
	{dr: 0, dc: -1, move: MoveLeft},
	{dr: 0, dc: 1, move: MoveRight},
}

// Neighbors generates the states reachable by sliding a tile into the
// blank, labeled with the blank's move. Between 2 (corner) and 4
// (center) results, emitted in UP, DOWN, LEFT, RIGHT order.
func (s State) Neighbors() []Neighbor {
	zeroIndex := s.Blank()
	row := zeroIndex / gridSize
	col := zeroIndex % gridSize

	out := make([]Neighbor, 0, 4)
	for _, mv := range moveDeltas {
		newRow := row + mv.dr
		newCol := col + mv.dc
		if newRow < 0 || newRow >= gridSize || newCol < 0 || newCol >= gridSize {
			continue
		}
		newIndex := newRow*gridSize + newCol
		next := s
		next[zeroIndex], next[newIndex] = next[newIndex], next[zeroIndex]
		out = append(out, Neighbor{State: next, Move: mv.move})
	}
	return out
}

// Apply moves the blank one step in the given direction. The second
// return is false when the move would leave the board.
func (s State) Apply(m Move) (State, bool) {
	for _, nb := range s.Neighbors() {
		if nb.Move == m {
			return nb.State, true
		}
	}
	return s, false
}

// Solvable reports whether the state can reach the canonical blank-last
// goal: true iff the inversion count of the non-blank tiles is even.
func Solvable(s State) bool {
	inversions := 0
	for i := 0; i < boardLen; i++ {
		if s[i] == blankTile {
			continue
		}
		for j := i + 1; j < boardLen; j++ {
			if s[j] != blankTile && s[i] > s[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 0
}

// Shuffle scrambles the goal with a random walk of the given number of
// valid moves, so the result is always solvable. A nil rng is seeded
// from the clock.
func Shuffle(steps int, rng *rand.Rand) (State, error) {
	if steps < 0 {
		return State{}, errInvalidSteps
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := Goal()
	for i := 0; i < steps; i++ {
		neighbors := state.Neighbors()
		state = neighbors[rng.Intn(len(neighbors))].State
	}
	return state, nil
}
