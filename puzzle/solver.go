package puzzle

import (
	"container/heap"
	"time"
)

// Status classifies a search outcome.
type Status int

const (
	// StatusSolved: Path leads from start to goal.
	StatusSolved Status = iota
	// StatusUnsolvable: start and goal lie in different parity classes,
	// no move sequence connects them. A normal result, not an error.
	StatusUnsolvable
	// StatusNoSolutionFound: the frontier drained without reaching the
	// goal. Cannot happen for a valid solvable 3x3 instance; kept
	// distinct from StatusUnsolvable so a logic defect stays diagnosable.
	StatusNoSolutionFound
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusNoSolutionFound:
		return "no solution found"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a search. Path and Moves are only set
// for StatusSolved; Path includes both endpoints, so
// MoveCount == len(Path)-1 == len(Moves).
type Result struct {
	Status    Status
	Path      []State
	Moves     []Move
	MoveCount int
	Explored  int
	Elapsed   time.Duration
}

// Solve runs A* from start to goal and returns the outcome. The only
// error condition is an input that is not a permutation of 0..8; both
// boards are checked before the search starts.
//
// The search is synchronous and runs to completion. Repeated calls with
// the same inputs explore the same nodes in the same order and return
// the same path.
func Solve(start, goal State) (Result, error) {
	if err := start.Validate(); err != nil {
		return Result{}, err
	}
	if err := goal.Validate(); err != nil {
		return Result{}, err
	}

	// Parity pre-filter. Searching an unsolvable board would sweep the
	// entire reachable half of the state space before failing.
	if Solvable(start) != Solvable(goal) {
		return Result{Status: StatusUnsolvable}, nil
	}

	began := time.Now()

	open := &frontier{}
	heap.Init(open)

	var seq uint64
	root := &node{state: start, g: 0, h: ManhattanDistance(start, goal), seq: seq}
	seq++
	heap.Push(open, root)

	bestCost := map[State]int{start: 0}
	closed := make(map[State]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)

		if current.state == goal {
			path, moves := reconstructPath(current)
			return Result{
				Status:    StatusSolved,
				Path:      path,
				Moves:     moves,
				MoveCount: current.g,
				Explored:  len(closed),
				Elapsed:   time.Since(began),
			}, nil
		}

		closed[current.state] = struct{}{}

		for _, nb := range current.state.Neighbors() {
			if _, done := closed[nb.State]; done {
				continue
			}
			gScore := current.g + 1
			if prev, seen := bestCost[nb.State]; seen && prev <= gScore {
				continue
			}
			bestCost[nb.State] = gScore
			child := &node{
				state:  nb.State,
				parent: current,
				move:   nb.Move,
				g:      gScore,
				h:      ManhattanDistance(nb.State, goal),
				seq:    seq,
			}
			seq++
			heap.Push(open, child)
		}
	}

	return Result{
		Status:   StatusNoSolutionFound,
		Explored: len(closed),
		Elapsed:  time.Since(began),
	}, nil
}

// reconstructPath walks parent pointers from the goal node to the root
// and reverses, yielding start..goal and the moves between them.
func reconstructPath(goal *node) ([]State, []Move) {
	path := make([]State, 0, goal.g+1)
	moves := make([]Move, 0, goal.g)
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.state)
		if n.parent != nil {
			moves = append(moves, n.move)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return path, moves
}
