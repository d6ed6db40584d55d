package puzzle

import (
	"context"

	"github.com/sahib855/8-puzzle/internal/ctxlog"
)

// Outcome is what SolveAsync delivers: a Result, or the validation
// error that prevented the search from starting.
type Outcome struct {
	Result Result
	Err    error
}

// SolveAsync runs Solve on its own goroutine and delivers exactly one
// Outcome on the returned channel. The channel is buffered, so the
// search never blocks on a receiver that lost interest.
//
// Each call owns its frontier, closed set and best-cost map; concurrent
// calls are independent. The context supplies the logger and allows
// abandoning the handoff: if ctx is done before the search starts, a
// ctx.Err outcome is delivered instead.
func SolveAsync(ctx context.Context, start, goal State) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		logger := ctxlog.FromContext(ctx)

		if err := ctx.Err(); err != nil {
			out <- Outcome{Err: err}
			return
		}

		result, err := Solve(start, goal)
		if err != nil {
			logger.Error("solve rejected", "error", err)
			out <- Outcome{Err: err}
			return
		}

		logger.Debug("search finished",
			"status", result.Status.String(),
			"moves", result.MoveCount,
			"explored", result.Explored,
			"elapsed", result.Elapsed,
		)
		out <- Outcome{Result: result}
	}()
	return out
}
