package puzzle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAsyncDeliversOnce(t *testing.T) {
	start := State{1, 2, 3, 7, 4, 5, 0, 8, 6}
	outcomes := SolveAsync(context.Background(), start, Goal())

	var outcome Outcome
	select {
	case outcome = <-outcomes:
	case <-time.After(10 * time.Second):
		t.Fatal("no outcome delivered")
	}

	require.NoError(t, outcome.Err)
	assert.Equal(t, StatusSolved, outcome.Result.Status)

	// Exactly one outcome: the channel stays empty afterwards.
	select {
	case extra := <-outcomes:
		t.Fatalf("unexpected second outcome: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSolveAsyncInvalidInput(t *testing.T) {
	bad := State{1, 1, 3, 4, 5, 6, 7, 8, 0}
	outcome := <-SolveAsync(context.Background(), bad, Goal())
	assert.ErrorIs(t, outcome.Err, ErrInvalidConfiguration)
}

func TestSolveAsyncCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome := <-SolveAsync(ctx, Goal(), Goal())
	assert.ErrorIs(t, outcome.Err, context.Canceled)
}

func TestSolveAsyncConcurrent(t *testing.T) {
	// Concurrent solves share nothing; each must come back solved and
	// agree with its own synchronous run.
	starts := []State{
		{1, 2, 3, 7, 4, 5, 0, 8, 6},
		{1, 2, 3, 4, 5, 6, 7, 0, 8},
		{0, 1, 3, 4, 2, 5, 7, 8, 6},
		{4, 1, 3, 7, 2, 5, 0, 8, 6},
	}

	var wg sync.WaitGroup
	for _, start := range starts {
		start := start
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome := <-SolveAsync(context.Background(), start, Goal())
			if !assert.NoError(t, outcome.Err) {
				return
			}
			if !assert.Equal(t, StatusSolved, outcome.Result.Status) {
				return
			}

			reference, err := Solve(start, Goal())
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, reference.Path, outcome.Result.Path)
		}()
	}
	wg.Wait()
}
