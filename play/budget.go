package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

var ErrBudgetExceeded = errors.New("search budget exceeded")

// Searcher picks a move for team. *engine.Engine satisfies it.
type Searcher interface {
	BestMove(pos *board.Position, team board.Team) (board.Move, error)
}

// SearchWithBudget runs the search on its own goroutine and gives up once
// the budget or ctx runs out. The engine cannot be interrupted, so a late
// search keeps running in the background and its result is dropped. A zero
// budget only honours ctx.
func SearchWithBudget(ctx context.Context, s Searcher, pos *board.Position, team board.Team, budget time.Duration) (board.Move, error) {
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	type result struct {
		move board.Move
		err  error
	}
	done := make(chan result, 1)
	snapshot := pos.DeepCopy()
	go func() {
		m, err := s.BestMove(snapshot, team)
		done <- result{m, err}
	}()

	select {
	case r := <-done:
		return r.move, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return board.NoMove, fmt.Errorf("%w after %s", ErrBudgetExceeded, budget)
		}
		return board.NoMove, ctx.Err()
	}
}
