package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// Options configures one engine-vs-engine game.
type Options struct {
	ID          string
	StartFEN    string        // empty means the standard start position
	RandomPlies int           // uniformly random opening plies before the engines take over
	MaxPlies    int           // 0 means no cap
	MoveBudget  time.Duration // 0 means unlimited; ignored when Clock is set

	// Clock is each side's starting time, topped up by Increment after every
	// move. A move's budget is then allotted from what is left.
	Clock     time.Duration
	Increment time.Duration
}

// Result of a finished (or capped) game.
type Result struct {
	ID       string
	Moves    []board.Move
	Outcome  string // "1-0", "0-1", "1/2-1/2" or "*"
	Reason   string
	FinalFEN string
	PGN      string

	// Remaining is each side's clock when the game ended, indexed by team.
	Remaining [2]time.Duration
}

// Run plays white against black until mate, stalemate, a time forfeit or the
// ply cap.
func Run(ctx context.Context, white, black Searcher, opts Options) (*Result, error) {
	start := opts.StartFEN
	if start == "" {
		start = board.StartFEN
	}
	pos, err := board.ParseFEN(start)
	if err != nil {
		return nil, err
	}
	rec, err := newRecorder(start)
	if err != nil {
		return nil, err
	}

	res := &Result{ID: opts.ID, Outcome: "*", Reason: "ply-cap"}
	engines := [2]Searcher{board.White: white, board.Black: black}
	remaining := &res.Remaining
	remaining[board.White], remaining[board.Black] = opts.Clock, opts.Clock

	for ply := 0; opts.MaxPlies == 0 || ply < opts.MaxPlies; ply++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		team := pos.CurrentTeam()
		switch pos.GameState(team) {
		case board.Checkmate:
			res.Outcome, res.Reason = lossFor(team), "checkmate"
			return finish(res, pos, rec), nil
		case board.Stalemate:
			res.Outcome, res.Reason = "1/2-1/2", "stalemate"
			return finish(res, pos, rec), nil
		}

		var m board.Move
		if ply < opts.RandomPlies {
			moves := pos.LegalMoves(team)
			m = moves[frand.Intn(len(moves))]
		} else {
			budget := opts.MoveBudget
			if opts.Clock > 0 {
				budget = Allot(remaining[team], opts.Increment, pos)
			}
			started := time.Now()
			m, err = SearchWithBudget(ctx, engines[team], pos, team, budget)
			if opts.Clock > 0 {
				remaining[team] -= time.Since(started)
				if remaining[team] <= 0 {
					err = ErrBudgetExceeded
				}
				remaining[team] += opts.Increment
			}
			if errors.Is(err, ErrBudgetExceeded) {
				log.Info().Str("game", opts.ID).Str("team", team.String()).Int("ply", ply).Msg("time-forfeit")
				res.Outcome, res.Reason = lossFor(team), "time-forfeit"
				return finish(res, pos, rec), nil
			}
			if err != nil {
				return nil, fmt.Errorf("game %s ply %d: %w", opts.ID, ply, err)
			}
		}

		if err := pos.Play(m); err != nil {
			return nil, fmt.Errorf("game %s ply %d: %s: %w", opts.ID, ply, m, err)
		}
		if err := rec.add(m); err != nil {
			return nil, fmt.Errorf("game %s ply %d: %w", opts.ID, ply, err)
		}
		res.Moves = append(res.Moves, m)
	}
	return finish(res, pos, rec), nil
}

func lossFor(team board.Team) string {
	if team == board.White {
		return "0-1"
	}
	return "1-0"
}

func finish(res *Result, pos *board.Position, rec *recorder) *Result {
	res.FinalFEN = pos.FEN()
	res.PGN = rec.pgn(res)
	log.Info().
		Str("game", res.ID).
		Str("outcome", res.Outcome).
		Str("reason", res.Reason).
		Int("plies", len(res.Moves)).
		Msg("game-over")
	return res
}

// recorder mirrors the game in notnil/chess to produce PGN.
type recorder struct {
	game  *chess.Game
	start string
}

func newRecorder(fen string) (*recorder, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("pgn recorder: %w", err)
	}
	return &recorder{game: chess.NewGame(opt), start: fen}, nil
}

func (r *recorder) add(m board.Move) error {
	cm, err := chess.UCINotation{}.Decode(r.game.Position(), m.String())
	if err != nil {
		return fmt.Errorf("pgn recorder: decode %s: %w", m, err)
	}
	return r.game.Move(cm)
}

func (r *recorder) pgn(res *Result) string {
	if res.ID != "" {
		r.game.AddTagPair("Event", "selfplay "+res.ID)
	}
	r.game.AddTagPair("Result", res.Outcome)
	r.game.AddTagPair("Termination", res.Reason)
	if r.start != board.StartFEN {
		r.game.AddTagPair("SetUp", "1")
		r.game.AddTagPair("FEN", r.start)
	}
	return r.game.String()
}
