package engine

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// Engine picks moves. It is safe for concurrent use on different positions;
// the cache and the counters are the only shared state.
type Engine struct {
	cfg   Config
	cache *Cache
	stats stats
}

// New builds an engine. A nil cache gets a private one sized by cfg.
func New(cfg Config, cache *Cache) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NewCache(cfg.Cache, nil)
	}
	return &Engine{cfg: cfg, cache: cache}, nil
}

// NewDefault builds an engine with DefaultConfig and its own cache.
func NewDefault() *Engine {
	e, err := New(DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Config() Config { return e.cfg }
func (e *Engine) Cache() *Cache  { return e.cache }

// Decision is a chosen move with the stage that produced it. Score is only
// set by the search stage.
type Decision struct {
	Move  board.Move
	Stage Stage
	Score float64
}

// BestMove returns team's move in pos, or NoMove when team has no legal move.
// pos is never modified.
func (e *Engine) BestMove(pos *board.Position, team board.Team) (board.Move, error) {
	d, err := e.Decide(pos, team)
	return d.Move, err
}

// Decide runs the selection pipeline, stopping at the first stage that
// produces a move.
func (e *Engine) Decide(pos *board.Position, team board.Team) (d Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			d = Decision{}
			err = &SimulationError{Team: team, FEN: pos.FEN(), Cause: r}
		}
	}()

	work := pos.Turned(team)
	d = e.decide(work, team)
	e.stats.decisions[d.Stage].Add(1)
	if d.Stage != StageNone && d.Stage != StageCached {
		e.cache.StoreBestMove(work.PlacementHash(), team, d.Move)
	}
	e.cache.Maintain()

	log.Debug().
		Str("team", team.String()).
		Str("move", d.Move.String()).
		Str("stage", d.Stage.String()).
		Float64("score", d.Score).
		Msg("best-move")
	return d, nil
}

func (e *Engine) decide(pos *board.Position, team board.Team) Decision {
	moves := pos.LegalMoves(team)
	if len(moves) == 0 {
		return Decision{Move: board.NoMove, Stage: StageNone}
	}

	hash := pos.PlacementHash()
	if cached, ok := e.cache.BestMove(hash, team); ok {
		// Placement-only keys can collide across castling or en passant
		// states, so the move must still be playable.
		if i := slices.IndexFunc(moves, cached.Equal); i >= 0 {
			return Decision{Move: moves[i], Stage: StageCached}
		}
	}

	if m, ok := mateInOne(pos, team, moves); ok {
		return Decision{Move: m, Stage: StageMate}
	}

	facts := analyzeMoves(pos, team, moves, true)

	if f, ok := lo.Find(facts, func(f moveFacts) bool {
		return f.move.Captured.Type == board.Queen && f.free && f.lost == 0
	}); ok {
		return Decision{Move: f.move, Stage: StageQueenCapture}
	}

	free := lo.Filter(facts, func(f moveFacts, _ int) bool { return f.free && f.lost <= f.captured })
	if len(free) > 0 {
		best := lo.MaxBy(free, func(a, b moveFacts) bool { return a.captured > b.captured })
		return Decision{Move: best.move, Stage: StageFreeCapture}
	}

	if qsq, ok := hangingQueen(pos, team); ok {
		if m, ok := e.rescueQueen(pos, team, qsq, facts); ok {
			return Decision{Move: m, Stage: StageQueenRescue}
		}
	} else if m, ok := e.rescue(pos, team, facts); ok {
		return Decision{Move: m, Stage: StageRescue}
	}

	candidates := e.candidates(facts)
	if len(candidates) == 0 {
		return Decision{Move: moves[0], Stage: StageFallback}
	}
	m, score := e.searchRoot(pos, team, candidates)
	return Decision{Move: m, Stage: StageSearch, Score: score}
}

// Candidates returns the moves the search would consider for team at the
// root: ordered, filtered and truncated.
func (e *Engine) Candidates(pos *board.Position, team board.Team) []board.Move {
	work := pos.Turned(team)
	moves := work.LegalMoves(team)
	if len(moves) == 0 {
		return nil
	}
	facts := analyzeMoves(work, team, moves, true)
	if c := e.candidates(facts); len(c) > 0 {
		return c
	}
	return []board.Move{moves[0]}
}

// candidates is empty when the filter rejected everything.
func (e *Engine) candidates(facts []moveFacts) []board.Move {
	kept := lo.Filter(orderFacts(facts), func(f moveFacts, _ int) bool { return keepMove(f) })
	if len(kept) > e.cfg.MaxCandidates {
		kept = kept[:e.cfg.MaxCandidates]
	}
	return factsMoves(kept)
}

func mateInOne(pos *board.Position, team board.Team, moves []board.Move) (board.Move, bool) {
	enemy := team.Opponent()
	for _, m := range moves {
		undo := pos.Apply(m)
		mate := pos.IsCheckmate(enemy)
		undo()
		if mate {
			return m, true
		}
	}
	return board.NoMove, false
}

func hangingQueen(pos *board.Position, team board.Team) (board.Square, bool) {
	for _, sq := range pos.SquaresOf(team, board.Queen) {
		if IsHanging(pos, sq) {
			return sq, true
		}
	}
	return board.NoSquare, false
}
