package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Stage names the pipeline step that produced a decision.
type Stage uint8

const (
	StageNone Stage = iota
	StageCached
	StageMate
	StageQueenCapture
	StageFreeCapture
	StageQueenRescue
	StageRescue
	StageSearch
	StageFallback
	stageCount
)

var stageNames = [stageCount]string{"none", "cached", "mate", "queen-capture", "free-capture", "queen-rescue", "rescue", "search", "fallback"}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return "unknown"
}

type stats struct {
	nodes       atomic.Uint64
	betaCutoffs atomic.Uint64
	evaluations atomic.Uint64
	decisions   [stageCount]atomic.Uint64
}

// Statistics is a snapshot of the engine counters since construction or the
// last ResetStats.
type Statistics struct {
	Nodes       uint64
	BetaCutoffs uint64
	Evaluations uint64
	Decisions   map[Stage]uint64
	Cache       CacheStats
}

func (e *Engine) Stats() Statistics {
	s := Statistics{
		Nodes:       e.stats.nodes.Load(),
		BetaCutoffs: e.stats.betaCutoffs.Load(),
		Evaluations: e.stats.evaluations.Load(),
		Decisions:   make(map[Stage]uint64),
		Cache:       e.cache.Stats(),
	}
	for st := range e.stats.decisions {
		if n := e.stats.decisions[st].Load(); n > 0 {
			s.Decisions[Stage(st)] = n
		}
	}
	return s
}

func (e *Engine) ResetStats() {
	e.stats.nodes.Store(0)
	e.stats.betaCutoffs.Store(0)
	e.stats.evaluations.Store(0)
	for st := range e.stats.decisions {
		e.stats.decisions[st].Store(0)
	}
}

// LogStats dumps the counters at info level.
func (e *Engine) LogStats() {
	s := e.Stats()
	ev := log.Info().
		Uint64("nodes", s.Nodes).
		Uint64("beta-cutoffs", s.BetaCutoffs).
		Uint64("evaluations", s.Evaluations).
		Int("eval-entries", s.Cache.Evaluations).
		Int("move-entries", s.Cache.BestMoves).
		Uint64("eval-hits", s.Cache.EvalHits).
		Uint64("eval-misses", s.Cache.EvalMisses).
		Uint64("move-hits", s.Cache.MoveHits).
		Uint64("move-misses", s.Cache.MoveMisses)
	for st := StageNone; st < stageCount; st++ {
		if n, ok := s.Decisions[st]; ok {
			ev = ev.Uint64(st.String(), n)
		}
	}
	ev.Msg("engine-stats")
}
