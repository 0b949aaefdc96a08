package engine

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
)

// Clock returns the current time. Tests substitute a fake one to drive the
// sweep timer.
type Clock func() time.Time

type evalEntry struct {
	score float64
	seq   uint64
}

type moveKey struct {
	hash uint64
	team board.Team
}

type moveEntry struct {
	move board.Move
	seq  uint64
}

// Cache memoizes evaluations and chosen moves by placement hash. It is safe
// for concurrent use; a lost update only costs a recomputation.
type Cache struct {
	cfg CacheConfig
	now Clock

	mu        sync.RWMutex
	evals     map[uint64]evalEntry
	moves     map[moveKey]moveEntry
	seq       uint64
	lastSweep time.Time

	evalHits, evalMisses atomic.Uint64
	moveHits, moveMisses atomic.Uint64
}

// CacheStats is a diagnostic snapshot.
type CacheStats struct {
	Evaluations int
	BestMoves   int
	EvalHits    uint64
	EvalMisses  uint64
	MoveHits    uint64
	MoveMisses  uint64
}

func NewCache(cfg CacheConfig, now Clock) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		cfg:       cfg,
		now:       now,
		evals:     make(map[uint64]evalEntry),
		moves:     make(map[moveKey]moveEntry),
		lastSweep: now(),
	}
}

func (c *Cache) Evaluation(key uint64) (float64, bool) {
	c.mu.RLock()
	e, ok := c.evals[key]
	c.mu.RUnlock()
	if ok {
		c.evalHits.Add(1)
	} else {
		c.evalMisses.Add(1)
	}
	return e.score, ok
}

func (c *Cache) StoreEvaluation(key uint64, score float64) {
	c.mu.Lock()
	c.seq++
	c.evals[key] = evalEntry{score: score, seq: c.seq}
	c.mu.Unlock()
}

func (c *Cache) BestMove(hash uint64, team board.Team) (board.Move, bool) {
	c.mu.RLock()
	e, ok := c.moves[moveKey{hash, team}]
	c.mu.RUnlock()
	if ok {
		c.moveHits.Add(1)
	} else {
		c.moveMisses.Add(1)
	}
	return e.move, ok
}

func (c *Cache) StoreBestMove(hash uint64, team board.Team, m board.Move) {
	c.mu.Lock()
	c.seq++
	c.moves[moveKey{hash, team}] = moveEntry{move: m, seq: c.seq}
	c.mu.Unlock()
}

// Maintain applies the eviction policy. The emergency trim runs on every
// call; the size checks run once per sweep interval.
func (c *Cache) Maintain() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.EmergencyLimit > 0 && len(c.evals) > c.cfg.EmergencyLimit {
		dropped := trimOldest(c.evals, func(e evalEntry) uint64 { return e.seq }, c.retain(len(c.evals)))
		log.Debug().Int("dropped", dropped).Int("kept", len(c.evals)).Msg("cache-emergency-trim")
	}

	now := c.now()
	if now.Sub(c.lastSweep) < c.cfg.sweepInterval() {
		return
	}
	c.lastSweep = now

	switch {
	case len(c.evals) > c.cfg.MaxEntries:
		log.Debug().Int("entries", len(c.evals)).Msg("cache-clear-evaluations")
		c.evals = make(map[uint64]evalEntry)
	case len(c.evals) > c.cfg.SweepThreshold:
		dropped := trimOldest(c.evals, func(e evalEntry) uint64 { return e.seq }, c.retain(len(c.evals)))
		log.Debug().Int("dropped", dropped).Int("kept", len(c.evals)).Msg("cache-sweep")
	}
	if len(c.moves) > c.cfg.MaxEntries {
		log.Debug().Int("entries", len(c.moves)).Msg("cache-clear-moves")
		c.moves = make(map[moveKey]moveEntry)
	}
}

func (c *Cache) retain(n int) int {
	return int(float64(n) * c.cfg.SweepRetain)
}

// trimOldest deletes the entries with the lowest sequence numbers until keep
// remain and reports how many were dropped.
func trimOldest[K comparable, V any](m map[K]V, seq func(V) uint64, keep int) int {
	if len(m) <= keep {
		return 0
	}
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool { return seq(m[keys[i]]) < seq(m[keys[j]]) })
	drop := len(keys) - keep
	for _, k := range keys[:drop] {
		delete(m, k)
	}
	return drop
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.evals = make(map[uint64]evalEntry)
	c.moves = make(map[moveKey]moveEntry)
	c.mu.Unlock()
	c.evalHits.Store(0)
	c.evalMisses.Store(0)
	c.moveHits.Store(0)
	c.moveMisses.Store(0)
}

func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	s := CacheStats{Evaluations: len(c.evals), BestMoves: len(c.moves)}
	c.mu.RUnlock()
	s.EvalHits = c.evalHits.Load()
	s.EvalMisses = c.evalMisses.Load()
	s.MoveHits = c.moveHits.Load()
	s.MoveMisses = c.moveMisses.Load()
	return s
}
