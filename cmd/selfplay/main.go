package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/engine"
	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/play"
)

func main() {
	games := flag.Int("games", 4, "number of games")
	parallel := flag.Int("parallel", 2, "games played at once")
	fen := flag.String("fen", "", "start FEN (default: standard start)")
	randomPlies := flag.Int("random-plies", 4, "random opening plies per game")
	maxPlies := flag.Int("max-plies", 200, "ply cap per game")
	budget := flag.Duration("move-time", 2*time.Second, "per-move budget (0 = unlimited); ignored with -clock")
	clock := flag.Duration("clock", 0, "time per side for the whole game (0 = use -move-time)")
	inc := flag.Duration("inc", 0, "increment added after each move when -clock is set")
	depth := flag.Int("depth", 0, "search depth (0 = config value)")
	configFlag := flag.String("config", "", "JSON engine config")
	out := flag.String("out", "", "directory for PGN files (empty = stdout)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := engine.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = engine.LoadConfig(*configFlag); err != nil {
			log.Fatal().Err(err).Msg("load-config")
		}
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	// One engine for both sides and all games; only its cache is shared.
	e, err := engine.New(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("engine")
	}

	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatal().Err(err).Msg("output-dir")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		mu     sync.Mutex
		scores = map[string]int{}
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*parallel)
	for i := 0; i < *games; i++ {
		id := uuid.NewString()
		g.Go(func() error {
			res, err := play.Run(ctx, e, e, play.Options{
				ID:          id,
				StartFEN:    *fen,
				RandomPlies: *randomPlies,
				MaxPlies:    *maxPlies,
				MoveBudget:  *budget,
				Clock:       *clock,
				Increment:   *inc,
			})
			if err != nil {
				return fmt.Errorf("game %s: %w", id, err)
			}
			mu.Lock()
			defer mu.Unlock()
			scores[res.Outcome]++
			if *out == "" {
				fmt.Println(res.PGN)
				fmt.Println()
				return nil
			}
			return os.WriteFile(filepath.Join(*out, id+".pgn"), []byte(res.PGN+"\n"), 0o644)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay")
	}

	log.Info().
		Int("white", scores["1-0"]).
		Int("black", scores["0-1"]).
		Int("draws", scores["1/2-1/2"]).
		Int("unfinished", scores["*"]).
		Msg("selfplay-done")
	e.LogStats()
}
