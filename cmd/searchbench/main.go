package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/board"
	"github.com/ManavGanesh/OOPS-Chess-Project-sub000/engine"
)

func main() {
	// --- Flags ---
	fenFlag := flag.String("fen", board.StartFEN, "FEN to search")
	teamFlag := flag.String("team", "", "side to pick a move for (default: side to move)")
	depthFlag := flag.Int("depth", 0, "search depth in plies (0 = config value)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	configFlag := flag.String("config", "", "JSON engine config")
	warm := flag.Bool("warm", false, "keep the cache between repeats")
	profFlag := flag.String("profile", "", "cpu or mem")
	profDir := flag.String("profile-dir", ".", "directory for profile output")
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
	if *depthFlag > 0 {
		cfg.Depth = *depthFlag
	}

	pos, err := board.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("parse-fen")
	}
	team := pos.CurrentTeam()
	if *teamFlag != "" {
		if team, err = board.ParseTeam(*teamFlag); err != nil {
			log.Fatal().Err(err).Msg("parse-team")
		}
	}

	// --- Optional profiling ---
	switch *profFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profDir), profile.Quiet).Stop()
	case "":
	default:
		log.Fatal().Str("profile", *profFlag).Msg("unknown-profile")
	}

	e, err := engine.New(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("engine")
	}

	fmt.Printf("searchbench: fen=%q team=%s depth=%d repeat=%d\n", pos.FEN(), team, cfg.Depth, *repeatFlag)
	fmt.Printf("candidates: %v\n", e.Candidates(pos, team))

	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		if !*warm {
			e.Cache().Clear()
		}
		iterStart := time.Now()
		d, err := e.Decide(pos, team)
		if err != nil {
			log.Fatal().Err(err).Msg("decide")
		}
		fmt.Printf("iteration %d: bestmove %s stage=%s score=%.2f time=%v\n",
			i+1, d.Move, d.Stage, d.Score, time.Since(iterStart))
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	s := e.Stats()
	fmt.Printf("nodes=%d cutoffs=%d evals=%d cache{evals=%d moves=%d hits=%d misses=%d}\n",
		s.Nodes, s.BetaCutoffs, s.Evaluations,
		s.Cache.Evaluations, s.Cache.BestMoves, s.Cache.EvalHits, s.Cache.EvalMisses)
	e.LogStats()
}
