package main

import (
	"backgammon/dice"
	"backgammon/evaluator"
	"backgammon/meta"
	"backgammon/position"
	"backgammon/rollout"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	workers int
	seed    uint64
}

type scenario struct {
	name     string
	position position.Position
}

var scenarios = []scenario{
	{"two moves each", position.MustNew(map[int]uint8{6: 1}, map[int]uint8{19: 1})},
	{"hopeless race", position.MustNew(map[int]uint8{17: 15}, map[int]uint8{24: 8})},
	{"trapped opponent", position.MustNew(map[int]uint8{1: 8}, map[int]uint8{2: 15})},
	{"bearoff", position.MustNew(map[int]uint8{6: 3, 5: 3, 4: 3}, map[int]uint8{19: 3, 20: 3, 21: 3})},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runSpeedupExperiment()
	runMoveAnalysis()
}

func runSpeedupExperiment() {
	configs := []config{
		{workers: 1, seed: meta.SEED},
		{workers: meta.MAX_WORKERS / 2, seed: meta.SEED},
		{workers: meta.MAX_WORKERS, seed: meta.SEED},
	}

	log.Info().Msg("Running speedup experiment...")
	for _, cfg := range configs {
		r := createRollout(cfg)
		for _, s := range scenarios {
			results := r.Eval(s.position)
			metric, _ := r.LastMetric()
			log.Info().
				Str("scenario", s.name).
				Int("workers", cfg.workers).
				Dur("duration", metric.Duration).
				Float64("plies_per_game", metric.PliesPerGame()).
				Msgf("%v", results)
		}
	}
	log.Info().Msg("Finished speedup experiment.")
}

// runMoveAnalysis ranks the plays of the opening roll by rollout equity.
func runMoveAnalysis() {
	r := createRollout(config{workers: meta.MAX_WORKERS, seed: meta.SEED})
	roll := dice.New(meta.ANALYSIS_DIE1, meta.ANALYSIS_DIE2)

	ranked := evaluator.PositionsAndProbabilitiesByEquity(r, scenarios[3].position, roll)
	for i, play := range ranked {
		fmt.Printf("%2d. %-40s %v\n", i+1, play.Position, play.Probabilities)
	}
}

func createRollout(config config) *rollout.Evaluator {
	options := []rollout.Option{rollout.WithMetrics()}

	if config.workers > 0 {
		options = append(options, rollout.WithWorkers(config.workers))
	}
	if config.seed > 0 {
		options = append(options, rollout.WithSeed(config.seed))
	}

	return rollout.New(evaluator.NewRandom(), options...)
}
