package rollout

import (
	"backgammon/dice"
	"backgammon/evaluator"
	"backgammon/metrics"
	"backgammon/position"
	"backgammon/probabilities"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Games is the number of games in one rollout: every combination of the
// first two rolls.
const Games = dice.Faces * dice.Faces * dice.Faces * dice.Faces

// openings lists the dice of the first two half moves, die1 to die4 nested.
var openings = func() [][2]dice.Dice {
	rolls := dice.All()
	combinations := make([][2]dice.Dice, 0, Games)
	for _, first := range rolls {
		for _, second := range rolls {
			combinations = append(combinations, [2]dice.Dice{first, second})
		}
	}
	return combinations
}()

// Evaluator estimates probabilities by playing out games with an inner
// evaluator choosing every move. The first two half moves are enumerated,
// the rest use random dice.
type Evaluator struct {
	inner       evaluator.Evaluator
	workers     int
	seed        uint64
	seeded      bool
	source      func() dice.Source
	withMetrics bool

	mu   sync.Mutex
	last metrics.RolloutMetric
}

var _ evaluator.Evaluator = (*Evaluator)(nil)

func New(inner evaluator.Evaluator, options ...Option) *Evaluator {
	if inner == nil {
		panic("rollout needs an inner evaluator")
	}
	r := &Evaluator{ // Default values
		inner:   inner,
		workers: 1,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Evaluator) Eval(pos position.Position) probabilities.Probabilities {
	collector := metrics.NewDummyCollector()
	if r.withMetrics {
		collector = metrics.NewCollector()
	}
	collector.Start(r.workers)

	var results [position.NumResults]uint32
	if r.workers > 1 {
		results = r.parallel(pos, collector)
	} else {
		results = r.sequential(pos, collector)
	}

	var total uint32
	for _, n := range results {
		total += n
	}
	if total != Games {
		panic(fmt.Sprintf("rollout looked at %d games instead of %d", total, Games))
	}

	metric := collector.Complete()
	if r.withMetrics {
		r.mu.Lock()
		r.last = metric
		r.mu.Unlock()
	}
	log.Debug().
		Str("position", pos.String()).
		Int("workers", r.workers).
		Int("plies", metric.Plies).
		Dur("duration", metric.Duration).
		Msg("rollout complete")

	return probabilities.New(results)
}

// LastMetric returns the statistics of the latest Eval. The bool is false
// unless WithMetrics was given.
func (r *Evaluator) LastMetric() (metrics.RolloutMetric, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.withMetrics
}

func (r *Evaluator) sequential(pos position.Position, collector metrics.Collector) [position.NumResults]uint32 {
	var results [position.NumResults]uint32
	src := r.newSource()
	for _, first := range openings {
		result, plies := r.singleGame(pos, first[:], src)
		results[result]++
		collector.AddGame(plies)
	}
	return results
}

func (r *Evaluator) parallel(pos position.Position, collector metrics.Collector) [position.NumResults]uint32 {
	task := make(chan [2]dice.Dice, len(openings))
	for _, first := range openings {
		task <- first
	}
	close(task)

	partial := make([][position.NumResults]uint32, r.workers)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		src := dice.NewSeeded(r.workerSeed(i))
		go func(i int) {
			defer wg.Done()

			for first := range task {
				result, plies := r.singleGame(pos, first[:], src)
				partial[i][result]++
				collector.AddGame(plies)
			}
		}(i)
	}
	wg.Wait()

	var results [position.NumResults]uint32
	for _, counts := range partial {
		for result, n := range counts {
			results[result] += n
		}
	}
	return results
}

func (r *Evaluator) newSource() dice.Source {
	switch {
	case r.source != nil:
		return r.source()
	case r.seeded:
		return dice.NewSeeded(r.seed)
	default:
		return dice.NewRandom()
	}
}

func (r *Evaluator) workerSeed(i int) uint64 {
	if r.seeded {
		return r.seed + uint64(i)
	}
	return rand.Uint64()
}

// singleGame plays greedily until the game is over. forced holds the dice for
// the first half moves, later dice come from src. The result is seen by the
// player on move in from; plies counts the half moves played.
func (r *Evaluator) singleGame(from position.Position, forced []dice.Dice, src dice.Source) (position.GameResult, int) {
	pos := from
	for ply := 0; ; ply++ {
		var d dice.Dice
		if ply < len(forced) {
			d = forced[ply]
		} else {
			d = src.Roll()
		}
		pos = evaluator.BestPositionByEquity(r.inner, pos, d)

		if state := pos.GameState(); state.Over {
			return resultForStarter(state, ply), ply + 1
		}
	}
}

// resultForStarter converts the final state of the position reached at ply
// into the view of the player who moved first. That position has switched
// sides, so its result belongs to the player who did not make the ply.
// Movers alternate: even plies are played by the starter, whose result is the
// reverse; odd plies are played by the opponent, whose opponent is the starter.
func resultForStarter(state position.GameState, ply int) position.GameResult {
	if !state.Over {
		panic("game is not over")
	}
	if ply%2 == 0 {
		return state.Result.Reverse()
	}
	return state.Result
}
