package rollout

import "backgammon/dice"

type Option func(r *Evaluator)

// WithWorkers spreads the games of one rollout over n goroutines, each with
// its own dice stream. The inner evaluator must then be safe for concurrent use.
func WithWorkers(n int) Option {
	return func(r *Evaluator) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithSeed makes the dice after the first two half moves reproducible. With
// more than one worker every worker gets its own seed derived from seed, but
// which openings a worker plays depends on scheduling, so only sequential
// rollouts repeat exactly.
func WithSeed(seed uint64) Option {
	return func(r *Evaluator) {
		r.seed = seed
		r.seeded = true
	}
}

// WithSource sets the dice source factory for sequential rollouts. It is
// called once per Eval. It is ignored when WithWorkers sets more than one
// worker: parallel workers always use their own seeded sources.
func WithSource(source func() dice.Source) Option {
	return func(r *Evaluator) {
		if source != nil {
			r.source = source
		}
	}
}

func WithMetrics() Option {
	return func(r *Evaluator) {
		r.withMetrics = true
	}
}
