package evaluator

import (
	"backgammon/position"
	"backgammon/probabilities"
)

// Evaluator returns a cubeless evaluation of a position from the mover's
// perspective. Implementations differ only in strategy, for example random
// values, a rollout or a neural net.
type Evaluator interface {
	Eval(pos position.Position) probabilities.Probabilities
}

// Func adapts a plain function to an Evaluator.
type Func func(pos position.Position) probabilities.Probabilities

func (f Func) Eval(pos position.Position) probabilities.Probabilities {
	return f(pos)
}

// Metric reduces a distribution to the scalar used to order candidate moves.
type Metric func(probabilities.Probabilities) float32

var (
	Equity Metric = probabilities.Probabilities.Equity
	Win    Metric = probabilities.Probabilities.Win
)

// PartialEvaluator can only evaluate certain positions, for example only
// bearoffs or backgames. The bool is false when the position is not covered.
type PartialEvaluator interface {
	TryEval(pos position.Position) (probabilities.Probabilities, bool)
}

type full struct {
	Evaluator
}

// Partial lets a full Evaluator stand in wherever a PartialEvaluator is expected.
func Partial(e Evaluator) PartialEvaluator {
	return full{e}
}

func (f full) TryEval(pos position.Position) (probabilities.Probabilities, bool) {
	return f.Eval(pos), true
}
