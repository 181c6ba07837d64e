package evaluator

import (
	"backgammon/dice"
	"backgammon/position"
	"backgammon/probabilities"
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Ranked is a legal play together with its evaluation, both from the
// perspective of the player who moved.
type Ranked struct {
	Position      position.Position
	Probabilities probabilities.Probabilities
}

// BestPositionByEquity returns the position after the best move for d.
// The returned position has already switched sides, so it is the candidate
// with the lowest equity for the opponent.
func BestPositionByEquity(e Evaluator, pos position.Position, d dice.Dice) position.Position {
	return BestPosition(e, pos, d, Equity)
}

// BestPosition is BestPositionByEquity with an arbitrary metric, e.g. Win
// when only winning matters.
func BestPosition(e Evaluator, pos position.Position, d dice.Dice, metric Metric) position.Position {
	return WorstPosition(e, pos.AllPositionsAfterMoving(d), metric)
}

// WorstPosition returns the candidate with the lowest metric. Candidates are
// seen from the opponent's perspective, so the worst one for them is the best
// play. Eval is skipped when there is one candidate or when a candidate is
// already lost for the opponent.
func WorstPosition(e Evaluator, candidates []position.Position, metric Metric) position.Position {
	switch len(candidates) {
	case 0:
		panic("no candidate positions")
	case 1:
		return candidates[0]
	}
	if i := slices.IndexFunc(candidates, position.Position.HasLost); i >= 0 {
		return candidates[i]
	}

	worst := -1
	var lowest float32
	for i, candidate := range candidates {
		value := metric(e.Eval(candidate))
		if isNaN(value) {
			panic(fmt.Sprintf("metric is NaN for position %v", candidate))
		}
		if worst < 0 || value < lowest {
			worst, lowest = i, value
		}
	}
	return candidates[worst]
}

// PositionsAndProbabilitiesByEquity evaluates every legal play for d. Positions
// and probabilities are switched back to the perspective of the player on move
// in pos and sorted by descending equity, best play first.
func PositionsAndProbabilitiesByEquity(e Evaluator, pos position.Position, d dice.Dice) []Ranked {
	after := pos.AllPositionsAfterMoving(d)
	ranked := make([]Ranked, len(after))
	for i, candidate := range after {
		probs := e.Eval(candidate).SwitchSides()
		if isNaN(probs.Equity()) {
			panic(fmt.Sprintf("equity is NaN for position %v", candidate))
		}
		ranked[i] = Ranked{Position: candidate.SwitchSides(), Probabilities: probs}
	}
	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Probabilities.Equity(), a.Probabilities.Equity())
	})
	return ranked
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}
