package evaluator

import (
	"backgammon/position"
	"backgammon/probabilities"

	"golang.org/x/exp/rand"
)

// RandomEvaluator returns random probabilities. Each call returns different values.
type RandomEvaluator struct{}

func NewRandom() RandomEvaluator {
	return RandomEvaluator{}
}

func (RandomEvaluator) Eval(_ position.Position) probabilities.Probabilities {
	p := probabilities.Probabilities{
		WinNormal:  rand.Float32(),
		WinGammon:  rand.Float32(),
		WinBg:      rand.Float32(),
		LoseNormal: rand.Float32(),
		LoseGammon: rand.Float32(),
		LoseBg:     rand.Float32(),
	}
	sum := p.Sum()
	if sum == 0 {
		panic("random probabilities sum to zero")
	}
	return probabilities.Probabilities{
		WinNormal:  p.WinNormal / sum,
		WinGammon:  p.WinGammon / sum,
		WinBg:      p.WinBg / sum,
		LoseNormal: p.LoseNormal / sum,
		LoseGammon: p.LoseGammon / sum,
		LoseBg:     p.LoseBg / sum,
	}
}
