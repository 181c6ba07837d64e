package probabilities

import (
	"backgammon/position"
	"fmt"
)

// Probabilities is a cubeless outcome distribution from the mover's
// perspective. The six fields sum to 1.
type Probabilities struct {
	WinNormal  float32
	WinGammon  float32
	WinBg      float32
	LoseNormal float32
	LoseGammon float32
	LoseBg     float32
}

// New normalizes outcome counts indexed by position.GameResult.
func New(counts [position.NumResults]uint32) Probabilities {
	var sum uint32
	for _, c := range counts {
		sum += c
	}
	if sum == 0 {
		panic("probabilities from zero counts")
	}
	total := float32(sum)
	return Probabilities{
		WinNormal:  float32(counts[position.WinNormal]) / total,
		WinGammon:  float32(counts[position.WinGammon]) / total,
		WinBg:      float32(counts[position.WinBg]) / total,
		LoseNormal: float32(counts[position.LoseNormal]) / total,
		LoseGammon: float32(counts[position.LoseGammon]) / total,
		LoseBg:     float32(counts[position.LoseBg]) / total,
	}
}

// Win is the chance to win in any way.
func (p Probabilities) Win() float32 {
	return p.WinNormal + p.WinGammon + p.WinBg
}

// Equity is the cubeless money equity: gammons count double, backgammons triple.
func (p Probabilities) Equity() float32 {
	return p.WinNormal - p.LoseNormal +
		2*(p.WinGammon-p.LoseGammon) +
		3*(p.WinBg-p.LoseBg)
}

// SwitchSides returns the distribution seen by the opponent.
func (p Probabilities) SwitchSides() Probabilities {
	return Probabilities{
		WinNormal:  p.LoseNormal,
		WinGammon:  p.LoseGammon,
		WinBg:      p.LoseBg,
		LoseNormal: p.WinNormal,
		LoseGammon: p.WinGammon,
		LoseBg:     p.WinBg,
	}
}

func (p Probabilities) Sum() float32 {
	return p.WinNormal + p.WinGammon + p.WinBg + p.LoseNormal + p.LoseGammon + p.LoseBg
}

func (p Probabilities) String() string {
	return fmt.Sprintf("wn %.4f wg %.4f wb %.4f ln %.4f lg %.4f lb %.4f (equity %.4f)",
		p.WinNormal, p.WinGammon, p.WinBg, p.LoseNormal, p.LoseGammon, p.LoseBg, p.Equity())
}
