package probabilities

import (
	"backgammon/position"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("normalizes counts", func(t *testing.T) {
		var counts [position.NumResults]uint32
		counts[position.WinNormal] = 1053
		counts[position.LoseNormal] = 243

		p := New(counts)

		require.Equal(t, float32(0.8125), p.WinNormal)
		require.Equal(t, float32(0.1875), p.LoseNormal)
		require.Equal(t, float32(0), p.WinGammon)
	})

	t.Run("sums to one", func(t *testing.T) {
		inputs := [][position.NumResults]uint32{
			{1, 1, 1, 1, 1, 1},
			{7, 0, 3, 11, 5, 2},
			{0, 0, 0, 0, 0, 1296},
			{1000, 1, 17, 99, 3, 42},
		}
		for _, counts := range inputs {
			require.InDelta(t, 1.0, New(counts).Sum(), 0.0001, "Counts %v", counts)
		}
	})

	t.Run("panics on zero counts", func(t *testing.T) {
		require.Panics(t, func() { New([position.NumResults]uint32{}) })
	})
}

func TestEquityAndWin(t *testing.T) {
	p := Probabilities{
		WinNormal:  0.5,
		WinGammon:  0.1,
		WinBg:      0.1,
		LoseNormal: 0.1,
		LoseGammon: 0.1,
		LoseBg:     0.1,
	}

	require.InDelta(t, 0.7, p.Win(), 0.0001)
	require.InDelta(t, 0.4, p.Equity(), 0.0001)
	require.InDelta(t, -0.4, p.SwitchSides().Equity(), 0.0001, "Equity should flip sign")

	better := p
	better.WinNormal, better.LoseNormal = 0.55, 0.05
	require.Greater(t, better.Equity(), p.Equity(), "More wins should raise equity")

	bigger := p
	bigger.WinNormal, bigger.WinGammon = 0.4, 0.2
	require.Greater(t, bigger.Equity(), p.Equity(), "Bigger wins should raise equity")
}

func TestSwitchSides(t *testing.T) {
	p := Probabilities{
		WinNormal:  0.3,
		WinGammon:  0.2,
		WinBg:      0.05,
		LoseNormal: 0.25,
		LoseGammon: 0.15,
		LoseBg:     0.05,
	}

	s := p.SwitchSides()

	require.Equal(t, p.LoseGammon, s.WinGammon, "Categories should swap within a magnitude")
	require.Equal(t, p.WinBg, s.LoseBg, "Categories should swap within a magnitude")
	require.Equal(t, p, s.SwitchSides(), "SwitchSides should be an involution")
}
