package evaluator

import (
	"backgammon/position"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartial(t *testing.T) {
	evaluator := &fakeEvaluator{}
	partial := Partial(evaluator)

	got, ok := partial.TryEval(positionWithLowestEquity())

	require.True(t, ok, "A full evaluator covers every position")
	require.Equal(t, evaluator.Eval(positionWithLowestEquity()), got)
}

func TestRandomEvaluator(t *testing.T) {
	evaluator := NewRandom()

	t.Run("sum is 1", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			p := evaluator.Eval(position.Starting)
			require.InDelta(t, 1.0, p.Sum(), 0.0001)
			for _, v := range []float32{p.WinNormal, p.WinGammon, p.WinBg, p.LoseNormal, p.LoseGammon, p.LoseBg} {
				require.GreaterOrEqual(t, v, float32(0))
				require.LessOrEqual(t, v, float32(1))
			}
		}
	})

	t.Run("calls are independent", func(t *testing.T) {
		require.NotEqual(t, evaluator.Eval(position.Starting), evaluator.Eval(position.Starting))
	})
}
