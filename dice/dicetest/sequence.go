// Package dicetest provides a deterministic dice.Source for tests.
package dicetest

import (
	"backgammon/dice"

	"github.com/stretchr/testify/require"
)

// Sequence hands out a fixed list of rolls and fails the test when it runs dry.
type Sequence struct {
	t     require.TestingT
	rolls []dice.Dice
	next  int
}

func NewSequence(t require.TestingT, rolls ...dice.Dice) *Sequence {
	return &Sequence{t: t, rolls: rolls}
}

func (s *Sequence) Roll() dice.Dice {
	if h, ok := s.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if s.next >= len(s.rolls) {
		require.FailNow(s.t, "dice requested beyond the supplied sequence", "%d rolls supplied", len(s.rolls))
		return dice.Dice{}
	}
	d := s.rolls[s.next]
	s.next++
	return d
}

// AssertAllUsed fails the test unless every supplied roll was consumed.
func (s *Sequence) AssertAllUsed() {
	if h, ok := s.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Equal(s.t, len(s.rolls), s.next, "not all supplied dice were used")
}
