package position

import (
	"errors"
	"fmt"
	"strings"
)

const (
	NumPoints = 24
	Checkers  = 15
	// XBar holds the mover's checkers on the bar, OBar the opponent's.
	XBar = 25
	OBar = 0
)

var (
	ErrInvalidPoint    = errors.New("invalid point")
	ErrTooManyCheckers = errors.New("too many checkers")
	ErrSharedPoint     = errors.New("both players on the same point")
)

// Position is an immutable board seen by the player on move ("x").
// x moves from 24 towards 1 and bears off below 1. Positive counts are x
// checkers, negative counts are o checkers.
type Position struct {
	pips [XBar + 1]int8
	xOff uint8
	oOff uint8
}

// Starting is the standard opening position.
var Starting = MustNew(
	map[int]uint8{24: 2, 13: 5, 8: 3, 6: 5},
	map[int]uint8{1: 2, 12: 5, 17: 3, 19: 5},
)

// New builds a position from checker counts per point. Both maps use x's
// numbering; 25 is x's bar and 0 is o's bar. Checkers not placed are off.
func New(x, o map[int]uint8) (Position, error) {
	var p Position
	xTotal, oTotal := 0, 0
	for point, n := range x {
		if point < 1 || point > XBar {
			return Position{}, fmt.Errorf("x checkers on %d: %w", point, ErrInvalidPoint)
		}
		p.pips[point] = int8(n)
		xTotal += int(n)
	}
	for point, n := range o {
		if point < OBar || point > NumPoints {
			return Position{}, fmt.Errorf("o checkers on %d: %w", point, ErrInvalidPoint)
		}
		if n == 0 {
			continue
		}
		if p.pips[point] > 0 {
			return Position{}, fmt.Errorf("point %d: %w", point, ErrSharedPoint)
		}
		p.pips[point] = -int8(n)
		oTotal += int(n)
	}
	if xTotal > Checkers {
		return Position{}, fmt.Errorf("x has %d: %w", xTotal, ErrTooManyCheckers)
	}
	if oTotal > Checkers {
		return Position{}, fmt.Errorf("o has %d: %w", oTotal, ErrTooManyCheckers)
	}
	p.xOff = uint8(Checkers - xTotal)
	p.oOff = uint8(Checkers - oTotal)
	return p, nil
}

func MustNew(x, o map[int]uint8) Position {
	p, err := New(x, o)
	if err != nil {
		panic(err)
	}
	return p
}

// Pip returns the signed checker count on a point, 0..25.
func (p Position) Pip(point int) int8 {
	return p.pips[point]
}

func (p Position) XOff() uint8 { return p.xOff }
func (p Position) OOff() uint8 { return p.oOff }

// SwitchSides returns the same board seen by the opponent.
func (p Position) SwitchSides() Position {
	var s Position
	for i := range p.pips {
		s.pips[i] = -p.pips[XBar-i]
	}
	s.xOff, s.oOff = p.oOff, p.xOff
	return s
}

// HasLost reports whether the opponent has already borne off every checker.
func (p Position) HasLost() bool {
	return p.oOff == Checkers
}

func (p Position) GameState() GameState {
	switch {
	case p.xOff == Checkers:
		return GameOver(p.win())
	case p.oOff == Checkers:
		return GameOver(p.SwitchSides().win().Reverse())
	default:
		return Ongoing
	}
}

// win classifies a finished game that x has won.
func (p Position) win() GameResult {
	if p.oOff > 0 {
		return WinNormal
	}
	if p.pips[OBar] < 0 {
		return WinBg
	}
	for i := 1; i <= 6; i++ {
		if p.pips[i] < 0 {
			return WinBg
		}
	}
	return WinGammon
}

func (p Position) String() string {
	var x, o []string
	for i := XBar; i >= OBar; i-- {
		switch n := p.pips[i]; {
		case n > 0:
			x = append(x, fmt.Sprintf("%d:%d", i, n))
		case n < 0:
			o = append(o, fmt.Sprintf("%d:%d", i, -n))
		}
	}
	return fmt.Sprintf("x %s; o %s", strings.Join(x, ", "), strings.Join(o, ", "))
}
