package position

import "backgammon/dice"

// AllPositionsAfterMoving returns every distinct legal position after
// playing d. The returned positions have already switched sides. If no
// checker can move, the only element is the unchanged position, switched.
func (p Position) AllPositionsAfterMoving(d dice.Dice) []Position {
	var after []Position
	if d.IsDouble() {
		after = p.afterDouble(d.Die1)
	} else {
		after = p.afterRegular(d.Die1, d.Die2)
	}
	for i := range after {
		after[i] = after[i].SwitchSides()
	}
	return after
}

func (p Position) afterDouble(die int) []Position {
	current := []Position{p}
	for step := 0; step < 4; step++ {
		var next []Position
		for _, pos := range current {
			next = append(next, pos.singleMoves(die)...)
		}
		if len(next) == 0 {
			break
		}
		current = distinct(next)
	}
	return current
}

func (p Position) afterRegular(die1, die2 int) []Position {
	var both []Position
	for _, order := range [2][2]int{{die1, die2}, {die2, die1}} {
		for _, first := range p.singleMoves(order[0]) {
			both = append(both, first.singleMoves(order[1])...)
		}
	}
	if len(both) > 0 {
		return distinct(both)
	}
	// Only one die can be played: the larger one if possible.
	if moves := p.singleMoves(max(die1, die2)); len(moves) > 0 {
		return moves
	}
	if moves := p.singleMoves(min(die1, die2)); len(moves) > 0 {
		return moves
	}
	return []Position{p}
}

// singleMoves moves one checker by die, trying every starting point.
func (p Position) singleMoves(die int) []Position {
	var moves []Position
	for from := XBar; from >= 1; from-- {
		if p.canMove(from, die) {
			moves = append(moves, p.moveChecker(from, die))
		}
	}
	return moves
}

func (p Position) canMove(from, die int) bool {
	if p.pips[from] <= 0 {
		return false
	}
	if from != XBar && p.pips[XBar] > 0 {
		return false
	}
	to := from - die
	if to >= 1 {
		return p.pips[to] >= -1
	}
	if !p.allHome() {
		return false
	}
	if to == 0 {
		return true
	}
	// Overshooting bear-off needs the checker to be the rearmost one.
	for i := from + 1; i <= 6; i++ {
		if p.pips[i] > 0 {
			return false
		}
	}
	return true
}

func (p Position) allHome() bool {
	for i := 7; i <= XBar; i++ {
		if p.pips[i] > 0 {
			return false
		}
	}
	return true
}

func (p Position) moveChecker(from, die int) Position {
	p.pips[from]--
	to := from - die
	if to < 1 {
		p.xOff++
		return p
	}
	if p.pips[to] == -1 {
		p.pips[to] = 0
		p.pips[OBar]--
	}
	p.pips[to]++
	return p
}

func distinct(positions []Position) []Position {
	seen := make(map[Position]struct{}, len(positions))
	unique := positions[:0]
	for _, pos := range positions {
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		unique = append(unique, pos)
	}
	return unique
}
