package dice

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const Faces = 6

// Dice is an ordered pair of die faces.
type Dice struct {
	Die1 int
	Die2 int
}

func New(die1, die2 int) Dice {
	if die1 < 1 || die1 > Faces || die2 < 1 || die2 > Faces {
		panic(fmt.Sprintf("invalid dice %d-%d", die1, die2))
	}
	return Dice{Die1: die1, Die2: die2}
}

func (d Dice) IsDouble() bool {
	return d.Die1 == d.Die2
}

func (d Dice) String() string {
	return fmt.Sprintf("%d-%d", d.Die1, d.Die2)
}

// All returns the 36 ordered rolls, Die1 major.
func All() []Dice {
	rolls := make([]Dice, 0, Faces*Faces)
	for die1 := 1; die1 <= Faces; die1++ {
		for die2 := 1; die2 <= Faces; die2++ {
			rolls = append(rolls, Dice{Die1: die1, Die2: die2})
		}
	}
	return rolls
}

// Source produces the dice for every half move that is not predetermined.
type Source interface {
	Roll() Dice
}

type globalSource struct{}

// NewRandom returns a Source backed by the process-wide generator.
func NewRandom() Source {
	return globalSource{}
}

func (globalSource) Roll() Dice {
	return Dice{Die1: rand.Intn(Faces) + 1, Die2: rand.Intn(Faces) + 1}
}

// SeededSource owns its generator and must not be shared between goroutines.
type SeededSource struct {
	rng *rand.Rand
}

func NewSeeded(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *SeededSource) Roll() Dice {
	return Dice{Die1: s.rng.Intn(Faces) + 1, Die2: s.rng.Intn(Faces) + 1}
}
