// meta/meta.go
package meta

// MAX_WORKERS is the largest goroutine count compared by the speedup experiment.
const MAX_WORKERS = 8

// SEED fixes the dice beyond the first two half moves.
const SEED = 2024

// ANALYSIS_DIE1 and ANALYSIS_DIE2 form the roll ranked by the move analysis.
const (
	ANALYSIS_DIE1 = 3
	ANALYSIS_DIE2 = 1
)
