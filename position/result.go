package position

// GameResult classifies a finished game from one player's perspective.
// The values double as histogram indices.
type GameResult int

const (
	WinNormal GameResult = iota
	WinGammon
	WinBg
	LoseNormal
	LoseGammon
	LoseBg
)

// NumResults is the number of GameResult values.
const NumResults = 6

var resultNames = [NumResults]string{"WinNormal", "WinGammon", "WinBg", "LoseNormal", "LoseGammon", "LoseBg"}

// Reverse returns the same result seen by the other player.
func (r GameResult) Reverse() GameResult {
	switch r {
	case WinNormal:
		return LoseNormal
	case WinGammon:
		return LoseGammon
	case WinBg:
		return LoseBg
	case LoseNormal:
		return WinNormal
	case LoseGammon:
		return WinGammon
	case LoseBg:
		return WinBg
	default:
		panic("unexpected game result")
	}
}

func (r GameResult) String() string {
	if r < 0 || int(r) >= NumResults {
		return "GameResult(?)"
	}
	return resultNames[r]
}

// GameState is either ongoing or over with a result for the player on move.
type GameState struct {
	Over   bool
	Result GameResult
}

var Ongoing = GameState{}

func GameOver(result GameResult) GameState {
	return GameState{Over: true, Result: result}
}
