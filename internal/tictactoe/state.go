package tictactoe

type State int

const (
	StateAwaitingHumanInput State = iota
	StateTurnSubmitted
	StateNextPlayerTurn
	StateComputerThinking
	StateGameOver
)

func (that State) String() string {
	switch that {
	case StateAwaitingHumanInput:
		return "awaiting-human-input"
	case StateTurnSubmitted:
		return "turn-submitted"
	case StateNextPlayerTurn:
		return "next-player-turn"
	case StateComputerThinking:
		return "computer-thinking"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
