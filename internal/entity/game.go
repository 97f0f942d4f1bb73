package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// GameSnapshot is the serialisable state of a game, published to spectators.
type GameSnapshot struct {
	Board  [][]string `json:"board"`
	Turn   string     `json:"player_turn"`
	Winner string     `json:"winner"`
	Status string     `json:"status"`
}

func (that *GameSnapshot) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameSnapshot) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *GameSnapshot) IsTie() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}
