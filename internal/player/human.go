package player

import (
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Human struct {
	identity
}

func NewHuman(token, name string) *Human {
	if name == "" {
		name = "Player " + token
	}

	return &Human{identity{token: token, name: name}}
}

func (that *Human) IsHuman() bool {
	return true
}

// SubmitTurn - proposes the cursor position immediately.
func (that *Human) SubmitTurn(_ *entity.Board, cursor *entity.Cursor, done func(entity.Position)) func() {
	done(cursor.Position())

	return func() {}
}
