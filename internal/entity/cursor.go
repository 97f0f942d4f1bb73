package entity

// OverlayMarker marks the selected cell on the cursor overlay.
const OverlayMarker = "_"

// Cursor holds the human player's selection, always inside the board.
type Cursor struct {
	size     int
	position Position
}

// NewCursor - creates a cursor at the centre of a size x size board.
func NewCursor(size int) *Cursor {
	return &Cursor{
		size:     size,
		position: Position{X: size / 2, Y: size / 2},
	}
}

func (that *Cursor) Position() Position {
	return that.position
}

// ApplyMove - moves by delta and clamps each axis; moving past an edge keeps the cursor on it.
func (that *Cursor) ApplyMove(delta Delta) {
	that.position = Position{
		X: clamp(that.position.X+delta.X, 0, that.size-1),
		Y: clamp(that.position.Y+delta.Y, 0, that.size-1),
	}
}

// Overlay - builds a fresh render-only board holding the marker at the cursor position.
func (that *Cursor) Overlay() *Board {
	overlay := NewBoard(that.size)
	overlay.cells[that.position.Y][that.position.X] = OverlayMarker

	return overlay
}
