package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	EmptyCell = ""

	DefaultBoardSize = 3
)

// Position is a 0-indexed cell coordinate, x is the column and y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Delta is a single cursor step.
type Delta struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	Left  = Delta{X: -1}
	Right = Delta{X: 1}
	Up    = Delta{Y: -1}
	Down  = Delta{Y: 1}
)

// Board is a square grid of tokens. A placed token is never overwritten.
type Board struct {
	size  int
	cells [][]string
}

func NewBoard(size int) *Board {
	cells := make([][]string, size)
	for y := range cells {
		cells[y] = make([]string, size)
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

func (that *Board) Size() int {
	return that.size
}

// Cells - returns a deep copy of the grid indexed as [y][x].
func (that *Board) Cells() [][]string {
	cells := make([][]string, that.size)
	for y, row := range that.cells {
		cells[y] = append([]string(nil), row...)
	}

	return cells
}

func (that *Board) At(x, y int) (string, error) {
	if !that.inBounds(x, y) {
		return EmptyCell, fmt.Errorf("%w: x=%d y=%d", apperror.ErrOutOfBounds, x, y)
	}

	return that.cells[y][x], nil
}

// Place - writes token at x,y.
func (that *Board) Place(token string, x, y int) error {
	if !that.inBounds(x, y) {
		return fmt.Errorf("%w: x=%d y=%d", apperror.ErrOutOfBounds, x, y)
	}

	if that.cells[y][x] != EmptyCell {
		return fmt.Errorf("%w: x=%d y=%d", apperror.ErrCellOccupied, x, y)
	}

	that.cells[y][x] = token

	return nil
}

// HasWinningLine - checks every row, every column and both diagonals.
func (that *Board) HasWinningLine(token string) bool {
	if token == EmptyCell {
		return false
	}

	for _, line := range that.lines() {
		if that.lineHeldBy(line, token) {
			return true
		}
	}

	return false
}

// IsFull - the caller must check for a winner first, a full winning board is not a draw.
func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells - returns the free positions in row-major order.
func (that *Board) EmptyCells() []Position {
	positions := make([]Position, 0, that.size*that.size)
	for y, row := range that.cells {
		for x, cell := range row {
			if cell == EmptyCell {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}

	return positions
}

func (that *Board) inBounds(x, y int) bool {
	return x >= 0 && x < that.size && y >= 0 && y < that.size
}

func (that *Board) lineHeldBy(line []Position, token string) bool {
	for _, p := range line {
		if that.cells[p.Y][p.X] != token {
			return false
		}
	}

	return true
}

func (that *Board) lines() [][]Position {
	lines := make([][]Position, 0, 2*that.size+2)

	diagonal := make([]Position, 0, that.size)
	antiDiagonal := make([]Position, 0, that.size)

	for i := 0; i < that.size; i++ {
		row := make([]Position, 0, that.size)
		column := make([]Position, 0, that.size)

		for j := 0; j < that.size; j++ {
			row = append(row, Position{X: j, Y: i})
			column = append(column, Position{X: i, Y: j})
		}

		lines = append(lines, row, column)

		diagonal = append(diagonal, Position{X: i, Y: i})
		antiDiagonal = append(antiDiagonal, Position{X: that.size - 1 - i, Y: i})
	}

	return append(lines, diagonal, antiDiagonal)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
