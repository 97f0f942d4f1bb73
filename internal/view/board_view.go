package view

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	cellSeparator = "|"
	rowRule       = "="
	padding       = " "
)

// BoardLines - renders cells as text rows separated by rules. A non-empty overlay cell pads
// its board cell with the overlay token on both sides, and replaces it when the cell is empty.
// overlay may be nil.
func BoardLines(board, overlay *entity.Board) []string {
	cells := board.Cells()

	var overlayCells [][]string
	if overlay != nil {
		overlayCells = overlay.Cells()
	}

	rows := make([]string, 0, len(cells))
	for y, row := range cells {
		rendered := make([]string, 0, len(row))
		for x, cell := range row {
			pad := padding
			if overlayCells != nil && overlayCells[y][x] != entity.EmptyCell {
				pad = overlayCells[y][x]
			}

			if cell == entity.EmptyCell {
				cell = pad
			}

			rendered = append(rendered, pad+cell+pad)
		}

		rows = append(rows, strings.Join(rendered, cellSeparator))
	}

	if len(rows) == 0 {
		return rows
	}

	rule := strings.Repeat(rowRule, len(rows[0]))

	lines := make([]string, 0, 2*len(rows)-1)
	for i, row := range rows {
		if i > 0 {
			lines = append(lines, rule)
		}
		lines = append(lines, row)
	}

	return lines
}
