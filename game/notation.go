package game

import (
	"fmt"
	"strings"
)

// ParsePosition reads a board written row by row, rows separated by '/',
// with 'X', 'O' and '.' for an empty cell, e.g. "XX./O../...".
func ParsePosition(text string, toMove Player) (*GameState, error) {
	rowTexts := strings.Split(strings.TrimSpace(text), "/")
	rows := make([][]Player, len(rowTexts))
	for r, rowText := range rowTexts {
		rows[r] = make([]Player, 0, len(rowText))
		for _, ch := range rowText {
			switch ch {
			case 'X', 'x':
				rows[r] = append(rows[r], PlayerX)
			case 'O', 'o':
				rows[r] = append(rows[r], PlayerO)
			case '.':
				rows[r] = append(rows[r], Empty)
			default:
				return nil, fmt.Errorf("unexpected %q in row %d", ch, r+1)
			}
		}
	}
	return FromBoard(rows, toMove)
}

// Position is the inverse of ParsePosition.
func (gs *GameState) Position() string {
	var sb strings.Builder
	for i, cell := range gs.board {
		if i > 0 && i%gs.size == 0 {
			sb.WriteByte('/')
		}
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
