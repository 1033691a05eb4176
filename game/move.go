package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedMove is returned when text cannot be read as a "row,column" pair.
var ErrMalformedMove = errors.New("malformed move")

// Move is a zero-indexed board coordinate.
type Move struct {
	Row int
	Col int
}

// String renders the move in the 1-indexed "row,column" notation players type.
func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row+1, m.Col+1)
}

// ParseMove reads a 1-indexed "row,column" pair such as "1,3". Bounds are not
// checked here; AttemptMove rejects coordinates outside the board.
func ParseMove(text string) (Move, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: %q is not in row,column format", ErrMalformedMove, text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: row: %w", ErrMalformedMove, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: column: %w", ErrMalformedMove, err)
	}

	return Move{Row: row - 1, Col: col - 1}, nil
}
