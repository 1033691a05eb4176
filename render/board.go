package render

import (
	"fmt"
	"io"
	"strings"

	"tictactoe/game"

	"github.com/muesli/termenv"
)

// Renderer draws boards and charts for a terminal. Colours degrade to plain
// text when the output does not support them.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Plain returns a renderer that never emits escape sequences.
func Plain(w io.Writer) *Renderer {
	return NewRenderer(w, termenv.WithProfile(termenv.Ascii))
}

func (r *Renderer) mark(p game.Player) string {
	switch p {
	case game.PlayerX:
		return r.out.String(p.String()).Foreground(r.out.Color("1")).Bold().String()
	case game.PlayerO:
		return r.out.String(p.String()).Foreground(r.out.Color("4")).Bold().String()
	default:
		return p.String()
	}
}

// Board renders the grid with 1-indexed labels:
//
//	  1 2 3
//	1 X O
//	2   X
//	3     O
func (r *Renderer) Board(gs *game.GameState) string {
	size := gs.Size()
	labels := make([]string, size)
	for i := range labels {
		labels[i] = fmt.Sprint(i + 1)
	}

	var sb strings.Builder
	sb.WriteString("  " + strings.Join(labels, " ") + "\n")
	for row := 0; row < size; row++ {
		cells := make([]string, size)
		for col := 0; col < size; col++ {
			cells[col] = r.mark(gs.Cell(row, col))
		}
		fmt.Fprintf(&sb, "%d %s\n", row+1, strings.Join(cells, " "))
	}
	return sb.String()
}

// PrintBoard writes Board to the renderer's output.
func (r *Renderer) PrintBoard(gs *game.GameState) {
	fmt.Fprint(r.out, r.Board(gs))
}
