package engine

import "tictactoe/game"

// Observer is told about every accepted move, after it is applied.
type Observer func(state *game.GameState, player game.Player, move game.Move)
