// meta/meta.go
package meta

// DEFAULT_SIZE is the board size used when none is given.
const DEFAULT_SIZE = 4

// DEFAULT_GAMES is the number of games in a win-rate experiment.
const DEFAULT_GAMES = 100

// ROLLING_WINDOW is the number of games averaged for progress reports.
const ROLLING_WINDOW = 10

// MAX_REJECTIONS bounds consecutive illegal proposals from one agent.
const MAX_REJECTIONS = 100
