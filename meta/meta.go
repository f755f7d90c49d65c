// meta/meta.go
package meta

// SEARCH_DEPTH is the minimax depth the computer plays with.
const SEARCH_DEPTH = 7

// GO_ROUTINES defines the number of goroutines building root subtrees.
const GO_ROUTINES = 1

// MAX_TURNS caps self-play games; reaching it is a draw.
const MAX_TURNS = 300

// GAMES is the number of games per matchup in experiments.
const GAMES = 10
