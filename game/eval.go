package game

// EvaluateMaterial sums piece weights over the board: men count 1, kings 2,
// positive for white and negative for black.
func EvaluateMaterial(gs GameState) int {
	score := 0
	for row := range gs.Board {
		for _, p := range gs.Board[row] {
			score += Weight(p)
		}
	}
	return score
}
