package game

// Outcome reports how the game stands for the side to move: a player left
// without pieces has lost, a player with pieces but no legal move draws.
// It does not write gs.Status; drivers decide when to adopt it.
func (gs GameState) Outcome() Status {
	if gs.CountPieces(gs.CurrentPlayer) == 0 {
		return WonBy(gs.CurrentPlayer.Opponent())
	}
	if len(gs.MovesForPlayer(gs.CurrentPlayer)) == 0 {
		return Draw
	}
	return Running
}
