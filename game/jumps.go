package game

// ExpandTurns returns every complete turn that starts with m. A simple move gives
// exactly one turn. A jump is followed, recursively and in generation order, by
// each further jump of the same piece until no jump remains, giving one turn per
// maximal path. An illegal m gives no turns.
func (gs GameState) ExpandTurns(m Move) []Turn {
	next, err := gs.Apply(m)
	if err != nil {
		return nil
	}
	if !m.IsJump() || !next.CanContinue(m.Dest) {
		return []Turn{{Path: []Move{m}, Result: next}}
	}

	var turns []Turn
	for _, follow := range next.MovesForSquare(m.Dest) {
		if !follow.IsJump() {
			continue
		}
		for _, t := range next.ExpandTurns(follow) {
			path := make([]Move, 0, len(t.Path)+1)
			path = append(path, m)
			path = append(path, t.Path...)
			turns = append(turns, Turn{Path: path, Result: t.Result})
		}
	}
	return turns
}

// ExpandJumps returns the terminal states of ExpandTurns.
func (gs GameState) ExpandJumps(m Move) []GameState {
	turns := gs.ExpandTurns(m)
	states := make([]GameState, len(turns))
	for i, t := range turns {
		states[i] = t.Result
	}
	return states
}

// Turns lists every complete turn available to the current player, honouring
// forced captures, in move generation order.
func (gs GameState) Turns() []Turn {
	var turns []Turn
	for _, m := range gs.LegalMoves() {
		turns = append(turns, gs.ExpandTurns(m)...)
	}
	return turns
}
