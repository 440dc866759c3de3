package engine

// resolveCollisions checks every ghost against the player's resolved
// position. A frightened ghost on the player's cell is captured:
// capture score, reset to spawn, frightened cleared, and processing
// continues for the remaining roster. A non-frightened ghost there
// loses the game immediately; the caller skips the rest of the tick.
// Reports whether the game is lost.
func (e *Engine) resolveCollisions(tx *tickTxn) bool {
	for i := range tx.ghosts {
		gh := &tx.ghosts[i]
		if gh.Pos != tx.player.Pos {
			continue
		}
		if !gh.Frightened {
			return true
		}
		tx.scoreDelta += e.rules.CaptureScore
		gh.Pos = gh.Spawn
		gh.Dir = DirStop
		gh.Frightened = false
		tx.resetGhosts[gh.ID] = true
	}
	return false
}
