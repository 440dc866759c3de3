package engine

// resolvePlayerMove advances the player by at most one cell using a
// two-phase check: first the queued direction is tried, and if its
// target is open it becomes the committed direction. A turn is taken
// the moment it becomes legal, before the previous leg finishes. Then
// the committed direction is stepped; a blocked forward step leaves
// the player in place with no committed heading.
func (e *Engine) resolvePlayerMove(tx *tickTxn) {
	p := &tx.player
	p.MouthOpen = !p.MouthOpen

	if p.NextDir != DirStop && !e.grid.IsWall(e.grid.NextPosition(p.Pos, p.NextDir)) {
		p.Dir = p.NextDir
	}
	if p.Dir == DirStop {
		return
	}

	target := e.grid.NextPosition(p.Pos, p.Dir)
	if e.grid.IsWall(target) {
		p.Dir = DirStop
		return
	}
	p.Pos = target
}
