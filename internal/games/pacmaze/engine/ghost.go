package engine

// ghostTurnChance is the per-tick probability of a spontaneous
// direction change at a junction.
const ghostTurnChance = 0.25

// moveGhosts runs the stochastic walk for every ghost: no target
// seeking, only a persistence bias on the current heading. At a
// junction the reverse direction is excluded, so ghosts never
// backtrack unless a dead end forces it. Each ghost's frightened flag
// is overwritten from the tick's power-up state here; capture and hit
// effects later in the tick override it per ghost.
func (e *Engine) moveGhosts(tx *tickTxn) {
	for i := range tx.ghosts {
		gh := &tx.ghosts[i]

		legal := make([]Direction, 0, 4)
		for _, d := range cardinal {
			if !e.grid.IsWall(e.grid.NextPosition(gh.Pos, d)) {
				legal = append(legal, d)
			}
		}
		if len(legal) > 1 && gh.Dir != DirStop {
			reverse := gh.Dir.Opposite()
			kept := legal[:0]
			for _, d := range legal {
				if d != reverse {
					kept = append(kept, d)
				}
			}
			legal = kept
		}

		currentLegal := false
		for _, d := range legal {
			if d == gh.Dir {
				currentLegal = true
				break
			}
		}

		if !currentLegal || (len(legal) > 1 && e.rng.Float64() < ghostTurnChance) {
			if len(legal) > 0 {
				gh.Dir = legal[e.rng.Intn(len(legal))]
			} else {
				gh.Dir = DirStop
			}
		}

		if gh.Dir != DirStop {
			gh.Pos = e.grid.NextPosition(gh.Pos, gh.Dir)
		}
		gh.Frightened = tx.powerUp.Active
	}
}
