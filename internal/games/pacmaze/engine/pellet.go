package engine

// applyPellets handles pellet consumption and power-up timing for the
// player's resolved cell. Eating a power-pellet takes precedence over
// natural decay in the same tick: the counter is set fresh and every
// ghost is frightened, except ghosts already reset this tick by a
// capture or hit, whose cleared flag must survive to the commit.
func (e *Engine) applyPellets(tx *tickTxn) {
	pos := tx.player.Pos
	switch {
	case e.pellets[pos]:
		tx.atePellet = true
		tx.scoreDelta += e.rules.PelletScore

	case e.powerPellets[pos]:
		tx.atePower = true
		tx.scoreDelta += e.rules.PowerPelletScore
		tx.powerUp = PowerUp{Active: true, TicksLeft: e.rules.PowerUpTicks}
		for i := range tx.ghosts {
			if !tx.resetGhosts[tx.ghosts[i].ID] {
				tx.ghosts[i].Frightened = true
			}
		}
	}

	if !tx.atePower && tx.powerUp.Active {
		tx.powerUp.TicksLeft--
		if tx.powerUp.TicksLeft <= 0 {
			tx.powerUp = PowerUp{}
			for i := range tx.ghosts {
				tx.ghosts[i].Frightened = false
			}
		}
	}
}
