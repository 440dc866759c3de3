package engine

// advanceProjectiles steps every live projectile one cell along its
// fixed direction with the same wrap-aware step other entities use.
// A projectile hitting a wall despawns. Otherwise the ghost roster is
// scanned in order and the first ghost on the target cell takes the
// hit: hit score is awarded, the ghost resets to its spawn with
// frightened cleared, and the projectile despawns. At most one ghost
// is affected per projectile per tick; survivors carry forward.
func (e *Engine) advanceProjectiles(tx *tickTxn) {
	kept := make([]Projectile, 0, len(e.projectiles))
	for _, pr := range e.projectiles {
		next := e.grid.NextPosition(pr.Pos, pr.Dir)
		if e.grid.IsWall(next) {
			continue
		}

		hit := false
		for i := range tx.ghosts {
			gh := &tx.ghosts[i]
			if gh.Pos != next {
				continue
			}
			tx.scoreDelta += e.rules.HitScore
			gh.Pos = gh.Spawn
			gh.Dir = DirStop
			gh.Frightened = false
			tx.resetGhosts[gh.ID] = true
			hit = true
			break
		}
		if hit {
			continue
		}

		pr.Pos = next
		kept = append(kept, pr)
	}
	tx.projectiles = kept
}
