package pacmaze

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick             uint64
	Level            int    // Current level (1-indexed for display)
	Mode             string // "campaign" or "endless"
	Score            int
	PlayerX          int
	PlayerY          int
	GhostsFrightened int
	PelletsLeft      int
	ProjectilesLive  int
	MoveEveryTicks   int
	State            GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	s := Snapshot{
		Tick:           g.tick,
		Level:          g.levelIndex + 1,
		Mode:           string(g.mode),
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}

	if g.eng != nil {
		es := g.eng.Snapshot()
		s.Score = es.Score
		s.PlayerX = es.Player.Pos.X
		s.PlayerY = es.Player.Pos.Y
		s.PelletsLeft = len(es.Pellets) + len(es.PowerPellets)
		s.ProjectilesLive = len(es.Projectiles)
		for _, gh := range es.Ghosts {
			if gh.Frightened {
				s.GhostsFrightened++
			}
		}
	}

	return s
}
