package config

import (
	_ "embed"
)

//go:embed defaults/pacmaze.yaml
var defaultPacmazeYAML []byte

// DefaultPacmazeConfig returns the default maze game configuration.
func DefaultPacmazeConfig() PacmazeConfig {
	return PacmazeConfig{
		Gameplay: PacmazeGameplay{
			TickMs:    0, // Per level
			PowerUpMs: 0, // Per level
		},
		Scoring: PacmazeScoring{
			Pellet:      0, // Per level
			PowerPellet: 0,
			Capture:     0,
			Hit:         0,
		},
		Endless: PacmazeEndless{
			SpeedUpPerCycle: 20,
			MinTickMs:       80,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				PowerUpReduction: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacmaze", "pacmaze_endless":
		return defaultPacmazeYAML
	default:
		return nil
	}
}
