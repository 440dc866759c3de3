// Package config provides YAML-based game configuration loading and
// difficulty management for the maze platform.
package config

// PacmazeConfig contains all configuration for the maze game.
type PacmazeConfig struct {
	Gameplay   PacmazeGameplay  `yaml:"gameplay"`
	Scoring    PacmazeScoring   `yaml:"scoring"`
	Endless    PacmazeEndless   `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmazeGameplay defines pacing overrides. Zero values defer to the
// per-level settings.
type PacmazeGameplay struct {
	TickMs    int `yaml:"tick_ms"`    // Simulation step interval, 0 = per level
	PowerUpMs int `yaml:"powerup_ms"` // Power-up duration, 0 = per level
}

// PacmazeScoring defines score value overrides. Zero values defer to
// the per-level settings.
type PacmazeScoring struct {
	Pellet      int `yaml:"pellet"`
	PowerPellet int `yaml:"power_pellet"`
	Capture     int `yaml:"capture"`
	Hit         int `yaml:"hit"`
}

// PacmazeEndless defines endless-mode speed progression.
type PacmazeEndless struct {
	SpeedUpPerCycle int `yaml:"speedup_per_cycle"` // ms shaved off the tick interval per maze cycle
	MinTickMs       int `yaml:"min_tick_ms"`       // Floor for the tick interval
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Tick interval shrink factor at max difficulty
	PowerUpReduction float64 `yaml:"powerup_reduction"` // Fraction of the power-up window lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
