// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/engine"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a maze file.
type YAMLLevel struct {
	ID      string            `yaml:"id"`
	Name    string            `yaml:"name"`
	Timing  YAMLTiming        `yaml:"timing,omitempty"`
	Scoring YAMLScoring       `yaml:"scoring,omitempty"`
	Rows    []string          `yaml:"rows"`
	Meta    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLTiming holds the per-level pacing values in milliseconds.
type YAMLTiming struct {
	TickMs    int `yaml:"tick_ms,omitempty"`
	PowerUpMs int `yaml:"powerup_ms,omitempty"`
}

// YAMLScoring holds the per-level score values.
type YAMLScoring struct {
	Pellet      int `yaml:"pellet,omitempty"`
	PowerPellet int `yaml:"power_pellet,omitempty"`
	Capture     int `yaml:"capture,omitempty"`
	Hit         int `yaml:"hit,omitempty"`
}

// Level represents a parsed maze ready for use.
type Level struct {
	ID        string
	Name      string
	TickMs    int
	PowerUpMs int
	Scoring   engine.Scoring
	Rows      []string
	Meta      map[string]string
}

// Defaults applied when a YAML file omits a section.
const (
	DefaultTickMs      = 200
	DefaultPowerUpMs   = 8000
	DefaultPellet      = 10
	DefaultPowerPellet = 50
	DefaultCapture     = 200
	DefaultHit         = 100
)

// ParseYAML parses a YAML maze file. The layout is validated here so
// a directory scan can skip broken files without surprising the game
// later.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level file has no id")
	}

	codes, err := engine.ParseLayout(yl.Rows)
	if err != nil {
		return Level{}, err
	}
	if _, err := engine.NewGrid(codes); err != nil {
		return Level{}, err
	}

	lv := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		TickMs:    yl.Timing.TickMs,
		PowerUpMs: yl.Timing.PowerUpMs,
		Scoring: engine.Scoring{
			Pellet:      yl.Scoring.Pellet,
			PowerPellet: yl.Scoring.PowerPellet,
			Capture:     yl.Scoring.Capture,
			Hit:         yl.Scoring.Hit,
		},
		Rows: yl.Rows,
		Meta: yl.Meta,
	}
	if lv.Name == "" {
		lv.Name = lv.ID
	}
	if lv.TickMs <= 0 {
		lv.TickMs = DefaultTickMs
	}
	if lv.PowerUpMs <= 0 {
		lv.PowerUpMs = DefaultPowerUpMs
	}
	if lv.Scoring.Pellet <= 0 {
		lv.Scoring.Pellet = DefaultPellet
	}
	if lv.Scoring.PowerPellet <= 0 {
		lv.Scoring.PowerPellet = DefaultPowerPellet
	}
	if lv.Scoring.Capture <= 0 {
		lv.Scoring.Capture = DefaultCapture
	}
	if lv.Scoring.Hit <= 0 {
		lv.Scoring.Hit = DefaultHit
	}

	return lv, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
