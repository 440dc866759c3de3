// Package pacmaze adapts the maze-chase engine to the terminal platform:
// input mapping, movement cadence, level progression and rendering.
package pacmaze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pacmaze/internal/config"
	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/engine"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game implements the maze-chase game on top of the tick engine.
type Game struct {
	mode       Mode
	rng        *rand.Rand
	tick       uint64
	eng        *engine.Engine
	cfg        config.PacmazeConfig
	difficulty *config.DifficultyManager

	levelSet       []engine.Level
	levelIndex     int
	tickRate       int
	moveEveryTicks int
	moveTicker     int // Counts ticks until next engine step

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool

	// Level clear animation
	levelClearTicks int
}

// Package-level knobs applied on the next Reset
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	customLevels       []engine.Level
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetCustomLevels replaces the built-in campaign with mazes loaded
// from disk. Pass nil to restore the built-ins.
func SetCustomLevels(lvls []engine.Level) {
	customLevels = lvls
}

// LevelCount returns the number of mazes in the active set.
func LevelCount() int {
	if len(customLevels) > 0 {
		return len(customLevels)
	}
	return engine.LevelCount()
}

// LevelNames returns display names for the active maze set.
func LevelNames() []string {
	if len(customLevels) > 0 {
		names := make([]string, len(customLevels))
		for i, l := range customLevels {
			names[i] = l.Name
		}
		return names
	}
	return engine.LevelNames()
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("pacmaze", func() registry.Game {
		return New()
	})
	registry.Register("pacmaze_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pacmaze_endless"
	}
	return "pacmaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pac-Maze (Endless)"
	}
	return "Pac-Maze"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.eng = nil
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	gameCfg, err := config.LoadPacmaze(configPath)
	if err != nil {
		gameCfg = config.DefaultPacmazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPacmazePreset(&gameCfg, difficultyPreset)
	}
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.levelSet = engine.Levels
	if len(customLevels) > 0 {
		g.levelSet = customLevels
	}

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= len(g.levelSet) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel parses the current level and hands it to the engine. The
// engine is created on the first load and advanced on later ones so
// the score carries across mazes.
func (g *Game) loadLevel() {
	level := g.levelSet[g.levelIndex%len(g.levelSet)]
	g.levelCleared = false
	g.levelClearTicks = 0
	g.moveTicker = 0

	tickMs := level.TickMs
	if g.cfg.Gameplay.TickMs > 0 {
		tickMs = g.cfg.Gameplay.TickMs
	}
	powerMs := level.PowerUpMs
	if g.cfg.Gameplay.PowerUpMs > 0 {
		powerMs = g.cfg.Gameplay.PowerUpMs
	}

	// In endless mode, each full cycle through the mazes speeds up
	// the simulation.
	if g.mode == ModeEndless {
		cycle := g.levelIndex / len(g.levelSet)
		tickMs -= cycle * g.cfg.Endless.SpeedUpPerCycle
		if tickMs < g.cfg.Endless.MinTickMs {
			tickMs = g.cfg.Endless.MinTickMs
		}
	}

	score := 0
	if g.eng != nil {
		score = g.eng.Score()
	}
	tickMs = g.difficulty.TickMs(tickMs, score, int(g.tick))
	powerMs = g.difficulty.PowerUpMs(powerMs, score, int(g.tick))

	scoring := level.Scoring
	if g.cfg.Scoring.Pellet > 0 {
		scoring.Pellet = g.cfg.Scoring.Pellet
	}
	if g.cfg.Scoring.PowerPellet > 0 {
		scoring.PowerPellet = g.cfg.Scoring.PowerPellet
	}
	if g.cfg.Scoring.Capture > 0 {
		scoring.Capture = g.cfg.Scoring.Capture
	}
	if g.cfg.Scoring.Hit > 0 {
		scoring.Hit = g.cfg.Scoring.Hit
	}

	rules := engine.Rules{
		PelletScore:      scoring.Pellet,
		PowerPelletScore: scoring.PowerPellet,
		CaptureScore:     scoring.Capture,
		HitScore:         scoring.Hit,
		PowerUpTicks:     powerMs / tickMs,
	}

	grid, err := level.Grid()
	if err != nil {
		// A broken maze definition cannot be played.
		g.eng = nil
		g.gameOver = true
		return
	}

	// Engine steps happen every moveEveryTicks platform ticks.
	g.moveEveryTicks = max(1, tickMs*g.tickRate/1000)

	// Check if screen is too small
	requiredW := grid.Width + 2
	requiredH := grid.Height + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map
	g.mapOffsetX = (g.screenW - grid.Width) / 2
	g.mapOffsetY = g.hudHeight

	if g.eng == nil {
		g.eng = engine.New(grid, rules, g.rng)
	} else {
		g.eng.AdvanceLevel(grid, rules)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, too small, or level cleared animation
	if g.gameOver || g.won || g.paused || g.tooSmall || g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Direction and fire intents go to the engine immediately; the
	// engine buffers them until its next step.
	g.processInput(input)

	// Step the engine on its own cadence
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.eng.Tick()
		g.afterEngineTick()
	}

	return core.StepResult{State: g.State()}
}

// processInput forwards player intents to the engine.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.eng.SetDirection(engine.DirUp)
	case input.Has(core.ActionDown):
		g.eng.SetDirection(engine.DirDown)
	case input.Has(core.ActionLeft):
		g.eng.SetDirection(engine.DirLeft)
	case input.Has(core.ActionRight):
		g.eng.SetDirection(engine.DirRight)
	}

	if input.Has(core.ActionFire) {
		g.eng.Fire()
	}
}

// afterEngineTick reacts to a terminal engine status.
func (g *Game) afterEngineTick() {
	switch g.eng.Status() {
	case engine.StatusLost:
		g.gameOver = true
	case engine.StatusWon:
		if g.mode == ModeEndless {
			// No interstitial in endless mode, straight to the next maze
			g.levelIndex++
			g.loadLevel()
		} else {
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= len(g.levelSet) {
		g.won = true
	} else {
		g.loadLevel()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.eng != nil {
		score = g.eng.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// CurrentLevelName returns the display name of the active maze.
func (g *Game) CurrentLevelName() string {
	if len(g.levelSet) == 0 {
		return ""
	}
	return g.levelSet[g.levelIndex%len(g.levelSet)].Name
}

// RunDetails reports mode, level reached and outcome for run history.
func (g *Game) RunDetails() (string, int, string) {
	outcome := "lost"
	level := g.levelIndex + 1
	if g.won {
		outcome = "won"
		level = len(g.levelSet)
	}
	return string(g.mode), level, outcome
}

// ghostColors maps the engine roster colors to screen colors.
var ghostColors = map[engine.GhostColor]core.Color{
	engine.GhostRed:    core.ColorBrightRed,
	engine.GhostPink:   core.ColorBrightMagenta,
	engine.GhostCyan:   core.ColorBrightCyan,
	engine.GhostOrange: core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	var snap engine.Snapshot
	if g.eng != nil {
		snap = g.eng.Snapshot()
	}
	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.eng == nil {
		g.renderOverlay(dst, "No playable maze", "Press Q to quit")
		return
	}

	g.renderMaze(dst, snap)
	g.renderEntities(dst, snap)

	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Maze %d cleared!", g.levelIndex+1), g.CurrentLevelName())
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", snap.Score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	remaining := len(snap.Pellets) + len(snap.PowerPellets)

	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Pac-Maze (Endless) — Score: %d  Maze: %d", snap.Score, g.levelIndex+1)
	} else {
		hud = fmt.Sprintf(" Pac-Maze — Score: %d  Maze: %d/%d  Pellets: %d", snap.Score, g.levelIndex+1, len(g.levelSet), remaining)
	}
	if snap.PowerUp.Active {
		hud += fmt.Sprintf("  POWER %d", snap.PowerUp.TicksLeft)
	}

	runes := []rune(hud)
	for x := 0; x < dst.Width() && x < len(runes); x++ {
		dst.Set(x, 0, runes[x])
	}
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderMaze draws walls and pellets.
func (g *Game) renderMaze(dst *core.Screen, snap engine.Snapshot) {
	grid := g.eng.Grid()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := engine.Point{X: x, Y: y}
			sx := g.mapOffsetX + x
			sy := g.mapOffsetY + y
			switch {
			case grid.IsWall(p):
				dst.SetWithColor(sx, sy, '#', core.ColorBlue)
			case snap.Pellets[p]:
				dst.SetWithColor(sx, sy, '·', core.ColorWhite)
			case snap.PowerPellets[p]:
				dst.SetWithColor(sx, sy, '●', core.ColorBrightYellow)
			}
		}
	}
}

// renderEntities draws projectiles, ghosts and the player.
func (g *Game) renderEntities(dst *core.Screen, snap engine.Snapshot) {
	for _, pr := range snap.Projectiles {
		ch := '-'
		if pr.Dir == engine.DirUp || pr.Dir == engine.DirDown {
			ch = '|'
		}
		dst.SetWithColor(g.mapOffsetX+pr.Pos.X, g.mapOffsetY+pr.Pos.Y, ch, core.ColorBrightWhite)
	}

	for _, gh := range snap.Ghosts {
		color := ghostColors[gh.Color]
		if gh.Frightened {
			color = core.ColorBrightBlue
		}
		dst.SetWithColor(g.mapOffsetX+gh.Pos.X, g.mapOffsetY+gh.Pos.Y, 'M', color)
	}

	ch := 'c'
	if snap.Player.MouthOpen {
		ch = 'C'
	}
	dst.SetWithColor(g.mapOffsetX+snap.Player.Pos.X, g.mapOffsetY+snap.Player.Pos.Y, ch, core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCenteredText(dst, line1, boxY+1)
	drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
