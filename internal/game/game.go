package game

import (
	"fmt"
	"math/rand"

	"github.com/okvist/chameleon-tui/internal/config"
	"github.com/okvist/chameleon-tui/internal/core"
)

// Minimum playable map area in terminal cells.
const (
	minMapW = 24
	minMapH = 10
)

// Game adapts the World simulation to the platform loop: it owns restart,
// pause, and rendering, and exposes the Reset/Step/Render/State contract
// the TUI layer drives.
type Game struct {
	cfg    config.ChameleonConfig
	rt     core.RuntimeConfig
	world  *World
	scores HighScoreStore

	paused   bool
	tooSmall bool

	// Map area inside the screen (below the HUD).
	mapW, mapH, mapTop int
}

// New creates a game instance with the given tuning and high-score storage.
// The scores store may be nil; the game then runs without persistence.
func New(cfg config.ChameleonConfig, scores HighScoreStore) *Game {
	return &Game{
		cfg:    cfg,
		scores: scores,
	}
}

// ID returns the game identifier, used for storage and display.
func (g *Game) ID() string {
	return "chameleon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hungry Chameleon"
}

// Reset initializes or restarts the game with a fresh World.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.rt = rt
	g.paused = false
	g.layout(rt.ScreenW, rt.ScreenH)
	g.world = NewWorld(g.cfg, rt.TickRate, rand.New(rand.NewSource(rt.Seed)), g.scores)
}

// layout computes the map area below the HUD.
func (g *Game) layout(screenW, screenH int) {
	g.mapTop = 2 // HUD line plus separator
	g.mapW = screenW
	g.mapH = screenH - g.mapTop
	g.tooSmall = g.mapW < minMapW || g.mapH < minMapH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.world.GameOver() {
		// Fresh world, fresh flies, score reset; the high score is re-read
		// from storage inside the constructor.
		seed := g.world.NextSeed()
		g.world = NewWorld(g.cfg, g.rt.TickRate, rand.New(rand.NewSource(seed)), g.scores)
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		GameOver:  g.world.GameOver(),
		Paused:    g.paused,
	}
}

// World exposes the underlying simulation, mainly for tests and persistence.
func (g *Game) World() *World {
	return g.world
}

// --- Rendering ---

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout(dst.Width(), dst.Height())

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderFlies(dst)
	g.renderChameleon(dst)

	switch {
	case g.world.GameOver():
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Best: %d  |  Enter to restart", g.world.Score(), g.world.HighScore()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	tongue := "in"
	if c := g.world.Chameleon(); c != nil && c.TongueOut() {
		tongue = "OUT"
	}
	hud := fmt.Sprintf(" Hungry Chameleon | Score: %d  Best: %d  Flies: %d  Tongue: %s",
		g.world.Score(), g.world.HighScore(), len(g.world.Flies()), tongue)
	dst.DrawText(0, 0, hud)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// toScreen maps a field position to a map cell.
func (g *Game) toScreen(pos core.Vec2) (int, int) {
	x := int(pos.X / g.cfg.Field.Width * float64(g.mapW))
	y := int(pos.Y/g.cfg.Field.Height*float64(g.mapH)) + g.mapTop
	x = core.Clamp(x, 0, g.mapW-1)
	y = core.Clamp(y, g.mapTop, g.mapTop+g.mapH-1)
	return x, y
}

// renderFlies draws each live fly.
func (g *Game) renderFlies(dst *core.Screen) {
	for _, f := range g.world.Flies() {
		x, y := g.toScreen(f.Position)
		dst.SetColor(x, y, '*', core.ColorBrightYellow)
	}
}

// renderChameleon draws the pivot, the arm, the head, and the tongue.
func (g *Game) renderChameleon(dst *core.Screen) {
	c := g.world.Chameleon()
	if c == nil {
		return
	}

	// Arm: sampled line from pivot to head.
	px, py := g.toScreen(core.Wrap(c.Pivot, g.cfg.Field.Width, g.cfg.Field.Height))
	dst.SetColor(px, py, '+', core.ColorGray)
	arm := c.Position.Sub(c.Pivot)
	for i := 1; i < 8; i++ {
		p := c.Pivot.Add(arm.Scale(float64(i) / 8))
		x, y := g.toScreen(core.Wrap(p, g.cfg.Field.Width, g.cfg.Field.Height))
		dst.SetColor(x, y, '·', core.ColorGreen)
	}

	// Tongue: sampled line from the head along the facing direction.
	if c.TongueOut() {
		for i := 1; i <= 6; i++ {
			p := c.Position.Add(c.Direction.Scale(c.EffectiveRadius() * float64(i) / 6))
			x, y := g.toScreen(core.Wrap(p, g.cfg.Field.Width, g.cfg.Field.Height))
			dst.SetColor(x, y, '~', core.ColorRed)
		}
	}

	hx, hy := g.toScreen(c.Position)
	dst.SetColor(hx, hy, '@', core.ColorBrightGreen)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(line1))/2, boxY+1, line1)
	dst.DrawText(boxX+(boxW-len(line2))/2, boxY+3, line2)
}
