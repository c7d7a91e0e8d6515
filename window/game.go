package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/ball-hunt/engine"
)

// HUD draws the scoreboard texts in the window corner
type HUD struct {
	engine.Scoreboard
}

// Draw prints the score and time lines
func (h *HUD) Draw(screen *ebiten.Image) {
	score, elapsed := h.Texts()
	ebitenutil.DebugPrintAt(screen, score, 8, 8)
	if elapsed != "" {
		ebitenutil.DebugPrintAt(screen, elapsed, 8, 24)
	}
}

// Game adapts the simulation loop to ebiten.Game.
// ebiten calls Update once per tick, which runs the pending frame.
type Game struct {
	cfg    *engine.Config
	loop   *engine.Loop
	sched  *engine.FrameScheduler
	canvas *WindowCanvas
	hud    *HUD
	keys   *engine.KeyState

	pressed func(ebiten.Key) bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame builds and starts a loop on a width x height window canvas
func NewGame(cfg *engine.Config, sound engine.SoundPlayer, width, height int) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		sched:   engine.NewFrameScheduler(),
		canvas:  NewWindowCanvas(width, height),
		hud:     &HUD{},
		keys:    engine.NewKeyState(),
		pressed: ebiten.IsKeyPressed,
	}

	loop, err := engine.NewLoop(cfg, engine.Deps{
		Canvas:    g.canvas,
		Input:     g.keys,
		Clock:     engine.NewMonotonicTimeProvider(),
		Display:   g.hud,
		Scheduler: g.sched,
		Sound:     sound,
	})
	if err != nil {
		return nil, err
	}
	g.loop = loop
	g.loop.Start()
	return g, nil
}

// Loop exposes the simulation loop
func (g *Game) Loop() *engine.Loop {
	return g.loop
}

// Update reads the keyboard and runs one simulation frame
func (g *Game) Update() error {
	if g.pressed(ebiten.KeyEscape) || g.pressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	syncKeys(g.keys, g.pressed)
	if g.cfg.ClockPolicy == engine.ClockManual && g.keys.AnyHeld() {
		g.loop.StartClock()
	}

	g.sched.RunPending()
	return nil
}

// Draw copies the composed frame and overlays the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
	g.hud.Draw(screen)
}

// Layout follows the window size one to one, resizing the simulation bounds
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.canvas.Resize(outsideWidth, outsideHeight) {
		g.loop.Resize()
		log.Printf("window: resized to %dx%d", g.canvas.width, g.canvas.height)
	}
	return outsideWidth, outsideHeight
}
