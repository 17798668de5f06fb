package easel

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	TPS        int   // ticks per second; 0 keeps ebiten's default of 60
	Background Color // window color behind the transparent surface
	ShowFPS    bool
}

// Game adapts a Renderer drawing onto an EbitenSurface to ebiten.Game. Each
// Update samples the mouse into ProcessPointer and runs one scheduler frame,
// which ticks the animation loop; Draw blits the surface to the screen.
type Game struct {
	r       *Renderer
	surface *EbitenSurface
	sched   *LoopScheduler
	cfg     RunConfig
	fps     *fpsOverlay
	last    time.Duration
}

// NewGame creates a width x height EbitenSurface and a Renderer on it, driven
// by a LoopScheduler that Update runs once per tick. opts are applied after
// the scheduler option, so WithScheduler here replaces the loop driver and
// must be run by the caller.
func NewGame(cfg RunConfig, opts ...RendererOption) (*Game, error) {
	surface, err := NewEbitenSurface(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	sched := NewLoopScheduler(nil)
	r, err := NewRenderer(surface, append([]RendererOption{WithScheduler(sched)}, opts...)...)
	if err != nil {
		return nil, err
	}
	g := &Game{r: r, surface: surface, sched: sched, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g, nil
}

// Renderer returns the game's renderer.
func (g *Game) Renderer() *Renderer { return g.r }

// Update implements ebiten.Game. Real mouse input is skipped while synthetic
// input is queued.
func (g *Game) Update() error {
	if g.r.PendingInjected() == 0 {
		mx, my := ebiten.CursorPosition()
		g.r.ProcessPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	g.sched.RunFrame()

	if g.fps != nil {
		now := g.sched.Now()
		g.fps.update(now - g.last)
		g.last = now
	}
	if g.r.scriptRunner != nil && g.r.scriptRunner.Done() && len(g.r.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.RGBA8())
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is the surface size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Dimensions()
}

// Run opens a window and runs the scene until the window closes. setup
// builds the scene; when it leaves the animation loop stopped, Run starts
// it with no callback so the scene still redraws every frame. A script
// runner that finishes ends the game.
//
//	err := easel.Run(easel.RunConfig{Title: "demo", Width: 640, Height: 480},
//	    func(r *easel.Renderer) error {
//	        r.Add(easel.NewCircle(easel.CircleOptions{Radius: 40}))
//	        return nil
//	    })
func Run(cfg RunConfig, setup func(*Renderer) error, opts ...RendererOption) error {
	g, err := NewGame(cfg, opts...)
	if err != nil {
		return fmt.Errorf("easel: run: %w", err)
	}
	if setup != nil {
		if err := setup(g.r); err != nil {
			return fmt.Errorf("easel: run: setup: %w", err)
		}
	}
	if !g.r.IsAnimating() {
		g.r.StartAnimation(nil)
	}

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
