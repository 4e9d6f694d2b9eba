// Package ui runs the canvas in an ebiten window.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/example/spinrect/internal/canvas"
	"github.com/example/spinrect/internal/config"
)

const toolbarHeight = 80

type Game struct {
	cfg   *config.Config
	log   zerolog.Logger
	clock canvas.Clock

	surface *surface
	ctl     *canvas.Controller
	clicks  *clickTracker

	buttons []*button
	confirm confirmDialog

	background   color.Color
	pixel        *ebiten.Image
	viewW, viewH int

	lastMouseBtn bool
	drawing      bool
	status       string
	choosePath   func(dir, name string) (string, error)
}

// NewGame wires a controller to an ebiten-backed surface. clock may be nil.
func NewGame(cfg *config.Config, log zerolog.Logger, clock canvas.Clock) *Game {
	if clock == nil {
		clock = canvas.SystemClock()
	}
	log = log.With().Str("component", "ui").Logger()

	bg, err := colorful.Hex(cfg.Canvas.Background)
	var background color.Color = bg
	if err != nil {
		background = color.Black
	}

	s := newSurface(clock, log)
	g := &Game{
		cfg:        cfg,
		log:        log,
		clock:      clock,
		surface:    s,
		clicks:     newClickTracker(cfg.Input.DoubleClickInterval, cfg.Input.DoubleClickDistance),
		background: background,
		viewW:      cfg.Window.Width,
		viewH:      cfg.Window.Height,
		choosePath: fixedPath,
	}
	if cfg.Export.UseDialog {
		g.choosePath = dialogPath
	}
	g.ctl = canvas.New(s,
		canvas.WithClock(clock),
		canvas.WithLogger(log),
		canvas.WithRotation(cfg.Rotation.Duration, cfg.Rotation.Degrees),
	)
	g.setupUI()
	return g
}

func (g *Game) setupUI() {
	g.buttons = []*button{
		{rect: image.Rect(20, 20, 120, 60), label: "Repaint", onClick: g.ctl.Repaint},
		{rect: image.Rect(140, 20, 240, 60), label: "Save", onClick: g.save},
		{rect: image.Rect(260, 20, 360, 60), label: "Clear", onClick: g.confirmClear},
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Update() error {
	now := g.clock.Now()
	g.ctl.Tick(now)

	mx, my := ebiten.CursorPosition()
	g.handlePointer(image.Pt(mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), now)
	g.handleKeys()
	return nil
}

func (g *Game) handlePointer(p image.Point, pressed bool, now time.Time) {
	justPressed := pressed && !g.lastMouseBtn
	justReleased := !pressed && g.lastMouseBtn
	defer func() { g.lastMouseBtn = pressed }()

	if g.confirm.visible {
		if justPressed {
			g.confirm.click(p, g.viewW, g.viewH)
		}
		return
	}

	if justPressed {
		for _, b := range g.buttons {
			if b.contains(p) {
				b.onClick()
				return
			}
		}
		if p.Y > toolbarHeight {
			g.drawing = true
			g.ctl.PointerDown(p)
			id, _ := g.ctl.ActiveHandle()
			g.clicks.press(p, id)
		}
		return
	}

	if !g.drawing {
		return
	}
	if pressed {
		g.ctl.PointerMove(p)
		return
	}
	if justReleased {
		g.drawing = false
		g.ctl.PointerUp()
		if double, own := g.clicks.release(p, now); double {
			g.ctl.DoubleClickAt(p, own...)
		}
	}
}

func (g *Game) handleKeys() {
	if g.confirm.visible {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.confirm.visible = false
		}
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctl.Repaint()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	}
}

func (g *Game) confirmClear() {
	g.confirm = confirmDialog{
		message: "Remove every rectangle?",
		visible: true,
		onConfirm: func() {
			g.ctl.Clear()
			g.drawing = false
			g.status = "cleared"
		},
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	now := g.clock.Now()
	for _, h := range g.surface.visible() {
		g.drawShape(screen, h.bounds, h.fill, h.angle(now))
	}

	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), toolbarHeight, toolbarFill, false)
	for _, b := range g.buttons {
		b.draw(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.statusLine(), 20, toolbarHeight-16)

	g.confirm.draw(screen)
}

func (g *Game) drawShape(dst *ebiten.Image, r image.Rectangle, fill color.Color, angle float64) {
	if g.pixel == nil {
		g.pixel = ebiten.NewImage(1, 1)
		g.pixel.Fill(color.White)
	}
	w, h := float64(r.Dx()), float64(r.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(float64(r.Min.X)+w/2, float64(r.Min.Y)+h/2)
	op.ColorScale.ScaleWithColor(fill)
	dst.DrawImage(g.pixel, op)
}

func (g *Game) statusLine() string {
	st := g.ctl.Stats()
	line := fmt.Sprintf("rectangles: %d  rotating: %d  pending: %d", st.Live, st.Rotating, st.Pending)
	if g.status != "" {
		line += "  |  " + g.status
	}
	return line
}

// Close tears down the canvas.
func (g *Game) Close() {
	g.ctl.Close()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log zerolog.Logger) error {
	game := NewGame(cfg, log, nil)
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(cfg.Window.Resizable)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
