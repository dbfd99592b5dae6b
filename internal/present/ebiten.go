package present

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spaceship/internal/game"
	"spaceship/internal/input"
)

// EbitenLayout is the stock control scheme on ebiten keys
var EbitenLayout = input.Layout[ebiten.Key]{
	Forward:         ebiten.KeyW,
	Backward:        ebiten.KeyS,
	YawLeft:         ebiten.KeyA,
	YawRight:        ebiten.KeyD,
	PitchUp:         ebiten.KeyArrowUp,
	PitchDown:       ebiten.KeyArrowDown,
	Ascend:          ebiten.KeyQ,
	Descend:         ebiten.KeyE,
	Pause:           ebiten.KeySpace,
	ToggleOrbits:    ebiten.KeyO,
	ToggleProfiling: ebiten.KeyV,
	Quit:            ebiten.KeyEscape,
}

// EbitenGame runs a session as an ebiten.Game: Update steps the
// simulation at the fixed TPS, Draw renders on the CPU and uploads the frame.
type EbitenGame struct {
	session  *game.Session
	renderer *game.Renderer
	input    *input.InputManager[ebiten.Key]

	img   *image.RGBA
	fbImg *ebiten.Image
}

// NewEbitenGame binds the stock keyboard layout to s and draws through r.
func NewEbitenGame(s *game.Session, r *game.Renderer) *EbitenGame {
	im := input.NewInputManager[ebiten.Key]()
	im.BindLayout(EbitenLayout)
	return &EbitenGame{session: s, renderer: r, input: im}
}

// Run opens the window and blocks until it closes
func (g *EbitenGame) Run(title string) error {
	fb := g.renderer.Framebuffer()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(fb.Width(), fb.Height())
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func (g *EbitenGame) Update() error {
	g.input.Poll(ebiten.IsKeyPressed)
	quit := g.session.Update(g.input, game.DeltaTime)
	g.input.PostUpdate()
	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *EbitenGame) Draw(screen *ebiten.Image) {
	fb := g.renderer.Render(g.session)
	g.renderer.HUD().Tick(time.Now())

	g.img = fb.RGBA(g.img)
	if g.fbImg == nil || g.fbImg.Bounds() != g.img.Bounds() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *EbitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.renderer.Framebuffer()
	return fb.Width(), fb.Height()
}
