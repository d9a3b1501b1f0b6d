// Package viewer draws a blend between two transforms live in an ebiten window: the start and end transforms as dimmed
// reference cubes, and the blended result as a colored one, with the blend factor sweeping back and forth.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/solarlune/transformblend"
	"github.com/solarlune/transformblend/colors"
	"github.com/solarlune/transformblend/math32"
)

const (
	scrubSpeed = 0.5 // Factor change per second while scrubbing
	orbitSpeed = 1.5 // Radians per second
)

// Game is an ebiten.Game that blends Start towards End every frame and draws the result.
type Game struct {
	Width, Height int

	Start, End transformblend.Matrix4
	Config     transformblend.BlendConfig

	Animator *transformblend.FactorAnimator
	Camera   *transformblend.OrbitCamera

	DrawHUD bool

	// Target, if set, is drawn as a marker partway between the start translation and the target point.
	Target *transformblend.Vector3

	log    *logrus.Logger
	change transformblend.Matrix4
	cube   []transformblend.Line
	screen *ebiten.Image
}

// NewGame returns a new Game blending between the start and end matrices with the config given. The config's factor is
// where the animation starts.
func NewGame(start, end transformblend.Matrix4, config transformblend.BlendConfig, log *logrus.Logger) *Game {

	game := &Game{
		Width:    640,
		Height:   360,
		Start:    start,
		End:      end,
		Config:   config,
		Animator: transformblend.NewFactorAnimator(2),
		Camera:   transformblend.NewOrbitCamera(),
		DrawHUD:  true,
		log:      log,
		cube:     transformblend.ReferenceCube(),
	}

	game.Animator.SetFactor(math32.Clamp(config.Factor, 0, 1))
	game.change = transformblend.Blend(start, end, config)

	return game

}

func (g *Game) Update() error {

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.Config.InterpolateRotation = !g.Config.InterpolateRotation
		g.log.WithField("rotation", g.Config.InterpolateRotation).Info("toggled rotation interpolation")
	}

	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.Config.InterpolateScale = !g.Config.InterpolateScale
		g.log.WithField("scale", g.Config.InterpolateScale).Info("toggled scale interpolation")
	}

	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.Config.InterpolateTranslation = !g.Config.InterpolateTranslation
		g.log.WithField("translation", g.Config.InterpolateTranslation).Info("toggled translation interpolation")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if g.Config.Slerp == transformblend.SlerpShortestPath {
			g.Config.Slerp = transformblend.SlerpLiteral
		} else {
			g.Config.Slerp = transformblend.SlerpShortestPath
		}
		g.log.WithField("slerp", g.Config.Slerp).Info("switched slerp mode")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Animator.Paused = !g.Animator.Paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DrawHUD = !g.DrawHUD
	}

	dt := 1 / float32(ebiten.TPS())

	// Scrubbing

	scrub := float32(0)
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		scrub -= scrubSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		scrub += scrubSpeed * dt
	}
	if scrub != 0 {
		g.Animator.Paused = true
		g.Animator.SetFactor(math32.Clamp(g.Animator.Factor()+scrub, 0, 1))
	}

	// Orbiting

	var yaw, pitch float32
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		yaw -= orbitSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		yaw += orbitSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		pitch += orbitSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		pitch -= orbitSpeed * dt
	}
	g.Camera.Orbit(yaw, pitch)

	g.Config.Factor = g.Animator.Update(dt)
	g.change = transformblend.Blend(g.Start, g.End, g.Config)

	return nil

}

func (g *Game) Draw(screen *ebiten.Image) {

	screen.Fill(colors.DarkestGray())

	g.screen = screen
	transformblend.DrawLines(g, dimmed(transformblend.TransformLines(g.Start, g.cube), 0.45))
	transformblend.DrawLines(g, dimmed(transformblend.TransformLines(g.End, g.cube), 0.25))
	transformblend.DrawLines(g, transformblend.TransformLines(g.change, g.cube))

	if g.Target != nil {
		marker := transformblend.TargetMarker(g.Start, *g.Target, g.Config.Factor)
		g.DrawLine(marker.Start, marker.End, marker.Color)
	}
	g.screen = nil

	if g.DrawHUD {
		text.Draw(screen, g.hudText(), basicfont.Face7x13, 8, 16, colors.White())
	}

}

func (g *Game) hudText() string {

	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	paused := ""
	if g.Animator.Paused {
		paused = " (paused)"
	}

	return fmt.Sprintf(
		"Factor: %.3f%s\n1: Rotation %s\n2: Scale %s\n3: Translation %s\nL: Slerp %s\n\n"+
			"Determinants\nStart: %.3f\nChange: %.3f\nEnd: %.3f\n\n"+
			"Space: Pause, Left/Right: Scrub\nWASD: Orbit, F1: Toggle this text, ESC: Quit",
		g.Config.Factor, paused,
		onOff(g.Config.InterpolateRotation),
		onOff(g.Config.InterpolateScale),
		onOff(g.Config.InterpolateTranslation),
		g.Config.Slerp,
		g.Start.Determinant(),
		g.change.Determinant(),
		g.End.Determinant(),
	)

}

// DrawLine projects a world-space line through the camera and draws it onto the screen being drawn. Lines with an end
// behind the camera are skipped.
func (g *Game) DrawLine(start, end transformblend.Vector3, color transformblend.Color) {

	if g.screen == nil {
		return
	}

	w, h := float32(g.screen.Bounds().Dx()), float32(g.screen.Bounds().Dy())

	a, ok := g.Camera.WorldToScreen(start, w, h)
	if !ok {
		return
	}

	b, ok := g.Camera.WorldToScreen(end, w, h)
	if !ok {
		return
	}

	vector.StrokeLine(g.screen, a.X, a.Y, b.X, b.Y, 1, color, true)

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.Width, g.Height
}

func dimmed(lines []transformblend.Line, value float32) []transformblend.Line {
	for i := range lines {
		lines[i].Color = lines[i].Color.Multiply(value)
	}
	return lines
}
