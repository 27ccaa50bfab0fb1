package simulation

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/albertb/go-boids/pkg/geometry"
	"github.com/albertb/go-boids/pkg/ui"
)

// birdSize is the base half-width of the boid triangle; the drawn size
// scales with the boid's weight.
const birdSize = 2.0

// whiteImage is the 1-value texture used to tint triangles per vertex.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game wires the World to ebiten: it owns the parameter panel, feeds
// widget values back into the Parameters each frame, runs the tick
// pipeline, and renders the flock.
type Game struct {
	params *Parameters
	world  *World

	panel *ui.Panel

	// Widget references for easy access
	widgetNumBoids        *ui.Slider
	widgetViewDistance    *ui.Slider
	widgetCohesionForce   *ui.Slider
	widgetSeparationForce *ui.Slider
	widgetSeparationBias  *ui.Slider
	widgetAlignmentForce  *ui.Slider
	widgetAlignmentBias   *ui.Slider
	widgetSteeringForce   *ui.Slider
	widgetFidelity        *ui.Slider
	widgetMinSpeed        *ui.Slider
	widgetMaxSpeed        *ui.Slider
	widgetBounce          *ui.Checkbox

	lastTick time.Time

	// Window size as last reported by Layout, fed to World.Resize in the
	// late phase of Update.
	screenWidth  int
	screenHeight int
}

// NewGame builds the game and its parameter panel around an existing world.
func NewGame(params *Parameters, world *World) *Game {
	panel := ui.NewPanel(10, 10, 240, 460)

	panel.AddSection("Flock")
	widgetNumBoids := panel.AddLogSlider("Number of boids", 8, 2048, float64(params.NumBoids))
	widgetViewDistance := panel.AddSlider("View distance", 0, 500, params.ViewDistance)
	panel.EndSection()

	panel.AddSection("Forces")
	widgetCohesionForce := panel.AddLogSlider("Cohesion force", 0.01, 100, params.CohesionForce)
	widgetSeparationForce := panel.AddLogSlider("Separation force", 0.01, 100, params.SeparationForce)
	widgetSeparationBias := panel.AddLogSlider("Separation bias", 0.01, 10, params.SeparationBias)
	widgetAlignmentForce := panel.AddLogSlider("Alignment force", 0.01, 100, params.AlignmentForce)
	widgetAlignmentBias := panel.AddLogSlider("Alignment bias", 0.01, 100, params.AlignmentBias)
	widgetSteeringForce := panel.AddLogSlider("Steering force", 0.01, 100, params.SteeringForce)
	panel.EndSection()

	panel.AddSection("Sampling")
	widgetFidelity := panel.AddSlider("Fidelity", 0.01, 1, params.Fidelity)
	panel.EndSection()

	panel.AddSection("Speed")
	widgetMinSpeed := panel.AddSlider("Minimum speed", 10, params.MaxSpeed, params.MinSpeed)
	widgetMaxSpeed := panel.AddSlider("Maximum speed", params.MinSpeed, 500, params.MaxSpeed)
	panel.EndSection()

	panel.AddSection("Walls")
	widgetBounce := panel.AddCheckbox("Bounce off walls", params.BounceOffWalls)
	panel.AddButton("Restart", world.Restart)
	panel.EndSection()

	return &Game{
		params:                params,
		world:                 world,
		panel:                 panel,
		widgetNumBoids:        widgetNumBoids,
		widgetViewDistance:    widgetViewDistance,
		widgetCohesionForce:   widgetCohesionForce,
		widgetSeparationForce: widgetSeparationForce,
		widgetSeparationBias:  widgetSeparationBias,
		widgetAlignmentForce:  widgetAlignmentForce,
		widgetAlignmentBias:   widgetAlignmentBias,
		widgetSteeringForce:   widgetSteeringForce,
		widgetFidelity:        widgetFidelity,
		widgetMinSpeed:        widgetMinSpeed,
		widgetMaxSpeed:        widgetMaxSpeed,
		widgetBounce:          widgetBounce,
	}
}

// Update runs one frame: panel input, parameter sync, one simulation tick,
// then the resize reconciliation.
func (g *Game) Update() error {
	g.panel.Update()
	g.syncParameters()

	now := time.Now()
	var dt float64
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	pointer, action := g.pointerState()
	g.world.Step(dt, pointer, action)

	g.world.Resize(float64(g.screenWidth), float64(g.screenHeight))
	return nil
}

// syncParameters writes the widget values back into the Parameters. The
// two speed sliders constrain each other so MinSpeed <= MaxSpeed holds no
// matter which one was dragged.
func (g *Game) syncParameters() {
	p := g.params

	p.NumBoids = int(math.Round(g.widgetNumBoids.Value))
	p.ViewDistance = g.widgetViewDistance.Value
	p.CohesionForce = g.widgetCohesionForce.Value
	p.SeparationForce = g.widgetSeparationForce.Value
	p.SeparationBias = g.widgetSeparationBias.Value
	p.AlignmentForce = g.widgetAlignmentForce.Value
	p.AlignmentBias = g.widgetAlignmentBias.Value
	p.SteeringForce = g.widgetSteeringForce.Value
	p.Fidelity = g.widgetFidelity.Value

	g.widgetMinSpeed.Max = g.widgetMaxSpeed.Value
	g.widgetMaxSpeed.Min = g.widgetMinSpeed.Value
	g.widgetMinSpeed.Clamp()
	g.widgetMaxSpeed.Clamp()
	p.MinSpeed = g.widgetMinSpeed.Value
	p.MaxSpeed = g.widgetMaxSpeed.Value

	p.BounceOffWalls = g.widgetBounce.Value
}

// pointerState reads the mouse: left press attracts the flock, right press
// repels it. Clicks on the panel stay panel clicks. The returned position
// is in world coordinates (origin at the window center).
func (g *Game) pointerState() (geometry.Vector2D, PointerAction) {
	mx, my := ebiten.CursorPosition()
	if g.panel.Contains(mx, my) {
		return geometry.Vector2D{}, PointerNone
	}

	action := PointerNone
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		action = PointerAttract
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		action = PointerRepel
	}

	pointer := geometry.Vector2D{
		X: float64(mx) - g.params.HalfWidth(),
		Y: float64(my) - g.params.HalfHeight(),
	}
	return pointer, action
}

// Draw renders the flock, the parameter panel, and a stats line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for _, b := range g.world.Boids() {
		g.drawBoid(screen, b)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBoids: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.world.Count())
	ebitenutil.DebugPrintAt(screen, msg, g.screenWidth-100, 10)
}

// drawBoid renders one boid as a triangle pointing along its heading,
// scaled by its weight and colored by its heading angle.
func (g *Game) drawBoid(screen *ebiten.Image, b *Boid) {
	// World coordinates are origin-centered; the screen origin is the
	// top-left corner.
	sx := b.Pos.X + g.params.HalfWidth()
	sy := b.Pos.Y + g.params.HalfHeight()

	size := birdSize * b.Weight
	angle := b.Heading

	tipX := sx + math.Cos(angle)*2*size
	tipY := sy + math.Sin(angle)*2*size
	rightX := sx + math.Cos(angle+2.5)*1.5*size
	rightY := sy + math.Sin(angle+2.5)*1.5*size
	leftX := sx + math.Cos(angle-2.5)*1.5*size
	leftY := sy + math.Sin(angle-2.5)*1.5*size

	clr := headingColor(b.Heading)
	r, gc, bl := float32(clr.R), float32(clr.G), float32(clr.B)

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bl, ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bl, ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1, ColorR: r, ColorG: gc, ColorB: bl, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

// headingColor maps a heading angle to a hue: the full color wheel spread
// over the full turn, measured against the +Y axis like the triangle mesh.
func headingColor(heading float64) colorful.Color {
	dir := geometry.Vector2D{X: math.Cos(heading), Y: math.Sin(heading)}
	angle := dir.AngleBetween(geometry.Vector2D{X: 0, Y: 1})
	hue := 360 * (angle + math.Pi) / (2 * math.Pi)
	return colorful.Hsl(hue, 0.95, 0.7)
}

// Layout reports the drawing size and records it so Update can reconcile
// the world extent after the tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
