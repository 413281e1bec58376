package rush

import (
	"fmt"
	"math"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

// Visual characters for rendering
const (
	ActorChar    = '█'
	TrailChar    = '·'
	RectChar     = '█'
	SpikeChar    = '▲'
	GrassChar    = '▀'
	GroundChar   = '▓'
	GroundAlt    = '░'
	CircleChar   = '•'
	SquareChar   = '▪'
	FadedChar    = '∙'
	patternWidth = 40 // world units per ground stripe pair
	cloudSpacing = 300
)

// rotationGlyphs mark the actor's spin, one per quarter turn.
var rotationGlyphs = [4]rune{'◢', '◣', '◤', '◥'}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / snap.Width,
		sy: float64(dst.Height()) / snap.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells returns the cell span covered by r; every visible box covers at least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.col(r.X), v.row(r.Y)
	x1 = max(x0+1, int(math.Round(r.Right()*v.sx)))
	y1 = max(y0+1, int(math.Round(r.Bottom()*v.sy)))
	return x0, y0, x1, y1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(g.sim.Snapshot(), dst)
}

// RenderSnapshot paints a snapshot onto a character screen.
func RenderSnapshot(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(snap, dst)

	drawClouds(dst, v, snap)
	drawGround(dst, v, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, v, o)
	}
	drawActor(dst, v, snap.Actor)
	for _, p := range snap.Particles {
		drawParticle(dst, v, p)
	}
	drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "GEOMETRY RUSH", "Space/Enter to start, Space to jump")
	case StateOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Distance: %dm  |  Press R to restart", snap.Score()))
	}
}

func drawClouds(dst *core.Screen, v viewport, snap Snapshot) {
	y := v.row(snap.Height * 0.2)
	span := snap.Width + cloudSpacing
	n := int(math.Ceil(snap.Width/cloudSpacing)) + 2
	for i := range n {
		x := math.Mod(float64(i)*cloudSpacing-snap.CloudOffset, span)
		dst.DrawText(v.col(x), y, "≈≈≈", core.ColorCloud)
		dst.DrawText(v.col(x+150), y+max(1, v.row(50)), "≈≈", core.ColorCloud)
	}
}

func drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	gy := v.row(snap.Ground)
	dst.DrawHLine(0, gy, dst.Width(), GrassChar, core.ColorGrass)
	for x := range dst.Width() {
		worldX := float64(x)/v.sx + snap.BackgroundOffset
		r := GroundAlt
		if math.Mod(worldX, patternWidth) < patternWidth/2 {
			r = GroundChar
		}
		for y := gy + 1; y < dst.Height(); y++ {
			dst.SetColored(x, y, r, core.ColorGround)
		}
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	box := o.Bounds()
	x0, y0, x1, y1 := v.cells(box)
	if o.Kind.Shape != ShapeTriangle {
		dst.FillRect(x0, y0, x1, y1, RectChar, o.Kind.Color)
		return
	}

	tri := core.InscribedTriangle(box)
	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := core.Vec{X: (float64(x) + 0.5) / v.sx, Y: (float64(y) + 0.5) / v.sy}
			if tri.Contains(center) {
				dst.SetColored(x, y, SpikeChar, o.Kind.Color)
				drawn = true
			}
		}
	}
	if !drawn {
		// Too small for the grid: mark the base center.
		dst.SetColored((x0+x1)/2, y1-1, SpikeChar, o.Kind.Color)
	}
}

func drawActor(dst *core.Screen, v viewport, pose ActorPose) {
	for i, p := range pose.Trail {
		if i == len(pose.Trail)-1 {
			break
		}
		c := core.NewRect(p.X, p.Y, pose.Bounds.W, pose.Bounds.H).Center()
		dst.SetColored(v.col(c.X), v.row(c.Y), TrailChar, core.ColorGlow)
	}

	x0, y0, x1, y1 := v.cells(pose.Bounds)
	dst.FillRect(x0, y0, x1, y1, ActorChar, core.ColorActor)
	if !pose.Grounded {
		quarter := int(pose.Angle/quarterTurn) % len(rotationGlyphs)
		c := pose.Bounds.Center()
		dst.SetColored(v.col(c.X), v.row(c.Y), rotationGlyphs[quarter], core.ColorHUD)
	}
}

func drawParticle(dst *core.Screen, v viewport, p Particle) {
	r := CircleChar
	if p.Kind == ParticleSquare {
		r = SquareChar
	}
	if p.Alpha < 0.3 {
		r = FadedChar
	}
	dst.SetColored(v.col(p.X), v.row(p.Y), r, p.Color)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %dm ", snap.Score()), core.ColorHUD)
	speed := fmt.Sprintf(" Speed: %.1fx ", snap.Speed)
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorHUD)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorActor)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorHUD)
}
