package gui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/geometry-rush/internal/core"
	"github.com/vovakirdan/geometry-rush/internal/games/rush"
)

const (
	skyBands      = 16
	patternWidth  = 40 // world units per ground stripe
	cloudSpacing  = 300
	cloudRadius   = 24
	grassHeight   = 4
	glyphWidth    = 6 // ebitenutil debug font cell
	glyphHeight   = 16
	trailDotScale = 0.35
)

// painter draws snapshots with vector primitives.
type painter struct {
	colors   *palette
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newPainter() *painter {
	return &painter{colors: newPalette()}
}

// whiteSubImage is the source texture for filled paths.
func (p *painter) whiteSubImage() *ebiten.Image {
	if p.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		p.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return p.white
}

// draw paints the whole snapshot.
func (p *painter) draw(screen *ebiten.Image, snap rush.Snapshot, best int, paused bool) {
	p.drawSky(screen, snap)
	p.drawClouds(screen, snap)
	p.drawGround(screen, snap)
	for _, o := range snap.Obstacles {
		p.drawObstacle(screen, o)
	}
	p.drawActor(screen, snap.Actor)
	for _, pt := range snap.Particles {
		p.drawParticle(screen, pt)
	}
	p.drawHUD(screen, snap, best)

	switch {
	case snap.State == rush.StateIdle:
		drawMessage(screen, snap, "GEOMETRY RUSH", "Press SPACE or click to start")
	case snap.State == rush.StateOver:
		drawMessage(screen, snap, "GAME OVER", fmt.Sprintf("Distance: %dm  |  Press R to restart", snap.Score()))
	case paused:
		drawMessage(screen, snap, "PAUSED", "Press P to resume")
	}
}

func (p *painter) drawSky(screen *ebiten.Image, snap rush.Snapshot) {
	band := float32(snap.Ground / skyBands)
	for i := range skyBands {
		vector.DrawFilledRect(screen, 0, float32(i)*band, float32(snap.Width), band+1,
			skyAt(float64(i)/skyBands), false)
	}
}

func (p *painter) drawClouds(screen *ebiten.Image, snap rush.Snapshot) {
	clr := p.colors.rgba(core.ColorCloud, 0.25)
	offset := math.Mod(snap.CloudOffset, cloudSpacing)
	for x := -offset; x < snap.Width+cloudSpacing; x += cloudSpacing {
		cx, cy := float32(x+cloudSpacing/2), float32(snap.Height*0.15)
		vector.DrawFilledCircle(screen, cx, cy, cloudRadius, clr, true)
		vector.DrawFilledCircle(screen, cx+cloudRadius, cy+4, cloudRadius*0.8, clr, true)
		vector.DrawFilledCircle(screen, cx-cloudRadius, cy+6, cloudRadius*0.7, clr, true)
	}
}

func (p *painter) drawGround(screen *ebiten.Image, snap rush.Snapshot) {
	g := float32(snap.Ground)
	w := float32(snap.Width)
	vector.DrawFilledRect(screen, 0, g, w, float32(snap.Height)-g, p.colors.rgba(core.ColorGround, 1), false)
	vector.DrawFilledRect(screen, 0, g, w, grassHeight, p.colors.rgba(core.ColorGrass, 1), false)

	stripe := p.colors.fade(core.ColorGround, 0.3)
	offset := math.Mod(snap.BackgroundOffset, patternWidth)
	for x := -offset; x < snap.Width; x += patternWidth {
		vector.StrokeLine(screen, float32(x), g+grassHeight, float32(x)+patternWidth/2, float32(snap.Height),
			2, stripe, true)
	}
}

func (p *painter) drawObstacle(screen *ebiten.Image, o rush.Obstacle) {
	b := o.Bounds()
	clr := p.colors.rgba(o.Kind.Color, 1)
	if o.Kind.Shape == rush.ShapeTriangle {
		t := core.InscribedTriangle(b)
		p.fillPolygon(screen, []core.Vec{t.A, t.B, t.C}, clr)
		return
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1,
		p.colors.fade(o.Kind.Color, 0.4), true)
}

func (p *painter) drawActor(screen *ebiten.Image, pose rush.ActorPose) {
	b := pose.Bounds
	for i, pt := range pose.Trail {
		t := 1 - float64(i+1)/float64(len(pose.Trail)+1)
		r := float32(b.W * trailDotScale * (1 - t))
		vector.DrawFilledCircle(screen, float32(pt.X+b.W/2), float32(pt.Y+b.H/2), r,
			p.colors.fade(core.ColorActor, t), true)
	}

	c := b.Center()
	p.fillPolygon(screen, rotatedQuad(b, c, pose.Angle), p.colors.rgba(core.ColorActor, 1))
	// Inner glow square marks the spin.
	p.fillPolygon(screen, rotatedQuad(b.Inset(b.W/4), c, pose.Angle), p.colors.rgba(core.ColorGlow, 0.8))
}

// rotatedQuad returns the outline of r rotated about c, in winding order.
func rotatedQuad(r core.Rect, c core.Vec, angle float64) []core.Vec {
	sin, cos := math.Sincos(angle)
	k := r.Corners()
	outline := []core.Vec{k[0], k[1], k[3], k[2]}
	for i, pt := range outline {
		dx, dy := pt.X-c.X, pt.Y-c.Y
		outline[i] = core.Vec{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos}
	}
	return outline
}

func (p *painter) drawParticle(screen *ebiten.Image, pt rush.Particle) {
	clr := p.colors.rgba(pt.Color, pt.Alpha)
	if pt.Kind == rush.ParticleCircle {
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), float32(pt.Size/2), clr, true)
		return
	}
	half := pt.Size / 2
	vector.DrawFilledRect(screen, float32(pt.X-half), float32(pt.Y-half), float32(pt.Size), float32(pt.Size), clr, false)
}

func (p *painter) drawHUD(screen *ebiten.Image, snap rush.Snapshot, best int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Distance: %dm", snap.Score()), 10, 8)
	speed := fmt.Sprintf("Speed: %.1fx", snap.Speed)
	ebitenutil.DebugPrintAt(screen, speed, int(snap.Width)-len(speed)*glyphWidth-10, 8)
	if best > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %dm", best), 10, 8+glyphHeight)
	}
}

// drawMessage paints a centered two-line panel.
func drawMessage(screen *ebiten.Image, snap rush.Snapshot, title, subtitle string) {
	w := float32(max(len(title), len(subtitle))*glyphWidth + 40)
	h := float32(glyphHeight*3 + 20)
	x := (float32(snap.Width) - w) / 2
	y := (float32(snap.Height) - h) / 2

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{A: 200}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}, false)

	cx := int(snap.Width) / 2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*glyphWidth/2, int(y)+10)
	ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*glyphWidth/2, int(y)+10+glyphHeight*2)
}

// fillPolygon fills a convex polygon given in world units.
func (p *painter) fillPolygon(screen *ebiten.Image, pts []core.Vec, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range p.vertices {
		p.vertices[i].SrcX = 1
		p.vertices[i].SrcY = 1
		p.vertices[i].ColorR = r
		p.vertices[i].ColorG = g
		p.vertices[i].ColorB = b
		p.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	screen.DrawTriangles(p.vertices, p.indices, p.whiteSubImage(), op)
}
