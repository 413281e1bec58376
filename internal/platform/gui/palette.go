package gui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

// Sky and fallback colors.
var (
	skyTop    = mustHex("#1a1a2e")
	skyBottom = mustHex("#16213e")
	fallback  = colorful.Color{R: 1, G: 1, B: 1}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// palette converts core colors to image colors, caching parsed hex values.
// Not safe for concurrent use; ebiten calls Update and Draw on one goroutine.
type palette struct {
	parsed map[core.Color]colorful.Color
}

func newPalette() *palette {
	return &palette{parsed: make(map[core.Color]colorful.Color)}
}

// lookup parses c. Unparseable and default colors fall back to white.
func (p *palette) lookup(c core.Color) colorful.Color {
	if v, ok := p.parsed[c]; ok {
		return v
	}
	v, err := colorful.Hex(string(c))
	if err != nil {
		v = fallback
	}
	p.parsed[c] = v
	return v
}

// rgba returns c with the given opacity as a premultiplied color.
func (p *palette) rgba(c core.Color, alpha float64) color.RGBA {
	return premultiply(p.lookup(c), alpha)
}

// fade blends from c toward the sky as t goes from 0 to 1.
func (p *palette) fade(c core.Color, t float64) color.RGBA {
	return premultiply(p.lookup(c).BlendLab(skyBottom, core.ClampF(t, 0, 1)).Clamped(), 1)
}

// premultiply converts a colorful color to color.RGBA with alpha in [0,1].
func premultiply(c colorful.Color, alpha float64) color.RGBA {
	alpha = core.ClampF(alpha, 0, 1)
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}

// skyAt returns the background gradient color at a fraction of the height.
func skyAt(t float64) color.RGBA {
	return premultiply(skyTop.BlendRgb(skyBottom, core.ClampF(t, 0, 1)), 1)
}
