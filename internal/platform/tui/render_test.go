package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Distance", core.ColorHUD)
	s.DrawText(0, 1, "Actor", core.ColorActor)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d newlines, expected 2", got)
	}
	for _, want := range []string{"Distance", "Actor"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestStyleForCachesColors(t *testing.T) {
	const c = core.Color("#123456")
	first := styleFor(c)

	styleCache.RLock()
	_, ok := styleCache.styles[c]
	styleCache.RUnlock()
	if !ok {
		t.Fatal("style should be cached after first use")
	}

	if first.Render("x") != styleFor(c).Render("x") {
		t.Error("cached style should render identically")
	}
}
