// Package window shows rendered frames in a resizable desktop window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/spheretrace/internal/present"
)

// Run opens a window of the given size and blocks until it closes.
// Every time the window size changes the frame is rendered again at the new size.
func Run(title string, width, height int, render present.RenderFunc) error {
	g := &game{cache: present.NewCache(render)}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	cache *present.Cache
	w, h  int
	img   *ebiten.Image
	buf   []byte // premultiplied copy of the cached frame
	stale bool
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	fresh, err := g.cache.Resize(g.w, g.h)
	if err != nil {
		return err
	}
	if fresh {
		g.stale = true
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.cache
	if c.Pix == nil {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != c.Width || g.img.Bounds().Dy() != c.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(c.Width, c.Height)
		g.stale = true
	}
	if g.stale {
		g.buf = present.Premultiply(g.buf, c.Pix)
		g.img.WritePixels(g.buf)
		g.stale = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
