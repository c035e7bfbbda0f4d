// Package termview previews a frame in a true-colour terminal.
// Each cell shows two vertically stacked pixels using the upper half block.
package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lukaszgryglicki/spheretrace/internal/present"
)

const halfBlock = '▀'

// Run takes over the terminal and shows the frame scaled to fit until
// Esc, q or Ctrl-C is pressed.
func Run(pix []byte, width, height int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return loop(screen, pix, width, height)
}

func loop(screen tcell.Screen, pix []byte, width, height int) error {
	for {
		Draw(screen, pix, width, height)
		screen.Show()
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || (ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
	}
	return false
}

// Draw scales the frame onto the whole screen with nearest-neighbour sampling.
func Draw(screen tcell.Screen, pix []byte, width, height int) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return
	}
	sub := float64(rows * 2)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			u := (float64(col) + 0.5) / float64(cols)
			top := cellColor(pix, width, height, u, (float64(2*row)+0.5)/sub)
			bottom := cellColor(pix, width, height, u, (float64(2*row+1)+0.5)/sub)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func cellColor(pix []byte, width, height int, u, v float64) tcell.Color {
	r, g, b, _ := present.Sample(pix, width, height, u, v)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
