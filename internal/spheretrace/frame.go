package spheretrace

import (
	"fmt"
	"image"
)

// Frame is a row-major RGBA buffer, 4 bytes per pixel.
type Frame struct {
	Width, Height int
	Pix           []byte
}

func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %dx%d", width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPx),
	}, nil
}

// Offset returns the index of the R byte of pixel (x, y).
func (f *Frame) Offset(x, y int) int { return (y*f.Width + x) * BytesPerPx }

func (f *Frame) Set(x, y int, c Color) {
	i := f.Offset(x, y)
	f.Pix[i+ChR] = c.R
	f.Pix[i+ChG] = c.G
	f.Pix[i+ChB] = c.B
	f.Pix[i+ChA] = c.A
}

func (f *Frame) At(x, y int) Color {
	i := f.Offset(x, y)
	return Color{R: f.Pix[i+ChR], G: f.Pix[i+ChG], B: f.Pix[i+ChB], A: f.Pix[i+ChA]}
}

// Image wraps the frame without copying; writes to one are visible in the other.
// Frame bytes are straight (non-premultiplied) alpha, hence NRGBA.
func (f *Frame) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    f.Pix,
		Stride: f.Width * BytesPerPx,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}
