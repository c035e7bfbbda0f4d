// Package present holds what the window and terminal front ends share:
// the render callback signature and a frame cache keyed by viewport size.
package present

import "fmt"

// RenderFunc draws a width x height viewport into a row-major RGBA buffer.
type RenderFunc func(width, height int) ([]byte, error)

// Cache keeps the last rendered frame and re-renders only when the
// requested viewport size changes.
type Cache struct {
	render        RenderFunc
	Width, Height int
	Pix           []byte
	Renders       int
}

func NewCache(render RenderFunc) *Cache { return &Cache{render: render} }

// Resize makes sure Pix holds a frame of the given size. It reports whether
// a new frame was rendered. Non-positive sizes are ignored.
func (c *Cache) Resize(width, height int) (bool, error) {
	if width <= 0 || height <= 0 {
		return false, nil
	}
	if c.Pix != nil && width == c.Width && height == c.Height {
		return false, nil
	}
	pix, err := c.render(width, height)
	if err != nil {
		return false, err
	}
	if len(pix) != width*height*4 {
		return false, fmt.Errorf("render returned %d bytes for %dx%d, want %d", len(pix), width, height, width*height*4)
	}
	c.Width, c.Height, c.Pix = width, height, pix
	c.Renders++
	return true, nil
}

// Sample returns the RGBA bytes of the pixel nearest to (u, v) in [0,1)^2.
func Sample(pix []byte, width, height int, u, v float64) (r, g, b, a uint8) {
	x := int(u * float64(width))
	y := int(v * float64(height))
	x = min(max(x, 0), width-1)
	y = min(max(y, 0), height-1)
	i := (y*width + x) * 4
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}

// Premultiply writes src, a straight-alpha RGBA buffer, into dst with color
// channels scaled by alpha, as GPU textures expect. dst is grown if needed
// and returned.
func Premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i] = uint8((uint32(src[i])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
	return dst
}
