package spheretrace

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA value. Alpha is carried through blending, never composited.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Blend mixes a sphere color over the previously accumulated one:
// c/3 + prev/3*2 on every channel, with 8-bit integer division.
func (c Color) Blend(prev Color) Color {
	return Color{
		R: blendCh(c.R, prev.R),
		G: blendCh(c.G, prev.G),
		B: blendCh(c.B, prev.B),
		A: blendCh(c.A, prev.A),
	}
}

// max result is 85 + 85*2 = 255, so it cannot overflow.
func blendCh(c, prev uint8) uint8 { return c/3 + prev/3*2 }

// Bytes returns the channels in R,G,B,A order.
func (c Color) Bytes() [4]byte { return [4]byte{c.R, c.G, c.B, c.A} }

// String formats the color as #rrggbbaa.
func (c Color) String() string { return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A) }

// UnmarshalJSON accepts either {"r":..,"g":..,"b":..,"a":..} or a hex string
// "#rrggbb" / "#rrggbbaa". A missing alpha in hex form means opaque.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseHexColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	type plain Color
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Color(p)
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xff)
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %v", s, err)
		}
		alpha = a
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}
