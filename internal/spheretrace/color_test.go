package spheretrace

import (
	"encoding/json"
	"testing"
)

func TestBlendArithmetic(t *testing.T) {
	c := Color{201, 51, 9, 255}
	if got := c.Blend(Color{}); got != (Color{67, 17, 3, 85}) {
		t.Fatalf("blend over zero: %+v", got)
	}
	// first hit: previous is the sphere's own color
	if got := c.Blend(c); got != (Color{201, 51, 9, 255}) {
		t.Fatalf("self blend: %+v", got)
	}
	// truncation: 100/3 = 33, 200/3*2 = 132, 1/3 = 0
	if got := (Color{100, 200, 1, 2}).Blend(Color{100, 200, 1, 2}); got != (Color{99, 198, 0, 0}) {
		t.Fatalf("truncating self blend: %+v", got)
	}
	if got := (Color{0, 255, 0, 0}).Blend(Color{255, 0, 254, 5}); got != (Color{170, 85, 168, 2}) {
		t.Fatalf("mixed blend: %+v", got)
	}
	// never overflows
	if got := (Color{255, 255, 255, 255}).Blend(Color{255, 255, 255, 255}); got != (Color{255, 255, 255, 255}) {
		t.Fatalf("max blend: %+v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#e303bc")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{0xe3, 0x03, 0xbc, 0xff}) {
		t.Fatalf("hex parse: %+v", c)
	}
	c, err = ParseHexColor("#88b93980")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{0x88, 0xb9, 0x39, 0x80}) {
		t.Fatalf("hex parse with alpha: %+v", c)
	}
	if c.String() != "#88b93980" {
		t.Fatalf("String: %s", c)
	}
	if _, err := ParseHexColor("pink"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}

func TestColorJSON(t *testing.T) {
	var cs []Color
	if err := json.Unmarshal([]byte(`["#0352fc", {"r":3,"g":252,"b":31,"a":255}]`), &cs); err != nil {
		t.Fatal(err)
	}
	if cs[0] != (Color{0x03, 0x52, 0xfc, 0xff}) || cs[1] != (Color{3, 252, 31, 255}) {
		t.Fatalf("decoded colors: %+v", cs)
	}
	var bad Color
	if err := json.Unmarshal([]byte(`"#zz"`), &bad); err == nil {
		t.Fatal("expected error for bad hex")
	}
}
