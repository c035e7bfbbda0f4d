package present

import (
	"bytes"
	"errors"
	"testing"
)

func solid(width, height int) ([]byte, error) {
	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = byte(i)
	}
	return pix, nil
}

func TestCacheRendersOnlyOnResize(t *testing.T) {
	calls := 0
	c := NewCache(func(w, h int) ([]byte, error) {
		calls++
		return solid(w, h)
	})
	if fresh, err := c.Resize(0, 10); fresh || err != nil || calls != 0 {
		t.Fatalf("zero size must be ignored: fresh=%v err=%v calls=%d", fresh, err, calls)
	}
	if fresh, err := c.Resize(4, 3); !fresh || err != nil {
		t.Fatalf("first resize: fresh=%v err=%v", fresh, err)
	}
	if fresh, _ := c.Resize(4, 3); fresh {
		t.Fatal("same size must not re-render")
	}
	if fresh, _ := c.Resize(5, 3); !fresh {
		t.Fatal("new size must re-render")
	}
	if calls != 2 || c.Renders != 2 || c.Width != 5 || c.Height != 3 || len(c.Pix) != 60 {
		t.Fatalf("cache state: calls=%d %+v", calls, c)
	}
}

func TestCacheRejectsBadFrames(t *testing.T) {
	c := NewCache(func(w, h int) ([]byte, error) { return make([]byte, 3), nil })
	if _, err := c.Resize(2, 2); err == nil {
		t.Fatal("expected error for short buffer")
	}
	boom := errors.New("boom")
	c = NewCache(func(w, h int) ([]byte, error) { return nil, boom })
	if _, err := c.Resize(2, 2); !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if c.Pix != nil {
		t.Fatal("failed render must not replace the frame")
	}
}

func TestSample(t *testing.T) {
	pix, _ := solid(2, 2)
	if r, _, _, a := Sample(pix, 2, 2, 0.75, 0.75); r != 12 || a != 15 {
		t.Fatalf("bottom-right sample: r=%d a=%d", r, a)
	}
	// out of range clamps to the edge
	if r, _, _, _ := Sample(pix, 2, 2, -1, 5); r != 8 {
		t.Fatalf("clamped sample: r=%d", r)
	}
}

func TestPremultiply(t *testing.T) {
	src := []byte{
		201, 51, 9, 126,
		10, 20, 30, 255,
		200, 100, 50, 0,
	}
	want := []byte{
		99, 25, 4, 126,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	got := Premultiply(nil, src)
	if !bytes.Equal(got, want) {
		t.Fatalf("premultiplied %v, want %v", got, want)
	}
	if src[0] != 201 {
		t.Fatal("source modified")
	}
	// reuses a large enough buffer
	buf := make([]byte, 0, 64)
	if out := Premultiply(buf, src); &out[0] != &buf[:1][0] || len(out) != len(src) {
		t.Fatal("buffer not reused")
	}
}
