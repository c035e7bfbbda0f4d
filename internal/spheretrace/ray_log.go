package spheretrace

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

type Category uint8

const (
	Hit         Category = iota // bounce hit a shape
	Miss                        // bounce hit nothing
	Reflect                     // ray reflected off a shape
	Degenerate                  // reflected direction was zero; previous direction kept
	BounceLimit                 // bounce budget exhausted
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Reflect:
		return "reflect"
	case Degenerate:
		return "degenerate"
	case BounceLimit:
		return "bounce_limit"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

type RayLog struct {
	Category  Category
	ShapeID   uint32  // shape involved, if any
	Origin    Vector3 // ray origin before the bounce
	Direction Vector3 // ray direction before the bounce
	Point     Vector3 // hit point, if any
	Bounce    int
}

const numCategories = int(BounceLimit) + 1

// RayLogCache counts events per category and keeps the first few events of
// each category as samples. Memory stays bounded however many rays are traced.
type RayLogCache struct {
	counts  [numCategories]atomic.Int64
	mu      sync.Mutex
	samples map[Category][]RayLog
	limit   int
}

var cache = newRayLogCache(RayLogSamples)

func newRayLogCache(limit int) *RayLogCache {
	return &RayLogCache{samples: make(map[Category][]RayLog), limit: limit}
}

func (c *RayLogCache) add(l RayLog) {
	n := c.counts[l.Category].Add(1)
	if n > int64(c.limit) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.samples[l.Category]) < c.limit {
		c.samples[l.Category] = append(c.samples[l.Category], l)
	}
}

// Counts returns the number of logged events per category (zero counts omitted).
func (c *RayLogCache) Counts() map[Category]int {
	out := make(map[Category]int, numCategories)
	for k := range c.counts {
		if n := c.counts[k].Load(); n > 0 {
			out[Category(k)] = int(n)
		}
	}
	return out
}

// Samples returns a copy of the stored events of one category.
func (c *RayLogCache) Samples(category Category) []RayLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RayLog(nil), c.samples[category]...)
}

func (c *RayLogCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.counts {
		c.counts[k].Store(0)
	}
	c.samples = make(map[Category][]RayLog)
}

func logRay(category Category, shapeID uint32, r Ray, point Vector3, bounce int) {
	cache.add(RayLog{
		Category:  category,
		ShapeID:   shapeID,
		Origin:    r.Origin,
		Direction: r.Direction,
		Point:     point,
		Bounce:    bounce,
	})
}

func raysStats(w io.Writer) {
	counts := cache.Counts()
	for k := Category(0); int(k) < numCategories; k++ {
		if n, ok := counts[k]; ok {
			fmt.Fprintf(w, "Ray event %s: %d logs\n", k, n)
		}
	}
}

func coverageStats(w io.Writer, p Real) {
	fmt.Fprintf(w, "Coverage: %.2f%% of primary rays hit a shape\n", p*100)
}
