package spheretrace

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Render traces every pixel of a width x height viewport in row-major order.
func Render(scene *Scene, width, height int) (*Frame, error) {
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	renderRows(scene, f, 0, height)
	return f, nil
}

// renderRows fills rows [y0, y1). Pixels are independent, so disjoint row
// ranges can be rendered concurrently into the same frame.
func renderRows(scene *Scene, f *Frame, y0, y1 int) {
	cam := scene.Camera
	for y := y0; y < y1; y++ {
		for x := 0; x < f.Width; x++ {
			f.Set(x, y, TraceRay(scene, cam.PrimaryRay(x, y, f.Width, f.Height)))
		}
	}
}

// RenderParallel produces the same frame as Render, splitting rows across
// at most workers goroutines (runtime.NumCPU() when workers <= 0).
// Cancelling ctx stops handing out rows and returns ctx.Err().
func RenderParallel(ctx context.Context, scene *Scene, width, height, workers int) (*Frame, error) {
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imax(workers, 1)

	tasks := (height + rowsPerTask - 1) / rowsPerTask
	var done int64
	nextPrint := int64(imax(tasks/100, 1)) // ~1%

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for t := 0; t < tasks; t++ {
		if err := gctx.Err(); err != nil {
			break
		}
		y0 := t * rowsPerTask
		y1 := min(y0+rowsPerTask, height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRows(scene, f, y0, y1)
			n := atomic.AddInt64(&done, 1)
			if Progress && n%nextPrint == 0 {
				fmt.Printf("[PROGRESS] %.2f%%\n", Real(n)*100/Real(tasks))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	DebugLog("Rendered %dx%d frame with %d workers", width, height, workers)
	return f, nil
}
