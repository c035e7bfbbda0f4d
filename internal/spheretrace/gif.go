package spheretrace

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/pkg/errors"
)

// SaveAnimatedGIF renders `frames` frames, moving the camera by step between
// consecutive frames, and writes them as a looping GIF.
// delay is in 100ths of a second (e.g., 4 => 25 fps).
func SaveAnimatedGIF(ctx context.Context, scene *Scene, path string, width, height, frames, workers int, step Vector3, delay int) error {
	if frames <= 0 {
		return fmt.Errorf("gif needs at least one frame, got %d", frames)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, frames),
		Delay:     make([]int, 0, frames),
		LoopCount: 0,
	}
	bounds := image.Rect(0, 0, width, height)
	for k := 0; k < frames; k++ {
		if k%max(1, frames/100) == 0 { // ~1% steps
			percent := Real(k+1) * 100 / Real(frames)
			if Progress {
				fmt.Printf("[GIF] %.2f%%\n", percent)
			}
		}
		cam := scene.Camera.Moved(step.Mul(Real(k)))
		f, err := RenderParallel(ctx, scene.WithCamera(cam), width, height, workers)
		if err != nil {
			return errors.Wrapf(err, "gif frame %d", k)
		}
		pal := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(pal, bounds, f.Image(), image.Point{})
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create gif")
	}
	if err := gif.EncodeAll(file, out); err != nil {
		file.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return file.Close()
}
