package spheretrace

import (
	"context"
	"os"
	"time"
)

// Job is a loaded config plus the scene built from it.
type Job struct {
	Cfg   *Config
	Scene *Scene
}

func Load(cfgPath string) (*Job, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	scene, err := cfg.BuildScene()
	if err != nil {
		return nil, err
	}
	return &Job{Cfg: cfg, Scene: scene}, nil
}

func (j *Job) workers() int {
	if Workers > 0 {
		return Workers
	}
	return j.Cfg.Workers
}

// Render draws one frame at the given viewport size; it is the callback
// handed to the window and terminal front ends. In debug mode the ray log
// is reset first so it only describes this frame.
func (j *Job) Render(ctx context.Context, width, height int) (*Frame, error) {
	if Debug {
		cache.reset()
	}
	return RenderParallel(ctx, j.Scene, width, height, j.workers())
}

// Run loads the config, renders one frame at the configured size and saves
// the outputs selected by the PNG and GIF switches.
func Run(ctx context.Context, cfgPath string) (*Job, *Frame, error) {
	job, err := Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	cfg := job.Cfg

	if Debug {
		coverageStats(os.Stdout, estimateCoverage(job.Scene, cfg.Width, cfg.Height, ProbeRays))
	}
	start := time.Now()
	frame, err := job.Render(ctx, cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	DebugLog("Frame %dx%d, time: %s", cfg.Width, cfg.Height, time.Since(start))
	if Debug {
		raysStats(os.Stdout)
	}

	if PNG {
		if err := SavePNG(frame, cfg.PNGOut); err != nil {
			return nil, nil, err
		}
		DebugLog("Saved PNG: %s", cfg.PNGOut)
	}
	if RAW {
		if err := SaveRaw(frame, cfg.RAWOut); err != nil {
			return nil, nil, err
		}
		DebugLog("Saved RAW frame: %s", cfg.RAWOut)
	}
	if GIF {
		if err := SaveAnimatedGIF(ctx, job.Scene, cfg.GIFOut, cfg.Width, cfg.Height, cfg.Frames, job.workers(), cfg.FrameStep, cfg.GIFDelay); err != nil {
			return nil, nil, err
		}
		DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	}
	return job, frame, nil
}
