package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/spheretrace/internal/spheretrace"
	"github.com/lukaszgryglicki/spheretrace/internal/termview"
	"github.com/lukaszgryglicki/spheretrace/internal/window"
)

func main() {
	os.Exit(runMain(os.Args, os.Stdout))
}

// runMain returns the process exit code so deferred cleanup (profile flush,
// signal handler) runs before main exits.
func runMain(args []string, out io.Writer) int {
	spheretrace.Debug = os.Getenv("DEBUG") != ""
	spheretrace.Progress = os.Getenv("QUIET") == ""
	spheretrace.PNG = os.Getenv("PNG") != ""
	spheretrace.GIF = os.Getenv("GIF") != ""
	spheretrace.RAW = os.Getenv("RAW") != ""
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		spheretrace.Workers = w
	}
	showWindow := os.Getenv("WINDOW") != ""
	showTerm := os.Getenv("TERM_PREVIEW") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return 1
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintf(out, "Error: %v\n", err)
			return 1
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := spheretrace.ConfigPath
	if len(args) > 1 {
		cfg = args[1]
	}
	if err := run(ctx, cfg, showWindow, showTerm); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg string, showWindow, showTerm bool) error {
	job, frame, err := spheretrace.Run(ctx, cfg)
	if err != nil {
		return err
	}
	switch {
	case showWindow:
		spheretrace.Progress = false
		return window.Run("Ray Tracing Demo", frame.Width, frame.Height, func(w, h int) ([]byte, error) {
			f, err := job.Render(ctx, w, h)
			if err != nil {
				return nil, err
			}
			return f.Pix, nil
		})
	case showTerm:
		return termview.Run(frame.Pix, frame.Width, frame.Height)
	}
	return nil
}
