// Command gen renders every activity in a hidden window, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/rasterlab"
	"github.com/go-theft-auto/rasterlab/backend/opengl"
	"github.com/go-theft-auto/rasterlab/internal/activity"
	"github.com/go-theft-auto/rasterlab/internal/capture"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// frames is how many frames to render before capturing; animated
// activities get longer so the satellites have moved off their start.
var frames = map[int]int{
	7: 90,
}

// namedWriter saves each capture under a stable name so regenerating
// overwrites the previous image.
type namedWriter struct {
	w *capture.Writer
}

func (n namedWriter) Save(number int, img image.Image) (string, error) {
	return n.w.SaveAs(fmt.Sprintf("activity%d", number), img)
}

func run() error {
	rasterlab.SetLogLevel(slog.LevelWarn)
	logger := rasterlab.NewLogger(os.Stderr)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	shots := namedWriter{w: capture.NewWriter(outDir, capture.JPEG)}

	open := func(spec rasterlab.WindowSpec) (rasterlab.Surface, rasterlab.Device, error) {
		win, err := opengl.Open(spec, opengl.WithVisible(false), opengl.WithVSync(false), opengl.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return win, win.Device(), nil
	}

	all := activity.All()
	for _, a := range all {
		n := 2
		if f, ok := frames[a.Number]; ok {
			n = f
		}
		runner := activity.NewRunner(open,
			activity.WithLogger(logger),
			activity.WithCapturer(shots),
			activity.WithFrameLimit(n),
			activity.WithCaptureAt(n),
		)
		if err := runner.Run(a); err != nil {
			return fmt.Errorf("capture activity %d: %w", a.Number, err)
		}
		fmt.Printf("  activity%d.jpg (%dx%d)\n", a.Number, a.Window.Width, a.Window.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(all), outDir)
	return nil
}
