// Command rasterlab opens one of the numbered graphics activities in an
// OpenGL window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                 # provides Go + OpenGL/X11 headers
//	go run ./cmd/rasterlab/ 4    # run activity 4
//
// Settings are read from rasterlab.yml in the working directory, or from the
// file named by RASTERLAB_CONFIG. RASTERLAB_LOG overrides the log level.
package main

import (
	"os"
	"runtime"

	"golang.org/x/term"

	"github.com/go-theft-auto/rasterlab"
	"github.com/go-theft-auto/rasterlab/backend/opengl"
	"github.com/go-theft-auto/rasterlab/internal/activity"
	"github.com/go-theft-auto/rasterlab/internal/capture"
	"github.com/go-theft-auto/rasterlab/internal/config"
	"github.com/go-theft-auto/rasterlab/internal/launcher"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger, cfg := config.Setup(os.Stderr)

	open := func(spec rasterlab.WindowSpec) (rasterlab.Surface, rasterlab.Device, error) {
		win, err := opengl.Open(spec,
			opengl.WithContextVersion(cfg.GL.Major, cfg.GL.Minor),
			opengl.WithVSync(cfg.VSyncEnabled()),
			opengl.WithLogger(logger),
		)
		if err != nil {
			return nil, nil, err
		}
		return win, win.Device(), nil
	}

	runner := activity.NewRunner(open,
		activity.WithLogger(logger),
		activity.WithOutput(os.Stdout),
		activity.WithCapturer(capture.NewWriter(cfg.ScreenshotDir, cfg.Format())),
	)

	l := launcher.New(os.Stdout,
		func(a activity.Activity) error {
			a.Window = cfg.Window(a.Number, a.Window)
			return runner.Run(a)
		},
		launcher.WithErrorOutput(os.Stderr),
		launcher.WithStyle(term.IsTerminal(int(os.Stdout.Fd()))),
	)
	return l.Dispatch(args)
}
