package activity

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/go-theft-auto/rasterlab"
)

// ErrSurface reports that the window or its context could not be created.
var ErrSurface = errors.New("surface unavailable")

// State is the lifecycle state of a runner.
type State int

const (
	Initializing State = iota
	Rendering
	TearingDown
	Closed
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Rendering:
		return "rendering"
	case TearingDown:
		return "tearing-down"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Opener creates the surface and device for an activity.
type Opener func(spec rasterlab.WindowSpec) (rasterlab.Surface, rasterlab.Device, error)

// Capturer stores a captured frame and returns where it went.
type Capturer interface {
	Save(activity int, img image.Image) (string, error)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithOutput sets where activity introductions are printed.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithCapturer enables F12 screenshots.
func WithCapturer(c Capturer) RunnerOption {
	return func(r *Runner) { r.capturer = c }
}

// WithFrameLimit closes the surface after n frames. Zero means no limit.
func WithFrameLimit(n int) RunnerOption {
	return func(r *Runner) { r.frameLimit = n }
}

// WithCaptureAt captures frame n (counting from 1) without a key press.
func WithCaptureAt(n int) RunnerOption {
	return func(r *Runner) { r.captureAt = n }
}

// Runner drives one activity through Initializing, Rendering, TearingDown and
// Closed. A Runner is single-use per Run call and not safe for concurrent use.
type Runner struct {
	open       Opener
	logger     *slog.Logger
	out        io.Writer
	capturer   Capturer
	frameLimit int
	captureAt  int

	state  State
	frames int
}

// NewRunner creates a runner that opens surfaces with open.
func NewRunner(open Opener, opts ...RunnerOption) *Runner {
	r := &Runner{
		open:   open,
		logger: slog.Default(),
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Frames returns how many frames the last Run presented.
func (r *Runner) Frames() int {
	return r.frames
}

func (r *Runner) setState(s State) {
	r.logger.Debug("activity state", "from", r.state, "to", s)
	r.state = s
}

// Run executes a until its surface is asked to close.
//
// A surface that cannot be opened ends the run immediately with an error
// wrapping ErrSurface; nothing else is allocated in that case.
func (r *Runner) Run(a Activity) error {
	r.state = Initializing
	r.frames = 0
	logger := r.logger.With("activity", a.Number)

	surface, dev, err := r.open(a.Window)
	if err != nil {
		logger.Error("failed to open window", "title", a.Window.Title, "error", err)
		r.setState(Closed)
		return fmt.Errorf("activity %d: %w: %w", a.Number, ErrSurface, err)
	}

	in := rasterlab.NewInputState()
	surface.SetKeyHandler(in.Handle)

	dev.SetClearColor(a.Clear)
	dev.SetDepthTest(a.Depth)

	scene := a.New()
	scene.Setup(dev)

	for _, line := range a.Intro {
		fmt.Fprintln(r.out, line)
	}
	if r.capturer != nil {
		fmt.Fprintf(r.out, "Press %s to save a screenshot.\n", rasterlab.KeyName(rasterlab.KeyF12))
	}
	fmt.Fprintf(r.out, "Press %s to close.\n", rasterlab.KeyName(rasterlab.KeyEscape))

	r.setState(Rendering)
	animator, _ := scene.(Animator)
	handler, _ := scene.(InputHandler)
	shoot := false

	for !surface.ShouldClose() {
		dev.Clear(a.Depth)
		dev.SetLineWidth(rasterlab.DefaultLineWidth)
		scene.Draw(dev)
		if animator != nil {
			animator.Advance()
		}
		r.frames++

		if shoot || (r.captureAt > 0 && r.frames == r.captureAt) {
			r.capture(dev, a.Number, logger)
			shoot = false
		}

		surface.SwapBuffers()
		in.Reset()
		surface.PollEvents()

		if handler != nil {
			handler.HandleInput(in)
		}
		if in.KeyPressed(rasterlab.KeyF12) && r.capturer != nil {
			shoot = true
		}
		if r.frameLimit > 0 && r.frames >= r.frameLimit {
			surface.SetShouldClose(true)
		}
	}

	r.setState(TearingDown)
	scene.Teardown()
	surface.Destroy()
	r.setState(Closed)

	logger.Info("activity closed", "frames", r.frames)
	return nil
}

func (r *Runner) capture(dev rasterlab.Device, number int, logger *slog.Logger) {
	if r.capturer == nil {
		return
	}
	img, err := dev.ReadPixels()
	if err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}
	path, err := r.capturer.Save(number, img)
	if err != nil {
		logger.Warn("screenshot failed", "error", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
	fmt.Fprintf(r.out, "Screenshot saved to %s\n", path)
}
