package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/rasterlab"
)

// Option configures Open.
type Option func(*windowConfig)

type windowConfig struct {
	major, minor int
	vsync        bool
	visible      bool
	logger       *slog.Logger
}

// WithContextVersion requests a specific OpenGL core profile version.
func WithContextVersion(major, minor int) Option {
	return func(c *windowConfig) { c.major, c.minor = major, minor }
}

// WithVSync enables or disables waiting for the display refresh on swap.
func WithVSync(enabled bool) Option {
	return func(c *windowConfig) { c.vsync = enabled }
}

// WithVisible controls whether the window is shown. Hidden windows are used
// for offscreen captures.
func WithVisible(visible bool) Option {
	return func(c *windowConfig) { c.visible = visible }
}

// WithLogger sets the logger used by the window and its device.
func WithLogger(logger *slog.Logger) Option {
	return func(c *windowConfig) { c.logger = logger }
}

// Window is a GLFW window with a current OpenGL context.
// It implements rasterlab.Surface.
type Window struct {
	window  *glfw.Window
	handler rasterlab.KeyHandler
	logger  *slog.Logger
}

// Open initializes GLFW, creates a window with a forward-compatible core
// profile context, makes it current and loads the GL entry points.
// The caller must be on the main OS thread.
func Open(spec rasterlab.WindowSpec, opts ...Option) (*Window, error) {
	cfg := windowConfig{major: 4, minor: 1, vsync: true, visible: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", spec.Width, spec.Height)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !cfg.visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(spec.Width, spec.Height, spec.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: window, logger: cfg.logger}
	window.SetKeyCallback(w.keyCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	cfg.logger.Debug("window opened",
		"title", spec.Title, "width", spec.Width, "height", spec.Height,
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)), "vsync", cfg.vsync)
	return w, nil
}

// Device returns a Device bound to this window's context.
func (w *Window) Device() *Device {
	return NewDevice(w.logger)
}

// ShouldClose reports whether the close flag is set.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

// SetKeyHandler sets the handler that receives every key event after the
// escape check.
func (w *Window) SetKeyHandler(h rasterlab.KeyHandler) {
	w.handler = h
}

// SwapBuffers presents the back buffer. With vsync on it blocks until the
// next display refresh.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending window events and runs the callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	a := glfwActionToAction(action)
	if k == rasterlab.KeyEscape && a == rasterlab.Press {
		win.SetShouldClose(true)
	}
	if k == rasterlab.KeyNone || w.handler == nil {
		return
	}
	w.handler(k, a)
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// glfwKeyToKey maps GLFW keys to launcher keys.
func glfwKeyToKey(key glfw.Key) rasterlab.Key {
	switch key {
	case glfw.KeyEscape:
		return rasterlab.KeyEscape
	case glfw.KeyW:
		return rasterlab.KeyW
	case glfw.KeyF12:
		return rasterlab.KeyF12
	default:
		return rasterlab.KeyNone
	}
}

func glfwActionToAction(action glfw.Action) rasterlab.Action {
	switch action {
	case glfw.Press:
		return rasterlab.Press
	case glfw.Repeat:
		return rasterlab.Repeat
	default:
		return rasterlab.Release
	}
}
