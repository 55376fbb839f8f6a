package rasterlab

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyW
	KeyF12
	KeyCount
)

// Action is what happened to a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// KeyHandler receives key events while the surface polls events.
type KeyHandler func(key Key, action Action)

// InputState collects the key events of one frame.
// The runner feeds it from the surface's key callback and resets it after the
// active scene has looked at it.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
}

// Handle records a key event. It has the KeyHandler signature.
func (s *InputState) Handle(key Key, action Action) {
	if key < 0 || key >= KeyCount {
		return
	}
	switch action {
	case Press, Repeat:
		if !s.keyDown[key] {
			s.keyPressed[key] = true
		}
		s.keyDown[key] = true
	case Release:
		s.keyDown[key] = false
	}
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyName returns the name printed in key help.
func KeyName(k Key) string {
	switch k {
	case KeyEscape:
		return "ESC"
	case KeyW:
		return "W"
	case KeyF12:
		return "F12"
	default:
		return "?"
	}
}
