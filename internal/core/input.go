package core

import "slices"

// Action is a key-level intent, already decoupled from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up
	ActionDown           // S, Down
	ActionLeft           // A, Left
	ActionRight          // D, Right
	ActionConfirm        // Enter, Space
	ActionBack           // B, Esc
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionPad1           // 1..4 press a memory pad
	ActionPad2
	ActionPad3
	ActionPad4

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Confirm", "Back",
	"Restart", "Quit", "Pause", "Pad1", "Pad2", "Pad3", "Pad4",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// PadAction maps a 0-based pad index to its action, or ActionNone.
func PadAction(i int) Action {
	if i < 0 || i > 3 {
		return ActionNone
	}
	return ActionPad1 + Action(i)
}

// Pad reports the 0-based pad index of a pad action.
func (a Action) Pad() (int, bool) {
	if a < ActionPad1 || a > ActionPad4 {
		return 0, false
	}
	return int(a - ActionPad1), true
}

// Pointer is the latest pointer state in surface-relative pixels.
// Position persists between frames; Moved and Pressed are edge flags
// cleared after every tick.
type Pointer struct {
	X, Y    float64
	Inside  bool // pointer is over the surface
	Moved   bool // position changed since the last tick
	Pressed bool // primary button went down since the last tick
}

// InputFrame is everything the host collected for one tick: the actions
// pressed since the previous tick, in arrival order, and the latest pointer
// state. The zero value is an empty frame.
type InputFrame struct {
	actions uint32   // bit n set when Action(n) fired
	order   []Action // every press, repeats included
	Pointer Pointer
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a press of a for this tick. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.actions |= 1 << a
		f.order = append(f.order, a)
	}
}

// Actions returns this tick's presses in the order they arrived. Pressing
// the same key twice yields it twice.
func (f InputFrame) Actions() []Action {
	return f.order
}

// Has reports whether a fired this tick.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.actions&(1<<a) != 0
}

// MovePointer stores a new pointer position. Later calls overwrite earlier ones.
func (f *InputFrame) MovePointer(x, y float64) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Inside = true
	f.Pointer.Moved = true
}

// PressPointer records a primary button press at (x, y).
func (f *InputFrame) PressPointer(x, y float64) {
	f.MovePointer(x, y)
	f.Pointer.Pressed = true
}

// LeavePointer marks the pointer as off the surface.
func (f *InputFrame) LeavePointer() {
	f.Pointer.Inside = false
	f.Pointer.Moved = true
}

// Clear drops the actions and pointer edge flags after a tick. The pointer
// position survives.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.order = f.order[:0]
	f.Pointer.Moved = false
	f.Pointer.Pressed = false
}

// Clone returns an independent copy of f.
func (f InputFrame) Clone() InputFrame {
	f.order = slices.Clone(f.order)
	return f
}
