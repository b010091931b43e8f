package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move keyboard cursor up
	ActionDown             // S, Down arrow - move keyboard cursor down
	ActionLeft             // A, Left arrow - move keyboard cursor left
	ActionRight            // D, Right arrow - move keyboard cursor right
	ActionTrace            // Space - start or finish a keyboard trace
	ActionCancel           // Esc - drop the in-progress trace
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B - go back to the level picker
	ActionRestart          // R - reload the level
	ActionNextLevel        // N - advance once the level is complete
	ActionZoomIn           // +, wheel up
	ActionZoomOut          // -, wheel down
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTrace:
		return "Trace"
	case ActionCancel:
		return "Cancel"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind is the phase of a pointer gesture.
type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// String returns a human-readable name for the pointer phase.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse, touch or keyboard-cursor event in screen space.
// ID distinguishes concurrent pointers; the mouse and the keyboard cursor
// each use a fixed ID.
type PointerEvent struct {
	Kind PointerKind
	ID   int
	Pos  Vec2
}

// Pointer IDs used by the terminal front end.
const (
	PointerMouse  = 0
	PointerCursor = 1
)

// InputFrame collects the input delivered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointers holds pointer events in arrival order.
	Pointers []PointerEvent

	// Pan is the camera drag accumulated this frame, in screen cells.
	Pan Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(e PointerEvent) {
	f.Pointers = append(f.Pointers, e)
}

// AddPan accumulates a camera drag.
func (f *InputFrame) AddPan(d Vec2) {
	f.Pan = f.Pan.Add(d)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0 && f.Pan == (Vec2{})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
	f.Pan = Vec2{}
}
