package core

import "strings"

// Key names a physical key using lower-case names such as "a", "left", "esc"
// or "ctrl+c". Platforms translate their native events into these names.
type Key string

// Well-known key names.
const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyEsc       Key = "esc"
	KeyEnter     Key = "enter"
	KeySpace     Key = "space"
	KeyBackspace Key = "backspace"
	KeyCtrlC     Key = "ctrl+c"
)

// NormalizeKey lower-cases a key name and maps common aliases.
func NormalizeKey(name string) Key {
	if name == " " {
		return KeySpace
	}
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "escape":
		return KeyEsc
	case "return":
		return KeyEnter
	}
	return Key(name)
}

// EventType distinguishes discrete window events.
type EventType int

const (
	EventNone    EventType = iota
	EventQuit              // Window closed, Ctrl+C, SSH session ended
	EventKeyDown           // A key was pressed (or auto-repeated)
	EventResize            // The terminal changed size
)

// Event is a single discrete input event returned by Window.PollEvents.
type Event struct {
	Type EventType
	Key  Key
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionCancel           // Escape, Q - leave the game
)

// MoveActions lists the actions sampled every fixed update.
var MoveActions = []Action{ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// KeyBindings maps each action to the keys that trigger it.
type KeyBindings map[Action][]Key

// DefaultBindings returns WASD plus arrows for movement and Esc/Q to leave.
func DefaultBindings() KeyBindings {
	return KeyBindings{
		ActionMoveLeft:  {"a", KeyLeft},
		ActionMoveRight: {"d", KeyRight},
		ActionMoveUp:    {"w", KeyUp},
		ActionMoveDown:  {"s", KeyDown},
		ActionCancel:    {KeyEsc, "q"},
	}
}

// Keys returns the keys bound to an action.
func (b KeyBindings) Keys(a Action) []Key {
	return b[a]
}

// Is reports whether key k is bound to action a.
func (b KeyBindings) Is(a Action, k Key) bool {
	for _, bound := range b[a] {
		if bound == k {
			return true
		}
	}
	return false
}

// InputFrame represents the sampled input state for a single fixed update tick.
type InputFrame struct {
	// Actions maps action types to whether they were held during this tick.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
