package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
// Arrows, WASD and vim keys all steer the cursor.
var gameKeys = map[string]core.Action{
	"w": core.ActionUp, "up": core.ActionUp, "k": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown, "j": core.ActionDown,
	"a": core.ActionLeft, "left": core.ActionLeft, "h": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight, "l": core.ActionRight,

	" ":         core.ActionTrace,
	"space":     core.ActionTrace,
	"enter":     core.ActionConfirm,
	"esc":       core.ActionCancel,
	"backspace": core.ActionCancel,

	"b": core.ActionBack,
	"r": core.ActionRestart,
	"n": core.ActionNextLevel,

	"+": core.ActionZoomIn, "=": core.ActionZoomIn,
	"-": core.ActionZoomOut, "_": core.ActionZoomOut,
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: gameKeys}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return core.ActionQuit, true
	}
	return km.keys[key], false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
