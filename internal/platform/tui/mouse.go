package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

// MouseMapper turns terminal mouse messages into pointer events.
//
// The left button draws, the wheel zooms and a middle-button drag pans.
// A right click drops the current trace. Terminals deliver one pointer
// only, so pinch gestures never originate here.
type MouseMapper struct {
	drawing bool
	panning bool
	last    core.Vec2
}

// NewMouseMapper creates a mouse mapper with no buttons held.
func NewMouseMapper() *MouseMapper {
	return &MouseMapper{}
}

// MapMouse records the effect of msg in frame.
func (mm *MouseMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	pos := core.V(float64(msg.X), float64(msg.Y))

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			frame.Set(core.ActionZoomIn)
		case tea.MouseButtonWheelDown:
			frame.Set(core.ActionZoomOut)
		case tea.MouseButtonLeft:
			if mm.drawing {
				// Missed release; finish the old gesture first.
				frame.AddPointer(core.PointerEvent{Kind: core.PointerUp, ID: core.PointerMouse, Pos: mm.last})
			}
			mm.drawing = true
			frame.AddPointer(core.PointerEvent{Kind: core.PointerDown, ID: core.PointerMouse, Pos: pos})
		case tea.MouseButtonMiddle:
			mm.panning = true
		case tea.MouseButtonRight:
			frame.Set(core.ActionCancel)
			if mm.drawing {
				mm.drawing = false
				frame.AddPointer(core.PointerEvent{Kind: core.PointerCancel, ID: core.PointerMouse, Pos: pos})
			}
		}

	case tea.MouseActionMotion:
		switch {
		case mm.drawing:
			frame.AddPointer(core.PointerEvent{Kind: core.PointerMove, ID: core.PointerMouse, Pos: pos})
		case mm.panning:
			frame.AddPan(pos.Sub(mm.last))
		}

	case tea.MouseActionRelease:
		if mm.drawing {
			mm.drawing = false
			frame.AddPointer(core.PointerEvent{Kind: core.PointerUp, ID: core.PointerMouse, Pos: pos})
		}
		if mm.panning {
			mm.panning = false
			frame.AddPan(pos.Sub(mm.last))
		}
	}

	mm.last = pos
}

// Reset forgets held buttons, e.g. after switching levels.
func (mm *MouseMapper) Reset() {
	mm.drawing = false
	mm.panning = false
}
