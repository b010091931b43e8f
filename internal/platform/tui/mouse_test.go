package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-linedraw/internal/core"
)

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestMouseDrag(t *testing.T) {
	mm := NewMouseMapper()
	frame := core.NewInputFrame()

	mm.MapMouse(mouse(3, 5, tea.MouseActionPress, tea.MouseButtonLeft), &frame)
	mm.MapMouse(mouse(4, 5, tea.MouseActionMotion, tea.MouseButtonLeft), &frame)
	mm.MapMouse(mouse(6, 6, tea.MouseActionRelease, tea.MouseButtonLeft), &frame)

	expected := []core.PointerEvent{
		{Kind: core.PointerDown, ID: core.PointerMouse, Pos: core.V(3, 5)},
		{Kind: core.PointerMove, ID: core.PointerMouse, Pos: core.V(4, 5)},
		{Kind: core.PointerUp, ID: core.PointerMouse, Pos: core.V(6, 6)},
	}
	if len(frame.Pointers) != len(expected) {
		t.Fatalf("got %d pointer events, expected %d", len(frame.Pointers), len(expected))
	}
	for i, e := range expected {
		if frame.Pointers[i] != e {
			t.Errorf("event %d = %+v, expected %+v", i, frame.Pointers[i], e)
		}
	}
}

func TestMouseMotionWithoutButton(t *testing.T) {
	mm := NewMouseMapper()
	frame := core.NewInputFrame()

	mm.MapMouse(mouse(1, 1, tea.MouseActionMotion, tea.MouseButtonNone), &frame)
	mm.MapMouse(mouse(1, 1, tea.MouseActionRelease, tea.MouseButtonNone), &frame)

	if !frame.Empty() {
		t.Errorf("hover produced input: %+v", frame)
	}
}

func TestMouseWheelZooms(t *testing.T) {
	mm := NewMouseMapper()
	frame := core.NewInputFrame()

	mm.MapMouse(mouse(0, 0, tea.MouseActionPress, tea.MouseButtonWheelUp), &frame)
	if !frame.Has(core.ActionZoomIn) {
		t.Error("wheel up did not zoom in")
	}
	mm.MapMouse(mouse(0, 0, tea.MouseActionPress, tea.MouseButtonWheelDown), &frame)
	if !frame.Has(core.ActionZoomOut) {
		t.Error("wheel down did not zoom out")
	}
	if len(frame.Pointers) != 0 {
		t.Errorf("wheel produced pointer events: %v", frame.Pointers)
	}
}

func TestMouseMiddlePans(t *testing.T) {
	mm := NewMouseMapper()
	frame := core.NewInputFrame()

	mm.MapMouse(mouse(10, 10, tea.MouseActionPress, tea.MouseButtonMiddle), &frame)
	mm.MapMouse(mouse(12, 9, tea.MouseActionMotion, tea.MouseButtonMiddle), &frame)
	mm.MapMouse(mouse(13, 9, tea.MouseActionRelease, tea.MouseButtonMiddle), &frame)

	if frame.Pan != core.V(3, -1) {
		t.Errorf("Pan = %v, expected (3,-1)", frame.Pan)
	}
	if len(frame.Pointers) != 0 {
		t.Errorf("pan produced pointer events: %v", frame.Pointers)
	}
}

func TestMouseRightCancels(t *testing.T) {
	mm := NewMouseMapper()
	frame := core.NewInputFrame()

	mm.MapMouse(mouse(2, 2, tea.MouseActionPress, tea.MouseButtonLeft), &frame)
	mm.MapMouse(mouse(2, 2, tea.MouseActionPress, tea.MouseButtonRight), &frame)

	if !frame.Has(core.ActionCancel) {
		t.Error("right click did not set ActionCancel")
	}
	last := frame.Pointers[len(frame.Pointers)-1]
	if last.Kind != core.PointerCancel {
		t.Errorf("last event = %v, expected cancel", last.Kind)
	}

	// The release after a cancel is not a second gesture end.
	frame.Clear()
	mm.MapMouse(mouse(2, 2, tea.MouseActionRelease, tea.MouseButtonLeft), &frame)
	if len(frame.Pointers) != 0 {
		t.Errorf("release after cancel produced %v", frame.Pointers)
	}
}
