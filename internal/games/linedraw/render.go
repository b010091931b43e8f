package linedraw

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-linedraw/internal/core"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// Board glyphs.
const (
	glyphDot     = '·'
	glyphGoal    = '◇'
	glyphClaimed = '◆'
	glyphCursor  = '+'
	glyphStar    = "★"
	glyphNoStar  = "☆"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "No levels: "+g.loadErr.Error(), core.ColorReject)
		return
	}
	if g.ctrl == nil {
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorHighlight)
		dst.DrawTextCentered(dst.Height()/2+1, "Need "+strconv.Itoa(minScreenW)+"x"+strconv.Itoa(minScreenH), core.ColorGray)
		return
	}

	g.renderBoard(dst)
	g.renderHUD(dst)

	if g.completed {
		g.renderWinBanner(dst)
	}
}

func (g *Game) renderBoard(dst *core.Screen) {
	// Committed paths, newest flashing
	committed := g.tracker.Committed()
	for i, p := range committed {
		c := core.ColorCommitted
		if i == len(committed)-1 && g.commitFlash.active() {
			c = core.Fade(core.ColorHighlight, core.ColorCommitted, g.commitFlash.level)
		}
		g.drawPath(dst, p, c)
	}

	if g.rejected != nil {
		g.drawPath(dst, g.rejected, core.Fade(core.ColorReject, core.ColorDarkGray, g.rejectFlash.level))
	}

	// In-progress trace and its loose end
	if len(g.preview) > 0 {
		g.drawPath(dst, g.preview, core.ColorPreview)
		last := g.index.WorldPosition(g.preview[len(g.preview)-1])
		end := g.ctrl.End()
		if g.cursorTracing {
			end = g.index.WorldPosition(g.cursor)
		}
		if end != last {
			g.drawSegment(dst, last, end, core.ColorPreview)
		}
	}

	// Dots on top of lines
	for _, p := range g.index.Points() {
		if !p.Interactable && !p.Goal {
			continue
		}
		x, y := g.camera.ScreenCell(p.World)
		if !g.camera.Viewport().Contains(x, y) {
			continue
		}
		switch {
		case p.Goal && g.tracker.IsClaimed(p.Cell):
			dst.SetWithColor(x, y, glyphClaimed, core.ColorClaimed)
		case p.Goal:
			dst.SetWithColor(x, y, glyphGoal, core.ColorGoal)
		default:
			dst.SetWithColor(x, y, glyphDot, core.ColorDot)
		}
	}

	if !g.completed {
		x, y := g.camera.ScreenCell(g.index.WorldPosition(g.cursor))
		if g.camera.Viewport().Contains(x, y) {
			dst.SetWithColor(x, y, glyphCursor, core.ColorCursor)
		}
	}
}

func (g *Game) drawPath(dst *core.Screen, path shape.Shape, c core.Color) {
	for i := 1; i < len(path); i++ {
		g.drawSegment(dst, g.index.WorldPosition(path[i-1]), g.index.WorldPosition(path[i]), c)
	}
}

// drawSegment draws a world-space segment. The screen clips it.
func (g *Game) drawSegment(dst *core.Screen, a, b core.Vec2, c core.Color) {
	x0, y0 := g.camera.ScreenCell(a)
	x1, y1 := g.camera.ScreenCell(b)
	dst.DrawLine(x0, y0, x1, y1, c)
}

// renderHUD draws the status rows above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	for y := 0; y < hudHeight; y++ {
		for x := 0; x < w; x++ {
			dst.Set(x, y, ' ')
		}
	}

	st := g.State()
	hud := " " + g.level.Name +
		" (" + strconv.Itoa(g.levelIndex+1) + "/" + strconv.Itoa(len(g.levels)) + ")" +
		" | " + GoalsText(st.GoalsClaimed, st.Goals) +
		" | " + ShapesText(st.ShapesUsed, g.tracker.Thresholds().Three) +
		" | " + StarsText(st.Stars) +
		" | " + strconv.FormatFloat(g.camera.Zoom(), 'f', 1, 64) + "x"
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	for x := 0; x < w; x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}

	switch {
	case g.rejectFlash.active():
		dst.DrawTextWithColor(1, 2, g.message, core.Fade(core.ColorReject, core.ColorGray, g.rejectFlash.level))
	case g.commitFlash.active():
		dst.DrawTextWithColor(1, 2, g.message, core.Fade(core.ColorHighlight, core.ColorGray, g.commitFlash.level))
	default:
		controls := " Drag or Space: trace | Enter: finish | Esc: drop | +/-: zoom | R: reset | B: levels"
		dst.DrawTextWithColor(0, 2, controls, core.ColorGray)
	}

	for x := 0; x < w; x++ {
		dst.SetWithColor(x, 3, '─', core.ColorGray)
	}
}

func (g *Game) renderWinBanner(dst *core.Screen) {
	line1 := "Level complete!  " + StarsText(g.tracker.Stars())
	line2 := "N: next level | R: replay | B: levels"
	if g.levelIndex+1 >= len(g.levels) {
		line2 = "All levels complete | R: replay | B: levels"
	}

	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorHighlight)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorHighlight)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}

// GoalsText formats the goal counter shown in the HUD.
func GoalsText(claimed, total int) string {
	return "Goals: " + strconv.Itoa(claimed) + " / " + strconv.Itoa(total)
}

// ShapesText formats the shape counter against the three-star target.
func ShapesText(used, target int) string {
	return "Shapes: " + strconv.Itoa(used) + " / " + strconv.Itoa(target)
}

// StarsText renders a 1..3 rating as filled and empty stars.
func StarsText(stars int) string {
	stars = core.Clamp(stars, 0, 3)
	return strings.Repeat(glyphStar, stars) + strings.Repeat(glyphNoStar, 3-stars)
}
