package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-linedraw/internal/levels/formats"
	"github.com/vovakirdan/tui-linedraw/internal/shape"
)

// Validation error codes.
const (
	CodeBadSize         = "BAD_SIZE"
	CodeBadSpacing      = "BAD_SPACING"
	CodeGoalOutOfBounds = "GOAL_OUT_OF_BOUNDS"
	CodeCellOutOfBounds = "CELL_OUT_OF_BOUNDS"
	CodeBadLayout       = "BAD_LAYOUT"
	CodeBadStars        = "BAD_STARS"
	CodeDuplicateID     = "DUPLICATE_ID"
)

const (
	maxGridSide          = 256
	minInteractableCount = 2
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches validation errors by code, so errors.Is(err,
// ValidationError{Code: CodeBadSize}) works.
func (e ValidationError) Is(target error) bool {
	var v ValidationError
	if !errors.As(target, &v) {
		return false
	}
	return v.Code == e.Code
}

// Validate checks a parsed level for consistency.
// Checks:
//   - The grid has a sane size and positive spacing
//   - Holes and goals lie on the grid
//   - At least two dots can be traced
//   - Star thresholds are ordered
func Validate(l formats.Level) error {
	if l.Rows < 1 || l.Cols < 1 || l.Rows > maxGridSide || l.Cols > maxGridSide {
		return ValidationError{
			Code:    CodeBadSize,
			Message: fmt.Sprintf("grid is %dx%d, each side must be within 1..%d", l.Rows, l.Cols, maxGridSide),
		}
	}

	if l.CellSpacing <= 0 {
		return ValidationError{
			Code:    CodeBadSpacing,
			Message: fmt.Sprintf("cell spacing %g must be positive", l.CellSpacing),
		}
	}

	inBounds := func(c shape.Cell) bool {
		return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Cols
	}

	for _, h := range l.Holes {
		if !inBounds(h) {
			return ValidationError{
				Code:    CodeCellOutOfBounds,
				Message: fmt.Sprintf("hole %v is outside the %dx%d grid", h, l.Rows, l.Cols),
			}
		}
	}

	for _, g := range l.Goals {
		if !inBounds(g) {
			return ValidationError{
				Code:    CodeGoalOutOfBounds,
				Message: fmt.Sprintf("goal %v is outside the %dx%d grid", g, l.Rows, l.Cols),
			}
		}
	}

	if len(l.Interactable) < minInteractableCount {
		return ValidationError{
			Code:    CodeBadLayout,
			Message: fmt.Sprintf("level has %d dots, need at least %d", len(l.Interactable), minInteractableCount),
		}
	}

	if !l.Stars.Valid() {
		return ValidationError{
			Code:    CodeBadStars,
			Message: fmt.Sprintf("star thresholds three=%d two=%d must satisfy 0 <= three <= two", l.Stars.Three, l.Stars.Two),
		}
	}

	return nil
}
