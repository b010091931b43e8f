package trace

import (
	"errors"
	"fmt"
)

// Error is a recoverable trace failure. Errors compare by Code, so
// errors.Is(err, ErrNoTemplateMatch) holds for any wrapped copy.
type Error struct {
	Code    string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches trace errors by code.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Error codes.
const (
	CodeInvalidPath     = "INVALID_PATH"
	CodeNoTemplateMatch = "NO_TEMPLATE_MATCH"
	CodeOutOfBounds     = "OUT_OF_BOUNDS"
	CodePinchActive     = "PINCH_ACTIVE"
	CodeNoTrace         = "NO_TRACE"
)

var (
	// ErrInvalidPath: the trace has fewer than two cells, or began outside
	// the grid. No trace begins and nothing is committed.
	ErrInvalidPath = Error{Code: CodeInvalidPath, Message: "path is too short or starts outside the grid"}

	// ErrNoTemplateMatch: the finished trace is not a catalogue shape.
	ErrNoTemplateMatch = Error{Code: CodeNoTemplateMatch, Message: "path matches no permitted shape"}

	// ErrOutOfBounds: a position snaps to no lattice cell. The trace keeps
	// going with the raw position as its loose end.
	ErrOutOfBounds = Error{Code: CodeOutOfBounds, Message: "position is outside the grid"}

	// ErrPinchActive: a trace cannot begin while a pinch is in progress.
	ErrPinchActive = Error{Code: CodePinchActive, Message: "pinch zoom in progress"}

	// ErrNoTrace: the operation needs a trace in progress.
	ErrNoTrace = Error{Code: CodeNoTrace, Message: "no trace in progress"}
)
