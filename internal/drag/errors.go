// internal/drag/errors.go
package drag

import "errors"

// Direction of a drag, derived from the delta's sign.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Sentinel errors for errors.Is checks. Both rejection kinds are recoverable:
// the buffer and cursor/selection are guaranteed untouched.
var (
	// ErrBoundary marks a drag that would move content past the buffer
	// start or end.
	ErrBoundary = errors.New("drag boundary exceeded")

	// ErrTransposition marks a word drag with no adjacent word in the
	// requested direction.
	ErrTransposition = errors.New("word transposition failed")
)

// BoundaryError reports a drag refused at a buffer boundary.
type BoundaryError struct {
	Direction Direction
}

func (e *BoundaryError) Error() string {
	return "cannot move further " + e.Direction.String()
}

func (e *BoundaryError) Is(target error) bool {
	return target == ErrBoundary
}

// TranspositionError reports a word drag with nowhere to go.
type TranspositionError struct {
	Direction Direction
}

func (e *TranspositionError) Error() string {
	return "cannot move word further " + e.Direction.String()
}

func (e *TranspositionError) Is(target error) bool {
	return target == ErrTransposition
}

// horizontalDirection maps a character/word delta's sign to a direction.
func horizontalDirection(delta int) Direction {
	if delta < 0 {
		return DirLeft
	}
	return DirRight
}
