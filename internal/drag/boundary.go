// internal/drag/boundary.go
package drag

// Boundary checks run strictly before any buffer write, so a rejected drag
// leaves the buffer byte-identical.
//
// The vertical tests operate on 1-based line numbers:
//
//	up:   legal iff line > |delta|
//	down: legal iff line + delta <= totalLines
//
// The up test is strictly greater. That rejects a drag one row earlier than a
// symmetric policy would in some configurations; the asymmetry is deliberate
// and locked by tests, do not "fix" it.

// checkVertical validates moving the whole-line slice [first, last] (0-based,
// inclusive) by delta lines within a buffer of totalLines lines. For upward
// drags the test applies to the slice's first line, for downward drags to its
// last line.
func checkVertical(first, last, delta, totalLines int) error {
	if delta < 0 {
		if first+1 <= -delta {
			return &BoundaryError{Direction: DirUp}
		}
	} else if delta > 0 {
		if last+1+delta > totalLines {
			return &BoundaryError{Direction: DirDown}
		}
	}
	return nil
}

// checkHorizontal validates moving a character range [startOffset, endOffset)
// by delta rune positions within a buffer of bufferLength runes. Leftward
// drags require room before the range start, rightward drags room after the
// range end.
func checkHorizontal(startOffset, endOffset, delta, bufferLength int) error {
	if delta < 0 && startOffset <= 0 {
		return &BoundaryError{Direction: DirLeft}
	}
	if delta > 0 && endOffset >= bufferLength {
		return &BoundaryError{Direction: DirRight}
	}
	return nil
}
