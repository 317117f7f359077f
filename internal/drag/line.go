// internal/drag/line.go
package drag

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/event"
	"github.com/bethropolis/shift/internal/logger"
	"github.com/bethropolis/shift/internal/types"
)

// DragLine moves the line under the cursor up (negative delta) or down
// (positive delta) by |deltaLines| lines in one splice. The cursor keeps its
// column and rides the moved line.
func (e *Engine) DragLine(buf buffer.Buffer, cursor types.Position, deltaLines int) (types.Position, error) {
	if deltaLines == 0 {
		return cursor, nil
	}
	if err := checkVertical(cursor.Line, cursor.Line, deltaLines, buf.LineCount()); err != nil {
		return cursor, e.reject(err)
	}

	edit, err := moveLines(buf, cursor.Line, cursor.Line, deltaLines)
	if err != nil {
		return cursor, fmt.Errorf("line drag splice failed: %w", err)
	}

	newCursor := types.Position{Line: cursor.Line + deltaLines, Col: cursor.Col}
	logger.Debugf("Drag: moved line %d by %d", cursor.Line, deltaLines)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	return newCursor, nil
}

// DragRegionLines moves all lines spanned by the selection up or down by
// |deltaLines| lines. The selection is widened to whole-line boundaries for
// the splice; afterwards both endpoints are restored independently at their
// original columns, delta lines away, preserving anchor/extent order.
func (e *Engine) DragRegionLines(buf buffer.Buffer, sel types.Selection, deltaLines int) (types.Selection, error) {
	if deltaLines == 0 {
		return sel, nil
	}
	first, last := sel.LineSpan()
	if err := checkVertical(first, last, deltaLines, buf.LineCount()); err != nil {
		return sel, e.reject(err)
	}

	edit, err := moveLines(buf, first, last, deltaLines)
	if err != nil {
		return sel, fmt.Errorf("region drag splice failed: %w", err)
	}

	newSel := sel.ShiftLines(deltaLines)
	logger.Debugf("Drag: moved lines %d-%d by %d", first, last, deltaLines)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	return newSel, nil
}

// moveLines splices the whole-line slice [first, last] so that it starts at
// line first+delta. The splice removes the newline adjacent to the slice (the
// one before it when moving up, the one after it when moving down) rather
// than the slice's own, which keeps the buffer's total newline count
// invariant and avoids doubled or stray blank lines at the boundary.
// Legality must have been checked by the caller.
func moveLines(buf buffer.Buffer, first, last, delta int) (types.EditInfo, error) {
	lastLine, err := buf.Line(last)
	if err != nil {
		return types.EditInfo{}, err
	}
	lastLen := utf8.RuneCount(lastLine)

	// Capture the slice without a trailing newline; boundary newlines are
	// handled explicitly below.
	text, err := buf.TextRange(types.Position{Line: first, Col: 0}, types.Position{Line: last, Col: lastLen})
	if err != nil {
		return types.EditInfo{}, err
	}

	var top, bottom int // extent of the overall affected region
	var oldBottomLen int
	if delta < 0 {
		top, bottom = first+delta, last
		oldBottomLen = lastLen

		// Remove the slice together with the newline preceding it, merging
		// the line above into whatever follows the slice.
		prevLine, err := buf.Line(first - 1)
		if err != nil {
			return types.EditInfo{}, err
		}
		delStart := types.Position{Line: first - 1, Col: utf8.RuneCount(prevLine)}
		delEnd := types.Position{Line: last, Col: lastLen}
		if _, err := buf.Delete(delStart, delEnd); err != nil {
			return types.EditInfo{}, err
		}

		// Reinsert the slice, newline restored, at the start of the target
		// line |delta| rows above the original location.
		insertAt := types.Position{Line: top, Col: 0}
		if _, err := buf.Insert(insertAt, append(text, '\n')); err != nil {
			return types.EditInfo{}, err
		}
	} else {
		top, bottom = first, last+delta
		bottomLine, err := buf.Line(bottom)
		if err != nil {
			return types.EditInfo{}, err
		}
		oldBottomLen = utf8.RuneCount(bottomLine)

		// Remove the slice together with its trailing newline, merging the
		// following line upward.
		delStart := types.Position{Line: first, Col: 0}
		delEnd := types.Position{Line: last + 1, Col: 0}
		if _, err := buf.Delete(delStart, delEnd); err != nil {
			return types.EditInfo{}, err
		}

		// Reinsert at the end of the line delta rows below the original
		// location (indexes shifted up by the removal).
		targetLine := first + delta - 1
		lineBytes, err := buf.Line(targetLine)
		if err != nil {
			return types.EditInfo{}, err
		}
		insertAt := types.Position{Line: targetLine, Col: utf8.RuneCount(lineBytes)}
		if _, err := buf.Insert(insertAt, append([]byte{'\n'}, text...)); err != nil {
			return types.EditInfo{}, err
		}
	}

	newBottomLine, err := buf.Line(bottom)
	if err != nil {
		return types.EditInfo{}, err
	}
	return types.EditInfo{
		Start:  types.Position{Line: top, Col: 0},
		OldEnd: types.Position{Line: bottom, Col: oldBottomLen},
		NewEnd: types.Position{Line: bottom, Col: utf8.RuneCount(newBottomLine)},
	}, nil
}
