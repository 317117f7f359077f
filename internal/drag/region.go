// internal/drag/region.go
package drag

import (
	"fmt"

	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/event"
	"github.com/bethropolis/shift/internal/logger"
	"github.com/bethropolis/shift/internal/types"
)

// DragRegion moves the selected character range left (negative delta) or
// right (positive delta) by |deltaChars| rune positions. No line-boundary
// widening occurs; selections spanning a newline are not supported and get no
// special handling. Afterwards the selection covers the moved text with its
// original anchor/extent order.
func (e *Engine) DragRegion(buf buffer.Buffer, sel types.Selection, deltaChars int) (types.Selection, error) {
	if deltaChars == 0 {
		return sel, nil
	}

	anchorOff := buf.OffsetForPosition(sel.Anchor)
	extentOff := buf.OffsetForPosition(sel.Extent)
	startOff, endOff := anchorOff, extentOff
	if startOff > endOff {
		startOff, endOff = endOff, startOff
	}

	if err := checkHorizontal(startOff, endOff, deltaChars, buf.Length()); err != nil {
		return sel, e.reject(err)
	}

	text, err := buf.TextRange(sel.Start(), sel.End())
	if err != nil {
		return sel, fmt.Errorf("region drag capture failed: %w", err)
	}

	if _, err := buf.Delete(sel.Start(), sel.End()); err != nil {
		return sel, fmt.Errorf("region drag delete failed: %w", err)
	}

	// Walk the write position delta characters from the deletion point,
	// clamped to the shortened buffer.
	target := startOff + deltaChars
	if target < 0 {
		target = 0
	}
	if l := buf.Length(); target > l {
		target = l
	}

	insertAt := buf.PositionForOffset(target)
	if _, err := buf.Insert(insertAt, text); err != nil {
		return sel, fmt.Errorf("region drag insert failed: %w", err)
	}

	// Re-establish the selection shifted by the applied delta, endpoints in
	// their original order.
	shift := target - startOff
	newSel := types.Selection{
		Anchor: buf.PositionForOffset(anchorOff + shift),
		Extent: buf.PositionForOffset(extentOff + shift),
	}

	// The affected range runs from the leftmost touched offset to the
	// rightmost; the move preserves total length, so old and new extents
	// coincide.
	loOff := startOff
	if target < loOff {
		loOff = target
	}
	hiOff := endOff
	if moved := target + (endOff - startOff); moved > hiOff {
		hiOff = moved
	}
	end := buf.PositionForOffset(hiOff)
	edit := types.EditInfo{
		Start:  buf.PositionForOffset(loOff),
		OldEnd: end,
		NewEnd: end,
	}

	logger.Debugf("Drag: moved region of %d runes by %d", endOff-startOff, shift)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	return newSel, nil
}
