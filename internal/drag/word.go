// internal/drag/word.go
package drag

import (
	"fmt"

	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/event"
	"github.com/bethropolis/shift/internal/logger"
	"github.com/bethropolis/shift/internal/types"
	"github.com/bethropolis/shift/internal/word"
)

// DragWord transposes the word at or after the cursor with its neighbor,
// |deltaWords| times, keeping the cursor at the same distance from the end of
// "its" word. Punctuation and whitespace runs between words travel per the
// provider's boundary rules. The whole chain of transpositions is resolved
// against a snapshot first and applied as a single splice: if any step has no
// adjacent word the buffer stays untouched and the cursor keeps its place.
func (e *Engine) DragWord(buf buffer.Buffer, cursor types.Position, deltaWords int) (types.Position, error) {
	if deltaWords == 0 {
		return cursor, nil
	}
	dir := horizontalDirection(deltaWords)

	runes := []rune(string(buf.Bytes()))
	origin := buf.OffsetForPosition(cursor)

	cur, ok := e.words.WordAt(string(runes), origin)
	if !ok && deltaWords < 0 {
		// Cursor past the last word; dragging left acts on that word.
		cur, ok = e.words.WordBefore(string(runes), origin)
	}
	if !ok {
		return cursor, e.reject(&TranspositionError{Direction: dir})
	}

	// Distance from the cursor to the end of its word; restored at the end
	// so the cursor stays anchored inside the moved word.
	tailOffset := cur.End - origin

	reps := deltaWords
	if reps < 0 {
		reps = -reps
	}

	work := runes
	lo, hi := cur.Start, cur.End // overall touched range
	for i := 0; i < reps; i++ {
		if deltaWords > 0 {
			next, ok := e.words.WordAt(string(work), cur.End)
			if !ok {
				return cursor, e.reject(&TranspositionError{Direction: DirRight})
			}
			work, _, cur = swapSpans(work, cur, next)
			if next.End > hi {
				hi = next.End
			}
		} else {
			prev, ok := e.words.WordBefore(string(work), cur.Start)
			if !ok {
				return cursor, e.reject(&TranspositionError{Direction: DirLeft})
			}
			work, cur, _ = swapSpans(work, prev, cur)
			if prev.Start < lo {
				lo = prev.Start
			}
		}
	}

	// Commit the changed range as one splice. Transpositions preserve total
	// length, so [lo, hi) addresses the same extent in old and new text.
	delStart := buf.PositionForOffset(lo)
	delEnd := buf.PositionForOffset(hi)
	if _, err := buf.Delete(delStart, delEnd); err != nil {
		return cursor, fmt.Errorf("word drag delete failed: %w", err)
	}
	if _, err := buf.Insert(delStart, []byte(string(work[lo:hi]))); err != nil {
		return cursor, fmt.Errorf("word drag insert failed: %w", err)
	}

	newOffset := cur.End - tailOffset
	if newOffset < 0 {
		newOffset = 0
	}
	newCursor := buf.PositionForOffset(newOffset)

	logger.Debugf("Drag: moved word by %d", deltaWords)
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{
		Edit: types.EditInfo{Start: delStart, OldEnd: delEnd, NewEnd: delEnd},
	})
	return newCursor, nil
}

// swapSpans exchanges two non-overlapping spans (a strictly before b) in
// text, leaving the gap between them in place. Returns the new text and the
// new spans of the two words: newA is where a's word ended up (now on the
// right), newB where b's word ended up (now on the left).
func swapSpans(text []rune, a, b word.Span) (out []rune, newB, newA word.Span) {
	out = make([]rune, 0, len(text))
	out = append(out, text[:a.Start]...)
	out = append(out, text[b.Start:b.End]...)
	out = append(out, text[a.End:b.Start]...)
	out = append(out, text[a.Start:a.End]...)
	out = append(out, text[b.End:]...)

	newB = word.Span{Start: a.Start, End: a.Start + b.Len()}
	newA = word.Span{Start: b.End - a.Len(), End: b.End}
	return out, newB, newA
}
