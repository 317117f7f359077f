// internal/drag/engine.go

// Package drag relocates spans of buffer text past adjacent content: whole
// lines and line-aligned regions vertically, character regions and words
// horizontally. Operations either fully complete their splice or fully abort
// before any write; a rejected drag leaves buffer, cursor and selection
// untouched and returns a recoverable error (ErrBoundary, ErrTransposition).
package drag

import (
	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/event"
	"github.com/bethropolis/shift/internal/logger"
	"github.com/bethropolis/shift/internal/types"
	"github.com/bethropolis/shift/internal/word"
)

// FormatGuard lets a host suspend auto-formatting and auto-indent side
// effects for the duration of a splice, keeping the move byte-exact. Suspend
// returns the function that restores the previous state.
type FormatGuard interface {
	Suspend() (resume func())
}

// Engine performs drag operations against a caller-supplied buffer. The
// engine itself holds no buffer state; every invocation derives what it
// needs from the arguments and the zero point is the configured collaborators.
type Engine struct {
	words  word.Provider
	events *event.Manager
	guard  FormatGuard
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider injects the word boundary provider used by word drags.
func WithProvider(p word.Provider) Option {
	return func(e *Engine) { e.words = p }
}

// WithEventManager attaches an event bus. The engine dispatches
// TypeDragBegin/TypeDragEnd around vertical drags, TypeBufferModified after
// every successful splice, and TypeDragRejected on boundary refusals.
func WithEventManager(m *event.Manager) Option {
	return func(e *Engine) { e.events = m }
}

// WithFormatGuard attaches a guard that is suspended around vertical splices.
func WithFormatGuard(g FormatGuard) Option {
	return func(e *Engine) { e.guard = g }
}

// New creates an Engine. Word drags default to Unicode word boundaries.
func New(opts ...Option) *Engine {
	e := &Engine{
		words: word.Unicode{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DragVertical routes a vertical drag: with an active selection the
// line-aligned region moves, otherwise the cursor's line. The mutation is
// wrapped by the begin/end lifecycle events (invoked unconditionally) and by
// the format guard. The returned selection is nil when sel was nil.
func (e *Engine) DragVertical(buf buffer.Buffer, cursor types.Position, sel *types.Selection, deltaLines int) (types.Position, *types.Selection, error) {
	if e.guard != nil {
		resume := e.guard.Suspend()
		defer resume()
	}

	e.dispatch(event.TypeDragBegin, event.DragBeginData{Vertical: true, Delta: deltaLines})
	moved := false
	defer func() {
		e.dispatch(event.TypeDragEnd, event.DragEndData{Vertical: true, Delta: deltaLines, Moved: moved})
	}()

	if sel != nil {
		newSel, err := e.DragRegionLines(buf, *sel, deltaLines)
		if err != nil {
			return cursor, sel, err
		}
		moved = true
		// The cursor rides the extent, like any selection-extending motion.
		return newSel.Extent, &newSel, nil
	}

	newCursor, err := e.DragLine(buf, cursor, deltaLines)
	if err != nil {
		return cursor, nil, err
	}
	moved = true
	return newCursor, nil, nil
}

// DragHorizontal routes a horizontal drag: with an active selection the
// character region moves by deltaChars, otherwise the word at the cursor
// moves by delta word positions.
func (e *Engine) DragHorizontal(buf buffer.Buffer, cursor types.Position, sel *types.Selection, delta int) (types.Position, *types.Selection, error) {
	if sel != nil {
		newSel, err := e.DragRegion(buf, *sel, delta)
		if err != nil {
			return cursor, sel, err
		}
		return newSel.Extent, &newSel, nil
	}

	newCursor, err := e.DragWord(buf, cursor, delta)
	if err != nil {
		return cursor, nil, err
	}
	return newCursor, nil, nil
}

// dispatch forwards to the event bus when one is attached.
func (e *Engine) dispatch(t event.Type, data interface{}) {
	if e.events != nil {
		e.events.Dispatch(t, data)
	}
}

// reject logs and publishes a refusal, then returns err for the caller to
// propagate. The buffer is untouched at this point.
func (e *Engine) reject(err error) error {
	logger.Debugf("Drag: rejected: %v", err)
	e.dispatch(event.TypeDragRejected, event.DragRejectedData{Message: err.Error()})
	return err
}
