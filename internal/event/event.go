// internal/event/event.go
package event

import "github.com/bethropolis/shift/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Drag lifecycle events. Begin fires before any mutation, End after the
	// operation finishes (whether or not it mutated). Hosts use these to
	// group undo records or suspend side effects.
	TypeDragBegin
	TypeDragEnd

	// TypeBufferModified fires after a successful splice, carrying the edit
	// extent for incremental re-processing.
	TypeBufferModified

	// TypeDragRejected fires when a drag is refused at a buffer boundary.
	// The attached message is suitable for display to the user.
	TypeDragRejected
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// DragBeginData describes the operation about to run.
type DragBeginData struct {
	Vertical bool
	Delta    int
}

// DragEndData mirrors DragBeginData plus whether the buffer changed.
type DragEndData struct {
	Vertical bool
	Delta    int
	Moved    bool
}

// BufferModifiedData carries the extent of a buffer change.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// DragRejectedData carries the user-facing rejection message.
type DragRejectedData struct {
	Message string
}
