// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/shift/internal/types"

// Buffer defines the interface for text buffer operations. Lines are
// delimited by a single newline; the newline counts as one rune in absolute
// offsets.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// Length returns the total rune count of the buffer, newlines included.
	Length() int
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
	// TextRange returns a copy of the text between start (inclusive) and end
	// (exclusive), with newlines for any line boundaries crossed.
	TextRange(start, end types.Position) ([]byte, error)
	// OffsetForPosition converts a (line, column) pair to an absolute rune
	// offset; PositionForOffset is the inverse.
	OffsetForPosition(pos types.Position) int
	PositionForOffset(offset int) types.Position
	Save(filePath string) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
}
