// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/shift/internal/types"
	"github.com/bethropolis/shift/internal/utils"
)

// SliceBuffer stores the buffer as a slice of lines without their trailing
// newlines. A buffer always holds at least one (possibly empty) line.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// NewSliceBufferFromString creates a buffer holding the given text. Useful
// for hosts that own the content and for tests.
func NewSliceBufferFromString(text string) *SliceBuffer {
	parts := bytes.Split([]byte(text), []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lineCopy := make([]byte, len(p))
		copy(lineCopy, p)
		lines[i] = lineCopy
	}
	if len(lines) == 0 {
		lines = [][]byte{[]byte("")}
	}
	return &SliceBuffer{lines: lines}
}

// Load reads a file into the buffer, replacing existing content.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.modified = false

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	return nil
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Length returns the total rune count including one rune per line boundary.
func (sb *SliceBuffer) Length() int {
	total := 0
	for _, line := range sb.lines {
		total += utf8.RuneCount(line)
	}
	total += len(sb.lines) - 1 // newlines
	return total
}

func (sb *SliceBuffer) Bytes() []byte {
	var buffer bytes.Buffer
	for i, line := range sb.lines {
		buffer.Write(line)
		if i < len(sb.lines)-1 {
			buffer.WriteByte('\n')
		}
	}
	return buffer.Bytes()
}

// Save writes the buffer content to the stored filePath.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Position arithmetic ---

// OffsetForPosition converts pos to an absolute rune offset. The position is
// clamped to valid buffer coordinates first.
func (sb *SliceBuffer) OffsetForPosition(pos types.Position) int {
	vPos, _ := sb.validatePosition(pos)
	offset := 0
	for i := 0; i < vPos.Line; i++ {
		offset += utf8.RuneCount(sb.lines[i]) + 1 // +1 for the newline
	}
	return offset + vPos.Col
}

// PositionForOffset converts an absolute rune offset back to a position.
// Offsets beyond the buffer end clamp to the end of the last line.
func (sb *SliceBuffer) PositionForOffset(offset int) types.Position {
	if offset < 0 {
		offset = 0
	}
	for i, line := range sb.lines {
		runes := utf8.RuneCount(line)
		if offset <= runes {
			return types.Position{Line: i, Col: offset}
		}
		offset -= runes + 1 // consume the newline too
	}
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

// --- Read operations ---

// TextRange returns a copy of the text in [start, end). Endpoints are
// normalized and clamped the same way Delete treats them.
func (sb *SliceBuffer) TextRange(start, end types.Position) ([]byte, error) {
	vStart, vEnd, startOffset, endOffset, err := sb.validateAndGetByteOffsets(start, end)
	if err != nil {
		return nil, fmt.Errorf("invalid range: %w", err)
	}

	var content bytes.Buffer
	if vStart.Line == vEnd.Line {
		line := sb.lines[vStart.Line]
		content.Write(line[startOffset:endOffset])
		return content.Bytes(), nil
	}

	content.Write(sb.lines[vStart.Line][startOffset:])
	for i := vStart.Line + 1; i < vEnd.Line; i++ {
		content.WriteByte('\n')
		content.Write(sb.lines[i])
	}
	content.WriteByte('\n')
	content.Write(sb.lines[vEnd.Line][:endOffset])
	return content.Bytes(), nil
}

// --- Modification operations ---

// Insert inserts text at a given position. Handles single and multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	if len(text) == 0 {
		return types.EditInfo{}, nil
	}

	validPos, byteOffset, err := sb.validatePositionWithOffset(pos)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid insert position: %w", err)
	}

	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	sb.lines[validPos.Line] = append(currentLine[:byteOffset], insertLines[0]...)

	edit := types.EditInfo{Start: validPos, OldEnd: validPos}

	if len(insertLines) > 1 {
		newLines := make([][]byte, len(insertLines)-1)
		for i := 1; i < len(insertLines); i++ {
			lineCopy := make([]byte, len(insertLines[i]))
			copy(lineCopy, insertLines[i])
			newLines[i-1] = lineCopy
		}
		lastLen := utf8.RuneCount(newLines[len(newLines)-1])
		newLines[len(newLines)-1] = append(newLines[len(newLines)-1], tail...)
		sb.lines = append(sb.lines[:validPos.Line+1], append(newLines, sb.lines[validPos.Line+1:]...)...)
		edit.NewEnd = types.Position{Line: validPos.Line + len(newLines), Col: lastLen}
	} else {
		sb.lines[validPos.Line] = append(sb.lines[validPos.Line], tail...)
		edit.NewEnd = types.Position{Line: validPos.Line, Col: validPos.Col + utf8.RuneCount(insertLines[0])}
	}

	return edit, nil
}

// Delete removes text within a given range (start inclusive, end exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	if start == end {
		return types.EditInfo{}, nil
	}

	vStart, vEnd, startOffset, endOffset, err := sb.validateAndGetByteOffsets(start, end)
	if err != nil {
		return types.EditInfo{}, fmt.Errorf("invalid delete range: %w", err)
	}
	if vStart == vEnd && startOffset == endOffset {
		return types.EditInfo{}, nil
	}

	sb.modified = true
	edit := types.EditInfo{Start: vStart, OldEnd: vEnd, NewEnd: vStart}

	startLineBytes := sb.lines[vStart.Line]

	if vStart.Line == vEnd.Line {
		// Deletion within a single line.
		sb.lines[vStart.Line] = append(startLineBytes[:startOffset], startLineBytes[endOffset:]...)
		return edit, nil
	}

	// Deletion spans multiple lines: keep the head of the start line and the
	// tail of the end line, then drop everything in between.
	endLineBytes := sb.lines[vEnd.Line]
	sb.lines[vStart.Line] = append(startLineBytes[:startOffset], endLineBytes[endOffset:]...)

	firstLineToRemove := vStart.Line + 1
	lastLineToRemove := vEnd.Line
	if lastLineToRemove+1 >= len(sb.lines) {
		sb.lines = sb.lines[:firstLineToRemove]
	} else {
		sb.lines = append(sb.lines[:firstLineToRemove], sb.lines[lastLineToRemove+1:]...)
	}

	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	return edit, nil
}

// --- Validation helpers ---

// validatePosition clamps pos to valid buffer coordinates.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, error) {
	vPos, _, err := sb.validatePositionWithOffset(pos)
	return vPos, err
}

// validatePositionWithOffset clamps pos and returns the byte offset of the
// resulting column within its line.
func (sb *SliceBuffer) validatePositionWithOffset(pos types.Position) (types.Position, int, error) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}

	line := sb.lines[pos.Line]
	col := pos.Col
	if col < 0 {
		col = 0
	}
	byteOffset := utils.RuneIndexToByteOffset(line, col)
	if byteOffset < 0 { // column past end of line
		col = utf8.RuneCount(line)
		byteOffset = len(line)
	}
	return types.Position{Line: pos.Line, Col: col}, byteOffset, nil
}

// validateAndGetByteOffsets normalizes start/end ordering, clamps both, and
// returns their byte offsets within their lines.
func (sb *SliceBuffer) validateAndGetByteOffsets(start, end types.Position) (vStart, vEnd types.Position, startOffset, endOffset int, err error) {
	if end.Before(start) {
		start, end = end, start
	}

	vStart, startOffset, err = sb.validatePositionWithOffset(start)
	if err != nil {
		return vStart, vEnd, 0, 0, err
	}
	vEnd, endOffset, err = sb.validatePositionWithOffset(end)
	if err != nil {
		return vStart, vEnd, 0, 0, err
	}

	// Clamping may have reordered offsets on a shared line.
	if vStart.Line == vEnd.Line && startOffset > endOffset {
		startOffset = endOffset
		vStart.Col = vEnd.Col
	}
	return vStart, vEnd, startOffset, endOffset, nil
}

// Ensure SliceBuffer satisfies the Buffer interface.
var _ Buffer = (*SliceBuffer)(nil)
