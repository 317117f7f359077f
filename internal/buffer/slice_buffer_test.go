package buffer

import (
	"testing"

	"github.com/bethropolis/shift/internal/types"
)

func TestNewSliceBufferFromString(t *testing.T) {
	sb := NewSliceBufferFromString("a\nb\nc\n")
	if got := sb.LineCount(); got != 4 {
		t.Fatalf("expected 4 lines (trailing newline yields empty last line), got %d", got)
	}
	if got := string(sb.Bytes()); got != "a\nb\nc\n" {
		t.Errorf("round trip mismatch: %q", got)
	}
}

func TestNewSliceBufferFromStringEmpty(t *testing.T) {
	sb := NewSliceBufferFromString("")
	if got := sb.LineCount(); got != 1 {
		t.Fatalf("empty buffer should hold one empty line, got %d", got)
	}
	if got := sb.Length(); got != 0 {
		t.Errorf("expected length 0, got %d", got)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"a\nb", 3},
		{"a\nb\nc\n", 6},
		{"héllo", 5}, // runes, not bytes
	}
	for _, tt := range tests {
		sb := NewSliceBufferFromString(tt.text)
		if got := sb.Length(); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestOffsetPositionRoundTrip(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncde\n\nf")
	for offset := 0; offset <= sb.Length(); offset++ {
		pos := sb.PositionForOffset(offset)
		back := sb.OffsetForPosition(pos)
		if back != offset {
			t.Errorf("offset %d -> %+v -> %d", offset, pos, back)
		}
	}
}

func TestOffsetForPositionCountsNewlines(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncde")
	if got := sb.OffsetForPosition(types.Position{Line: 1, Col: 0}); got != 3 {
		t.Errorf("expected offset 3 for start of line 1, got %d", got)
	}
	if got := sb.OffsetForPosition(types.Position{Line: 1, Col: 2}); got != 5 {
		t.Errorf("expected offset 5, got %d", got)
	}
}

func TestInsertSingleLine(t *testing.T) {
	sb := NewSliceBufferFromString("hello world")
	edit, err := sb.Insert(types.Position{Line: 0, Col: 5}, []byte(","))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "hello, world" {
		t.Errorf("got %q", got)
	}
	if edit.NewEnd != (types.Position{Line: 0, Col: 6}) {
		t.Errorf("unexpected NewEnd %+v", edit.NewEnd)
	}
	if !sb.IsModified() {
		t.Error("buffer should be modified")
	}
}

func TestInsertMultiLine(t *testing.T) {
	sb := NewSliceBufferFromString("ab")
	edit, err := sb.Insert(types.Position{Line: 0, Col: 1}, []byte("x\ny"))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "ax\nyb" {
		t.Errorf("got %q", got)
	}
	if edit.NewEnd != (types.Position{Line: 1, Col: 1}) {
		t.Errorf("unexpected NewEnd %+v", edit.NewEnd)
	}
}

func TestDeleteWithinLine(t *testing.T) {
	sb := NewSliceBufferFromString("hello world")
	_, err := sb.Delete(types.Position{Line: 0, Col: 5}, types.Position{Line: 0, Col: 11})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "hello" {
		t.Errorf("got %q", got)
	}
}

func TestDeleteAcrossLines(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncd\nef")
	_, err := sb.Delete(types.Position{Line: 0, Col: 1}, types.Position{Line: 2, Col: 1})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "af" {
		t.Errorf("got %q", got)
	}
}

func TestDeleteSwappedEndpoints(t *testing.T) {
	sb := NewSliceBufferFromString("abcdef")
	_, err := sb.Delete(types.Position{Line: 0, Col: 4}, types.Position{Line: 0, Col: 2})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := string(sb.Bytes()); got != "abef" {
		t.Errorf("endpoints should normalize, got %q", got)
	}
}

func TestTextRange(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncd\nef")
	tests := []struct {
		name       string
		start, end types.Position
		want       string
	}{
		{"within line", types.Position{Line: 1, Col: 0}, types.Position{Line: 1, Col: 2}, "cd"},
		{"across one boundary", types.Position{Line: 0, Col: 1}, types.Position{Line: 1, Col: 1}, "b\nc"},
		{"across two boundaries", types.Position{Line: 0, Col: 0}, types.Position{Line: 2, Col: 2}, "ab\ncd\nef"},
		{"empty", types.Position{Line: 1, Col: 1}, types.Position{Line: 1, Col: 1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sb.TextRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("TextRange failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextRangeDoesNotMutate(t *testing.T) {
	sb := NewSliceBufferFromString("ab\ncd")
	before := string(sb.Bytes())
	if _, err := sb.TextRange(types.Position{Line: 0, Col: 0}, types.Position{Line: 1, Col: 2}); err != nil {
		t.Fatalf("TextRange failed: %v", err)
	}
	if got := string(sb.Bytes()); got != before {
		t.Errorf("buffer changed: %q -> %q", before, got)
	}
	if sb.IsModified() {
		t.Error("read must not mark the buffer modified")
	}
}
