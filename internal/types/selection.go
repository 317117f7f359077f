// internal/types/selection.go
package types

// Selection is an active range delimited by two independently trackable
// endpoints. Anchor is where the selection started; Extent is the end that
// follows the cursor. The two may be in either order: callers must derive
// ordering through Start/End rather than assume Anchor <= Extent.
type Selection struct {
	Anchor Position
	Extent Position
}

// Start returns the lexicographically earlier endpoint.
func (s Selection) Start() Position {
	if s.Extent.Before(s.Anchor) {
		return s.Extent
	}
	return s.Anchor
}

// End returns the lexicographically later endpoint.
func (s Selection) End() Position {
	if s.Extent.Before(s.Anchor) {
		return s.Anchor
	}
	return s.Extent
}

// Reversed reports whether the extent lies before the anchor.
func (s Selection) Reversed() bool {
	return s.Extent.Before(s.Anchor)
}

// LineSpan returns the first and last line touched by the selection.
func (s Selection) LineSpan() (first, last int) {
	return s.Start().Line, s.End().Line
}

// ShiftLines returns a copy of the selection with both endpoints moved by
// deltaLines, columns unchanged. Each endpoint is walked independently since
// they may sit on different lines at different columns.
func (s Selection) ShiftLines(deltaLines int) Selection {
	return Selection{
		Anchor: Position{Line: s.Anchor.Line + deltaLines, Col: s.Anchor.Col},
		Extent: Position{Line: s.Extent.Line + deltaLines, Col: s.Extent.Col},
	}
}
