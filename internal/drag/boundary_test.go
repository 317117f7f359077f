package drag

import (
	"errors"
	"testing"
)

func TestCheckVerticalUp(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		delta       int
		total       int
		legal       bool
	}{
		{"second line up one", 1, 1, -1, 3, true},
		{"first line up one", 0, 0, -1, 3, false},
		{"third line up two", 2, 2, -2, 4, true},
		// The up test is strictly greater on 1-based line numbers:
		// line 2 may not move up by 2 even though clamping would stop at
		// the top anyway.
		{"second line up two", 1, 1, -2, 4, false},
		{"region start governs up", 1, 3, -1, 5, true},
		{"region start at top", 0, 2, -1, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkVertical(tt.first, tt.last, tt.delta, tt.total)
			if tt.legal && err != nil {
				t.Errorf("expected legal, got %v", err)
			}
			if !tt.legal {
				if !errors.Is(err, ErrBoundary) {
					t.Fatalf("expected boundary error, got %v", err)
				}
				var be *BoundaryError
				if !errors.As(err, &be) || be.Direction != DirUp {
					t.Errorf("expected up direction, got %v", err)
				}
			}
		})
	}
}

func TestCheckVerticalDown(t *testing.T) {
	tests := []struct {
		name        string
		first, last int
		delta       int
		total       int
		legal       bool
	}{
		{"first line down one", 0, 0, 1, 3, true},
		{"last line down one", 2, 2, 1, 3, false},
		{"second-to-last down one", 1, 1, 1, 3, true},
		{"first line down two of three", 0, 0, 2, 3, true},
		{"first line down three of three", 0, 0, 3, 3, false},
		{"region end governs down", 1, 2, 1, 4, true},
		{"region end at bottom", 1, 3, 1, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkVertical(tt.first, tt.last, tt.delta, tt.total)
			if tt.legal && err != nil {
				t.Errorf("expected legal, got %v", err)
			}
			if !tt.legal {
				var be *BoundaryError
				if !errors.As(err, &be) || be.Direction != DirDown {
					t.Errorf("expected down boundary error, got %v", err)
				}
			}
		})
	}
}

func TestCheckVerticalZeroDelta(t *testing.T) {
	if err := checkVertical(0, 0, 0, 1); err != nil {
		t.Errorf("zero delta is always legal, got %v", err)
	}
}

func TestCheckHorizontal(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		delta      int
		length     int
		legal      bool
		dir        Direction
	}{
		{"left with room", 1, 3, -1, 10, true, DirLeft},
		{"left at buffer start", 0, 2, -1, 10, false, DirLeft},
		{"right with room", 0, 2, 1, 10, true, DirRight},
		{"right at buffer end", 7, 10, 1, 10, false, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkHorizontal(tt.start, tt.end, tt.delta, tt.length)
			if tt.legal && err != nil {
				t.Errorf("expected legal, got %v", err)
			}
			if !tt.legal {
				var be *BoundaryError
				if !errors.As(err, &be) || be.Direction != tt.dir {
					t.Errorf("expected %v boundary error, got %v", tt.dir, err)
				}
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (&BoundaryError{Direction: DirUp}).Error(); got != "cannot move further up" {
		t.Errorf("got %q", got)
	}
	if got := (&TranspositionError{Direction: DirRight}).Error(); got != "cannot move word further right" {
		t.Errorf("got %q", got)
	}
}
