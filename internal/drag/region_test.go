package drag

import (
	"errors"
	"testing"

	"github.com/bethropolis/shift/internal/buffer"
	"github.com/bethropolis/shift/internal/types"
)

func TestDragRegionRight(t *testing.T) {
	buf := buffer.NewSliceBufferFromString("hello world")
	e := New()
	sel := types.Selection{
		Anchor: types.Position{Line: 0, Col: 0},
		Extent: types.Position{Line: 0, Col: 5},
	}

	newSel, err := e.DragRegion(buf, sel, 1)
	if err != nil {
		t.Fatalf("DragRegion failed: %v", err)
	}
	if got := string(buf.Bytes()); got != " helloworld" {
		t.Errorf("got %q", got)
	}
	want := types.Selection{
		Anchor: types.Position{Line: 0, Col: 1},
		Extent: types.Position{Line: 0, Col: 6},
	}
	if newSel != want {
		t.Errorf("selection = %+v, want %+v", newSel, want)
	}
}

func TestDragRegionLeft(t *testing.T) {
	buf := buffer.NewSliceBufferFromString("ab cd")
	e := New()
	sel := types.Selection{
		Anchor: types.Position{Line: 0, Col: 3},
		Extent: types.Position{Line: 0, Col: 5},
	}

	newSel, err := e.DragRegion(buf, sel, -2)
	if err != nil {
		t.Fatalf("DragRegion failed: %v", err)
	}
	if got := string(buf.Bytes()); got != "acdb " {
		t.Errorf("got %q", got)
	}
	want := types.Selection{
		Anchor: types.Position{Line: 0, Col: 1},
		Extent: types.Position{Line: 0, Col: 3},
	}
	if newSel != want {
		t.Errorf("selection = %+v, want %+v", newSel, want)
	}
}

func TestDragRegionRoundTrip(t *testing.T) {
	text := "the quick brown fox"
	for _, delta := range []int{1, 3, -2} {
		buf := buffer.NewSliceBufferFromString(text)
		e := New()
		sel := types.Selection{
			Anchor: types.Position{Line: 0, Col: 4},
			Extent: types.Position{Line: 0, Col: 9},
		}

		moved, err := e.DragRegion(buf, sel, delta)
		if err != nil {
			t.Fatalf("delta %d failed: %v", delta, err)
		}
		back, err := e.DragRegion(buf, moved, -delta)
		if err != nil {
			t.Fatalf("inverse of %d failed: %v", delta, err)
		}
		if got := string(buf.Bytes()); got != text {
			t.Errorf("delta %d round trip: got %q", delta, got)
		}
		if back != sel {
			t.Errorf("delta %d selection round trip: %+v, want %+v", delta, back, sel)
		}
	}
}

func TestDragRegionReversedEndpointsKeepOrder(t *testing.T) {
	buf := buffer.NewSliceBufferFromString("hello world")
	e := New()
	sel := types.Selection{
		Anchor: types.Position{Line: 0, Col: 5},
		Extent: types.Position{Line: 0, Col: 0},
	}

	newSel, err := e.DragRegion(buf, sel, 2)
	if err != nil {
		t.Fatalf("DragRegion failed: %v", err)
	}
	if !newSel.Reversed() {
		t.Errorf("anchor/extent order should be preserved: %+v", newSel)
	}
	if newSel.Anchor.Col != 7 || newSel.Extent.Col != 2 {
		t.Errorf("selection = %+v", newSel)
	}
}

func TestDragRegionBoundary(t *testing.T) {
	e := New()

	t.Run("left at start", func(t *testing.T) {
		buf := buffer.NewSliceBufferFromString("abc def")
		sel := types.Selection{
			Anchor: types.Position{Line: 0, Col: 0},
			Extent: types.Position{Line: 0, Col: 3},
		}
		before := string(buf.Bytes())
		if _, err := e.DragRegion(buf, sel, -1); !errors.Is(err, ErrBoundary) {
			t.Fatalf("expected boundary error, got %v", err)
		}
		if got := string(buf.Bytes()); got != before {
			t.Errorf("buffer mutated on rejection")
		}
	})

	t.Run("right at end", func(t *testing.T) {
		buf := buffer.NewSliceBufferFromString("abc def")
		sel := types.Selection{
			Anchor: types.Position{Line: 0, Col: 4},
			Extent: types.Position{Line: 0, Col: 7},
		}
		before := string(buf.Bytes())
		if _, err := e.DragRegion(buf, sel, 1); !errors.Is(err, ErrBoundary) {
			t.Fatalf("expected boundary error, got %v", err)
		}
		if got := string(buf.Bytes()); got != before {
			t.Errorf("buffer mutated on rejection")
		}
	})
}

func TestDragRegionZeroDelta(t *testing.T) {
	buf := buffer.NewSliceBufferFromString("abc")
	e := New()
	sel := types.Selection{
		Anchor: types.Position{Line: 0, Col: 0},
		Extent: types.Position{Line: 0, Col: 1},
	}
	newSel, err := e.DragRegion(buf, sel, 0)
	if err != nil {
		t.Fatalf("zero delta failed: %v", err)
	}
	if newSel != sel {
		t.Errorf("selection changed: %+v", newSel)
	}
}
