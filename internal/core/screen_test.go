package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}

	// All cells should start as uncolored spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, want blank", x, y, cell)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, '#', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell(4,2) = %+v, want {#, red}", cell)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'A', ColorCyan)

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("after resize: %dx%d, want 20x10", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 2)
	if cell.Rune != 'A' || cell.Color != ColorCyan {
		t.Errorf("content not preserved: %+v", cell)
	}
}

func TestResizeShrink(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(9, 4, 'Z')

	s.Resize(5, 3)

	// Accessing the old location must be safe and blank
	if got := s.Get(9, 4); got != ' ' {
		t.Errorf("Get(9,4) after shrink = %q, want space", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText failed: row = %q", s.Row(1))
	}
}

func TestDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "long")

	if got := s.Row(0); got != "   lo" {
		t.Errorf("Row(0) = %q, want %q", got, "   lo")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "ab", ColorGreen)

	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(1, 0).Color != ColorGreen {
		t.Error("DrawTextColored did not apply color")
	}
	if s.GetCell(2, 0).Color != ColorDefault {
		t.Error("DrawTextColored colored past text end")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(5); got != strings.Repeat(" ", 4) {
		t.Errorf("Row(5) = %q, want 4 spaces", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
}

func TestClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, 'X', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear left cell %+v", cell)
	}
}
