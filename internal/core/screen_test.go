package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 8, 0},
		{"above", 0, -1},
		{"below", 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 3)
			s.SetColored(tc.x, tc.y, '#', ColorCyan)

			if got := s.GetCell(tc.x, tc.y); got != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", tc.x, tc.y, got)
			}
			if s.String() != NewScreen(8, 3).String() {
				t.Error("out-of-bounds write changed the buffer")
			}
		})
	}
}

func TestScreenTextPlacement(t *testing.T) {
	s := NewScreen(20, 3)

	// Scores near the right edge get clipped, not wrapped
	s.DrawText(17, 0, "CPU9")
	if s.Row(0)[17:] != "CPU" || s.Get(0, 1) != ' ' {
		t.Errorf("clipped row = %q", s.Row(0))
	}

	s.DrawTextCentered(1, "Wins!")
	if s.Get(7, 1) != 'W' || s.Get(11, 1) != '!' {
		t.Errorf("centered row = %q", s.Row(1))
	}

	s.DrawTextColored(2, 2, "42", ColorYellow)
	if c := s.GetCell(3, 2); c.Rune != '2' || c.Color != ColorYellow {
		t.Errorf("GetCell(3, 2) = %+v, expected yellow '2'", c)
	}
	if c := s.GetCell(1, 2); c.Color != ColorDefault {
		t.Errorf("neighbour cell color = %v, expected default", c.Color)
	}
}

func TestScreenOverlayBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawVLine(4, 0, 6, '│', ColorGray)

	box := NewRect(1, 1, 7, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	expected := []string{
		"    │     ",
		" ┌─────┐  ",
		" │     │  ",
		" │     │  ",
		" └─────┘  ",
		"    │     ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}

	// The box hides the net but keeps it outside
	if c := s.GetCell(4, 0); c.Color != ColorGray {
		t.Errorf("net cell color = %v, expected gray", c.Color)
	}
	if c := s.GetCell(4, 2); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell under box = %+v, expected blank", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "P1 3")
	s.DrawText(0, 8, "lost")

	s.Resize(6, 4)
	if s.Width() != 6 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 6x4", s.Width(), s.Height())
	}
	if s.Row(0) != "P1 3  " {
		t.Errorf("row 0 = %q after shrinking", s.Row(0))
	}

	s.Resize(12, 9)
	if s.Row(0) != "P1 3        " || s.Row(8) != "            " {
		t.Errorf("rows after growing: %q / %q", s.Row(0), s.Row(8))
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '●', ColorBrightWhite)
	s.Clear()

	if c := s.GetCell(1, 1); c != blank {
		t.Errorf("cell after Clear = %+v, expected blank", c)
	}
	if s.String() != "    \n    " {
		t.Errorf("String() = %q", s.String())
	}
}
