package core

import (
	"strings"
	"testing"
)

// paint colors every cell of s with c, keeping the rune.
func paint(s *Screen, c Color) {
	for y := range s.Height() {
		for x := range s.Width() {
			s.SetColored(x, y, s.Get(x, y), c)
		}
	}
}

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"arena sized", 80, 24, 80, 24},
		{"negative clamps to zero", -3, -1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.w, tt.h)
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
			for y := range s.Height() {
				for x := range s.Width() {
					if c := s.GetCell(x, y); c != blankCell {
						t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
					}
				}
			}
		})
	}
}

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 2, 1, Cell{Rune: '@', Color: ColorBrightRed}},
		{"left of screen", -1, 0, blankCell},
		{"right of screen", 10, 0, blankCell},
		{"below screen", 0, 3, blankCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 3)
			s.SetColored(tt.x, tt.y, '@', ColorBrightRed)
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
			}
			if got := s.Get(tt.x, tt.y); got != tt.want.Rune {
				t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want.Rune)
			}
		})
	}
}

func TestSetUsesDefaultColor(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(1, 0, 'x', ColorOrange)
	s.Set(1, 0, 'y')

	if got := s.GetCell(1, 0); got != (Cell{Rune: 'y', Color: ColorDefault}) {
		t.Errorf("GetCell(1, 0) = %+v, expected uncolored 'y'", got)
	}
}

func TestFillAndClearDropColors(t *testing.T) {
	s := NewScreen(5, 3)
	paint(s, ColorGreen)

	s.Fill('#')
	for y := range 3 {
		for x := range 5 {
			if got := s.GetCell(x, y); got != (Cell{Rune: '#'}) {
				t.Fatalf("after Fill, GetCell(%d, %d) = %+v, expected uncolored '#'", x, y, got)
			}
		}
	}

	paint(s, ColorBlue)
	s.Clear()
	if got := s.String(); got != strings.Repeat("     \n", 2)+"     " {
		t.Errorf("after Clear, String() = %q, expected spaces", got)
	}
	if got := s.GetCell(4, 2); got != blankCell {
		t.Errorf("after Clear, GetCell(4, 2) = %+v, expected blank", got)
	}
}

func TestDrawTextColored(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		color Color
		row   string
	}{
		{"plain", 1, "P1", ColorDefault, " P1     "},
		{"colored", 0, "bomb", ColorYellow, "bomb    "},
		{"clipped right", 6, "P2 down", ColorMagenta, "      P2"},
		{"clipped left", -2, "xxok", ColorCyan, "ok      "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			if tt.color == ColorDefault {
				s.DrawText(tt.x, 0, tt.text)
			} else {
				s.DrawTextColored(tt.x, 0, tt.text, tt.color)
			}
			if got := s.Row(0); got != tt.row {
				t.Errorf("Row(0) = %q, expected %q", got, tt.row)
			}
			for x := range 8 {
				want := ColorDefault
				if tt.row[x] != ' ' {
					want = tt.color
				}
				if got := s.GetCell(x, 0).Color; got != want {
					t.Errorf("color at %d = %v, expected %v", x, got, want)
				}
			}
		})
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "P1 wins", ColorBrightWhite)

	// (20 - 7) / 2
	if got := s.Row(2); got != "      P1 wins       " {
		t.Errorf("Row(2) = %q, expected text starting at column 6", got)
	}
	if got := s.GetCell(6, 2); got != (Cell{Rune: 'P', Color: ColorBrightWhite}) {
		t.Errorf("GetCell(6, 2) = %+v, expected bright white 'P'", got)
	}
	if got := s.GetCell(5, 2); got != blankCell {
		t.Errorf("GetCell(5, 2) = %+v, expected blank", got)
	}
}

func TestDrawRectOverColors(t *testing.T) {
	s := NewScreen(6, 6)
	paint(s, ColorRed)
	s.DrawRect(NewRect(1, 1, 3, 2), ' ')

	for y := range 6 {
		for x := range 6 {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			want := ColorRed
			if inside {
				want = ColorDefault
			}
			if got := s.GetCell(x, y).Color; got != want {
				t.Errorf("color at (%d, %d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestStringIgnoresColors(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColored(0, 0, "AAAAA", ColorBrightRed)
	s.DrawText(0, 1, "BBBBB")
	s.DrawTextColored(0, 2, "CCCCC", ColorGray)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestResizeKeepsColoredCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "P1", ColorBrightBlue)
	s.DrawTextColored(0, 5, "P2", ColorBrightRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := s.GetCell(1, 0); got != (Cell{Rune: '1', Color: ColorBrightBlue}) {
		t.Errorf("after shrink, GetCell(1, 0) = %+v, expected bright blue '1'", got)
	}

	s.Resize(15, 8)
	if got := s.GetCell(0, 0); got != (Cell{Rune: 'P', Color: ColorBrightBlue}) {
		t.Errorf("after grow, GetCell(0, 0) = %+v, expected bright blue 'P'", got)
	}
	// Row 5 was cut by the shrink and comes back blank.
	if got := s.GetCell(0, 5); got != blankCell {
		t.Errorf("after grow, GetCell(0, 5) = %+v, expected blank", got)
	}
	if got := s.GetCell(14, 7); got != blankCell {
		t.Errorf("new cell GetCell(14, 7) = %+v, expected blank", got)
	}
}

func TestRow(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColored(1, 1, "ab", ColorCyan)

	tests := []struct {
		y    int
		want string
	}{
		{1, " ab   "},
		{0, "      "},
		{-1, "      "},
		{3, "      "},
	}
	for _, tt := range tests {
		if got := s.Row(tt.y); got != tt.want {
			t.Errorf("Row(%d) = %q, expected %q", tt.y, got, tt.want)
		}
	}
}
