package core

import (
	"strings"
	"testing"
)

// grid joins rows the way Screen.String does.
func grid(rows ...string) string {
	return strings.Join(rows, "\n")
}

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if got, want := s.String(), grid("      ", "      "); got != want {
		t.Errorf("new screen = %q", got)
	}
	if c := s.GetCell(0, 0); !c.Blank() {
		t.Errorf("new cell = %+v", c)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "text clipped on the right",
			draw: func(s *Screen) { s.DrawText(3, 0, "rain") },
			want: grid("   rai", "      ", "      "),
		},
		{
			name: "out of bounds writes ignored",
			draw: func(s *Screen) {
				s.Set(-1, 0, 'x')
				s.Set(6, 1, 'x')
				s.Set(2, -1, 'x')
				s.Set(2, 3, 'x')
			},
			want: grid("      ", "      ", "      "),
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ok") },
			want: grid("      ", "  ok  ", "      "),
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '#') },
			want: grid("      ", " ###  ", " ###  "),
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 4, 3)) },
			want: grid("┌──┐  ", "│  │  ", "└──┘  "),
		},
		{
			name: "fill then clear",
			draw: func(s *Screen) {
				s.Fill('*')
				s.Clear()
				s.Set(5, 2, '!')
			},
			want: grid("      ", "      ", "     !"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenGetOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	s.Fill('#')
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		if r := s.Get(p[0], p[1]); r != ' ' {
			t.Errorf("Get(%d, %d) = %q", p[0], p[1], r)
		}
	}
	if row := s.Row(7); row != "   " {
		t.Errorf("Row(7) = %q", row)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 0, "drops")
	s.DrawText(0, 3, "gone")

	s.Resize(3, 2)
	if got := s.String(); got != grid("dro", "   ") {
		t.Errorf("after shrink:\n%s", got)
	}

	s.Resize(5, 3)
	if got := s.String(); got != grid("dro  ", "     ", "     ") {
		t.Errorf("after grow:\n%s", got)
	}
}

func TestScreenFade(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(0, 0, 'A', ColorBrand)
	s.SetCell(1, 0, Cell{Rune: 'B', Color: ColorBrand, Alpha: 20})

	s.Fade(0.2)

	a := s.GetCell(0, 0)
	if a.Rune != 'A' || a.Alpha != 204 {
		t.Errorf("after Fade(0.2) cell = %q alpha %d, expected 'A' alpha 204", a.Rune, a.Alpha)
	}
	if a.Color != ColorBrand {
		t.Errorf("Fade should keep color, got %v", a.Color)
	}

	// 20 * 0.8 = 16 is still visible, one more fade erases it
	s.Fade(0.2)
	if s.Get(1, 0) != ' ' {
		t.Errorf("faint cell should be erased, got %q", s.Get(1, 0))
	}

	// Fading many times always ends with an empty screen
	for range 40 {
		s.Fade(0.2)
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("screen should be empty after repeated fades, got %q", s.String())
	}
}

func TestScreenFadeZeroIsNoop(t *testing.T) {
	s := NewScreen(2, 1)
	s.Set(0, 0, 'X')
	s.Fade(0)
	if s.GetCell(0, 0).Alpha != AlphaOpaque {
		t.Errorf("Fade(0) changed alpha to %d", s.GetCell(0, 0).Alpha)
	}
}

func TestScreenBlit(t *testing.T) {
	src := NewScreen(3, 2)
	src.SetColored(0, 0, 'a', ColorAqua)
	src.SetColored(2, 1, 'b', ColorCoral)

	dst := NewScreen(6, 4)
	dst.Fill('.')
	dst.Blit(src, 2, 1)

	if c := dst.GetCell(2, 1); c.Rune != 'a' || c.Color != ColorAqua {
		t.Errorf("Blit cell (2,1) = %+v", c)
	}
	if c := dst.GetCell(4, 2); c.Rune != 'b' || c.Color != ColorCoral {
		t.Errorf("Blit cell (4,2) = %+v", c)
	}
	// Blank source cells leave the destination untouched
	if dst.Get(3, 1) != '.' {
		t.Errorf("Blit overwrote (3,1) with %q", dst.Get(3, 1))
	}

	dst.Blit(nil, 0, 0) // must not panic
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(1, 0, "héllo", ColorLeaf)

	if s.Get(2, 0) != 'é' || s.Get(5, 0) != 'o' {
		t.Errorf("multi-byte text misplaced: %q", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorLeaf {
		t.Errorf("expected ColorLeaf, got %v", s.GetCell(3, 0).Color)
	}
}

func TestScreenDrawMessage(t *testing.T) {
	s := NewScreen(20, 7)
	s.Fill('.')
	s.DrawMessage("PAUSED", "press p")

	// Box is 11 wide, 5 tall, centered
	if s.Get(4, 1) != '┌' || s.Get(14, 5) != '┘' {
		t.Errorf("box corners misplaced:\n%s", s.String())
	}
	if got := s.Row(2); got != "....│ PAUSED  │....." {
		t.Errorf("title row = %q", got)
	}
	if s.Get(6, 3) != ' ' {
		t.Error("box interior should be cleared")
	}
}
