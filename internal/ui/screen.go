package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen with the Canvas interface.
type Screen struct {
	screen tcell.Screen
}

// WrapScreen adapts an initialized tcell screen.
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// NewSimulationScreen creates an in-memory screen of the given size for
// headless output.
func NewSimulationScreen(width, height int) (*Screen, error) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetSize(width, height)
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content. Writes outside the screen are dropped.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

func (s *Screen) inside(x, y int) bool {
	w, h := s.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}

// Rune returns the character at (x, y), or 0 outside the screen.
func (s *Screen) Rune(x, y int) rune {
	if !s.inside(x, y) {
		return 0
	}
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

// Style returns the style at (x, y).
func (s *Screen) Style(x, y int) tcell.Style {
	if !s.inside(x, y) {
		return tcell.StyleDefault
	}
	_, _, style, _ := s.screen.GetContent(x, y)
	return style
}

// String shows the buffer and returns it as lines with trailing blanks
// trimmed. Simulation screens are read back from their displayed cells.
func (s *Screen) String() string {
	s.Show()

	at := s.Rune
	width, height := s.Size()
	if sim, ok := s.screen.(tcell.SimulationScreen); ok {
		var cells []tcell.SimCell
		cells, width, height = sim.GetContents()
		at = func(x, y int) rune {
			if c := cells[y*width+x]; len(c.Runes) > 0 {
				return c.Runes[0]
			}
			return ' '
		}
	}

	var b strings.Builder
	row := make([]rune, width)
	for y := 0; y < height; y++ {
		for x := range row {
			row[x] = at(x, y)
		}
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
