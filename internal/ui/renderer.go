// Package ui draws a character view of a battle for debugging and the
// headless driver.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/world"
)

// Glyphs used on the board.
const (
	GlyphEmpty      = '.'
	GlyphForest     = '"'
	GlyphRocks      = '^'
	GlyphMoveable   = '+'
	GlyphPath       = '*'
	GlyphAttackable = 'x'
	GlyphSelected   = '@'
)

// Renderer handles drawing a session to a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// statusWidth is the minimum canvas width reserved for the status line.
const statusWidth = 48

// BoardSize returns the canvas size needed for a grid of the given radius,
// including the status line.
func BoardSize(radius int) (width, height int) {
	return max(4*radius+1, statusWidth), 2*radius + 2
}

// Radius returns the radius of the smallest hexagon holding every cell of w.
func Radius(w *world.World) int {
	radius := 0
	for _, c := range w.Cells() {
		if d := hex.Distance(hex.Zero(), c); d > radius {
			radius = d
		}
	}
	return radius
}

// Position returns the canvas coordinates of c on a board of the given radius.
// Rows are offset by half a cell so neighbours stay adjacent.
func Position(c hex.Cell, radius int) (x, y int) {
	return 2*c.Q() + c.R() + 2*radius, c.R() + radius
}

// Render draws the board and a status line for s.
func (r *Renderer) Render(s *game.Session) {
	r.canvas.Clear()

	w := s.World()
	radius := Radius(w)

	path := make(map[hex.Cell]bool)
	for _, c := range s.CurrentPath() {
		path[c] = true
	}
	selected, hasSelection := s.State().(game.Selected)
	players := s.Players()

	for _, f := range s.Fields() {
		glyph, style := rune(GlyphEmpty), tcell.StyleDefault.Foreground(tcell.ColorGray)

		for _, id := range w.EntitiesAt(f.Cell) {
			t, ok := w.Terrain(id)
			if !ok {
				continue
			}
			switch t {
			case world.TerrainForest:
				glyph, style = GlyphForest, tcell.StyleDefault.Foreground(tcell.ColorGreen)
			case world.TerrainRocks:
				glyph, style = GlyphRocks, tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			}
		}
		if f.Moveable {
			glyph, style = GlyphMoveable, tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}
		if path[f.Cell] {
			glyph, style = GlyphPath, tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		if id, ok := w.UnitAt(f.Cell); ok {
			owner, _ := w.Owner(id)
			glyph = rune('1' + owner%9)
			style = tcell.StyleDefault
			if owner >= 0 && owner < len(players) {
				style = style.Foreground(players[owner].Colour)
			}
			if hasSelection && selected.Unit == id {
				glyph, style = GlyphSelected, style.Bold(true)
			}
		}
		if f.Attackable {
			glyph, style = GlyphAttackable, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}

		x, y := Position(f.Cell, radius)
		r.canvas.SetContent(x, y, glyph, style)
	}

	active := s.ActivePlayer()
	status := fmt.Sprintf("round %d | %s | %s", s.Round(), active.Name, s.State())
	r.RenderMessage(status, 2*radius+1)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.canvas.SetContent(i, y, ch, style)
	}
}
