package ui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/game"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/world"
)

func newScreen(t *testing.T, width, height int) *Screen {
	t.Helper()
	screen, err := NewSimulationScreen(width, height)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error: %v", err)
	}
	t.Cleanup(screen.Close)
	return screen
}

func newBoard(t *testing.T) (*game.Session, *Screen) {
	t.Helper()
	w := world.NewRadius(2)
	tank := entity.NewUnit(20, 5, 3, 5, 1, 2)
	if _, err := w.SpawnUnit(hex.FromAxial(1, 0), 0, tank); err != nil {
		t.Fatalf("SpawnUnit() error: %v", err)
	}
	if _, err := w.SpawnUnit(hex.FromAxial(-1, 0), 1, tank); err != nil {
		t.Fatalf("SpawnUnit() error: %v", err)
	}
	if _, err := w.SpawnScenery(hex.FromAxial(0, -2), world.TerrainForest); err != nil {
		t.Fatalf("SpawnScenery() error: %v", err)
	}

	players := []entity.Player{
		entity.NewPlayer(0, "Player 1", tcell.ColorBlue),
		entity.NewPlayer(1, "Player 2", tcell.ColorRed),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := game.NewSession(game.DefaultConfig(), w, players, nil, game.WithLogger(logger))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	s.Tick(context.Background(), 0)

	width, height := BoardSize(Radius(w))
	return s, newScreen(t, width, height)
}

func glyphAt(c *Screen, cell hex.Cell) rune {
	x, y := Position(cell, 2)
	return c.Rune(x, y)
}

func TestRenderIdleBoard(t *testing.T) {
	s, canvas := newBoard(t)
	NewRenderer(canvas).Render(s)

	tests := []struct {
		cell hex.Cell
		want rune
	}{
		{hex.FromAxial(1, 0), '1'},
		{hex.FromAxial(-1, 0), '2'},
		{hex.FromAxial(0, -2), GlyphForest},
		{hex.Zero(), GlyphEmpty},
	}
	for _, tt := range tests {
		if got := glyphAt(canvas, tt.cell); got != tt.want {
			t.Errorf("glyph at %v = %q, want %q", tt.cell, got, tt.want)
		}
	}

	x, y := Position(hex.FromAxial(1, 0), 2)
	if got, want := canvas.Style(x, y), tcell.StyleDefault.Foreground(tcell.ColorBlue); got != want {
		t.Errorf("unit style = %v, want blue foreground", got)
	}

	lines := strings.Split(canvas.String(), "\n")
	if !strings.HasPrefix(lines[5], "round 1 | Player 1 | waiting") {
		t.Errorf("status line = %q", lines[5])
	}
}

func TestRenderSelection(t *testing.T) {
	s, canvas := newBoard(t)
	s.HandleEvent(context.Background(), game.CellActivated{Cell: hex.FromAxial(1, 0)})
	s.HandleEvent(context.Background(), game.CursorEnteredCell{Cell: hex.FromAxial(0, 1)})
	NewRenderer(canvas).Render(s)

	tests := []struct {
		cell hex.Cell
		want rune
	}{
		{hex.FromAxial(1, 0), GlyphSelected},
		{hex.FromAxial(-1, 0), GlyphAttackable},
		{hex.Zero(), GlyphMoveable},
		{hex.FromAxial(0, 1), GlyphPath},
	}
	for _, tt := range tests {
		if got := glyphAt(canvas, tt.cell); got != tt.want {
			t.Errorf("glyph at %v = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestPositionsAreDistinct(t *testing.T) {
	seen := map[[2]int]hex.Cell{}
	for _, c := range hex.Grid(3) {
		x, y := Position(c, 3)
		if other, dup := seen[[2]int{x, y}]; dup {
			t.Errorf("%v and %v share position (%d,%d)", c, other, x, y)
		}
		seen[[2]int{x, y}] = c
		if x < 0 || x > 12 || y < 0 || y > 6 {
			t.Errorf("%v mapped outside the board: (%d,%d)", c, x, y)
		}
	}
}

func TestScreen(t *testing.T) {
	c := newScreen(t, 4, 2)
	c.SetContent(1, 0, 'a', tcell.StyleDefault)
	c.SetContent(9, 9, 'z', tcell.StyleDefault)

	if w, h := c.Size(); w != 4 || h != 2 {
		t.Errorf("Size() = %d, %d, want 4, 2", w, h)
	}
	if got := c.String(); got != " a\n\n" {
		t.Errorf("String() = %q", got)
	}
	if c.Rune(9, 9) != 0 {
		t.Error("Rune outside screen should be 0")
	}
	c.Clear()
	if c.Rune(1, 0) != ' ' {
		t.Error("Clear() left content behind")
	}
	if got := c.String(); got != "\n\n" {
		t.Errorf("String() after Clear() = %q", got)
	}
}

// plainScreen hides the simulation methods so String reads cell by cell.
type plainScreen struct {
	tcell.Screen
}

func TestWrapScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	sim.SetSize(3, 1)
	sim.Clear()

	c := WrapScreen(plainScreen{sim})
	defer c.Close()
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	c.SetContent(0, 0, 'x', style)

	if got := c.String(); got != "x\n" {
		t.Errorf("String() = %q, want %q", got, "x\n")
	}
	if got := c.Style(0, 0); got != style {
		t.Errorf("Style(0, 0) = %v, want red foreground", got)
	}
}
