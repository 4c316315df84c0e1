package game

import "github.com/samdwyer/hexband/internal/hex"

// Event is a logical input delivered by the presentation layer.
type Event interface {
	isEvent()
}

// CellActivated is a primary click on a cell.
type CellActivated struct {
	Cell hex.Cell
}

// CursorEnteredCell is sent when the pointer moves onto a cell.
type CursorEnteredCell struct {
	Cell hex.Cell
}

// CursorExitedCell is sent when the pointer leaves the hovered cell.
type CursorExitedCell struct{}

// EndTurnRequested ends the active player's turn.
type EndTurnRequested struct{}

// SelectionCancelled drops the current selection.
type SelectionCancelled struct{}

func (CellActivated) isEvent()      {}
func (CursorEnteredCell) isEvent()  {}
func (CursorExitedCell) isEvent()   {}
func (EndTurnRequested) isEvent()   {}
func (SelectionCancelled) isEvent() {}
