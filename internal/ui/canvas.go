package ui

import "github.com/gdamore/tcell/v2"

// Canvas is a character grid the renderer draws onto.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}
