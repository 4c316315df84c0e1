package entity

import "github.com/gdamore/tcell/v2"

// Player is a participant that owns units. Players are immutable once
// created; which player is active is tracked by the game session.
type Player struct {
	ID     int         // Index into the session's player list
	Name   string      // Display name
	Colour tcell.Color // Display colour
}

// NewPlayer creates a player.
func NewPlayer(id int, name string, colour tcell.Color) Player {
	return Player{ID: id, Name: name, Colour: colour}
}

// Hex returns the display colour as "#rrggbb", or an empty string when the
// colour is unset.
func (p Player) Hex() string {
	if p.Colour == tcell.ColorDefault {
		return ""
	}
	return p.Colour.CSS()
}
