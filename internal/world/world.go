// Package world holds the units, scenery and cell occupancy of a battle map.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
)

var (
	// ErrUnknownEntity is returned when an id does not name a live entity.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrOutsideGrid is returned when a cell is not part of the map.
	ErrOutsideGrid = errors.New("cell outside grid")
	// ErrCellOccupied is returned when a unit would share a cell with another unit.
	ErrCellOccupied = errors.New("cell already holds a unit")
)

// World is the explicit set of typed collections the combat core works on.
// Every entity has a position; units additionally have stats and an owner,
// scenery has a terrain kind.
type World struct {
	grid      []hex.Cell
	cells     mapset.Set[hex.Cell]
	positions map[entity.ID]hex.Cell
	units     map[entity.ID]entity.Unit
	owners    map[entity.ID]int
	scenery   map[entity.ID]Terrain
	occupancy *Occupancy
	nextID    entity.ID
}

// New creates an empty world over the given grid cells.
func New(grid []hex.Cell) *World {
	cells := mapset.New[hex.Cell]()
	ordered := make([]hex.Cell, 0, len(grid))
	for _, c := range grid {
		if cells.Has(c) {
			continue
		}
		cells.Put(c)
		ordered = append(ordered, c)
	}
	return &World{
		grid:      ordered,
		cells:     cells,
		positions: make(map[entity.ID]hex.Cell),
		units:     make(map[entity.ID]entity.Unit),
		owners:    make(map[entity.ID]int),
		scenery:   make(map[entity.ID]Terrain),
		occupancy: NewOccupancy(),
		nextID:    1,
	}
}

// NewRadius creates an empty world covering every cell within radius of the origin.
func NewRadius(radius int) *World {
	return New(hex.Grid(radius))
}

// Contains reports whether c is part of the map.
func (w *World) Contains(c hex.Cell) bool {
	return w.cells.Has(c)
}

// Blocked reports whether a unit stands on c. Scenery never blocks.
func (w *World) Blocked(c hex.Cell) bool {
	return w.HasUnit(c)
}

// Cells returns the map's cells in generation order.
func (w *World) Cells() []hex.Cell {
	return slices.Clone(w.grid)
}

// Occupancy exposes the cell index for read-only queries.
func (w *World) Occupancy() *Occupancy {
	return w.occupancy
}

// SpawnUnit places a unit owned by player at c.
func (w *World) SpawnUnit(c hex.Cell, player int, u entity.Unit) (entity.ID, error) {
	if !w.Contains(c) {
		return 0, fmt.Errorf("spawn unit at %v: %w", c, ErrOutsideGrid)
	}
	if w.HasUnit(c) {
		return 0, fmt.Errorf("spawn unit at %v: %w", c, ErrCellOccupied)
	}
	id := w.newID()
	w.positions[id] = c
	w.units[id] = u
	w.owners[id] = player
	w.occupancy.Add(c, id)
	return id, nil
}

// SpawnScenery places a non-unit entity at c.
func (w *World) SpawnScenery(c hex.Cell, t Terrain) (entity.ID, error) {
	if !w.Contains(c) {
		return 0, fmt.Errorf("spawn %v at %v: %w", t, c, ErrOutsideGrid)
	}
	id := w.newID()
	w.positions[id] = c
	w.scenery[id] = t
	w.occupancy.Add(c, id)
	return id, nil
}

func (w *World) newID() entity.ID {
	id := w.nextID
	w.nextID++
	return id
}

// Exists reports whether id names a live entity.
func (w *World) Exists(id entity.ID) bool {
	_, ok := w.positions[id]
	return ok
}

// Unit returns the stats of unit id.
func (w *World) Unit(id entity.ID) (entity.Unit, bool) {
	u, ok := w.units[id]
	return u, ok
}

// IsUnit reports whether id is a live unit.
func (w *World) IsUnit(id entity.ID) bool {
	_, ok := w.units[id]
	return ok
}

// SetUnit replaces the stats of unit id.
func (w *World) SetUnit(id entity.ID, u entity.Unit) error {
	if _, ok := w.units[id]; !ok {
		return fmt.Errorf("set unit %d: %w", id, ErrUnknownEntity)
	}
	w.units[id] = u
	return nil
}

// Position returns the cell entity id is located at.
func (w *World) Position(id entity.ID) (hex.Cell, bool) {
	c, ok := w.positions[id]
	return c, ok
}

// Owner returns the player index owning unit id.
func (w *World) Owner(id entity.ID) (int, bool) {
	p, ok := w.owners[id]
	return p, ok
}

// Terrain returns the terrain kind of scenery id.
func (w *World) Terrain(id entity.ID) (Terrain, bool) {
	t, ok := w.scenery[id]
	return t, ok
}

// Move relocates entity id to c. Units cannot enter a cell holding another unit.
func (w *World) Move(id entity.ID, c hex.Cell) error {
	from, ok := w.positions[id]
	if !ok {
		return fmt.Errorf("move %d: %w", id, ErrUnknownEntity)
	}
	if !w.Contains(c) {
		return fmt.Errorf("move %d to %v: %w", id, c, ErrOutsideGrid)
	}
	if w.IsUnit(id) {
		if other, found := w.UnitAt(c); found && other != id {
			return fmt.Errorf("move %d to %v: %w", id, c, ErrCellOccupied)
		}
	}
	w.positions[id] = c
	w.occupancy.Move(id, from, c)
	return nil
}

// Remove deletes entity id from every collection. It reports whether
// anything was removed.
func (w *World) Remove(id entity.ID) bool {
	c, ok := w.positions[id]
	if !ok {
		return false
	}
	w.occupancy.Remove(c, id)
	delete(w.positions, id)
	delete(w.units, id)
	delete(w.owners, id)
	delete(w.scenery, id)
	return true
}

// EntitiesAt returns every entity located at c in ascending id order.
func (w *World) EntitiesAt(c hex.Cell) []entity.ID {
	return w.occupancy.At(c)
}

// UnitAt returns the unit located at c.
func (w *World) UnitAt(c hex.Cell) (entity.ID, bool) {
	for _, id := range w.occupancy.At(c) {
		if w.IsUnit(id) {
			return id, true
		}
	}
	return 0, false
}

// HasUnit reports whether any unit is located at c.
func (w *World) HasUnit(c hex.Cell) bool {
	_, ok := w.UnitAt(c)
	return ok
}

// UnitIDs returns all live units in ascending id order.
func (w *World) UnitIDs() []entity.ID {
	ids := make([]entity.ID, 0, len(w.units))
	for id := range w.units {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entities returns every live entity in ascending id order.
func (w *World) Entities() []entity.ID {
	ids := make([]entity.ID, 0, len(w.positions))
	for id := range w.positions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// UnitsOf returns the units owned by player in ascending id order.
func (w *World) UnitsOf(player int) []entity.ID {
	var ids []entity.ID
	for _, id := range w.UnitIDs() {
		if w.owners[id] == player {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResetTurn restores the per-turn budgets of every unit.
func (w *World) ResetTurn() {
	for id, u := range w.units {
		w.units[id] = u.ResetTurn()
	}
}
