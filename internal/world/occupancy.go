package world

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
)

// Occupancy indexes which entities are located at each cell.
type Occupancy struct {
	cells map[hex.Cell]mapset.Set[entity.ID]
}

// NewOccupancy creates an empty index.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[hex.Cell]mapset.Set[entity.ID])}
}

// Add records id at cell c.
func (o *Occupancy) Add(c hex.Cell, id entity.ID) {
	set, ok := o.cells[c]
	if !ok {
		set = mapset.New[entity.ID]()
		o.cells[c] = set
	}
	set.Put(id)
}

// Remove drops id from cell c. Empty cells are pruned from the index.
func (o *Occupancy) Remove(c hex.Cell, id entity.ID) {
	set, ok := o.cells[c]
	if !ok {
		return
	}
	set.Remove(id)
	if set.Size() == 0 {
		delete(o.cells, c)
	}
}

// Move relocates id from one cell to another.
func (o *Occupancy) Move(id entity.ID, from, to hex.Cell) {
	o.Remove(from, id)
	o.Add(to, id)
}

// Has reports whether id is recorded at c.
func (o *Occupancy) Has(c hex.Cell, id entity.ID) bool {
	set, ok := o.cells[c]
	return ok && set.Has(id)
}

// Count returns the number of entities at c.
func (o *Occupancy) Count(c hex.Cell) int {
	set, ok := o.cells[c]
	if !ok {
		return 0
	}
	return set.Size()
}

// At returns the entities at c in ascending id order.
func (o *Occupancy) At(c hex.Cell) []entity.ID {
	set, ok := o.cells[c]
	if !ok {
		return nil
	}
	ids := make([]entity.ID, 0, set.Size())
	set.Each(func(id entity.ID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}
