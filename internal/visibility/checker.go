// Package visibility decides whether a unit has a clear line of fire.
package visibility

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/world"
)

// Checker answers attackability queries for the units of a world.
type Checker struct {
	world  *world.World
	layout hex.Layout
	caster Raycaster
}

// NewChecker creates a checker. A nil caster falls back to a Space over w.
func NewChecker(w *world.World, layout hex.Layout, caster Raycaster) *Checker {
	if caster == nil {
		caster = NewSpace(w, layout)
	}
	return &Checker{world: w, layout: layout, caster: caster}
}

// IsAttackable reports whether attacker can fire at the unit on target.
//
// The attacker needs an attack left and the target must lie inside its
// range ring and hold an enemy unit. Two parallel rays are then cast from
// the target centre towards the attacker, shifted sideways by Size/8 in
// opposite directions. Only units obstruct, and the entities on both end
// cells are ignored. The target is visible when either ray is clear.
func (c *Checker) IsAttackable(attacker entity.ID, target hex.Cell) bool {
	unit, ok := c.world.Unit(attacker)
	if !ok || unit.RemainingAttacks <= 0 {
		return false
	}
	from, ok := c.world.Position(attacker)
	if !ok {
		return false
	}
	if !unit.CanAttack(hex.Distance(from, target)) {
		return false
	}

	defender, ok := c.world.UnitAt(target)
	if !ok {
		return false
	}
	attackerOwner, _ := c.world.Owner(attacker)
	defenderOwner, _ := c.world.Owner(defender)
	if attackerOwner == defenderOwner {
		return false
	}

	exclude := mapset.New[entity.ID]()
	for _, id := range c.world.EntitiesAt(target) {
		exclude.Put(id)
	}
	for _, id := range c.world.EntitiesAt(from) {
		exclude.Put(id)
	}

	start := c.layout.ToPoint(target)
	end := c.layout.ToPoint(from)
	offset := perpendicular(end.Sub(start), c.layout.Size/8)

	if !c.caster.Cast(start.Add(offset), end.Add(offset), exclude, LayerUnit) {
		return true
	}
	return !c.caster.Cast(start.Sub(offset), end.Sub(offset), exclude, LayerUnit)
}

// perpendicular returns a vector of the given length at a right angle to d.
func perpendicular(d hex.Point, length float64) hex.Point {
	n := d.Length()
	if n == 0 {
		return hex.Point{}
	}
	return hex.Point{X: -d.Y, Y: d.X}.Scale(length / n)
}
