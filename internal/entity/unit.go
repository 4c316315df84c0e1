// Package entity provides combat units and the players that own them.
package entity

import "errors"

// ErrNoAttacksLeft is returned when a unit has spent its attack budget.
var ErrNoAttacksLeft = errors.New("attacker has no attacks left")

// ID identifies an entity placed in the world.
type ID uint64

// Unit holds the combat statistics and per-turn budgets of a unit.
// Units are values; operations return updated copies.
type Unit struct {
	Integrity        int // Current health; <= 0 means destroyed
	Damage           int // Base attack power
	Armor            int // Flat damage reduction
	Mobility         int // Movement budget restored every round
	RemainingRange   int // Movement left this turn
	MaxAttackRange   int // Farthest attackable distance (inclusive)
	MinAttackRange   int // Nearest attackable distance (inclusive)
	RemainingAttacks int // Attacks left this turn
}

// NewUnit creates a fresh unit with full budgets for the current turn.
func NewUnit(integrity, damage, armor, mobility, minAttackRange, maxAttackRange int) Unit {
	return Unit{
		Integrity:        integrity,
		Damage:           damage,
		Armor:            armor,
		Mobility:         mobility,
		RemainingRange:   mobility,
		MinAttackRange:   minAttackRange,
		MaxAttackRange:   maxAttackRange,
		RemainingAttacks: 1,
	}
}

// AttackOutcome is the result of one attack. Attacker and Defender are the
// updated copies the caller must write back.
type AttackOutcome struct {
	ActualDamage int
	Attacker     Unit
	Defender     Unit
}

// Attack computes the outcome of u attacking defender.
//
// Damage is Damage minus the defender's Armor and is not clamped, so an
// attack against heavier armor raises the defender's integrity.
func (u Unit) Attack(defender Unit) (AttackOutcome, error) {
	if u.RemainingAttacks <= 0 {
		return AttackOutcome{}, ErrNoAttacksLeft
	}

	actual := u.Damage - defender.Armor
	defender.Integrity -= actual

	u.RemainingAttacks--
	u.RemainingRange = 0

	return AttackOutcome{
		ActualDamage: actual,
		Attacker:     u,
		Defender:     defender,
	}, nil
}

// CanMove reports whether the unit can travel distance cells this turn and
// how much movement would remain. A distance of zero is never a move.
func (u Unit) CanMove(distance int) (remaining int, ok bool) {
	if distance <= 0 || distance > u.RemainingRange {
		return 0, false
	}
	return u.RemainingRange - distance, true
}

// CanAttack reports whether distance lies within the unit's attack ring.
func (u Unit) CanAttack(distance int) bool {
	return u.MinAttackRange <= distance && distance <= u.MaxAttackRange
}

// ResetTurn restores the per-turn budgets.
func (u Unit) ResetTurn() Unit {
	u.RemainingAttacks = 1
	u.RemainingRange = u.Mobility
	return u
}

// Destroyed reports whether the unit must be removed from the world.
func (u Unit) Destroyed() bool {
	return u.Integrity <= 0
}
