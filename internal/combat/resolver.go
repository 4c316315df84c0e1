// Package combat writes attack outcomes back into the world.
package combat

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/telemetry"
	"github.com/samdwyer/hexband/internal/world"
)

// ErrUnitNotFound is returned when the attacker or defender is not a live unit.
var ErrUnitNotFound = errors.New("unit not found")

// Resolution describes what an applied attack did to the world.
type Resolution struct {
	ActualDamage      int
	DefenderDestroyed bool
	Message           string // Human-readable description
}

// Resolver applies attack outcomes to a world.
type Resolver struct {
	world *world.World
}

// NewResolver creates a resolver for w.
func NewResolver(w *world.World) *Resolver {
	return &Resolver{world: w}
}

// Resolve writes outcome back for attacker and defender. Both must be live
// units, otherwise nothing is written. A defender whose integrity drops to
// zero or below is removed from the world.
func (r *Resolver) Resolve(attacker, defender entity.ID, outcome entity.AttackOutcome) (Resolution, error) {
	if !r.world.IsUnit(attacker) {
		return Resolution{}, fmt.Errorf("resolve attacker %d: %w", attacker, ErrUnitNotFound)
	}
	if !r.world.IsUnit(defender) {
		return Resolution{}, fmt.Errorf("resolve defender %d: %w", defender, ErrUnitNotFound)
	}

	// Both ids were checked above, SetUnit cannot fail.
	_ = r.world.SetUnit(attacker, outcome.Attacker)

	res := Resolution{ActualDamage: outcome.ActualDamage}
	if outcome.Defender.Destroyed() {
		r.world.Remove(defender)
		res.DefenderDestroyed = true
		res.Message = fmt.Sprintf("unit %d hits unit %d for %d and destroys it", attacker, defender, outcome.ActualDamage)
		return res, nil
	}

	_ = r.world.SetUnit(defender, outcome.Defender)
	res.Message = fmt.Sprintf("unit %d hits unit %d for %d", attacker, defender, outcome.ActualDamage)
	return res, nil
}

// Execute performs one attack of attacker on defender and applies it.
func (r *Resolver) Execute(ctx context.Context, attacker, defender entity.ID) (Resolution, error) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.attack")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("combat.attacker", int64(attacker)),
		attribute.Int64("combat.defender", int64(defender)),
	)

	a, ok := r.world.Unit(attacker)
	if !ok {
		err := fmt.Errorf("attacker %d: %w", attacker, ErrUnitNotFound)
		span.SetStatus(codes.Error, err.Error())
		return Resolution{}, err
	}
	d, ok := r.world.Unit(defender)
	if !ok {
		err := fmt.Errorf("defender %d: %w", defender, ErrUnitNotFound)
		span.SetStatus(codes.Error, err.Error())
		return Resolution{}, err
	}

	outcome, err := a.Attack(d)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Resolution{}, fmt.Errorf("attack %d -> %d: %w", attacker, defender, err)
	}

	res, err := r.Resolve(attacker, defender, outcome)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Resolution{}, err
	}

	span.SetAttributes(
		attribute.Int("combat.damage", res.ActualDamage),
		attribute.Bool("combat.destroyed", res.DefenderDestroyed),
	)
	return res, nil
}
