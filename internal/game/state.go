// Package game runs the turn and interaction state machine of a battle.
package game

import (
	"fmt"
	"time"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
)

// Phase identifies the kind of interaction state.
type Phase int

const (
	// PhaseStartup is the state before the first tick.
	PhaseStartup Phase = iota
	// PhaseWaiting has no unit selected.
	PhaseWaiting
	// PhaseSelected has a unit selected and awaits a target.
	PhaseSelected
	// PhaseAttacking resolves an attack on the next tick.
	PhaseAttacking
	// PhaseMoving walks a unit along a path, one cell per step.
	PhaseMoving
	// PhaseNewRound resets units and passes the turn on the next tick.
	PhaseNewRound
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhaseWaiting:
		return "waiting"
	case PhaseSelected:
		return "selected"
	case PhaseAttacking:
		return "attacking"
	case PhaseMoving:
		return "moving"
	case PhaseNewRound:
		return "new_round"
	default:
		return "unknown"
	}
}

// State is the current interaction state of a session. It is one of
// Startup, Waiting, Selected, Attacking, Moving or NewRound.
type State interface {
	Phase() Phase
	String() string
	isState()
}

type Startup struct{}

type Waiting struct{}

type Selected struct {
	Unit entity.ID
}

type Attacking struct {
	Attacker entity.ID
	Defender entity.ID
}

// Moving carries the cells still to walk, excluding the unit's current cell,
// and the time accumulated towards the next step.
type Moving struct {
	Unit    entity.ID
	Path    []hex.Cell
	Elapsed time.Duration
}

type NewRound struct{}

func (Startup) Phase() Phase   { return PhaseStartup }
func (Waiting) Phase() Phase   { return PhaseWaiting }
func (Selected) Phase() Phase  { return PhaseSelected }
func (Attacking) Phase() Phase { return PhaseAttacking }
func (Moving) Phase() Phase    { return PhaseMoving }
func (NewRound) Phase() Phase  { return PhaseNewRound }

func (Startup) String() string { return PhaseStartup.String() }
func (Waiting) String() string { return PhaseWaiting.String() }
func (s Selected) String() string {
	return fmt.Sprintf("%s(%d)", PhaseSelected, s.Unit)
}
func (s Attacking) String() string {
	return fmt.Sprintf("%s(%d->%d)", PhaseAttacking, s.Attacker, s.Defender)
}
func (s Moving) String() string {
	return fmt.Sprintf("%s(%d, %d left)", PhaseMoving, s.Unit, len(s.Path))
}
func (NewRound) String() string { return PhaseNewRound.String() }

func (Startup) isState()   {}
func (Waiting) isState()   {}
func (Selected) isState()  {}
func (Attacking) isState() {}
func (Moving) isState()    {}
func (NewRound) isState()  {}
