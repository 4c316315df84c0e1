package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/combat"
	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/pathfind"
	"github.com/samdwyer/hexband/internal/telemetry"
	"github.com/samdwyer/hexband/internal/visibility"
	"github.com/samdwyer/hexband/internal/world"
)

var (
	// ErrNoPlayers is returned when a session is created without players.
	ErrNoPlayers = errors.New("session needs at least one player")
	// ErrNoWorld is returned when a session is created without a world.
	ErrNoWorld = errors.New("session needs a world")
)

// Flags mark what the selected unit can do with a cell.
type Flags struct {
	Moveable   bool
	Attackable bool
}

// Field is the flag state of one grid cell.
type Field struct {
	Cell hex.Cell
	Flags
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithID sets the session id instead of generating one.
func WithID(id uuid.UUID) Option {
	return func(s *Session) { s.id = id }
}

// WithActivePlayer sets the index of the player who moves first.
func WithActivePlayer(index int) Option {
	return func(s *Session) { s.active = index }
}

// Session owns the interaction state of one battle. It is not safe for
// concurrent use; callers deliver events and read state from one goroutine.
type Session struct {
	id      uuid.UUID
	cfg     Config
	world   *world.World
	layout  hex.Layout
	players []entity.Player
	active  int
	round   int

	state    State
	path     []hex.Cell
	hovered  hex.Cell
	hovering bool
	queue    []Event

	checker  *visibility.Checker
	resolver *combat.Resolver
	logger   *slog.Logger
}

// NewSession creates a session in the Startup state. A nil caster uses the
// geometric raycast space of w.
func NewSession(cfg Config, w *world.World, players []entity.Player, caster visibility.Raycaster, opts ...Option) (*Session, error) {
	if w == nil {
		return nil, ErrNoWorld
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	cfg = cfg.withDefaults()
	layout := hex.NewLayout(cfg.CellSize)

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		world:    w,
		layout:   layout,
		players:  slices.Clone(players),
		round:    1,
		state:    Startup{},
		checker:  visibility.NewChecker(w, layout, caster),
		resolver: combat.NewResolver(w),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.active < 0 || s.active >= len(s.players) {
		return nil, fmt.Errorf("active player %d out of range [0, %d)", s.active, len(s.players))
	}
	s.logger = s.logger.With("session", s.id.String())

	return s, nil
}

// HandleEvent processes ev immediately.
func (s *Session) HandleEvent(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case CellActivated:
		s.activate(e.Cell)
	case CursorEnteredCell:
		s.hover(e.Cell)
	case CursorExitedCell:
		s.hovering = false
		s.path = nil
	case EndTurnRequested:
		s.setState(NewRound{})
	case SelectionCancelled:
		if _, moving := s.state.(Moving); moving {
			s.logger.Debug("cancel ignored while moving")
			return
		}
		s.setState(Waiting{})
	default:
		s.logger.Warn("unknown event", "event", fmt.Sprintf("%T", ev))
	}
}

// Enqueue defers ev until the next Tick.
func (s *Session) Enqueue(ev Event) {
	s.queue = append(s.queue, ev)
}

// Pending returns the number of queued events.
func (s *Session) Pending() int {
	return len(s.queue)
}

// Tick advances the current state by delta, then processes queued events
// in arrival order.
func (s *Session) Tick(ctx context.Context, delta time.Duration) {
	s.advance(ctx, delta)

	queued := s.queue
	s.queue = nil
	for _, ev := range queued {
		s.HandleEvent(ctx, ev)
	}
}

func (s *Session) advance(ctx context.Context, delta time.Duration) {
	switch st := s.state.(type) {
	case Startup:
		s.setState(Waiting{})
	case Attacking:
		s.attack(ctx, st)
	case Moving:
		s.move(ctx, st, delta)
	case NewRound:
		s.newRound(ctx)
	}
}

func (s *Session) activate(cell hex.Cell) {
	switch st := s.state.(type) {
	case Waiting:
		if id, ok := s.world.UnitAt(cell); ok {
			s.setState(Selected{Unit: id})
		}
	case Selected:
		s.activateSelected(st, cell)
	default:
		s.logger.Debug("click ignored", "state", s.state.String(), "cell", cell.String())
	}
}

func (s *Session) activateSelected(st Selected, cell hex.Cell) {
	unit, ok := s.world.Unit(st.Unit)
	if !ok {
		s.violation("selected unit vanished", "unit", st.Unit)
		return
	}
	from, ok := s.world.Position(st.Unit)
	if !ok {
		s.violation("selected unit has no position", "unit", st.Unit)
		return
	}
	owner, ok := s.world.Owner(st.Unit)
	if !ok {
		s.violation("selected unit has no owner", "unit", st.Unit)
		return
	}

	if target, ok := s.world.UnitAt(cell); ok {
		if target == st.Unit {
			return
		}
		targetOwner, _ := s.world.Owner(target)
		if targetOwner == owner {
			s.setState(Selected{Unit: target})
			return
		}
		if owner != s.active {
			return
		}
		if unit.CanAttack(hex.Distance(from, cell)) && s.checker.IsAttackable(st.Unit, cell) {
			s.setState(Attacking{Attacker: st.Unit, Defender: target})
		}
		return
	}

	if owner != s.active {
		return
	}
	path := pathfind.FindPath(from, cell, s.world)
	if len(path) == 0 {
		s.logger.Warn("no path", "unit", st.Unit, "from", from.String(), "to", cell.String())
		s.setState(Waiting{})
		return
	}
	s.setState(Moving{Unit: st.Unit, Path: path[1:]})
}

func (s *Session) attack(ctx context.Context, st Attacking) {
	res, err := s.resolver.Execute(ctx, st.Attacker, st.Defender)
	switch {
	case errors.Is(err, combat.ErrUnitNotFound):
		s.violation("attack on missing unit", "error", err)
		return
	case err != nil:
		s.logger.Warn("attack rejected", "error", err)
	default:
		s.logger.Info(res.Message,
			"attacker", st.Attacker,
			"defender", st.Defender,
			"damage", res.ActualDamage,
			"destroyed", res.DefenderDestroyed,
		)
	}
	s.setState(Waiting{})
}

func (s *Session) move(ctx context.Context, st Moving, delta time.Duration) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.move")
	defer span.End()

	elapsed := st.Elapsed + delta
	path := st.Path
	steps := 0
	defer func() {
		span.SetAttributes(
			attribute.Int64("move.unit", int64(st.Unit)),
			attribute.Int("move.steps", steps),
			attribute.Int("move.remaining_path", len(path)),
		)
	}()

	for elapsed >= s.cfg.StepDuration {
		unit, ok := s.world.Unit(st.Unit)
		if !ok {
			s.violation("moving unit vanished", "unit", st.Unit)
			return
		}
		if unit.RemainingRange <= 0 {
			s.setState(Selected{Unit: st.Unit})
			return
		}
		if len(path) == 0 {
			s.logger.Warn("moving with empty path", "unit", st.Unit)
			s.setState(Selected{Unit: st.Unit})
			return
		}

		next := path[0]
		from, ok := s.world.Position(st.Unit)
		if !ok {
			s.violation("moving unit has no position", "unit", st.Unit)
			return
		}
		if !hex.IsNeighbour(from, next) {
			s.logger.Error("path step is not adjacent", "unit", st.Unit, "from", from.String(), "to", next.String())
			s.setState(Selected{Unit: st.Unit})
			return
		}
		if s.world.Blocked(next) {
			s.logger.Warn("path blocked", "unit", st.Unit, "cell", next.String())
			s.setState(Selected{Unit: st.Unit})
			return
		}
		remaining, ok := unit.CanMove(1)
		if !ok {
			s.setState(Selected{Unit: st.Unit})
			return
		}

		if err := s.world.Move(st.Unit, next); err != nil {
			s.logger.Error("move failed", "unit", st.Unit, "error", err)
			s.setState(Selected{Unit: st.Unit})
			return
		}
		unit.RemainingRange = remaining
		if err := s.world.SetUnit(st.Unit, unit); err != nil {
			s.violation("moving unit vanished", "unit", st.Unit, "error", err)
			return
		}

		path = path[1:]
		elapsed -= s.cfg.StepDuration
		steps++
		if len(path) == 0 {
			break
		}
	}

	if len(path) > 0 {
		s.setState(Moving{Unit: st.Unit, Path: path, Elapsed: elapsed})
		return
	}
	s.setState(Selected{Unit: st.Unit})
}

func (s *Session) newRound(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.new_round")
	defer span.End()

	s.world.ResetTurn()
	s.active = (s.active + 1) % len(s.players)
	s.round++

	span.SetAttributes(
		attribute.Int("round", s.round),
		attribute.Int("player.active", s.active),
	)
	s.logger.Info("new round", "round", s.round, "player", s.players[s.active].Name)

	s.setState(Waiting{})
}

func (s *Session) hover(cell hex.Cell) {
	s.hovered = cell
	s.hovering = true
	s.path = nil

	sel, ok := s.state.(Selected)
	if !ok {
		return
	}
	owner, ok := s.world.Owner(sel.Unit)
	if !ok || owner != s.active {
		return
	}
	from, ok := s.world.Position(sel.Unit)
	if !ok {
		return
	}
	s.path = pathfind.FindPath(from, cell, s.world)
}

// setState replaces the state wholesale and clears the displayed path.
func (s *Session) setState(st State) {
	if s.state.Phase() != st.Phase() {
		s.logger.Debug("state change", "from", s.state.String(), "to", st.String())
	}
	s.state = st
	s.path = nil
}

// violation recovers from inconsistent world data by dropping back to Waiting.
func (s *Session) violation(msg string, args ...any) {
	s.logger.Error(msg, args...)
	s.setState(Waiting{})
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// World returns the world the session plays on.
func (s *Session) World() *world.World { return s.world }

// State returns the current interaction state.
func (s *Session) State() State { return s.state }

// Round returns the round number, starting at 1.
func (s *Session) Round() int { return s.round }

// CurrentPath returns the hovered path preview, if any.
func (s *Session) CurrentPath() []hex.Cell { return slices.Clone(s.path) }

// Hovered returns the cell under the cursor.
func (s *Session) Hovered() (hex.Cell, bool) { return s.hovered, s.hovering }

// Players returns the players in turn order.
func (s *Session) Players() []entity.Player { return slices.Clone(s.players) }

// ActivePlayerIndex returns the index of the player whose turn it is.
func (s *Session) ActivePlayerIndex() int { return s.active }

// ActivePlayer returns the player whose turn it is.
func (s *Session) ActivePlayer() entity.Player { return s.players[s.active] }

// CellFlags returns what the selected unit can do with cell. Flags are only
// set while a unit of the active player is selected.
func (s *Session) CellFlags(cell hex.Cell) Flags {
	sel, ok := s.state.(Selected)
	if !ok {
		return Flags{}
	}
	unit, ok := s.world.Unit(sel.Unit)
	if !ok {
		return Flags{}
	}
	owner, ok := s.world.Owner(sel.Unit)
	if !ok || owner != s.active {
		return Flags{}
	}
	from, ok := s.world.Position(sel.Unit)
	if !ok {
		return Flags{}
	}

	var flags Flags
	if hex.Distance(from, cell) <= unit.RemainingRange {
		if path := pathfind.FindPath(from, cell, s.world); len(path) > 0 {
			_, flags.Moveable = unit.CanMove(pathfind.Steps(path))
		}
	}
	flags.Attackable = s.checker.IsAttackable(sel.Unit, cell)
	return flags
}

// Fields returns the flags of every grid cell in grid order.
func (s *Session) Fields() []Field {
	cells := s.world.Cells()
	fields := make([]Field, 0, len(cells))
	for _, c := range cells {
		fields = append(fields, Field{Cell: c, Flags: s.CellFlags(c)})
	}
	return fields
}
