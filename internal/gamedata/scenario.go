package gamedata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/world"
)

// DefaultScenario is the id of the embedded scenario used when none is given.
const DefaultScenario = "skirmish"

var (
	// ErrUnknownClass is returned when a placement names a class that is not registered.
	ErrUnknownClass = errors.New("unknown unit class")
	// ErrUnknownPlayer is returned when a placement names a player index out of range.
	ErrUnknownPlayer = errors.New("unknown player")
)

// PlayerDef defines a scenario participant.
type PlayerDef struct {
	Name  string `json:"name"`  // Display name
	Color string `json:"color"` // Colour name or hex code (e.g., "#0000FF")
}

// Placement puts one unit of a class on the map at axial coordinates.
type Placement struct {
	Class  string `json:"class"`  // Class ID from classes.json
	Player int    `json:"player"` // Index into the scenario's players
	Q      int    `json:"q"`
	R      int    `json:"r"`
}

// Cell returns the placement's cell.
func (p Placement) Cell() hex.Cell {
	return hex.FromAxial(p.Q, p.R)
}

// ScenarioDef describes a battle setup loaded from JSON.
type ScenarioDef struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	GridRadius int         `json:"gridRadius"`
	CellSize   float64     `json:"cellSize"`
	Terrain    bool        `json:"terrain"` // Decorate the map with scenery
	Players    []PlayerDef `json:"players"`
	Units      []Placement `json:"units"`
}

// LoadScenario loads an embedded scenario by id.
func LoadScenario(id string) (ScenarioDef, error) {
	return Load[ScenarioDef](id + ".json")
}

// LoadScenarioFrom loads a scenario file from fsys.
func LoadScenarioFrom(fsys fs.FS, filename string) (ScenarioDef, error) {
	return LoadFrom[ScenarioDef](fsys, filename)
}

// BuildOptions overrides scenario settings when building a world.
type BuildOptions struct {
	GridRadius int   // Overrides the scenario radius when positive
	Seed       int64 // Terrain noise seed; 0 picks a random one
}

// Build creates the world and players described by the scenario.
func (s ScenarioDef) Build(ctx context.Context, classes *ClassRegistry, opts BuildOptions) (*world.World, []entity.Player, error) {
	players := make([]entity.Player, 0, len(s.Players))
	for i, p := range s.Players {
		colour, err := ParseColor(p.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("player %d (%s): %w", i, p.Name, err)
		}
		players = append(players, entity.NewPlayer(i, p.Name, colour))
	}

	radius := s.GridRadius
	if opts.GridRadius > 0 {
		radius = opts.GridRadius
	}
	w := world.NewRadius(radius)

	for i, u := range s.Units {
		class := classes.GetByID(u.Class)
		if class == nil {
			return nil, nil, fmt.Errorf("unit %d: %q: %w", i, u.Class, ErrUnknownClass)
		}
		if u.Player < 0 || u.Player >= len(players) {
			return nil, nil, fmt.Errorf("unit %d: player %d: %w", i, u.Player, ErrUnknownPlayer)
		}
		if _, err := w.SpawnUnit(u.Cell(), u.Player, class.Unit()); err != nil {
			return nil, nil, fmt.Errorf("unit %d: %w", i, err)
		}
	}

	if s.Terrain {
		world.GenerateTerrain(ctx, w, world.DefaultTerrainConfig(opts.Seed))
	}

	return w, players, nil
}
