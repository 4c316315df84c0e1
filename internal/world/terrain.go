package world

import (
	"context"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexband/internal/telemetry"
)

// Terrain is the kind of a scenery entity.
type Terrain int

const (
	TerrainForest Terrain = iota
	TerrainRocks
)

// String returns a human-readable name for the terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainForest:
		return "forest"
	case TerrainRocks:
		return "rocks"
	default:
		return "unknown"
	}
}

// TerrainConfig controls scenery placement.
type TerrainConfig struct {
	Seed        int64   // Noise seed; 0 picks a random one
	Frequency   float64 // Noise sampling frequency per cell
	ForestLevel float64 // Forest noise at or above this places a forest
	RockLevel   float64 // Rock noise at or above this places rocks
}

// DefaultTerrainConfig returns sparse scenery suitable for small maps.
func DefaultTerrainConfig(seed int64) TerrainConfig {
	return TerrainConfig{
		Seed:        seed,
		Frequency:   0.45,
		ForestLevel: 0.68,
		RockLevel:   0.78,
	}
}

// GenerateTerrain decorates every grid cell with scenery chosen from two
// simplex noise layers. Rocks take precedence over forest. Scenery shares
// cells with units and never blocks movement. It returns the number of
// scenery entities placed.
func GenerateTerrain(ctx context.Context, w *World, cfg TerrainConfig) int {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.terrain")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	forestNoise := opensimplex.NewNormalized(seed)
	rockNoise := opensimplex.NewNormalized(seed + 1)

	forests, rocks := 0, 0
	for _, c := range w.grid {
		// Axial to cartesian so neighbouring cells sample neighbouring noise.
		x := (float64(c.Q()) + float64(c.R())*0.5) * cfg.Frequency
		y := float64(c.R()) * math.Sqrt(3.0) / 2.0 * cfg.Frequency

		var kind Terrain
		switch {
		case rockNoise.Eval2(x, y) >= cfg.RockLevel:
			kind = TerrainRocks
			rocks++
		case forestNoise.Eval2(x, y) >= cfg.ForestLevel:
			kind = TerrainForest
			forests++
		default:
			continue
		}
		// Cells come from the grid, so this cannot fail.
		_, _ = w.SpawnScenery(c, kind)
	}

	span.SetAttributes(
		attribute.Int64("terrain.seed", seed),
		attribute.Int("terrain.cells", len(w.grid)),
		attribute.Int("terrain.forests", forests),
		attribute.Int("terrain.rocks", rocks),
	)

	return forests + rocks
}
