package visibility

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/hexband/internal/entity"
	"github.com/samdwyer/hexband/internal/hex"
	"github.com/samdwyer/hexband/internal/world"
)

// Layer is a collision layer bitmask.
type Layer uint32

const (
	LayerGround Layer = 1 << iota // scenery and cell colliders
	LayerUnit                     // unit bodies
)

// Raycaster tests a segment against the colliders of the 2D scene.
type Raycaster interface {
	// Cast reports whether the segment from -> to hits a collider on one of
	// the layers in mask, ignoring the excluded entities.
	Cast(from, to hex.Point, exclude mapset.Set[entity.ID], mask Layer) bool
}

// Space is a Raycaster over the entities of a world. Every entity is an
// axis-aligned square of half-extent Size/2 centred on its cell.
type Space struct {
	world  *world.World
	layout hex.Layout
}

// NewSpace creates a raycast space for w.
func NewSpace(w *world.World, layout hex.Layout) *Space {
	return &Space{world: w, layout: layout}
}

// Cast implements Raycaster.
func (s *Space) Cast(from, to hex.Point, exclude mapset.Set[entity.ID], mask Layer) bool {
	half := s.layout.Size / 2
	for _, id := range s.world.Entities() {
		if exclude.Has(id) || s.layerOf(id)&mask == 0 {
			continue
		}
		pos, ok := s.world.Position(id)
		if !ok {
			continue
		}
		c := s.layout.ToPoint(pos)
		if segmentHitsBox(from, to, c.X-half, c.Y-half, c.X+half, c.Y+half) {
			return true
		}
	}
	return false
}

func (s *Space) layerOf(id entity.ID) Layer {
	if s.world.IsUnit(id) {
		return LayerUnit
	}
	return LayerGround
}

// segmentHitsBox is a slab test of the segment a -> b against the box.
func segmentHitsBox(a, b hex.Point, minX, minY, maxX, maxY float64) bool {
	tMin, tMax := 0.0, 1.0

	clip := func(origin, delta, lo, hi float64) bool {
		if math.Abs(delta) < 1e-12 {
			return origin >= lo && origin <= hi
		}
		inv := 1.0 / delta
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	if !clip(a.X, b.X-a.X, minX, maxX) {
		return false
	}
	return clip(a.Y, b.Y-a.Y, minY, maxY)
}
