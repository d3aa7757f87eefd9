// Package arena implements the arena game entities
package arena

import "math"

// Position is a point in world space
type Position struct {
	X float32
	Y float32
	Z float32
}

// DistanceTo returns the Euclidean distance to another point
func (p Position) DistanceTo(other Position) float32 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

// Entity represents a live object in the world registry.
// NOTE: This is a data-only struct. Registry invariants (health clamping,
// id allocation) are enforced by the repository, not here.
type Entity struct {
	ID        uint64
	Kind      EntityKind
	Name      string
	Position  Position
	Health    int32
	MaxHealth int32
	Faction   Faction
	Alive     bool
}
