package world

import (
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// SpawnInput contains parameters for spawning an entity
type SpawnInput struct {
	Kind      arena.EntityKind
	Name      string
	Position  arena.Position
	Faction   arena.Faction
	MaxHealth int32
}

// SpawnOutput contains the spawned entity
type SpawnOutput struct {
	Entity *arena.Entity
}

// GetInput contains parameters for looking up an entity
type GetInput struct {
	ID uint64
}

// GetOutput contains the entity
type GetOutput struct {
	Entity *arena.Entity
}

// MoveInput contains parameters for repositioning an entity
type MoveInput struct {
	ID       uint64
	Position arena.Position
}

// MoveOutput contains the entity after the move
type MoveOutput struct {
	Entity *arena.Entity
}

// DamageInput contains parameters for applying damage
type DamageInput struct {
	ID     uint64
	Amount int32
}

// DamageOutput contains the entity after damage
type DamageOutput struct {
	Entity *arena.Entity
	// Killed is true exactly when this damage call dropped health to zero
	Killed bool
}

// DespawnInput contains parameters for removing an entity
type DespawnInput struct {
	ID uint64
}

// DespawnOutput contains the result of a despawn
type DespawnOutput struct{}

// FilterKind selects the query filter variant
type FilterKind int

// Filter variants for area queries
const (
	FilterAll FilterKind = iota
	FilterByKind
	FilterByFaction
)

// AreaFilter narrows an area query beyond the radius check. Kind is
// consulted only for FilterByKind, Faction only for FilterByFaction.
type AreaFilter struct {
	Filter  FilterKind
	Kind    arena.EntityKind
	Faction arena.Faction
}

// Matches reports whether the entity passes the filter
func (f AreaFilter) Matches(e *arena.Entity) bool {
	switch f.Filter {
	case FilterByKind:
		return e.Kind == f.Kind
	case FilterByFaction:
		return e.Faction == f.Faction
	default:
		return true
	}
}

// QueryAreaInput contains parameters for an area query
type QueryAreaInput struct {
	Center arena.Position
	Radius float32
	Filter AreaFilter
}

// QueryAreaOutput contains the matching entities, in no particular order
type QueryAreaOutput struct {
	Entities []*arena.Entity
}
