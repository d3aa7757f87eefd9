// Package entities provides the repository interface and types for the
// world entity registry
package entities

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=entitiesmock github.com/KirkDiggler/arena-api/internal/repositories/entities Repository

// CreateInput contains parameters for storing a new entity
type CreateInput struct {
	Entity *arena.Entity
}

// CreateOutput contains the stored entity
type CreateOutput struct {
	Entity *arena.Entity
}

// GetInput contains parameters for retrieving an entity
type GetInput struct {
	ID uint64
}

// GetOutput contains the retrieved entity
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

// DamageOutput contains the entity after damage and whether this call
// left it at zero health
type DamageOutput struct {
	Entity *arena.Entity
	Killed bool
}

// DeleteInput contains parameters for removing an entity
type DeleteInput struct {
	ID uint64
}

// DeleteOutput contains the result of removing an entity
type DeleteOutput struct{}

// ListInput contains parameters for listing entities
type ListInput struct{}

// ListOutput contains a snapshot of all live entities
type ListOutput struct {
	Entities []*arena.Entity
}

// Repository is the synchronized container for world entities. Every
// mutation happens under the repository's own lock; callers never hold it
// across operations.
type Repository interface {
	// Create stores a new entity under its pre-assigned id
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an entity by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Move replaces an entity's position, leaving everything else untouched
	Move(ctx context.Context, input MoveInput) (*MoveOutput, error)

	// Damage subtracts health, clamping at zero. Killed is true iff the
	// resulting health is zero.
	Damage(ctx context.Context, input DamageInput) (*DamageOutput, error)

	// Delete removes an entity. A second delete of the same id reports
	// NotFound, not a fault.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns a point-in-time snapshot of every entity
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
