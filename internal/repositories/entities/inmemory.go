package entities

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[uint64]*arena.Entity
}

// NewInMemory creates a new in-memory entity repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[uint64]*arena.Entity),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new entity under its pre-assigned id
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Entity == nil {
		return nil, errors.InvalidArgument("entity is required")
	}
	if input.Entity.ID == 0 {
		return nil, errors.InvalidArgument("entity ID must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Entity.ID]; exists {
		return nil, errors.AlreadyExistsf("entity %d already exists", input.Entity.ID)
	}

	stored := *input.Entity
	r.store[stored.ID] = &stored

	return &CreateOutput{Entity: copyEntity(&stored)}, nil
}

// Get retrieves an entity by id
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("entity %d not found", input.ID)
	}

	return &GetOutput{Entity: copyEntity(e)}, nil
}

// Move replaces an entity's position
func (r *InMemoryRepository) Move(ctx context.Context, input MoveInput) (*MoveOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("entity %d not found", input.ID)
	}

	e.Position = input.Position

	return &MoveOutput{Entity: copyEntity(e)}, nil
}

// Damage subtracts health under the registry lock, clamping at zero.
// Killed is true iff the resulting health is zero.
func (r *InMemoryRepository) Damage(ctx context.Context, input DamageInput) (*DamageOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("entity %d not found", input.ID)
	}

	e.Health -= input.Amount
	killed := false
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		killed = true
	}

	return &DamageOutput{Entity: copyEntity(e), Killed: killed}, nil
}

// Delete removes an entity from the registry
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("entity %d not found", input.ID)
	}

	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns a point-in-time snapshot of every entity
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*arena.Entity, 0, len(r.store))
	for _, e := range r.store {
		out = append(out, copyEntity(e))
	}

	return &ListOutput{Entities: out}, nil
}

// copyEntity returns a copy to prevent external modification
func copyEntity(e *arena.Entity) *arena.Entity {
	c := *e
	return &c
}
