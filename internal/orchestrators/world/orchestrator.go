// Package world implements the entity world orchestrator. It owns id
// allocation for spawned entities and the brute-force area query; all
// registry state lives in the entities repository.
package world

//go:generate mockgen -destination=mock/mock_service.go -package=worldmock github.com/KirkDiggler/arena-api/internal/orchestrators/world Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/entities"
)

// Service defines the interface for entity world operations
type Service interface {
	// Spawn creates a new entity at full health
	Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error)

	// Get looks up an entity by id
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Move replaces an entity's position
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)

	// Damage applies damage, clamping health at zero
	Damage(ctx context.Context, input *DamageInput) (*DamageOutput, error)

	// Despawn removes an entity from the registry
	Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error)

	// QueryArea returns all entities within radius of center that pass
	// the filter
	QueryArea(ctx context.Context, input *QueryAreaInput) (*QueryAreaOutput, error)
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	EntityRepo entities.Repository
	IDSequence idgen.Sequence
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EntityRepo == nil {
		vb.RequiredField("EntityRepo")
	}
	if c.IDSequence == nil {
		vb.RequiredField("IDSequence")
	}

	return vb.Build()
}

type orchestrator struct {
	entityRepo entities.Repository
	idSeq      idgen.Sequence
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		entityRepo: cfg.EntityRepo,
		idSeq:      cfg.IDSequence,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// Spawn allocates the next entity id and stores the entity at full
// health. Ids are strictly increasing and never reused, even after a
// despawn.
func (o *orchestrator) Spawn(ctx context.Context, input *SpawnInput) (*SpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}
	if input.MaxHealth <= 0 {
		return nil, errors.InvalidArgument("max health must be positive")
	}

	entity := &arena.Entity{
		ID:        o.idSeq.Next(),
		Kind:      input.Kind,
		Name:      input.Name,
		Position:  input.Position,
		Health:    input.MaxHealth,
		MaxHealth: input.MaxHealth,
		Faction:   input.Faction,
		Alive:     true,
	}

	output, err := o.entityRepo.Create(ctx, entities.CreateInput{Entity: entity})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn entity %q", input.Name)
	}

	slog.Debug("spawned entity",
		"id", output.Entity.ID,
		"kind", output.Entity.Kind,
		"name", output.Entity.Name)

	return &SpawnOutput{Entity: output.Entity}, nil
}

// Get looks up an entity by id
func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.entityRepo.Get(ctx, entities.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Entity: output.Entity}, nil
}

// Move replaces an entity's position, leaving everything else untouched
func (o *orchestrator) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.entityRepo.Move(ctx, entities.MoveInput{
		ID:       input.ID,
		Position: input.Position,
	})
	if err != nil {
		return nil, err
	}

	return &MoveOutput{Entity: output.Entity}, nil
}

// Damage applies damage to an entity. Health clamps at zero; Killed is
// true exactly on the call that reached zero, at which point Alive flips
// to false.
func (o *orchestrator) Damage(ctx context.Context, input *DamageInput) (*DamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("damage amount cannot be negative")
	}

	output, err := o.entityRepo.Damage(ctx, entities.DamageInput{
		ID:     input.ID,
		Amount: input.Amount,
	})
	if err != nil {
		return nil, err
	}

	if output.Killed {
		slog.Debug("entity killed", "id", input.ID)
	}

	return &DamageOutput{Entity: output.Entity, Killed: output.Killed}, nil
}

// Despawn removes an entity. Despawning an id a second time reports
// NotFound, not a fault.
func (o *orchestrator) Despawn(ctx context.Context, input *DespawnInput) (*DespawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if _, err := o.entityRepo.Delete(ctx, entities.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	return &DespawnOutput{}, nil
}

// QueryArea scans every entity and returns those within Radius of Center
// that pass the filter. The boundary is inclusive and results carry no
// ordering guarantee.
func (o *orchestrator) QueryArea(ctx context.Context, input *QueryAreaInput) (*QueryAreaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Radius < 0 {
		return nil, errors.InvalidArgument("radius cannot be negative")
	}

	listed, err := o.entityRepo.List(ctx, entities.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entities")
	}

	matches := make([]*arena.Entity, 0, len(listed.Entities))
	for _, e := range listed.Entities {
		if input.Center.DistanceTo(e.Position) > input.Radius {
			continue
		}
		if !input.Filter.Matches(e) {
			continue
		}
		matches = append(matches, e)
	}

	return &QueryAreaOutput{Entities: matches}, nil
}
