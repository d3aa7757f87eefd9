// Package results provides the repository interface and types for the
// match result archive
package results

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=resultsmock github.com/KirkDiggler/arena-api/internal/repositories/results Repository

// SaveInput contains parameters for archiving a match result
type SaveInput struct {
	Result *arena.MatchResult
}

// SaveOutput contains the archived result, stamped with the archive time
type SaveOutput struct {
	Result *arena.MatchResult
}

// GetInput contains parameters for retrieving a match result
type GetInput struct {
	MatchID uint64
}

// GetOutput contains the retrieved result
type GetOutput struct {
	Result *arena.MatchResult
}

// Repository defines the interface for match result storage. Results are
// written once per match and never mutated.
type Repository interface {
	// Save archives a result keyed by its match id
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a result by match id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
