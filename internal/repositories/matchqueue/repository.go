// Package matchqueue provides the repository interface and types for the
// matchmaking ticket queue and match registry
package matchqueue

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=matchqueuemock github.com/KirkDiggler/arena-api/internal/repositories/matchqueue Repository

// EnqueueInput contains parameters for queueing a ticket
type EnqueueInput struct {
	Ticket *arena.Ticket
}

// EnqueueOutput contains the result of queueing a ticket
type EnqueueOutput struct{}

// DequeueInput contains parameters for removing a ticket
type DequeueInput struct {
	TicketID uint64
}

// DequeueOutput contains the result of removing a ticket
type DequeueOutput struct{}

// CountInput contains parameters for counting queued tickets
type CountInput struct {
	Mode arena.GameMode
}

// CountOutput contains the ticket count for the mode
type CountOutput struct {
	Count uint32
}

// CreateMatchInput contains parameters for registering a match
type CreateMatchInput struct {
	Match *arena.MatchInfo
}

// CreateMatchOutput contains the result of registering a match
type CreateMatchOutput struct{}

// GetMatchInput contains parameters for reading a match
type GetMatchInput struct {
	MatchID uint64
}

// GetMatchOutput contains a snapshot of the match
type GetMatchOutput struct {
	Match *arena.MatchInfo
}

// SignalReadyInput contains parameters for marking a player ready
type SignalReadyInput struct {
	MatchID  uint64
	PlayerID uint64
}

// SignalReadyOutput reports whether this call completed the roster
type SignalReadyOutput struct {
	AllReady bool
}

// CompleteInput contains parameters for finishing a match
type CompleteInput struct {
	MatchID uint64
}

// CompleteOutput contains the result of finishing a match
type CompleteOutput struct{}

// CancelInput contains parameters for cancelling a match
type CancelInput struct {
	MatchID uint64
}

// CancelOutput contains the result of cancelling a match
type CancelOutput struct{}

// Repository is the synchronized container for queue tickets and matches.
// Ready-set bookkeeping and state transitions happen under the registry
// lock so interleaved controller calls observe a consistent match.
type Repository interface {
	// Enqueue appends a ticket to the queue; the ticket id must be unique
	Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error)

	// Dequeue removes a ticket; a spent ticket reports NotFound again
	Dequeue(ctx context.Context, input DequeueInput) (*DequeueOutput, error)

	// CountByMode counts queued tickets for a mode
	CountByMode(ctx context.Context, input CountInput) (*CountOutput, error)

	// CreateMatch registers a match under its pre-assigned id
	CreateMatch(ctx context.Context, input CreateMatchInput) (*CreateMatchOutput, error)

	// GetMatch returns a snapshot of the match
	GetMatch(ctx context.Context, input GetMatchInput) (*GetMatchOutput, error)

	// SignalReady adds the player to the ready set (idempotent). AllReady
	// is true exactly on the call that completes the roster, which also
	// moves the match to InProgress.
	SignalReady(ctx context.Context, input SignalReadyInput) (*SignalReadyOutput, error)

	// Complete moves the match to Completed
	Complete(ctx context.Context, input CompleteInput) (*CompleteOutput, error)

	// Cancel moves the match to Cancelled. A match already in progress
	// cannot be cancelled.
	Cancel(ctx context.Context, input CancelInput) (*CancelOutput, error)
}
