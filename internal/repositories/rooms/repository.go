// Package rooms provides the repository interface and types for the chat
// room directory
package rooms

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=roomsmock github.com/KirkDiggler/arena-api/internal/repositories/rooms Repository

// CreateInput contains parameters for creating a room
type CreateInput struct {
	ID    uint64
	Name  string
	Topic string
}

// CreateOutput contains the created room's metadata
type CreateOutput struct {
	Info *arena.RoomInfo
}

// GetInput contains parameters for reading a room's metadata
type GetInput struct {
	Name string
}

// GetOutput contains the room's current metadata
type GetOutput struct {
	Info *arena.RoomInfo
}

// AddMemberInput contains parameters for incrementing a room's member count
type AddMemberInput struct {
	Name string
}

// AddMemberOutput contains the room metadata after the join
type AddMemberOutput struct {
	Info *arena.RoomInfo
}

// RemoveMemberInput contains parameters for decrementing a room's member count
type RemoveMemberInput struct {
	Name string
}

// RemoveMemberOutput contains the room metadata after the leave
type RemoveMemberOutput struct {
	Info *arena.RoomInfo
}

// AppendMessageInput contains parameters for appending to a room's log
type AppendMessageInput struct {
	Name    string
	Message arena.ChatMessage
}

// AppendMessageOutput contains the result of appending a message
type AppendMessageOutput struct{}

// HistoryInput contains parameters for reading the tail of a room's log
type HistoryInput struct {
	Name string
	// Limit bounds the number of returned messages; zero means no bound
	Limit uint32
}

// HistoryOutput contains the most recent messages in chronological order
type HistoryOutput struct {
	Messages []arena.ChatMessage
}

// ListInput contains parameters for listing rooms
type ListInput struct{}

// ListOutput contains metadata for every room in the directory
type ListOutput struct {
	Rooms []*arena.RoomInfo
}

// Repository is the synchronized container for the room directory. Rooms
// are keyed by unique name and are never removed; handle operations must
// still treat a missing room as possible and report NotFound.
type Repository interface {
	// Create registers a new room; the name must be unique
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get reads the current metadata of a room by name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// AddMember increments the member count
	AddMember(ctx context.Context, input AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember decrements the member count, flooring at zero
	RemoveMember(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error)

	// AppendMessage appends to the room's log; the log is append-only and
	// chronological
	AppendMessage(ctx context.Context, input AppendMessageInput) (*AppendMessageOutput, error)

	// History returns the most recent Limit messages in chronological order
	History(ctx context.Context, input HistoryInput) (*HistoryOutput, error)

	// List returns metadata for every room
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
