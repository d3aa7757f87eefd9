package chat

import (
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	Name  string
	Topic string
}

// CreateRoomOutput contains the created room's metadata
type CreateRoomOutput struct {
	Info *arena.RoomInfo
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomName string
	Player   arena.PlayerInfo
}

// JoinRoomOutput contains the minted handle and the room metadata after
// the join
type JoinRoomOutput struct {
	Handle *RoomHandle
	Info   *arena.RoomInfo
}

// ListRoomsInput contains parameters for listing rooms
type ListRoomsInput struct{}

// ListRoomsOutput contains metadata for every room
type ListRoomsOutput struct {
	Rooms []*arena.RoomInfo
}

// WhisperInput contains parameters for a direct whisper
type WhisperInput struct {
	From     arena.PlayerInfo
	TargetID uint64
	Content  string
}

// WhisperOutput contains the built whisper message. Whispers are never
// persisted to any room log.
type WhisperOutput struct {
	Message *arena.ChatMessage
}

// SendMessageInput contains parameters for sending a message through a
// room handle
type SendMessageInput struct {
	Content string
}

// SendMessageOutput contains the appended message
type SendMessageOutput struct {
	Message *arena.ChatMessage
}

// SendEmoteInput contains parameters for sending an emote through a room
// handle
type SendEmoteInput struct {
	Content string
}

// SendEmoteOutput contains the appended emote
type SendEmoteOutput struct {
	Message *arena.ChatMessage
}

// GetHistoryInput contains parameters for reading the tail of the room log
type GetHistoryInput struct {
	// Limit bounds the number of returned messages; zero means no bound
	Limit uint32
}

// GetHistoryOutput contains the most recent messages, oldest first
type GetHistoryOutput struct {
	Messages []arena.ChatMessage
}

// GetInfoInput contains parameters for reading the room's metadata
type GetInfoInput struct{}

// GetInfoOutput contains the room's current metadata
type GetInfoOutput struct {
	Info *arena.RoomInfo
}

// LeaveInput contains parameters for leaving the room
type LeaveInput struct{}

// LeaveOutput contains the room metadata after the leave
type LeaveOutput struct {
	Info *arena.RoomInfo
}
