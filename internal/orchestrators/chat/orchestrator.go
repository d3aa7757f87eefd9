// Package chat implements the chat directory orchestrator. Joining a room
// mints a RoomHandle bound to one (room, player) pair; any number of
// handles can share one room's log and member count through the rooms
// repository.
package chat

//go:generate mockgen -destination=mock/mock_service.go -package=chatmock github.com/KirkDiggler/arena-api/internal/orchestrators/chat Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/rooms"
)

// Service defines the interface for chat directory operations
type Service interface {
	// CreateRoom registers a new room under a unique name
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom increments the member count and mints a handle bound to
	// the room and the joining player
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// ListRooms returns metadata for every room
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// Whisper builds a targeted message without persisting it anywhere
	Whisper(ctx context.Context, input *WhisperInput) (*WhisperOutput, error)
}

// Config holds the dependencies for the chat orchestrator
type Config struct {
	RoomRepo   rooms.Repository
	IDSequence idgen.Sequence
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.IDSequence == nil {
		vb.RequiredField("IDSequence")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	roomRepo rooms.Repository
	idSeq    idgen.Sequence
	clock    clock.Clock
}

// NewOrchestrator creates a new chat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roomRepo: cfg.RoomRepo,
		idSeq:    cfg.IDSequence,
		clock:    cfg.Clock,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// CreateRoom registers a new room. Names are unique; a second room with
// the same name reports AlreadyExists and leaves the first untouched.
func (o *orchestrator) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("room name is required")
	}

	output, err := o.roomRepo.Create(ctx, rooms.CreateInput{
		ID:    o.idSeq.Next(),
		Name:  input.Name,
		Topic: input.Topic,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("created room", "id", output.Info.ID, "name", output.Info.Name)

	return &CreateRoomOutput{Info: output.Info}, nil
}

// JoinRoom increments the room's member count and mints a new handle.
// Multiple joins to the same room each get an independent handle backed
// by the same room record.
func (o *orchestrator) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.RoomName == "" {
		return nil, errors.InvalidArgument("room name is required")
	}

	output, err := o.roomRepo.AddMember(ctx, rooms.AddMemberInput{Name: input.RoomName})
	if err != nil {
		return nil, err
	}

	handle := &RoomHandle{
		roomName: input.RoomName,
		player:   input.Player,
		roomRepo: o.roomRepo,
		clock:    o.clock,
	}

	return &JoinRoomOutput{Handle: handle, Info: output.Info}, nil
}

// ListRooms returns metadata for every room in the directory
func (o *orchestrator) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	output, err := o.roomRepo.List(ctx, rooms.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	return &ListRoomsOutput{Rooms: output.Rooms}, nil
}

// Whisper builds a message tagged with a whisper target and returns it to
// the caller. It touches no room log.
func (o *orchestrator) Whisper(ctx context.Context, input *WhisperInput) (*WhisperOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.TargetID == 0 {
		return nil, errors.InvalidArgument("whisper target is required")
	}

	message := &arena.ChatMessage{
		Sender:        input.From,
		Content:       input.Content,
		SentAt:        o.clock.Now(),
		Kind:          arena.MessageWhisper,
		WhisperTarget: input.TargetID,
	}

	return &WhisperOutput{Message: message}, nil
}
