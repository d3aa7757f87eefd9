package chat

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/repositories/rooms"
)

// RoomHandle is a capability minted by JoinRoom, bound to one room and
// one player snapshot. The handle holds no room state of its own; every
// operation resolves the bound room name through the rooms repository, so
// a room that has vanished from the directory reports NotFound.
//
// Leave does not invalidate the handle. Calls after Leave still work,
// which mirrors how callers hold capability references independently of
// membership. Known limitation, kept deliberately.
type RoomHandle struct {
	roomName string
	player   arena.PlayerInfo
	roomRepo rooms.Repository
	clock    clock.Clock
}

// RoomName returns the name of the bound room
func (h *RoomHandle) RoomName() string {
	return h.roomName
}

// Player returns the bound sender snapshot
func (h *RoomHandle) Player() arena.PlayerInfo {
	return h.player
}

// SendMessage appends a normal message stamped with the bound sender and
// the current time
func (h *RoomHandle) SendMessage(ctx context.Context, input *SendMessageInput) (*SendMessageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	message, err := h.append(ctx, input.Content, arena.MessageNormal)
	if err != nil {
		return nil, err
	}

	return &SendMessageOutput{Message: message}, nil
}

// SendEmote appends an emote stamped with the bound sender and the
// current time
func (h *RoomHandle) SendEmote(ctx context.Context, input *SendEmoteInput) (*SendEmoteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	message, err := h.append(ctx, input.Content, arena.MessageEmote)
	if err != nil {
		return nil, err
	}

	return &SendEmoteOutput{Message: message}, nil
}

// GetHistory returns the most recent Limit messages in chronological
// order, oldest first
func (h *RoomHandle) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := h.roomRepo.History(ctx, rooms.HistoryInput{
		Name:  h.roomName,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{Messages: output.Messages}, nil
}

// GetInfo reads the bound room's current metadata
func (h *RoomHandle) GetInfo(ctx context.Context, input *GetInfoInput) (*GetInfoOutput, error) {
	output, err := h.roomRepo.Get(ctx, rooms.GetInput{Name: h.roomName})
	if err != nil {
		return nil, err
	}

	return &GetInfoOutput{Info: output.Info}, nil
}

// Leave decrements the room's member count, flooring at zero. The handle
// stays usable afterwards.
func (h *RoomHandle) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	output, err := h.roomRepo.RemoveMember(ctx, rooms.RemoveMemberInput{Name: h.roomName})
	if err != nil {
		return nil, err
	}

	return &LeaveOutput{Info: output.Info}, nil
}

func (h *RoomHandle) append(ctx context.Context, content string, kind arena.MessageKind) (*arena.ChatMessage, error) {
	message := arena.ChatMessage{
		Sender:  h.player,
		Content: content,
		SentAt:  h.clock.Now(),
		Kind:    kind,
	}

	_, err := h.roomRepo.AppendMessage(ctx, rooms.AppendMessageInput{
		Name:    h.roomName,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	return &message, nil
}
