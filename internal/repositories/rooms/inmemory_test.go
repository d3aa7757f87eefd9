package rooms_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/repositories/rooms"
)

func createRoom(t *testing.T, repo rooms.Repository, id uint64, name string) {
	t.Helper()
	_, err := repo.Create(context.Background(), rooms.CreateInput{ID: id, Name: name, Topic: "general"})
	require.NoError(t, err)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := rooms.NewInMemory()
	ctx := context.Background()

	createRoom(t, repo, 1, "tavern")

	_, err := repo.Create(ctx, rooms.CreateInput{ID: 2, Name: "tavern", Topic: "other"})
	assert.True(t, errors.IsAlreadyExists(err))

	// First registration untouched by the failed second attempt
	got, err := repo.Get(ctx, rooms.GetInput{Name: "tavern"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.Info.ID)
	assert.Equal(t, "general", got.Info.Topic)
}

func TestMemberCountFloor(t *testing.T) {
	repo := rooms.NewInMemory()
	ctx := context.Background()

	createRoom(t, repo, 1, "tavern")

	out, err := repo.AddMember(ctx, rooms.AddMemberInput{Name: "tavern"})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), out.Info.MemberCount)

	left, err := repo.RemoveMember(ctx, rooms.RemoveMemberInput{Name: "tavern"})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), left.Info.MemberCount)

	// Leaving an empty room floors at zero instead of underflowing
	left, err = repo.RemoveMember(ctx, rooms.RemoveMemberInput{Name: "tavern"})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), left.Info.MemberCount)
}

func TestHistoryTailChronological(t *testing.T) {
	repo := rooms.NewInMemory()
	ctx := context.Background()

	createRoom(t, repo, 1, "tavern")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, content := range []string{"one", "two", "three"} {
		_, err := repo.AppendMessage(ctx, rooms.AppendMessageInput{
			Name: "tavern",
			Message: arena.ChatMessage{
				Sender:  arena.PlayerInfo{ID: 7, Name: "Mira"},
				Content: content,
				SentAt:  base.Add(time.Duration(i) * time.Second),
				Kind:    arena.MessageNormal,
			},
		})
		require.NoError(t, err)
	}

	out, err := repo.History(ctx, rooms.HistoryInput{Name: "tavern", Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Messages, 2)
	assert.Equal(t, "two", out.Messages[0].Content)
	assert.Equal(t, "three", out.Messages[1].Content)

	all, err := repo.History(ctx, rooms.HistoryInput{Name: "tavern"})
	require.NoError(t, err)
	assert.Len(t, all.Messages, 3)
}

func TestMissingRoomNotFound(t *testing.T) {
	repo := rooms.NewInMemory()
	ctx := context.Background()

	_, err := repo.Get(ctx, rooms.GetInput{Name: "nowhere"})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.AppendMessage(ctx, rooms.AppendMessageInput{Name: "nowhere"})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.History(ctx, rooms.HistoryInput{Name: "nowhere"})
	assert.True(t, errors.IsNotFound(err))
}

func TestList(t *testing.T) {
	repo := rooms.NewInMemory()

	createRoom(t, repo, 1, "tavern")
	createRoom(t, repo, 2, "arena")

	out, err := repo.List(context.Background(), rooms.ListInput{})
	require.NoError(t, err)
	assert.Len(t, out.Rooms, 2)
}
