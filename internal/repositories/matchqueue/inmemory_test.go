package matchqueue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/repositories/matchqueue"
)

func queueTicket(t *testing.T, repo matchqueue.Repository, id uint64, mode arena.GameMode) {
	t.Helper()
	_, err := repo.Enqueue(context.Background(), matchqueue.EnqueueInput{
		Ticket: &arena.Ticket{
			TicketID:      id,
			Player:        arena.PlayerInfo{ID: id, Name: "queued"},
			Mode:          mode,
			EnqueuedAt:    time.Now(),
			EstimatedWait: 30 * time.Second,
		},
	})
	require.NoError(t, err)
}

func createDuel(t *testing.T, repo matchqueue.Repository, id uint64) {
	t.Helper()
	_, err := repo.CreateMatch(context.Background(), matchqueue.CreateMatchInput{
		Match: &arena.MatchInfo{
			ID:        id,
			Mode:      arena.ModeDuel,
			State:     arena.MatchReady,
			TeamA:     []arena.PlayerInfo{{ID: 10, Name: "Mira"}},
			TeamB:     []arena.PlayerInfo{{ID: 999, Name: "Opponent", Level: 10}},
			CreatedAt: time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestEnqueueDuplicateTicketID(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	queueTicket(t, repo, 1, arena.ModeDuel)

	_, err := repo.Enqueue(ctx, matchqueue.EnqueueInput{
		Ticket: &arena.Ticket{
			TicketID: 1,
			Player:   arena.PlayerInfo{ID: 2, Name: "late"},
			Mode:     arena.ModeCapture,
		},
	})
	assert.True(t, errors.IsAlreadyExists(err))

	// The original ticket is untouched
	count, err := repo.CountByMode(ctx, matchqueue.CountInput{Mode: arena.ModeDuel})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count.Count)
}

func TestDequeueSpentTicket(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	queueTicket(t, repo, 1, arena.ModeDuel)

	_, err := repo.Dequeue(ctx, matchqueue.DequeueInput{TicketID: 1})
	require.NoError(t, err)

	_, err = repo.Dequeue(ctx, matchqueue.DequeueInput{TicketID: 1})
	assert.True(t, errors.IsNotFound(err))
}

func TestCountByMode(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	queueTicket(t, repo, 1, arena.ModeDuel)
	queueTicket(t, repo, 2, arena.ModeDuel)
	queueTicket(t, repo, 3, arena.ModeCapture)

	out, err := repo.CountByMode(ctx, matchqueue.CountInput{Mode: arena.ModeDuel})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), out.Count)

	out, err = repo.CountByMode(ctx, matchqueue.CountInput{Mode: arena.ModeDeathmatch})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), out.Count)
}

func TestSignalReadyTransition(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	createDuel(t, repo, 1)

	first, err := repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 10})
	require.NoError(t, err)
	assert.False(t, first.AllReady)

	// Re-signaling the same player is idempotent and does not complete the roster
	again, err := repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 10})
	require.NoError(t, err)
	assert.False(t, again.AllReady)

	second, err := repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 999})
	require.NoError(t, err)
	assert.True(t, second.AllReady)

	match, err := repo.GetMatch(ctx, matchqueue.GetMatchInput{MatchID: 1})
	require.NoError(t, err)
	assert.Equal(t, arena.MatchInProgress, match.Match.State)

	// The transition already happened; a late signal reports false
	late, err := repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 10})
	require.NoError(t, err)
	assert.False(t, late.AllReady)
}

func TestCancelGuardsInProgress(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	createDuel(t, repo, 1)

	_, err := repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 10})
	require.NoError(t, err)
	_, err = repo.SignalReady(ctx, matchqueue.SignalReadyInput{MatchID: 1, PlayerID: 999})
	require.NoError(t, err)

	_, err = repo.Cancel(ctx, matchqueue.CancelInput{MatchID: 1})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCancelBeforeStart(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	createDuel(t, repo, 1)

	_, err := repo.Cancel(ctx, matchqueue.CancelInput{MatchID: 1})
	require.NoError(t, err)

	match, err := repo.GetMatch(ctx, matchqueue.GetMatchInput{MatchID: 1})
	require.NoError(t, err)
	assert.Equal(t, arena.MatchCancelled, match.Match.State)
}

func TestCompleteMatch(t *testing.T) {
	repo := matchqueue.NewInMemory()
	ctx := context.Background()

	createDuel(t, repo, 1)

	_, err := repo.Complete(ctx, matchqueue.CompleteInput{MatchID: 1})
	require.NoError(t, err)

	match, err := repo.GetMatch(ctx, matchqueue.GetMatchInput{MatchID: 1})
	require.NoError(t, err)
	assert.Equal(t, arena.MatchCompleted, match.Match.State)
}

func TestGetMissingMatch(t *testing.T) {
	repo := matchqueue.NewInMemory()

	_, err := repo.GetMatch(context.Background(), matchqueue.GetMatchInput{MatchID: 404})
	assert.True(t, errors.IsNotFound(err))
}
