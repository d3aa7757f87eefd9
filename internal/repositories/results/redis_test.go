package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/repositories/results"
	"github.com/KirkDiggler/arena-api/internal/testutils"
)

func newTestRepository(t *testing.T, now time.Time) (results.Repository, func()) {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)

	repo, err := results.NewRedisRepository(&results.Config{
		Client: client,
		Clock:  &clock.Fixed{Time: now},
	})
	require.NoError(t, err)

	return repo, cleanup
}

func TestSaveAndGet(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, cleanup := newTestRepository(t, now)
	defer cleanup()

	ctx := context.Background()

	saved, err := repo.Save(ctx, results.SaveInput{
		Result: &arena.MatchResult{
			MatchID:     7,
			WinningTeam: 1,
			Duration:    4 * time.Minute,
			PlayerStats: []arena.PlayerStats{
				{PlayerID: 10, Kills: 5, Deaths: 2, Assists: 1, Score: 1200},
				{PlayerID: 999, Kills: 2, Deaths: 5, Score: 400},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, now, saved.Result.ReportedAt)

	got, err := repo.Get(ctx, results.GetInput{MatchID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Result.MatchID)
	assert.Equal(t, uint8(1), got.Result.WinningTeam)
	assert.Equal(t, 4*time.Minute, got.Result.Duration)
	require.Len(t, got.Result.PlayerStats, 2)
	assert.Equal(t, uint32(5), got.Result.PlayerStats[0].Kills)
	assert.True(t, got.Result.ReportedAt.Equal(now))
}

func TestGetMissing(t *testing.T) {
	repo, cleanup := newTestRepository(t, time.Now())
	defer cleanup()

	_, err := repo.Get(context.Background(), results.GetInput{MatchID: 404})
	assert.True(t, errors.IsNotFound(err))
}

func TestSaveValidation(t *testing.T) {
	repo, cleanup := newTestRepository(t, time.Now())
	defer cleanup()

	ctx := context.Background()

	_, err := repo.Save(ctx, results.SaveInput{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Save(ctx, results.SaveInput{Result: &arena.MatchResult{}})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConfigValidation(t *testing.T) {
	_, err := results.NewRedisRepository(&results.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}
