package matchmaking

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/repositories/matchqueue"
	"github.com/KirkDiggler/arena-api/internal/repositories/results"
)

// MatchController is a capability minted by FindMatch, bound to one
// match in the registry. The controller itself is stateless; readiness
// bookkeeping and state transitions happen in the matchqueue repository
// under its lock, so controllers held by different callers stay
// consistent.
type MatchController struct {
	matchID    uint64
	queueRepo  matchqueue.Repository
	resultRepo results.Repository
}

// MatchID returns the id of the bound match
func (c *MatchController) MatchID() uint64 {
	return c.matchID
}

// GetInfo returns a snapshot of the bound match
func (c *MatchController) GetInfo(ctx context.Context, input *GetMatchInfoInput) (*GetMatchInfoOutput, error) {
	output, err := c.queueRepo.GetMatch(ctx, matchqueue.GetMatchInput{MatchID: c.matchID})
	if err != nil {
		return nil, err
	}

	return &GetMatchInfoOutput{Match: output.Match}, nil
}

// SignalReady marks a player ready. Signaling twice is idempotent.
// AllReady is true exactly on the call that completes the roster, which
// also moves the match to InProgress.
func (c *MatchController) SignalReady(ctx context.Context, input *SignalReadyInput) (*SignalReadyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.PlayerID == 0 {
		return nil, errors.InvalidArgument("player is required")
	}

	output, err := c.queueRepo.SignalReady(ctx, matchqueue.SignalReadyInput{
		MatchID:  c.matchID,
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &SignalReadyOutput{AllReady: output.AllReady}, nil
}

// ReportResult archives the outcome and moves the bound match to
// Completed. The payload's match id must name the bound match; a
// controller cannot complete a match it does not control.
func (c *MatchController) ReportResult(ctx context.Context, input *ReportResultInput) (*ReportResultOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.InvalidArgument("result is required")
	}
	if input.Result.MatchID != c.matchID {
		return nil, errors.InvalidArgumentf(
			"result names match %d but this controller is bound to match %d",
			input.Result.MatchID, c.matchID)
	}

	saved, err := c.resultRepo.Save(ctx, results.SaveInput{Result: input.Result})
	if err != nil {
		return nil, errors.Wrap(err, "failed to archive result")
	}

	if _, err := c.queueRepo.Complete(ctx, matchqueue.CompleteInput{MatchID: c.matchID}); err != nil {
		return nil, errors.Wrapf(err, "failed to complete match %d", c.matchID)
	}

	return &ReportResultOutput{Result: saved.Result}, nil
}

// Cancel moves the bound match to Cancelled. A match already in progress
// cannot be cancelled.
func (c *MatchController) Cancel(ctx context.Context, input *CancelMatchInput) (*CancelMatchOutput, error) {
	if _, err := c.queueRepo.Cancel(ctx, matchqueue.CancelInput{MatchID: c.matchID}); err != nil {
		return nil, err
	}

	return &CancelMatchOutput{}, nil
}
