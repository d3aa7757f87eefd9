// Package matchmaking implements the matchmaking orchestrator. Tickets
// and live matches live in the matchqueue repository; completed results
// go to the results archive. FindMatch mints a MatchController bound to
// one match.
package matchmaking

//go:generate mockgen -destination=mock/mock_service.go -package=matchmakingmock github.com/KirkDiggler/arena-api/internal/orchestrators/matchmaking Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/matchqueue"
	"github.com/KirkDiggler/arena-api/internal/repositories/results"
)

const (
	// EstimatedWait is the flat wait estimate reported on tickets and in
	// queue stats. No real wait model exists yet.
	EstimatedWait = 30 * time.Second

	// Synthesized opponent roster for immediate matches
	botOpponentID    uint64 = 999
	botOpponentName         = "Opponent"
	botOpponentLevel uint16 = 10
)

// Service defines the interface for matchmaking operations
type Service interface {
	// Enqueue issues a ticket for the player in a mode's queue
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)

	// Dequeue withdraws a ticket
	Dequeue(ctx context.Context, input *DequeueInput) (*DequeueOutput, error)

	// FindMatch creates a match against a synthesized opponent roster and
	// mints its controller handle. The queue is not consulted.
	FindMatch(ctx context.Context, input *FindMatchInput) (*FindMatchOutput, error)

	// GetQueueStats reports how many tickets wait in a mode's queue
	GetQueueStats(ctx context.Context, input *GetQueueStatsInput) (*GetQueueStatsOutput, error)

	// GetMatchResult reads an archived result by match id
	GetMatchResult(ctx context.Context, input *GetMatchResultInput) (*GetMatchResultOutput, error)
}

// Config holds the dependencies for the matchmaking orchestrator
type Config struct {
	QueueRepo  matchqueue.Repository
	ResultRepo results.Repository
	TicketIDs  idgen.Sequence
	MatchIDs   idgen.Sequence
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.QueueRepo == nil {
		vb.RequiredField("QueueRepo")
	}
	if c.ResultRepo == nil {
		vb.RequiredField("ResultRepo")
	}
	if c.TicketIDs == nil {
		vb.RequiredField("TicketIDs")
	}
	if c.MatchIDs == nil {
		vb.RequiredField("MatchIDs")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	queueRepo  matchqueue.Repository
	resultRepo results.Repository
	ticketIDs  idgen.Sequence
	matchIDs   idgen.Sequence
	clock      clock.Clock
}

// NewOrchestrator creates a new matchmaking orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		queueRepo:  cfg.QueueRepo,
		resultRepo: cfg.ResultRepo,
		ticketIDs:  cfg.TicketIDs,
		matchIDs:   cfg.MatchIDs,
		clock:      cfg.Clock,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// Enqueue issues a ticket. Tickets sit in the queue until withdrawn;
// nothing expires them.
func (o *orchestrator) Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Player.ID == 0 {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Mode == "" {
		return nil, errors.InvalidArgument("mode is required")
	}

	ticket := &arena.Ticket{
		TicketID:      o.ticketIDs.Next(),
		Player:        input.Player,
		Mode:          input.Mode,
		EnqueuedAt:    o.clock.Now(),
		EstimatedWait: EstimatedWait,
	}

	if _, err := o.queueRepo.Enqueue(ctx, matchqueue.EnqueueInput{Ticket: ticket}); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue ticket")
	}

	return &EnqueueOutput{Ticket: ticket}, nil
}

// Dequeue withdraws a ticket. A ticket already withdrawn reports
// NotFound again.
func (o *orchestrator) Dequeue(ctx context.Context, input *DequeueInput) (*DequeueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if _, err := o.queueRepo.Dequeue(ctx, matchqueue.DequeueInput{TicketID: input.TicketID}); err != nil {
		return nil, err
	}

	return &DequeueOutput{}, nil
}

// FindMatch registers a match pitting the player against a synthesized
// opponent and mints its controller. The match starts in the Ready state
// waiting on ready signals.
func (o *orchestrator) FindMatch(ctx context.Context, input *FindMatchInput) (*FindMatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Player.ID == 0 {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Mode == "" {
		return nil, errors.InvalidArgument("mode is required")
	}

	match := &arena.MatchInfo{
		ID:    o.matchIDs.Next(),
		Mode:  input.Mode,
		State: arena.MatchReady,
		TeamA: []arena.PlayerInfo{input.Player},
		TeamB: []arena.PlayerInfo{{
			ID:      botOpponentID,
			Name:    botOpponentName,
			Faction: arena.FactionNeutral,
			Level:   botOpponentLevel,
		}},
		CreatedAt: o.clock.Now(),
	}

	if _, err := o.queueRepo.CreateMatch(ctx, matchqueue.CreateMatchInput{Match: match}); err != nil {
		return nil, errors.Wrapf(err, "failed to create match %d", match.ID)
	}

	slog.Info("created match",
		"match_id", match.ID,
		"mode", match.Mode,
		"player", input.Player.ID)

	controller := &MatchController{
		matchID:    match.ID,
		queueRepo:  o.queueRepo,
		resultRepo: o.resultRepo,
	}

	return &FindMatchOutput{Match: match, Controller: controller}, nil
}

// GetQueueStats counts the queued tickets for a mode. AvgWait is the
// same flat estimate tickets carry.
func (o *orchestrator) GetQueueStats(ctx context.Context, input *GetQueueStatsInput) (*GetQueueStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.queueRepo.CountByMode(ctx, matchqueue.CountInput{Mode: input.Mode})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tickets")
	}

	return &GetQueueStatsOutput{
		PlayersInQueue: output.Count,
		AvgWait:        EstimatedWait,
	}, nil
}

// GetMatchResult reads an archived result by match id
func (o *orchestrator) GetMatchResult(ctx context.Context, input *GetMatchResultInput) (*GetMatchResultOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.resultRepo.Get(ctx, results.GetInput{MatchID: input.MatchID})
	if err != nil {
		return nil, err
	}

	return &GetMatchResultOutput{Result: output.Result}, nil
}
