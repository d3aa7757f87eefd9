package matchqueue

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

type matchRecord struct {
	info  arena.MatchInfo
	ready map[uint64]struct{}
}

func (m *matchRecord) snapshot() *arena.MatchInfo {
	c := m.info
	c.TeamA = append([]arena.PlayerInfo(nil), m.info.TeamA...)
	c.TeamB = append([]arena.PlayerInfo(nil), m.info.TeamB...)
	return &c
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.Mutex
	tickets map[uint64]*arena.Ticket
	matches map[uint64]*matchRecord
}

// NewInMemory creates a new in-memory matchmaking registry
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		tickets: make(map[uint64]*arena.Ticket),
		matches: make(map[uint64]*matchRecord),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Enqueue appends a ticket to the queue
func (r *InMemoryRepository) Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error) {
	if input.Ticket == nil {
		return nil, errors.InvalidArgument("ticket is required")
	}
	if input.Ticket.TicketID == 0 {
		return nil, errors.InvalidArgument("ticket ID must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tickets[input.Ticket.TicketID]; exists {
		return nil, errors.AlreadyExistsf("ticket %d already exists", input.Ticket.TicketID)
	}

	stored := *input.Ticket
	r.tickets[stored.TicketID] = &stored

	return &EnqueueOutput{}, nil
}

// Dequeue removes a ticket from the queue
func (r *InMemoryRepository) Dequeue(ctx context.Context, input DequeueInput) (*DequeueOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[input.TicketID]; !ok {
		return nil, errors.NotFoundf("ticket %d not found", input.TicketID)
	}
	delete(r.tickets, input.TicketID)

	return &DequeueOutput{}, nil
}

// CountByMode counts queued tickets for a mode
func (r *InMemoryRepository) CountByMode(ctx context.Context, input CountInput) (*CountOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := uint32(0)
	for _, t := range r.tickets {
		if t.Mode == input.Mode {
			count++
		}
	}

	return &CountOutput{Count: count}, nil
}

// CreateMatch registers a match under its pre-assigned id
func (r *InMemoryRepository) CreateMatch(ctx context.Context, input CreateMatchInput) (*CreateMatchOutput, error) {
	if input.Match == nil {
		return nil, errors.InvalidArgument("match is required")
	}
	if input.Match.ID == 0 {
		return nil, errors.InvalidArgument("match ID must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[input.Match.ID]; exists {
		return nil, errors.AlreadyExistsf("match %d already exists", input.Match.ID)
	}

	rec := &matchRecord{
		info:  *input.Match,
		ready: make(map[uint64]struct{}),
	}
	rec.info.TeamA = append([]arena.PlayerInfo(nil), input.Match.TeamA...)
	rec.info.TeamB = append([]arena.PlayerInfo(nil), input.Match.TeamB...)
	r.matches[rec.info.ID] = rec

	return &CreateMatchOutput{}, nil
}

// GetMatch returns a snapshot of the match
func (r *InMemoryRepository) GetMatch(ctx context.Context, input GetMatchInput) (*GetMatchOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.matches[input.MatchID]
	if !ok {
		return nil, errors.NotFoundf("match %d not found", input.MatchID)
	}

	return &GetMatchOutput{Match: rec.snapshot()}, nil
}

// SignalReady adds the player to the ready set under the registry lock
func (r *InMemoryRepository) SignalReady(ctx context.Context, input SignalReadyInput) (*SignalReadyOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.matches[input.MatchID]
	if !ok {
		return nil, errors.NotFoundf("match %d not found", input.MatchID)
	}

	rec.ready[input.PlayerID] = struct{}{}

	// AllReady fires only on the transition; redundant signals after the
	// match entered InProgress report false.
	total := len(rec.info.TeamA) + len(rec.info.TeamB)
	allReady := rec.info.State == arena.MatchReady && len(rec.ready) >= total
	if allReady {
		rec.info.State = arena.MatchInProgress
	}

	return &SignalReadyOutput{AllReady: allReady}, nil
}

// Complete moves the match to Completed
func (r *InMemoryRepository) Complete(ctx context.Context, input CompleteInput) (*CompleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.matches[input.MatchID]
	if !ok {
		return nil, errors.NotFoundf("match %d not found", input.MatchID)
	}

	rec.info.State = arena.MatchCompleted

	return &CompleteOutput{}, nil
}

// Cancel moves the match to Cancelled unless it is already running
func (r *InMemoryRepository) Cancel(ctx context.Context, input CancelInput) (*CancelOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.matches[input.MatchID]
	if !ok {
		return nil, errors.NotFoundf("match %d not found", input.MatchID)
	}

	if rec.info.State == arena.MatchInProgress {
		return nil, errors.InvalidArgument("cannot cancel a match in progress")
	}

	rec.info.State = arena.MatchCancelled

	return &CancelOutput{}, nil
}
