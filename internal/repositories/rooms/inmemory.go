package rooms

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

type roomRecord struct {
	id      uint64
	name    string
	topic   string
	members uint32
	log     []arena.ChatMessage
}

func (r *roomRecord) info() *arena.RoomInfo {
	return &arena.RoomInfo{
		ID:          r.id,
		Name:        r.name,
		Topic:       r.topic,
		MemberCount: r.members,
	}
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*roomRecord
}

// NewInMemory creates a new in-memory room directory
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*roomRecord),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create registers a new room under a unique name
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("room name is required")
	}
	if input.ID == 0 {
		return nil, errors.InvalidArgument("room ID must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Name]; exists {
		return nil, errors.AlreadyExistsf("room %q already exists", input.Name)
	}

	rec := &roomRecord{
		id:    input.ID,
		name:  input.Name,
		topic: input.Topic,
	}
	r.store[input.Name] = rec

	return &CreateOutput{Info: rec.info()}, nil
}

// Get reads the current metadata of a room
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("room %q not found", input.Name)
	}

	return &GetOutput{Info: rec.info()}, nil
}

// AddMember increments the member count
func (r *InMemoryRepository) AddMember(ctx context.Context, input AddMemberInput) (*AddMemberOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("room %q not found", input.Name)
	}

	rec.members++

	return &AddMemberOutput{Info: rec.info()}, nil
}

// RemoveMember decrements the member count, flooring at zero
func (r *InMemoryRepository) RemoveMember(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("room %q not found", input.Name)
	}

	if rec.members > 0 {
		rec.members--
	}

	return &RemoveMemberOutput{Info: rec.info()}, nil
}

// AppendMessage appends to the room's chronological log
func (r *InMemoryRepository) AppendMessage(ctx context.Context, input AppendMessageInput) (*AppendMessageOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("room %q not found", input.Name)
	}

	rec.log = append(rec.log, input.Message)

	return &AppendMessageOutput{}, nil
}

// History returns the most recent Limit messages in chronological order
func (r *InMemoryRepository) History(ctx context.Context, input HistoryInput) (*HistoryOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.store[input.Name]
	if !exists {
		return nil, errors.NotFoundf("room %q not found", input.Name)
	}

	msgs := rec.log
	if input.Limit > 0 && uint32(len(msgs)) > input.Limit {
		msgs = msgs[len(msgs)-int(input.Limit):]
	}

	out := make([]arena.ChatMessage, len(msgs))
	copy(out, msgs)

	return &HistoryOutput{Messages: out}, nil
}

// List returns metadata for every room
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*arena.RoomInfo, 0, len(r.store))
	for _, rec := range r.store {
		out = append(out, rec.info())
	}

	return &ListOutput{Rooms: out}, nil
}
