package inventories

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

type playerInventory struct {
	slots []arena.InventorySlot
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.Mutex
	store map[uint64]*playerInventory
}

// NewInMemory creates a new in-memory inventory store
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[uint64]*playerInventory),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// getOrCreate returns the player's inventory, materializing an empty one
// on first touch. Callers must hold the lock.
func (r *InMemoryRepository) getOrCreate(playerID uint64) *playerInventory {
	inv, ok := r.store[playerID]
	if !ok {
		inv = &playerInventory{}
		r.store[playerID] = inv
	}
	return inv
}

// Get returns a snapshot of the player's inventory
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv := r.getOrCreate(input.PlayerID)

	slots := make([]arena.InventorySlot, len(inv.slots))
	copy(slots, inv.slots)

	return &GetOutput{
		Inventory: &arena.Inventory{
			PlayerID:  input.PlayerID,
			Slots:     slots,
			Capacity:  arena.InventoryCapacity,
			UsedSlots: uint16(len(slots)), // nolint:gosec // slot count is bounded
		},
	}, nil
}

// Add appends a new slot indexed by the current slot count
func (r *InMemoryRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.Quantity == 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	inv := r.getOrCreate(input.PlayerID)

	slot := arena.InventorySlot{
		SlotIndex: uint16(len(inv.slots)), // nolint:gosec // slot count is bounded
		Item:      input.Item,
		Quantity:  input.Quantity,
	}
	inv.slots = append(inv.slots, slot)

	stored := slot
	return &AddOutput{Slot: &stored}, nil
}

// Remove decrements a slot's quantity, deleting the slot when it empties
func (r *InMemoryRepository) Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("player %d has no inventory", input.PlayerID)
	}

	for i := range inv.slots {
		if inv.slots[i].SlotIndex != input.SlotIndex {
			continue
		}

		held := inv.slots[i].Quantity
		if input.Quantity > held {
			return nil, errors.InvalidArgumentf(
				"cannot remove %d items from a stack of %d", input.Quantity, held)
		}

		if input.Quantity == held {
			inv.slots = append(inv.slots[:i], inv.slots[i+1:]...)
			return &RemoveOutput{Deleted: true}, nil
		}

		inv.slots[i].Quantity -= input.Quantity
		return &RemoveOutput{}, nil
	}

	return nil, errors.NotFoundf("slot %d not found", input.SlotIndex)
}
