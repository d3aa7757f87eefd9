// Package inventories provides the repository interface and types for
// per-player slotted inventories
package inventories

import (
	"context"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=inventoriesmock github.com/KirkDiggler/arena-api/internal/repositories/inventories Repository

// GetInput contains parameters for reading a player's inventory
type GetInput struct {
	PlayerID uint64
}

// GetOutput contains a snapshot of the player's inventory
type GetOutput struct {
	Inventory *arena.Inventory
}

// AddInput contains parameters for adding an item stack
type AddInput struct {
	PlayerID uint64
	Item     arena.Item
	Quantity uint32
}

// AddOutput contains the newly created slot
type AddOutput struct {
	Slot *arena.InventorySlot
}

// RemoveInput contains parameters for removing quantity from a slot
type RemoveInput struct {
	PlayerID  uint64
	SlotIndex uint16
	Quantity  uint32
}

// RemoveOutput contains the result of a removal
type RemoveOutput struct {
	// Deleted is true when the removal emptied the slot entirely
	Deleted bool
}

// Repository is the synchronized container for player inventories. A
// player's inventory materializes empty on first touch; there is no
// explicit creation call.
type Repository interface {
	// Get returns a snapshot of the player's inventory
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Add appends a new slot. The slot index is the slot count at add
	// time; indexes are not recomputed after removals.
	Add(ctx context.Context, input AddInput) (*AddOutput, error)

	// Remove decrements a slot's quantity. Removing more than held is
	// InvalidArgument; reaching zero deletes the slot.
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)
}
