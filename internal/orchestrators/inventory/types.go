package inventory

import (
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// GetInventoryInput contains parameters for reading a player's inventory
type GetInventoryInput struct {
	PlayerID uint64
}

// GetInventoryOutput contains a snapshot of the inventory
type GetInventoryOutput struct {
	Inventory *arena.Inventory
}

// AddItemInput contains parameters for adding an item stack
type AddItemInput struct {
	PlayerID uint64
	Item     arena.Item
	Quantity uint32
}

// AddItemOutput contains the newly created slot
type AddItemOutput struct {
	Slot *arena.InventorySlot
}

// RemoveItemInput contains parameters for removing quantity from a slot
type RemoveItemInput struct {
	PlayerID  uint64
	SlotIndex uint16
	Quantity  uint32
}

// RemoveItemOutput contains the result of a removal
type RemoveItemOutput struct {
	// Deleted is true when the removal emptied the slot
	Deleted bool
}

// FilterByRarityInput contains parameters for filtering slots by rarity
type FilterByRarityInput struct {
	PlayerID  uint64
	MinRarity arena.Rarity
}

// FilterByRarityOutput contains the slots at or above the minimum rarity,
// in stored order
type FilterByRarityOutput struct {
	Slots []arena.InventorySlot
}

// StartTradeInput contains parameters for opening a trade negotiation
type StartTradeInput struct {
	InitiatorID uint64
	TargetID    uint64
}

// StartTradeOutput contains the minted negotiation handle
type StartTradeOutput struct {
	Session *TradeSession
}

// OfferItemsInput contains the slot indexes to offer. The list replaces
// any previous offer wholesale.
type OfferItemsInput struct {
	Slots []uint16
}

// OfferItemsOutput contains this side's offer after the replacement
type OfferItemsOutput struct {
	Offer arena.TradeOffer
}

// RemoveOfferedItemsInput contains the slot indexes to withdraw from this
// side's offer
type RemoveOfferedItemsInput struct {
	Slots []uint16
}

// RemoveOfferedItemsOutput contains this side's offer after the withdrawal
type RemoveOfferedItemsOutput struct {
	Offer arena.TradeOffer
}

// AcceptInput contains parameters for accepting the trade
type AcceptInput struct{}

// AcceptOutput contains the trade state after the accept
type AcceptOutput struct {
	State arena.TradeState
}

// ConfirmInput contains parameters for confirming the trade
type ConfirmInput struct{}

// ConfirmOutput contains the trade state after the confirm
type ConfirmOutput struct {
	State arena.TradeState
}

// CancelTradeInput contains parameters for cancelling the trade
type CancelTradeInput struct{}

// CancelTradeOutput contains the trade state after the cancel
type CancelTradeOutput struct {
	State arena.TradeState
}

// ViewOtherOfferInput contains parameters for reading the counterparty's
// offer
type ViewOtherOfferInput struct{}

// ViewOtherOfferOutput contains the counterparty's offer as this session
// sees it
type ViewOtherOfferOutput struct {
	Offer arena.TradeOffer
}

// GetStateInput contains parameters for reading the trade state
type GetStateInput struct{}

// GetStateOutput contains the current trade state
type GetStateOutput struct {
	State arena.TradeState
}
