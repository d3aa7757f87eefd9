package arena

// InventoryCapacity is the fixed slot capacity of every player inventory
const InventoryCapacity uint16 = 50

// Item describes a stackable item
type Item struct {
	ID     uint64
	Name   string
	Rarity Rarity
	Level  uint16
}

// InventorySlot holds a stack of one item. SlotIndex is assigned from the
// slot count at add time and identifies the slot for removal; after
// deletions it is not an index into the slice.
type InventorySlot struct {
	SlotIndex uint16
	Item      Item
	Quantity  uint32
}

// Inventory is a view of one player's slots
type Inventory struct {
	PlayerID  uint64
	Slots     []InventorySlot
	Capacity  uint16
	UsedSlots uint16
}

// TradeOffer is one side's current offer in a trade negotiation
type TradeOffer struct {
	Slots    []uint16
	Accepted bool
}
