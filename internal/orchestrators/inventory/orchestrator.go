// Package inventory implements the inventory store orchestrator. Slotted
// inventories live in the inventories repository; StartTrade mints a
// TradeSession holding the negotiation state on its own.
package inventory

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/arena-api/internal/orchestrators/inventory Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/inventories"
)

// Service defines the interface for inventory store operations
type Service interface {
	// GetInventory returns a snapshot of the player's slots
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// AddItem appends a new slot for the player
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem decrements a slot's quantity, deleting the slot at zero
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// FilterByRarity returns the slots whose item ranks at or above the
	// minimum rarity
	FilterByRarity(ctx context.Context, input *FilterByRarityInput) (*FilterByRarityOutput, error)

	// StartTrade mints a negotiation handle between two players
	StartTrade(ctx context.Context, input *StartTradeInput) (*StartTradeOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	InventoryRepo inventories.Repository
	TradeIDGen    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.TradeIDGen == nil {
		vb.RequiredField("TradeIDGen")
	}

	return vb.Build()
}

type orchestrator struct {
	inventoryRepo inventories.Repository
	tradeIDGen    idgen.Generator
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		tradeIDGen:    cfg.TradeIDGen,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// GetInventory returns a snapshot of the player's inventory. A player
// never seen before gets an empty inventory, not an error.
func (o *orchestrator) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &GetInventoryOutput{Inventory: output.Inventory}, nil
}

// AddItem appends a new slot. Adding always succeeds; the slot index is
// the player's slot count at add time.
func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Quantity == 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	output, err := o.inventoryRepo.Add(ctx, inventories.AddInput{
		PlayerID: input.PlayerID,
		Item:     input.Item,
		Quantity: input.Quantity,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add item %q", input.Item.Name)
	}

	return &AddItemOutput{Slot: output.Slot}, nil
}

// RemoveItem decrements a slot's quantity. Removing more than held is
// InvalidArgument; removing exactly the held quantity deletes the slot.
func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.inventoryRepo.Remove(ctx, inventories.RemoveInput{
		PlayerID:  input.PlayerID,
		SlotIndex: input.SlotIndex,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{Deleted: output.Deleted}, nil
}

// FilterByRarity returns the slots whose item rarity ranks at or above
// MinRarity, preserving stored order.
func (o *orchestrator) FilterByRarity(ctx context.Context, input *FilterByRarityInput) (*FilterByRarityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	output, err := o.inventoryRepo.Get(ctx, inventories.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	matches := make([]arena.InventorySlot, 0, len(output.Inventory.Slots))
	for _, slot := range output.Inventory.Slots {
		if slot.Item.Rarity.AtLeast(input.MinRarity) {
			matches = append(matches, slot)
		}
	}

	return &FilterByRarityOutput{Slots: matches}, nil
}

// StartTrade mints a negotiation handle in the Proposing state. The
// session owns all negotiation state; inventories are untouched until a
// settlement mechanism exists.
func (o *orchestrator) StartTrade(ctx context.Context, input *StartTradeInput) (*StartTradeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.InitiatorID == 0 || input.TargetID == 0 {
		return nil, errors.InvalidArgument("initiator and target are required")
	}
	if input.InitiatorID == input.TargetID {
		return nil, errors.InvalidArgument("cannot trade with yourself")
	}

	session := &TradeSession{
		tradeID:     o.tradeIDGen.Generate(),
		initiatorID: input.InitiatorID,
		targetID:    input.TargetID,
		state:       arena.TradeProposing,
	}

	slog.Debug("started trade",
		"trade_id", session.tradeID,
		"initiator", input.InitiatorID,
		"target", input.TargetID)

	return &StartTradeOutput{Session: session}, nil
}
