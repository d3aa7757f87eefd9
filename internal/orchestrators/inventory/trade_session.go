package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// TradeSession is a capability minted by StartTrade. It owns the
// negotiation state exclusively; no registry holds a reference back to
// it, so the session lives exactly as long as its callers do.
//
// The session is single-sided. All mutating operations act on the
// initiator's half; the counterparty's offer and accepted flag exist in
// the model but nothing populates them, so Accept can never observe a
// counterparty that has already accepted and the Accepted state is
// unreachable through this surface. Mutual consent needs a shared session
// registry with one facade per participant, which this layer does not
// provide. Confirm and Cancel are unconditional and do not depend on the
// counterparty.
type TradeSession struct {
	tradeID     string
	initiatorID uint64
	targetID    uint64

	mu         sync.Mutex
	state      arena.TradeState
	myOffer    arena.TradeOffer
	otherOffer arena.TradeOffer
}

// TradeID returns the session's id
func (s *TradeSession) TradeID() string {
	return s.tradeID
}

// InitiatorID returns the player who opened the trade
func (s *TradeSession) InitiatorID() uint64 {
	return s.initiatorID
}

// TargetID returns the counterparty player
func (s *TradeSession) TargetID() uint64 {
	return s.targetID
}

// OfferItems replaces this side's offered slot list wholesale
func (s *TradeSession) OfferItems(ctx context.Context, input *OfferItemsInput) (*OfferItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.myOffer.Slots = append([]uint16(nil), input.Slots...)

	return &OfferItemsOutput{Offer: s.snapshotMyOffer()}, nil
}

// RemoveOfferedItems withdraws the listed slot indexes from this side's
// offer, leaving the rest in place
func (s *TradeSession) RemoveOfferedItems(ctx context.Context, input *RemoveOfferedItemsInput) (*RemoveOfferedItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[uint16]bool, len(input.Slots))
	for _, idx := range input.Slots {
		drop[idx] = true
	}

	kept := s.myOffer.Slots[:0]
	for _, idx := range s.myOffer.Slots {
		if !drop[idx] {
			kept = append(kept, idx)
		}
	}
	s.myOffer.Slots = kept

	return &RemoveOfferedItemsOutput{Offer: s.snapshotMyOffer()}, nil
}

// Accept sets this side's accepted flag. The state moves to Accepted
// only if the counterparty has already accepted, which no current
// operation can bring about.
func (s *TradeSession) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.myOffer.Accepted = true
	if s.otherOffer.Accepted {
		s.state = arena.TradeAccepted
	}

	return &AcceptOutput{State: s.state}, nil
}

// Confirm moves the trade to Confirmed unconditionally. It requires
// neither a prior Accepted state nor an open trade.
func (s *TradeSession) Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = arena.TradeConfirmed

	return &ConfirmOutput{State: s.state}, nil
}

// Cancel moves the trade to Cancelled unconditionally
func (s *TradeSession) Cancel(ctx context.Context, input *CancelTradeInput) (*CancelTradeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = arena.TradeCancelled

	return &CancelTradeOutput{State: s.state}, nil
}

// ViewOtherOffer reads the counterparty's offer as this session sees it
func (s *TradeSession) ViewOtherOffer(ctx context.Context, input *ViewOtherOfferInput) (*ViewOtherOfferOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer := arena.TradeOffer{
		Slots:    append([]uint16(nil), s.otherOffer.Slots...),
		Accepted: s.otherOffer.Accepted,
	}

	return &ViewOtherOfferOutput{Offer: offer}, nil
}

// GetState reads the current trade state
func (s *TradeSession) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &GetStateOutput{State: s.state}, nil
}

// snapshotMyOffer copies the offer so callers never alias the session's
// slice. Callers hold the mutex.
func (s *TradeSession) snapshotMyOffer() arena.TradeOffer {
	return arena.TradeOffer{
		Slots:    append([]uint16(nil), s.myOffer.Slots...),
		Accepted: s.myOffer.Accepted,
	}
}
