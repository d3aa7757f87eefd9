package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/inventory"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/inventories"
)

type TradeSessionTestSuite struct {
	suite.Suite
	orchestrator inventory.Service
	ctx          context.Context
	session      *inventory.TradeSession
}

func (s *TradeSessionTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = inventory.NewOrchestrator(&inventory.Config{
		InventoryRepo: inventories.NewInMemory(),
		TradeIDGen:    idgen.NewSequential("trade"),
	})
	s.Require().NoError(err)

	output, err := s.orchestrator.StartTrade(s.ctx, &inventory.StartTradeInput{
		InitiatorID: 1,
		TargetID:    2,
	})
	s.Require().NoError(err)
	s.session = output.Session
}

func (s *TradeSessionTestSuite) TestStartTrade_BeginsProposing() {
	state, err := s.session.GetState(s.ctx, &inventory.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeProposing, state.State)

	s.Equal(uint64(1), s.session.InitiatorID())
	s.Equal(uint64(2), s.session.TargetID())
}

func (s *TradeSessionTestSuite) TestStartTrade_SelfTradeRejected() {
	_, err := s.orchestrator.StartTrade(s.ctx, &inventory.StartTradeInput{
		InitiatorID: 1,
		TargetID:    1,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *TradeSessionTestSuite) TestOfferItems_ReplacesWholesale() {
	output, err := s.session.OfferItems(s.ctx, &inventory.OfferItemsInput{Slots: []uint16{0, 1, 2}})
	s.Require().NoError(err)
	s.Equal([]uint16{0, 1, 2}, output.Offer.Slots)

	output, err = s.session.OfferItems(s.ctx, &inventory.OfferItemsInput{Slots: []uint16{5}})
	s.Require().NoError(err)
	s.Equal([]uint16{5}, output.Offer.Slots)
}

func (s *TradeSessionTestSuite) TestRemoveOfferedItems_FiltersListed() {
	_, err := s.session.OfferItems(s.ctx, &inventory.OfferItemsInput{Slots: []uint16{0, 1, 2, 3}})
	s.Require().NoError(err)

	output, err := s.session.RemoveOfferedItems(s.ctx, &inventory.RemoveOfferedItemsInput{Slots: []uint16{1, 3}})
	s.Require().NoError(err)
	s.Equal([]uint16{0, 2}, output.Offer.Slots)
}

func (s *TradeSessionTestSuite) TestAccept_SetsFlagWithoutTransition() {
	output, err := s.session.Accept(s.ctx, &inventory.AcceptInput{})
	s.Require().NoError(err)

	// The counterparty never accepts through this surface, so the state
	// stays Proposing even after our accept.
	s.Equal(arena.TradeProposing, output.State)

	other, err := s.session.ViewOtherOffer(s.ctx, &inventory.ViewOtherOfferInput{})
	s.Require().NoError(err)
	s.False(other.Offer.Accepted)
	s.Empty(other.Offer.Slots)
}

func (s *TradeSessionTestSuite) TestConfirm_Unconditional() {
	output, err := s.session.Confirm(s.ctx, &inventory.ConfirmInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeConfirmed, output.State)
}

func (s *TradeSessionTestSuite) TestConfirm_UnconditionalAfterCancel() {
	_, err := s.session.Cancel(s.ctx, &inventory.CancelTradeInput{})
	s.Require().NoError(err)

	output, err := s.session.Confirm(s.ctx, &inventory.ConfirmInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeConfirmed, output.State)
}

func (s *TradeSessionTestSuite) TestCancel_Unconditional() {
	output, err := s.session.Cancel(s.ctx, &inventory.CancelTradeInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeCancelled, output.State)
}

func (s *TradeSessionTestSuite) TestOfferMutationsAfterSettlement() {
	_, err := s.session.Confirm(s.ctx, &inventory.ConfirmInput{})
	s.Require().NoError(err)

	// Settlement does not guard the offer list; mutations stay legal
	output, err := s.session.OfferItems(s.ctx, &inventory.OfferItemsInput{Slots: []uint16{0, 1}})
	s.Require().NoError(err)
	s.Equal([]uint16{0, 1}, output.Offer.Slots)

	removed, err := s.session.RemoveOfferedItems(s.ctx, &inventory.RemoveOfferedItemsInput{Slots: []uint16{0}})
	s.Require().NoError(err)
	s.Equal([]uint16{1}, removed.Offer.Slots)

	accepted, err := s.session.Accept(s.ctx, &inventory.AcceptInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeConfirmed, accepted.State)
}

func (s *TradeSessionTestSuite) TestSessionsAreIndependent() {
	second, err := s.orchestrator.StartTrade(s.ctx, &inventory.StartTradeInput{
		InitiatorID: 3,
		TargetID:    4,
	})
	s.Require().NoError(err)
	s.NotEqual(s.session.TradeID(), second.Session.TradeID())

	_, err = s.session.Cancel(s.ctx, &inventory.CancelTradeInput{})
	s.Require().NoError(err)

	state, err := second.Session.GetState(s.ctx, &inventory.GetStateInput{})
	s.Require().NoError(err)
	s.Equal(arena.TradeProposing, state.State)
}

func TestTradeSessionSuite(t *testing.T) {
	suite.Run(t, new(TradeSessionTestSuite))
}
