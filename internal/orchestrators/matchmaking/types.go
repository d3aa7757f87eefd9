package matchmaking

import (
	"time"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
)

// EnqueueInput contains parameters for queueing a player
type EnqueueInput struct {
	Player arena.PlayerInfo
	Mode   arena.GameMode
}

// EnqueueOutput contains the issued ticket
type EnqueueOutput struct {
	Ticket *arena.Ticket
}

// DequeueInput contains parameters for withdrawing a ticket
type DequeueInput struct {
	TicketID uint64
}

// DequeueOutput contains the result of a withdrawal
type DequeueOutput struct{}

// FindMatchInput contains parameters for requesting an immediate match
type FindMatchInput struct {
	Player arena.PlayerInfo
	Mode   arena.GameMode
}

// FindMatchOutput contains the created match and its controller handle
type FindMatchOutput struct {
	Match      *arena.MatchInfo
	Controller *MatchController
}

// GetQueueStatsInput contains parameters for reading queue statistics
type GetQueueStatsInput struct {
	Mode arena.GameMode
}

// GetQueueStatsOutput contains the queue statistics for the mode
type GetQueueStatsOutput struct {
	PlayersInQueue uint32
	AvgWait        time.Duration
}

// GetMatchResultInput contains parameters for reading an archived result
type GetMatchResultInput struct {
	MatchID uint64
}

// GetMatchResultOutput contains the archived result
type GetMatchResultOutput struct {
	Result *arena.MatchResult
}

// GetMatchInfoInput contains parameters for reading the handle's match
type GetMatchInfoInput struct{}

// GetMatchInfoOutput contains a snapshot of the match
type GetMatchInfoOutput struct {
	Match *arena.MatchInfo
}

// SignalReadyInput contains parameters for marking a player ready
type SignalReadyInput struct {
	PlayerID uint64
}

// SignalReadyOutput reports whether this call completed the roster
type SignalReadyOutput struct {
	AllReady bool
}

// ReportResultInput contains the outcome to archive
type ReportResultInput struct {
	Result *arena.MatchResult
}

// ReportResultOutput contains the archived result, stamped with the
// report time
type ReportResultOutput struct {
	Result *arena.MatchResult
}

// CancelMatchInput contains parameters for cancelling the match
type CancelMatchInput struct{}

// CancelMatchOutput contains the result of the cancellation
type CancelMatchOutput struct{}
