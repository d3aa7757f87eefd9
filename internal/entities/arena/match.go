package arena

import "time"

// Ticket is a queued matchmaking request
type Ticket struct {
	TicketID      uint64
	Player        PlayerInfo
	Mode          GameMode
	EnqueuedAt    time.Time
	EstimatedWait time.Duration
}

// MatchInfo describes a match and its rosters
type MatchInfo struct {
	ID        uint64
	Mode      GameMode
	State     MatchState
	TeamA     []PlayerInfo
	TeamB     []PlayerInfo
	CreatedAt time.Time
}

// PlayerStats is one player's stat line in a match result
type PlayerStats struct {
	PlayerID uint64
	Kills    uint32
	Deaths   uint32
	Assists  uint32
	Score    int32
}

// MatchResult records the outcome of a completed match
type MatchResult struct {
	MatchID     uint64
	WinningTeam uint8
	Duration    time.Duration
	PlayerStats []PlayerStats
	ReportedAt  time.Time
}
