package arena

// PlayerInfo is a snapshot of a player's identity. Messages, tickets, and
// rosters carry copies taken at call time, never live links back to an
// entity record.
type PlayerInfo struct {
	ID      uint64
	Name    string
	Faction Faction
	Level   uint16
}
