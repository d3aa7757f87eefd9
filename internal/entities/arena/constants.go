package arena

// EntityKind identifies what kind of thing an entity is
type EntityKind string

// Entity kind constants
const (
	KindUnspecified EntityKind = "KIND_UNSPECIFIED"
	KindPlayer      EntityKind = "KIND_PLAYER"
	KindNPC         EntityKind = "KIND_NPC"
	KindMonster     EntityKind = "KIND_MONSTER"
	KindPickup      EntityKind = "KIND_PICKUP"
)

// Faction identifies an entity's allegiance
type Faction string

// Faction constants
const (
	FactionNeutral Faction = "FACTION_NEUTRAL"
	FactionRed     Faction = "FACTION_RED"
	FactionBlue    Faction = "FACTION_BLUE"
)

// Rarity grades an item. Ordering matters for filtering: Common is the
// lowest rank, Legendary the highest.
type Rarity string

// Rarity constants
const (
	RarityCommon    Rarity = "RARITY_COMMON"
	RarityUncommon  Rarity = "RARITY_UNCOMMON"
	RarityRare      Rarity = "RARITY_RARE"
	RarityEpic      Rarity = "RARITY_EPIC"
	RarityLegendary Rarity = "RARITY_LEGENDARY"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
}

// Rank returns the numeric rank of the rarity for ordering comparisons.
// Unknown rarities rank below Common.
func (r Rarity) Rank() int {
	rank, ok := rarityRanks[r]
	if !ok {
		return -1
	}
	return rank
}

// AtLeast reports whether the rarity ranks at or above min
func (r Rarity) AtLeast(min Rarity) bool {
	return r.Rank() >= min.Rank()
}

// GameMode identifies a matchmaking queue
type GameMode string

// Game mode constants
const (
	ModeDuel       GameMode = "MODE_DUEL"
	ModeDeathmatch GameMode = "MODE_DEATHMATCH"
	ModeCapture    GameMode = "MODE_CAPTURE"
)

// MatchState tracks a match through its lifecycle
type MatchState string

// Match state constants
const (
	MatchWaiting    MatchState = "MATCH_WAITING"
	MatchReady      MatchState = "MATCH_READY"
	MatchInProgress MatchState = "MATCH_IN_PROGRESS"
	MatchCompleted  MatchState = "MATCH_COMPLETED"
	MatchCancelled  MatchState = "MATCH_CANCELLED"
)

// TradeState tracks a trade negotiation through its lifecycle
type TradeState string

// Trade state constants
const (
	TradeProposing TradeState = "TRADE_PROPOSING"
	TradeAccepted  TradeState = "TRADE_ACCEPTED"
	TradeConfirmed TradeState = "TRADE_CONFIRMED"
	TradeCancelled TradeState = "TRADE_CANCELLED"
)

// MessageKind distinguishes chat message varieties
type MessageKind string

// Message kind constants
const (
	MessageNormal  MessageKind = "MESSAGE_NORMAL"
	MessageEmote   MessageKind = "MESSAGE_EMOTE"
	MessageWhisper MessageKind = "MESSAGE_WHISPER"
)
