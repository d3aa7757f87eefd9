package arena

import "time"

// RoomInfo describes a chat room's current metadata
type RoomInfo struct {
	ID          uint64
	Name        string
	Topic       string
	MemberCount uint32
}

// ChatMessage is one entry in a room's log, immutable once appended.
// Sender is snapshotted at send time. WhisperTarget is only meaningful
// when Kind is MessageWhisper.
type ChatMessage struct {
	Sender        PlayerInfo
	Content       string
	SentAt        time.Time
	Kind          MessageKind
	WhisperTarget uint64
}
