package domain

import "time"

type TurnKind string

const (
	TurnUser TurnKind = "user"
	TurnBot  TurnKind = "bot"
)

// Turn is one recorded message (user or bot) in a channel conversation.
// A Turn is immutable once written: the store only ever appends.
type Turn struct {
	AuthorDisplay string
	AuthorID      string
	Text          string
	Timestamp     time.Time
	ChannelID     string
	Kind          TurnKind

	// Seq breaks ties between turns that share a timestamp. Assigned
	// monotonically on the write path, so equal-timestamp turns keep
	// insertion order.
	Seq int64

	// ReplyTo holds the display name the bot answered. Bot turns only.
	ReplyTo string
}
