package domain

import "context"

// TurnStore defines turn persistence. AppendTurn is the only writer;
// RecentTurns only reads.
type TurnStore interface {
	AppendTurn(ctx context.Context, turn Turn) error

	// RecentTurns returns up to limit of the most recent turns in
	// channelID authored by userID or botID, ordered oldest to newest.
	// No prior turns is an empty slice, not an error.
	RecentTurns(ctx context.Context, userID, botID, channelID string, limit int) ([]Turn, error)
}

// CompletionClient defines how the core application talks to the hosted
// model endpoint.
type CompletionClient interface {
	Complete(ctx context.Context, system string, messages []ModelMessage) (string, error)
}
