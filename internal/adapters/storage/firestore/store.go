package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ucm-acm/tutorbot/internal/domain"
)

// Store persists turns in a Firestore collection.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore-backed turn store for the given project
// (TUTOR_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) turnsCol() *firestore.CollectionRef {
	return s.client.Collection("turns")
}

type turnDoc struct {
	AuthorDisplay string    `firestore:"author_display"`
	AuthorID      string    `firestore:"author_id"`
	Text          string    `firestore:"text"`
	Timestamp     time.Time `firestore:"timestamp"`
	Seq           int64     `firestore:"seq"`
	ChannelID     string    `firestore:"channel_id"`
	Kind          string    `firestore:"turn_kind"`
	ReplyTo       *string   `firestore:"reply_to"`
}

func (s *Store) AppendTurn(ctx context.Context, turn domain.Turn) error {
	var replyTo *string
	if turn.ReplyTo != "" {
		v := turn.ReplyTo
		replyTo = &v
	}

	doc := turnDoc{
		AuthorDisplay: turn.AuthorDisplay,
		AuthorID:      turn.AuthorID,
		Text:          turn.Text,
		Timestamp:     turn.Timestamp,
		Seq:           turn.Seq,
		ChannelID:     turn.ChannelID,
		Kind:          string(turn.Kind),
		ReplyTo:       replyTo,
	}

	if _, err := s.turnsCol().NewDoc().Create(ctx, doc); err != nil {
		return &domain.PersistenceError{Op: "append", Err: err}
	}
	return nil
}

// RecentTurns bounds the read to the most recent activity by querying in
// descending timestamp order, then reverses so the caller gets
// chronological order.
func (s *Store) RecentTurns(ctx context.Context, userID, botID, channelID string, limit int) ([]domain.Turn, error) {
	q := s.turnsCol().
		Where("channel_id", "==", channelID).
		Where("author_id", "in", []string{userID, botID}).
		OrderBy("timestamp", firestore.Desc).
		OrderBy("seq", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.Turn
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			if status.Code(err) == codes.NotFound {
				break
			}
			return nil, &domain.PersistenceError{Op: "query", Err: err}
		}

		var doc turnDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, &domain.PersistenceError{Op: "decode", Err: err}
		}

		turn := domain.Turn{
			AuthorDisplay: doc.AuthorDisplay,
			AuthorID:      doc.AuthorID,
			Text:          doc.Text,
			Timestamp:     doc.Timestamp,
			Seq:           doc.Seq,
			ChannelID:     doc.ChannelID,
			Kind:          domain.TurnKind(doc.Kind),
		}
		if doc.ReplyTo != nil {
			turn.ReplyTo = *doc.ReplyTo
		}
		out = append(out, turn)
	}

	// Reverse to ascending order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
