package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/ucm-acm/tutorbot/internal/adapters/storage/memory"
	"github.com/ucm-acm/tutorbot/internal/domain"
)

func appendTurn(t *testing.T, store *memory.TurnStore, authorID, channelID, text string, ts time.Time, seq int64, kind domain.TurnKind) {
	t.Helper()
	err := store.AppendTurn(context.Background(), domain.Turn{
		AuthorID:  authorID,
		ChannelID: channelID,
		Text:      text,
		Timestamp: ts,
		Seq:       seq,
		Kind:      kind,
	})
	if err != nil {
		t.Fatalf("AppendTurn failed: %v", err)
	}
}

func TestRecentTurnsEmpty(t *testing.T) {
	store := memory.NewTurnStore()

	turns, err := store.RecentTurns(context.Background(), "u1", "bot", "unused-channel", 10)
	if err != nil {
		t.Fatalf("expected no error for unused channel, got %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty result, got %d turns", len(turns))
	}
}

func TestRecentTurnsLimitAndOrder(t *testing.T) {
	store := memory.NewTurnStore()
	base := time.Now()

	for i := 0; i < 15; i++ {
		kind := domain.TurnUser
		author := "u1"
		if i%2 == 1 {
			kind = domain.TurnBot
			author = "bot"
		}
		appendTurn(t, store, author, "c1", string(rune('a'+i)), base.Add(time.Duration(i)*time.Second), int64(i), kind)
	}

	turns, err := store.RecentTurns(context.Background(), "u1", "bot", "c1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 10 {
		t.Fatalf("expected 10 turns, got %d", len(turns))
	}

	// Exactly the most recent 10, oldest first.
	if turns[0].Text != string(rune('a'+5)) {
		t.Errorf("expected window to start at turn 5, got %q", turns[0].Text)
	}
	for i := 1; i < len(turns); i++ {
		if turns[i].Timestamp.Before(turns[i-1].Timestamp) {
			t.Fatalf("turns out of order at index %d", i)
		}
	}
}

func TestRecentTurnsFiltersAuthorsAndChannels(t *testing.T) {
	store := memory.NewTurnStore()
	now := time.Now()

	appendTurn(t, store, "u1", "c1", "mine", now, 1, domain.TurnUser)
	appendTurn(t, store, "bot", "c1", "bots", now.Add(time.Second), 2, domain.TurnBot)
	appendTurn(t, store, "u2", "c1", "someone else", now.Add(2*time.Second), 3, domain.TurnUser)
	appendTurn(t, store, "u1", "c2", "other channel", now.Add(3*time.Second), 4, domain.TurnUser)

	turns, err := store.RecentTurns(context.Background(), "u1", "bot", "c1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Text != "mine" || turns[1].Text != "bots" {
		t.Fatalf("unexpected turns: %+v", turns)
	}
}

func TestRecentTurnsTieBreakBySeq(t *testing.T) {
	store := memory.NewTurnStore()
	ts := time.Now()

	appendTurn(t, store, "u1", "c1", "second", ts, 2, domain.TurnUser)
	appendTurn(t, store, "u1", "c1", "first", ts, 1, domain.TurnUser)

	turns, err := store.RecentTurns(context.Background(), "u1", "bot", "c1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Text != "first" || turns[1].Text != "second" {
		t.Fatalf("equal timestamps not ordered by seq: %+v", turns)
	}
}

func TestRecentTurnsIdempotent(t *testing.T) {
	store := memory.NewTurnStore()
	now := time.Now()
	appendTurn(t, store, "u1", "c1", "hello", now, 1, domain.TurnUser)
	appendTurn(t, store, "bot", "c1", "hi", now.Add(time.Second), 2, domain.TurnBot)

	first, err := store.RecentTurns(context.Background(), "u1", "bot", "c1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}
	second, err := store.RecentTurns(context.Background(), "u1", "bot", "c1", 10)
	if err != nil {
		t.Fatalf("RecentTurns failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("fetch not idempotent: %d vs %d turns", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("fetch not idempotent at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
