package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ucm-acm/tutorbot/internal/domain"
)

// TurnStore is an in-memory turn store, used in local mode and in tests.
type TurnStore struct {
	mu    sync.RWMutex
	turns map[string][]domain.Turn // keyed by channel id
}

func NewTurnStore() *TurnStore {
	return &TurnStore{
		turns: make(map[string][]domain.Turn),
	}
}

func (s *TurnStore) AppendTurn(_ context.Context, turn domain.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[turn.ChannelID] = append(s.turns[turn.ChannelID], turn)
	return nil
}

func (s *TurnStore) RecentTurns(_ context.Context, userID, botID, channelID string, limit int) ([]domain.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Turn
	for _, t := range s.turns[channelID] {
		if t.AuthorID == userID || t.AuthorID == botID {
			matched = append(matched, t)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Seq < matched[j].Seq
		}
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}
