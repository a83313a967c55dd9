package tutor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ucm-acm/tutorbot/internal/domain"
	"github.com/ucm-acm/tutorbot/internal/observability"
)

const (
	// FallbackReply is returned whenever the pipeline fails. Handle never
	// surfaces an error or an empty string to the gateway.
	FallbackReply = "i forgor \U0001F480"

	DefaultHistoryLimit      = 10
	DefaultCompletionTimeout = 30 * time.Second
)

// ServiceConfig carries the bot identity and the pipeline tunables.
type ServiceConfig struct {
	BotID   string
	BotName string

	// HistoryLimit bounds the conversation window. Zero means
	// DefaultHistoryLimit.
	HistoryLimit int

	// CompletionTimeout bounds the model endpoint call. Zero means
	// DefaultCompletionTimeout.
	CompletionTimeout time.Duration
}

// Service is the conversation orchestrator: it records the user turn,
// loads the recent conversation window, asks the model for a reply, and
// records the bot turn.
type Service struct {
	store      domain.TurnStore
	completion domain.CompletionClient

	botID             string
	botName           string
	historyLimit      int
	completionTimeout time.Duration

	now func() time.Time
	seq atomic.Int64
}

func NewService(store domain.TurnStore, completion domain.CompletionClient, cfg ServiceConfig) *Service {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = DefaultCompletionTimeout
	}

	return &Service{
		store:             store,
		completion:        completion,
		botID:             cfg.BotID,
		botName:           cfg.BotName,
		historyLimit:      cfg.HistoryLimit,
		completionTimeout: cfg.CompletionTimeout,
		now:               time.Now,
	}
}

// HandleInput is one inbound message that triggered the bot.
type HandleInput struct {
	AuthorID      string
	AuthorDisplay string
	ChannelID     string
	Text          string
}

// Handle runs the full pipeline for one inbound message and returns the
// reply text. Failures anywhere in the pipeline are logged and converted
// to FallbackReply; they never propagate to the gateway.
func (s *Service) Handle(ctx context.Context, in HandleInput) string {
	log := observability.LoggerFromContext(ctx).With(
		"channel_id", in.ChannelID,
		"author_id", in.AuthorID,
	)

	userTurn := domain.Turn{
		AuthorDisplay: in.AuthorDisplay,
		AuthorID:      in.AuthorID,
		Text:          in.Text,
		Timestamp:     s.now(),
		Seq:           s.seq.Add(1),
		ChannelID:     in.ChannelID,
		Kind:          domain.TurnUser,
	}
	if err := s.store.AppendTurn(ctx, userTurn); err != nil {
		log.Error("failed to record user turn", "error", err)
		return FallbackReply
	}

	turns, err := s.store.RecentTurns(ctx, in.AuthorID, s.botID, in.ChannelID, s.historyLimit)
	if err != nil {
		log.Error("failed to load conversation window", "error", err)
		return FallbackReply
	}

	messages := FormatHistory(turns)
	messages = append(messages, domain.UserMessage(in.Text))

	cctx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	reply, err := s.completion.Complete(cctx, SystemPrompt, messages)
	if err != nil {
		log.Error("completion failed", "error", err)
		return FallbackReply
	}
	if reply == "" {
		log.Error("completion returned empty text")
		return FallbackReply
	}

	// Recording the bot turn is best-effort: an already-computed reply is
	// never dropped because the write failed.
	botTurn := domain.Turn{
		AuthorDisplay: s.botName,
		AuthorID:      s.botID,
		Text:          reply,
		Timestamp:     s.now(),
		Seq:           s.seq.Add(1),
		ChannelID:     in.ChannelID,
		Kind:          domain.TurnBot,
		ReplyTo:       in.AuthorDisplay,
	}
	if err := s.store.AppendTurn(ctx, botTurn); err != nil {
		log.Error("failed to record bot turn", "error", err)
	}

	return reply
}
