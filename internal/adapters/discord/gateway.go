package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/ucm-acm/tutorbot/internal/app/tutor"
	"github.com/ucm-acm/tutorbot/internal/observability"
)

// CommandPrefix triggers the bot without a mention.
const CommandPrefix = "!tutor"

const (
	// typingCharsPerSecond paces the typing indicator: 150 words/min at
	// roughly 5 characters per word.
	typingCharsPerSecond = 12.5
	maxTypingDuration    = 6 * time.Second
)

// Gateway connects the conversation service to the Discord gateway. Each
// triggering message runs through the service independently; discordgo
// dispatches handlers concurrently.
type Gateway struct {
	session *discordgo.Session
	svc     *tutor.Service
}

func NewGateway(token string, svc *tutor.Service) (*Gateway, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	g := &Gateway{session: session, svc: svc}
	session.AddHandler(g.onReady)
	session.AddHandler(g.onMessageCreate)
	return g, nil
}

func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("opening discord gateway: %w", err)
	}
	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	observability.Logger().Info("bot is online and ready to help CS students",
		"username", r.User.Username,
	)
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	triggered, text := ParseTrigger(m.Content, s.State.User.ID)
	if !triggered {
		return
	}

	ctx := observability.WithRequestID(context.Background(), uuid.NewString())
	log := observability.LoggerFromContext(ctx).With(
		"channel_id", m.ChannelID,
		"author_id", m.Author.ID,
	)
	log.Info("handling message")

	if err := s.ChannelTyping(m.ChannelID); err != nil {
		log.Warn("failed to start typing indicator", "error", err)
	}

	reply := g.svc.Handle(ctx, tutor.HandleInput{
		AuthorID:      m.Author.ID,
		AuthorDisplay: m.Author.Username,
		ChannelID:     m.ChannelID,
		Text:          text,
	})

	// Cosmetic pacing so the reply lands like a typed answer.
	time.Sleep(TypingDuration(reply))

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Error("failed to send reply", "error", err)
		return
	}
	log.Info("reply sent", "reply_len", len(reply))
}

// ParseTrigger reports whether text addresses the bot, and returns the
// text with the mention or command prefix stripped. Messages that neither
// mention the bot nor start with the prefix are ignored entirely.
func ParseTrigger(text, botID string) (bool, string) {
	mention := "<@" + botID + ">"
	nickMention := "<@!" + botID + ">"

	switch {
	case strings.Contains(text, nickMention):
		return true, strings.TrimSpace(strings.ReplaceAll(text, nickMention, ""))
	case strings.Contains(text, mention):
		return true, strings.TrimSpace(strings.ReplaceAll(text, mention, ""))
	case strings.HasPrefix(text, CommandPrefix):
		return true, strings.TrimSpace(strings.TrimPrefix(text, CommandPrefix))
	}
	return false, ""
}

// TypingDuration estimates how long a person would take to type reply,
// capped at maxTypingDuration.
func TypingDuration(reply string) time.Duration {
	d := time.Duration(float64(len(reply)) / typingCharsPerSecond * float64(time.Second))
	if d > maxTypingDuration {
		return maxTypingDuration
	}
	return d
}
