package discord

import (
	"strings"
	"testing"
	"time"
)

func TestParseTrigger(t *testing.T) {
	const botID = "123"

	tests := []struct {
		name      string
		text      string
		triggered bool
		want      string
	}{
		{"plain message", "what is a linked list?", false, ""},
		{"mention", "<@123> what is a linked list?", true, "what is a linked list?"},
		{"nick mention", "<@!123> explain pointers", true, "explain pointers"},
		{"mention mid-sentence", "hey <@123> help me", true, "hey  help me"},
		{"command prefix", "!tutor what is big O?", true, "what is big O?"},
		{"prefix not at start", "please !tutor help", false, ""},
		{"other user mention", "<@456> hi", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			triggered, got := ParseTrigger(tt.text, botID)
			if triggered != tt.triggered {
				t.Fatalf("expected triggered=%v, got %v", tt.triggered, triggered)
			}
			if !triggered {
				return
			}
			if strings.TrimSpace(got) == "" {
				t.Fatal("expected non-empty stripped text")
			}
			if got != strings.TrimSpace(tt.want) {
				t.Errorf("expected stripped text %q, got %q", strings.TrimSpace(tt.want), got)
			}
		})
	}
}

func TestTypingDurationBounded(t *testing.T) {
	if d := TypingDuration(""); d != 0 {
		t.Errorf("expected zero duration for empty reply, got %v", d)
	}

	short := TypingDuration("hi there")
	if short <= 0 || short >= time.Second {
		t.Errorf("unexpected duration for short reply: %v", short)
	}

	long := TypingDuration(strings.Repeat("a", 10000))
	if long != 6*time.Second {
		t.Errorf("expected long replies capped at 6s, got %v", long)
	}
}

func TestTypingDurationMonotonic(t *testing.T) {
	a := TypingDuration("short")
	b := TypingDuration("a somewhat longer reply that takes more time to type")
	if b < a {
		t.Errorf("longer reply should not type faster: %v < %v", b, a)
	}
}
