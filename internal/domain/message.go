package domain

import "strings"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type BlockKind string

const (
	BlockInputText  BlockKind = "input_text"
	BlockOutputText BlockKind = "output_text"
)

// ContentBlock is one piece of message content in the shape the
// completion endpoint expects.
type ContentBlock struct {
	Kind BlockKind
	Text string
}

// ModelMessage is a single role-tagged message in a completion request.
type ModelMessage struct {
	Role    Role
	Content []ContentBlock
}

// Text returns the concatenated text of all content blocks.
func (m ModelMessage) Text() string {
	if len(m.Content) == 1 {
		return m.Content[0].Text
	}
	var b strings.Builder
	for _, c := range m.Content {
		b.WriteString(c.Text)
	}
	return b.String()
}

// UserMessage builds a user-role message wrapping text in an input-text block.
func UserMessage(text string) ModelMessage {
	return ModelMessage{
		Role:    RoleUser,
		Content: []ContentBlock{{Kind: BlockInputText, Text: text}},
	}
}

// AssistantMessage builds an assistant-role message wrapping text in an
// output-text block.
func AssistantMessage(text string) ModelMessage {
	return ModelMessage{
		Role:    RoleAssistant,
		Content: []ContentBlock{{Kind: BlockOutputText, Text: text}},
	}
}
