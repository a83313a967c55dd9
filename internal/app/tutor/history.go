package tutor

import "github.com/ucm-acm/tutorbot/internal/domain"

// FormatHistory reshapes stored turns into the role/content structure the
// completion endpoint expects. Pure function: order is preserved, user
// turns map to user-role input text, bot turns to assistant-role output
// text.
func FormatHistory(turns []domain.Turn) []domain.ModelMessage {
	if len(turns) == 0 {
		return nil
	}

	out := make([]domain.ModelMessage, 0, len(turns))
	for _, t := range turns {
		switch t.Kind {
		case domain.TurnBot:
			out = append(out, domain.AssistantMessage(t.Text))
		default:
			out = append(out, domain.UserMessage(t.Text))
		}
	}
	return out
}
