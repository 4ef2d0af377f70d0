package model

// Role tags a conversation turn.
type Role string

const (
	RoleHuman     Role = "human"
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// NewHumanMessage creates a farmer turn.
func NewHumanMessage(content string) Message {
	return Message{Role: RoleHuman, Content: content}
}

// NewAssistantMessage creates an advisor turn.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// LastHuman returns the content of the most recent human turn, or "".
func LastHuman(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleHuman {
			return msgs[i].Content
		}
	}
	return ""
}
