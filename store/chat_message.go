package store

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
	ChatRoleSystem    ChatRole = "system"
)

// IsValid reports whether the role is one of the known roles.
func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRoleUser, ChatRoleAssistant, ChatRoleSystem:
		return true
	}
	return false
}

// ChatMessage is one immutable entry in a user's conversation.
// ID is caller-assigned (used for assistant completions) and is not
// generated or deduplicated by the store.
type ChatMessage struct {
	ID      *int
	Role    ChatRole
	Content string
	Lang    string
}
