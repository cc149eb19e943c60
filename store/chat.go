package store

import (
	"sync"
)

// conversationStore keeps the per-user append-only message logs.
// Conversations live for the process lifetime; there is no expiry and no
// persistence across restarts. A single RWMutex serializes writes (expected
// write concurrency is low) and reads return snapshot copies.
type conversationStore struct {
	mu            sync.RWMutex
	conversations map[string][]*ChatMessage
}

func newConversationStore() *conversationStore {
	return &conversationStore{
		conversations: make(map[string][]*ChatMessage),
	}
}

// append adds message to the end of userID's conversation, creating the
// conversation on first use. Messages are never reordered or removed.
func (c *conversationStore) append(userID string, message *ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conversations[userID] = append(c.conversations[userID], message)
}

// list returns the conversation in append order. Unknown users get an empty
// slice, never an error. The returned slice is a copy; appends after the
// call do not show through.
func (c *conversationStore) list(userID string) []*ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	messages := c.conversations[userID]
	snapshot := make([]*ChatMessage, len(messages))
	copy(snapshot, messages)
	return snapshot
}

// AppendChatMessage adds a message to the end of the user's conversation.
func (s *Store) AppendChatMessage(userID string, message *ChatMessage) {
	if message.Lang == "" {
		message.Lang = "en"
	}
	s.chat.append(userID, message)
}

// ListChatMessages returns the user's conversation in append order.
func (s *Store) ListChatMessages(userID string) []*ChatMessage {
	return s.chat.list(userID)
}
