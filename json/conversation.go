package json

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/study"
)

// conversationEnvelope is the v1 wire format for a persisted conversation.
type conversationEnvelope struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	Scope     string       `json:"scope"`
	TargetID  string       `json:"target_id"`
	Mode      string       `json:"mode"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Messages  []messageDTO `json:"messages"`
}

// messageDTO matches the backend's chat_history entries, plus a timestamp.
type messageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalConversation serializes a Conversation to JSON in v1 envelope format.
func MarshalConversation(c study.Conversation) ([]byte, error) {
	env := conversationEnvelope{
		Version:   1,
		ID:        c.ID,
		Scope:     string(c.Scope),
		TargetID:  c.TargetID,
		Mode:      string(c.Mode),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  make([]messageDTO, len(c.Messages)),
	}
	for i, m := range c.Messages {
		env.Messages[i] = messageDTO{Role: string(m.Role), Content: m.Content, Timestamp: m.Timestamp}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalConversation deserializes a Conversation from JSON in v1 envelope
// format.
func UnmarshalConversation(data []byte) (study.Conversation, error) {
	var env conversationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return study.Conversation{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return study.Conversation{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	var msgs []study.ChatMessage
	for i, dto := range env.Messages {
		role := study.Role(dto.Role)
		if role != study.RoleUser && role != study.RoleAssistant {
			return study.Conversation{}, fmt.Errorf("message %d: unknown role: %q", i, dto.Role)
		}
		msgs = append(msgs, study.ChatMessage{Role: role, Content: dto.Content, Timestamp: dto.Timestamp})
	}
	return study.Conversation{
		ID:        env.ID,
		Scope:     study.Scope(env.Scope),
		TargetID:  env.TargetID,
		Mode:      study.Mode(env.Mode),
		Messages:  msgs,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}, nil
}

// MarshalHistory encodes chat messages as the backend's chat_history form
// value: a JSON array of {role, content} objects.
func MarshalHistory(msgs []study.ChatMessage) (string, error) {
	type entry struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	entries := make([]entry, len(msgs))
	for i, m := range msgs {
		entries[i] = entry{Role: string(m.Role), Content: m.Content}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal history: %w", err)
	}
	return string(data), nil
}

// SaveConversation writes a Conversation to a JSON file, creating parent
// directories as needed.
func SaveConversation(path string, c study.Conversation) error {
	data, err := MarshalConversation(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}

// LoadConversation reads a Conversation from a JSON file.
func LoadConversation(path string) (study.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return study.Conversation{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalConversation(data)
}
