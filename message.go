package study

import "time"

// ChatMessage is one turn of a tutor conversation.
type ChatMessage struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// Conversation is a tutor chat bound to one lecture, topic or subject.
type Conversation struct {
	ID        string
	Scope     Scope
	TargetID  string
	Mode      Mode
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Request builds an AskRequest for question carrying the conversation's
// history. The question itself is not appended to Messages.
func (c Conversation) Request(question string) AskRequest {
	return AskRequest{
		Scope:    c.Scope,
		ID:       c.TargetID,
		Question: question,
		Mode:     c.Mode,
		History:  c.Messages,
	}
}

// Record appends a question and its answer to the conversation.
func (c *Conversation) Record(question string, answer Answer, now time.Time) {
	c.Messages = append(c.Messages,
		ChatMessage{Role: RoleUser, Content: question, Timestamp: now},
		ChatMessage{Role: RoleAssistant, Content: answer.Response, Timestamp: now},
	)
	c.UpdatedAt = now
}
