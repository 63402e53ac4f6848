package study_test

import (
	"testing"
	"time"

	"github.com/fwojciec/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_Request(t *testing.T) {
	t.Parallel()
	conv := study.Conversation{
		Scope:    study.ScopeTopic,
		TargetID: "topic-1",
		Mode:     study.ModePractice,
		Messages: []study.ChatMessage{
			{Role: study.RoleUser, Content: "what is entropy?"},
			{Role: study.RoleAssistant, Content: "A measure of disorder."},
		},
	}

	req := conv.Request("give me problems")

	assert.Equal(t, study.ScopeTopic, req.Scope)
	assert.Equal(t, "topic-1", req.ID)
	assert.Equal(t, "give me problems", req.Question)
	assert.Equal(t, study.ModePractice, req.Mode)
	assert.Len(t, req.History, 2)
	assert.NoError(t, req.Validate())
}

func TestConversation_Record(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	conv := study.Conversation{Scope: study.ScopeLecture, TargetID: "lec-1"}

	conv.Record("why?", study.Answer{Response: "**because**"}, now)

	require.Len(t, conv.Messages, 2)
	assert.Equal(t, study.ChatMessage{Role: study.RoleUser, Content: "why?", Timestamp: now}, conv.Messages[0])
	assert.Equal(t, study.ChatMessage{Role: study.RoleAssistant, Content: "**because**", Timestamp: now}, conv.Messages[1])
	assert.Equal(t, now, conv.UpdatedAt)
}

func TestAskRequest_RecentHistory(t *testing.T) {
	t.Parallel()

	t.Run("short history is returned as is", func(t *testing.T) {
		t.Parallel()
		req := study.AskRequest{History: make([]study.ChatMessage, 3)}
		assert.Len(t, req.RecentHistory(), 3)
	})

	t.Run("long history keeps the trailing messages", func(t *testing.T) {
		t.Parallel()
		var history []study.ChatMessage
		for i := range 14 {
			history = append(history, study.ChatMessage{Role: study.RoleUser, Content: string(rune('a' + i))})
		}
		got := study.AskRequest{History: history}.RecentHistory()
		require.Len(t, got, study.MaxHistory)
		assert.Equal(t, "e", got[0].Content)
		assert.Equal(t, "n", got[len(got)-1].Content)
	})
}

func TestLecture_Text(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "clean", study.Lecture{Transcript: "raw", CleanedTranscript: "clean"}.Text())
	assert.Equal(t, "raw", study.Lecture{Transcript: "raw"}.Text())
}
