package bubbletea_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/study"
	bt "github.com/fwojciec/study/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m := bt.New(nopAsk, newConversation(), study.DefaultTheme())

	assert.False(t, m.Running())
	assert.NoError(t, m.Err())
	assert.Equal(t, "Initializing...", m.View())
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 20, m.Viewport.Height) // 24 - 1 - 1 - 2
		assert.Contains(t, m.View(), "Enter to send")
	})

	t.Run("resize updates viewport dimensions", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
		assert.Equal(t, 120, m.Viewport.Width)
		assert.Equal(t, 36, m.Viewport.Height)
	})

	t.Run("tiny terminal keeps one viewport line", func(t *testing.T) {
		t.Parallel()

		m := initModelWithSize(t, nopAsk, newConversation(), 20, 2)
		assert.Equal(t, 1, m.Viewport.Height)
	})

	t.Run("ctrl+c when idle quits", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("ctrl+c while running cancels", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		cancelled := false
		m, _ = bt.SetRunningWithCancel(m, func() { cancelled = true })
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

		assert.True(t, cancelled)
		assert.True(t, m.Running())
		assert.Nil(t, cmd)
	})

	t.Run("enter with empty input does nothing", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.False(t, m.Running())
		assert.Nil(t, cmd)
	})

	t.Run("enter while running is ignored", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		m = typeText(t, m, "again")
		m, _ = bt.SetRunningWithCancel(m, func() {})
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.Equal(t, "again", m.Input.Value())
	})
}

func TestModel_Ask(t *testing.T) {
	t.Parallel()

	t.Run("enter sends the question with history", func(t *testing.T) {
		t.Parallel()

		conv := newConversation()
		conv.Mode = study.ModePractice
		conv.Messages = []study.ChatMessage{
			{Role: study.RoleUser, Content: "earlier"},
			{Role: study.RoleAssistant, Content: "reply"},
		}
		var got study.AskRequest
		ask := func(_ context.Context, req study.AskRequest) (study.Answer, error) {
			got = req
			return study.Answer{Question: req.Question, Response: "ok"}, nil
		}
		m := initModelWithSize(t, ask, conv, 80, 24)
		m = typeText(t, m, "what is bfs?")
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, m.Running())
		assert.Equal(t, "", m.Input.Value())
		assert.Contains(t, bt.RenderContent(m), "> what is bfs?")
		require.NotNil(t, cmd)

		msg := cmd()
		done, ok := msg.(bt.AskDoneMsg)
		require.True(t, ok)
		assert.NoError(t, done.Err)
		assert.Equal(t, study.ScopeLecture, got.Scope)
		assert.Equal(t, "l-1", got.ID)
		assert.Equal(t, "what is bfs?", got.Question)
		assert.Equal(t, study.ModePractice, got.Mode)
		assert.Len(t, got.History, 2)
	})

	t.Run("answer is rendered and recorded", func(t *testing.T) {
		t.Parallel()

		conv := newConversation()
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		m := initModelWithSize(t, nopAsk, conv, 80, 24)
		m = bt.SetClock(m, func() time.Time { return now })
		m = typeText(t, m, "explain")
		m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = updateModel(t, m, bt.AskDoneMsg{
			Question: "explain",
			Answer:   study.Answer{Question: "explain", Response: "## Graphs\n\n- **nodes**\n- edges"},
		})

		assert.False(t, m.Running())
		assert.NoError(t, m.Err())
		content := bt.RenderContent(m)
		assert.Contains(t, content, "Graphs")
		assert.Contains(t, content, "- nodes")
		assert.NotContains(t, content, "**")

		require.Len(t, conv.Messages, 2)
		assert.Equal(t, study.ChatMessage{Role: study.RoleUser, Content: "explain", Timestamp: now}, conv.Messages[0])
		assert.Equal(t, "## Graphs\n\n- **nodes**\n- edges", conv.Messages[1].Content)
		assert.Equal(t, now, conv.UpdatedAt)
	})

	t.Run("error shows on status line and is not recorded", func(t *testing.T) {
		t.Parallel()

		conv := newConversation()
		m := initModelWithSize(t, nopAsk, conv, 80, 24)
		m = typeText(t, m, "hello")
		m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = updateModel(t, m, bt.AskDoneMsg{Question: "hello", Err: errors.New("backend down")})

		require.Error(t, m.Err())
		assert.Contains(t, m.View(), "Error: backend down")
		assert.Empty(t, conv.Messages)
	})

	t.Run("cancelled ask is not an error", func(t *testing.T) {
		t.Parallel()

		m := initModel(t, nopAsk)
		m = typeText(t, m, "hello")
		m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m, _ = updateModel(t, m, bt.AskDoneMsg{Question: "hello", Err: context.Canceled})

		assert.False(t, m.Running())
		assert.NoError(t, m.Err())
		assert.Contains(t, bt.RenderContent(m), "cancelled")
	})

	t.Run("invalid request is rejected before sending", func(t *testing.T) {
		t.Parallel()

		conv := &study.Conversation{Scope: study.ScopeSubject, TargetID: "s-1", Mode: study.ModeExam}
		m := initModelWithSize(t, nopAsk, conv, 80, 24)
		m = typeText(t, m, "quiz me")
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.False(t, m.Running())
		assert.ErrorIs(t, m.Err(), study.ErrValidation)
	})
}

func TestModel_ModeCommand(t *testing.T) {
	t.Parallel()

	t.Run("switches mode", func(t *testing.T) {
		t.Parallel()

		conv := newConversation()
		m := initModelWithSize(t, nopAsk, conv, 80, 24)
		m = typeText(t, m, "/mode exam")
		m, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.Equal(t, study.ModeExam, conv.Mode)
		assert.Equal(t, "", m.Input.Value())
		assert.Contains(t, m.View(), "(exam mode)")
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		conv := newConversation()
		m := initModelWithSize(t, nopAsk, conv, 80, 24)
		m = typeText(t, m, "/mode cram")
		m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.ErrorIs(t, m.Err(), study.ErrValidation)
		assert.Equal(t, study.Mode(""), conv.Mode)
	})
}

func TestModel_ExistingConversation(t *testing.T) {
	t.Parallel()

	conv := newConversation()
	conv.Messages = []study.ChatMessage{
		{Role: study.RoleUser, Content: "hello there"},
		{Role: study.RoleAssistant, Content: "Hi! Ask about **graphs**."},
	}
	m := initModelWithSize(t, nopAsk, conv, 80, 24)

	content := bt.RenderContent(m)
	assert.Contains(t, content, "> hello there")
	assert.Contains(t, content, "Hi! Ask about graphs.")
}

func TestModel_Resize(t *testing.T) {
	t.Parallel()

	conv := newConversation()
	conv.Messages = []study.ChatMessage{
		{Role: study.RoleAssistant, Content: "word1 word2 word3 word4 word5 word6 word7 word8"},
	}
	m := initModelWithSize(t, nopAsk, conv, 30, 20)
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	found := false
	for _, line := range strings.Split(m.Viewport.View(), "\n") {
		if strings.Contains(line, "word1") && strings.Contains(line, "word8") {
			found = true
			break
		}
	}
	assert.True(t, found, "expected answer to reflow after resize")
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	conv := newConversation()
	ask := func(_ context.Context, req study.AskRequest) (study.Answer, error) {
		return study.Answer{Question: req.Question, Mode: study.ModeTutor, Response: "Hello from the tutor!"}, nil
	}
	m := bt.New(ask, conv, study.DefaultTheme())

	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Type("hi")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Hello from the tutor!")) &&
			bytes.Contains(out, []byte("Enter to send"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.False(t, final.Running())
	assert.NoError(t, final.Err())
	assert.Len(t, conv.Messages, 2)
}
