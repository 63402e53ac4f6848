package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/study"
	bt "github.com/fwojciec/study/bubbletea"
	"github.com/stretchr/testify/require"
)

func newConversation() *study.Conversation {
	return &study.Conversation{Scope: study.ScopeLecture, TargetID: "l-1"}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, ask bt.AskFunc) bt.Model {
	t.Helper()
	return initModelWithSize(t, ask, newConversation(), 80, 24)
}

// initModelWithSize creates a model with a custom conversation and terminal size.
func initModelWithSize(t *testing.T, ask bt.AskFunc, conv *study.Conversation, width, height int) bt.Model {
	t.Helper()
	m := bt.New(ask, conv, study.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// typeText types text into the input one rune at a time.
func typeText(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	for _, r := range text {
		m, _ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// nopAsk is a mock ask that answers with an empty response.
func nopAsk(_ context.Context, req study.AskRequest) (study.Answer, error) {
	return study.Answer{Question: req.Question}, nil
}
