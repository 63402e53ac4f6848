// Package bubbletea provides a Bubble Tea TUI for chatting with the study
// tutor.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/study"
)

// AskFunc sends one question to the tutor. It blocks until the answer
// arrives or the context is cancelled.
type AskFunc func(ctx context.Context, req study.AskRequest) (study.Answer, error)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// AskDoneMsg carries the result of an ask back to the model.
type AskDoneMsg struct {
	Question string
	Answer   study.Answer
	Err      error
}
